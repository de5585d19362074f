// Package telegram sends staff notifications about new bookings to a chat.
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"coral_cove/internal/dates"
	"coral_cove/internal/domain"
	"coral_cove/internal/pricing"
)

type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// New returns a disabled notifier when token is empty.
func New(token string, chatID int64) (*Notifier, error) {
	return NewWithEndpoint(token, chatID, tgbotapi.APIEndpoint)
}

// NewWithEndpoint is New against a custom Bot API endpoint format.
func NewWithEndpoint(token string, chatID int64, endpoint string) (*Notifier, error) {
	if token == "" {
		log.Warn().Msg("telegram bot token is empty, notifications disabled")
		return &Notifier{}, nil
	}
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID}, nil
}

func (n *Notifier) NotifyBookingCreated(ctx context.Context, b domain.Booking, room domain.Room) {
	nights := dates.Nights(b.CheckIn, b.CheckOut)
	text := fmt.Sprintf(
		"*New booking* `%s`\n\n"+"Room: %s\n"+"Stay: %s (%d nights)\n"+"Guest: %s %s <%s>\n"+"Payment: %s\n"+"Total: %s %s",
		b.ID,
		md(room.Name),
		dates.DisplayRange(b.CheckIn, b.CheckOut), nights,
		md(b.GuestInfo.FirstName), md(b.GuestInfo.LastName), md(b.GuestInfo.Email),
		md(string(b.PaymentMethod)),
		pricing.Format(b.TotalPrice), room.Currency,
	)
	n.send(ctx, text)
}

// md escapes free text for ModeMarkdown; the booking id stays inside a code span.
func md(s string) string { return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s) }

func (n *Notifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		log.Debug().Str("text", text).Msg("notification skipped (bot disabled)")
		return
	}
	if n.chatID == 0 {
		log.Debug().Str("text", text).Msg("notification skipped (no chat_id)")
		return
	}
	if err := ctx.Err(); err != nil {
		log.Debug().Int64("chat_id", n.chatID).Msg("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		log.Error().Err(err).Int64("chat_id", n.chatID).Msg("failed to send telegram notification")
	}
}
