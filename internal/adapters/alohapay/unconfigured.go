package alohapay

import (
	"context"
	"fmt"

	"coral_cove/internal/domain"
)

var errNoKey = fmt.Errorf("%w: aloha pay API key is not configured", domain.ErrUpstream)

// Unconfigured stands in for the client when no API key is set. Every call fails.
type Unconfigured struct{}

func (Unconfigured) CreatePaymentLink(context.Context, domain.PaymentLinkRequest) (domain.PaymentLink, error) {
	return domain.PaymentLink{}, errNoKey
}

func (Unconfigured) GetWallets(context.Context) ([]domain.Wallet, error) {
	return nil, errNoKey
}
