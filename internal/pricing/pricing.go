// Package pricing derives stay totals and display prices.
//
// Total is the only figure that is ever stored on a booking. The modifier
// helpers exist for display and are intentionally not used by the wizard or
// the booking service.
package pricing

import (
	"math"
	"strconv"
	"strings"

	"coral_cove/internal/domain"
)

// Total is pricePerNight * nights, or 0 when nights is not positive.
func Total(pricePerNight int64, nights int) int64 {
	if nights <= 0 {
		return 0
	}
	return pricePerNight * int64(nights)
}

// RoomTotal is the wizard's running total: pricePerNight * nights, or 0 with no
// room or no nights. A reversed range gives a negative total.
func RoomTotal(room *domain.Room, nights int) int64 {
	if room == nil || nights == 0 {
		return 0
	}
	return room.PricePerNight * int64(nights)
}

// WithModifiers sums one rounded nightly price per entry, excluding the last
// entry (the checkout day) the way the availability listing is shaped.
func WithModifiers(room domain.Room, entries []domain.AvailabilityEntry) int64 {
	if len(entries) == 0 {
		return 0
	}
	var total int64
	for _, e := range entries[:len(entries)-1] {
		mod := 1.0
		if e.PriceModifier != nil {
			mod = *e.PriceModifier
		}
		total += int64(math.Round(float64(room.PricePerNight) * mod))
	}
	return total
}

// AveragePerNight is WithModifiers spread over the nights covered by entries.
func AveragePerNight(room domain.Room, entries []domain.AvailabilityEntry) int64 {
	if len(entries) <= 1 {
		return room.PricePerNight
	}
	nights := len(entries) - 1
	return int64(math.Round(float64(WithModifiers(room, entries)) / float64(nights)))
}

func HasWeekendModifier(entries []domain.AvailabilityEntry) bool {
	for _, e := range entries {
		if e.PriceModifier != nil && *e.PriceModifier > 1.0 {
			return true
		}
	}
	return false
}

// Format renders a whole amount as "$1,234,567".
func Format(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func FormatPerNight(amount int64) string { return Format(amount) + "/night" }

func DiscountPercentage(original, discounted int64) int {
	if original == 0 {
		return 0
	}
	return int(math.Round(float64(original-discounted) / float64(original) * 100))
}
