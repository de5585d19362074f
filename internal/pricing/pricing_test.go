package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coral_cove/internal/domain"
	"coral_cove/internal/pricing"
)

func f(v float64) *float64 { return &v }

func TestTotal(t *testing.T) {
	assert.Equal(t, int64(495000), pricing.Total(165000, 3))
	assert.Equal(t, int64(0), pricing.Total(165000, 0))
	assert.Equal(t, int64(0), pricing.Total(165000, -2))
	assert.Equal(t, int64(0), pricing.RoomTotal(nil, 3))
	assert.Equal(t, int64(600000), pricing.RoomTotal(&domain.Room{PricePerNight: 200000}, 3))
	assert.Equal(t, int64(0), pricing.RoomTotal(&domain.Room{PricePerNight: 200000}, 0))
	assert.Equal(t, int64(-495000), pricing.RoomTotal(&domain.Room{PricePerNight: 165000}, -3))
}

func TestWithModifiersIsDisplayOnly(t *testing.T) {
	room := domain.Room{PricePerNight: 100000}
	entries := []domain.AvailabilityEntry{
		{Date: "2025-06-05", PriceModifier: f(1.0)},  // Thu
		{Date: "2025-06-06", PriceModifier: f(1.15)}, // Fri
		{Date: "2025-06-07", PriceModifier: f(1.15)}, // checkout day, excluded
	}
	assert.Equal(t, int64(215000), pricing.WithModifiers(room, entries))
	assert.Equal(t, int64(107500), pricing.AveragePerNight(room, entries))
	assert.True(t, pricing.HasWeekendModifier(entries))
	// the stored total never includes the surcharge
	assert.Equal(t, int64(200000), pricing.Total(room.PricePerNight, 2))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$495,000", pricing.Format(495000))
	assert.Equal(t, "$2,200,000", pricing.Format(2200000))
	assert.Equal(t, "$0", pricing.Format(0))
	assert.Equal(t, "$999/night", pricing.FormatPerNight(999))
}

func TestConvertUSDToLocal(t *testing.T) {
	got, ok := pricing.ConvertUSDToLocal(100, "CLP")
	assert.True(t, ok)
	assert.Equal(t, int64(88000), got)

	_, ok = pricing.ConvertUSDToLocal(100, "EUR")
	assert.False(t, ok)
}
