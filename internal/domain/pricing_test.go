package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rate(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(v))
}

func TestCalculatePrice(t *testing.T) {
	tests := []struct {
		name    string
		in      PriceInput
		want    string
		clamped bool
	}{
		{
			name: "rate times duration plus call-out",
			in: PriceInput{
				BaseRate:      rate("20"),
				DurationHours: decimal.NewFromInt(2),
				CallOutFee:    decimal.NewFromInt(5),
			},
			want: "45.00",
		},
		{
			name: "fractional duration",
			in:   PriceInput{BaseRate: rate("10"), DurationHours: decimal.RequireFromString("1.5")},
			want: "15.00",
		},
		{
			name: "emergency and discounts",
			in: PriceInput{
				BaseRate:         rate("30"),
				DurationHours:    decimal.NewFromInt(2),
				EmergencyPremium: decimal.NewFromInt(30),
				DiscountAmount:   decimal.NewFromInt(5),
				DiscountPercent:  decimal.NewFromInt(10),
			},
			want: "79.00",
		},
		{
			name: "rounds to cents",
			in:   PriceInput{BaseRate: rate("33.333"), DurationHours: decimal.NewFromInt(1)},
			want: "33.33",
		},
		{
			name:    "negative total is clamped",
			in:      PriceInput{BaseRate: rate("10"), DurationHours: decimal.NewFromInt(1), DiscountAmount: decimal.NewFromInt(50)},
			want:    "0.00",
			clamped: true,
		},
		{
			name: "free service",
			in:   PriceInput{BaseRate: rate("0"), DurationHours: decimal.NewFromInt(1)},
			want: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculatePrice(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.FinalAmount.StringFixed(2))
			assert.Equal(t, tt.clamped, got.Clamped)
		})
	}
}

func TestCalculatePrice_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   PriceInput
	}{
		{"zero duration", PriceInput{BaseRate: rate("10"), DurationHours: decimal.Zero}},
		{"negative duration", PriceInput{BaseRate: rate("10"), DurationHours: decimal.NewFromInt(-1)}},
		{"missing rate", PriceInput{DurationHours: decimal.NewFromInt(1)}},
		{"negative rate", PriceInput{BaseRate: rate("-1"), DurationHours: decimal.NewFromInt(1)}},
		{"negative fee", PriceInput{BaseRate: rate("10"), DurationHours: decimal.NewFromInt(1), CallOutFee: decimal.NewFromInt(-1)}},
		{"percent over 100", PriceInput{BaseRate: rate("10"), DurationHours: decimal.NewFromInt(1), DiscountPercent: decimal.NewFromInt(101)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculatePrice(tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCalculatePrice_Deterministic(t *testing.T) {
	in := PriceInput{BaseRate: rate("17.5"), DurationHours: MinutesToHours(100), CallOutFee: decimal.NewFromInt(3)}

	first, err := CalculatePrice(in)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := CalculatePrice(in)
		require.NoError(t, err)
		assert.True(t, first.FinalAmount.Equal(again.FinalAmount))
	}
	assert.Equal(t, "32.17", first.FinalAmount.StringFixed(2))
}

func TestLateCancellationFee(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	b := &Booking{StartsAt: start, Status: BookingStatusConfirmed, FinalAmount: decimal.RequireFromString("40.00")}
	feeRate := decimal.RequireFromString("0.2")

	fee := LateCancellationFee(b, start.Add(-2*time.Hour), 24*time.Hour, feeRate)
	assert.Equal(t, "8.00", fee.StringFixed(2))

	fee = LateCancellationFee(b, start.Add(-48*time.Hour), 24*time.Hour, feeRate)
	assert.True(t, fee.IsZero())

	b.Status = BookingStatusPending
	fee = LateCancellationFee(b, start.Add(-2*time.Hour), 24*time.Hour, feeRate)
	assert.True(t, fee.IsZero())
}
