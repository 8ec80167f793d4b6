package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type PriceInput struct {
	BaseRate         decimal.NullDecimal
	DurationHours    decimal.Decimal
	CallOutFee       decimal.Decimal
	EmergencyPremium decimal.Decimal
	DiscountAmount   decimal.Decimal
	DiscountPercent  decimal.Decimal
}

type PriceBreakdown struct {
	BaseAmount       decimal.Decimal
	CallOutFee       decimal.Decimal
	EmergencyPremium decimal.Decimal
	DiscountAmount   decimal.Decimal
	FinalAmount      decimal.Decimal
	// Clamped is set when the inputs produced a negative total that was raised to zero.
	Clamped bool
}

// CalculatePrice derives a booking total: rate * hours + call-out + emergency - discount,
// rounded to cents and never below zero.
func CalculatePrice(in PriceInput) (PriceBreakdown, error) {
	if !in.BaseRate.Valid {
		return PriceBreakdown{}, fmt.Errorf("%w: base rate is missing", ErrInvalidInput)
	}
	if in.BaseRate.Decimal.IsNegative() {
		return PriceBreakdown{}, fmt.Errorf("%w: base rate must not be negative", ErrInvalidInput)
	}
	if !in.DurationHours.IsPositive() {
		return PriceBreakdown{}, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if in.CallOutFee.IsNegative() || in.EmergencyPremium.IsNegative() || in.DiscountAmount.IsNegative() {
		return PriceBreakdown{}, fmt.Errorf("%w: fees and discounts must not be negative", ErrInvalidInput)
	}
	if in.DiscountPercent.IsNegative() || in.DiscountPercent.GreaterThan(hundred) {
		return PriceBreakdown{}, fmt.Errorf("%w: discount percent must be between 0 and 100", ErrInvalidInput)
	}

	base := in.BaseRate.Decimal.Mul(in.DurationHours)
	discount := in.DiscountAmount.Add(base.Mul(in.DiscountPercent).Div(hundred))

	res := PriceBreakdown{
		BaseAmount:       base.Round(2),
		CallOutFee:       in.CallOutFee.Round(2),
		EmergencyPremium: in.EmergencyPremium.Round(2),
		DiscountAmount:   discount.Round(2),
	}

	final := base.Add(in.CallOutFee).Add(in.EmergencyPremium).Sub(discount).Round(2)
	if final.IsNegative() {
		final = decimal.Zero
		res.Clamped = true
	}
	res.FinalAmount = final

	return res, nil
}

// MinutesToHours converts the stored duration back into the pricing unit.
func MinutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60))
}

// LateCancellationFee charges rate * final amount when a confirmed booking is
// cancelled less than window before it starts.
func LateCancellationFee(b *Booking, now time.Time, window time.Duration, rate decimal.Decimal) decimal.Decimal {
	if b.Status != BookingStatusConfirmed || window <= 0 {
		return decimal.Zero
	}
	if b.StartsAt.Sub(now) >= window {
		return decimal.Zero
	}
	return b.FinalAmount.Mul(rate).Round(2)
}
