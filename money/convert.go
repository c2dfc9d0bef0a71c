// Package money provides fixed-point cent arithmetic, display formatting,
// and currency-rate conversion. Monetary values are integer minor units and
// exchange rates are pre-scaled integers; floating point never touches an
// amount.
package money

import (
	"github.com/shopspring/decimal"

	"github.com/pocketbudget/engine/domain/entity"
	domainerror "github.com/pocketbudget/engine/domain/error"
)

// RatePrecision is the fixed-point scale for stored exchange rates: a rate
// of 1.0 is stored as 1_000_000, giving six significant decimal digits.
const RatePrecision int64 = 1_000_000

// Convert converts an amount in minor units of currency X to currency Y
// given the stored X→Y rate, rounding half-up to the nearest minor unit.
func Convert(amount, rate int64) int64 {
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(rate)).
		Div(decimal.NewFromInt(RatePrecision)).
		Round(0).
		IntPart()
}

// RateFromString parses a human-entered decimal rate into its fixed-point
// integer form, preserving the invariant rate == round(decimal × RatePrecision).
func RateFromString(display string) (int64, error) {
	d, err := decimal.NewFromString(display)
	if err != nil {
		return 0, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidRate,
			"exchange rate is not a decimal number",
			domainerror.ErrInvalidRate,
		)
	}
	if !d.IsPositive() {
		return 0, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidRate,
			"exchange rate must be positive",
			domainerror.ErrInvalidRate,
		)
	}
	return d.Mul(decimal.NewFromInt(RatePrecision)).Round(0).IntPart(), nil
}

// RateString renders a fixed-point rate back to its decimal display form.
func RateString(rate int64) string {
	return decimal.NewFromInt(rate).Div(decimal.NewFromInt(RatePrecision)).String()
}

// NewExchangeRate builds a rate row from a display string, keeping the
// integer and display representations consistent.
func NewExchangeRate(fromCode, toCode, display string) (entity.ExchangeRate, error) {
	rate, err := RateFromString(display)
	if err != nil {
		return entity.ExchangeRate{}, err
	}
	return entity.ExchangeRate{
		FromCode: fromCode,
		ToCode:   toCode,
		Rate:     rate,
		Display:  display,
	}, nil
}
