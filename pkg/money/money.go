// Package money converts between the API's decimal rand amounts and the
// engine's integer minor units. All internal arithmetic stays on int64 cents
// so bid comparisons never suffer floating-point drift.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

var centFactor = decimal.NewFromInt(100)

// ParseCents parses a decimal string like "123.45" into cents. Amounts with
// more than two fractional digits or non-positive values are rejected.
func ParseCents(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}
	if d.Exponent() < -2 {
		return 0, fmt.Errorf("%w: more than two decimal places: %s", ErrInvalidAmount, s)
	}
	cents := d.Mul(centFactor)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}
	if cents.Sign() <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive: %s", ErrInvalidAmount, s)
	}
	return cents.IntPart(), nil
}

// FormatCents renders cents as a decimal string with two fractional digits.
func FormatCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(centFactor).StringFixed(2)
}
