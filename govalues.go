package money

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Interop with [decimal.Decimal], a fixed-precision (19 digit) decimal type.
// Conversions are string-mediated and therefore exact: an amount either
// converts without loss or the conversion fails.

// NewAmountFromDecimal returns an amount with the specified currency and
// value.
// See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns [PrecisionError] if the decimal has more
// fractional digits than the currency's scale.
func NewAmountFromDecimal(curr Currency, d decimal.Decimal) (Amount, error) {
	a, err := NewAmountFromString(curr, d.String())
	if err != nil {
		return Amount{}, fmt.Errorf("converting decimal: %w", err)
	}
	return a, nil
}

// Decimal returns the decimal representation of the amount.
// See also constructor [NewAmountFromDecimal].
//
// Decimal returns an error if the amount does not fit the decimal type's
// 19-digit coefficient.
func (a Amount) Decimal() (decimal.Decimal, error) {
	d, err := decimal.Parse(a.Text())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", a, err)
	}
	return d, nil
}

// NewRatioFromDecimal derives an exact ratio from a decimal scalar by digit
// counting, the same way [ParseRatio] does.
func NewRatioFromDecimal(d decimal.Decimal) (Ratio, error) {
	r, err := ParseRatio(d.String())
	if err != nil {
		return Ratio{}, fmt.Errorf("converting decimal: %w", err)
	}
	return r, nil
}
