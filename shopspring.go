package money

import (
	"fmt"
	"math/big"

	shopspring "github.com/shopspring/decimal"
)

// Interop with [shopspring.Decimal], the de facto standard decimal type in
// Go applications.
// Its coefficient is a big.Int, so conversions out of an amount are always
// exact; conversions into an amount are exact or fail.

// NewAmountFromShopspring returns an amount with the specified currency and
// value.
// See also method [Amount.Shopspring].
//
// NewAmountFromShopspring returns [PrecisionError] if the decimal has more
// fractional digits than the currency's scale.
func NewAmountFromShopspring(curr Currency, d shopspring.Decimal) (Amount, error) {
	a, err := NewAmountFromString(curr, d.String())
	if err != nil {
		return Amount{}, fmt.Errorf("converting decimal: %w", err)
	}
	return a, nil
}

// Shopspring returns the decimal representation of the amount.
// The conversion is exact.
// See also constructor [NewAmountFromShopspring].
func (a Amount) Shopspring() shopspring.Decimal {
	return shopspring.NewFromBigInt(a.Units(), -int32(a.Curr().Scale()))
}

// NewRatioFromShopspring derives an exact ratio from a decimal scalar.
// The conversion preserves the decimal's coefficient and exponent exactly,
// so no digits are lost regardless of magnitude.
func NewRatioFromShopspring(d shopspring.Decimal) (Ratio, error) {
	num := new(big.Int).Set(d.Coefficient())
	den := big.NewInt(1)
	if exp := int(d.Exponent()); exp < 0 {
		den = pow10(-exp)
	} else if exp > 0 {
		num.Mul(num, pow10(exp))
	}
	r, err := newRatio(num, den)
	if err != nil {
		// Unreachable: den is a positive power of ten.
		return Ratio{}, fmt.Errorf("converting decimal %v: %w", d, err)
	}
	return r, nil
}
