package money

import (
	"fmt"
	"math/big"
)

// ExchangeRate represents a unidirectional exchange rate between two
// currencies, carried as an exact ratio of quote units per base unit.
// The zero value corresponds to an exchange rate of "XXX/XXX 0", where XXX
// indicates an unknown currency.
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base  Currency // currency being exchanged
	quote Currency // currency being obtained in exchange for the base currency
	rate  Ratio    // units of quote currency per unit of the base currency
}

// NewExchRate returns a new exchange rate between the base and quote
// currencies.
//
// NewExchRate returns an error if:
//   - the rate is not positive;
//   - the base and quote currencies are the same, but the rate is not
//     equal to 1.
func NewExchRate(base, quote Currency, rate Ratio) (ExchangeRate, error) {
	if !rate.IsPos() {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be positive")
	}
	if base.Code() == quote.Code() && !rate.IsOne() {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be equal to 1")
	}
	return ExchangeRate{base: base, quote: quote, rate: rate}, nil
}

// ParseExchRate converts currency and decimal strings to an exchange rate.
// See also constructors [ParseCurr] and [ParseRatio].
func ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing base currency: %w", err)
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing quote currency: %w", err)
	}
	r, err := ParseRatio(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing rate: %w", err)
	}
	x, err := NewExchRate(b, q, r)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("constructing rate: %w", err)
	}
	return x, nil
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the
// strings cannot be parsed.
// It simplifies safe initialization of global variables holding exchange rates.
func MustParseExchRate(base, quote, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Rate returns the exact ratio of quote units per base unit.
func (r ExchangeRate) Rate() Ratio {
	return r.rate
}

// CanConv returns true if [ExchangeRate.Conv] can be used to convert the
// given amount.
func (r ExchangeRate) CanConv(b Amount) bool {
	return b.Curr().Code() == r.base.Code() &&
		r.base.Code() != "XXX" &&
		r.quote.Code() != "XXX" &&
		r.rate.IsPos()
}

// convRatio returns the exact factor that maps base minor units to quote
// minor units, folding in the scale difference between the two currencies.
func (r ExchangeRate) convRatio() Ratio {
	f, err := newRatio(
		new(big.Int).Mul(r.rate.Num(), pow10(r.quote.Scale())),
		new(big.Int).Mul(r.rate.Den(), pow10(r.base.Scale())),
	)
	if err != nil {
		// Unreachable: the rate denominator is positive.
		panic(fmt.Sprintf("%q.convRatio() failed: %v", r, err))
	}
	return f
}

// Conv returns the amount converted from the base currency to the quote
// currency, rounded to the quote currency's minor units according to the
// given policy.
//
// Conv returns an error if the base currency of the exchange rate does not
// match the currency of the given amount ([ErrCurrencyMismatch]).
func (r ExchangeRate) Conv(b Amount, policy RoundingPolicy) (Amount, error) {
	if !r.CanConv(b) {
		return Amount{}, fmt.Errorf("converting %v with %v: %w", b, r, ErrCurrencyMismatch)
	}
	a, err := newAmount(r.quote, b.units()).MulRound(r.convRatio(), policy)
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v with %v: %w", b, r, err)
	}
	return a, nil
}

// ConvExact is like [ExchangeRate.Conv] but requires the conversion to be
// exactly representable in the quote currency's minor units.
//
// ConvExact returns [RoundingRequiredError] if the conversion is inexact.
func (r ExchangeRate) ConvExact(b Amount) (Amount, error) {
	if !r.CanConv(b) {
		return Amount{}, fmt.Errorf("converting %v with %v: %w", b, r, ErrCurrencyMismatch)
	}
	a, err := newAmount(r.quote, b.units()).Mul(r.convRatio())
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v with %v: %w", b, r, err)
	}
	return a, nil
}

// Inv returns the inverse of the exchange rate.
//
// Inv returns an error if the rate is zero ([ErrDivisionByZero]).
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	inv, err := r.rate.Inv()
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return NewExchRate(r.quote, r.base, inv)
}

// SameCurr returns true if exchange rates are denominated in the same base
// and quote currencies.
// See also methods [ExchangeRate.Base] and [ExchangeRate.Quote].
func (r ExchangeRate) SameCurr(q ExchangeRate) bool {
	return q.base.Code() == r.base.Code() && q.quote.Code() == r.quote.Code()
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an exchange rate, e.g. "USD/EUR 9/10".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.base.Code() + "/" + r.quote.Code() + " " + r.rate.String()
}
