package money

import (
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Amount type represents a monetary amount: an arbitrary-precision signed
// count of minor units bound to a currency descriptor.
// All fractional information is folded into the integer via the currency's
// scale, so "USD 1.50" is stored as 150 minor units.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown
// currency.
//
// An Amount is immutable: every operation returns a new instance, and
// instances may be freely shared between goroutines.
type Amount struct {
	curr  Currency
	value *big.Int // minor units
}

// newAmount wraps minor units without copying.
// The caller must hand over ownership of v.
func newAmount(c Currency, v *big.Int) Amount {
	return Amount{curr: c, value: v}
}

// units returns the internal minor-unit integer for read-only use.
func (a Amount) units() *big.Int {
	if a.value == nil {
		return new(big.Int)
	}
	return a.value
}

// NewAmount returns an amount equal to units minor units of the given
// currency, e.g. NewAmount(USD, big.NewInt(150)) is "USD 1.50".
// A nil units value is treated as zero.
// See also method [Amount.Units].
func NewAmount(curr Currency, units *big.Int) Amount {
	if units == nil {
		return newAmount(curr, new(big.Int))
	}
	return newAmount(curr, new(big.Int).Set(units))
}

// NewAmountFromInt64 returns an amount equal to units minor units of the
// given currency.
// See also method [Amount.MinorUnits].
func NewAmountFromInt64(curr Currency, units int64) Amount {
	return newAmount(curr, big.NewInt(units))
}

// NewAmountFromString converts a decimal literal to an amount in the given
// currency, scaling it by the currency's scale.
// Unlike [ParseAmount] it accepts any descriptor, including ones created
// with [NewCurrency].
//
// NewAmountFromString returns an error if:
//   - the literal is malformed ([ErrFormat]);
//   - the literal has more fractional digits than the currency's scale
//     ([PrecisionError]).
func NewAmountFromString(curr Currency, amount string) (Amount, error) {
	v, err := ParseScaled(amount, curr.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newAmount(curr, v), nil
}

// ParseAmount converts currency and decimal strings to an amount.
// The currency must be in the built-in table; for custom descriptors use
// [NewAmountFromString].
// See also constructors [ParseCurr] and [ParseScaled].
func ParseAmount(curr, amount string) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	return NewAmountFromString(c, amount)
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings
// cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Units returns a copy of the amount's minor units.
// See also constructor [NewAmount].
func (a Amount) Units() *big.Int {
	return new(big.Int).Set(a.units())
}

// MinorUnits returns the amount's minor units as an int64.
// If the result cannot be represented as an int64, then false is returned.
// See also constructor [NewAmountFromInt64].
func (a Amount) MinorUnits() (units int64, ok bool) {
	v := a.units()
	if !v.IsInt64() {
		return 0, false
	}
	return v.Int64(), true
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.units().Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Sign() == 0
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.Sign() < 0
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.Sign() > 0
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return newAmount(a.curr, new(big.Int).Abs(a.units()))
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return newAmount(a.curr, new(big.Int).Neg(a.units()))
}

// Zero returns an amount with a value of 0, having the same currency as
// amount a.
func (a Amount) Zero() Amount {
	return newAmount(a.curr, new(big.Int))
}

// One returns an amount with a value of 1 minor unit, having the same
// currency as amount a.
func (a Amount) One() Amount {
	return newAmount(a.curr, big.NewInt(1))
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.curr.Code() == b.curr.Code()
}

// Add returns the exact sum of amounts a and b.
//
// Add returns an error if amounts are denominated in different currencies
// ([ErrCurrencyMismatch]).
func (a Amount) Add(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, ErrCurrencyMismatch)
	}
	return newAmount(a.curr, new(big.Int).Add(a.units(), b.units())), nil
}

// Sub returns the exact difference between amounts a and b.
//
// Sub returns an error if amounts are denominated in different currencies
// ([ErrCurrencyMismatch]).
func (a Amount) Sub(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, ErrCurrencyMismatch)
	}
	return newAmount(a.curr, new(big.Int).Sub(a.units(), b.units())), nil
}

// Mul returns the product of amount a and factor e, but only if the product
// is exactly representable in minor units.
//
// Mul returns [RoundingRequiredError] if the product is inexact; the error
// carries the unrounded result, and the caller can retry with
// [Amount.MulRound] and an explicit policy.
func (a Amount) Mul(e Ratio) (Amount, error) {
	c, err := a.mul(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) mul(e Ratio) (Amount, error) {
	num := new(big.Int).Mul(a.units(), e.Num())
	den := e.Den()
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() != 0 {
		return Amount{}, &RoundingRequiredError{Op: "mul", Num: num, Den: den}
	}
	return newAmount(a.curr, q), nil
}

// MulRound returns the product of amount a and factor e, rounded to minor
// units according to the given policy.
// If the product is exact, the policy has no effect.
// See also method [Amount.Mul].
func (a Amount) MulRound(e Ratio, policy RoundingPolicy) (Amount, error) {
	num := new(big.Int).Mul(a.units(), e.Num())
	q, err := RoundQuotient(num, e.Den(), policy)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return newAmount(a.curr, q), nil
}

// Div returns the quotient of amount a and divisor e, but only if the
// quotient is exactly representable in minor units.
//
// Div returns an error if:
//   - the divisor is zero ([ErrDivisionByZero]);
//   - the quotient is inexact ([RoundingRequiredError]); the caller can
//     retry with [Amount.DivRound] and an explicit policy.
func (a Amount) Div(e Ratio) (Amount, error) {
	c, err := a.div(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) div(e Ratio) (Amount, error) {
	if e.IsZero() {
		return Amount{}, ErrDivisionByZero
	}
	num := new(big.Int).Mul(a.units(), e.Den())
	den := e.Num()
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() != 0 {
		return Amount{}, &RoundingRequiredError{Op: "div", Num: num, Den: den}
	}
	return newAmount(a.curr, q), nil
}

// DivRound returns the quotient of amount a and divisor e, rounded to minor
// units according to the given policy.
// If the quotient is exact, the policy has no effect.
// See also method [Amount.Div].
func (a Amount) DivRound(e Ratio, policy RoundingPolicy) (Amount, error) {
	if e.IsZero() {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, ErrDivisionByZero)
	}
	num := new(big.Int).Mul(a.units(), e.Den())
	q, err := RoundQuotient(num, e.Num(), policy)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return newAmount(a.curr, q), nil
}

// Round returns an amount quantized to the given number of digits after
// the decimal point according to the given policy.
// The result is still denominated in the amount's currency: rounding
// "USDC 1.234567" to 2 digits yields "USDC 1.230000".
// If the given scale is not smaller than the currency's scale, the amount
// is returned unchanged.
func (a Amount) Round(scale int, policy RoundingPolicy) (Amount, error) {
	if scale < 0 {
		scale = 0
	}
	if scale >= a.curr.Scale() {
		return a, nil
	}
	f := pow10(a.curr.Scale() - scale)
	q, err := RoundQuotient(a.units(), f, policy)
	if err != nil {
		return Amount{}, fmt.Errorf("rounding %v to %d digit(s): %w", a, scale, err)
	}
	return newAmount(a.curr, q.Mul(q, f)), nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if amounts are denominated in different currencies
// ([ErrCurrencyMismatch]).
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.units().Cmp(b.units()), nil
}

// Equal reports whether amounts have the same minor units and the same
// currency code.
// Amounts in different currencies are never equal.
func (a Amount) Equal(b Amount) bool {
	return a.SameCurr(b) && a.units().Cmp(b.units()) == 0
}

// Min returns the smaller amount.
//
// Min returns an error if amounts are denominated in different currencies
// ([ErrCurrencyMismatch]).
func (a Amount) Min(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c <= 0: // a <= b
		return a, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
//
// Max returns an error if amounts are denominated in different currencies
// ([ErrCurrencyMismatch]).
func (a Amount) Max(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c >= 0: // a >= b
		return a, nil
	default:
		return b, nil
	}
}

// Text returns the canonical decimal literal of the amount, reversing the
// scaling transform of [ParseAmount]: "USD 1.50" renders as "1.50".
// The result always carries exactly as many fractional digits as the
// currency's scale.
// See also method [Amount.String].
func (a Amount) Text() string {
	return formatScaled(a.units(), a.curr.Scale())
}

// text renders the amount with the given number of fractional digits,
// rounding half to even when digits must be dropped.
func (a Amount) text(scale int) string {
	s := a.curr.Scale()
	switch {
	case scale > s:
		v := new(big.Int).Mul(a.units(), pow10(scale-s))
		return formatScaled(v, scale)
	case scale < s:
		// The policy table never fails for a valid policy and nonzero divisor.
		v, _ := RoundQuotient(a.units(), pow10(s-scale), HalfEven)
		return formatScaled(v, scale)
	default:
		return a.Text()
	}
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, e.g. "USD 1.50".
// See also methods [Currency.String], [Amount.Text], [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.curr.Code() + " " + a.Text()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example    | Description                |
//	| ------ | ---------- | -------------------------- |
//	| %s, %v | USD 5.67   | Currency and amount        |
//	| %q     | "USD 5.67" | Quoted currency and amount |
//	| %f     | 5.67       | Amount                     |
//	| %d     | 567        | Amount in minor units      |
//	| %c     | USD        | Currency                   |
//
// The '-' format flag can be used with all verbs, and the '+' flag with all
// verbs except %c.
// Precision is only supported for the %f verb and defaults to the scale of
// the currency; excess digits are rounded half to even.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V', 'q', 'Q':
		s = a.String()
	case 'f', 'F':
		if p, ok := state.Precision(); ok {
			s = a.text(p)
		} else {
			s = a.Text()
		}
	case 'd', 'D':
		s = a.units().String()
	case 'c', 'C':
		a.curr.Format(state, verb)
		return
	default:
		fmt.Fprintf(state, "%%!%c(money.Amount=%s)", verb, a.String())
		return
	}
	if state.Flag('+') && !a.IsNeg() && verb != 'q' && verb != 'Q' {
		s = "+" + s
	}
	if verb == 'q' || verb == 'Q' {
		s = `"` + s + `"`
	}
	if w, ok := state.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	//nolint:errcheck
	io.WriteString(state, s)
}
