package money

import (
	"fmt"
	"math/big"
)

// Ratio represents an exact rational multiplier or divisor.
// Fractional scalars such as "1.5" are carried as numerator/denominator
// pairs, never as binary floating point, so chained operations accumulate
// no representation error.
// The zero value is 0/1.
//
// A Ratio is normalized on construction: the denominator is positive, the
// sign lives in the numerator, and the fraction is reduced to lowest terms.
type Ratio struct {
	num *big.Int // signed numerator
	den *big.Int // positive denominator
}

// newRatio normalizes and reduces num/den.
// The inputs are not retained.
func newRatio(num, den *big.Int) (Ratio, error) {
	if den.Sign() == 0 {
		return Ratio{}, ErrDivisionByZero
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	if g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d); g.Cmp(intOne) > 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	return Ratio{num: n, den: d}, nil
}

// NewRatio returns the ratio num/den reduced to lowest terms.
//
// NewRatio returns an error if den is zero ([ErrDivisionByZero]).
func NewRatio(num, den int64) (Ratio, error) {
	r, err := newRatio(big.NewInt(num), big.NewInt(den))
	if err != nil {
		return Ratio{}, fmt.Errorf("constructing ratio %d/%d: %w", num, den, err)
	}
	return r, nil
}

// MustNewRatio is like [NewRatio] but panics if the ratio cannot be
// constructed.
// It simplifies safe initialization of global variables holding ratios.
func MustNewRatio(num, den int64) Ratio {
	r, err := NewRatio(num, den)
	if err != nil {
		panic(fmt.Sprintf("NewRatio(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// ParseRatio converts a decimal literal to an exact ratio by digit
// counting: the digits become the numerator and the denominator is ten to
// the power of the number of fractional digits, so "0.75" becomes 3/4 and
// "1.5" becomes 3/2.
//
// ParseRatio returns [ErrFormat] if the literal is malformed.
func ParseRatio(literal string) (Ratio, error) {
	neg, intpart, fracpart, err := splitLiteral(literal)
	if err != nil {
		return Ratio{}, err
	}
	num, ok := new(big.Int).SetString(intpart+fracpart, 10)
	if !ok {
		// Unreachable: the digits have been validated above.
		return Ratio{}, fmt.Errorf("parsing %q: %w", literal, ErrFormat)
	}
	if neg {
		num.Neg(num)
	}
	r, err := newRatio(num, pow10(len(fracpart)))
	if err != nil {
		return Ratio{}, fmt.Errorf("parsing %q: %w", literal, err)
	}
	return r, nil
}

// MustParseRatio is like [ParseRatio] but panics if the literal cannot be
// parsed.
// It simplifies safe initialization of global variables holding ratios.
func MustParseRatio(literal string) Ratio {
	r, err := ParseRatio(literal)
	if err != nil {
		panic(fmt.Sprintf("ParseRatio(%q) failed: %v", literal, err))
	}
	return r
}

// Num returns a copy of the numerator.
func (r Ratio) Num() *big.Int {
	if r.num == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(r.num)
}

// Den returns a copy of the denominator.
func (r Ratio) Den() *big.Int {
	if r.den == nil {
		return big.NewInt(1)
	}
	return new(big.Int).Set(r.den)
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r = 0
//	+1 if r > 0
func (r Ratio) Sign() int {
	if r.num == nil {
		return 0
	}
	return r.num.Sign()
}

// IsZero returns:
//
//	true  if r = 0
//	false otherwise
func (r Ratio) IsZero() bool {
	return r.Sign() == 0
}

// IsPos returns:
//
//	true  if r > 0
//	false otherwise
func (r Ratio) IsPos() bool {
	return r.Sign() > 0
}

// IsOne returns:
//
//	true  if r = 1
//	false otherwise
func (r Ratio) IsOne() bool {
	return r.num != nil && r.num.Cmp(intOne) == 0 && r.den.Cmp(intOne) == 0
}

// Inv returns the reciprocal of the ratio.
//
// Inv returns an error if the ratio is zero ([ErrDivisionByZero]).
func (r Ratio) Inv() (Ratio, error) {
	if r.IsZero() {
		return Ratio{}, fmt.Errorf("inverting %v: %w", r, ErrDivisionByZero)
	}
	q, err := newRatio(r.den, r.num)
	if err != nil {
		return Ratio{}, err
	}
	return q, nil
}

// Mul returns the exact product of ratios r and q.
func (r Ratio) Mul(q Ratio) Ratio {
	p, err := newRatio(
		new(big.Int).Mul(r.Num(), q.Num()),
		new(big.Int).Mul(r.Den(), q.Den()),
	)
	if err != nil {
		// Unreachable: both denominators are positive.
		panic(fmt.Sprintf("multiplying %v by %v failed: %v", r, q, err))
	}
	return p
}

// Cmp compares ratios and returns:
//
//	-1 if r < q
//	 0 if r = q
//	+1 if r > q
func (r Ratio) Cmp(q Ratio) int {
	a := new(big.Int).Mul(r.Num(), q.Den())
	b := new(big.Int).Mul(q.Num(), r.Den())
	return a.Cmp(b)
}

// String implements the [fmt.Stringer] interface.
// Integral ratios render as a bare integer, all others as "num/den".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Ratio) String() string {
	num, den := r.Num(), r.Den()
	if den.Cmp(intOne) == 0 {
		return num.String()
	}
	return num.String() + "/" + den.String()
}
