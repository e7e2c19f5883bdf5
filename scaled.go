package money

import (
	"fmt"
	"math/big"
	"strings"
)

// MaxScale is the largest number of fractional digits a currency can carry.
// It accommodates 18-decimal tokens such as ETH.
const MaxScale = 18

// pow10 returns 10^n as a big integer.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// splitLiteral validates a decimal literal and splits it into sign,
// integer digits, and fractional digits.
// The accepted grammar is an optional leading minus, decimal digits, and at
// most one decimal point; exponents, digit grouping, and all other
// characters are rejected with [ErrFormat].
func splitLiteral(literal string) (neg bool, intpart, fracpart string, err error) {
	s := literal
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	intpart, fracpart, _ = strings.Cut(s, ".")
	for _, part := range [2]string{intpart, fracpart} {
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return false, "", "", fmt.Errorf("unexpected character %q in %q: %w", part[i], literal, ErrFormat)
			}
		}
	}
	if len(intpart)+len(fracpart) == 0 {
		return false, "", "", fmt.Errorf("no digits in %q: %w", literal, ErrFormat)
	}
	return neg, intpart, fracpart, nil
}

// ParseScaled converts a decimal literal to an integer number of minor
// units at the given scale.
// The fractional part of the literal is zero-padded on the right up to the
// scale, so ParseScaled("1.5", 2) returns 150.
// The result is arbitrary precision: the only practical bound on its
// magnitude is the length of the input string.
//
// ParseScaled returns an error if:
//   - the scale is negative or greater than [MaxScale];
//   - the literal is malformed ([ErrFormat]);
//   - the literal has more fractional digits than the scale permits
//     ([PrecisionError]).
func ParseScaled(literal string, scale int) (*big.Int, error) {
	if scale < 0 || scale > MaxScale {
		return nil, fmt.Errorf("scale %d is outside [0, %d]", scale, MaxScale)
	}
	neg, intpart, fracpart, err := splitLiteral(literal)
	if err != nil {
		return nil, err
	}
	if len(fracpart) > scale {
		return nil, &PrecisionError{Digits: len(fracpart), Scale: scale}
	}
	digits := intpart + fracpart + strings.Repeat("0", scale-len(fracpart))
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		// Unreachable: digits has been validated above.
		return nil, fmt.Errorf("parsing %q: %w", literal, ErrFormat)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

// formatScaled renders minor units back into a canonical decimal literal,
// reversing the padding transform of [ParseScaled].
func formatScaled(v *big.Int, scale int) string {
	s := new(big.Int).Abs(v).String()
	if scale > 0 {
		if len(s) < scale+1 {
			s = strings.Repeat("0", scale+1-len(s)) + s
		}
		s = s[:len(s)-scale] + "." + s[len(s)-scale:]
	}
	if v.Sign() < 0 {
		s = "-" + s
	}
	return s
}
