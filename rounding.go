package money

import "math/big"

var intOne = big.NewInt(1)

// RoundQuotient returns num / den rounded to an integer according to the
// given policy.
// The quotient is computed exactly: the fractional remainder is classified
// as less than, equal to, or greater than one half by comparing 2*|rem|
// against |den|, so no intermediate result is ever approximated.
// If num is evenly divisible by den, the exact quotient is returned and the
// policy has no effect.
//
// RoundQuotient returns an error if:
//   - den is zero ([ErrDivisionByZero]);
//   - the policy is not one of the defined constants ([UnsupportedPolicyError]).
func RoundQuotient(num, den *big.Int, policy RoundingPolicy) (*big.Int, error) {
	if den.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() == 0 {
		return q, nil
	}

	// The exact quotient is positive when dividend and divisor agree in sign.
	// r is nonzero here, so num is nonzero as well.
	pos := (num.Sign() > 0) == (den.Sign() > 0)

	// half < 0 when |rem| < den/2, half = 0 on an exact tie, half > 0 otherwise.
	half := new(big.Int).Lsh(new(big.Int).Abs(r), 1).CmpAbs(den)

	away := func() *big.Int {
		if pos {
			return q.Add(q, intOne)
		}
		return q.Sub(q, intOne)
	}

	switch policy {
	case Trunc:
		return q, nil
	case Floor:
		if pos {
			return q, nil
		}
		return q.Sub(q, intOne), nil
	case Ceil:
		if pos {
			return q.Add(q, intOne), nil
		}
		return q, nil
	case HalfUp:
		if half >= 0 {
			return away(), nil
		}
		return q, nil
	case HalfDown:
		if half > 0 {
			return away(), nil
		}
		return q, nil
	case HalfEven:
		if half > 0 || (half == 0 && q.Bit(0) == 1) {
			return away(), nil
		}
		return q, nil
	default:
		return nil, &UnsupportedPolicyError{Policy: policy}
	}
}
