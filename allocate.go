package money

import (
	"fmt"
	"math/big"
	"sort"
)

// Allocate splits the amount across the given weights using the largest
// remainder method, guaranteeing that the parts sum to the original amount
// exactly.
//
// Every weight is first normalized to an integer at a common scale.
// Each part receives the floor of its proportional share; the minor units
// left over are then handed out, one each, to the parts with the largest
// division remainders, remaining ties going to the earliest weight.
// The result matches the order of the input weights, and every part is
// within one minor unit of its exact proportional share.
//
// Weights may be zero but not negative, and do not need to sum to any
// particular value: Allocate(a, [1, 1, 2]) gives the last part half of a.
//
// Allocate returns an error if:
//   - weights is empty ([ErrEmptyWeights]);
//   - any weight is negative ([ErrNegativeWeight]);
//   - the weights sum to zero ([ErrZeroTotalWeight]).
func (a Amount) Allocate(weights []Ratio) ([]Amount, error) {
	parts, err := a.allocate(weights)
	if err != nil {
		return nil, fmt.Errorf("allocating %v across %d weight(s): %w", a, len(weights), err)
	}
	return parts, nil
}

func (a Amount) allocate(weights []Ratio) ([]Amount, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyWeights
	}

	// Bring all weights to a common denominator so each becomes an integer.
	common := big.NewInt(1)
	for _, w := range weights {
		if w.Sign() < 0 {
			return nil, fmt.Errorf("weight %v: %w", w, ErrNegativeWeight)
		}
		den := w.Den()
		gcd := new(big.Int).GCD(nil, nil, common, den)
		common.Mul(common, den.Quo(den, gcd))
	}
	total := new(big.Int)
	norm := make([]*big.Int, len(weights))
	for i, w := range weights {
		norm[i] = new(big.Int).Mul(w.Num(), new(big.Int).Quo(common, w.Den()))
		total.Add(total, norm[i])
	}
	if total.Sign() == 0 {
		return nil, ErrZeroTotalWeight
	}

	// Floor shares and their remainders. Division is floored, so the
	// leftover below is a non-negative count of minor units smaller than
	// the number of weights.
	shares := make([]*big.Int, len(weights))
	rems := make([]*big.Int, len(weights))
	assigned := new(big.Int)
	for i, n := range norm {
		p := new(big.Int).Mul(a.units(), n)
		shares[i], rems[i] = new(big.Int).DivMod(p, total, new(big.Int))
		assigned.Add(assigned, shares[i])
	}
	leftover := new(big.Int).Sub(a.units(), assigned).Int64()

	// Largest remainder first; ties go to the earliest weight.
	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		c := rems[order[i]].Cmp(rems[order[j]])
		if c != 0 {
			return c > 0
		}
		return order[i] < order[j]
	})
	for k := int64(0); k < leftover; k++ {
		i := order[k]
		shares[i].Add(shares[i], intOne)
	}

	parts := make([]Amount, len(weights))
	for i, s := range shares {
		parts[i] = newAmount(a.curr, s)
	}
	return parts, nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided evenly among the specified
// number of parts, the earlier parts receive one extra minor unit.
// See also method [Amount.Allocate].
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	if parts < 1 {
		return nil, fmt.Errorf("splitting %v into %d part(s): number of parts must be positive", a, parts)
	}
	weights := make([]Ratio, parts)
	for i := range weights {
		weights[i] = MustNewRatio(1, 1)
	}
	return a.Allocate(weights)
}
