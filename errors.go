package money

import (
	"errors"
	"fmt"
	"math/big"
)

// Package-level sentinels.
// Every failure mode of the arithmetic core maps to exactly one of the
// sentinels or typed errors below, so callers can branch with
// [errors.Is] and [errors.As] instead of matching message strings.
var (
	// ErrFormat indicates a malformed decimal literal: scientific notation,
	// characters outside [0-9.-], more than one decimal point, or a string
	// with no digits at all.
	ErrFormat = errors.New("invalid decimal literal")

	// ErrDivisionByZero indicates a zero divisor or denominator.
	// It is never coerced to infinity or NaN.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrCurrencyMismatch indicates an operation between amounts denominated
	// in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrEmptyWeights indicates an allocation with no weights.
	ErrEmptyWeights = errors.New("no allocation weights")

	// ErrZeroTotalWeight indicates an allocation whose weights sum to zero.
	ErrZeroTotalWeight = errors.New("total allocation weight is zero")

	// ErrNegativeWeight indicates an allocation with a negative weight.
	ErrNegativeWeight = errors.New("negative allocation weight")
)

// PrecisionError indicates a literal whose fractional part is longer than
// the scale of the target currency.
// It is distinct from [ErrFormat]: the literal is syntactically valid, but
// violates a business rule, and the caller may choose to round and retry.
type PrecisionError struct {
	Digits int // fractional digits present in the literal
	Scale  int // fractional digits permitted by the currency
}

func (e *PrecisionError) Error() string {
	return fmt.Sprintf("literal has %d fractional digit(s), currency permits %d", e.Digits, e.Scale)
}

// RoundingRequiredError indicates an inexact multiplication or division
// attempted without a rounding policy.
// It carries the attempted operation and the unrounded rational result, so
// the caller can retry the operation with an explicit policy.
type RoundingRequiredError struct {
	Op  string   // operation that produced the inexact result, "mul" or "div"
	Num *big.Int // numerator of the unrounded result, in minor units
	Den *big.Int // denominator of the unrounded result, always positive
}

func (e *RoundingRequiredError) Error() string {
	return fmt.Sprintf("%s is inexact (%s/%s): rounding policy required", e.Op, e.Num, e.Den)
}

// UnsupportedPolicyError indicates a rounding policy value outside the
// defined enumeration.
// It should be unreachable for callers using the package constants.
type UnsupportedPolicyError struct {
	Policy RoundingPolicy
}

func (e *UnsupportedPolicyError) Error() string {
	return fmt.Sprintf("unsupported rounding policy %d", uint8(e.Policy))
}
