/*
Package money implements exact monetary arithmetic on scaled integers.
An amount is an arbitrary-precision count of a currency's minor units,
so no operation ever loses precision silently: results are either exact
or rounded under an explicitly chosen policy.

# Representation

The package is built around three immutable types.
An [Amount] binds a minor-unit integer to a [Currency] descriptor; the
descriptor's scale (the number of fractional digits, 0 to [MaxScale])
defines the factor used when converting to and from decimal literals,
so "USD 1.50" is stored as 150.
A [Ratio] is an exact rational number used for multipliers and divisors:
fractional scalars such as "1.5" are carried as numerator/denominator
pairs, never as binary floating point.

All values are immutable once constructed and safe for concurrent use
without locking.
The package holds no mutable process-wide state: the built-in currency
table is populated during initialization and only read afterwards, and
custom descriptors are plain values created with [NewCurrency].

# Arithmetic

Addition and subtraction are always exact.
Multiplication and division by a [Ratio] come in two forms:
[Amount.Mul] and [Amount.Div] succeed only when the result is exactly
representable in minor units and otherwise return
[RoundingRequiredError] carrying the unrounded result, while
[Amount.MulRound] and [Amount.DivRound] round under one of six policies
([HalfEven], [HalfUp], [HalfDown], [Floor], [Ceil], [Trunc]).
The policies are implemented by [RoundQuotient], which classifies the
fractional remainder of an exact integer division and never alters an
exact result.

# Allocation

[Amount.Allocate] splits an amount across arbitrary non-negative weights
using the largest remainder method: every part is within one minor unit
of its exact proportional share, and the parts always sum to the
original amount.
[Amount.Split] is the equal-weights special case.

# Errors

Failures are reported as named error kinds such as [ErrFormat],
[PrecisionError], [ErrDivisionByZero], [RoundingRequiredError],
[ErrCurrencyMismatch], and [ErrEmptyWeights], so callers can branch
with [errors.Is] and [errors.As].
Malformed input and precision overflow are deliberately distinct:
the former is a syntax bug, the latter a business-rule violation the
caller may choose to round away.
*/
package money
