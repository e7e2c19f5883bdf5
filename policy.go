package money

import (
	"database/sql/driver"
	"fmt"
)

// RoundingPolicy selects the direction and tie-break rule applied when an
// exact result cannot be represented in the minor units of a currency.
// The zero value is [HalfEven] (banker's rounding), which minimizes
// cumulative bias over repeated operations.
type RoundingPolicy uint8

const (
	// HalfEven rounds to the nearest integer, breaking ties toward
	// the nearest even integer.
	HalfEven RoundingPolicy = iota

	// HalfUp rounds to the nearest integer, breaking ties away from zero.
	HalfUp

	// HalfDown rounds to the nearest integer, breaking ties toward zero.
	HalfDown

	// Floor rounds toward negative infinity.
	Floor

	// Ceil rounds toward positive infinity.
	Ceil

	// Trunc rounds toward zero.
	Trunc
)

var policyNames = map[RoundingPolicy]string{
	HalfEven: "half_even",
	HalfUp:   "half_up",
	HalfDown: "half_down",
	Floor:    "floor",
	Ceil:     "ceil",
	Trunc:    "trunc",
}

var policyLookup = map[string]RoundingPolicy{
	"half_even": HalfEven,
	"half_up":   HalfUp,
	"half_down": HalfDown,
	"floor":     Floor,
	"ceil":      Ceil,
	"trunc":     Trunc,
}

// ParsePolicy converts a string to a rounding policy.
// The input must be one of "half_even", "half_up", "half_down", "floor",
// "ceil", or "trunc".
func ParsePolicy(name string) (RoundingPolicy, error) {
	p, ok := policyLookup[name]
	if !ok {
		return 0, fmt.Errorf("unknown rounding policy %q", name)
	}
	return p, nil
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p RoundingPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParsePolicy].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (p *RoundingPolicy) UnmarshalText(text []byte) error {
	var err error
	*p, err = ParsePolicy(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", HalfEven, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (p RoundingPolicy) MarshalText() ([]byte, error) {
	name, ok := policyNames[p]
	if !ok {
		return nil, &UnsupportedPolicyError{Policy: p}
	}
	return []byte(name), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (p *RoundingPolicy) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*p, err = ParsePolicy(value)
	case []byte:
		*p, err = ParsePolicy(string(value))
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, HalfEven, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (p RoundingPolicy) Value() (driver.Value, error) {
	name, ok := policyNames[p]
	if !ok {
		return nil, &UnsupportedPolicyError{Policy: p}
	}
	return name, nil
}
