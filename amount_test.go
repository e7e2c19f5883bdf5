package money

import (
	"errors"
	"fmt"
	"math/big"
	"testing"
)

func TestAmount_ZeroValue(t *testing.T) {
	got := Amount{}
	want := MustParseAmount("XXX", "0")
	if !got.Equal(want) {
		t.Errorf("Amount{} = %q, want %q", got, want)
	}
	if got.String() != "XXX 0" {
		t.Errorf("Amount{}.String() = %q, want %q", got.String(), "XXX 0")
	}
}

func TestAmount_Interfaces(t *testing.T) {
	var i any = Amount{}
	_, ok := i.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
	_, ok = i.(fmt.Formatter)
	if !ok {
		t.Errorf("%T does not implement fmt.Formatter", i)
	}
}

func TestParseAmount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, amount string
			wantUnits    int64
		}{
			{"USD", "0", 0},
			{"USD", "1", 100},
			{"USD", "1.5", 150},
			{"USD", "1.50", 150},
			{"USD", "-1.50", -150},
			{"usd", "0.01", 1},
			{"JPY", "5", 5},
			{"OMR", "1.001", 1001},
			{"BTC", "0.00000001", 1},
		}
		for _, tt := range tests {
			got, err := ParseAmount(tt.curr, tt.amount)
			if err != nil {
				t.Errorf("ParseAmount(%q, %q) failed: %v", tt.curr, tt.amount, err)
				continue
			}
			units, ok := got.MinorUnits()
			if !ok || units != tt.wantUnits {
				t.Errorf("ParseAmount(%q, %q) = %v minor units, want %v", tt.curr, tt.amount, units, tt.wantUnits)
			}
		}
	})

	t.Run("currency error", func(t *testing.T) {
		_, err := ParseAmount("UUU", "1.00")
		if err == nil {
			t.Errorf("ParseAmount(\"UUU\", \"1.00\") did not fail")
		}
	})

	t.Run("precision error", func(t *testing.T) {
		_, err := ParseAmount("USD", "100.001")
		var pErr *PrecisionError
		if !errors.As(err, &pErr) {
			t.Fatalf("ParseAmount(\"USD\", \"100.001\") = %v, want *PrecisionError", err)
		}
		if pErr.Digits != 3 || pErr.Scale != 2 {
			t.Errorf("PrecisionError = %+v, want Digits: 3, Scale: 2", pErr)
		}
	})

	t.Run("format error", func(t *testing.T) {
		for _, amount := range []string{"", "1e2", "1.2.3", "+1", "one"} {
			_, err := ParseAmount("USD", amount)
			if !errors.Is(err, ErrFormat) {
				t.Errorf("ParseAmount(\"USD\", %q) = %v, want %v", amount, err, ErrFormat)
			}
		}
	})
}

func TestNewAmountFromString(t *testing.T) {
	wei := MustNewCurrency("TOKEN", 18, "", "")
	a, err := NewAmountFromString(wei, "1.000000000000000001")
	if err != nil {
		t.Fatalf("NewAmountFromString failed: %v", err)
	}
	want, _ := new(big.Int).SetString("1000000000000000001", 10)
	if a.Units().Cmp(want) != 0 {
		t.Errorf("NewAmountFromString(TOKEN, \"1.000000000000000001\") = %v units, want %v", a.Units(), want)
	}
	if got := a.Text(); got != "1.000000000000000001" {
		t.Errorf("Text() = %q, want %q", got, "1.000000000000000001")
	}
}

func TestAmount_roundTrip(t *testing.T) {
	// parse(render(parse(l))) == parse(l) for every valid literal.
	tests := []struct {
		curr, amount string
	}{
		{"USD", "0"},
		{"USD", "1.5"},
		{"USD", "-1.5"},
		{"USD", "0.01"},
		{"JPY", "42"},
		{"OMR", "-3.123"},
		{"ETH", "0.000000000000000001"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.curr, tt.amount)
		b, err := ParseAmount(tt.curr, a.Text())
		if err != nil {
			t.Errorf("reparsing %q failed: %v", a.Text(), err)
			continue
		}
		if !a.Equal(b) {
			t.Errorf("round trip of (%q, %q) = %q, want %q", tt.curr, tt.amount, b, a)
		}
	}
}

func TestAmount_AddSub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b, sum, diff string
		}{
			{"1.00", "2.00", "3.00", "-1.00"},
			{"0.01", "0.02", "0.03", "-0.01"},
			{"-1.50", "1.50", "0.00", "-3.00"},
			{"0.00", "0.00", "0.00", "0.00"},
		}
		for _, tt := range tests {
			a, b := MustParseAmount("USD", tt.a), MustParseAmount("USD", tt.b)
			sum, err := a.Add(b)
			if err != nil {
				t.Errorf("%q.Add(%q) failed: %v", a, b, err)
				continue
			}
			if want := MustParseAmount("USD", tt.sum); !sum.Equal(want) {
				t.Errorf("%q.Add(%q) = %q, want %q", a, b, sum, want)
			}
			diff, err := a.Sub(b)
			if err != nil {
				t.Errorf("%q.Sub(%q) failed: %v", a, b, err)
				continue
			}
			if want := MustParseAmount("USD", tt.diff); !diff.Equal(want) {
				t.Errorf("%q.Sub(%q) = %q, want %q", a, b, diff, want)
			}
		}
	})

	t.Run("currency mismatch", func(t *testing.T) {
		usd, eur := MustParseAmount("USD", "1.00"), MustParseAmount("EUR", "1.00")
		if _, err := usd.Add(eur); !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("USD.Add(EUR) = %v, want %v", err, ErrCurrencyMismatch)
		}
		if _, err := usd.Sub(eur); !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("USD.Sub(EUR) = %v, want %v", err, ErrCurrencyMismatch)
		}
	})
}

func TestAmount_Mul(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		tests := []struct {
			amount, factor, want string
		}{
			{"1.00", "2", "2.00"},
			{"1.00", "0.5", "0.50"},
			{"1.00", "1.5", "1.50"},
			{"0.10", "0.5", "0.05"},
			{"-1.00", "1.5", "-1.50"},
			{"1.00", "0", "0.00"},
		}
		for _, tt := range tests {
			a := MustParseAmount("USD", tt.amount)
			e := MustParseRatio(tt.factor)
			got, err := a.Mul(e)
			if err != nil {
				t.Errorf("%q.Mul(%v) failed: %v", a, e, err)
				continue
			}
			if want := MustParseAmount("USD", tt.want); !got.Equal(want) {
				t.Errorf("%q.Mul(%v) = %q, want %q", a, e, got, want)
			}
		}
	})

	t.Run("rounding required", func(t *testing.T) {
		a := MustParseAmount("USD", "1.00") // 100 minor units
		e := MustParseRatio("0.555")
		_, err := a.Mul(e)
		var rErr *RoundingRequiredError
		if !errors.As(err, &rErr) {
			t.Fatalf("%q.Mul(%v) = %v, want *RoundingRequiredError", a, e, err)
		}
		if rErr.Op != "mul" {
			t.Errorf("RoundingRequiredError.Op = %q, want %q", rErr.Op, "mul")
		}
		// 100 * 111/200 = 111/2 minor units.
		if rErr.Num.Int64() != 11100 || rErr.Den.Int64() != 200 {
			t.Errorf("RoundingRequiredError = %v/%v, want 11100/200", rErr.Num, rErr.Den)
		}
	})
}

func TestAmount_MulRound(t *testing.T) {
	tests := []struct {
		amount, factor string
		policy         RoundingPolicy
		want           string
	}{
		// 100 × 0.555 = 55.5 minor units.
		{"1.00", "0.555", HalfUp, "0.56"},
		{"1.00", "0.555", Floor, "0.55"},
		{"1.00", "0.555", HalfDown, "0.55"},
		{"1.00", "0.555", HalfEven, "0.56"},
		{"1.00", "0.555", Ceil, "0.56"},
		{"1.00", "0.555", Trunc, "0.55"},
		{"-1.00", "0.555", HalfUp, "-0.56"},
		{"-1.00", "0.555", Floor, "-0.56"},
		{"-1.00", "0.555", Ceil, "-0.55"},
		// Exact results ignore the policy.
		{"1.00", "0.5", Floor, "0.50"},
		{"1.00", "0.5", Ceil, "0.50"},
	}
	for _, tt := range tests {
		a := MustParseAmount("USD", tt.amount)
		e := MustParseRatio(tt.factor)
		got, err := a.MulRound(e, tt.policy)
		if err != nil {
			t.Errorf("%q.MulRound(%v, %v) failed: %v", a, e, tt.policy, err)
			continue
		}
		if want := MustParseAmount("USD", tt.want); !got.Equal(want) {
			t.Errorf("%q.MulRound(%v, %v) = %q, want %q", a, e, tt.policy, got, want)
		}
	}
}

func TestAmount_Div(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		tests := []struct {
			amount, divisor, want string
		}{
			{"1.00", "2", "0.50"},
			{"1.50", "1.5", "1.00"},
			{"1.00", "0.5", "2.00"},
			{"-1.00", "4", "-0.25"},
			{"0.00", "3", "0.00"},
		}
		for _, tt := range tests {
			a := MustParseAmount("USD", tt.amount)
			e := MustParseRatio(tt.divisor)
			got, err := a.Div(e)
			if err != nil {
				t.Errorf("%q.Div(%v) failed: %v", a, e, err)
				continue
			}
			if want := MustParseAmount("USD", tt.want); !got.Equal(want) {
				t.Errorf("%q.Div(%v) = %q, want %q", a, e, got, want)
			}
		}
	})

	t.Run("rounding required", func(t *testing.T) {
		a := MustParseAmount("USD", "1.00")
		e := MustParseRatio("3")
		_, err := a.Div(e)
		var rErr *RoundingRequiredError
		if !errors.As(err, &rErr) {
			t.Fatalf("%q.Div(%v) = %v, want *RoundingRequiredError", a, e, err)
		}
		if rErr.Op != "div" {
			t.Errorf("RoundingRequiredError.Op = %q, want %q", rErr.Op, "div")
		}
		if rErr.Den.Sign() <= 0 {
			t.Errorf("RoundingRequiredError.Den = %v, want positive", rErr.Den)
		}
	})

	t.Run("division by zero", func(t *testing.T) {
		a := MustParseAmount("USD", "1.00")
		zero := MustParseRatio("0")
		if _, err := a.Div(zero); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%q.Div(0) = %v, want %v", a, err, ErrDivisionByZero)
		}
		if _, err := a.DivRound(zero, HalfUp); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%q.DivRound(0, HalfUp) = %v, want %v", a, err, ErrDivisionByZero)
		}
	})
}

func TestAmount_DivRound(t *testing.T) {
	tests := []struct {
		amount, divisor string
		policy          RoundingPolicy
		want            string
	}{
		// 100 / 3 = 33.33... minor units.
		{"1.00", "3", HalfUp, "0.33"},
		{"1.00", "3", Ceil, "0.34"},
		{"1.00", "3", Floor, "0.33"},
		{"-1.00", "3", Floor, "-0.34"},
		// 100 / 0.8 = 125 minor units, exact.
		{"1.00", "0.8", Trunc, "1.25"},
		// Negative divisor.
		{"1.00", "-3", HalfUp, "-0.33"},
	}
	for _, tt := range tests {
		a := MustParseAmount("USD", tt.amount)
		e := MustParseRatio(tt.divisor)
		got, err := a.DivRound(e, tt.policy)
		if err != nil {
			t.Errorf("%q.DivRound(%v, %v) failed: %v", a, e, tt.policy, err)
			continue
		}
		if want := MustParseAmount("USD", tt.want); !got.Equal(want) {
			t.Errorf("%q.DivRound(%v, %v) = %q, want %q", a, e, tt.policy, got, want)
		}
	}
}

func TestAmount_Round(t *testing.T) {
	tests := []struct {
		curr, amount string
		scale        int
		policy       RoundingPolicy
		want         string
	}{
		{"USDC", "1.234567", 2, HalfUp, "1.230000"},
		{"USDC", "1.235000", 2, HalfUp, "1.240000"},
		{"USDC", "1.235000", 2, HalfEven, "1.240000"},
		{"USDC", "1.245000", 2, HalfEven, "1.240000"},
		{"USD", "1.99", 0, Floor, "1.00"},
		{"USD", "-1.01", 0, Floor, "-2.00"},
		{"USD", "1.23", 2, Floor, "1.23"},
		{"USD", "1.23", 5, Floor, "1.23"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.curr, tt.amount)
		got, err := a.Round(tt.scale, tt.policy)
		if err != nil {
			t.Errorf("%q.Round(%v, %v) failed: %v", a, tt.scale, tt.policy, err)
			continue
		}
		if want := MustParseAmount(tt.curr, tt.want); !got.Equal(want) {
			t.Errorf("%q.Round(%v, %v) = %q, want %q", a, tt.scale, tt.policy, got, want)
		}
	}
}

func TestAmount_Cmp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b string
			want int
		}{
			{"1.00", "2.00", -1},
			{"2.00", "1.00", 1},
			{"1.00", "1.00", 0},
			{"-1.00", "1.00", -1},
		}
		for _, tt := range tests {
			a, b := MustParseAmount("USD", tt.a), MustParseAmount("USD", tt.b)
			got, err := a.Cmp(b)
			if err != nil {
				t.Errorf("%q.Cmp(%q) failed: %v", a, b, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Cmp(%q) = %v, want %v", a, b, got, tt.want)
			}
		}
	})

	t.Run("currency mismatch", func(t *testing.T) {
		usd, eur := MustParseAmount("USD", "1.00"), MustParseAmount("EUR", "1.00")
		if _, err := usd.Cmp(eur); !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("USD.Cmp(EUR) = %v, want %v", err, ErrCurrencyMismatch)
		}
		if usd.Equal(eur) {
			t.Errorf("USD 1.00 equals EUR 1.00")
		}
	})
}

func TestAmount_MinMax(t *testing.T) {
	a, b := MustParseAmount("USD", "1.00"), MustParseAmount("USD", "2.00")
	min, err := a.Min(b)
	if err != nil {
		t.Fatalf("Min failed: %v", err)
	}
	if !min.Equal(a) {
		t.Errorf("%q.Min(%q) = %q, want %q", a, b, min, a)
	}
	max, err := a.Max(b)
	if err != nil {
		t.Fatalf("Max failed: %v", err)
	}
	if !max.Equal(b) {
		t.Errorf("%q.Max(%q) = %q, want %q", a, b, max, b)
	}
}

func TestAmount_Signs(t *testing.T) {
	pos := MustParseAmount("USD", "1.00")
	neg := MustParseAmount("USD", "-1.00")
	zero := MustParseAmount("USD", "0.00")

	if pos.Sign() != 1 || !pos.IsPos() || pos.IsNeg() || pos.IsZero() {
		t.Errorf("sign predicates wrong for %q", pos)
	}
	if neg.Sign() != -1 || neg.IsPos() || !neg.IsNeg() || neg.IsZero() {
		t.Errorf("sign predicates wrong for %q", neg)
	}
	if zero.Sign() != 0 || zero.IsPos() || zero.IsNeg() || !zero.IsZero() {
		t.Errorf("sign predicates wrong for %q", zero)
	}
	if !neg.Abs().Equal(pos) {
		t.Errorf("%q.Abs() = %q, want %q", neg, neg.Abs(), pos)
	}
	if !pos.Neg().Equal(neg) {
		t.Errorf("%q.Neg() = %q, want %q", pos, pos.Neg(), neg)
	}
}

func TestAmount_String(t *testing.T) {
	tests := []struct {
		curr, amount, want string
	}{
		{"USD", "1.5", "USD 1.50"},
		{"USD", "-1.5", "USD -1.50"},
		{"JPY", "5", "JPY 5"},
		{"OMR", "0.001", "OMR 0.001"},
	}
	for _, tt := range tests {
		got := MustParseAmount(tt.curr, tt.amount).String()
		if got != tt.want {
			t.Errorf("ParseAmount(%q, %q).String() = %q, want %q", tt.curr, tt.amount, got, tt.want)
		}
	}
}

func TestAmount_Format(t *testing.T) {
	a := MustParseAmount("USD", "5.67")
	tests := []struct {
		format string
		want   string
	}{
		{"%s", "USD 5.67"},
		{"%v", "USD 5.67"},
		{"%q", `"USD 5.67"`},
		{"%f", "5.67"},
		{"%.4f", "5.6700"},
		{"%.1f", "5.7"},
		{"%.0f", "6"},
		{"%d", "567"},
		{"%c", "USD"},
		{"%12s", "    USD 5.67"},
		{"%-12s", "USD 5.67    "},
		{"%+f", "+5.67"},
		{"%t", "%!t(money.Amount=USD 5.67)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, a)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %q) = %q, want %q", tt.format, a, got, tt.want)
		}
	}
}

func TestAmount_MinorUnits(t *testing.T) {
	a := MustParseAmount("USD", "1.50")
	units, ok := a.MinorUnits()
	if !ok || units != 150 {
		t.Errorf("%q.MinorUnits() = (%v, %v), want (150, true)", a, units, ok)
	}

	big1, _ := new(big.Int).SetString("99999999999999999999999999999999", 10)
	b := NewAmount(USD, big1)
	if _, ok := b.MinorUnits(); ok {
		t.Errorf("%q.MinorUnits() fits int64, want overflow", b)
	}
}

func TestNewAmount_copies(t *testing.T) {
	units := big.NewInt(100)
	a := NewAmount(USD, units)
	units.SetInt64(999)
	if got, _ := a.MinorUnits(); got != 100 {
		t.Errorf("NewAmount aliases caller's integer: got %v, want 100", got)
	}
}
