package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Currency type represents a currency or token descriptor: an alphabetic
// code, the number of fractional digits separating major and minor units
// (the scale), a display symbol, and a default locale.
// The zero value is [XXX], which indicates an unknown currency.
//
// Only the scale participates in arithmetic; symbol and locale are carried
// for display layers.
// A Currency is immutable after construction and may be freely shared
// between goroutines.
type Currency struct {
	code   string
	scale  int
	symbol string
	locale string
}

var errInvalidCurrency = errors.New("invalid currency")

// Well-known currencies and tokens.
// The table is read-only after package initialization; descriptors for
// anything else are created with [NewCurrency] and passed by value.
var (
	XXX = Currency{}
	AUD = Currency{code: "AUD", scale: 2, symbol: "$", locale: "en-AU"}
	BHD = Currency{code: "BHD", scale: 3, symbol: ".د.ب", locale: "ar-BH"}
	BRL = Currency{code: "BRL", scale: 2, symbol: "R$", locale: "pt-BR"}
	CAD = Currency{code: "CAD", scale: 2, symbol: "$", locale: "en-CA"}
	CHF = Currency{code: "CHF", scale: 2, symbol: "Fr", locale: "de-CH"}
	CNY = Currency{code: "CNY", scale: 2, symbol: "¥", locale: "zh-CN"}
	EUR = Currency{code: "EUR", scale: 2, symbol: "€", locale: "de-DE"}
	GBP = Currency{code: "GBP", scale: 2, symbol: "£", locale: "en-GB"}
	INR = Currency{code: "INR", scale: 2, symbol: "₹", locale: "hi-IN"}
	JPY = Currency{code: "JPY", scale: 0, symbol: "¥", locale: "ja-JP"}
	KWD = Currency{code: "KWD", scale: 3, symbol: "د.ك", locale: "ar-KW"}
	NOK = Currency{code: "NOK", scale: 2, symbol: "kr", locale: "nb-NO"}
	OMR = Currency{code: "OMR", scale: 3, symbol: "ر.ع.", locale: "ar-OM"}
	SEK = Currency{code: "SEK", scale: 2, symbol: "kr", locale: "sv-SE"}
	USD = Currency{code: "USD", scale: 2, symbol: "$", locale: "en-US"}

	BTC  = Currency{code: "BTC", scale: 8, symbol: "₿", locale: "en-US"}
	ETH  = Currency{code: "ETH", scale: 18, symbol: "Ξ", locale: "en-US"}
	USDC = Currency{code: "USDC", scale: 6, symbol: "$", locale: "en-US"}
	USDT = Currency{code: "USDT", scale: 6, symbol: "$", locale: "en-US"}
)

var currLookup = map[string]Currency{}

func init() {
	for _, c := range []Currency{
		XXX, AUD, BHD, BRL, CAD, CHF, CNY, EUR, GBP, INR, JPY,
		KWD, NOK, OMR, SEK, USD, BTC, ETH, USDC, USDT,
	} {
		currLookup[c.Code()] = c
	}
}

// NewCurrency returns a descriptor for a custom currency or token.
// The code must be 2 to 8 characters drawn from [A-Z0-9], starting with a
// letter; the scale must be between 0 and [MaxScale].
// Symbol and locale are free-form and may be empty.
func NewCurrency(code string, scale int, symbol, locale string) (Currency, error) {
	if len(code) < 2 || len(code) > 8 {
		return Currency{}, fmt.Errorf("code %q: %w", code, errInvalidCurrency)
	}
	for i := 0; i < len(code); i++ {
		ok := code[i] >= 'A' && code[i] <= 'Z' || i > 0 && code[i] >= '0' && code[i] <= '9'
		if !ok {
			return Currency{}, fmt.Errorf("code %q: %w", code, errInvalidCurrency)
		}
	}
	if scale < 0 || scale > MaxScale {
		return Currency{}, fmt.Errorf("scale %d is outside [0, %d]: %w", scale, MaxScale, errInvalidCurrency)
	}
	return Currency{code: code, scale: scale, symbol: symbol, locale: locale}, nil
}

// MustNewCurrency is like [NewCurrency] but panics if the descriptor cannot
// be constructed.
// It simplifies safe initialization of global variables holding currencies.
func MustNewCurrency(code string, scale int, symbol, locale string) Currency {
	c, err := NewCurrency(code, scale, symbol, locale)
	if err != nil {
		panic(fmt.Sprintf("NewCurrency(%q, %v, %q, %q) failed: %v", code, scale, symbol, locale, err))
	}
	return c
}

// ParseCurr converts a case-insensitive alphabetic code to one of the
// well-known currency descriptors.
//
// ParseCurr returns an error if the code is not in the built-in table;
// descriptors for other currencies are created with [NewCurrency].
func ParseCurr(code string) (Currency, error) {
	c, ok := currLookup[strings.ToUpper(code)]
	if !ok {
		return XXX, fmt.Errorf("code %q: %w", code, errInvalidCurrency)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the code cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(code string) Currency {
	c, err := ParseCurr(code)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", code, err))
	}
	return c
}

// Code returns the alphabetic code of the currency.
// This method always returns a non-empty string; the zero value reports "XXX".
func (c Currency) Code() string {
	if c.code == "" {
		return "XXX"
	}
	return c.code
}

// Scale returns the number of digits after the decimal point required to
// represent the minor unit of the currency:
//   - 0 for currencies without minor units, such as JPY;
//   - 2 for most fiat currencies, such as USD, whose minor unit is 0.01;
//   - 3 for currencies like OMR, whose minor unit is 0.001;
//   - up to [MaxScale] for tokens such as ETH.
func (c Currency) Scale() int {
	return c.scale
}

// Symbol returns the display symbol of the currency, such as "$" for USD.
func (c Currency) Symbol() string {
	return c.symbol
}

// Locale returns the default display locale of the currency, such as
// "en-US" for USD.
func (c Currency) Locale() string {
	return c.locale
}

// String implements the [fmt.Stringer] interface and returns the
// alphabetic code.
// See also method [Currency.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted alphabetic code.
// See also method [Currency.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, len(c.Code())+2)
	text = append(text, '"')
	text = append(text, c.Code()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns an alphabetic code.
// See also method [Currency.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", XXX, NullCurrency{}, XXX)
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, XXX, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	switch verb {
	case 'c', 'C', 's', 'S', 'v', 'V', 'q', 'Q':
		s := c.Code()
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
	default:
		fmt.Fprintf(state, "%%!%c(money.Currency=%s)", verb, c.Code())
	}
}

// NullCurrency represents a currency that can be null.
// Its zero value is null.
// NullCurrency is not thread-safe.
type NullCurrency struct {
	Currency Currency
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Currency.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullCurrency) Scan(value any) error {
	if value == nil {
		n.Currency = XXX
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Currency.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullCurrency) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Currency.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Currency.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullCurrency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Currency = XXX
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Currency.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullCurrency) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Currency.MarshalJSON()
}
