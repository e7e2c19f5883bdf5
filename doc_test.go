package money_test

import (
	"fmt"
	"math/big"

	"github.com/centrata/money"
)

// In this example, a sales tax is computed from an exact decimal rate and
// rounded to the cent using banker's rounding.
func Example_salesTax() {
	price := money.MustParseAmount("USD", "19.99")
	rate := money.MustParseRatio("0.0825")

	tax, err := price.MulRound(rate, money.HalfEven)
	if err != nil {
		panic(err)
	}
	total, err := price.Add(tax)
	if err != nil {
		panic(err)
	}

	fmt.Println("Price =", price)
	fmt.Println("Tax   =", tax)
	fmt.Println("Total =", total)
	// Output:
	// Price = USD 19.99
	// Tax   = USD 1.65
	// Total = USD 21.64
}

// In this example, an invoice is split between three parties with weights
// 50%, 30%, and 20%; the parts sum back to the invoice exactly.
func Example_invoiceSplit() {
	invoice := money.MustParseAmount("USD", "203.35")
	weights := []money.Ratio{
		money.MustParseRatio("0.5"),
		money.MustParseRatio("0.3"),
		money.MustParseRatio("0.2"),
	}

	parts, err := invoice.Allocate(weights)
	if err != nil {
		panic(err)
	}
	fmt.Println(parts)
	// Output:
	// [USD 101.68 USD 61.00 USD 40.67]
}

func ExampleParseAmount() {
	a, err := money.ParseAmount("USD", "5.67")
	if err != nil {
		panic(err)
	}
	fmt.Println(a)

	_, err = money.ParseAmount("USD", "5.678")
	fmt.Println(err)
	// Output:
	// USD 5.67
	// parsing amount: literal has 3 fractional digit(s), currency permits 2
}

func ExampleAmount_Mul() {
	a := money.MustParseAmount("USD", "1.50")

	b, err := a.Mul(money.MustParseRatio("2"))
	if err != nil {
		panic(err)
	}
	fmt.Println(b)

	_, err = a.Mul(money.MustParseRatio("0.555"))
	fmt.Println(err)
	// Output:
	// USD 3.00
	// computing [USD 1.50 * 111/200]: mul is inexact (16650/200): rounding policy required
}

func ExampleAmount_MulRound() {
	a := money.MustParseAmount("USD", "1.00")
	e := money.MustParseRatio("0.555")

	up, err := a.MulRound(e, money.HalfUp)
	if err != nil {
		panic(err)
	}
	down, err := a.MulRound(e, money.Floor)
	if err != nil {
		panic(err)
	}
	fmt.Println(up, down)
	// Output: USD 0.56 USD 0.55
}

func ExampleAmount_Split() {
	a := money.MustParseAmount("JPY", "10000")
	parts, err := a.Split(3)
	if err != nil {
		panic(err)
	}
	fmt.Println(parts)
	// Output:
	// [JPY 3334 JPY 3333 JPY 3333]
}

func ExampleRoundQuotient() {
	num, den := big.NewInt(7), big.NewInt(2)
	for _, p := range []money.RoundingPolicy{
		money.HalfEven, money.HalfUp, money.HalfDown,
		money.Floor, money.Ceil, money.Trunc,
	} {
		q, err := money.RoundQuotient(num, den, p)
		if err != nil {
			panic(err)
		}
		fmt.Println(p, q)
	}
	// Output:
	// half_even 4
	// half_up 4
	// half_down 3
	// floor 3
	// ceil 4
	// trunc 3
}

func ExampleExchangeRate_Conv() {
	rate := money.MustParseExchRate("USD", "JPY", "150")
	a := money.MustParseAmount("USD", "2.50")

	b, err := rate.Conv(a, money.HalfEven)
	if err != nil {
		panic(err)
	}
	fmt.Println(b)
	// Output: JPY 375
}

func ExampleNewAmountFromString() {
	token := money.MustNewCurrency("TOKEN", 18, "", "")
	a, err := money.NewAmountFromString(token, "0.000000000000000001")
	if err != nil {
		panic(err)
	}
	fmt.Println(a)
	// Output: TOKEN 0.000000000000000001
}
