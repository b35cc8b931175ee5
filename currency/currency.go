// Package currency renders decimal amounts in a configured currency.
package currency

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Known reports whether code is an ISO 4217 code go-money can format.
func Known(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// Format renders d with the currency's symbol, separators and minor units.
// Unknown codes, and amounts too large to count in minor units, fall back to
// the plain amount followed by the code.
func Format(d decimal.Decimal, code string) string {
	code = strings.ToUpper(code)
	c := money.GetCurrency(code)
	if c == nil {
		return d.StringFixed(2) + " " + code
	}

	minor := d.Shift(int32(c.Fraction)).Round(0)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		return d.StringFixed(int32(c.Fraction)) + " " + code
	}
	return money.New(minor.IntPart(), code).Display()
}

// Plain renders d with the currency's minor units and no symbol.
func Plain(d decimal.Decimal, code string) string {
	c := money.GetCurrency(strings.ToUpper(code))
	if c == nil {
		return d.StringFixed(2)
	}
	return d.StringFixed(int32(c.Fraction))
}
