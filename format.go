package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Rshep3087/triptui/currency"
	"github.com/Rshep3087/triptui/trip"
)

var titleCaser = cases.Title(language.English)

// displayDateLayout renders record dates as "September 18".
const displayDateLayout = "January 2"

// formatDate renders an ISO record date for display. Unparseable dates are shown as stored.
func formatDate(date string) string {
	d, err := time.Parse(trip.DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format(displayDateLayout)
}

// amountFormat renders one amount for display.
type amountFormat func(decimal.Decimal) string

// amountFormatter renders amounts in code, leaving out the symbol and
// separators when plain is set.
func amountFormatter(code string, plain bool) amountFormat {
	if plain {
		return func(d decimal.Decimal) string { return currency.Plain(d, code) }
	}
	return func(d decimal.Decimal) string { return currency.Format(d, code) }
}

// parseAmount reads a user-entered amount.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}
