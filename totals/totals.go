// Package totals derives row, column and grand totals from a trip.
package totals

import (
	"github.com/shopspring/decimal"

	"github.com/Rshep3087/triptui/trip"
)

var hundred = decimal.NewFromInt(100)

// Share is one category's slice of the grand total.
type Share struct {
	Category string
	Amount   decimal.Decimal
	Percent  decimal.Decimal
}

// Totals is the projection of a single trip.
type Totals struct {
	// Categories in display order.
	Categories []string
	Dates      []string

	RowTotal    map[string]decimal.Decimal
	ColumnTotal []decimal.Decimal
	GrandTotal  decimal.Decimal

	// NoData is set when the grand total is zero. Shares is empty in that case.
	NoData bool
	Shares []Share
}

// Project computes the totals for t. Cells missing from a record count as zero.
func Project(t trip.Trip) Totals {
	out := Totals{
		Categories:  t.CategoryNames(),
		Dates:       t.Dates(),
		RowTotal:    make(map[string]decimal.Decimal),
		ColumnTotal: make([]decimal.Decimal, len(t.Expenses)),
		GrandTotal:  decimal.Zero,
	}

	for _, c := range out.Categories {
		out.RowTotal[c] = decimal.Zero
	}

	for i, r := range t.Expenses {
		column := decimal.Zero
		for _, c := range out.Categories {
			v, _ := r.Categories.Get(c)
			out.RowTotal[c] = out.RowTotal[c].Add(v)
			column = column.Add(v)
		}
		out.ColumnTotal[i] = column
		out.GrandTotal = out.GrandTotal.Add(column)
	}

	if out.GrandTotal.IsZero() {
		out.NoData = true
		return out
	}

	out.Shares = make([]Share, len(out.Categories))
	for i, c := range out.Categories {
		out.Shares[i] = Share{
			Category: c,
			Amount:   out.RowTotal[c],
			Percent:  percentOf(out.RowTotal[c], out.GrandTotal),
		}
	}
	return out
}

// SharePercent returns category's share of the grand total rounded to two
// places. It is false when there is no data or the category is unknown.
func (t Totals) SharePercent(category string) (decimal.Decimal, bool) {
	if t.NoData {
		return decimal.Zero, false
	}
	for _, s := range t.Shares {
		if s.Category == category {
			return s.Percent, true
		}
	}
	return decimal.Zero, false
}

func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	return part.Mul(hundred).DivRound(whole, 2)
}
