package totals

import (
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"

	"github.com/Rshep3087/triptui/trip"
)

func record(date string, pairs ...int64) trip.Record {
	names := []string{"food", "fare", "rent", "misc"}
	var amounts []trip.Amount
	for i, v := range pairs {
		amounts = append(amounts, trip.Amount{Category: names[i], Value: decimal.NewFromInt(v)})
	}
	return trip.Record{Date: date, Categories: trip.NewCategories(amounts...)}
}

func sum(values ...decimal.Decimal) decimal.Decimal {
	return decimal.Sum(decimal.Zero, values...)
}

func TestProjectGoaScenario(t *testing.T) {
	s := trip.NewStore([]trip.Trip{{
		Name:     "Goa",
		Expenses: []trip.Record{record("2024-09-18", 200, 100)},
	}})

	s, err := s.SetAmount("Goa", 0, "food", decimal.NewFromInt(350))
	be.NilErr(t, err)
	goa, _ := s.Trip("Goa")

	got := Project(goa)
	be.Equal(t, "350", got.RowTotal["food"].String())
	be.Equal(t, "450", got.GrandTotal.String())
	be.False(t, got.NoData)

	s, err = s.AddCategory("Goa", "misc")
	be.NilErr(t, err)
	goa, _ = s.Trip("Goa")
	got = Project(goa)
	be.True(t, got.RowTotal["misc"].IsZero())
	be.AllEqual(t, []string{"food", "fare", "misc"}, got.Categories)
}

func TestProjectTotalsAgree(t *testing.T) {
	for _, tr := range trip.DefaultTrips() {
		t.Run(tr.Name, func(t *testing.T) {
			got := Project(tr)

			var rows []decimal.Decimal
			for _, c := range got.Categories {
				rows = append(rows, got.RowTotal[c])
			}
			be.True(t, sum(rows...).Equal(got.GrandTotal))
			be.True(t, sum(got.ColumnTotal...).Equal(got.GrandTotal))
		})
	}
}

func TestProjectDefaultGoa(t *testing.T) {
	got := Project(trip.DefaultTrips()[0])

	be.Equal(t, "3280", got.GrandTotal.String())
	be.Equal(t, "1650", got.ColumnTotal[0].String())
	be.Equal(t, "1630", got.ColumnTotal[1].String())

	tests := []struct {
		category string
		percent  string
	}{
		{"food", "13.72"},
		{"fare", "5.49"},
		{"rent", "73.17"},
		{"misc", "7.62"},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			p, ok := got.SharePercent(tt.category)
			be.True(t, ok)
			be.Equal(t, tt.percent, p.String())
		})
	}

	_, ok := got.SharePercent("souvenirs")
	be.False(t, ok)
}

func TestProjectNoData(t *testing.T) {
	tr := trip.Trip{
		Name:     "Free trip",
		Expenses: []trip.Record{record("2024-01-01", 0, 0), record("2024-01-02", 0, 0)},
	}

	got := Project(tr)
	be.True(t, got.NoData)
	be.Zero(t, len(got.Shares))
	be.True(t, got.GrandTotal.IsZero())
	for _, c := range got.Categories {
		_, ok := got.SharePercent(c)
		be.False(t, ok)
	}
}

func TestProjectMissingCellCountsAsZero(t *testing.T) {
	tr := trip.Trip{
		Name: "Uneven",
		Expenses: []trip.Record{
			record("2024-01-01", 10, 20),
			record("2024-01-02", 5),
		},
	}

	got := Project(tr)
	be.Equal(t, "15", got.RowTotal["food"].String())
	be.Equal(t, "20", got.RowTotal["fare"].String())
	be.Equal(t, "5", got.ColumnTotal[1].String())
}
