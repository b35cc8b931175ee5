package breakdown

import (
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"

	"github.com/Rshep3087/triptui/totals"
	"github.com/Rshep3087/triptui/trip"
)

func TestRows(t *testing.T) {
	m := New(WithCurrency("USD"))
	m.SetTotals("Trip to Goa", totals.Project(trip.DefaultTrips()[0]))

	rows := m.Rows()
	be.Equal(t, 4, len(rows))
	be.Equal(t, "Food", rows[0][0])
	be.Equal(t, "$450.00", rows[0][1])
	be.Equal(t, "13.72%", rows[0][2])
	be.Equal(t, "Rent", rows[2][0])
	be.Equal(t, "73.17%", rows[2][2])
}

func TestNoData(t *testing.T) {
	zero := trip.Trip{
		Name: "Free",
		Expenses: []trip.Record{{
			Date:       "2024-01-01",
			Categories: trip.NewCategories(trip.Amount{Category: "food", Value: decimal.Zero}),
		}},
	}

	m := New()
	m.SetSize(80, 20)
	m.SetTotals(zero.Name, totals.Project(zero))

	be.Zero(t, len(m.Rows()))
	view := m.View()
	if !strings.Contains(view, NoDataMessage) {
		t.Errorf("Expected view to contain %q, got: %s", NoDataMessage, view)
	}
}

func TestView(t *testing.T) {
	m := New(WithCurrency("USD"))
	m.SetSize(120, 30)
	m.SetTotals("Trip to Manali", totals.Project(trip.DefaultTrips()[1]))

	view := m.View()
	for _, want := range []string{"Trip to Manali", "Misc", "$3,140.00"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q, got: %s", want, view)
		}
	}
}

func TestBarLength(t *testing.T) {
	tests := []struct {
		percent  string
		expected int
	}{
		{"0", 0},
		{"0.5", 1},
		{"50", 15},
		{"100", barWidth},
		{"73.17", 22},
	}

	for _, tt := range tests {
		t.Run(tt.percent, func(t *testing.T) {
			be.Equal(t, tt.expected, barLength(decimal.RequireFromString(tt.percent)))
		})
	}
}
