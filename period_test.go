package main

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"

	"github.com/Rshep3087/triptui/trip"
)

func TestPeriodString(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected string
	}{
		{
			name:     "basic period",
			start:    time.Date(2024, 9, 18, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 9, 21, 0, 0, 0, 0, time.UTC),
			expected: "2024-09-18 - 2024-09-21",
		},
		{
			name:     "cross year period",
			start:    time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			expected: "2023-12-30 - 2024-01-02",
		},
		{
			name:     "single day",
			start:    time.Date(2024, 9, 18, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 9, 18, 0, 0, 0, 0, time.UTC),
			expected: "2024-09-18",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Period{
				start: tt.start,
				end:   tt.end,
			}
			result := p.String()
			be.Equal(t, tt.expected, result)
		})
	}
}

func TestPeriodDays(t *testing.T) {
	p := &Period{
		start: time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC),
		end:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	be.Equal(t, 4, p.days())
}

func TestTripPeriod(t *testing.T) {
	record := func(date string) trip.Record {
		return trip.Record{Date: date, Categories: trip.NewCategories(trip.Amount{Category: "fare", Value: decimal.Zero})}
	}

	tests := []struct {
		name     string
		dates    []string
		expected string
		ok       bool
	}{
		{
			name:     "ordered dates",
			dates:    []string{"2024-09-18", "2024-09-19"},
			expected: "2024-09-18 - 2024-09-19",
			ok:       true,
		},
		{
			name:     "unordered dates",
			dates:    []string{"2024-09-21", "2024-09-18", "2024-09-20"},
			expected: "2024-09-18 - 2024-09-21",
			ok:       true,
		},
		{
			name:     "invalid dates are skipped",
			dates:    []string{"someday", "2024-09-20"},
			expected: "2024-09-20",
			ok:       true,
		},
		{
			name:  "no valid dates",
			dates: []string{"someday"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := trip.Trip{Name: "Trip"}
			for _, d := range tt.dates {
				tr.Expenses = append(tr.Expenses, record(d))
			}

			p, ok := tripPeriod(tr)
			be.Equal(t, tt.ok, ok)
			if ok {
				be.Equal(t, tt.expected, p.String())
			}
		})
	}
}
