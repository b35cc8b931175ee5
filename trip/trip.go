// Package trip holds the trips tree and the operations that change it.
//
// A Store is a plain value. Every operation returns a new Store and leaves the
// receiver untouched, so callers can keep the previous value around and fall
// back to it when a mutation is rejected.
package trip

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO calendar date form used for record dates.
const DateLayout = "2006-01-02"

// Trip is a named collection of dated expense records.
type Trip struct {
	Name     string   `json:"tripName"`
	Expenses []Record `json:"expenses"`
}

// Record is one date's set of category amounts within a trip.
type Record struct {
	Date       string     `json:"date"`
	Categories Categories `json:"categories"`
}

// CategoryNames returns the trip's categories in display order, which is the
// key order of the first record.
func (t Trip) CategoryNames() []string {
	if len(t.Expenses) == 0 {
		return nil
	}
	return t.Expenses[0].Categories.Names()
}

// Dates returns the record dates in column order.
func (t Trip) Dates() []string {
	dates := make([]string, len(t.Expenses))
	for i, r := range t.Expenses {
		dates[i] = r.Date
	}
	return dates
}

// Equal reports whether two trips hold the same name, dates and amounts.
func (t Trip) Equal(other Trip) bool {
	return t.Name == other.Name && slices.EqualFunc(t.Expenses, other.Expenses, func(a, b Record) bool {
		return a.Date == b.Date && a.Categories.Equal(b.Categories)
	})
}

func (t Trip) clone() Trip {
	out := Trip{Name: t.Name, Expenses: make([]Record, len(t.Expenses))}
	copy(out.Expenses, t.Expenses)
	return out
}

// mapRecords returns a copy of t with fn applied to every record's categories.
func (t Trip) mapRecords(fn func(Categories) Categories) Trip {
	out := t.clone()
	for i, r := range out.Expenses {
		out.Expenses[i] = Record{Date: r.Date, Categories: fn(r.Categories)}
	}
	return out
}

// Normalize makes every record carry the same category keys. Keys are ordered
// as in the first record, followed by keys that only appear in later records;
// missing amounts become zero.
func Normalize(t Trip) Trip {
	var names []string
	seen := make(map[string]struct{})
	for _, r := range t.Expenses {
		for _, n := range r.Categories.names {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			names = append(names, n)
		}
	}

	out := t.clone()
	for i, r := range out.Expenses {
		var cats Categories
		for _, n := range names {
			v, _ := r.Categories.Get(n)
			cats = cats.With(n, v)
		}
		out.Expenses[i] = Record{Date: r.Date, Categories: cats}
	}
	return out
}

// Validate checks a whole snapshot: names are unique and non-empty, every trip
// has at least one record and one category, dates are ISO dates and amounts
// are not negative.
func Validate(trips []Trip) error {
	seen := make(map[string]struct{}, len(trips))
	for _, t := range trips {
		if t.Name == "" {
			return invalid("validate", "trip name is required")
		}
		if _, dup := seen[t.Name]; dup {
			return invalid("validate", "duplicate trip %q", t.Name)
		}
		seen[t.Name] = struct{}{}

		if len(t.Expenses) == 0 {
			return invalid("validate", "trip %q has no dates", t.Name)
		}
		if len(t.CategoryNames()) == 0 {
			return invalid("validate", "trip %q has no categories", t.Name)
		}
		for _, r := range t.Expenses {
			if !validDate(r.Date) {
				return invalid("validate", "trip %q: date %q is not in YYYY-MM-DD form", t.Name, r.Date)
			}
			for _, a := range r.Categories.Amounts() {
				if a.Value.IsNegative() {
					return invalid("validate", "trip %q: %s on %s is negative", t.Name, a.Category, r.Date)
				}
			}
		}
	}
	return nil
}

func zeroed(names []string) Categories {
	var c Categories
	for _, n := range names {
		c = c.With(n, decimal.Zero)
	}
	return c
}

func validDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
