package trip

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"
)

func goaStore() Store {
	return NewStore([]Trip{{
		Name: "Goa",
		Expenses: []Record{{
			Date: "2024-09-18",
			Categories: NewCategories(
				Amount{Category: "food", Value: decimal.NewFromInt(200)},
				Amount{Category: "fare", Value: decimal.NewFromInt(100)},
			),
		}},
	}})
}

func storesEqual(a, b Store) bool {
	if a.Selected != b.Selected || len(a.Trips) != len(b.Trips) {
		return false
	}
	for i := range a.Trips {
		if !a.Trips[i].Equal(b.Trips[i]) {
			return false
		}
	}
	return true
}

func TestNewStore(t *testing.T) {
	s := NewStore(DefaultTrips())
	be.Equal(t, "Trip to Goa", s.Selected)
	be.AllEqual(t, []string{"Trip to Goa", "Trip to Manali"}, s.TripNames())

	empty := NewStore(nil)
	be.Equal(t, "", empty.Selected)
	_, ok := empty.SelectedTrip()
	be.False(t, ok)
}

func TestSelectTrip(t *testing.T) {
	s := NewStore(DefaultTrips())

	t.Run("existing trip", func(t *testing.T) {
		got := s.SelectTrip("Trip to Manali")
		be.Equal(t, "Trip to Manali", got.Selected)
		be.Equal(t, "Trip to Goa", s.Selected)
	})

	t.Run("unknown trip is a no-op", func(t *testing.T) {
		got := s.SelectTrip("Trip to Mars")
		be.True(t, storesEqual(s, got))
	})
}

func TestAddTrip(t *testing.T) {
	prev := now
	now = func() time.Time { return time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = prev })

	s := goaStore()

	t.Run("seeds one record and selects the trip", func(t *testing.T) {
		got, err := s.AddTrip("Kerala")
		be.NilErr(t, err)
		be.Equal(t, "Kerala", got.Selected)
		be.Equal(t, 2, len(got.Trips))

		kerala, ok := got.Trip("Kerala")
		be.True(t, ok)
		be.Equal(t, 1, len(kerala.Expenses))
		be.Equal(t, "2025-03-04", kerala.Expenses[0].Date)
		be.AllEqual(t, []string{"fare"}, kerala.CategoryNames())
		v, _ := kerala.Expenses[0].Categories.Get("fare")
		be.Equal(t, "1000", v.String())

		be.Equal(t, 1, len(s.Trips))
	})

	tests := []struct {
		name string
		trip string
	}{
		{"empty name", ""},
		{"blank name", "   "},
		{"duplicate name", "Goa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.AddTrip(tt.trip)
			be.True(t, IsValidation(err))
			be.True(t, storesEqual(s, got))
		})
	}
}

func TestDeleteTrip(t *testing.T) {
	s := NewStore(DefaultTrips())

	t.Run("selected trip moves selection to first remaining", func(t *testing.T) {
		got, err := s.DeleteTrip("Trip to Goa")
		be.NilErr(t, err)
		be.AllEqual(t, []string{"Trip to Manali"}, got.TripNames())
		be.Equal(t, "Trip to Manali", got.Selected)
	})

	t.Run("unselected trip keeps selection", func(t *testing.T) {
		got, err := s.DeleteTrip("Trip to Manali")
		be.NilErr(t, err)
		be.Equal(t, "Trip to Goa", got.Selected)
	})

	t.Run("unknown trip", func(t *testing.T) {
		got, err := s.DeleteTrip("Trip to Mars")
		be.True(t, IsNotFound(err))
		be.True(t, storesEqual(s, got))
	})

	t.Run("only trip is rejected", func(t *testing.T) {
		single := goaStore()
		got, err := single.DeleteTrip("Goa")
		be.True(t, IsValidation(err))
		be.True(t, storesEqual(single, got))
	})
}

func TestAddCategory(t *testing.T) {
	s := NewStore(DefaultTrips())

	got, err := s.AddCategory("Trip to Goa", "shopping")
	be.NilErr(t, err)

	goa, _ := got.Trip("Trip to Goa")
	for _, r := range goa.Expenses {
		v, ok := r.Categories.Get("shopping")
		be.True(t, ok)
		be.True(t, v.IsZero())
	}
	be.AllEqual(t, []string{"food", "fare", "rent", "misc", "shopping"}, goa.CategoryNames())

	manali, _ := got.Trip("Trip to Manali")
	be.False(t, manali.Expenses[0].Categories.Has("shopping"))

	rejects := []struct {
		name     string
		trip     string
		category string
		check    func(error) bool
	}{
		{"empty", "Trip to Goa", "", IsValidation},
		{"duplicate", "Trip to Goa", "food", IsValidation},
		{"unknown trip", "Trip to Mars", "shopping", IsNotFound},
	}
	for _, tt := range rejects {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.AddCategory(tt.trip, tt.category)
			be.True(t, tt.check(err))
			be.True(t, storesEqual(s, got))
		})
	}
}

func TestAddThenDeleteCategoryRoundTrips(t *testing.T) {
	tests := []struct {
		name     string
		store    Store
		category string
	}{
		{"single trip", goaStore(), "souvenirs"},
		{"default trips", NewStore(DefaultTrips()), "souvenirs"},
		{"padded name", goaStore(), " misc "},
		{"tab padded name", NewStore(DefaultTrips()), "\ttips "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := tt.store.Selected
			added, err := tt.store.AddCategory(name, tt.category)
			be.NilErr(t, err)
			removed, err := added.DeleteCategory(name, tt.category)
			be.NilErr(t, err)
			be.True(t, storesEqual(tt.store, removed))
		})
	}

	t.Run("padded duplicate is rejected", func(t *testing.T) {
		_, err := NewStore(DefaultTrips()).AddCategory("Trip to Goa", " misc ")
		be.True(t, IsValidation(err))
	})
}

func TestNamesAreTrimmedInEveryOperation(t *testing.T) {
	base := NewStore(DefaultTrips())

	t.Run("add then delete trip", func(t *testing.T) {
		added, err := base.AddTrip(" Ladakh ")
		be.NilErr(t, err)
		be.Equal(t, "Ladakh", added.Selected)
		removed, err := added.DeleteTrip(" Ladakh ")
		be.NilErr(t, err)
		be.AllEqual(t, base.TripNames(), removed.TripNames())
	})

	t.Run("padded trip and category lookups", func(t *testing.T) {
		got, err := base.SetAmount(" Trip to Goa ", 0, " food ", decimal.NewFromInt(7))
		be.NilErr(t, err)
		v, err := got.Amount("Trip to Goa\t", 0, "food ")
		be.NilErr(t, err)
		be.Equal(t, "7", v.String())
		be.Equal(t, "Trip to Manali", got.SelectTrip(" Trip to Manali ").Selected)
	})

	t.Run("rename with padded old name", func(t *testing.T) {
		got, err := base.RenameCategory("Trip to Goa", " fare ", " transport ")
		be.NilErr(t, err)
		goa, _ := got.Trip("Trip to Goa")
		be.AllEqual(t, []string{"food", "transport", "rent", "misc"}, goa.CategoryNames())
	})

	t.Run("delete padded category", func(t *testing.T) {
		added, err := base.AddCategory("Trip to Goa", " snacks ")
		be.NilErr(t, err)
		removed, err := added.DeleteCategory("Trip to Goa", " snacks ")
		be.NilErr(t, err)
		be.True(t, storesEqual(base, removed))
	})
}

func TestRenameCategory(t *testing.T) {
	s := NewStore(DefaultTrips())

	t.Run("moves values and keeps position", func(t *testing.T) {
		got, err := s.RenameCategory("Trip to Goa", "fare", "transport")
		be.NilErr(t, err)
		goa, _ := got.Trip("Trip to Goa")
		be.AllEqual(t, []string{"food", "transport", "rent", "misc"}, goa.CategoryNames())
		v, _ := goa.Expenses[1].Categories.Get("transport")
		be.Equal(t, "80", v.String())
		be.False(t, goa.Expenses[1].Categories.Has("fare"))
	})

	t.Run("same name is a no-op", func(t *testing.T) {
		got, err := s.RenameCategory("Trip to Goa", "food", "food")
		be.NilErr(t, err)
		be.True(t, storesEqual(s, got))
	})

	t.Run("collision overwrites", func(t *testing.T) {
		got, err := s.RenameCategory("Trip to Goa", "food", "rent")
		be.NilErr(t, err)
		goa, _ := got.Trip("Trip to Goa")
		be.AllEqual(t, []string{"fare", "rent", "misc"}, goa.CategoryNames())
		v, _ := goa.Expenses[0].Categories.Get("rent")
		be.Equal(t, "200", v.String())
	})

	t.Run("empty new name", func(t *testing.T) {
		got, err := s.RenameCategory("Trip to Goa", "food", " ")
		be.True(t, IsValidation(err))
		be.True(t, storesEqual(s, got))
	})

	t.Run("unknown old name", func(t *testing.T) {
		got, err := s.RenameCategory("Trip to Goa", "hotel", "stay")
		be.True(t, IsNotFound(err))
		be.True(t, storesEqual(s, got))
	})
}

func TestDeleteCategory(t *testing.T) {
	s := goaStore()

	got, err := s.DeleteCategory("Goa", "fare")
	be.NilErr(t, err)
	goa, _ := got.Trip("Goa")
	be.AllEqual(t, []string{"food"}, goa.CategoryNames())

	t.Run("only category is rejected", func(t *testing.T) {
		again, err := got.DeleteCategory("Goa", "food")
		be.True(t, IsValidation(err))
		be.True(t, storesEqual(got, again))
	})

	t.Run("unknown category", func(t *testing.T) {
		again, err := s.DeleteCategory("Goa", "rent")
		be.True(t, IsNotFound(err))
		be.True(t, storesEqual(s, again))
	})
}

func TestAddDate(t *testing.T) {
	s := goaStore()

	got, err := s.AddDate("Goa", "2024-09-18")
	be.NilErr(t, err)
	goa, _ := got.Trip("Goa")
	be.AllEqual(t, []string{"2024-09-18", "2024-09-18"}, goa.Dates())
	be.AllEqual(t, []string{"food", "fare"}, goa.Expenses[1].Categories.Names())
	be.True(t, goa.Expenses[1].Categories.Total().IsZero())

	for _, bad := range []string{"", "September 18", "2024-13-01"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			again, err := s.AddDate("Goa", bad)
			be.True(t, IsValidation(err))
			be.True(t, storesEqual(s, again))
		})
	}
}

func TestEditDate(t *testing.T) {
	s := goaStore()

	got, err := s.EditDate("Goa", 0, "2024-10-01")
	be.NilErr(t, err)
	goa, _ := got.Trip("Goa")
	be.Equal(t, "2024-10-01", goa.Expenses[0].Date)
	be.True(t, goa.Expenses[0].Categories.Equal(s.Trips[0].Expenses[0].Categories))
	be.Equal(t, "2024-09-18", s.Trips[0].Expenses[0].Date)

	_, err = s.EditDate("Goa", 0, "")
	be.True(t, IsValidation(err))
	_, err = s.EditDate("Goa", 3, "2024-10-01")
	be.True(t, IsNotFound(err))
}

func TestDeleteDate(t *testing.T) {
	s := NewStore(DefaultTrips())

	got, err := s.DeleteDate("Trip to Goa", 0)
	be.NilErr(t, err)
	goa, _ := got.Trip("Trip to Goa")
	be.AllEqual(t, []string{"2024-09-19"}, goa.Dates())

	t.Run("only record is rejected", func(t *testing.T) {
		again, err := got.DeleteDate("Trip to Goa", 0)
		be.True(t, IsValidation(err))
		be.True(t, storesEqual(got, again))
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := s.DeleteDate("Trip to Goa", -1)
		be.True(t, IsNotFound(err))
		_, err = s.DeleteDate("Trip to Goa", 2)
		be.True(t, IsNotFound(err))
	})
}

func TestSetAmount(t *testing.T) {
	s := goaStore()

	got, err := s.SetAmount("Goa", 0, "food", decimal.NewFromInt(350))
	be.NilErr(t, err)
	v, err := got.Amount("Goa", 0, "food")
	be.NilErr(t, err)
	be.Equal(t, "350", v.String())

	old, _ := s.Amount("Goa", 0, "food")
	be.Equal(t, "200", old.String())

	tests := []struct {
		name     string
		index    int
		category string
		value    decimal.Decimal
		check    func(error) bool
	}{
		{"negative", 0, "food", decimal.NewFromInt(-1), IsValidation},
		{"unknown category", 0, "rent", decimal.NewFromInt(1), IsNotFound},
		{"unknown index", 1, "food", decimal.NewFromInt(1), IsNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			again, err := s.SetAmount("Goa", tt.index, tt.category, tt.value)
			be.True(t, tt.check(err))
			be.True(t, storesEqual(s, again))
		})
	}
}

func TestNormalize(t *testing.T) {
	tr := Trip{
		Name: "Hand edited",
		Expenses: []Record{
			{Date: "2024-01-01", Categories: NewCategories(Amount{Category: "food", Value: decimal.NewFromInt(5)})},
			{Date: "2024-01-02", Categories: NewCategories(Amount{Category: "fare", Value: decimal.NewFromInt(7)})},
		},
	}

	got := Normalize(tr)
	for _, r := range got.Expenses {
		be.AllEqual(t, []string{"food", "fare"}, r.Categories.Names())
	}
	v, _ := got.Expenses[1].Categories.Get("food")
	be.True(t, v.IsZero())
	be.AllEqual(t, []string{"food"}, tr.Expenses[0].Categories.Names())
}

func TestValidate(t *testing.T) {
	be.NilErr(t, Validate(DefaultTrips()))

	goa := goaStore().Trips[0]
	noDates := Trip{Name: "Empty"}
	badDate := goa.clone()
	badDate.Expenses[0] = Record{Date: "18/09/2024", Categories: goa.Expenses[0].Categories}
	negative := goa.clone()
	negative.Expenses[0] = Record{Date: goa.Expenses[0].Date, Categories: goa.Expenses[0].Categories.With("food", decimal.NewFromInt(-5))}
	noCategories := Trip{Name: "Bare", Expenses: []Record{{Date: "2024-01-01"}}}

	tests := []struct {
		name  string
		trips []Trip
	}{
		{"duplicate names", []Trip{goa, goa}},
		{"missing name", []Trip{{Expenses: goa.Expenses}}},
		{"no dates", []Trip{noDates}},
		{"no categories", []Trip{noCategories}},
		{"bad date", []Trip{badDate}},
		{"negative amount", []Trip{negative}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.True(t, IsValidation(Validate(tt.trips)))
		})
	}
}
