package trip

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// now is swapped in tests to pin the date given to new trips.
var now = time.Now

// Store is the trips tree plus the name of the selected trip.
type Store struct {
	Trips    []Trip
	Selected string
}

// NewStore builds a store over trips with the first trip selected.
func NewStore(trips []Trip) Store {
	s := Store{Trips: slices.Clone(trips)}
	if len(trips) > 0 {
		s.Selected = trips[0].Name
	}
	return s
}

// Trip returns the trip called name.
func (s Store) Trip(name string) (Trip, bool) {
	i := s.index(name)
	if i < 0 {
		return Trip{}, false
	}
	return s.Trips[i], true
}

// SelectedTrip returns the selected trip. It is false only for an empty store.
func (s Store) SelectedTrip() (Trip, bool) {
	return s.Trip(s.Selected)
}

// TripNames returns the trip names in order.
func (s Store) TripNames() []string {
	names := make([]string, len(s.Trips))
	for i, t := range s.Trips {
		names[i] = t.Name
	}
	return names
}

// cleanName is the form every trip and category name is stored and looked up in.
func cleanName(name string) string {
	return strings.TrimSpace(name)
}

func (s Store) index(name string) int {
	name = cleanName(name)
	return slices.IndexFunc(s.Trips, func(t Trip) bool { return t.Name == name })
}

// replace returns a copy of s with the trip at i swapped for t.
func (s Store) replace(i int, t Trip) Store {
	out := Store{Trips: slices.Clone(s.Trips), Selected: s.Selected}
	out.Trips[i] = t
	return out
}

// update looks up tripName and applies fn to it.
func (s Store) update(tripName string, fn func(Trip) (Trip, error)) (Store, error) {
	i := s.index(tripName)
	if i < 0 {
		return s, notFound("trip", tripName)
	}
	t, err := fn(s.Trips[i])
	if err != nil {
		return s, err
	}
	return s.replace(i, t), nil
}

// SelectTrip selects the trip called name. Unknown names leave the store as is.
func (s Store) SelectTrip(name string) Store {
	name = cleanName(name)
	if s.index(name) < 0 {
		return s
	}
	return Store{Trips: slices.Clone(s.Trips), Selected: name}
}

// AddTrip appends a trip seeded with one record dated today holding the
// default category, and selects it.
func (s Store) AddTrip(name string) (Store, error) {
	name = cleanName(name)
	if name == "" {
		return s, invalid("add trip", "trip name is required")
	}
	if s.index(name) >= 0 {
		return s, invalid("add trip", "a trip named %q already exists", name)
	}

	seed := Trip{
		Name: name,
		Expenses: []Record{{
			Date:       now().Format(DateLayout),
			Categories: NewCategories(Amount{Category: NewTripCategory, Value: decimal.NewFromInt(NewTripAmount)}),
		}},
	}

	return Store{Trips: append(slices.Clone(s.Trips), seed), Selected: name}, nil
}

// DeleteTrip removes the trip called name. The last remaining trip cannot be
// deleted. Deleting the selected trip moves the selection to the first trip left.
func (s Store) DeleteTrip(name string) (Store, error) {
	name = cleanName(name)
	i := s.index(name)
	if i < 0 {
		return s, notFound("trip", name)
	}
	if len(s.Trips) == 1 {
		return s, invalid("delete trip", "cannot delete the only trip")
	}

	out := Store{Trips: slices.Delete(slices.Clone(s.Trips), i, i+1), Selected: s.Selected}
	if s.Selected == name {
		out.Selected = out.Trips[0].Name
	}
	return out, nil
}

// AddCategory adds category with a zero amount to every record of the trip.
func (s Store) AddCategory(tripName, category string) (Store, error) {
	category = cleanName(category)
	return s.update(tripName, func(t Trip) (Trip, error) {
		if category == "" {
			return t, invalid("add category", "category name is required")
		}
		if slices.Contains(t.CategoryNames(), category) {
			return t, invalid("add category", "category %q already exists", category)
		}
		return t.mapRecords(func(c Categories) Categories {
			return c.With(category, decimal.Zero)
		}), nil
	})
}

// RenameCategory moves every amount stored under oldName to newName. If newName
// is already a category its amounts are overwritten.
func (s Store) RenameCategory(tripName, oldName, newName string) (Store, error) {
	oldName, newName = cleanName(oldName), cleanName(newName)
	return s.update(tripName, func(t Trip) (Trip, error) {
		if newName == "" {
			return t, invalid("rename category", "new category name is required")
		}
		if !slices.Contains(t.CategoryNames(), oldName) {
			return t, notFound("category", oldName)
		}
		if newName == oldName {
			return t, nil
		}
		return t.mapRecords(func(c Categories) Categories {
			return c.Rekey(oldName, newName)
		}), nil
	})
}

// DeleteCategory removes category from every record. A trip keeps at least one category.
func (s Store) DeleteCategory(tripName, category string) (Store, error) {
	category = cleanName(category)
	return s.update(tripName, func(t Trip) (Trip, error) {
		names := t.CategoryNames()
		if !slices.Contains(names, category) {
			return t, notFound("category", category)
		}
		if len(names) == 1 {
			return t, invalid("delete category", "cannot delete the only category")
		}
		return t.mapRecords(func(c Categories) Categories {
			return c.Without(category)
		}), nil
	})
}

// AddDate appends a record for date with every category at zero. Duplicate dates are allowed.
func (s Store) AddDate(tripName, date string) (Store, error) {
	date = strings.TrimSpace(date)
	return s.update(tripName, func(t Trip) (Trip, error) {
		if date == "" {
			return t, invalid("add date", "date is required")
		}
		if !validDate(date) {
			return t, invalid("add date", "date %q is not in YYYY-MM-DD form", date)
		}
		out := t.clone()
		out.Expenses = append(out.Expenses, Record{Date: date, Categories: zeroed(t.CategoryNames())})
		return out, nil
	})
}

// EditDate overwrites the date of the record at index.
func (s Store) EditDate(tripName string, index int, date string) (Store, error) {
	date = strings.TrimSpace(date)
	return s.update(tripName, func(t Trip) (Trip, error) {
		if date == "" {
			return t, invalid("edit date", "date is required")
		}
		if !validDate(date) {
			return t, invalid("edit date", "date %q is not in YYYY-MM-DD form", date)
		}
		if index < 0 || index >= len(t.Expenses) {
			return t, notFound("date index", itoa(index))
		}
		out := t.clone()
		out.Expenses[index] = Record{Date: date, Categories: t.Expenses[index].Categories}
		return out, nil
	})
}

// DeleteDate removes the record at index. A trip keeps at least one record.
func (s Store) DeleteDate(tripName string, index int) (Store, error) {
	return s.update(tripName, func(t Trip) (Trip, error) {
		if index < 0 || index >= len(t.Expenses) {
			return t, notFound("date index", itoa(index))
		}
		if len(t.Expenses) == 1 {
			return t, invalid("delete date", "cannot delete the only date")
		}
		out := t.clone()
		out.Expenses = slices.Delete(out.Expenses, index, index+1)
		return out, nil
	})
}

// SetAmount stores value as the amount of category on the record at index.
func (s Store) SetAmount(tripName string, index int, category string, value decimal.Decimal) (Store, error) {
	category = cleanName(category)
	return s.update(tripName, func(t Trip) (Trip, error) {
		if value.IsNegative() {
			return t, invalid("set amount", "amount cannot be negative")
		}
		if index < 0 || index >= len(t.Expenses) {
			return t, notFound("date index", itoa(index))
		}
		if !t.Expenses[index].Categories.Has(category) {
			return t, notFound("category", category)
		}
		out := t.clone()
		out.Expenses[index] = Record{
			Date:       t.Expenses[index].Date,
			Categories: t.Expenses[index].Categories.With(category, value),
		}
		return out, nil
	})
}

// Amount returns the amount stored for category on the record at index.
func (s Store) Amount(tripName string, index int, category string) (decimal.Decimal, error) {
	category = cleanName(category)
	t, ok := s.Trip(tripName)
	if !ok {
		return decimal.Zero, notFound("trip", tripName)
	}
	if index < 0 || index >= len(t.Expenses) {
		return decimal.Zero, notFound("date index", itoa(index))
	}
	v, ok := t.Expenses[index].Categories.Get(category)
	if !ok {
		return decimal.Zero, notFound("category", category)
	}
	return v, nil
}
