// Package tracker owns the current trips store and keeps it in sync with
// persistence.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/Rshep3087/triptui/storage"
	"github.com/Rshep3087/triptui/totals"
	"github.com/Rshep3087/triptui/trip"
)

// Mutation turns one store value into the next.
type Mutation func(trip.Store) (trip.Store, error)

// Tracker applies mutations to the store and saves the result after each one.
type Tracker struct {
	mu        sync.Mutex
	store     trip.Store
	persister storage.Persister
	logger    *log.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger used for applied and rejected mutations.
func WithLogger(l *log.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

// Open loads the snapshot from p. When nothing has been saved yet, or the saved
// snapshot holds no trips, the default trips are saved and used instead.
func Open(ctx context.Context, p storage.Persister, opts ...Option) (*Tracker, error) {
	t := &Tracker{persister: p, logger: log.Default()}
	for _, opt := range opts {
		opt(t)
	}

	trips, err := p.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrNoSnapshot):
		trips = nil
	case err != nil:
		return nil, fmt.Errorf("load trips: %w", err)
	}

	if len(trips) == 0 {
		t.logger.Info("no saved trips, seeding defaults")
		trips = trip.DefaultTrips()
		if err := p.Save(ctx, trips); err != nil {
			return nil, fmt.Errorf("save default trips: %w", err)
		}
	}

	trips, err = prepare(trips)
	if err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}

	t.store = trip.NewStore(trips)
	t.logger.Debug("trips loaded", "count", len(trips), "selected", t.store.Selected)
	return t, nil
}

func prepare(trips []trip.Trip) ([]trip.Trip, error) {
	out := make([]trip.Trip, len(trips))
	for i, tr := range trips {
		out[i] = trip.Normalize(tr)
	}
	if err := trip.Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Store returns the current store value.
func (t *Tracker) Store() trip.Store {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store
}

// Selected returns the selected trip.
func (t *Tracker) Selected() (trip.Trip, bool) {
	return t.Store().SelectedTrip()
}

// Totals projects the selected trip.
func (t *Tracker) Totals() totals.Totals {
	sel, _ := t.Selected()
	return totals.Project(sel)
}

// Apply runs m against the current store. A rejected mutation leaves the store
// unchanged and returns the error. An accepted one is saved; if saving fails the
// store is rolled back.
func (t *Tracker) Apply(ctx context.Context, op string, m Mutation) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, err := m(t.store)
	if err != nil {
		t.logger.Debug("mutation rejected", "op", op, "err", err)
		return err
	}

	if err := t.persister.Save(ctx, next.Trips); err != nil {
		t.logger.Error("failed to save trips", "op", op, "err", err)
		return fmt.Errorf("%s: save trips: %w", op, err)
	}

	t.store = next
	t.logger.Debug("mutation applied", "op", op, "selected", next.Selected)
	return nil
}

// SelectTrip changes the selection. Selection is not part of the snapshot so
// nothing is saved.
func (t *Tracker) SelectTrip(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.store.SelectTrip(name)
	changed := next.Selected == name
	t.store = next
	return changed
}

// AddTrip adds a trip called name and selects it.
func (t *Tracker) AddTrip(ctx context.Context, name string) error {
	return t.Apply(ctx, "add trip", func(s trip.Store) (trip.Store, error) {
		return s.AddTrip(name)
	})
}

// DeleteTrip removes a trip. The last trip cannot be removed.
func (t *Tracker) DeleteTrip(ctx context.Context, name string) error {
	return t.Apply(ctx, "delete trip", func(s trip.Store) (trip.Store, error) {
		return s.DeleteTrip(name)
	})
}

// AddCategory adds a zeroed category to every date of a trip.
func (t *Tracker) AddCategory(ctx context.Context, tripName, category string) error {
	return t.Apply(ctx, "add category", func(s trip.Store) (trip.Store, error) {
		return s.AddCategory(tripName, category)
	})
}

// RenameCategory moves the amounts of oldName to newName.
func (t *Tracker) RenameCategory(ctx context.Context, tripName, oldName, newName string) error {
	return t.Apply(ctx, "rename category", func(s trip.Store) (trip.Store, error) {
		return s.RenameCategory(tripName, oldName, newName)
	})
}

// DeleteCategory removes a category from every date of a trip.
func (t *Tracker) DeleteCategory(ctx context.Context, tripName, category string) error {
	return t.Apply(ctx, "delete category", func(s trip.Store) (trip.Store, error) {
		return s.DeleteCategory(tripName, category)
	})
}

// AddDate appends a date with every category at zero.
func (t *Tracker) AddDate(ctx context.Context, tripName, date string) error {
	return t.Apply(ctx, "add date", func(s trip.Store) (trip.Store, error) {
		return s.AddDate(tripName, date)
	})
}

// EditDate changes the date at index, counting from 0.
func (t *Tracker) EditDate(ctx context.Context, tripName string, index int, date string) error {
	return t.Apply(ctx, "edit date", func(s trip.Store) (trip.Store, error) {
		return s.EditDate(tripName, index, date)
	})
}

// DeleteDate removes the date at index.
func (t *Tracker) DeleteDate(ctx context.Context, tripName string, index int) error {
	return t.Apply(ctx, "delete date", func(s trip.Store) (trip.Store, error) {
		return s.DeleteDate(tripName, index)
	})
}

// SetAmount overwrites one cell of the expense grid.
func (t *Tracker) SetAmount(ctx context.Context, tripName string, index int, category string, value decimal.Decimal) error {
	return t.Apply(ctx, "set amount", func(s trip.Store) (trip.Store, error) {
		return s.SetAmount(tripName, index, category, value)
	})
}

// AddToAmount adds delta to the current amount of a cell. The sum must not be negative.
func (t *Tracker) AddToAmount(ctx context.Context, tripName string, index int, category string, delta decimal.Decimal) error {
	return t.Apply(ctx, "add amount", func(s trip.Store) (trip.Store, error) {
		current, err := s.Amount(tripName, index, category)
		if err != nil {
			return s, err
		}
		return s.SetAmount(tripName, index, category, current.Add(delta))
	})
}

// Reload re-reads the snapshot, keeping the selection when that trip still
// exists. The lock is held across the read so a concurrent Apply cannot be
// overwritten by an older snapshot.
func (t *Tracker) Reload(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	trips, err := t.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("reload trips: %w", err)
	}
	trips, err = prepare(trips)
	if err != nil {
		return fmt.Errorf("reload trips: %w", err)
	}
	if len(trips) == 0 {
		return fmt.Errorf("reload trips: snapshot holds no trips")
	}

	if sameTrips(trips, t.store.Trips) {
		t.logger.Debug("reload skipped, snapshot unchanged", "count", len(trips))
		return nil
	}

	selected := t.store.Selected
	t.store = trip.NewStore(trips).SelectTrip(selected)
	t.logger.Debug("trips reloaded", "count", len(trips), "selected", t.store.Selected)
	return nil
}

func sameTrips(a, b []trip.Trip) bool {
	return slices.EqualFunc(a, b, trip.Trip.Equal)
}

// Replace swaps the whole store for trips and saves it.
func (t *Tracker) Replace(ctx context.Context, trips []trip.Trip) error {
	return t.Apply(ctx, "import", func(s trip.Store) (trip.Store, error) {
		prepared, err := prepare(trips)
		if err != nil {
			return s, err
		}
		if len(prepared) == 0 {
			return s, &trip.ValidationError{Op: "import", Reason: "snapshot holds no trips"}
		}
		return trip.NewStore(prepared).SelectTrip(s.Selected), nil
	})
}

// Close closes the underlying persister.
func (t *Tracker) Close() error {
	return t.persister.Close()
}
