package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/carlmjohnson/be"

	"github.com/Rshep3087/triptui/trip"
)

func equalTrips(a, b []trip.Trip) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func TestBackends(t *testing.T) {
	ctx := context.Background()

	backends := []struct {
		name string
		open func(t *testing.T) Persister
	}{
		{"memory", func(t *testing.T) Persister { return NewMemoryStore() }},
		{"file", func(t *testing.T) Persister {
			return NewFileStore(filepath.Join(t.TempDir(), "nested", "trips.json"))
		}},
		{"sqlite", func(t *testing.T) Persister {
			s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "trips.db"))
			be.NilErr(t, err)
			return s
		}},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			p := b.open(t)
			t.Cleanup(func() { p.Close() })

			_, err := p.Load(ctx)
			be.True(t, errors.Is(err, ErrNoSnapshot))

			want := trip.DefaultTrips()
			be.NilErr(t, p.Save(ctx, want))

			got, err := p.Load(ctx)
			be.NilErr(t, err)
			be.True(t, equalTrips(want, got))

			// overwrite
			be.NilErr(t, p.Save(ctx, want[:1]))
			got, err = p.Load(ctx)
			be.NilErr(t, err)
			be.Equal(t, 1, len(got))
		})
	}
}

func TestSnapshotFormat(t *testing.T) {
	data, err := Marshal(trip.DefaultTrips()[:1])
	be.NilErr(t, err)

	doc := string(data)
	for _, key := range []string{`"tripName"`, `"expenses"`, `"date"`, `"categories"`} {
		be.True(t, strings.Contains(doc, key))
	}
	// category key order survives encoding
	food := strings.Index(doc, `"food"`)
	misc := strings.Index(doc, `"misc"`)
	be.True(t, food > 0 && food < misc)

	empty, err := Marshal(nil)
	be.NilErr(t, err)
	be.Equal(t, "[]", string(empty))
}

func TestUnmarshalOriginalDocument(t *testing.T) {
	doc := `[{"tripName":"Trip to Goa","expenses":[{"date":"2024-09-18","categories":{"rent":1200,"food":200}}]}]`

	trips, err := Unmarshal([]byte(doc))
	be.NilErr(t, err)
	be.Equal(t, 1, len(trips))
	be.AllEqual(t, []string{"rent", "food"}, trips[0].CategoryNames())

	_, err = Unmarshal([]byte(`{"tripName":1}`))
	be.Nonzero(t, err)
}

func TestFileStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trips.json")
	be.NilErr(t, os.WriteFile(path, nil, 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	be.True(t, errors.Is(err, ErrNoSnapshot))
}

func TestMemoryStoreFailSave(t *testing.T) {
	s := NewMemoryStore()
	s.FailSave = errors.New("disk full")

	err := s.Save(context.Background(), trip.DefaultTrips())
	be.Equal(t, "disk full", err.Error())
	be.Zero(t, len(s.Bytes()))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		backend string
		path    string
		wantErr bool
	}{
		{BackendFile, filepath.Join(dir, "a.json"), false},
		{"", filepath.Join(dir, "b.json"), false},
		{BackendSQLite, filepath.Join(dir, "c.db"), false},
		{BackendMemory, "", false},
		{"redis", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			p, err := Open(tt.backend, tt.path)
			if tt.wantErr {
				be.Nonzero(t, err)
				return
			}
			be.NilErr(t, err)
			be.NilErr(t, p.Close())
		})
	}
}

func TestBackendForPath(t *testing.T) {
	be.Equal(t, BackendSQLite, BackendForPath("backup.db"))
	be.Equal(t, BackendSQLite, BackendForPath("backup.SQLite"))
	be.Equal(t, BackendFile, BackendForPath("backup.json"))
	be.Equal(t, BackendFile, BackendForPath("backup"))
}

func TestWatchReportsSave(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	path := filepath.Join(t.TempDir(), "trips.json")
	store := NewFileStore(path)
	be.NilErr(t, store.Save(ctx, trip.DefaultTrips()))

	changes, err := Watch(ctx, path, nil)
	be.NilErr(t, err)

	be.NilErr(t, store.Save(ctx, trip.DefaultTrips()[:1]))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported after save")
	}
}

func TestWatchClosesWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	path := filepath.Join(t.TempDir(), "trips.json")
	changes, err := Watch(ctx, path, nil)
	be.NilErr(t, err)

	cancel()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("change channel still open after cancel")
		}
	}
}
