// Package storage persists the trips snapshot.
//
// A snapshot is the JSON array of trips. Backends treat it as an opaque blob
// keyed by SnapshotKey.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Rshep3087/triptui/trip"
)

// SnapshotKey is the key the trips snapshot is stored under.
const SnapshotKey = "trips"

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("storage: no snapshot")

// Persister loads and saves the trips snapshot.
type Persister interface {
	Load(ctx context.Context) ([]trip.Trip, error)
	Save(ctx context.Context, trips []trip.Trip) error
	Close() error
}

// Marshal encodes trips as the snapshot document.
func Marshal(trips []trip.Trip) ([]byte, error) {
	if trips == nil {
		trips = []trip.Trip{}
	}
	data, err := json.MarshalIndent(trips, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a snapshot document.
func Unmarshal(data []byte) ([]trip.Trip, error) {
	var trips []trip.Trip
	if err := json.Unmarshal(data, &trips); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return trips, nil
}

// Open returns the persister for backend. path is ignored by the memory backend.
func Open(backend, path string) (Persister, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(path), nil
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (expected %s, %s or %s)",
			backend, BackendFile, BackendSQLite, BackendMemory)
	}
}

// BackendForPath picks the backend matching path's extension.
func BackendForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return BackendSQLite
	default:
		return BackendFile
	}
}
