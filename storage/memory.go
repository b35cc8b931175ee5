package storage

import (
	"context"
	"sync"

	"github.com/Rshep3087/triptui/trip"
)

// MemoryStore keeps the encoded snapshot in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte

	// FailSave, when set, is returned by Save instead of storing.
	FailSave error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) ([]trip.Trip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return nil, ErrNoSnapshot
	}
	return Unmarshal(s.data)
}

func (s *MemoryStore) Save(ctx context.Context, trips []trip.Trip) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSave != nil {
		return s.FailSave
	}

	data, err := Marshal(trips)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

// Bytes returns the last saved document.
func (s *MemoryStore) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.data...)
}

func (s *MemoryStore) Close() error { return nil }
