// Package favorites keeps the set of favorited listing ids, persisted to durable storage.
// The in-memory set is authoritative, storage failures are logged and ignored.
package favorites

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/go-pkgz/lgr"
)

// StorageKey is the durable storage key holding favorites as a JSON array of ids
const StorageKey = "favorites"

// Storage is a durable key/value store
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Store holds favorited listing ids in insertion order, without duplicates
type Store struct {
	storage Storage

	lock sync.Mutex
	ids  []int64
}

// New makes a favorites store and loads persisted ids
func New(ctx context.Context, storage Storage) *Store {
	s := &Store{storage: storage}
	s.Load(ctx)
	return s
}

// Load reads persisted favorites, missing or unparsable data results in an empty set
func (s *Store) Load(ctx context.Context) []int64 {
	ids := s.read(ctx)

	s.lock.Lock()
	defer s.lock.Unlock()
	s.ids = ids
	return slices.Clone(s.ids)
}

// Toggle removes id if present or adds it otherwise, persists the set and returns it
func (s *Store) Toggle(ctx context.Context, id int64) []int64 {
	s.lock.Lock()
	defer s.lock.Unlock()

	if idx := slices.Index(s.ids, id); idx >= 0 {
		s.ids = slices.Delete(s.ids, idx, idx+1)
	} else {
		s.ids = append(s.ids, id)
	}

	s.persist(ctx)
	return slices.Clone(s.ids)
}

// IsFavorite checks if id is in the set
func (s *Store) IsFavorite(id int64) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return slices.Contains(s.ids, id)
}

// Count returns the size of the set
func (s *Store) Count() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.ids)
}

// IDs returns a copy of favorited ids in insertion order
func (s *Store) IDs() []int64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return slices.Clone(s.ids)
}

// read loads ids from storage, collapsing duplicates
func (s *Store) read(ctx context.Context) []int64 {
	ids := []int64{}
	if s.storage == nil {
		return ids
	}

	data, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		lgr.Printf("[WARN] can't read favorites: %v", err)
		return ids
	}
	if data == "" {
		return ids
	}

	var stored []int64
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		lgr.Printf("[WARN] malformed favorites %q, starting empty: %v", data, err)
		return ids
	}

	for _, id := range stored {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// persist writes the set to storage, must be called under lock
func (s *Store) persist(ctx context.Context) {
	if s.storage == nil {
		return
	}

	data, err := json.Marshal(s.ids)
	if err != nil {
		lgr.Printf("[WARN] can't encode favorites: %v", err)
		return
	}
	if err := s.storage.Set(ctx, StorageKey, string(data)); err != nil {
		lgr.Printf("[WARN] can't persist favorites, keeping in memory only: %v", err)
	}
}
