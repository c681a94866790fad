// Package memory provides an in-process storage.Store, used by tests and
// by the "memory" backend for throwaway sessions.
package memory

import (
	"bytes"
	"context"
	"sync"
)

type Store struct {
	mu    sync.Mutex
	items map[string][]byte

	// FailSet, when non-nil, is returned by Set for the matching key.
	FailSet map[string]error
}

func New() *Store {
	return &Store{items: map[string][]byte{}}
}

// NewSeeded returns a store pre-populated with the given blobs.
func NewSeeded(seed map[string]string) *Store {
	s := New()
	for k, v := range seed {
		s.items[k] = []byte(v)
	}
	return s
}

// Get returns a copy of the blob stored under key.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

// Set stores a copy of value under key.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.FailSet[key]; err != nil {
		return err
	}
	s.items[key] = bytes.Clone(value)
	return nil
}

// Keys returns the number of keys written so far.
func (s *Store) Keys() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
