// Package memory provides in-memory storage adapters for testing.
package memory

import (
	"context"
	"sync"

	"github.com/sirakinb/drop-card/internal/core/ports/driven"
)

// Ensure KVStore implements the interface.
var _ driven.KVStore = (*KVStore)(nil)

// KVStore is an in-memory implementation of driven.KVStore for testing.
type KVStore struct {
	mu     sync.RWMutex
	values map[string]string

	// FailKeys lists keys whose operations return ErrForced, letting
	// tests exercise storage failure paths.
	FailKeys map[string]bool
}

// NewKVStore creates a new in-memory key-value store.
func NewKVStore() *KVStore {
	return &KVStore{
		values: make(map[string]string),
	}
}

// Get retrieves the value for a key.
func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	if s.FailKeys[key] {
		return "", false, ErrForced
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok, nil
}

// Set stores a value under a key.
func (s *KVStore) Set(_ context.Context, key, value string) error {
	if s.FailKeys[key] {
		return ErrForced
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Remove deletes a key.
func (s *KVStore) Remove(_ context.Context, key string) error {
	if s.FailKeys[key] {
		return ErrForced
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// RemoveMany deletes several keys, continuing past individual failures
// and returning the first error encountered.
func (s *KVStore) RemoveMany(ctx context.Context, keys []string) error {
	var firstErr error
	for _, key := range keys {
		if err := s.Remove(ctx, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close releases resources (no-op for the memory store).
func (s *KVStore) Close() error {
	return nil
}

// Len returns the number of stored keys. Useful for test assertions.
func (s *KVStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
