package repository

import (
	"context"
	"sync"

	"healthlog/internal/domain/record"
)

// MemoryStore keeps records in process memory. It is the default backend
// for local runs and the test double for everything above the gateway.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*record.Record
}

// MemoryOption applies a configuration option to the MemoryStore.
type MemoryOption func(*MemoryStore)

// WithSeed pre-populates the store with a record for identity. Intended
// for tests.
func WithSeed(identity string, rec *record.Record) MemoryOption {
	return func(s *MemoryStore) {
		if identity != "" && rec != nil {
			s.records[identity] = rec.Clone()
		}
	}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{records: make(map[string]*record.Record)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load implements Store. The returned record is a copy; mutating it does
// not change stored state until Save.
func (s *MemoryStore) Load(_ context.Context, identity string) (*record.Record, error) {
	if identity == "" {
		return nil, ErrNoIdentity
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[identity]
	if !ok {
		return nil, ErrNoRecord
	}
	return rec.Clone(), nil
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, identity string, rec *record.Record) error {
	if identity == "" {
		return ErrNoIdentity
	}
	if rec == nil {
		return ErrNilRecord
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[identity] = rec.Clone()
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]*record.Record)
	return nil
}
