// Package memory provides in-process implementations of the storage ports.
// State lives as long as the process, which makes it the default for local
// runs and the backend used by handler and use case tests.
package memory

import (
	"context"
	"sync"

	"solidarity-campaign/internal/core/domain"
)

// ProgressStorage is a map-backed port.ProgressStorage.
type ProgressStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewProgressStorage returns an empty storage.
func NewProgressStorage() *ProgressStorage {
	return &ProgressStorage{values: make(map[string]string)}
}

func (s *ProgressStorage) Read(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *ProgressStorage) Write(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Clear drops every stored value, like a user wiping site data.
func (s *ProgressStorage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.values)
}

// CompletionLedger is a set of seen transaction ids.
type CompletionLedger struct {
	mu   sync.Mutex
	seen map[string]domain.CompletionEvent
}

// NewCompletionLedger returns an empty ledger.
func NewCompletionLedger() *CompletionLedger {
	return &CompletionLedger{seen: make(map[string]domain.CompletionEvent)}
}

func (l *CompletionLedger) Record(_ context.Context, event domain.CompletionEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.seen[event.TransactionID]; ok {
		return domain.ErrDuplicateCompletion
	}
	l.seen[event.TransactionID] = event
	return nil
}

// Len returns the number of recorded transactions.
func (l *CompletionLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.seen)
}
