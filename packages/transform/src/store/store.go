// Package store aggregates the (text, key) pairs discovered during one run.
package store

import "sync"

// Entry is one discovered text with its generated key. Origin and ZhCN both
// carry the normalized source text; the duplication matches the exported
// table columns.
type Entry struct {
	Origin string
	Key    string
	ZhCN   string
}

// Store is an insertion-ordered collection of entries keyed by normalized
// text, shared across every unit of a run. A mutex guards it so a parallel
// batch runner cannot corrupt the mapping; re-inserting the same text
// overwrites, which is idempotent because key derivation is deterministic.
type Store struct {
	mu      sync.Mutex
	order   []string
	entries map[string]Entry
}

// New creates an empty store.
func New() *Store {
	return &Store{entries: map[string]Entry{}}
}

// Put records a normalized text with its key.
func (s *Store) Put(normalized, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[normalized]; !ok {
		s.order = append(s.order, normalized)
	}
	s.entries[normalized] = Entry{Origin: normalized, Key: key, ZhCN: normalized}
}

// Len returns the number of distinct texts recorded.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Entries returns the recorded entries in insertion order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, 0, len(s.order))
	for _, text := range s.order {
		out = append(out, s.entries[text])
	}
	return out
}
