package catalog

import "sync/atomic"

// Store holds the active catalog and allows it to be swapped atomically
// during hot reload. Readers never block: a scan in progress keeps the
// catalog it started with, and the next scan picks up the replacement.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store holding the given catalog.
func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

// Current returns the active catalog.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Swap replaces the active catalog. The catalog must already be validated;
// Swap performs no validation of its own.
func (s *Store) Swap(c *Catalog) {
	s.current.Store(c)
}
