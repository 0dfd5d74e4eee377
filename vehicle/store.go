package vehicle

import (
	"sync/atomic"
)

// Store holds the dataset currently being served. Readers get an immutable
// snapshot; Swap publishes a freshly loaded one.
type Store struct {
	current atomic.Pointer[Dataset]
	version atomic.Uint64
}

// NewStore returns a store serving ds.
func NewStore(ds *Dataset) *Store {
	s := &Store{}
	s.Swap(ds)
	return s
}

// Load returns the current dataset.
func (s *Store) Load() *Dataset {
	return s.current.Load()
}

// Swap stamps ds with the next version and makes it current.
func (s *Store) Swap(ds *Dataset) {
	ds.Version = s.version.Add(1)
	s.current.Store(ds)
}
