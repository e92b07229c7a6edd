package vehicle

import (
	"slices"
	"sync/atomic"
	"time"
)

// Snapshot is one immutable generation of the vehicle collection.
type Snapshot struct {
	Generation uint64
	Vehicles   Collection
	LoadedAt   time.Time
}

// Store holds the active snapshot. Readers always see a complete collection;
// Replace swaps the whole snapshot atomically.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store whose first generation is records.
func NewStore(records []Record) *Store {
	s := &Store{}
	s.Replace(records)
	return s
}

// Snapshot returns the active snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Replace installs records as a new generation and returns it. The slice is
// copied so later changes by the caller are not observed.
func (s *Store) Replace(records []Record) *Snapshot {
	vehicles := Collection(slices.Clone(records))
	if vehicles == nil {
		vehicles = Collection{}
	}
	for {
		old := s.current.Load()
		next := &Snapshot{Generation: 1, Vehicles: vehicles, LoadedAt: time.Now()}
		if old != nil {
			next.Generation = old.Generation + 1
		}
		if s.current.CompareAndSwap(old, next) {
			return next
		}
	}
}
