package versioned

import (
	"fmt"
	"sort"

	"github.com/c360/history/errors"
)

// Snapshot is a serializable capture of a Store's state. All fields are
// exported so codecs in the persist package can round-trip it.
type Snapshot[T any] struct {
	Entries map[uint64]T `json:"entries" yaml:"entries"`
	Counter uint64       `json:"counter" yaml:"counter"`
}

// validate checks the snapshot's internal consistency: every stored
// version must predate the counter, or versions could be reassigned
// after a restore.
func (s *Snapshot[T]) validate() error {
	for version := range s.Entries {
		if version >= s.Counter {
			return errors.WrapInvalid(errors.ErrInvalidSnapshot, "Snapshot", "validate",
				fmt.Sprintf("version %d not below counter %d", version, s.Counter))
		}
	}

	return nil
}

// Snapshot captures the store's current state.
func (s *Store[T]) Snapshot() *Snapshot[T] {
	return &Snapshot[T]{
		Entries: s.Entries(),
		Counter: s.counter,
	}
}

// Restore replaces the store's state with the snapshot's. The snapshot
// is validated first; on error the store is unchanged.
func (s *Store[T]) Restore(snap *Snapshot[T]) error {
	if err := snap.validate(); err != nil {
		return err
	}

	s.entries = make(map[uint64]T, len(snap.Entries))
	s.versions = make([]uint64, 0, len(snap.Entries))
	for version, v := range snap.Entries {
		s.entries[version] = v
		s.versions = append(s.versions, version)
	}
	sort.Slice(s.versions, func(i, j int) bool { return s.versions[i] < s.versions[j] })
	s.counter = snap.Counter

	return nil
}

// FromSnapshot creates a store from a previously captured snapshot.
func FromSnapshot[T any](snap *Snapshot[T]) (*Store[T], error) {
	s := New[T]()
	if err := s.Restore(snap); err != nil {
		return nil, err
	}

	return s, nil
}
