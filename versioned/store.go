package versioned

import (
	"sort"
)

// Store maps monotonically increasing version numbers to values. Each
// Update is assigned the current counter value and the counter then
// advances; versions are never reused, even after removal. Not safe for
// concurrent use; see Guarded.
type Store[T any] struct {
	entries  map[uint64]T
	versions []uint64 // sorted ascending, keys of entries
	counter  uint64
}

// New creates an empty store with the counter at zero.
func New[T any]() *Store[T] {
	return &Store[T]{
		entries: make(map[uint64]T),
	}
}

// Update records v under the next version and returns the version it was
// assigned.
func (s *Store[T]) Update(v T) uint64 {
	version := s.counter
	s.entries[version] = v
	s.versions = append(s.versions, version)
	s.counter++

	return version
}

// insert records v under an explicit version, keeping the version index
// sorted. Used by Guarded, which sequences version numbers under its own
// counter lock.
func (s *Store[T]) insert(version uint64, v T) {
	if _, exists := s.entries[version]; !exists {
		i := sort.Search(len(s.versions), func(i int) bool {
			return s.versions[i] >= version
		})
		s.versions = append(s.versions, 0)
		copy(s.versions[i+1:], s.versions[i:])
		s.versions[i] = version
	}
	s.entries[version] = v

	if version >= s.counter {
		s.counter = version + 1
	}
}

// Remove deletes the value stored under version and returns it. The
// counter is unaffected, so the removed version is never reassigned.
func (s *Store[T]) Remove(version uint64) (T, bool) {
	var zero T

	v, ok := s.entries[version]
	if !ok {
		return zero, false
	}

	delete(s.entries, version)

	i := sort.Search(len(s.versions), func(i int) bool {
		return s.versions[i] >= version
	})
	s.versions = append(s.versions[:i], s.versions[i+1:]...)

	return v, true
}

// Get returns the value stored under version.
func (s *Store[T]) Get(version uint64) (T, bool) {
	v, ok := s.entries[version]
	return v, ok
}

// Latest returns the value with the highest version.
func (s *Store[T]) Latest() (T, bool) {
	var zero T

	if len(s.versions) == 0 {
		return zero, false
	}

	return s.entries[s.versions[len(s.versions)-1]], true
}

// LatestVersion returns the highest version and its value.
func (s *Store[T]) LatestVersion() (uint64, T, bool) {
	var zero T

	if len(s.versions) == 0 {
		return 0, zero, false
	}

	version := s.versions[len(s.versions)-1]

	return version, s.entries[version], true
}

// Len returns the number of stored entries.
func (s *Store[T]) Len() int {
	return len(s.entries)
}

// Count returns the version the next Update will be assigned.
func (s *Store[T]) Count() uint64 {
	return s.counter
}

// Versions returns the stored versions in ascending order.
func (s *Store[T]) Versions() []uint64 {
	out := make([]uint64, len(s.versions))
	copy(out, s.versions)
	return out
}

// Entries returns a copy of the version-to-value mapping.
func (s *Store[T]) Entries() map[uint64]T {
	out := make(map[uint64]T, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy of the store's structure. Values are copied
// by assignment.
func (s *Store[T]) Clone() *Store[T] {
	c := &Store[T]{
		entries:  make(map[uint64]T, len(s.entries)),
		versions: make([]uint64, len(s.versions)),
		counter:  s.counter,
	}
	for k, v := range s.entries {
		c.entries[k] = v
	}
	copy(c.versions, s.versions)

	return c
}

// Iter returns an iterator over the entries in ascending version order.
// The store must not be mutated while the iterator is in use.
func (s *Store[T]) Iter() *Iter[T] {
	return &Iter[T]{src: s}
}

// Iter walks a Store from the lowest version to the highest.
type Iter[T any] struct {
	src *Store[T]
	pos int
}

// Next yields the next version and value in ascending order.
func (it *Iter[T]) Next() (uint64, T, bool) {
	var zero T

	if it.pos >= len(it.src.versions) {
		return 0, zero, false
	}

	version := it.src.versions[it.pos]
	it.pos++

	return version, it.src.entries[version], true
}
