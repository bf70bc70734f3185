package ringbuf

import (
	"fmt"

	"github.com/c360/history/errors"
)

// slot is one ring position. full distinguishes a written value from a
// never-written or popped position.
type slot[T any] struct {
	value T
	full  bool
}

// Fixed is a single-owner circular buffer holding the last N values
// pushed into it. Once full, every push evicts and returns the oldest
// value. Fixed is not safe for concurrent use; see Guarded for the
// lock-protected counterpart.
type Fixed[T any] struct {
	slots []slot[T]
	// next is the index of the next slot to write. The newest value sits
	// at next-1, wrapping to the end when next == 0.
	next int
	// oldest is the index of the longest-resident live value.
	oldest int
	// stored is the live count, 0..=capacity.
	stored int
}

// New creates an empty buffer holding up to capacity values. Capacities
// below 1 are clamped to 1.
func New[T any](capacity int) *Fixed[T] {
	if capacity < 1 {
		capacity = 1
	}

	return &Fixed[T]{
		slots: make([]slot[T], capacity),
	}
}

// WithList creates a full buffer seeded from values in oldest-to-newest
// order: the first element is the oldest, the last the newest. The
// buffer's capacity is len(values).
func WithList[T any](values []T) *Fixed[T] {
	if len(values) == 0 {
		return New[T](1)
	}

	slots := make([]slot[T], len(values))
	for i, v := range values {
		slots[i] = slot[T]{value: v, full: true}
	}

	return &Fixed[T]{
		slots:  slots,
		stored: len(values),
	}
}

// WithIndex creates a full buffer seeded from values, with the element at
// index designated the newest. The oldest is the element that follows it,
// wrapping around. Fails with ErrBadSeedIndex when index is out of
// bounds.
func WithIndex[T any](values []T, index int) (*Fixed[T], error) {
	if index < 0 || index >= len(values) {
		return nil, errors.WrapInvalid(errors.ErrBadSeedIndex, "Fixed", "WithIndex",
			fmt.Sprintf("newest index %d for %d values", index, len(values)))
	}

	oldest := 0
	if index != len(values)-1 {
		oldest = index + 1
	}

	slots := make([]slot[T], len(values))
	for i, v := range values {
		slots[i] = slot[T]{value: v, full: true}
	}

	return &Fixed[T]{
		slots:  slots,
		next:   oldest,
		oldest: oldest,
		stored: len(values),
	}, nil
}

// Capacity returns the fixed number of slots.
func (f *Fixed[T]) Capacity() int {
	return len(f.slots)
}

// Stored returns the number of live values.
func (f *Fixed[T]) Stored() int {
	return f.stored
}

// Push writes v into the next slot. If a value occupied that slot it is
// evicted and returned with true. When the buffer is already full the
// oldest cursor advances past the overwritten value so it always points
// at the longest-resident live value.
func (f *Fixed[T]) Push(v T) (T, bool) {
	prev := f.slots[f.next]
	f.slots[f.next] = slot[T]{value: v, full: true}

	f.next = nextWrite(f.next, len(f.slots))

	if f.stored == len(f.slots) {
		f.oldest = f.next
	} else {
		f.stored++
	}

	if prev.full {
		return prev.value, true
	}

	var zero T
	return zero, false
}

// Pop removes and returns the oldest live value. ok is false when the
// buffer is empty.
func (f *Fixed[T]) Pop() (T, bool) {
	var zero T

	if f.stored == 0 {
		return zero, false
	}

	out := f.slots[f.oldest].value
	f.slots[f.oldest] = slot[T]{}

	f.oldest = nextWrite(f.oldest, len(f.slots))
	f.stored--

	return out, true
}

// Newest returns the most recently pushed value. ok is false when the
// buffer is empty.
func (f *Fixed[T]) Newest() (T, bool) {
	var zero T

	if f.stored == 0 {
		return zero, false
	}

	s := f.slots[newestIndex(f.next, len(f.slots))]
	return s.value, s.full
}

// Oldest returns the longest-resident live value. ok is false when the
// buffer is empty.
func (f *Fixed[T]) Oldest() (T, bool) {
	var zero T

	if f.stored == 0 {
		return zero, false
	}

	s := f.slots[f.oldest]
	return s.value, s.full
}

// Get returns the value distance steps back from the newest: Get(0) is
// the newest, Get(Capacity()-1) the slot furthest back. ok is false when
// that slot has never been written or has been popped. Distances at or
// beyond the capacity fail with ErrIndexOutOfRange.
func (f *Fixed[T]) Get(distance int) (T, bool, error) {
	var zero T
	n := len(f.slots)

	if distance < 0 || distance >= n {
		return zero, false, errors.WrapInvalid(errors.ErrIndexOutOfRange, "Fixed", "Get",
			fmt.Sprintf("distance %d with capacity %d", distance, n))
	}

	s := f.slots[resolve(newestIndex(f.next, n), distance, n)]
	return s.value, s.full, nil
}

// Clone returns an independent copy of the buffer. Values are copied
// shallowly.
func (f *Fixed[T]) Clone() *Fixed[T] {
	slots := make([]slot[T], len(f.slots))
	copy(slots, f.slots)

	return &Fixed[T]{
		slots:  slots,
		next:   f.next,
		oldest: f.oldest,
		stored: f.stored,
	}
}
