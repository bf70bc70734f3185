package ringbuf

import (
	"fmt"

	"github.com/c360/history/errors"
)

// Slot is one externalized ring position. Full distinguishes a written
// value from a never-written or popped position.
type Slot[T any] struct {
	Value T    `json:"value" yaml:"value"`
	Full  bool `json:"full" yaml:"full"`
}

// Snapshot externalizes the complete state of a ring buffer: the ordered
// slot list plus the next, oldest and stored cursors. All four fields are
// required to reconstruct the buffer exactly; persistence collaborators
// round-trip this shape verbatim.
type Snapshot[T any] struct {
	Slots  []Slot[T] `json:"slots" yaml:"slots"`
	Next   int       `json:"next" yaml:"next"`
	Oldest int       `json:"oldest" yaml:"oldest"`
	Stored int       `json:"stored" yaml:"stored"`
}

// validate checks the snapshot against a required capacity.
func (s Snapshot[T]) validate(capacity int) error {
	if len(s.Slots) != capacity {
		return errors.WrapInvalid(errors.ErrSlotCountMismatch, "Snapshot", "validate",
			fmt.Sprintf("%d slots for capacity %d", len(s.Slots), capacity))
	}

	if s.Next < 0 || s.Next >= capacity ||
		s.Oldest < 0 || s.Oldest >= capacity ||
		s.Stored < 0 || s.Stored > capacity {
		return errors.WrapInvalid(errors.ErrInvalidSnapshot, "Snapshot", "validate",
			fmt.Sprintf("cursors next=%d oldest=%d stored=%d for capacity %d",
				s.Next, s.Oldest, s.Stored, capacity))
	}

	return nil
}

// Snapshot externalizes the buffer's full state.
func (f *Fixed[T]) Snapshot() Snapshot[T] {
	slots := make([]Slot[T], len(f.slots))
	for i, s := range f.slots {
		slots[i] = Slot[T]{Value: s.value, Full: s.full}
	}

	return Snapshot[T]{
		Slots:  slots,
		Next:   f.next,
		Oldest: f.oldest,
		Stored: f.stored,
	}
}

// Restore overwrites the buffer's state from a snapshot. The snapshot's
// slot count must equal the buffer's capacity.
func (f *Fixed[T]) Restore(snap Snapshot[T]) error {
	if err := snap.validate(len(f.slots)); err != nil {
		return err
	}

	for i, s := range snap.Slots {
		f.slots[i] = slot[T]{value: s.Value, full: s.Full}
	}
	f.next = snap.Next
	f.oldest = snap.Oldest
	f.stored = snap.Stored

	return nil
}

// FromSnapshot rebuilds a buffer from persisted state. The capacity is
// the snapshot's slot count, which must be at least 1.
func FromSnapshot[T any](snap Snapshot[T]) (*Fixed[T], error) {
	if len(snap.Slots) == 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidSnapshot, "Fixed", "FromSnapshot",
			"empty slot list")
	}
	if err := snap.validate(len(snap.Slots)); err != nil {
		return nil, err
	}

	f := New[T](len(snap.Slots))
	if err := f.Restore(snap); err != nil {
		return nil, err
	}

	return f, nil
}
