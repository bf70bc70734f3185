// Package growbuf provides a variable-capacity history buffer. Below
// capacity it behaves as an append-only list; at capacity it overwrites
// the oldest value like a ring, with a single cursor marking the oldest
// slot. Capacity can be grown or shrunk at runtime; growth and shrink
// physically rotate the backing sequence so the logical oldest-first
// order becomes contiguous before resizing, which is invisible to
// iteration.
//
// The fixed-capacity ringbuf package is more efficient when the capacity
// never changes.
package growbuf

import (
	"fmt"

	"github.com/c360/history/errors"
)

// Buffer is a single-owner history buffer whose capacity can change at
// runtime. Not safe for concurrent use.
type Buffer[T any] struct {
	items    []T
	capacity int
	// cursor is the index of the oldest value once the buffer is at
	// capacity; the newest sits just behind it, wrapping around. Below
	// capacity the cursor is always 0.
	cursor int
}

// New creates an empty buffer with zero capacity. Pushes displace
// immediately until the capacity is grown.
func New[T any]() *Buffer[T] {
	return &Buffer[T]{}
}

// WithCapacity creates an empty buffer that holds up to capacity values.
func WithCapacity[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Buffer[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// WithList creates a full buffer seeded from items in oldest-to-newest
// order. The capacity is len(items). The slice is not retained.
func WithList[T any](items []T) *Buffer[T] {
	owned := make([]T, len(items))
	copy(owned, items)

	return &Buffer[T]{
		items:    owned,
		capacity: len(owned),
	}
}

// WithIndex creates a full buffer seeded from items with the element at
// index designated the oldest. Fails with ErrBadSeedIndex when index is
// out of bounds.
func WithIndex[T any](items []T, index int) (*Buffer[T], error) {
	if index < 0 || index > len(items) {
		return nil, errors.WrapInvalid(errors.ErrBadSeedIndex, "Buffer", "WithIndex",
			fmt.Sprintf("oldest index %d for %d values", index, len(items)))
	}

	b := WithList(items)
	if len(b.items) > 0 {
		b.cursor = index % len(b.items)
	}

	return b, nil
}

// Len returns the number of stored values.
func (b *Buffer[T]) Len() int {
	return len(b.items)
}

// Capacity returns the current capacity.
func (b *Buffer[T]) Capacity() int {
	return b.capacity
}

// Push stores v. Below capacity it appends and returns no displaced
// value; at capacity it swaps v into the oldest slot and returns the
// displaced value, advancing the cursor. A zero-capacity buffer
// displaces v itself immediately.
func (b *Buffer[T]) Push(v T) (T, bool) {
	if b.capacity == 0 {
		return v, true
	}

	if len(b.items) == b.capacity {
		old := b.items[b.cursor]
		b.items[b.cursor] = v
		b.cursor = (b.cursor + 1) % len(b.items)
		return old, true
	}

	b.items = append(b.items, v)

	var zero T
	return zero, false
}

// Newest returns the most recently pushed value. ok is false when the
// buffer is empty.
func (b *Buffer[T]) Newest() (T, bool) {
	var zero T

	if len(b.items) == 0 {
		return zero, false
	}

	if len(b.items) == b.capacity {
		if b.cursor == 0 {
			return b.items[len(b.items)-1], true
		}
		return b.items[b.cursor-1], true
	}

	return b.items[len(b.items)-1], true
}

// Oldest returns the longest-resident value. ok is false when the buffer
// is empty.
func (b *Buffer[T]) Oldest() (T, bool) {
	var zero T

	if len(b.items) == 0 {
		return zero, false
	}

	if len(b.items) == b.capacity {
		return b.items[b.cursor], true
	}

	return b.items[0], true
}

// Grow extends the capacity by amount. If the buffer is at capacity the
// backing sequence is first rotated so index 0 is the logical oldest,
// keeping later appends in logical order.
func (b *Buffer[T]) Grow(amount int) {
	if amount <= 0 {
		return
	}

	if len(b.items) == b.capacity {
		b.normalize()
	}

	b.capacity += amount
}

// Shrink reduces the capacity by amount, clamping at zero. If the new
// capacity is below the current length, the excess oldest values are
// removed and returned in oldest-to-newest order.
func (b *Buffer[T]) Shrink(amount int) []T {
	if amount <= 0 {
		return nil
	}

	newCapacity := b.capacity - amount
	if newCapacity < 0 {
		newCapacity = 0
	}
	b.capacity = newCapacity

	if newCapacity >= len(b.items) {
		return nil
	}

	b.normalize()

	dropping := len(b.items) - newCapacity
	removed := make([]T, dropping)
	copy(removed, b.items[:dropping])

	remaining := make([]T, newCapacity)
	copy(remaining, b.items[dropping:])
	b.items = remaining
	b.cursor = 0

	return removed
}

// normalize rotates the backing sequence so the logical oldest sits at
// index 0, choosing the direction that stages fewer elements.
func (b *Buffer[T]) normalize() {
	if b.cursor == 0 || len(b.items) == 0 {
		return
	}

	if b.cursor < len(b.items)/2 {
		rotateLeft(b.items, b.cursor)
	} else {
		rotateRight(b.items, len(b.items)-b.cursor)
	}

	b.cursor = 0
}

// rotateLeft moves the first k elements to the tail.
func rotateLeft[T any](s []T, k int) {
	if len(s) == 0 {
		return
	}
	k %= len(s)
	if k == 0 {
		return
	}

	tmp := make([]T, k)
	copy(tmp, s[:k])
	copy(s, s[k:])
	copy(s[len(s)-k:], tmp)
}

// rotateRight moves the last k elements to the head.
func rotateRight[T any](s []T, k int) {
	if len(s) == 0 {
		return
	}
	k %= len(s)
	if k == 0 {
		return
	}

	tmp := make([]T, k)
	copy(tmp, s[len(s)-k:])
	copy(s[k:], s[:len(s)-k])
	copy(s, tmp)
}

// Iter returns an iterator over the stored values, newest to oldest. The
// iterator is independent of any grow/shrink-time rotation; create a
// fresh one per traversal.
func (b *Buffer[T]) Iter() *Iter[T] {
	return &Iter[T]{
		src:   b,
		count: len(b.items),
	}
}

// Iter walks a Buffer newest to oldest. The buffer must not be mutated
// while the iterator is in use.
type Iter[T any] struct {
	src   *Buffer[T]
	count int
}

// Next yields the next value going newest to oldest.
func (it *Iter[T]) Next() (T, bool) {
	var zero T

	if it.count == 0 {
		return zero, false
	}

	it.count--
	idx := (it.src.cursor + it.count) % len(it.src.items)

	return it.src.items[idx], true
}
