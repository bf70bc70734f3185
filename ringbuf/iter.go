package ringbuf

// Iter walks the live values of a Fixed buffer from both ends. Next
// yields newest to oldest; NextBack yields oldest to newest. The two
// directions keep independent cursors, each bounded by the stored count
// at the time of each step. An Iter cannot be restarted; create a new one
// with Fixed.Iter.
//
// The iterator reads the buffer it was created from, so the buffer must
// not be mutated while the iterator is in use.
type Iter[T any] struct {
	src           *Fixed[T]
	backward      int
	backwardCount int
	forward       int
	forwardCount  int
}

// Iter returns a double-ended iterator over the live values.
func (f *Fixed[T]) Iter() *Iter[T] {
	return &Iter[T]{
		src:      f,
		backward: newestIndex(f.next, len(f.slots)),
		forward:  f.oldest,
	}
}

// Next yields the next value going newest to oldest. ok is false once
// the forward-from-newest direction is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	var zero T

	if it.backwardCount == it.src.stored {
		return zero, false
	}

	v := it.src.slots[it.backward].value

	if it.backward == 0 {
		it.backward = len(it.src.slots) - 1
	} else {
		it.backward--
	}
	it.backwardCount++

	return v, true
}

// NextBack yields the next value going oldest to newest. ok is false
// once the backward-from-oldest direction is exhausted.
func (it *Iter[T]) NextBack() (T, bool) {
	var zero T

	if it.forwardCount == it.src.stored {
		return zero, false
	}

	v := it.src.slots[it.forward].value

	if it.forward == len(it.src.slots)-1 {
		it.forward = 0
	} else {
		it.forward++
	}
	it.forwardCount++

	return v, true
}
