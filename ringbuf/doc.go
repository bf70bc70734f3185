// Package ringbuf provides fixed-capacity circular buffers that retain
// the last N values pushed into them, with O(1) access to the newest,
// oldest, or any value at a relative offset, and double-ended traversal.
//
// # Overview
//
// Two variants share the same ring semantics:
//
//   - Fixed: single-owner, no locking, values returned directly
//   - Guarded: reader/writer-lock protected, values returned through
//     guard.Ref handles that keep the read lock held while the reference
//     is alive
//
// Both track the ring with three cursors: next (the slot the next push
// overwrites), oldest (the longest-resident live value) and stored (the
// live count). Once stored reaches the capacity, every push evicts and
// returns the oldest value, FIFO.
//
// # Quick Start
//
//	buf := ringbuf.New[int](3)
//
//	buf.Push(1)
//	buf.Push(2)
//	buf.Push(3)
//	evicted, ok := buf.Push(4) // ok == true, evicted == 1
//
//	newest, _ := buf.Newest() // 4
//	oldest, _ := buf.Oldest() // 2
//	v, ok, err := buf.Get(1)  // one step back from newest: 3
//
// Buffers can be seeded from existing history:
//
//	buf := ringbuf.WithList([]int{1, 2, 3}) // 3 is newest
//	buf, err := ringbuf.WithIndex([]int{3, 4, 5, 1, 2}, 2) // 5 is newest
//
// # Guarded Buffers
//
// Guarded wraps the same state in a poison-aware reader/writer lock:
//
//	buf, err := ringbuf.NewGuarded[Session](100,
//	    ringbuf.WithMetrics[Session](registry, "session_history"),
//	)
//
//	ref, err := buf.Newest()
//	if ref != nil {
//	    use(ref.Value())
//	    ref.Release() // read lock held until here
//	}
//
// Read handles and iterators own a shared-lock acquisition: a writer
// cannot mutate the buffer while any handle is unreleased, so the
// referenced value can never be observed mid-mutation. Release handles
// promptly; a leaked handle blocks writers forever.
//
// If a lock holder panics while holding the lock, the buffer is
// poisoned: every later operation fails with errors.ErrLockPoisoned
// rather than exposing possibly half-mutated state.
//
// # Iteration
//
// Fixed.Iter returns a double-ended iterator: Next walks newest to
// oldest, NextBack walks oldest to newest. Each direction has its own
// cursor bounded by the stored count. Iterators are cheap; create a
// fresh one per traversal.
//
// # Persistence
//
// Snapshot externalizes the four-field ring state ({slots, next, oldest,
// stored}) and FromSnapshot/Restore rebuild from it, rejecting snapshots
// whose slot count differs from the capacity. The persist package writes
// snapshots to disk in binary, JSON, YAML or encrypted form.
package ringbuf
