package ringbuf

import (
	"fmt"
	"sync"

	"github.com/c360/history/errors"
	"github.com/c360/history/pkg/guard"
)

// Guarded is the concurrency-safe counterpart of Fixed: the same ring
// state behind a single reader/writer lock. Mutating operations take
// exclusive access; read operations take shared access and hand back
// values through guard.Ref handles that keep the read lock held for the
// reference's lifetime.
//
// Every operation reports errors.ErrLockPoisoned if a previous holder of
// the lock panicked while holding it; poisoning is surfaced, never
// masked.
type Guarded[T any] struct {
	lk    guard.RWMutex
	inner *Fixed[T]

	stats   *Statistics // ALWAYS initialized for observability
	metrics *guardedMetrics
	opts    *guardedOptions[T]
}

// NewGuarded creates an empty guarded buffer holding up to capacity
// values. Returns an error if metrics registration fails when requested.
func NewGuarded[T any](capacity int, options ...Option[T]) (*Guarded[T], error) {
	return newGuarded(New[T](capacity), options)
}

// GuardedWithList creates a full guarded buffer seeded from values in
// oldest-to-newest order.
func GuardedWithList[T any](values []T, options ...Option[T]) (*Guarded[T], error) {
	return newGuarded(WithList(values), options)
}

// GuardedWithIndex creates a full guarded buffer seeded from values with
// the element at index designated the newest. Fails with ErrBadSeedIndex
// when index is out of bounds.
func GuardedWithIndex[T any](values []T, index int, options ...Option[T]) (*Guarded[T], error) {
	inner, err := WithIndex(values, index)
	if err != nil {
		return nil, err
	}

	return newGuarded(inner, options)
}

// GuardedFromSnapshot rebuilds a guarded buffer from persisted state.
func GuardedFromSnapshot[T any](snap Snapshot[T], options ...Option[T]) (*Guarded[T], error) {
	inner, err := FromSnapshot(snap)
	if err != nil {
		return nil, err
	}

	return newGuarded(inner, options)
}

func newGuarded[T any](inner *Fixed[T], options []Option[T]) (*Guarded[T], error) {
	opts := applyOptions(options...)

	// Stats are ALWAYS initialized - observability is not optional
	stats := NewStatistics()
	stats.UpdateStored(int64(inner.stored))

	var metrics *guardedMetrics
	// Optionally expose stats as Prometheus metrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		metrics, err = newGuardedMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.WrapTransient(err, "Guarded", "newGuarded", "metrics registration")
		}
		metrics.updateStored(inner.stored, inner.Capacity())
	}

	return &Guarded[T]{
		inner:   inner,
		stats:   stats,
		metrics: metrics,
		opts:    opts,
	}, nil
}

// Capacity returns the fixed number of slots. Immutable, so no lock is
// taken.
func (g *Guarded[T]) Capacity() int {
	return g.inner.Capacity()
}

// Stats returns buffer statistics (always available for observability).
func (g *Guarded[T]) Stats() *Statistics {
	return g.stats
}

// Push writes v into the next slot under exclusive access, returning the
// evicted value if the slot was occupied. The evict callback, if set,
// runs while the write lock is held.
func (g *Guarded[T]) Push(v T) (T, bool, error) {
	var zero T

	if err := g.lk.Lock(); err != nil {
		return zero, false, errors.WrapFatal(err, "Guarded", "Push", "write lock")
	}
	defer g.lk.Unlock()

	evicted, ok := g.inner.Push(v)

	g.stats.Push()
	g.stats.UpdateStored(int64(g.inner.stored))
	if g.metrics != nil {
		g.metrics.recordPush(g.inner.stored, g.inner.Capacity())
	}

	if ok {
		g.stats.Eviction()
		if g.metrics != nil {
			g.metrics.recordEviction()
		}
		if g.opts.evictCallback != nil {
			g.opts.evictCallback(evicted)
		}
	}

	return evicted, ok, nil
}

// Pop removes and returns the oldest live value under exclusive access.
// ok is false when the buffer is empty.
func (g *Guarded[T]) Pop() (T, bool, error) {
	var zero T

	if err := g.lk.Lock(); err != nil {
		return zero, false, errors.WrapFatal(err, "Guarded", "Pop", "write lock")
	}
	defer g.lk.Unlock()

	out, ok := g.inner.Pop()
	if ok {
		g.stats.Pop()
		g.stats.UpdateStored(int64(g.inner.stored))
		if g.metrics != nil {
			g.metrics.recordPop(g.inner.stored, g.inner.Capacity())
		}
	}

	return out, ok, nil
}

// Stored returns the number of live values.
func (g *Guarded[T]) Stored() (int, error) {
	if err := g.lk.RLock(); err != nil {
		return 0, errors.WrapFatal(err, "Guarded", "Stored", "read lock")
	}
	defer g.lk.RUnlock()

	return g.inner.stored, nil
}

// Newest returns a handle to the most recently pushed value, holding the
// shared lock until the handle is released. The handle is nil when the
// buffer is empty.
func (g *Guarded[T]) Newest() (*guard.Ref[T], error) {
	if err := g.lk.RLock(); err != nil {
		return nil, errors.WrapFatal(err, "Guarded", "Newest", "read lock")
	}

	if g.inner.stored == 0 {
		g.lk.RUnlock()
		return nil, nil
	}

	g.recordPeek()

	idx := newestIndex(g.inner.next, len(g.inner.slots))
	return guard.NewRef(&g.inner.slots[idx].value, g.lk.RUnlock), nil
}

// Oldest returns a handle to the longest-resident live value, holding
// the shared lock until the handle is released. The handle is nil when
// the buffer is empty.
func (g *Guarded[T]) Oldest() (*guard.Ref[T], error) {
	if err := g.lk.RLock(); err != nil {
		return nil, errors.WrapFatal(err, "Guarded", "Oldest", "read lock")
	}

	if g.inner.stored == 0 {
		g.lk.RUnlock()
		return nil, nil
	}

	g.recordPeek()

	return guard.NewRef(&g.inner.slots[g.inner.oldest].value, g.lk.RUnlock), nil
}

// Get returns a handle to the value distance steps back from the newest.
// The distance is validated before the lock is touched; distances at or
// beyond the capacity fail with ErrIndexOutOfRange. The handle is nil
// when that slot has never been written or has been popped.
func (g *Guarded[T]) Get(distance int) (*guard.Ref[T], error) {
	n := g.inner.Capacity()
	if distance < 0 || distance >= n {
		return nil, errors.WrapInvalid(errors.ErrIndexOutOfRange, "Guarded", "Get",
			fmt.Sprintf("distance %d with capacity %d", distance, n))
	}

	if err := g.lk.RLock(); err != nil {
		return nil, errors.WrapFatal(err, "Guarded", "Get", "read lock")
	}

	idx := resolve(newestIndex(g.inner.next, n), distance, n)
	if !g.inner.slots[idx].full {
		g.lk.RUnlock()
		return nil, nil
	}

	g.recordPeek()

	return guard.NewRef(&g.inner.slots[idx].value, g.lk.RUnlock), nil
}

// Iter returns a double-ended iterator over the live values, holding the
// shared lock until the iterator is closed. Callers must call Close.
func (g *Guarded[T]) Iter() (*GuardedIter[T], error) {
	if err := g.lk.RLock(); err != nil {
		return nil, errors.WrapFatal(err, "Guarded", "Iter", "read lock")
	}

	g.recordPeek()

	return &GuardedIter[T]{
		it:      g.inner.Iter(),
		release: g.lk.RUnlock,
	}, nil
}

// Snapshot externalizes the buffer's full state under shared access.
func (g *Guarded[T]) Snapshot() (Snapshot[T], error) {
	if err := g.lk.RLock(); err != nil {
		return Snapshot[T]{}, errors.WrapFatal(err, "Guarded", "Snapshot", "read lock")
	}
	defer g.lk.RUnlock()

	return g.inner.Snapshot(), nil
}

// Restore overwrites the buffer's state from a snapshot under exclusive
// access. The snapshot's slot count must equal the buffer's capacity.
func (g *Guarded[T]) Restore(snap Snapshot[T]) error {
	if err := g.lk.Lock(); err != nil {
		return errors.WrapFatal(err, "Guarded", "Restore", "write lock")
	}
	defer g.lk.Unlock()

	if err := g.inner.Restore(snap); err != nil {
		return err
	}

	g.stats.UpdateStored(int64(g.inner.stored))
	if g.metrics != nil {
		g.metrics.updateStored(g.inner.stored, g.inner.Capacity())
	}

	return nil
}

func (g *Guarded[T]) recordPeek() {
	g.stats.Peek()
	if g.metrics != nil {
		g.metrics.recordPeek()
	}
}

// GuardedIter is a double-ended iterator over a guarded buffer. It owns a
// shared-lock acquisition for its whole lifetime: writers block until
// Close is called. After Close both directions report exhaustion.
type GuardedIter[T any] struct {
	mu      sync.Mutex
	it      *Iter[T]
	release func()
}

// Next yields the next value going newest to oldest.
func (gi *GuardedIter[T]) Next() (T, bool) {
	gi.mu.Lock()
	defer gi.mu.Unlock()

	if gi.it == nil {
		var zero T
		return zero, false
	}

	return gi.it.Next()
}

// NextBack yields the next value going oldest to newest.
func (gi *GuardedIter[T]) NextBack() (T, bool) {
	gi.mu.Lock()
	defer gi.mu.Unlock()

	if gi.it == nil {
		var zero T
		return zero, false
	}

	return gi.it.NextBack()
}

// Close releases the underlying shared lock. Safe to call more than
// once.
func (gi *GuardedIter[T]) Close() {
	gi.mu.Lock()
	defer gi.mu.Unlock()

	if gi.release == nil {
		return
	}

	rel := gi.release
	gi.release = nil
	gi.it = nil
	rel()
}
