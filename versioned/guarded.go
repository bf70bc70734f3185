package versioned

import (
	"sync"

	"github.com/c360/history/errors"
	"github.com/c360/history/pkg/guard"
)

// Guarded is the concurrency-safe counterpart of Store. The version
// counter and the entry map live behind separate locks: a dedicated
// mutex sequences version numbers while a reader/writer lock protects
// the entries, so readers of existing versions never contend with the
// counter.
//
// Writes always acquire the counter lock first and hold it across the
// entry insertion, which keeps version assignment and insertion atomic
// with respect to other writers. Either lock can poison independently;
// operations report errors.ErrLockPoisoned wrapped with the lock that
// failed.
type Guarded[T any] struct {
	ctr     guard.Mutex
	counter uint64

	lk    guard.RWMutex
	inner *Store[T]

	metrics *guardedMetrics
}

// NewGuarded creates an empty guarded store. Returns an error if metrics
// registration fails when requested.
func NewGuarded[T any](options ...Option[T]) (*Guarded[T], error) {
	return newGuarded(New[T](), options)
}

// GuardedFromSnapshot rebuilds a guarded store from persisted state.
func GuardedFromSnapshot[T any](snap *Snapshot[T], options ...Option[T]) (*Guarded[T], error) {
	inner, err := FromSnapshot(snap)
	if err != nil {
		return nil, err
	}

	return newGuarded(inner, options)
}

func newGuarded[T any](inner *Store[T], options []Option[T]) (*Guarded[T], error) {
	opts := applyOptions(options...)

	var metrics *guardedMetrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		metrics, err = newGuardedMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.WrapTransient(err, "Guarded", "newGuarded", "metrics registration")
		}
		metrics.entries.Set(float64(inner.Len()))
	}

	return &Guarded[T]{
		counter: inner.counter,
		inner:   inner,
		metrics: metrics,
	}, nil
}

// Update records v under the next version and returns the version it was
// assigned. The counter lock is held across the entry insertion and the
// counter advances only after the entry is in place, so a version is
// never observable without its value.
func (g *Guarded[T]) Update(v T) (uint64, error) {
	if err := g.ctr.Lock(); err != nil {
		return 0, errors.WrapFatal(err, "Guarded", "Update", "counter lock")
	}
	defer g.ctr.Unlock()

	version := g.counter

	if err := g.lk.Lock(); err != nil {
		return 0, errors.WrapFatal(err, "Guarded", "Update", "entries write lock")
	}
	g.inner.insert(version, v)
	entries := g.inner.Len()
	g.lk.Unlock()

	g.counter++

	if g.metrics != nil {
		g.metrics.recordUpdate(entries)
	}

	return version, nil
}

// Remove deletes the value stored under version and returns it. The
// counter is untouched, so the removed version is never reassigned.
func (g *Guarded[T]) Remove(version uint64) (T, bool, error) {
	var zero T

	if err := g.lk.Lock(); err != nil {
		return zero, false, errors.WrapFatal(err, "Guarded", "Remove", "entries write lock")
	}
	defer g.lk.Unlock()

	v, ok := g.inner.Remove(version)
	if ok && g.metrics != nil {
		g.metrics.recordRemoval(g.inner.Len())
	}

	return v, ok, nil
}

// Count returns the version the next Update will be assigned.
func (g *Guarded[T]) Count() (uint64, error) {
	if err := g.ctr.Lock(); err != nil {
		return 0, errors.WrapFatal(err, "Guarded", "Count", "counter lock")
	}
	defer g.ctr.Unlock()

	return g.counter, nil
}

// Len returns the number of stored entries.
func (g *Guarded[T]) Len() (int, error) {
	if err := g.lk.RLock(); err != nil {
		return 0, errors.WrapFatal(err, "Guarded", "Len", "entries read lock")
	}
	defer g.lk.RUnlock()

	return g.inner.Len(), nil
}

// Get returns a handle to the value stored under version, holding the
// shared lock until the handle is released. The handle is nil when the
// version is absent.
func (g *Guarded[T]) Get(version uint64) (*guard.Ref[T], error) {
	if err := g.lk.RLock(); err != nil {
		return nil, errors.WrapFatal(err, "Guarded", "Get", "entries read lock")
	}

	v, ok := g.inner.entries[version]
	if !ok {
		g.lk.RUnlock()
		return nil, nil
	}

	g.recordPeek()

	// the handle carries a copy out of the map; the read lock it owns
	// still blocks writers so the store cannot move underneath a borrow
	return guard.NewRef(&v, g.lk.RUnlock), nil
}

// Latest returns a handle to the value with the highest version, holding
// the shared lock until the handle is released. The handle is nil when
// the store is empty.
func (g *Guarded[T]) Latest() (*guard.Ref[T], error) {
	if err := g.lk.RLock(); err != nil {
		return nil, errors.WrapFatal(err, "Guarded", "Latest", "entries read lock")
	}

	v, ok := g.inner.Latest()
	if !ok {
		g.lk.RUnlock()
		return nil, nil
	}

	g.recordPeek()

	return guard.NewRef(&v, g.lk.RUnlock), nil
}

// LatestVersion returns the highest version together with a handle to
// its value. The handle is nil when the store is empty; the version is
// zero in that case.
func (g *Guarded[T]) LatestVersion() (uint64, *guard.Ref[T], error) {
	if err := g.lk.RLock(); err != nil {
		return 0, nil, errors.WrapFatal(err, "Guarded", "LatestVersion", "entries read lock")
	}

	version, v, ok := g.inner.LatestVersion()
	if !ok {
		g.lk.RUnlock()
		return 0, nil, nil
	}

	g.recordPeek()

	return version, guard.NewRef(&v, g.lk.RUnlock), nil
}

// Store returns a handle to the whole underlying store, holding the
// shared lock until the handle is released. The handle exposes the live
// store; callers must treat it as read-only.
func (g *Guarded[T]) Store() (*guard.Ref[Store[T]], error) {
	if err := g.lk.RLock(); err != nil {
		return nil, errors.WrapFatal(err, "Guarded", "Store", "entries read lock")
	}

	g.recordPeek()

	return guard.NewRef(g.inner, g.lk.RUnlock), nil
}

// Iter returns an iterator over the entries in ascending version order,
// holding the shared lock until the iterator is closed. Callers must
// call Close.
func (g *Guarded[T]) Iter() (*GuardedIter[T], error) {
	if err := g.lk.RLock(); err != nil {
		return nil, errors.WrapFatal(err, "Guarded", "Iter", "entries read lock")
	}

	g.recordPeek()

	return &GuardedIter[T]{
		it:      g.inner.Iter(),
		release: g.lk.RUnlock,
	}, nil
}

// Snapshot externalizes the store's full state. The counter lock is
// taken first, matching the write ordering, so a snapshot never captures
// a counter behind an entry it contains.
func (g *Guarded[T]) Snapshot() (*Snapshot[T], error) {
	if err := g.ctr.Lock(); err != nil {
		return nil, errors.WrapFatal(err, "Guarded", "Snapshot", "counter lock")
	}
	defer g.ctr.Unlock()

	if err := g.lk.RLock(); err != nil {
		return nil, errors.WrapFatal(err, "Guarded", "Snapshot", "entries read lock")
	}
	defer g.lk.RUnlock()

	return &Snapshot[T]{
		Entries: g.inner.Entries(),
		Counter: g.counter,
	}, nil
}

// Restore overwrites the store's state from a snapshot. The snapshot is
// validated first; on error the store is unchanged.
func (g *Guarded[T]) Restore(snap *Snapshot[T]) error {
	if err := g.ctr.Lock(); err != nil {
		return errors.WrapFatal(err, "Guarded", "Restore", "counter lock")
	}
	defer g.ctr.Unlock()

	if err := g.lk.Lock(); err != nil {
		return errors.WrapFatal(err, "Guarded", "Restore", "entries write lock")
	}
	defer g.lk.Unlock()

	if err := g.inner.Restore(snap); err != nil {
		return err
	}

	g.counter = snap.Counter
	if g.metrics != nil {
		g.metrics.entries.Set(float64(g.inner.Len()))
	}

	return nil
}

func (g *Guarded[T]) recordPeek() {
	if g.metrics != nil {
		g.metrics.recordPeek()
	}
}

// GuardedIter is an ascending-version iterator over a guarded store. It
// owns a shared-lock acquisition for its whole lifetime: writers block
// until Close is called. After Close it reports exhaustion.
type GuardedIter[T any] struct {
	mu      sync.Mutex
	it      *Iter[T]
	release func()
}

// Next yields the next version and value in ascending order.
func (gi *GuardedIter[T]) Next() (uint64, T, bool) {
	gi.mu.Lock()
	defer gi.mu.Unlock()

	if gi.it == nil {
		var zero T
		return 0, zero, false
	}

	return gi.it.Next()
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
