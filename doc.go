// Package history provides bounded-history containers: fixed and
// growable ring buffers plus a version-numbered value store, each in a
// single-owner form and a lock-guarded concurrent form.
//
// # Packages
//
// Containers:
//   - ringbuf: fixed-capacity ring buffer (Fixed) and its concurrent
//     counterpart (Guarded) with double-ended iteration and snapshots
//   - growbuf: variable-capacity buffer whose capacity can be grown or
//     shrunk at runtime
//   - versioned: monotonically versioned value store (Store / Guarded)
//     where versions are never reused
//
// Infrastructure:
//   - pkg/guard: poison-aware locks and borrow handles backing the
//     guarded containers
//   - persist: snapshot files with gob, JSON, YAML, and authenticated
//     encryption codecs
//   - metric: Prometheus metric registry shared by the guarded
//     containers
//   - errors: classified error handling (transient, invalid, fatal)
//
// # Concurrency Model
//
// The guarded containers never hand out unprotected references to
// shared state. Read accessors return guard.Ref handles that keep the
// container's read lock held until released, so a value cannot change
// underneath a borrower:
//
//	buf, _ := ringbuf.NewGuarded[event](256)
//	ref, _ := buf.Newest()
//	if ref != nil {
//		consume(*ref.Value())
//		ref.Release()
//	}
//
// If a writer panics while holding a lock, the lock is poisoned and
// every later operation reports errors.ErrLockPoisoned rather than
// exposing half-mutated state.
//
// # Persistence
//
// Every container externalizes its complete state as a snapshot type
// with exported fields. The persist package stores snapshots on disk
// through pluggable codecs; restores validate internal consistency
// before any state is replaced.
package history
