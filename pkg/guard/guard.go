// Package guard provides poison-aware lock primitives and borrow handles
// for the concurrently shared history containers.
//
// Go locks do not track the fate of their holders. The containers in this
// module promise that a reader can never observe state a crashed writer
// left half-mutated, so the lock types here record a poison bit when a
// holder panics while the lock is held. Every later acquisition surfaces
// errors.ErrLockPoisoned instead of handing out the suspect state.
package guard

import (
	"sync"
	"sync/atomic"

	"github.com/c360/history/errors"
)

// RWMutex is a reader/writer lock that tracks poisoning from exclusive
// holders. Shared (read) holders never mutate and so never poison.
type RWMutex struct {
	mu       sync.RWMutex
	poisoned atomic.Bool
}

// Lock acquires exclusive access, blocking until available. It reports
// errors.ErrLockPoisoned if a previous exclusive holder panicked while
// holding the lock; in that case the lock is not held on return.
func (m *RWMutex) Lock() error {
	m.mu.Lock()
	if m.poisoned.Load() {
		m.mu.Unlock()
		return errors.ErrLockPoisoned
	}
	return nil
}

// Unlock releases exclusive access. It must be deferred directly by the
// function that acquired the lock: if that function is unwinding from a
// panic, the lock is marked poisoned before the panic resumes.
func (m *RWMutex) Unlock() {
	if r := recover(); r != nil {
		m.poisoned.Store(true)
		m.mu.Unlock()
		panic(r)
	}
	m.mu.Unlock()
}

// RLock acquires shared access, blocking until available. It reports
// errors.ErrLockPoisoned if the lock has been poisoned; in that case the
// lock is not held on return.
func (m *RWMutex) RLock() error {
	m.mu.RLock()
	if m.poisoned.Load() {
		m.mu.RUnlock()
		return errors.ErrLockPoisoned
	}
	return nil
}

// RUnlock releases shared access.
func (m *RWMutex) RUnlock() {
	m.mu.RUnlock()
}

// Poisoned reports whether an exclusive holder panicked while holding
// the lock.
func (m *RWMutex) Poisoned() bool {
	return m.poisoned.Load()
}

// Mutex is a mutual-exclusion lock that tracks poisoning, used where a
// single counter or cursor needs its own lock separate from the data it
// sequences.
type Mutex struct {
	mu       sync.Mutex
	poisoned atomic.Bool
}

// Lock acquires the lock, blocking until available. It reports
// errors.ErrLockPoisoned if a previous holder panicked while holding the
// lock; in that case the lock is not held on return.
func (m *Mutex) Lock() error {
	m.mu.Lock()
	if m.poisoned.Load() {
		m.mu.Unlock()
		return errors.ErrLockPoisoned
	}
	return nil
}

// Unlock releases the lock. It must be deferred directly by the function
// that acquired the lock so panics poison the lock before resuming.
func (m *Mutex) Unlock() {
	if r := recover(); r != nil {
		m.poisoned.Store(true)
		m.mu.Unlock()
		panic(r)
	}
	m.mu.Unlock()
}

// Poisoned reports whether a holder panicked while holding the lock.
func (m *Mutex) Poisoned() bool {
	return m.poisoned.Load()
}
