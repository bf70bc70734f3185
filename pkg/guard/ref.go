package guard

import "sync"

// Ref is a borrow handle: a value read out of a shared container paired
// with the shared-lock acquisition that produced it. The referenced value
// stays valid exactly as long as the handle is unreleased — no writer can
// enter the container until every outstanding Ref has been released.
//
// Callers must call Release when done and must not retain the pointer
// returned by Value past that point. After Release, Value returns nil.
type Ref[T any] struct {
	mu      sync.Mutex
	value   *T
	release func()
}

// NewRef pairs a protected value with the release of the read lock that
// covers it.
func NewRef[T any](value *T, release func()) *Ref[T] {
	return &Ref[T]{value: value, release: release}
}

// Value returns a pointer to the protected value, or nil once the handle
// has been released.
func (r *Ref[T]) Value() *T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// Clone copies the protected value out of the handle. ok is false once
// the handle has been released. Useful when the value must outlive the
// lock.
func (r *Ref[T]) Clone() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.value == nil {
		var zero T
		return zero, false
	}
	return *r.value, true
}

// Release drops the borrow, releasing the underlying read lock. Safe to
// call more than once.
func (r *Ref[T]) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.release == nil {
		return
	}

	rel := r.release
	r.release = nil
	r.value = nil
	rel()
}
