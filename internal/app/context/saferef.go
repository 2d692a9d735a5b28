package appctx

import "sync"

// SafeRef guards a value shared between requests, such as the state of one
// wizard session. Reads take a shared lock and return a shallow copy;
// Update and Try hold the exclusive lock for the whole mutation, so two
// writers never interleave on the same value.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef returns a SafeRef holding val.
func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Get returns a shallow copy of the value.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Update mutates the value in place.
func (r *SafeRef[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.val)
}

// Try runs fn on a copy and keeps the copy only if fn succeeds, so a
// rejected wizard transition leaves the session as it was. The copy is
// shallow: fn must replace maps and slices rather than edit them.
func (r *SafeRef[T]) Try(fn func(*T) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.val
	if err := fn(&next); err != nil {
		return err
	}
	r.val = next
	return nil
}
