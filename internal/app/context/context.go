// Package appctx holds per-request state for the application services: a
// memo of directory reads, so a tenant fetched or written once during a
// request is not fetched again, and SafeRef for state shared across requests.
//
//	byID := appctx.NewKey[*tenant.Tenant]("tenant:" + id)
//	t, err := appctx.Fetch(appctx.FromContext(ctx), byID, load)
//	appctx.Put(rc, byID, updated)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTypeMismatch means two keys with the same name were used with
// different value types.
var ErrTypeMismatch = errors.New("appctx: memoized value type mismatch")

// Key names a memoized value of type T.
type Key[T any] struct {
	name string
}

// NewKey returns the key for name.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// String returns the key's name.
func (k Key[T]) String() string { return k.name }

// RequestContext is a context carrying the request's memo. It is safe for
// concurrent use, so fan-out workers may record results directly.
type RequestContext struct {
	context.Context

	mu   sync.Mutex
	memo map[string]memoized
}

// memoized is a fetch outcome. Failed fetches are kept too so a missing
// tenant is reported once per request, not looked up again.
type memoized struct {
	value any
	err   error
}

type requestContextKey struct{}

// New returns an empty RequestContext over ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, memo: make(map[string]memoized)}
}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext in ctx, or a fresh one over ctx when
// there is none, as in background work and tests.
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(requestContextKey{}).(*RequestContext); ok {
		return rc
	}
	return New(ctx)
}

// Fetch returns the memoized value for key or calls fetch once to obtain it.
// Cancellation errors are not memoized. The lock is not held during fetch,
// so concurrent callers for the same key may both fetch.
func Fetch[T any](rc *RequestContext, key Key[T], fetch func(context.Context) (T, error)) (T, error) {
	if v, ok, err := lookup(rc, key); ok {
		return v, err
	}

	v, err := fetch(rc.Context)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return v, err
	}
	rc.store(key.name, memoized{value: v, err: err})
	return v, err
}

func lookup[T any](rc *RequestContext, key Key[T]) (T, bool, error) {
	rc.mu.Lock()
	m, ok := rc.memo[key.name]
	rc.mu.Unlock()

	var zero T
	switch {
	case !ok:
		return zero, false, nil
	case m.err != nil:
		return zero, true, m.err
	}
	v, ok := m.value.(T)
	if !ok {
		return zero, true, fmt.Errorf("%w: %q holds %T, want %T", ErrTypeMismatch, key.name, m.value, zero)
	}
	return v, true, nil
}

// Put memoizes v under key, replacing any earlier value or error. Services
// call it after a write so later reads in the request see the new state.
func Put[T any](rc *RequestContext, key Key[T], v T) {
	rc.store(key.name, memoized{value: v})
}

// Forget drops key so the next Fetch goes to the source.
func Forget[T any](rc *RequestContext, key Key[T]) {
	rc.mu.Lock()
	delete(rc.memo, key.name)
	rc.mu.Unlock()
}

func (rc *RequestContext) store(name string, m memoized) {
	rc.mu.Lock()
	rc.memo[name] = m
	rc.mu.Unlock()
}
