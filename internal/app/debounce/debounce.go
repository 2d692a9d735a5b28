// Package debounce runs the last of a burst of calls once the caller has
// been quiet for a fixed window. Scheduling a new call cancels the pending
// one: its timer is stopped and its context is canceled, so work that has
// already started (an in-flight availability request) is aborted too.
//
//	d := debounce.New(500 * time.Millisecond)
//	defer d.Close()
//
//	d.Call(ctx, func(ctx context.Context) { check(ctx, code) })
package debounce

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Debouncer delays and collapses calls. The zero value is not usable; use
// New. Safe for concurrent use.
type Debouncer struct {
	clock clock.Clock
	wait  time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	timer   *clock.Timer
	closed  bool
	pending sync.WaitGroup
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithClock replaces the wall clock, typically with clock.NewMock in tests.
func WithClock(c clock.Clock) Option {
	return func(d *Debouncer) {
		d.clock = c
	}
}

// New returns a Debouncer that waits for wait of quiet before running.
func New(wait time.Duration, opts ...Option) *Debouncer {
	d := &Debouncer{
		clock: clock.New(),
		wait:  wait,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Call schedules fn to run after the quiet window, replacing any pending
// call. fn receives a context that keeps ctx's values but not its
// cancellation (the scheduling request usually ends first); it is canceled
// when a newer call arrives or the Debouncer stops. Calls after Close are
// ignored.
func (d *Debouncer) Call(ctx context.Context, fn func(context.Context)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	if d.closed {
		return
	}

	taskCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	t := d.clock.Timer(d.wait)
	d.cancel = cancel
	d.timer = t

	d.pending.Add(1)
	go func() {
		defer d.pending.Done()
		defer cancel()

		select {
		case <-t.C:
			// A cancel racing the timer wins.
			if taskCtx.Err() != nil {
				return
			}
			fn(taskCtx)
		case <-taskCtx.Done():
		}
	}()
}

// Stop cancels the pending call, if any, without waiting for it to return.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

// Close cancels the pending call, rejects further calls and waits for any
// running call to return.
func (d *Debouncer) Close() {
	d.mu.Lock()
	d.stopLocked()
	d.closed = true
	d.mu.Unlock()

	d.pending.Wait()
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
