// Package scheduler runs delayed actions on a single owner goroutine.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Loop implements domain.Scheduler.
var _ domain.Scheduler = (*Loop)(nil)

// Loop collects fired actions from real timers and hands them to its owner.
// Actions never run on timer goroutines: the owner executes them through
// Run or Next, so all state they touch stays on one goroutine.
type Loop struct {
	fired     chan *entry
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a Loop.
func New() *Loop {
	return &Loop{
		fired: make(chan *entry),
		done:  make(chan struct{}),
	}
}

// entry is one scheduled action.
type entry struct {
	fn      func()
	timer   *time.Timer
	stopped atomic.Bool
}

// Stop cancels the action. An action that already fired but has not run yet
// is skipped when the owner gets to it.
func (e *entry) Stop() {
	e.stopped.Store(true)
	if e.timer != nil {
		e.timer.Stop()
	}
}

func (e *entry) run() {
	if e.stopped.Swap(true) {
		return
	}
	e.fn()
}

// AfterFunc schedules fn to run on the owner goroutine once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, fn func()) domain.Timer {
	e := &entry{fn: fn}
	e.timer = time.AfterFunc(d, func() {
		select {
		case l.fired <- e:
		case <-l.done:
		}
	})
	return e
}

// Run executes fired actions until ctx is cancelled or the loop is closed.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case e := <-l.fired:
			e.run()
		}
	}
}

// Next blocks until an action fires and returns a function that runs it.
// The caller must invoke the function on the owner goroutine.
// Returns false when ctx is cancelled or the loop is closed.
func (l *Loop) Next(ctx context.Context) (func(), bool) {
	select {
	case <-ctx.Done():
		return nil, false
	case <-l.done:
		return nil, false
	case e := <-l.fired:
		return e.run, true
	}
}

// Close releases timer goroutines waiting to deliver and ends Run.
// Actions that have not fired yet still hold their timers; stop them first.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		close(l.done)
	})
}
