package cards

import (
	"context"
	"sync"
	"time"
)

// Timer is a scheduled callback that can be stopped before it fires.
type Timer interface {
	Stop() bool
}

// Scheduler runs delayed callbacks.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// timeScheduler runs callbacks on their own goroutine, which is only safe on
// a single-threaded runtime.
type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Loop is a Scheduler that hands due callbacks back to the goroutine that
// owns the page. Callbacks run only from RunDue or Run, never concurrently
// with the owner's own event handling.
type Loop struct {
	mu    sync.Mutex
	due   []*loopTimer
	ready chan struct{}
}

// NewLoop returns an empty Loop.
func NewLoop() *Loop {
	return &Loop{ready: make(chan struct{}, 1)}
}

// AfterFunc schedules f to become due after d.
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	t := &loopTimer{f: f}
	t.mu.Lock()
	t.timer = time.AfterFunc(d, func() {
		l.post(t)
	})
	t.mu.Unlock()
	return t
}

func (l *Loop) post(t *loopTimer) {
	l.mu.Lock()
	l.due = append(l.due, t)
	l.mu.Unlock()
	select {
	case l.ready <- struct{}{}:
	default:
	}
}

// Ready receives a value when callbacks have come due.
func (l *Loop) Ready() <-chan struct{} {
	return l.ready
}

// RunDue runs the callbacks that have come due and were not stopped, on the
// calling goroutine, and returns how many ran.
func (l *Loop) RunDue() int {
	l.mu.Lock()
	due := l.due
	l.due = nil
	l.mu.Unlock()
	var n int
	for _, t := range due {
		if t.run() {
			n++
		}
	}
	return n
}

// Run runs due callbacks as they arrive until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.ready:
			l.RunDue()
		}
	}
}

type loopTimer struct {
	mu    sync.Mutex
	f     func()
	timer *time.Timer
	// done is set once the callback has run or been stopped.
	done bool
}

// Stop prevents the callback from running, even if it is already due.
func (t *loopTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.timer.Stop()
	return true
}

func (t *loopTimer) run() bool {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return false
	}
	t.done = true
	t.mu.Unlock()
	t.f()
	return true
}
