// Package eventloop runs UI handlers one at a time on a single goroutine.
//
// Timers and debouncers never call handlers directly; they post them to the
// loop, so state owned by a loop is only ever touched by its goroutine.
package eventloop

import (
	"context"
	"log"
	"runtime/debug"
	"sync"
	"time"

	"github.com/bep/debounce"
)

// Loop is a single-goroutine executor for handlers.
type Loop struct {
	name   string
	events chan func()
	done   chan struct{}
	once   sync.Once
}

// New creates a loop with the given queue capacity. Name prefixes log lines.
func New(name string, buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		name:   name,
		events: make(chan func(), buffer),
		done:   make(chan struct{}),
	}
}

// Run executes posted handlers in order until ctx is cancelled or Stop is
// called. A panicking handler is logged and does not stop the loop.
func (l *Loop) Run(ctx context.Context) {
	defer l.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.done:
			return
		case fn := <-l.events:
			l.exec(fn)
		}
	}
}

func (l *Loop) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("%s: handler panic: %v\n%s", l.name, r, debug.Stack())
		}
	}()
	fn()
}

// Post queues fn. It returns false if the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.events <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Do posts fn and waits until it has run. It returns false if the loop
// stopped before fn could run.
func (l *Loop) Do(fn func()) bool {
	ran := make(chan struct{})
	if !l.Post(func() {
		defer close(ran)
		fn()
	}) {
		return false
	}
	select {
	case <-ran:
		return true
	case <-l.done:
		return false
	}
}

// Stop ends the loop. Pending and future handlers are dropped.
func (l *Loop) Stop() {
	l.once.Do(func() { close(l.done) })
}

// Done is closed once the loop has stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// After posts fn to the loop once d has elapsed.
func (l *Loop) After(d time.Duration, fn func()) *time.Timer {
	return time.AfterFunc(d, func() { l.Post(fn) })
}

// Debouncer keeps at most one pending action; each Trigger replaces it and
// restarts the delay.
type Debouncer struct {
	loop      *Loop
	debounced func(func())
}

// Debounce returns a debouncer whose actions run on the loop after d of quiet.
func (l *Loop) Debounce(d time.Duration) *Debouncer {
	return &Debouncer{loop: l, debounced: debounce.New(d)}
}

// Trigger schedules fn, cancelling whatever was pending.
func (d *Debouncer) Trigger(fn func()) {
	d.debounced(func() { d.loop.Post(fn) })
}

// TriggerAfter waits grace before triggering, for input that has not landed
// yet when the event fires.
func (d *Debouncer) TriggerAfter(grace time.Duration, fn func()) {
	if grace <= 0 {
		d.Trigger(fn)
		return
	}
	time.AfterFunc(grace, func() { d.Trigger(fn) })
}
