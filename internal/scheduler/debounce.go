// Package scheduler throttles how often document validation runs while the
// writer is typing.
package scheduler

import (
	"sync"
	"time"
)

// Debouncer runs fn once the input has been quiet for the configured delay.
// Every Trigger cancels the pending run and schedules a new one, so the last
// edit wins. A run that has already started is never interrupted.
type Debouncer struct {
	delay time.Duration
	fn    func()

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	running int
	stopped bool
}

// NewDebouncer creates a Debouncer. A non-positive delay runs fn
// synchronously on every Trigger.
func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger (re)starts the quiet period.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.delay <= 0 {
		d.mu.Unlock()
		d.fn()
		return
	}

	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
	d.mu.Unlock()
}

// fire runs fn unless a newer Trigger or a Cancel happened after the timer
// for gen was armed.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.running++
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.running--
		d.mu.Unlock()
	}()
	d.fn()
}

// Cancel drops the pending run, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a run is scheduled or a timer-fired run is still
// executing.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil || d.running > 0
}

// Stop cancels the pending run and disables further triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
