package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of file system events into single rebuild
// triggers: a trigger fires once the configured quiet period elapses after
// the last Touch.
type Debouncer struct {
	interval time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	stopped  bool
	triggers chan struct{}
}

// NewDebouncer creates a Debouncer with the given quiet period.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		triggers: make(chan struct{}, 1),
	}
}

// Touch records activity, resetting the quiet period.
func (d *Debouncer) Touch() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	// Drop the trigger if the previous one has not been consumed yet; a
	// single pending rebuild covers any number of coalesced changes.
	select {
	case d.triggers <- struct{}{}:
	default:
	}
}

// Triggers returns the channel on which rebuild triggers are delivered.
func (d *Debouncer) Triggers() <-chan struct{} {
	return d.triggers
}

// Stop cancels any pending trigger and closes the trigger channel.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
	close(d.triggers)
}
