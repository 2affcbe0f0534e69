// Package watcher implements file system watching for watch mode.
package watcher

import (
	"sync"
	"time"
)

// Delayer hands each scheduled path to a callback after a fixed window.
// Every Schedule call produces exactly one delivery: paths are neither
// coalesced nor cancelled by later calls for the same path.
type Delayer struct {
	mu       sync.Mutex
	window   time.Duration
	timers   map[*time.Timer]struct{}
	callback func(path string)
}

// NewDelayer creates a new delayer with the given window and callback.
func NewDelayer(window time.Duration, callback func(path string)) *Delayer {
	return &Delayer{
		window:   window,
		timers:   make(map[*time.Timer]struct{}),
		callback: callback,
	}
}

// Schedule delivers path to the callback once the window has elapsed.
// The callback runs on its own goroutine.
func (d *Delayer) Schedule(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var timer *time.Timer
	timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		delete(d.timers, timer)
		d.mu.Unlock()

		if d.callback != nil {
			d.callback(path)
		}
	})
	d.timers[timer] = struct{}{}
}

// Pending returns the number of deliveries that have not fired yet.
func (d *Delayer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}

// Stop drops every pending delivery. It is meant for shutdown only.
func (d *Delayer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for timer := range d.timers {
		timer.Stop()
	}
	clear(d.timers)
}
