package carousel

import (
	"time"

	"github.com/phanxgames/carousel/internal/syncutils"
)

// Debouncer collapses bursts of calls into one: each Trigger cancels the
// previously scheduled call and schedules a new one after Delay.
type Debouncer struct {
	mu      syncutils.Mutex
	sched   Scheduler
	delay   time.Duration
	pending Task
}

// NewDebouncer creates a debouncer on the given scheduler.
func NewDebouncer(s Scheduler, delay time.Duration) *Debouncer {
	return &Debouncer{sched: s, delay: delay}
}

// Trigger schedules fn, replacing any call still pending.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
	}
	d.pending = d.sched.AfterFunc(d.delay, fn)
}

// Stop cancels the pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}
