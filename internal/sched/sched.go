// Package sched implements the cooperative periodic-timer table driving
// the logic subsystems. One scheduler pass invokes every due callback
// synchronously, in registration order, on the calling goroutine; a slow
// callback delays the ones after it. Best-effort, not real-time.
package sched

import "time"

// Callback is a timer's work function. A returned error aborts the pass
// and is treated as fatal by the run loop.
type Callback func() error

// Timer is one (period, last-trigger, callback) record.
type Timer struct {
	period time.Duration
	last   time.Time
	fn     Callback
}

// SetPeriod adjusts the timer's period. The difficulty ramp uses this to
// shorten the scroll cadence between passes.
func (t *Timer) SetPeriod(d time.Duration) {
	if d > 0 {
		t.period = d
	}
}

// Period returns the timer's current period.
func (t *Timer) Period() time.Duration {
	return t.period
}

// Scheduler is an ordered list of timers sharing one clock.
type Scheduler struct {
	timers []*Timer
	now    func() time.Time
}

// New creates a scheduler. A nil clock means wall time; tests inject
// their own.
func New(now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{now: now}
}

// Add registers a timer. Registration order is invocation order within
// a pass. The returned Timer allows later period adjustment.
func (s *Scheduler) Add(period time.Duration, fn Callback) *Timer {
	t := &Timer{period: period, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Pass invokes every timer whose period has elapsed, stamping its
// last-trigger to the post-invocation time. Drift accumulates when the
// callbacks take longer than the available slack; that is accepted.
func (s *Scheduler) Pass() error {
	for _, t := range s.timers {
		if s.now().Sub(t.last) > t.period {
			if err := t.fn(); err != nil {
				return err
			}
			t.last = s.now()
		}
	}
	return nil
}
