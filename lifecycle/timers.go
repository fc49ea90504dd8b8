package lifecycle

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Timer is a single pending callback created by Timers.After.
type Timer struct {
	clock *gween.Tween
	fn    func()
	done  bool
}

// Stop cancels the timer. It is safe to call on a fired or stopped timer.
func (t *Timer) Stop() {
	if t != nil {
		t.done = true
	}
}

// Pending reports whether the timer has neither fired nor been stopped.
func (t *Timer) Pending() bool {
	return t != nil && !t.done
}

// Timers is a frame-driven scheduler. Callbacks only run from Advance, so
// they always execute on the update loop.
type Timers struct {
	scope   *Scope
	pending []*Timer
}

// NewTimers binds a scheduler to scope: closing the scope stops every
// pending timer and later calls to After schedule nothing.
func NewTimers(scope *Scope) *Timers {
	ts := &Timers{scope: scope}
	if scope != nil {
		_ = scope.Defer(ts.StopAll)
	}
	return ts
}

// After schedules fn to run once d has elapsed on the frame clock.
func (ts *Timers) After(d time.Duration, fn func()) *Timer {
	t := &Timer{fn: fn}
	if ts.scope != nil && !ts.scope.Alive() {
		t.done = true
		return t
	}
	if d < 0 {
		d = 0
	}
	t.clock = gween.New(0, 1, float32(d.Seconds()), ease.Linear)
	ts.pending = append(ts.pending, t)
	return t
}

// Advance moves the clock forward by dt and fires due timers. Timers
// scheduled from inside a callback start counting on the next Advance.
func (ts *Timers) Advance(dt time.Duration) {
	if len(ts.pending) == 0 {
		return
	}
	due := ts.pending
	ts.pending = nil

	step := float32(dt.Seconds())
	keep := due[:0]
	for _, t := range due {
		if t.done {
			continue
		}
		if _, finished := t.clock.Update(step); !finished {
			keep = append(keep, t)
			continue
		}
		t.done = true
		if ts.scope != nil && !ts.scope.Alive() {
			continue
		}
		if t.fn != nil {
			t.fn()
		}
	}
	ts.pending = append(keep, ts.pending...)
}

// StopAll cancels every pending timer.
func (ts *Timers) StopAll() {
	for _, t := range ts.pending {
		t.done = true
	}
	ts.pending = nil
}

// Len is the number of timers still waiting to fire.
func (ts *Timers) Len() int {
	n := 0
	for _, t := range ts.pending {
		if !t.done {
			n++
		}
	}
	return n
}
