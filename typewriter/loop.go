package typewriter

import (
	"time"

	"github.com/automoto/portfolio/lifecycle"
)

// Scheduler runs fn after d.
type Scheduler interface {
	After(d time.Duration, fn func()) *lifecycle.Timer
}

// Loop drives a Machine from scheduler callbacks and reports text changes.
type Loop struct {
	machine  *Machine
	sched    Scheduler
	onChange func(string)
	pending  *lifecycle.Timer
	running  bool
}

func NewLoop(m *Machine, s Scheduler, onChange func(string)) *Loop {
	return &Loop{machine: m, sched: s, onChange: onChange}
}

// Start takes the first step immediately. Starting a running loop does
// nothing.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.tick()
}

func (l *Loop) tick() {
	if !l.running {
		return
	}
	before := l.machine.Text()
	d := l.machine.Step()
	if text := l.machine.Text(); text != before && l.onChange != nil {
		l.onChange(text)
	}
	l.pending = l.sched.After(d, l.tick)
}

// Stop cancels the pending step.
func (l *Loop) Stop() {
	l.running = false
	if l.pending != nil {
		l.pending.Stop()
		l.pending = nil
	}
}

func (l *Loop) Running() bool { return l.running }

func (l *Loop) Machine() *Machine { return l.machine }
