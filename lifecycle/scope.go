// Package lifecycle owns the mount lifetime of the page: a Scope collects
// cleanup work and Timers schedules delayed callbacks on the update loop.
package lifecycle

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned when work is registered on a scope that already ran
// its teardown.
var ErrClosed = errors.New("lifecycle: scope closed")

// Scope is one view mount. Cleanups registered with Defer run in reverse
// order when Close is called. Alive may be queried from any goroutine.
type Scope struct {
	mu     sync.Mutex
	closed bool
	defers []func()
	ctx    context.Context
	cancel context.CancelFunc
}

func NewScope(parent context.Context) *Scope {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Alive reports whether the scope has not been closed yet.
func (s *Scope) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

// Context is cancelled when the scope closes.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Defer registers fn to run on Close. If the scope is already closed fn runs
// immediately and ErrClosed is returned.
func (s *Scope) Defer(fn func()) error {
	if fn == nil {
		return nil
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		fn()
		return ErrClosed
	}
	s.defers = append(s.defers, fn)
	s.mu.Unlock()
	return nil
}

// Pending is the number of cleanups waiting for Close.
func (s *Scope) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.defers)
}

// Close cancels the context and runs every registered cleanup, newest first.
// Calling Close more than once is a no-op.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	defers := s.defers
	s.defers = nil
	s.mu.Unlock()

	s.cancel()
	for i := len(defers) - 1; i >= 0; i-- {
		defers[i]()
	}
}
