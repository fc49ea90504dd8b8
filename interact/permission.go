package interact

import (
	"context"
	"errors"
	"log"
)

// ErrPermissionDenied is returned by platforms when the user refuses
// orientation access.
var ErrPermissionDenied = errors.New("interact: orientation permission denied")

type PermissionState int

const (
	PermissionUnknown PermissionState = iota
	PermissionGranted
	PermissionDenied
)

func (s PermissionState) String() string {
	switch s {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	}
	return "unknown"
}

// Platform is the host's orientation source.
type Platform interface {
	// HasOrientationPermissionAPI reports whether access must be requested
	// before orientation events are delivered.
	HasOrientationPermissionAPI() bool
	// RequestOrientationPermission blocks until the user answers or ctx is
	// done.
	RequestOrientationPermission(ctx context.Context) (PermissionState, error)
	// ListenOrientation attaches fn and returns its detach function. fn may
	// be called from any goroutine.
	ListenOrientation(fn func(OrientationSample)) (detach func())
}

// Poller is implemented by platforms that must be polled each frame.
type Poller interface {
	Poll()
}

// Liveness is satisfied by the mount scope.
type Liveness interface {
	Alive() bool
}

// PermissionGate issues at most one permission request per mount and hands
// the answer back on the update loop through Poll. An answer that arrives
// after the mount died is dropped.
type PermissionGate struct {
	platform  Platform
	alive     Liveness
	requested bool
	reported  bool
	state     PermissionState
	result    chan PermissionState
}

func NewPermissionGate(p Platform, alive Liveness) *PermissionGate {
	return &PermissionGate{
		platform: p,
		alive:    alive,
		result:   make(chan PermissionState, 1),
	}
}

// Request starts the permission request. Later calls do nothing. Platforms
// without a permission API are granted without asking.
func (g *PermissionGate) Request(ctx context.Context) {
	if g.requested || g.platform == nil {
		return
	}
	g.requested = true
	if !g.platform.HasOrientationPermissionAPI() {
		g.result <- PermissionGranted
		return
	}
	go func() {
		state, err := g.platform.RequestOrientationPermission(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) && !errors.Is(err, ErrPermissionDenied) {
				log.Printf("Warning: orientation permission request failed: %v", err)
			}
			state = PermissionDenied
		}
		if state != PermissionGranted {
			state = PermissionDenied
		}
		g.result <- state
	}()
}

// Requested reports whether Request has already run for this gate.
func (g *PermissionGate) Requested() bool {
	return g.requested
}

// Poll returns the answer exactly once, on the first call after it
// arrives. It returns false while pending, after the answer was reported,
// and when the mount ended before the answer came back.
func (g *PermissionGate) Poll() (PermissionState, bool) {
	if g.reported {
		return g.state, false
	}
	select {
	case s := <-g.result:
		if g.alive != nil && !g.alive.Alive() {
			return PermissionUnknown, false
		}
		g.state, g.reported = s, true
		return s, true
	default:
		return g.state, false
	}
}

// State is the last reported answer.
func (g *PermissionGate) State() PermissionState {
	return g.state
}
