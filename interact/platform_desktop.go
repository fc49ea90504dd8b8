//go:build !js

package interact

import (
	"context"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// GamepadPlatform treats the right stick of the first standard gamepad as
// a tilt sensor. Samples are only emitted while the stick moves, so a
// resting stick does not fight pointer tilt.
type GamepadPlatform struct {
	listeners map[int]func(OrientationSample)
	nextID    int
	ids       []ebiten.GamepadID
	lastX     float64
	lastY     float64
}

// DefaultPlatform is the orientation source for this build.
func DefaultPlatform() Platform {
	return &GamepadPlatform{}
}

func (g *GamepadPlatform) HasOrientationPermissionAPI() bool {
	return false
}

func (g *GamepadPlatform) RequestOrientationPermission(context.Context) (PermissionState, error) {
	return PermissionGranted, nil
}

func (g *GamepadPlatform) ListenOrientation(fn func(OrientationSample)) func() {
	if g.listeners == nil {
		g.listeners = make(map[int]func(OrientationSample))
	}
	id := g.nextID
	g.nextID++
	g.listeners[id] = fn
	return func() { delete(g.listeners, id) }
}

// Listeners is the number of attached orientation callbacks.
func (g *GamepadPlatform) Listeners() int {
	return len(g.listeners)
}

// Poll reads the stick and notifies listeners. It must be called from the
// update loop.
func (g *GamepadPlatform) Poll() {
	if len(g.listeners) == 0 {
		return
	}
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	for _, id := range g.ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		g.emit(x, y)
		return
	}
}

func (g *GamepadPlatform) emit(x, y float64) {
	const epsilon = 0.02
	if math.Abs(x-g.lastX) < epsilon && math.Abs(y-g.lastY) < epsilon {
		return
	}
	g.lastX, g.lastY = x, y
	sample := Angles(90+y*90, x*90)
	for _, fn := range g.listeners {
		fn(sample)
	}
}
