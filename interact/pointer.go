// Package interact turns raw pointer and device-orientation input into the
// normalized offsets the tilt effects consume, and owns the orientation
// permission handshake.
package interact

// Rect is an axis-aligned box in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains is inclusive of the top-left edge and exclusive of the
// bottom-right edge.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// NormalizePointer maps a pointer position to offsets from the center of r
// in [-0.5, 0.5] on both axes. ok is false for an empty rect.
func NormalizePointer(r Rect, px, py float64) (nx, ny float64, ok bool) {
	if r.Empty() {
		return 0, 0, false
	}
	nx = clamp((px-r.X)/r.W-0.5, -0.5, 0.5)
	ny = clamp((py-r.Y)/r.H-0.5, -0.5, 0.5)
	return nx, ny, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
