// Package motion is the tween engine behind every hover, tilt and entrance
// on the page. Tweens write into Transforms; the renderer reads them.
package motion

import "math"

// Prop names one animatable channel of a Transform.
type Prop int

const (
	PropX Prop = iota
	PropY
	PropRotateX
	PropRotateY
	PropScale
	PropOpacity
	PropShadow
	propCount
)

var propNames = [propCount]string{"x", "y", "rotationX", "rotationY", "scale", "opacity", "boxShadow"}

func (p Prop) String() string {
	if p < 0 || p >= propCount {
		return "unknown"
	}
	return propNames[p]
}

// PropSet is a bit set of Props.
type PropSet uint16

func (s PropSet) Has(p Prop) bool { return s&(1<<p) != 0 }

func (s PropSet) With(p Prop) PropSet { return s | 1<<p }

func (s PropSet) Without(o PropSet) PropSet { return s &^ o }

func (s PropSet) Empty() bool { return s == 0 }

// Transform is the visual state of one element. Rotations are degrees,
// offsets are pixels, Origin is a fraction of the element box.
type Transform struct {
	X, Y             float64
	RotateX, RotateY float64
	Scale            float64
	Opacity          float64
	Shadow           Shadow

	Perspective      float64
	OriginX, OriginY float64
}

// Neutral is an untransformed, fully opaque element with a centered origin.
func Neutral() Transform {
	return Transform{Scale: 1, Opacity: 1, OriginX: 0.5, OriginY: 0.5}
}

// IsNeutral reports whether the geometric channels are at rest.
func (t *Transform) IsNeutral() bool {
	const eps = 1e-6
	return math.Abs(t.X) < eps && math.Abs(t.Y) < eps &&
		math.Abs(t.RotateX) < eps && math.Abs(t.RotateY) < eps &&
		math.Abs(t.Scale-1) < eps
}

func (t *Transform) get(p Prop) float64 {
	switch p {
	case PropX:
		return t.X
	case PropY:
		return t.Y
	case PropRotateX:
		return t.RotateX
	case PropRotateY:
		return t.RotateY
	case PropScale:
		return t.Scale
	case PropOpacity:
		return t.Opacity
	}
	return 0
}

func (t *Transform) set(p Prop, v float64) {
	switch p {
	case PropX:
		t.X = v
	case PropY:
		t.Y = v
	case PropRotateX:
		t.RotateX = v
	case PropRotateY:
		t.RotateY = v
	case PropScale:
		t.Scale = v
	case PropOpacity:
		t.Opacity = v
	}
}
