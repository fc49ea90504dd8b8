package interact

import (
	"time"

	"github.com/automoto/portfolio/motion"
)

// TiltProfile converts a normalized offset into tween targets. Rotations go
// rotationY = nx*RotateY and rotationX = -ny*RotateX; shifts go
// x = nx*ShiftX and y = ny*ShiftY and are only emitted when non-zero.
type TiltProfile struct {
	RotateY, RotateX float64
	ShiftX, ShiftY   float64
	Duration         time.Duration
	Ease             string
}

func (p TiltProfile) Vars(nx, ny float64) motion.Vars {
	v := motion.Vars{Props: map[motion.Prop]float64{
		motion.PropRotateY: nx * p.RotateY,
		motion.PropRotateX: -ny * p.RotateX,
	}}
	if p.ShiftX != 0 {
		v.Props[motion.PropX] = nx * p.ShiftX
	}
	if p.ShiftY != 0 {
		v.Props[motion.PropY] = ny * p.ShiftY
	}
	return v
}

// Neutral returns the channels Vars drives back to zero.
func (p TiltProfile) Neutral() motion.Vars {
	return p.Vars(0, 0)
}

func (p TiltProfile) Options() motion.Options {
	return motion.Options{Duration: p.Duration, Ease: p.Ease}
}
