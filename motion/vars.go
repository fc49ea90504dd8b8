package motion

import "time"

// Vars is the set of end values for one tween. Shadow is only animated when
// non-nil.
type Vars struct {
	Props  map[Prop]float64
	Shadow *Shadow
}

// WithShadow returns a copy of v that also animates the shadow to s.
func (v Vars) WithShadow(s Shadow) Vars {
	out := Vars{Props: make(map[Prop]float64, len(v.Props)), Shadow: &s}
	for p, val := range v.Props {
		out.Props[p] = val
	}
	return out
}

func (v Vars) set() PropSet {
	var s PropSet
	for p := range v.Props {
		if p >= 0 && p < PropShadow {
			s = s.With(p)
		}
	}
	if v.Shadow != nil {
		s = s.With(PropShadow)
	}
	return s
}

// Options control timing of a tween.
type Options struct {
	Duration time.Duration
	Delay    time.Duration
	// Ease is a registered ease name such as "power3.out".
	Ease string
	// OnComplete runs once when the tween reaches its end values. It does
	// not run for tweens that were overwritten or killed.
	OnComplete func()
}
