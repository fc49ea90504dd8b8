package scroll

import "github.com/charmbracelet/harmonica"

// settleFactor is omega*t at which a critically damped spring has closed
// about 98% of the gap.
const settleFactor = 5.8

// Scrubber eases a value toward a moving target over roughly a fixed lag,
// the way a scrubbed scroll animation trails the scrollbar.
type Scrubber struct {
	spring  harmonica.Spring
	instant bool
	pos     float64
	vel     float64
}

// NewScrubber builds a critically damped spring stepped at fps that settles
// in about lag seconds. A lag of zero or less tracks the target exactly.
func NewScrubber(fps int, lag float64) *Scrubber {
	if lag <= 0 || fps <= 0 {
		return &Scrubber{instant: true}
	}
	return &Scrubber{spring: harmonica.NewSpring(harmonica.FPS(fps), settleFactor/lag, 1)}
}

// Update steps one frame toward target and returns the new value.
func (s *Scrubber) Update(target float64) float64 {
	if s.instant {
		s.pos, s.vel = target, 0
		return s.pos
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

// Jump places the value at v with no velocity.
func (s *Scrubber) Jump(v float64) {
	s.pos, s.vel = v, 0
}

func (s *Scrubber) Value() float64 {
	return s.pos
}
