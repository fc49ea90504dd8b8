// Package scroll holds the document-scroll math: the pinned horizontal
// skills strip, the scrub spring that chases it, the active-section spy and
// the reading-progress ratio.
package scroll

import "math"

// ScrollDistance is how far the strip has to travel to reveal its last
// card: contentWidth minus the container's visible width, never negative.
func ScrollDistance(contentWidth, clientWidth, paddingLeft, paddingRight float64) float64 {
	visible := math.Max(0, clientWidth-paddingLeft-paddingRight)
	return math.Max(0, contentWidth-visible)
}

// Pin holds a block in place while the document scrolls through
// [Start, Start+Distance] and maps that range to a horizontal offset. The
// distance is re-measured on Refresh, so the pin survives reflows.
type Pin struct {
	start    float64
	distance float64
	measure  func() float64
}

// NewPin measures immediately.
func NewPin(start float64, measure func() float64) *Pin {
	p := &Pin{start: start, measure: measure}
	p.Refresh()
	return p
}

// Refresh re-runs the distance measurement.
func (p *Pin) Refresh() {
	if p.measure == nil {
		p.distance = 0
		return
	}
	p.distance = math.Max(0, p.measure())
}

// SetStart moves the trigger point, for when content above the pin
// reflows.
func (p *Pin) SetStart(start float64) {
	p.start = start
}

func (p *Pin) Start() float64 { return p.start }

func (p *Pin) Distance() float64 { return p.distance }

func (p *Pin) End() float64 { return p.start + p.distance }

// Progress is how far through the pinned range scrollTop is, in [0, 1].
// A pin with no distance reports 0.
func (p *Pin) Progress(scrollTop float64) float64 {
	if p.distance <= 0 {
		return 0
	}
	return clamp01((scrollTop - p.start) / p.distance)
}

// Pinned reports whether scrollTop falls inside the pinned range.
func (p *Pin) Pinned(scrollTop float64) bool {
	return p.distance > 0 && scrollTop >= p.start && scrollTop <= p.End()
}

// Held is how far the pinned block has been carried down the document to
// keep it in place on screen.
func (p *Pin) Held(scrollTop float64) float64 {
	return math.Max(0, math.Min(p.distance, scrollTop-p.start))
}

// Target is the strip translation for scrollTop, from 0 to -Distance.
func (p *Pin) Target(scrollTop float64) float64 {
	return -p.Progress(scrollTop) * p.distance
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
