package components

import (
	"github.com/automoto/portfolio/scroll"
	"github.com/yohamta/donburi"
)

// StripData is the pinned horizontal skills row.
type StripData struct {
	Pin          *scroll.Pin
	Scrubber     *scroll.Scrubber
	ContentWidth float64 // Width of the card row
	ClientWidth  float64 // Width of the viewport box including padding
	PaddingX     float64 // Per side
	Offset       float64 // Current translation, 0 to -distance
}

var Strip = donburi.NewComponentType[StripData]()
