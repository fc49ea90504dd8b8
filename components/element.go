package components

import (
	"github.com/automoto/portfolio/interact"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Placement decides how an element's rect maps to the screen.
type Placement int

const (
	PlaceFlow   Placement = iota // Scrolls with the document
	PlacePinned                  // Held in place while the skills pin is active
	PlaceStrip                   // Pinned and shifted by the strip offset
	PlaceFixed                   // Rect is already in viewport coordinates
)

type ElementKind int

const (
	KindSection ElementKind = iota
	KindHero
	KindCTA
	KindStat
	KindStrip
	KindSkill
	KindProject
	KindSocial
	KindToTop
)

// ElementData is anything on the page with a box. Rect is in document
// coordinates unless the element is fixed.
type ElementData struct {
	Key       string
	Kind      ElementKind
	Placement Placement
	Rect      interact.Rect
	Hidden    bool
	Hovered   bool
	Clickable bool
	Object    *resolv.Object // Hit-test proxy, moved to the screen rect each frame
}

var Element = donburi.NewComponentType[ElementData]()
