package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// IconState tracks an icon through its load attempts
type IconState int

const (
	IconLoading IconState = iota
	IconReady
	IconHidden // Every source failed; the image is not shown
)

type IconData struct {
	Slug        string
	UseFallback bool // Try the secondary CDN when the primary fails
	State       IconState
	Source      string // URL the image came from
	Image       *ebiten.Image
}

var Icon = donburi.NewComponentType[IconData]()
