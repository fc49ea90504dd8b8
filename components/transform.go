package components

import (
	"github.com/automoto/portfolio/motion"
	"github.com/yohamta/donburi"
)

// TransformData points at the tween target so the engine holds a stable
// address independent of component storage.
type TransformData struct {
	*motion.Transform
}

var Transform = donburi.NewComponentType[TransformData]()
