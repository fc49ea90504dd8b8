package systems

import (
	"image/color"

	cfg "github.com/automoto/portfolio/config"
	"github.com/automoto/portfolio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawDebug outlines every hit-test proxy when hitboxes are enabled.
func NewDrawDebug(c *Controller) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !cfg.Debug.ShowHitboxes || !c.Mounted() {
			return
		}
		space := c.space()
		if space == nil {
			return
		}
		width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

		for _, obj := range space.Objects() {
			// Cull parked and offscreen objects
			if obj.X+obj.W < 0 || obj.X > width || obj.Y+obj.H < 0 || obj.Y > height {
				continue
			}

			clr := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPointer) {
				clr = color.RGBA{255, 0, 0, 255} // Red
			} else if el, ok := elementOf(obj); ok && el.Hovered {
				clr = color.RGBA{0, 255, 0, 255} // Green
			}

			x, y := float32(obj.X), float32(obj.Y)
			vector.FillRect(screen, x, y, float32(obj.W), 1, clr, false)                   // Top
			vector.FillRect(screen, x, y+float32(obj.H)-1, float32(obj.W), 1, clr, false) // Bottom
			vector.FillRect(screen, x, y, 1, float32(obj.H), clr, false)                   // Left
			vector.FillRect(screen, x+float32(obj.W)-1, y, 1, float32(obj.H), clr, false) // Right
		}
	}
}
