package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/portfolio/assets"
	cfg "github.com/automoto/portfolio/config"
	"github.com/automoto/portfolio/interact"
	"github.com/automoto/portfolio/systems"
	"github.com/automoto/portfolio/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PortfolioScene is the single page. It mounts on the first update and
// unmounts when the game drops it.
type PortfolioScene struct {
	ecs        *ecs.ECS
	controller *systems.Controller
	chrome     *ui.ChromeUI
	once       sync.Once

	width, height int
}

func NewPortfolioScene(width, height int) *PortfolioScene {
	return &PortfolioScene{width: width, height: height}
}

func (ps *PortfolioScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PortfolioScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.White)

	if ps.ecs == nil {
		return
	}
	ps.ecs.DrawLayer(cfg.Default, screen)
	ps.chrome.Draw(screen)
	ps.ecs.DrawLayer(cfg.LayerOverlay, screen)
}

// Resize forwards an outside size change to the page.
func (ps *PortfolioScene) Resize(width, height int) {
	if width == ps.width && height == ps.height {
		return
	}
	ps.width, ps.height = width, height
	if ps.controller != nil {
		ps.controller.Resize(float64(width), float64(height))
	}
}

// Unmount tears the page down.
func (ps *PortfolioScene) Unmount() {
	if ps.controller != nil {
		ps.controller.Unmount()
	}
}

func (ps *PortfolioScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ps.controller = systems.NewController(ecs, systems.Options{
		Content:  cfg.Content,
		Platform: interact.DefaultPlatform(),
		Icons:    assets.NewIconLoader(cfg.Icons, cfg.Page.IconSize),
		Open:     systems.OpenLink,
		Store:    systems.DownloadStore{},
		Resume:   assets.Resume,
	})
	ps.chrome = ui.NewChromeUI(cfg.Content, ps.controller.Navigate)

	// Input runs before the controller advances the frame
	ecs.AddSystem(systems.NewUpdateInput(ps.controller))
	ecs.AddSystem(ps.controller.Update)
	ecs.AddSystem(ps.updateChrome)

	pageRenderer := systems.NewPageRenderer(ps.controller)
	ecs.AddRenderer(cfg.Default, pageRenderer.Draw)
	ecs.AddRenderer(cfg.LayerOverlay, pageRenderer.DrawOverlay)
	ecs.AddRenderer(cfg.LayerOverlay, systems.NewDrawDebug(ps.controller))

	ps.ecs = ecs
	ps.controller.Mount(float64(ps.width), float64(ps.height))
}

// updateChrome mirrors the scroll spy into the header.
func (ps *PortfolioScene) updateChrome(e *ecs.ECS) {
	if page := ps.controller.Page(); page != nil {
		ps.chrome.SetActive(page.Active)
	}
	ps.chrome.Update()
}
