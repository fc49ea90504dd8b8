package main

import (
	"flag"
	"log"

	"github.com/automoto/portfolio/assets"
	"github.com/automoto/portfolio/config"
	"github.com/automoto/portfolio/fonts"
	"github.com/automoto/portfolio/motion"
	"github.com/automoto/portfolio/scenes"
	"github.com/automoto/portfolio/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
	Unmount()
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	return &Game{
		scene: scenes.NewPortfolioScene(config.C.Width, config.C.Height),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the page reflows like a browser viewport.
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.Resize(width, height)
	return width, height
}

func main() {
	hitboxes := flag.Bool("hitboxes", false, "Outline hover targets")
	offline := flag.Bool("offline", false, "Skip icon fetching")
	flag.Parse()
	config.Debug.ShowHitboxes = *hitboxes
	config.Debug.Offline = *offline

	motion.RegisterStandardEases()
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not compile shaders, using flat shadows: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game := NewGame()
	err := ebiten.RunGame(game)
	game.scene.Unmount()
	if err != nil {
		log.Fatal(err)
	}
}
