package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// ShadowShader draws one soft box-shadow layer
	ShadowShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	shadowSrc, err := shaderFS.ReadFile("shaders/shadow.kage")
	if err != nil {
		return err
	}
	ShadowShader, err = ebiten.NewShader(shadowSrc)
	if err != nil {
		return err
	}

	return nil
}
