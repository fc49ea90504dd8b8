package motion

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	// GlowAlphaFactor scales the hover alpha for the upward glow layer.
	GlowAlphaFactor = 0.6
	// GlowAlphaCeiling caps the glow layer alpha.
	GlowAlphaCeiling = 0.45
)

var rgbaPattern = regexp.MustCompile(`(?i)rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*([\d.]+)\s*)?\)`)

// RGBA is a parsed CSS color. When Raw is set the source could not be
// parsed and is carried through unchanged.
type RGBA struct {
	R, G, B uint8
	A       float64
	Raw     string
}

// Transparent is rgba(0,0,0,0).
var Transparent = RGBA{}

// Parsed reports whether c came from a valid rgb()/rgba() color.
func (c RGBA) Parsed() bool { return c.Raw == "" }

func (c RGBA) String() string {
	if c.Raw != "" {
		return c.Raw
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// ParseRGBA reads the first rgb()/rgba() color in s. A missing alpha is 1.
func ParseRGBA(s string) (RGBA, bool) {
	m := rgbaPattern.FindStringSubmatch(s)
	if m == nil {
		return RGBA{}, false
	}
	var c RGBA
	for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return RGBA{}, false
		}
		*dst = uint8(min(v, 255))
	}
	c.A = 1
	if m[4] != "" {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return RGBA{}, false
		}
		c.A = math.Max(0, math.Min(1, a))
	}
	return c, true
}

func colorOf(s string) RGBA {
	if c, ok := ParseRGBA(s); ok {
		return c
	}
	return RGBA{Raw: s}
}

// ShadowLayer is one offset/blur/color entry of a box shadow.
type ShadowLayer struct {
	OffsetX, OffsetY float64
	Blur             float64
	Color            RGBA
}

func (l ShadowLayer) String() string {
	return fmt.Sprintf("%s %s %s %s", px(l.OffsetX), px(l.OffsetY), px(l.Blur), l.Color)
}

func px(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// Shadow is a stack of layers. A Shadow with Raw set could not be parsed
// and is applied as-is without interpolation.
type Shadow struct {
	Layers []ShadowLayer
	Raw    string
}

// None is a shadow with no layers.
var None = Shadow{}

func (s Shadow) String() string {
	if s.Raw != "" {
		return s.Raw
	}
	if len(s.Layers) == 0 {
		return "none"
	}
	parts := make([]string, len(s.Layers))
	for i, l := range s.Layers {
		parts[i] = l.String()
	}
	return strings.Join(parts, ", ")
}

// Visible reports whether any layer would paint.
func (s Shadow) Visible() bool {
	if s.Raw != "" {
		return true
	}
	for _, l := range s.Layers {
		if !l.Color.Parsed() || l.Color.A > 0 {
			return true
		}
	}
	return false
}

// ParseShadow reads a CSS box-shadow list such as
// "0 18px 40px rgba(14,165,233,0.12)". "none" and "" give no layers.
func ParseShadow(css string) Shadow {
	css = strings.TrimSpace(css)
	if css == "" || strings.EqualFold(css, "none") {
		return None
	}
	var out Shadow
	for _, part := range splitLayers(css) {
		layer, ok := parseLayer(part)
		if !ok {
			return Shadow{Raw: css}
		}
		out.Layers = append(out.Layers, layer)
	}
	return out
}

// splitLayers splits on commas outside parentheses.
func splitLayers(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

func parseLayer(s string) (ShadowLayer, bool) {
	var layer ShadowLayer
	colorAt := strings.Index(strings.ToLower(s), "rgb")
	lengths := s
	if colorAt >= 0 {
		c, ok := ParseRGBA(s[colorAt:])
		if !ok {
			return layer, false
		}
		layer.Color = c
		lengths = s[:colorAt]
	} else {
		layer.Color = RGBA{R: 0, G: 0, B: 0, A: 1}
	}

	fields := strings.Fields(lengths)
	if len(fields) < 2 || len(fields) > 4 {
		return layer, false
	}
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSuffix(f, "px"), 64)
		if err != nil {
			return layer, false
		}
		vals[i] = v
	}
	layer.OffsetX, layer.OffsetY = vals[0], vals[1]
	if len(vals) > 2 {
		layer.Blur = vals[2]
	}
	return layer, true
}

// GlowShadow builds the two-layer hover shadow from a hover color: a primary
// layer in the hover color and an upward glow whose alpha is
// min(GlowAlphaCeiling, alpha*GlowAlphaFactor). Only the geometry of primary
// and glow is used. An unparsable color is used verbatim on both layers.
func GlowShadow(hover string, primary, glow ShadowLayer) Shadow {
	c := colorOf(hover)
	top := c
	if c.Parsed() {
		top.A = math.Min(GlowAlphaCeiling, c.A*GlowAlphaFactor)
	}
	primary.Color = c
	glow.Color = top
	return Shadow{Layers: []ShadowLayer{primary, glow}}
}

// LerpShadow interpolates layer by layer. The shorter list is padded with
// zero layers carrying the other side's color at alpha 0. Raw shadows and
// raw colors switch over at p >= 1.
func LerpShadow(a, b Shadow, p float64) Shadow {
	switch {
	case p <= 0:
		return a
	case p >= 1:
		return b
	}
	if a.Raw != "" || b.Raw != "" {
		return a
	}
	n := max(len(a.Layers), len(b.Layers))
	out := Shadow{Layers: make([]ShadowLayer, n)}
	for i := 0; i < n; i++ {
		la, lb := layerAt(a, b, i), layerAt(b, a, i)
		out.Layers[i] = ShadowLayer{
			OffsetX: lerp(la.OffsetX, lb.OffsetX, p),
			OffsetY: lerp(la.OffsetY, lb.OffsetY, p),
			Blur:    lerp(la.Blur, lb.Blur, p),
			Color:   lerpColor(la.Color, lb.Color, p),
		}
	}
	return out
}

func layerAt(s, other Shadow, i int) ShadowLayer {
	if i < len(s.Layers) {
		return s.Layers[i]
	}
	c := other.Layers[i].Color
	if c.Parsed() {
		c.A = 0
	} else {
		c = Transparent
	}
	return ShadowLayer{Color: c}
}

func lerpColor(a, b RGBA, p float64) RGBA {
	if !a.Parsed() || !b.Parsed() {
		if p >= 1 {
			return b
		}
		return a
	}
	return RGBA{
		R: uint8(math.Round(lerp(float64(a.R), float64(b.R), p))),
		G: uint8(math.Round(lerp(float64(a.G), float64(b.G), p))),
		B: uint8(math.Round(lerp(float64(a.B), float64(b.B), p))),
		A: lerp(a.A, b.A, p),
	}
}

func lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}
