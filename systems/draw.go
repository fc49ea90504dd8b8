package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/portfolio/assets"
	"github.com/automoto/portfolio/fonts"
	"github.com/automoto/portfolio/interact"
	"github.com/automoto/portfolio/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	quadIndices = []uint16{0, 1, 2, 1, 3, 2}
	quadOp      = &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear}
	shadowOp    = &ebiten.DrawRectShaderOptions{}
	iconOp      = &colorm.DrawImageOptions{Filter: ebiten.FilterLinear}
)

func init() {
	whiteImage.Fill(color.White)
}

// point is a projected corner in screen pixels.
type point struct {
	X, Y float64
}

// project maps the corners of r (top-left, top-right, bottom-left,
// bottom-right) through t: scale about the origin, rotateY then rotateX,
// perspective divide, then the x/y offset.
func project(t *motion.Transform, r interact.Rect) [4]point {
	ox := r.X + r.W*t.OriginX
	oy := r.Y + r.H*t.OriginY
	corners := [4]point{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X, r.Y + r.H},
		{r.X + r.W, r.Y + r.H},
	}

	ry := t.RotateY * math.Pi / 180
	rx := t.RotateX * math.Pi / 180
	cosY, sinY := math.Cos(ry), math.Sin(ry)
	cosX, sinX := math.Cos(rx), math.Sin(rx)

	var out [4]point
	for i, p := range corners {
		x := (p.X - ox) * t.Scale
		y := (p.Y - oy) * t.Scale

		// rotateY
		x1 := x * cosY
		z1 := -x * sinY
		// rotateX
		y2 := y*cosX - z1*sinX
		z2 := y*sinX + z1*cosX

		f := 1.0
		if t.Perspective > 0 && t.Perspective-z2 > 1 {
			f = t.Perspective / (t.Perspective - z2)
		}
		out[i] = point{ox + x1*f + t.X, oy + y2*f + t.Y}
	}
	return out
}

// bounds is the axis-aligned box around projected corners.
func bounds(q [4]point) interact.Rect {
	minX, minY := q[0].X, q[0].Y
	maxX, maxY := minX, minY
	for _, p := range q[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return interact.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// drawProjected draws src over the projected quad at t.Opacity.
func drawProjected(dst, src *ebiten.Image, q [4]point, opacity float64) {
	w, h := float32(src.Bounds().Dx()), float32(src.Bounds().Dy())
	a := float32(opacity)
	srcs := [4][2]float32{{0, 0}, {w, 0}, {0, h}, {w, h}}
	vs := make([]ebiten.Vertex, 4)
	for i := range vs {
		vs[i] = ebiten.Vertex{
			DstX:   float32(q[i].X),
			DstY:   float32(q[i].Y),
			SrcX:   srcs[i][0],
			SrcY:   srcs[i][1],
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: a,
		}
	}
	dst.DrawTriangles(vs, quadIndices, src, quadOp)
}

// fillGradient paints r from one color to another, left to right or top to
// bottom.
func fillGradient(dst *ebiten.Image, r interact.Rect, from, to color.Color, vertical bool, alpha float64) {
	if r.Empty() {
		return
	}
	a := color.NRGBAModel.Convert(from).(color.NRGBA)
	b := color.NRGBAModel.Convert(to).(color.NRGBA)
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.W), float32(r.Y+r.H)
	cs := [4]color.NRGBA{a, b, a, b}
	if vertical {
		cs = [4]color.NRGBA{a, a, b, b}
	}
	pos := [4][2]float32{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}}
	vs := make([]ebiten.Vertex, 4)
	for i := range vs {
		vs[i] = ebiten.Vertex{
			DstX:   pos[i][0],
			DstY:   pos[i][1],
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(cs[i].R) / 255,
			ColorG: float32(cs[i].G) / 255,
			ColorB: float32(cs[i].B) / 255,
			ColorA: float32(cs[i].A) / 255 * float32(alpha),
		}
	}
	dst.DrawTriangles(vs, quadIndices, whiteSubImage, nil)
}

func fillRect(dst *ebiten.Image, r interact.Rect, clr color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(dst *ebiten.Image, r interact.Rect, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, clr, true)
}

// drawShadow paints every layer of s around box.
func drawShadow(dst *ebiten.Image, box interact.Rect, s motion.Shadow, radius float64) {
	for _, l := range s.Layers {
		drawShadowLayer(dst, box, l, radius)
	}
}

func drawShadowLayer(dst *ebiten.Image, box interact.Rect, l motion.ShadowLayer, radius float64) {
	if l.Color.A <= 0 || !l.Color.Parsed() {
		return
	}
	cast := box.Offset(l.OffsetX, l.OffsetY)
	a := float32(l.Color.A)
	tint := []float32{float32(l.Color.R) / 255 * a, float32(l.Color.G) / 255 * a, float32(l.Color.B) / 255 * a, a}

	if assets.ShadowShader == nil {
		fillRect(dst, cast, color.NRGBA{R: l.Color.R, G: l.Color.G, B: l.Color.B, A: uint8(a * 96)})
		return
	}

	area := cast.Inset(-l.Blur)
	shadowOp.GeoM.Reset()
	shadowOp.GeoM.Translate(area.X, area.Y)
	shadowOp.Uniforms = map[string]any{
		"Box":    []float32{float32(cast.X), float32(cast.Y), float32(cast.W), float32(cast.H)},
		"Radius": float32(radius),
		"Blur":   float32(l.Blur),
		"Tint":   tint,
	}
	dst.DrawRectShader(int(math.Ceil(area.W)), int(math.Ceil(area.H)), assets.ShadowShader, shadowOp)
}

// drawText draws s with its top-left at x, y.
func drawText(dst *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	text.Draw(dst, s, face, int(x), int(y+fonts.Ascent(face)), clr)
}

// drawCentered draws s centered in r.
func drawCentered(dst *ebiten.Image, s string, face font.Face, r interact.Rect, clr color.Color) {
	w := fonts.Width(face, s)
	h := fonts.LineHeight(face)
	drawText(dst, s, face, r.X+(r.W-w)/2, r.Y+(r.H-h)/2, clr)
}

// drawWrapped draws s wrapped to width and returns the y below the last
// line.
func drawWrapped(dst *ebiten.Image, s string, face font.Face, x, y, width float64, clr color.Color) float64 {
	lh := fonts.LineHeight(face) * 1.35
	for _, line := range fonts.Wrap(face, s, width) {
		drawText(dst, line, face, x, y, clr)
		y += lh
	}
	return y
}

// drawIcon fits img into a size x size box at x, y. White draws the icon as
// a white silhouette.
func drawIcon(dst, img *ebiten.Image, x, y, size float64, white bool) {
	b := img.Bounds()
	scale := size / math.Max(float64(b.Dx()), float64(b.Dy()))
	var cm colorm.ColorM
	if white {
		cm.Scale(0, 0, 0, 1)
		cm.Translate(1, 1, 1, 0)
	}
	iconOp.GeoM.Reset()
	iconOp.GeoM.Scale(scale, scale)
	iconOp.GeoM.Translate(x, y)
	colorm.DrawImage(dst, img, cm, iconOp)
}

func withAlpha(c color.Color, a uint8) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}

// surface is a reusable offscreen image per element.
type surface struct {
	images map[string]*ebiten.Image
}

func newSurface() *surface {
	return &surface{images: map[string]*ebiten.Image{}}
}

// get returns a cleared w x h image for key.
func (s *surface) get(key string, w, h int) *ebiten.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img, ok := s.images[key]
	if ok && img.Bounds().Dx() == w && img.Bounds().Dy() == h {
		img.Clear()
		return img
	}
	if ok {
		img.Deallocate()
	}
	img = ebiten.NewImage(w, h)
	s.images[key] = img
	return img
}
