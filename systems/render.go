package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/portfolio/components"
	cfg "github.com/automoto/portfolio/config"
	"github.com/automoto/portfolio/fonts"
	"github.com/automoto/portfolio/interact"
	"github.com/automoto/portfolio/motion"
	"github.com/automoto/portfolio/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// cullPadding keeps shadows from popping at the viewport edges
const cullPadding = 160

// PageRenderer draws the document. Transformed elements are painted into
// per-element surfaces and then projected onto the screen.
type PageRenderer struct {
	c        *Controller
	surfaces *surface
}

func NewPageRenderer(c *Controller) *PageRenderer {
	return &PageRenderer{c: c, surfaces: newSurface()}
}

// Draw renders the scrolling page.
func (r *PageRenderer) Draw(e *ecs.ECS, screen *ebiten.Image) {
	page := r.c.Page()
	if page == nil {
		return
	}
	r.drawBackground(screen, page)
	r.drawIntro(screen, page)

	r.each(components.Stat, func(e *donburi.Entry) { r.drawElement(screen, e, r.paintStat) })
	if hero, ok := r.c.Lookup(factory.KeyHero); ok {
		r.drawElement(screen, hero, r.paintHero)
	}
	r.each(components.CTA, func(e *donburi.Entry) { r.drawElement(screen, e, r.paintCTA) })

	r.drawSkills(screen, page)

	r.drawTitle(screen, r.doc(page.Blocks.ProjectsTitle), r.c.opts.Content.ProjectsTitle, r.c.opts.Content.ProjectsHint)
	r.each(components.ProjectCard, func(e *donburi.Entry) { r.drawElement(screen, e, r.paintProject) })

	r.drawConnect(screen, page)
	r.each(components.SocialLink, func(e *donburi.Entry) { r.drawElement(screen, e, r.paintSocial) })

	footer := r.doc(page.Blocks.Footer)
	if r.visible(footer) {
		drawCentered(screen, "© "+r.c.opts.Content.Footer, fonts.Small.Get(), footer, cfg.Theme.TextMuted)
	}
}

// DrawOverlay renders the fixed chrome: reading progress, the
// scroll-to-top button and the status notice.
func (r *PageRenderer) DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	page := r.c.Page()
	if page == nil {
		return
	}
	p := cfg.Page

	track := interact.Rect{W: page.Width, H: p.ProgressH}
	fillRect(screen, track, cfg.Theme.ProgressTrack)
	fill := track
	fill.W = page.Width * page.Progress
	fillGradient(screen, fill, cfg.Theme.ProgressFrom, cfg.Theme.ProgressTo, false, 1)

	if toTop, ok := r.c.Lookup(factory.KeyToTop); ok && page.ShowToTop {
		b := components.Element.Get(toTop)
		cx, cy := b.Rect.Center()
		radius := float32(b.Rect.W / 2)
		if b.Hovered {
			radius += 2
		}
		vector.FillCircle(screen, float32(cx), float32(cy), radius, cfg.Theme.ToTop, true)
		arrow := float32(b.Rect.W / 6)
		vector.StrokeLine(screen, float32(cx), float32(cy)-arrow, float32(cx)-arrow, float32(cy), 3, white, true)
		vector.StrokeLine(screen, float32(cx), float32(cy)-arrow, float32(cx)+arrow, float32(cy), 3, white, true)
		vector.StrokeLine(screen, float32(cx), float32(cy)-arrow, float32(cx), float32(cy)+arrow, 3, white, true)
	}

	if page.Notice != "" {
		face := fonts.Small.Get()
		w := fonts.Width(face, page.Notice) + 32
		box := interact.Rect{X: (page.Width - w) / 2, Y: p.HeaderTop + p.HeaderHeight + 12, W: w, H: 32}
		fillRect(screen, box, withAlpha(cfg.Theme.Text, 220))
		drawCentered(screen, page.Notice, face, box, white)
	}
}

func (r *PageRenderer) each(ct donburi.IComponentType, fn func(*donburi.Entry)) {
	for _, e := range r.c.Elements() {
		if e.HasComponent(ct) {
			fn(e)
		}
	}
}

// doc maps a document-space block to the screen.
func (r *PageRenderer) doc(b interact.Rect) interact.Rect {
	return b.Offset(0, -r.c.ScrollTop())
}

// pinned maps a block inside the pinned skills section to the screen.
func (r *PageRenderer) pinned(b interact.Rect) interact.Rect {
	held := 0.0
	if r.c.strip != nil {
		held = components.Strip.Get(r.c.strip).Pin.Held(r.c.ScrollTop())
	}
	return b.Offset(0, held-r.c.ScrollTop())
}

func (r *PageRenderer) visible(b interact.Rect) bool {
	page := r.c.Page()
	return b.Y+b.H > -cullPadding && b.Y < page.Height+cullPadding && !b.Empty()
}

func (r *PageRenderer) drawBackground(screen *ebiten.Image, page *components.PageData) {
	t := cfg.Theme
	half := page.Height / 2
	fillGradient(screen, interact.Rect{W: page.Width, H: half}, t.BackgroundTop, t.BackgroundMid, true, 1)
	fillGradient(screen, interact.Rect{Y: half, W: page.Width, H: page.Height - half}, t.BackgroundMid, t.BackgroundBottom, true, 1)
}

// drawElement paints e into its surface and projects it through the
// element's transform.
func (r *PageRenderer) drawElement(screen *ebiten.Image, e *donburi.Entry, paint func(e *donburi.Entry, img *ebiten.Image, w, h float64)) {
	el := components.Element.Get(e)
	rect := r.c.ScreenRect(e)
	if el.Hidden || !r.visible(rect) {
		return
	}
	t := neutral
	if e.HasComponent(components.Transform) {
		t = transformOf(e)
	}
	if t.Opacity <= 0 {
		return
	}

	img := r.surfaces.get(el.Key, int(math.Ceil(rect.W)), int(math.Ceil(rect.H)))
	paint(e, img, rect.W, rect.H)

	q := project(t, rect)
	drawShadow(screen, bounds(q), t.Shadow, cfg.Page.Corner)
	drawProjected(screen, img, q, t.Opacity)
}

var neutralTransform = motion.Neutral()
var neutral = &neutralTransform

func (r *PageRenderer) drawIntro(screen *ebiten.Image, page *components.PageData) {
	b := r.doc(page.Blocks.Intro)
	if !r.visible(b) {
		return
	}
	content := r.c.opts.Content
	t := cfg.Theme

	y := b.Y
	y = drawWrapped(screen, content.Headline, fonts.Heading.Get(), b.X, y, b.W, t.Text)
	y += 4
	drawText(screen, content.Tagline, fonts.Display.Get(), b.X, y, t.Accent)
	y += fonts.LineHeight(fonts.Display.Get()) + 8
	drawText(screen, page.Typed+"|", fonts.Label.Get(), b.X, y, t.AccentAlt)
	y += fonts.LineHeight(fonts.Label.Get()) + 16
	y = drawWrapped(screen, content.Intro, fonts.Body.Get(), b.X, y, b.W, t.TextMuted)
	y += 12

	x := b.X
	small := fonts.Small.Get()
	for _, badge := range content.Badges {
		w := fonts.Width(small, badge) + 24
		pill := interact.Rect{X: x, Y: y, W: w, H: 28}
		fillRect(screen, pill, t.Badge)
		drawCentered(screen, badge, small, pill, t.Text)
		x += w + 8
	}
	y += 48

	drawText(screen, content.WhatIDo.Title, fonts.Label.Get(), b.X, y, t.Text)
	y += fonts.LineHeight(fonts.Label.Get()) + 8
	for _, para := range content.WhatIDo.Paragraphs {
		y = drawWrapped(screen, para, fonts.Body.Get(), b.X, y, b.W, t.TextMuted) + 8
	}
}

func (r *PageRenderer) drawTitle(screen *ebiten.Image, b interact.Rect, title, hint string) {
	if !r.visible(b) {
		return
	}
	drawText(screen, title, fonts.Heading.Get(), b.X, b.Y, cfg.Theme.Text)
	if hint != "" {
		drawText(screen, hint, fonts.Body.Get(), b.X, b.Y+fonts.LineHeight(fonts.Heading.Get())+8, cfg.Theme.TextMuted)
	}
}

func (r *PageRenderer) drawSkills(screen *ebiten.Image, page *components.PageData) {
	content := r.c.opts.Content
	r.drawTitle(screen, r.pinned(page.Blocks.SkillsTitle), content.SkillsTitle, content.SkillsHint)

	if r.c.strip != nil {
		box := r.c.ScreenRect(r.c.strip)
		if r.visible(box) {
			fillRect(screen, box, withAlpha(cfg.Theme.Card, 90))
			strokeRect(screen, box, cfg.Theme.CardBorder)

			clip := r.c.StripViewport().Inset(-cfg.Page.StripPadding / 2)
			clipRect := image.Rect(int(clip.X), int(clip.Y), int(math.Ceil(clip.X+clip.W)), int(math.Ceil(clip.Y+clip.H)))
			dst := screen.SubImage(clipRect.Intersect(screen.Bounds())).(*ebiten.Image)
			r.each(components.SkillCard, func(e *donburi.Entry) { r.drawElement(dst, e, r.paintSkill) })
		}
	}

	tip := r.pinned(page.Blocks.SkillsTip)
	if r.visible(tip) {
		fillRect(screen, tip, withAlpha(cfg.Theme.Card, 150))
		drawWrapped(screen, content.SkillsTip, fonts.Body.Get(), tip.X+20, tip.Y+16, tip.W-40, cfg.Theme.TextMuted)
	}
}

func (r *PageRenderer) drawConnect(screen *ebiten.Image, page *components.PageData) {
	content := r.c.opts.Content
	r.drawTitle(screen, r.doc(page.Blocks.ConnectTitle), content.ConnectTitle, content.ConnectIntro)

	notes := r.doc(page.Blocks.ConnectNotes)
	if r.visible(notes) && len(content.ConnectNotes) > 0 {
		fillRect(screen, notes, cfg.Theme.Card)
		strokeRect(screen, notes, cfg.Theme.CardBorder)
		y := notes.Y + 20
		for _, n := range content.ConnectNotes {
			drawText(screen, n.Title, fonts.Label.Get(), notes.X+24, y, cfg.Theme.Text)
			y += fonts.LineHeight(fonts.Label.Get()) + 4
			y = drawWrapped(screen, n.Body, fonts.Body.Get(), notes.X+24, y, notes.W-48, cfg.Theme.TextMuted) + 12
		}
	}

	title := r.doc(page.Blocks.SocialsTitle)
	if r.visible(title) {
		drawText(screen, content.SocialsTitle, fonts.Label.Get(), title.X, title.Y, cfg.Theme.Text)
	}
}

func (r *PageRenderer) paintHero(e *donburi.Entry, img *ebiten.Image, w, h float64) {
	box := interact.Rect{W: w, H: h}
	fillGradient(img, box, cfg.Theme.Accent, cfg.Theme.AccentAlt, false, 0.92)
	strokeRect(img, box, cfg.Theme.CardBorder)
	drawCentered(img, r.c.opts.Content.Owner, fonts.Heading.Get(), interact.Rect{W: w, H: h * 0.7}, white)
	drawCentered(img, components.Hero.Get(e).Label, fonts.Label.Get(), interact.Rect{Y: h * 0.2, W: w, H: h * 0.7}, white)
}

func (r *PageRenderer) paintCTA(e *donburi.Entry, img *ebiten.Image, w, h float64) {
	link := components.CTA.Get(e).Link
	from, to := gradientOf(link.Gradient, cfg.Theme.Card)
	box := interact.Rect{W: w, H: h}
	fillGradient(img, box, from, to, false, 1)
	strokeRect(img, box, cfg.Theme.CardBorder)
	drawCentered(img, link.Label, fonts.Label.Get(), box, cfg.Theme.Text)
}

func (r *PageRenderer) paintStat(e *donburi.Entry, img *ebiten.Image, w, h float64) {
	s := components.Stat.Get(e).Stat
	from, to := gradientOf(s.Gradient, cfg.Theme.Accent)
	fillGradient(img, interact.Rect{W: w, H: h}, from, to, false, 1)
	drawText(img, s.Value, fonts.Figure.Get(), 20, 14, white)
	drawText(img, s.Label, fonts.Label.Get(), 20, h-56, white)
	drawText(img, s.Caption, fonts.Small.Get(), 20, h-30, withAlpha(white, 210))
}

func (r *PageRenderer) paintSkill(e *donburi.Entry, img *ebiten.Image, w, h float64) {
	card := components.SkillCard.Get(e)
	box := interact.Rect{W: w, H: h}
	fillRect(img, box, cfg.Theme.Card)
	strokeRect(img, box, cfg.Theme.CardBorder)

	size := float64(cfg.Page.IconSize)
	x := 24.0
	if icon, ok := iconOf(e); ok {
		drawIcon(img, icon.Image, x, (h-size)/2, size, false)
	}
	x += size + 16
	accent := cfg.Hex(card.Skill.Color, color.RGBAModel.Convert(cfg.Theme.Text).(color.RGBA))
	drawText(img, card.Skill.Name, fonts.Label.Get(), x, h/2-26, accent)
	drawText(img, r.c.opts.Content.SkillBadge, fonts.Small.Get(), x, h/2+6, cfg.Theme.TextMuted)
}

func (r *PageRenderer) paintProject(e *donburi.Entry, img *ebiten.Image, w, h float64) {
	p := components.ProjectCard.Get(e).Project
	from, to := gradientOf(p.Gradient, cfg.Theme.Accent)
	fillRect(img, interact.Rect{W: w, H: h}, cfg.Theme.Card)
	header := interact.Rect{W: w, H: h * 0.45}
	fillGradient(img, header, from, to, false, 1)
	drawCentered(img, p.Title, fonts.Heading.Get(), header, white)

	y := header.H + 16
	y = drawWrapped(img, p.Desc, fonts.Body.Get(), 20, y, w-40, cfg.Theme.TextMuted) + 8
	x := 20.0
	small := fonts.Small.Get()
	for _, tag := range p.Tags {
		tw := fonts.Width(small, tag) + 20
		if x+tw > w-20 {
			x = 20
			y += 32
		}
		pill := interact.Rect{X: x, Y: y, W: tw, H: 26}
		fillRect(img, pill, withAlpha(from, 60))
		drawCentered(img, tag, small, pill, cfg.Theme.Text)
		x += tw + 8
	}
	strokeRect(img, interact.Rect{W: w, H: h}, cfg.Theme.CardBorder)
}

func (r *PageRenderer) paintSocial(e *donburi.Entry, img *ebiten.Image, w, h float64) {
	s := components.SocialLink.Get(e).Social
	box := interact.Rect{W: w, H: h}
	fillRect(img, box, cfg.Theme.Card)
	strokeRect(img, box, cfg.Theme.CardBorder)

	badge := h - 24
	fillRect(img, interact.Rect{X: 12, Y: 12, W: badge, H: badge}, cfg.Theme.Text)
	if icon, ok := iconOf(e); ok {
		inset := badge * 0.25
		drawIcon(img, icon.Image, 12+inset, 12+inset, badge-2*inset, true)
	}
	label := cfg.Theme.TextMuted
	if components.Element.Get(e).Hovered {
		label = cfg.Theme.Accent
	}
	face := fonts.Label.Get()
	drawText(img, s.Name, face, 12+badge+16, (h-fonts.LineHeight(face))/2, label)
}

// gradientOf reads a two-stop hex gradient.
func gradientOf(stops []string, fallback color.Color) (color.Color, color.Color) {
	fb := color.RGBAModel.Convert(fallback).(color.RGBA)
	if len(stops) < 2 {
		return fb, fb
	}
	return cfg.Hex(stops[0], fb), cfg.Hex(stops[1], fb)
}
