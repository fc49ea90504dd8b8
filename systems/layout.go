package systems

import (
	"math"

	"github.com/automoto/portfolio/components"
	cfg "github.com/automoto/portfolio/config"
	"github.com/automoto/portfolio/events"
	"github.com/automoto/portfolio/interact"
	"github.com/automoto/portfolio/scroll"
	"github.com/automoto/portfolio/systems/factory"
)

const (
	sectionAbout    = "about"
	sectionSkills   = "skills"
	sectionProjects = "projects"
	sectionConnect  = "connect"
)

const (
	columnGap    = 32 // gap-8
	socialsTitle = 40
)

// Reflow lays every element out for a width x height viewport and
// re-measures the skills pin. Running tweens and the scrub are left alone.
func (c *Controller) Reflow(width, height float64) {
	p := cfg.Page
	content := c.opts.Content
	page := c.pageData()
	page.Width, page.Height = width, height
	c.fitSpace(width, height)
	blocks := &page.Blocks

	colW := math.Max(0, math.Min(p.MaxWidth, width-2*p.SidePadding))
	x0 := (width - colW) / 2
	wide := width >= p.WideBreak
	large := width >= p.LargeBreak

	y := p.HeaderTop + p.HeaderHeight

	// About: intro column and hero card, then the stat tiles.
	top := y
	y += p.SectionGap
	var hero interact.Rect
	if wide {
		half := (colW - columnGap) / 2
		blocks.Intro = interact.Rect{X: x0, Y: y, W: half, H: p.HeroTextH}
		hero = interact.Rect{X: x0 + half + columnGap, Y: y, W: half, H: p.HeroHeight}
		y += math.Max(p.HeroTextH, p.HeroHeight)
	} else {
		blocks.Intro = interact.Rect{X: x0, Y: y, W: colW, H: p.HeroTextH}
		y += p.HeroTextH + columnGap
		hero = interact.Rect{X: x0, Y: y, W: colW, H: p.HeroHeightSm}
		y += p.HeroHeightSm
	}
	c.setRect(factory.KeyHero, hero)
	c.layoutCTAs(hero, len(content.CTAs))
	y += columnGap
	y = c.layoutStats(x0, y, colW, wide, len(content.Stats))
	y += p.SectionGap
	c.setSection(sectionAbout, interact.Rect{X: x0, Y: top, W: colW, H: y - top}, components.PlaceFlow)

	// Skills: the whole section pins while the strip scrolls sideways.
	top = y
	y += p.SectionGap
	blocks.SkillsTitle = interact.Rect{X: x0, Y: y, W: colW, H: p.TitleHeight}
	y += p.TitleHeight
	stripRect := interact.Rect{X: x0, Y: y, W: colW, H: p.SkillHeight + 2*p.StripInsetY + 2*p.StripPadding}
	c.layoutStrip(stripRect, len(content.Skills))
	y += stripRect.H
	blocks.SkillsTip = interact.Rect{X: x0, Y: y + columnGap/2, W: colW, H: p.TipHeight}
	y += columnGap/2 + p.TipHeight + p.SectionGap
	c.setSection(sectionSkills, interact.Rect{X: x0, Y: top, W: colW, H: y - top}, components.PlacePinned)
	y += c.refreshPin(top)

	// Projects grid.
	top = y
	y += p.SectionGap
	blocks.ProjectsTitle = interact.Rect{X: x0, Y: y, W: colW, H: p.TitleHeight}
	y += p.TitleHeight
	cols := 1
	switch {
	case large:
		cols = 3
	case wide:
		cols = 2
	}
	y = c.layoutGrid(len(content.Projects), cols, x0, y, colW, p.ProjectHeight, p.ProjectGap, factory.ProjectKey)
	y += p.SectionGap
	c.setSection(sectionProjects, interact.Rect{X: x0, Y: top, W: colW, H: y - top}, components.PlaceFlow)

	// Connect: notes, then the social links.
	top = y
	y += p.SectionGap
	blocks.ConnectTitle = interact.Rect{X: x0, Y: y, W: colW, H: p.TitleHeight}
	y += p.TitleHeight
	blocks.ConnectNotes = interact.Rect{X: x0, Y: y, W: colW, H: p.NotesHeight}
	y += p.NotesHeight + columnGap
	blocks.SocialsTitle = interact.Rect{X: x0, Y: y, W: colW, H: socialsTitle}
	y += socialsTitle
	cols = 1
	if wide {
		cols = 3
	}
	y = c.layoutGrid(len(content.Socials), cols, x0, y, colW, p.SocialHeight, p.SocialGap, factory.SocialKey)
	y += p.SectionGap
	c.setSection(sectionConnect, interact.Rect{X: x0, Y: top, W: colW, H: y - top}, components.PlaceFlow)

	blocks.Footer = interact.Rect{X: x0, Y: y, W: colW, H: p.FooterHeight}
	y += p.FooterHeight
	page.DocHeight = y

	c.setRect(factory.KeyToTop, interact.Rect{
		X: width - p.ToTopMargin - p.ToTopSize,
		Y: height - p.ToTopMargin - p.ToTopSize,
		W: p.ToTopSize,
		H: p.ToTopSize,
	})

	c.clampScroll()
}

func (c *Controller) bindLayout() {
	c.on(c.Bus.Resize.Subscribe(func(ev events.Resize) {
		c.Reflow(ev.Width, ev.Height)
	}))
}

// layoutCTAs centers the hero buttons along its bottom edge.
func (c *Controller) layoutCTAs(hero interact.Rect, n int) {
	if n == 0 {
		return
	}
	p := cfg.Page
	w := math.Min(p.CTAWidth, (hero.W-float64(n+1)*p.CTAGap)/float64(n))
	total := float64(n)*w + float64(n-1)*p.CTAGap
	x := hero.X + (hero.W-total)/2
	y := hero.Y + hero.H - p.CTABottom - p.CTAHeight
	for i, link := range c.opts.Content.CTAs {
		c.setRect(factory.CTAKey(link.Key), interact.Rect{X: x + float64(i)*(w+p.CTAGap), Y: y, W: w, H: p.CTAHeight})
	}
}

func (c *Controller) layoutStats(x0, y, colW float64, wide bool, n int) float64 {
	cols := 2
	if wide {
		cols = 4
	}
	return c.layoutGrid(n, cols, x0, y, colW, cfg.Page.StatHeight, cfg.Page.StatGap, factory.StatKey)
}

// layoutGrid places n cells row by row and returns the bottom edge.
func (c *Controller) layoutGrid(n, cols int, x0, y, colW, cellH, gap float64, key func(int) string) float64 {
	if n == 0 {
		return y
	}
	cellW := (colW - float64(cols-1)*gap) / float64(cols)
	for i := 0; i < n; i++ {
		row, col := i/cols, i%cols
		c.setRect(key(i), interact.Rect{
			X: x0 + float64(col)*(cellW+gap),
			Y: y + float64(row)*(cellH+gap),
			W: cellW,
			H: cellH,
		})
	}
	rows := (n + cols - 1) / cols
	return y + float64(rows)*cellH + float64(rows-1)*gap
}

// layoutStrip sets the strip viewport and the card row inside it.
func (c *Controller) layoutStrip(r interact.Rect, n int) {
	if c.strip == nil {
		return
	}
	p := cfg.Page
	components.Element.Get(c.strip).Rect = r

	strip := components.Strip.Get(c.strip)
	strip.ClientWidth = r.W
	strip.PaddingX = p.StripPadding
	strip.ContentWidth = 0
	if n > 0 {
		strip.ContentWidth = float64(n)*p.SkillWidth + float64(n-1)*p.SkillGap
	}

	for i, s := range c.opts.Content.Skills {
		c.setRect(factory.SkillKey(s.Slug), interact.Rect{
			X: r.X + p.StripPadding + float64(i)*(p.SkillWidth+p.SkillGap),
			Y: r.Y + p.StripPadding + p.StripInsetY,
			W: p.SkillWidth,
			H: p.SkillHeight,
		})
	}
}

// refreshPin moves the pin to start and re-measures it. It returns the
// spacer the pin adds below the section.
func (c *Controller) refreshPin(start float64) float64 {
	if c.strip == nil {
		return 0
	}
	pin := components.Strip.Get(c.strip).Pin
	pin.SetStart(start)
	pin.Refresh()
	return pin.Distance()
}

func (c *Controller) setRect(key string, r interact.Rect) {
	if e, ok := c.lookup(key); ok {
		components.Element.Get(e).Rect = r
	}
}

func (c *Controller) setSection(id string, r interact.Rect, placement components.Placement) {
	if e, ok := c.lookup(factory.SectionKey(id)); ok {
		el := components.Element.Get(e)
		el.Rect = r
		el.Placement = placement
	}
}

// clampScroll keeps the scroll offset inside the document after a reflow
// or a tween overshoot.
func (c *Controller) clampScroll() {
	page := c.pageData()
	top := page.Scroll.Y
	if clamped := scroll.Clamp(top, page.DocHeight, page.Height); clamped != top {
		c.Engine.Set(page.Scroll, scrollVars(clamped))
	}
}
