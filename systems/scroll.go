package systems

import (
	"github.com/automoto/portfolio/components"
	cfg "github.com/automoto/portfolio/config"
	"github.com/automoto/portfolio/events"
	"github.com/automoto/portfolio/motion"
	"github.com/automoto/portfolio/scroll"
	"github.com/automoto/portfolio/systems/factory"
)

func scrollVars(top float64) motion.Vars {
	return motion.Vars{Props: map[motion.Prop]float64{motion.PropY: top}}
}

// ScrollTop is the current document offset.
func (c *Controller) ScrollTop() float64 {
	if c.page == nil {
		return 0
	}
	return c.pageData().Scroll.Y
}

// ScrollBy moves the document immediately, cancelling any smooth scroll.
func (c *Controller) ScrollBy(dy float64) {
	if !c.Mounted() || dy == 0 {
		return
	}
	page := c.pageData()
	c.Engine.Set(page.Scroll, scrollVars(scroll.Clamp(page.Scroll.Y+dy, page.DocHeight, page.Height)))
}

// ScrollTo moves the document to top, easing when smooth is set.
func (c *Controller) ScrollTo(top float64, smooth bool) {
	if !c.Mounted() {
		return
	}
	page := c.pageData()
	top = scroll.Clamp(top, page.DocHeight, page.Height)
	if !smooth {
		c.Engine.Set(page.Scroll, scrollVars(top))
		return
	}
	c.Engine.AnimateTo(page.Scroll, scrollVars(top), motion.Options{
		Duration: cfg.Scroll.SmoothDuration,
		Ease:     cfg.Scroll.SmoothEase,
	})
}

// Navigate highlights section id and smooth-scrolls its top to the top of
// the viewport. Unknown ids are ignored.
func (c *Controller) Navigate(id string) {
	if !c.Mounted() {
		return
	}
	e, ok := c.lookup(factory.SectionKey(id))
	if !ok {
		return
	}
	c.pageData().Active = id
	c.ScrollTo(components.Element.Get(e).Rect.Y, true)
}

// NavigateRelative moves to the section delta steps away from the active
// one.
func (c *Controller) NavigateRelative(delta int) {
	ids := c.opts.Content.SectionIDs()
	if len(ids) == 0 {
		return
	}
	current := 0
	for i, id := range ids {
		if id == c.pageData().Active {
			current = i
			break
		}
	}
	next := current + delta
	if next < 0 || next >= len(ids) {
		return
	}
	c.Navigate(ids[next])
}

// publishScroll sends a scroll event when the offset changed since the
// last one, or unconditionally when force is set.
func (c *Controller) publishScroll(force bool) {
	page := c.pageData()
	top := page.Scroll.Y
	if !force && top == page.Published {
		return
	}
	page.Published = top
	c.Bus.Scroll.Publish(events.Scroll{Top: top})
}

// scrub eases the strip toward the offset the pin wants for the current
// scroll position.
func (c *Controller) scrub() {
	if c.strip == nil {
		return
	}
	strip := components.Strip.Get(c.strip)
	strip.Offset = strip.Scrubber.Update(strip.Pin.Target(c.pageData().Scroll.Y))
}

func (c *Controller) bindScroll() {
	page := c.pageData()
	ids := c.opts.Content.SectionIDs()

	sectionTop := func(id string) (float64, bool) {
		e, ok := c.lookup(factory.SectionKey(id))
		if !ok {
			return 0, false
		}
		return c.screenRect(e).Y, true
	}

	// Scroll spy
	c.on(c.Bus.Scroll.Subscribe(func(events.Scroll) {
		if id := scroll.ActiveSection(ids, sectionTop, 0); id != "" {
			page.Active = id
		}
	}))

	// Reading progress
	c.on(c.Bus.Scroll.Subscribe(func(ev events.Scroll) {
		page.Progress = scroll.Progress(ev.Top, page.DocHeight, page.Height)
	}))

	// Scroll-to-top visibility
	c.on(c.Bus.Scroll.Subscribe(func(ev events.Scroll) {
		page.ShowToTop = ev.Top > cfg.Scroll.ToTopThreshold
		if e, ok := c.lookup(factory.KeyToTop); ok {
			components.Element.Get(e).Hidden = !page.ShowToTop
		}
	}))
}
