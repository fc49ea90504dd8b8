package systems

import (
	"math"

	"github.com/automoto/portfolio/components"
	cfg "github.com/automoto/portfolio/config"
	"github.com/automoto/portfolio/events"
	"github.com/automoto/portfolio/interact"
	"github.com/automoto/portfolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// offscreen parks hit-test objects that cannot be hovered.
const offscreen = -1 << 14

// screenRect is where an element currently sits in the viewport, before
// its transform.
func (c *Controller) screenRect(e *donburi.Entry) interact.Rect {
	el := components.Element.Get(e)
	top := c.pageData().Scroll.Y
	var held, shift float64
	if c.strip != nil {
		strip := components.Strip.Get(c.strip)
		held = strip.Pin.Held(top)
		shift = strip.Offset
	}
	switch el.Placement {
	case components.PlaceFixed:
		return el.Rect
	case components.PlacePinned:
		return el.Rect.Offset(0, held-top)
	case components.PlaceStrip:
		return el.Rect.Offset(shift, held-top)
	default:
		return el.Rect.Offset(0, -top)
	}
}

// ScreenRect exposes screenRect to renderers.
func (c *Controller) ScreenRect(e *donburi.Entry) interact.Rect {
	return c.screenRect(e)
}

// stripViewport is the visible box of the strip; cards outside it are
// clipped and cannot be hovered.
func (c *Controller) stripViewport() interact.Rect {
	if c.strip == nil {
		return interact.Rect{}
	}
	return c.screenRect(c.strip).Inset(cfg.Page.StripPadding)
}

// StripViewport exposes the strip clip box to renderers.
func (c *Controller) StripViewport() interact.Rect {
	return c.stripViewport()
}

// PointerAt records the pointer position and fires enter, leave and move
// events for every element whose hover state changed. inside is false when
// the pointer left the window.
func (c *Controller) PointerAt(x, y float64, inside bool) {
	if !c.Mounted() {
		return
	}
	moved := x != c.cursorX || y != c.cursorY || inside != c.cursorInside
	c.cursorX, c.cursorY, c.cursorInside = x, y, inside
	c.hitTest(x, y, moved)
}

// Click activates every hovered clickable element.
func (c *Controller) Click() {
	if !c.Mounted() || !c.cursorInside {
		return
	}
	for _, e := range c.hovered() {
		el := components.Element.Get(e)
		if el.Clickable {
			c.Bus.Click.Publish(events.Click{Key: el.Key, X: c.cursorX, Y: c.cursorY})
		}
	}
}

// hovered lists the elements under the pointer.
func (c *Controller) hovered() []*donburi.Entry {
	var out []*donburi.Entry
	for _, e := range c.elements {
		if c.ecs.World.Valid(e.Entity()) && components.Element.Get(e).Hovered {
			out = append(out, e)
		}
	}
	return out
}

// hitTest moves every element's resolv proxy to its screen rect, asks the
// space for candidates under the pointer and confirms each with an exact
// containment check.
func (c *Controller) hitTest(x, y float64, moved bool) {
	c.hoverTop = c.pageData().Scroll.Y
	c.syncObjects()

	under := map[donburi.Entity]bool{}
	if c.cursorInside && y >= cfg.Page.HeaderTop+cfg.Page.HeaderHeight {
		for _, e := range c.candidates(x, y) {
			if c.hit(e, x, y) {
				under[e.Entity()] = true
			}
		}
	}

	for _, e := range c.elements {
		el := components.Element.Get(e)
		switch {
		case el.Hovered && !under[e.Entity()]:
			el.Hovered = false
			c.Bus.PointerLeave.Publish(events.PointerLeave{Key: el.Key})
		case !el.Hovered && under[e.Entity()]:
			el.Hovered = true
			c.Bus.PointerEnter.Publish(events.PointerEnter{Key: el.Key, X: x, Y: y})
			c.Bus.PointerMove.Publish(events.PointerMove{Key: el.Key, X: x, Y: y})
		case el.Hovered && moved:
			c.Bus.PointerMove.Publish(events.PointerMove{Key: el.Key, X: x, Y: y})
		}
	}
}

func (c *Controller) hit(e *donburi.Entry, x, y float64) bool {
	el := components.Element.Get(e)
	if el.Hidden {
		return false
	}
	if el.Placement == components.PlaceStrip && !c.stripViewport().Contains(x, y) {
		return false
	}
	return c.screenRect(e).Contains(x, y)
}

// candidates runs the broadphase query with a one pixel pointer object.
func (c *Controller) candidates(x, y float64) []*donburi.Entry {
	space := c.space()
	if space == nil {
		return c.elements
	}
	if c.pointer == nil {
		c.pointer = resolv.NewObject(x, y, 1, 1, tags.ResolvPointer)
		space.Add(c.pointer)
	}
	c.pointer.X, c.pointer.Y = x, y
	c.pointer.Update()

	check := c.pointer.Check(0, 0, tags.ResolvHoverable)
	if check == nil {
		return nil
	}
	objects := check.ObjectsByTags(tags.ResolvHoverable)
	out := make([]*donburi.Entry, 0, len(objects))
	for _, obj := range objects {
		if e, ok := obj.Data.(*donburi.Entry); ok {
			out = append(out, e)
		}
	}
	return out
}

func (c *Controller) syncObjects() {
	for _, e := range c.elements {
		el := components.Element.Get(e)
		if el.Object == nil {
			continue
		}
		r := c.screenRect(e)
		if el.Hidden || r.Empty() {
			el.Object.X, el.Object.Y = offscreen, offscreen
			el.Object.W, el.Object.H = 1, 1
		} else {
			el.Object.X, el.Object.Y, el.Object.W, el.Object.H = r.X, r.Y, r.W, r.H
		}
		el.Object.Update()
	}
}

// fitSpace grows the hit-test grid to cover a width x height viewport.
// Objects outside the grid have no cells and never collide.
func (c *Controller) fitSpace(width, height float64) {
	space := c.space()
	if space == nil {
		return
	}
	cols := int(math.Ceil(width / float64(space.CellWidth)))
	rows := int(math.Ceil(height / float64(space.CellHeight)))
	if cols <= space.Width() && rows <= space.Height() {
		return
	}
	space.Resize(max(cols, space.Width()), max(rows, space.Height()))
	c.syncObjects()
	if c.pointer != nil {
		c.pointer.Update()
	}
}

func (c *Controller) space() *resolv.Space {
	e, ok := components.Space.First(c.ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(e)
}

// elementOf resolves the element behind a hit-test proxy.
func elementOf(obj *resolv.Object) (*components.ElementData, bool) {
	e, ok := obj.Data.(*donburi.Entry)
	if !ok || !e.Valid() {
		return nil, false
	}
	return components.Element.Get(e), true
}
