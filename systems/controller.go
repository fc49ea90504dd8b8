package systems

import (
	"context"
	"image"
	"time"

	"github.com/automoto/portfolio/assets"
	"github.com/automoto/portfolio/components"
	cfg "github.com/automoto/portfolio/config"
	"github.com/automoto/portfolio/events"
	"github.com/automoto/portfolio/interact"
	"github.com/automoto/portfolio/lifecycle"
	"github.com/automoto/portfolio/motion"
	"github.com/automoto/portfolio/systems/factory"
	"github.com/automoto/portfolio/typewriter"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// IconSource loads icons off the update loop.
type IconSource interface {
	Fetch(ctx context.Context, req assets.IconRequest)
	Results() <-chan assets.IconResult
}

// ResumeStore receives the resume when the visitor asks for it.
type ResumeStore interface {
	SaveResume(data []byte) error
}

// Options are the page's outside dependencies. Nil fields disable the
// feature that needs them.
type Options struct {
	Content  *cfg.ContentData
	Platform interact.Platform
	Icons    IconSource
	Open     func(url string) error
	Store    ResumeStore
	Resume   []byte
}

// Controller owns one mount of the page: the element world, the tween
// engine, the event bus and every listener bound to them.
type Controller struct {
	opts Options

	Engine *motion.Engine
	Bus    *events.Bus
	Scope  *lifecycle.Scope
	Timers *lifecycle.Timers
	Gate   *interact.PermissionGate

	ecs      *ecs.ECS
	page     *donburi.Entry
	strip    *donburi.Entry
	elements []*donburi.Entry
	typing   *typewriter.Loop

	samples chan interact.OrientationSample

	cursorX, cursorY float64
	cursorInside     bool
	hoverTop         float64 // Scroll offset used by the last hit test
	pointer          *resolv.Object

	resizeW, resizeH float64
	resizePending    bool

	mounted   bool
	unmounted bool

	newImage func(image.Image) *ebiten.Image
}

func NewController(e *ecs.ECS, opts Options) *Controller {
	if opts.Content == nil {
		opts.Content = cfg.Content
	}
	return &Controller{
		opts:     opts,
		Engine:   motion.NewEngine(),
		Bus:      events.NewBus(),
		ecs:      e,
		samples:  make(chan interact.OrientationSample, 1),
		newImage: func(img image.Image) *ebiten.Image { return ebiten.NewImageFromImage(img) },
	}
}

// Mount builds the page for a width x height viewport and binds every
// listener. Mounting twice does nothing.
func (c *Controller) Mount(width, height float64) {
	if c.mounted || c.unmounted {
		return
	}
	c.mounted = true

	c.page = factory.CreatePage(c.ecs, c.opts.Content)
	c.strip, _ = c.lookup(factory.KeyStrip)
	c.elements = c.elements[:0]
	components.Element.Each(c.ecs.World, func(e *donburi.Entry) {
		c.elements = append(c.elements, e)
	})

	c.Scope = lifecycle.NewScope(context.Background())
	c.Timers = lifecycle.NewTimers(c.Scope)
	c.on(c.Engine.KillAll)

	c.Reflow(width, height)

	c.bindLayout()
	c.bindScroll()
	c.bindHero()
	c.bindCTAs()
	c.bindSkills()
	c.bindProjects()
	c.bindSocials()
	c.bindToTop()

	c.playSkillEntrance()
	c.startTyping()
	c.requestIcons()

	if c.opts.Platform != nil {
		c.Gate = interact.NewPermissionGate(c.opts.Platform, c.Scope)
		c.Gate.Request(c.Scope.Context())
	}

	c.publishScroll(true)
}

// Unmount tears the page down: listeners, timers, tweens, icon fetches and
// any permission answer still in flight. Later calls do nothing.
func (c *Controller) Unmount() {
	if !c.mounted || c.unmounted {
		return
	}
	c.unmounted = true
	c.Scope.Close()
}

// Mounted reports whether the page is live.
func (c *Controller) Mounted() bool {
	return c.mounted && !c.unmounted
}

// Resize queues a viewport change for the next Advance.
func (c *Controller) Resize(width, height float64) {
	if !c.Mounted() {
		return
	}
	page := c.pageData()
	if width == page.Width && height == page.Height && !c.resizePending {
		return
	}
	c.resizeW, c.resizeH = width, height
	c.resizePending = true
}

// Advance runs one frame of dt.
func (c *Controller) Advance(dt time.Duration) {
	if !c.Mounted() {
		return
	}

	if c.resizePending {
		c.resizePending = false
		c.Bus.Resize.Publish(events.Resize{Width: c.resizeW, Height: c.resizeH})
	}

	c.pollOrientation()

	c.Timers.Advance(dt)
	c.Engine.Update(dt)

	c.clampScroll()
	c.scrub()
	c.publishScroll(false)

	if c.hoverTop != c.pageData().Scroll.Y {
		c.hitTest(c.cursorX, c.cursorY, false)
	}

	c.drainIcons()
}

// Update is the ecs system driving the controller at the game's tick rate.
func (c *Controller) Update(e *ecs.ECS) {
	c.Advance(time.Second / time.Duration(ebiten.TPS()))
}

// Page is the document state, nil before Mount.
func (c *Controller) Page() *components.PageData {
	if c.page == nil {
		return nil
	}
	return c.pageData()
}

// Lookup resolves an element key.
func (c *Controller) Lookup(key string) (*donburi.Entry, bool) {
	return c.lookup(key)
}

// Elements is every element entry.
func (c *Controller) Elements() []*donburi.Entry {
	return c.elements
}

func (c *Controller) pageData() *components.PageData {
	return components.Page.Get(c.page)
}

func (c *Controller) lookup(key string) (*donburi.Entry, bool) {
	if c.page == nil {
		return nil, false
	}
	return components.Arena.Get(c.page).Lookup(c.ecs.World, key)
}

// on ties a cleanup to the mount.
func (c *Controller) on(cleanup func()) {
	_ = c.Scope.Defer(cleanup)
}

func (c *Controller) startTyping() {
	page := c.pageData()
	m := typewriter.NewMachine(c.opts.Content.TypingLines, typewriter.Delays(cfg.Typing))
	c.typing = typewriter.NewLoop(m, c.Timers, func(s string) {
		page.Typed = s
	})
	c.typing.Start()
	c.on(c.typing.Stop)
}

// notify shows a short status line under the header.
func (c *Controller) notify(msg string) {
	page := c.pageData()
	page.Notice = msg
	c.Timers.After(noticeDuration, func() {
		if page.Notice == msg {
			page.Notice = ""
		}
	})
}

const noticeDuration = 2500 * time.Millisecond
