package systems

import (
	"log"
	"strings"
	"time"

	"github.com/automoto/portfolio/components"
	cfg "github.com/automoto/portfolio/config"
	"github.com/automoto/portfolio/events"
	"github.com/automoto/portfolio/interact"
	"github.com/automoto/portfolio/motion"
	"github.com/automoto/portfolio/systems/factory"
	"github.com/yohamta/donburi"
)

func transformOf(e *donburi.Entry) *motion.Transform {
	return components.Transform.Get(e).Transform
}

func settleOptions(s cfg.SettleConfig) motion.Options {
	return motion.Options{Duration: s.Duration, Ease: s.Ease}
}

// bindTilt makes e follow the pointer while hovered, settle on leave and
// follow device orientation. pointer may be nil for orientation only.
func (c *Controller) bindTilt(e *donburi.Entry, pointer *interact.TiltProfile, settle cfg.SettleConfig, orientation interact.TiltProfile) {
	key := components.Element.Get(e).Key
	t := transformOf(e)

	if pointer != nil {
		p := *pointer
		c.on(c.Bus.PointerMove.Subscribe(func(ev events.PointerMove) {
			if ev.Key != key {
				return
			}
			nx, ny, ok := interact.NormalizePointer(c.screenRect(e), ev.X, ev.Y)
			if !ok {
				return
			}
			c.Engine.AnimateTo(t, p.Vars(nx, ny), p.Options())
		}))
		c.on(c.Bus.PointerLeave.Subscribe(func(ev events.PointerLeave) {
			if ev.Key != key {
				return
			}
			c.Engine.AnimateTo(t, p.Neutral(), settleOptions(settle))
		}))
	}

	c.on(c.Bus.Orientation.Subscribe(func(ev events.Orientation) {
		nx, ny, ok := interact.NormalizeOrientation(ev.Sample)
		if !ok {
			return
		}
		c.Engine.AnimateTo(t, orientation.Vars(nx, ny), orientation.Options())
	}))
}

// bindHover scales e on enter and back on leave. Shadows are optional.
func (c *Controller) bindHover(e *donburi.Entry, h cfg.HoverConfig, enter, leave *motion.Shadow) {
	key := components.Element.Get(e).Key
	t := transformOf(e)

	in := motion.Vars{Props: map[motion.Prop]float64{motion.PropScale: h.Scale}}
	out := motion.Vars{Props: map[motion.Prop]float64{motion.PropScale: 1}}
	if h.Lift != 0 {
		in.Props[motion.PropY] = h.Lift
		out.Props[motion.PropY] = 0
	}
	if enter != nil {
		in = in.WithShadow(*enter)
	}
	if leave != nil {
		out = out.WithShadow(*leave)
	}

	c.on(c.Bus.PointerEnter.Subscribe(func(ev events.PointerEnter) {
		if ev.Key == key {
			c.Engine.AnimateTo(t, in, motion.Options{Duration: h.EnterDuration, Ease: h.Ease})
		}
	}))
	c.on(c.Bus.PointerLeave.Subscribe(func(ev events.PointerLeave) {
		if ev.Key == key {
			c.Engine.AnimateTo(t, out, motion.Options{Duration: h.LeaveDuration, Ease: h.Ease})
		}
	}))
}

// onClick runs fn when the element under key is clicked.
func (c *Controller) onClick(key string, fn func()) {
	c.on(c.Bus.Click.Subscribe(func(ev events.Click) {
		if ev.Key == key {
			fn()
		}
	}))
}

func (c *Controller) bindHero() {
	hero, ok := c.lookup(factory.KeyHero)
	if !ok {
		return
	}
	pointer := interact.TiltProfile(cfg.Motion.HeroPointer)
	c.bindTilt(hero, &pointer, cfg.Motion.HeroSettle, interact.TiltProfile(cfg.Motion.HeroOrientation))
}

func (c *Controller) bindProjects() {
	pointer := interact.TiltProfile(cfg.Motion.ProjectPointer)
	orientation := interact.TiltProfile(cfg.Motion.ProjectOrientation)
	for i := range c.opts.Content.Projects {
		if e, ok := c.lookup(factory.ProjectKey(i)); ok {
			c.bindTilt(e, &pointer, cfg.Motion.ProjectSettle, orientation)
		}
	}
}

func (c *Controller) bindSocials() {
	h := cfg.Motion.SocialHover
	lift := motion.ParseShadow(h.Shadow)
	orientation := interact.TiltProfile(cfg.Motion.SocialOrientation)
	for i, s := range c.opts.Content.Socials {
		e, ok := c.lookup(factory.SocialKey(i))
		if !ok {
			continue
		}
		c.bindTilt(e, nil, cfg.SettleConfig{}, orientation)
		c.bindHover(e, h, &lift, &motion.None)
		href := s.Href
		c.onClick(factory.SocialKey(i), func() { c.open(href) })
	}
}

func (c *Controller) bindSkills() {
	h := cfg.Motion.SkillHover
	for _, s := range c.opts.Content.Skills {
		e, ok := c.lookup(factory.SkillKey(s.Slug))
		if !ok {
			continue
		}
		card := components.SkillCard.Get(e)
		c.Engine.Set(transformOf(e), motion.Vars{}.WithShadow(card.Rest))
		hover, rest := card.Hover, card.Rest
		c.bindHover(e, h, &hover, &rest)
	}
}

// playSkillEntrance fades the skill cards up one after another. It runs
// once per mount.
func (c *Controller) playSkillEntrance() {
	in := cfg.Motion.SkillEntrance
	from := motion.Vars{Props: map[motion.Prop]float64{
		motion.PropY:       in.OffsetY,
		motion.PropOpacity: in.Opacity,
		motion.PropScale:   in.Scale,
	}}
	to := motion.Vars{Props: map[motion.Prop]float64{
		motion.PropY:       0,
		motion.PropOpacity: 1,
		motion.PropScale:   1,
	}}
	for i, s := range c.opts.Content.Skills {
		e, ok := c.lookup(factory.SkillKey(s.Slug))
		if !ok {
			continue
		}
		t := transformOf(e)
		c.Engine.Set(t, from)
		c.Engine.AnimateTo(t, to, motion.Options{
			Duration: in.Duration,
			Delay:    time.Duration(i) * in.Stagger,
			Ease:     in.Ease,
		})
	}
}

func (c *Controller) bindCTAs() {
	for _, link := range c.opts.Content.CTAs {
		key := factory.CTAKey(link.Key)
		e, ok := c.lookup(key)
		if !ok {
			continue
		}
		c.bindHover(e, cfg.Motion.CTAHover, nil, nil)

		link := link
		c.onClick(key, func() {
			switch {
			case strings.HasPrefix(link.Href, "#"):
				c.Navigate(strings.TrimPrefix(link.Href, "#"))
			case link.Download:
				c.saveResume()
			default:
				c.open(link.Href)
			}
		})
	}
}

func (c *Controller) bindToTop() {
	c.onClick(factory.KeyToTop, func() {
		c.ScrollTo(0, true)
	})
}

func (c *Controller) open(url string) {
	if c.opts.Open == nil || url == "" {
		return
	}
	if err := c.opts.Open(url); err != nil {
		log.Printf("Warning: Could not open %s: %v", url, err)
	}
}

func (c *Controller) saveResume() {
	if c.opts.Store == nil || len(c.opts.Resume) == 0 {
		return
	}
	if err := c.opts.Store.SaveResume(c.opts.Resume); err != nil {
		log.Printf("Warning: Could not save resume: %v", err)
		c.notify("Resume could not be saved")
		return
	}
	c.notify("Resume saved")
}
