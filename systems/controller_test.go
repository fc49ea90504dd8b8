package systems

import (
	"context"
	"errors"
	"image"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/automoto/portfolio/assets"
	"github.com/automoto/portfolio/components"
	cfg "github.com/automoto/portfolio/config"
	"github.com/automoto/portfolio/interact"
	"github.com/automoto/portfolio/motion"
	"github.com/automoto/portfolio/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tick = time.Second / 60

type fakePlatform struct {
	mu        sync.Mutex
	ask       bool
	answer    chan interact.PermissionState
	listeners int
	listens   int
	fn        func(interact.OrientationSample)
}

func newFakePlatform(ask bool) *fakePlatform {
	return &fakePlatform{ask: ask, answer: make(chan interact.PermissionState)}
}

func (f *fakePlatform) HasOrientationPermissionAPI() bool { return f.ask }

// RequestOrientationPermission waits for the test to answer, even after the
// mount is gone.
func (f *fakePlatform) RequestOrientationPermission(context.Context) (interact.PermissionState, error) {
	return <-f.answer, nil
}

func (f *fakePlatform) ListenOrientation(fn func(interact.OrientationSample)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners++
	f.listens++
	f.fn = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			f.listeners--
			f.fn = nil
			f.mu.Unlock()
		})
	}
}

func (f *fakePlatform) counts() (listeners, listens int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listeners, f.listens
}

func (f *fakePlatform) emit(s interact.OrientationSample) {
	f.mu.Lock()
	fn := f.fn
	f.mu.Unlock()
	if fn != nil {
		fn(s)
	}
}

type fakeIcons struct {
	requests []assets.IconRequest
	results  chan assets.IconResult
}

func newFakeIcons() *fakeIcons {
	return &fakeIcons{results: make(chan assets.IconResult, 64)}
}

func (f *fakeIcons) Fetch(_ context.Context, req assets.IconRequest) {
	f.requests = append(f.requests, req)
}

func (f *fakeIcons) Results() <-chan assets.IconResult { return f.results }

type fakeStore struct {
	saved [][]byte
	err   error
}

func (f *fakeStore) SaveResume(data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, data)
	return nil
}

func mountPage(t *testing.T, opts Options) *Controller {
	t.Helper()
	motion.RegisterStandardEases()
	c := NewController(ecs.NewECS(donburi.NewWorld()), opts)
	c.newImage = func(image.Image) *ebiten.Image { return nil }
	c.Mount(1280, 800)
	t.Cleanup(c.Unmount)
	return c
}

func advance(c *Controller, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		c.Advance(tick)
	}
}

func mustLookup(t *testing.T, c *Controller, key string) *donburi.Entry {
	t.Helper()
	e, ok := c.Lookup(key)
	if !ok {
		t.Fatalf("Expected element %q", key)
	}
	return e
}

func TestController_HeroFollowsPointerAndSettles(t *testing.T) {
	c := mountPage(t, Options{})
	hero := mustLookup(t, c, factory.KeyHero)
	r := c.ScreenRect(hero)
	tr := transformOf(hero)

	// Three quarters across, one quarter down
	c.PointerAt(r.X+r.W*0.75, r.Y+r.H*0.25, true)
	if !components.Element.Get(hero).Hovered {
		t.Fatal("Expected hero to be hovered")
	}
	advance(c, time.Second)

	p := cfg.Motion.HeroPointer
	if !near(tr.RotateY, 0.25*p.RotateY) || !near(tr.RotateX, 0.25*p.RotateX) {
		t.Errorf("Expected tilt (%f, %f), got (%f, %f)", 0.25*p.RotateX, 0.25*p.RotateY, tr.RotateX, tr.RotateY)
	}

	c.PointerAt(-1, -1, false)
	advance(c, time.Second)
	if tr.RotateX != 0 || tr.RotateY != 0 {
		t.Errorf("Expected hero to settle flat, got (%f, %f)", tr.RotateX, tr.RotateY)
	}
}

func TestController_SkillEntranceEndsNeutral(t *testing.T) {
	c := mountPage(t, Options{})
	first := transformOf(mustLookup(t, c, factory.SkillKey(cfg.Content.Skills[0].Slug)))
	last := transformOf(mustLookup(t, c, factory.SkillKey(cfg.Content.Skills[len(cfg.Content.Skills)-1].Slug)))

	if first.Opacity != 0 || first.Y != cfg.Motion.SkillEntrance.OffsetY {
		t.Fatalf("Expected cards to start hidden and lowered, got opacity=%f y=%f", first.Opacity, first.Y)
	}

	advance(c, cfg.Motion.SkillEntrance.Duration)
	if first.Opacity <= last.Opacity {
		t.Errorf("Expected stagger: first card ahead of last, got %f vs %f", first.Opacity, last.Opacity)
	}

	advance(c, 3*time.Second)
	for _, tr := range []*motion.Transform{first, last} {
		if tr.Opacity != 1 || tr.Y != 0 || tr.Scale != 1 {
			t.Errorf("Expected neutral card after entrance, got opacity=%f y=%f scale=%f", tr.Opacity, tr.Y, tr.Scale)
		}
	}
}

// flicker enters and leaves e within a tick or two, rounds times.
func flicker(c *Controller, e *donburi.Entry, rounds int) {
	for i := 0; i < rounds; i++ {
		x, y := c.ScreenRect(e).Center()
		c.PointerAt(x, y, true)
		c.Advance(tick)
		if i%2 == 1 {
			c.Advance(tick)
		}
		c.PointerAt(-1, -1, false)
		c.Advance(tick)
	}
}

func assertRest(t *testing.T, name string, tr *motion.Transform) {
	t.Helper()
	if !tr.IsNeutral() {
		t.Errorf("Expected %s neutral, got scale=%f y=%f rot=(%f, %f)", name, tr.Scale, tr.Y, tr.RotateX, tr.RotateY)
	}
	if tr.Shadow.Visible() {
		t.Errorf("Expected %s shadow gone, got %s", name, tr.Shadow)
	}
}

func TestController_QuickHoverEndsAtRest(t *testing.T) {
	c := mountPage(t, Options{})
	strip := components.Strip.Get(mustLookup(t, c, factory.KeyStrip))
	advance(c, 3*time.Second)

	cta := mustLookup(t, c, factory.CTAKey(cfg.Content.CTAs[0].Key))
	flicker(c, cta, 6)
	advance(c, time.Second)
	assertRest(t, "cta", transformOf(cta))

	c.ScrollBy(strip.Pin.Start())
	advance(c, 3*time.Second)
	skill := mustLookup(t, c, factory.SkillKey(cfg.Content.Skills[0].Slug))
	x, y := c.ScreenRect(skill).Center()
	c.PointerAt(x, y, true)
	if !components.Element.Get(skill).Hovered {
		t.Fatal("Expected the first skill card to be hoverable at the pin start")
	}
	c.PointerAt(-1, -1, false)
	flicker(c, skill, 10)
	advance(c, time.Second)
	assertRest(t, "skill", transformOf(skill))

	c.ScrollBy(c.Page().DocHeight)
	advance(c, time.Second)
	social := mustLookup(t, c, factory.SocialKey(0))
	x, y = c.ScreenRect(social).Center()
	c.PointerAt(x, y, true)
	if !components.Element.Get(social).Hovered {
		t.Fatal("Expected the first social link to be hoverable at the bottom")
	}
	c.PointerAt(-1, -1, false)
	flicker(c, social, 10)
	advance(c, time.Second)
	assertRest(t, "social", transformOf(social))
}

func TestController_StripClipsHover(t *testing.T) {
	c := mountPage(t, Options{})
	strip := components.Strip.Get(mustLookup(t, c, factory.KeyStrip))
	c.ScrollBy(strip.Pin.Start())
	advance(c, 3*time.Second)

	vp := c.StripViewport()
	right := vp.X + vp.W
	for _, s := range cfg.Content.Skills {
		e := mustLookup(t, c, factory.SkillKey(s.Slug))
		r := c.ScreenRect(e)
		if r.X+r.W <= right {
			continue
		}
		// A point on the card but past the strip's right edge
		x := math.Max(r.X, right) + 1
		_, y := r.Center()
		if !r.Contains(x, y) || vp.Contains(x, y) {
			t.Fatalf("Expected (%f, %f) on %s and outside the strip", x, y, s.Slug)
		}
		c.PointerAt(x, y, true)
		if components.Element.Get(e).Hovered {
			t.Errorf("Expected clipped card %s not to be hovered", s.Slug)
		}
		return
	}
	t.Fatal("Expected a card past the strip edge")
}

func TestController_HoverBeyondDefaultSpace(t *testing.T) {
	c := mountPage(t, Options{})
	c.Resize(9000, 800)
	c.Advance(tick)

	hero := mustLookup(t, c, factory.KeyHero)
	r := c.ScreenRect(hero)
	if r.X <= 4096 {
		t.Fatalf("Expected the hero past x=4096 on a 9000px window, got %f", r.X)
	}
	x, y := r.Center()
	c.PointerAt(x, y, true)
	if !components.Element.Get(hero).Hovered {
		t.Error("Expected the hero to be hovered on a wide window")
	}
}

func TestController_NavigateScrollsToSection(t *testing.T) {
	c := mountPage(t, Options{})
	section := components.Element.Get(mustLookup(t, c, factory.SectionKey("projects")))

	c.Navigate("projects")
	if c.Page().Active != "projects" {
		t.Errorf("Expected projects active right away, got %q", c.Page().Active)
	}
	advance(c, cfg.Scroll.SmoothDuration+200*time.Millisecond)
	if !near(c.ScrollTop(), section.Rect.Y) {
		t.Errorf("Expected scroll %f, got %f", section.Rect.Y, c.ScrollTop())
	}
	if c.Page().Active != "projects" {
		t.Errorf("Expected projects still active, got %q", c.Page().Active)
	}

	before := c.ScrollTop()
	c.Navigate("nowhere")
	advance(c, cfg.Scroll.SmoothDuration)
	if c.ScrollTop() != before {
		t.Errorf("Expected unknown section to be ignored, scroll moved to %f", c.ScrollTop())
	}
}

func TestController_SpyAndProgressFollowScroll(t *testing.T) {
	c := mountPage(t, Options{})
	page := c.Page()
	if page.Active != "about" || page.Progress != 0 {
		t.Fatalf("Expected about at 0%%, got %q at %f", page.Active, page.Progress)
	}

	skills := components.Element.Get(mustLookup(t, c, factory.SectionKey("skills")))
	c.ScrollBy(skills.Rect.Y)
	c.Advance(tick)
	if page.Active != "skills" {
		t.Errorf("Expected skills active, got %q", page.Active)
	}
	if page.Progress <= 0 || page.Progress >= 1 {
		t.Errorf("Expected progress inside (0, 1), got %f", page.Progress)
	}

	c.ScrollBy(page.DocHeight * 2)
	c.Advance(tick)
	if page.Progress != 1 {
		t.Errorf("Expected progress 1 at the bottom, got %f", page.Progress)
	}
	if c.ScrollTop() != page.DocHeight-page.Height {
		t.Errorf("Expected scroll clamped to %f, got %f", page.DocHeight-page.Height, c.ScrollTop())
	}
}

func TestController_PinHoldsSkillsWhileStripScrubs(t *testing.T) {
	c := mountPage(t, Options{})
	strip := components.Strip.Get(mustLookup(t, c, factory.KeyStrip))
	skills := mustLookup(t, c, factory.SectionKey("skills"))
	if strip.Pin.Distance() <= 0 {
		t.Fatalf("Expected the strip to overflow, got distance %f", strip.Pin.Distance())
	}

	c.ScrollBy(strip.Pin.Start() + strip.Pin.Distance()/2)
	advance(c, 3*time.Second)

	if y := c.ScreenRect(skills).Y; !near(y, 0) {
		t.Errorf("Expected pinned section at the viewport top, got %f", y)
	}
	if math.Abs(strip.Offset+strip.Pin.Distance()/2) > 0.5 {
		t.Errorf("Expected strip offset %f, got %f", -strip.Pin.Distance()/2, strip.Offset)
	}
}

func TestController_ResizeRefreshesPin(t *testing.T) {
	c := mountPage(t, Options{})
	strip := components.Strip.Get(mustLookup(t, c, factory.KeyStrip))
	wide := strip.Pin.Distance()

	c.Resize(600, 800)
	c.Advance(tick)
	if c.Page().Width != 600 {
		t.Fatalf("Expected width 600 after resize, got %f", c.Page().Width)
	}
	if strip.Pin.Distance() <= wide {
		t.Errorf("Expected a longer pin on a narrow viewport, got %f (was %f)", strip.Pin.Distance(), wide)
	}
}

func TestController_IconStates(t *testing.T) {
	icons := newFakeIcons()
	c := mountPage(t, Options{Icons: icons})

	skillKey := factory.SkillKey(cfg.Content.Skills[0].Slug)
	socialKey := factory.SocialKey(0)
	var skillReq, socialReq *assets.IconRequest
	for i := range icons.requests {
		switch icons.requests[i].Key {
		case skillKey:
			skillReq = &icons.requests[i]
		case socialKey:
			socialReq = &icons.requests[i]
		}
	}
	if skillReq == nil || !skillReq.UseFallback {
		t.Fatalf("Expected a skill icon request with fallback, got %+v", skillReq)
	}
	if socialReq == nil || socialReq.UseFallback {
		t.Fatalf("Expected a social icon request without fallback, got %+v", socialReq)
	}

	icons.results <- assets.IconResult{Key: skillKey, Source: "fallback", Image: image.NewRGBA(image.Rect(0, 0, 4, 4))}
	icons.results <- assets.IconResult{Key: socialKey, Err: assets.ErrIconUnavailable}
	icons.results <- assets.IconResult{Key: factory.SocialKey(1), Err: context.Canceled}
	c.Advance(tick)

	skill := components.Icon.Get(mustLookup(t, c, skillKey))
	if skill.State != components.IconReady || skill.Source != "fallback" {
		t.Errorf("Expected ready skill icon from fallback, got state=%d source=%q", skill.State, skill.Source)
	}
	if s := components.Icon.Get(mustLookup(t, c, socialKey)).State; s != components.IconHidden {
		t.Errorf("Expected failed social icon hidden, got %d", s)
	}
	if s := components.Icon.Get(mustLookup(t, c, factory.SocialKey(1))).State; s != components.IconLoading {
		t.Errorf("Expected cancelled load to be ignored, got %d", s)
	}
}

func TestController_ResumeButtonSaves(t *testing.T) {
	store := &fakeStore{}
	c := mountPage(t, Options{Store: store, Resume: []byte("%PDF")})

	var key string
	for _, link := range cfg.Content.CTAs {
		if link.Download {
			key = factory.CTAKey(link.Key)
		}
	}
	x, y := c.ScreenRect(mustLookup(t, c, key)).Center()
	c.PointerAt(x, y, true)
	c.Click()

	if len(store.saved) != 1 {
		t.Fatalf("Expected one save, got %d", len(store.saved))
	}
	if c.Page().Notice != "Resume saved" {
		t.Errorf("Expected a saved notice, got %q", c.Page().Notice)
	}
	advance(c, noticeDuration+tick)
	if c.Page().Notice != "" {
		t.Errorf("Expected the notice to clear, got %q", c.Page().Notice)
	}

	store.err = errors.New("disk full")
	c.Click()
	if c.Page().Notice != "Resume could not be saved" {
		t.Errorf("Expected a failure notice, got %q", c.Page().Notice)
	}
}

func TestController_ToTopButton(t *testing.T) {
	c := mountPage(t, Options{})
	toTop := mustLookup(t, c, factory.KeyToTop)
	if !components.Element.Get(toTop).Hidden || c.Page().ShowToTop {
		t.Fatal("Expected scroll-to-top hidden at the top")
	}

	c.ScrollBy(cfg.Scroll.ToTopThreshold + 100)
	c.Advance(tick)
	if components.Element.Get(toTop).Hidden || !c.Page().ShowToTop {
		t.Fatal("Expected scroll-to-top visible past the threshold")
	}

	x, y := c.ScreenRect(toTop).Center()
	c.PointerAt(x, y, true)
	c.Click()
	advance(c, cfg.Scroll.SmoothDuration+200*time.Millisecond)
	if c.ScrollTop() != 0 {
		t.Errorf("Expected scroll back to 0, got %f", c.ScrollTop())
	}
	if !components.Element.Get(toTop).Hidden {
		t.Error("Expected scroll-to-top hidden again")
	}
}

func TestController_OrientationTiltsAfterPermission(t *testing.T) {
	platform := newFakePlatform(true)
	c := mountPage(t, Options{Platform: platform})
	hero := transformOf(mustLookup(t, c, factory.KeyHero))

	c.Advance(tick)
	if _, listens := platform.counts(); listens != 0 {
		t.Fatal("Expected no listener before permission is granted")
	}

	platform.answer <- interact.PermissionGranted
	deadline := time.Now().Add(time.Second)
	for {
		c.Advance(tick)
		if listeners, _ := platform.counts(); listeners == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Expected a listener after permission was granted")
		}
		time.Sleep(time.Millisecond)
	}

	project := transformOf(mustLookup(t, c, factory.ProjectKey(0)))
	social := transformOf(mustLookup(t, c, factory.SocialKey(0)))

	platform.emit(interact.Angles(90, 45))
	advance(c, time.Second)
	want := 0.5 * cfg.Motion.HeroOrientation.RotateY
	if !near(hero.RotateY, want) || !near(hero.RotateX, 0) {
		t.Errorf("Expected hero tilt (0, %f), got (%f, %f)", want, hero.RotateX, hero.RotateY)
	}
	for name, tc := range map[string]struct {
		tr   *motion.Transform
		tilt float64
	}{
		"project": {project, cfg.Motion.ProjectOrientation.RotateY},
		"social":  {social, cfg.Motion.SocialOrientation.RotateY},
	} {
		if !near(tc.tr.RotateY, 0.5*tc.tilt) {
			t.Errorf("Expected %s tilt %f, got %f", name, 0.5*tc.tilt, tc.tr.RotateY)
		}
		if tc.tilt >= cfg.Motion.HeroOrientation.RotateY {
			t.Errorf("Expected %s tilt below the hero's, got %f", name, tc.tilt)
		}
	}

	c.Unmount()
	if listeners, _ := platform.counts(); listeners != 0 {
		t.Errorf("Expected listener detached on unmount, got %d", listeners)
	}
}

func TestController_UnmountReleasesEverything(t *testing.T) {
	platform := newFakePlatform(false)
	icons := newFakeIcons()
	c := mountPage(t, Options{Platform: platform, Icons: icons, Store: &fakeStore{}, Resume: []byte("%PDF")})

	hero := mustLookup(t, c, factory.KeyHero)
	x, y := c.ScreenRect(hero).Center()
	c.PointerAt(x, y, true)
	c.Navigate("connect")
	advance(c, 100*time.Millisecond)

	if listeners, _ := platform.counts(); listeners != 1 {
		t.Fatalf("Expected orientation listener while mounted, got %d", listeners)
	}
	if c.Bus.Listeners() == 0 || c.Engine.Len() == 0 || c.Timers.Len() == 0 {
		t.Fatal("Expected live listeners, tweens and timers before unmount")
	}
	ctx := c.Scope.Context()

	c.Unmount()

	if n := c.Bus.Listeners(); n != 0 {
		t.Errorf("Expected no bus listeners, got %d", n)
	}
	if n := c.Engine.Len(); n != 0 {
		t.Errorf("Expected no tweens, got %d", n)
	}
	if n := c.Timers.Len(); n != 0 {
		t.Errorf("Expected no timers, got %d", n)
	}
	if n := c.Scope.Pending(); n != 0 {
		t.Errorf("Expected no pending cleanups, got %d", n)
	}
	if listeners, _ := platform.counts(); listeners != 0 {
		t.Errorf("Expected orientation listener detached, got %d", listeners)
	}
	if ctx.Err() == nil {
		t.Error("Expected icon fetch context cancelled")
	}

	// A second unmount and late input are no-ops.
	top := c.ScrollTop()
	c.Unmount()
	c.ScrollBy(500)
	c.Advance(tick)
	if c.ScrollTop() != top {
		t.Errorf("Expected no scrolling after unmount, got %f", c.ScrollTop())
	}
}

func TestController_LatePermissionAnswerIsDropped(t *testing.T) {
	platform := newFakePlatform(true)
	c := mountPage(t, Options{Platform: platform})
	c.Advance(tick)
	c.Unmount()

	platform.answer <- interact.PermissionGranted
	time.Sleep(20 * time.Millisecond)
	c.Advance(tick)

	if _, ok := c.Gate.Poll(); ok {
		t.Error("Expected the answer to be discarded after unmount")
	}
	if _, listens := platform.counts(); listens != 0 {
		t.Errorf("Expected no listener attached, got %d", listens)
	}
}
