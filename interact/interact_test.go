package interact

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/automoto/portfolio/motion"
)

func TestNormalizePointer(t *testing.T) {
	r := Rect{X: 100, Y: 50, W: 200, H: 100}
	tests := []struct {
		name   string
		px, py float64
		nx, ny float64
	}{
		{"center", 200, 100, 0, 0},
		{"top left", 100, 50, -0.5, -0.5},
		{"three quarters", 250, 75, 0.25, -0.25},
		{"outside clamps", 900, -400, 0.5, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nx, ny, ok := NormalizePointer(r, tt.px, tt.py)
			if !ok {
				t.Fatal("Expected ok for non-empty rect")
			}
			if math.Abs(nx-tt.nx) > 1e-9 || math.Abs(ny-tt.ny) > 1e-9 {
				t.Errorf("Expected (%f, %f), got (%f, %f)", tt.nx, tt.ny, nx, ny)
			}
		})
	}

	if _, _, ok := NormalizePointer(Rect{W: 0, H: 10}, 0, 0); ok {
		t.Error("Expected empty rect to be rejected")
	}
}

func TestHeroPointerTilt(t *testing.T) {
	hero := TiltProfile{RotateY: 15, RotateX: 15}
	nx, ny, _ := NormalizePointer(Rect{W: 400, H: 400}, 300, 100)
	v := hero.Vars(nx, ny)
	if v.Props[motion.PropRotateY] != 3.75 || v.Props[motion.PropRotateX] != 3.75 {
		t.Errorf("Expected rotationY=3.75 rotationX=3.75, got %v", v.Props)
	}
	if _, ok := v.Props[motion.PropX]; ok {
		t.Error("Expected no x channel for a rotation-only profile")
	}
}

func TestProjectTiltIncludesShift(t *testing.T) {
	card := TiltProfile{RotateY: 6, RotateX: 4, ShiftX: 8, ShiftY: 6}
	v := card.Vars(0.5, -0.5)
	want := map[motion.Prop]float64{
		motion.PropX:       4,
		motion.PropY:       -3,
		motion.PropRotateY: 3,
		motion.PropRotateX: 2,
	}
	for p, w := range want {
		if v.Props[p] != w {
			t.Errorf("Expected %s=%f, got %f", p, w, v.Props[p])
		}
	}
	for p, val := range card.Neutral().Props {
		if val != 0 {
			t.Errorf("Expected neutral %s=0, got %f", p, val)
		}
	}
}

func TestNormalizeOrientation(t *testing.T) {
	tests := []struct {
		name        string
		beta, gamma float64
		nx, ny      float64
	}{
		{"upright", 90, 0, 0, 0},
		{"tilted right", 90, 45, 0.5, 0},
		{"flat on table", 0, 0, 0, -1},
		{"clamped", 270, -180, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nx, ny, ok := NormalizeOrientation(Angles(tt.beta, tt.gamma))
			if !ok {
				t.Fatal("Expected complete sample to normalize")
			}
			if nx != tt.nx || ny != tt.ny {
				t.Errorf("Expected (%f, %f), got (%f, %f)", tt.nx, tt.ny, nx, ny)
			}
		})
	}

	beta := 10.0
	if _, _, ok := NormalizeOrientation(OrientationSample{Beta: &beta}); ok {
		t.Error("Expected sample missing gamma to be ignored")
	}
}

type fakePlatform struct {
	mu       sync.Mutex
	hasAPI   bool
	answer   chan PermissionState
	requests int
}

func (f *fakePlatform) HasOrientationPermissionAPI() bool { return f.hasAPI }

func (f *fakePlatform) RequestOrientationPermission(ctx context.Context) (PermissionState, error) {
	f.mu.Lock()
	f.requests++
	f.mu.Unlock()
	select {
	case s := <-f.answer:
		return s, nil
	case <-ctx.Done():
		return PermissionDenied, ctx.Err()
	}
}

func (f *fakePlatform) ListenOrientation(func(OrientationSample)) func() { return func() {} }

func (f *fakePlatform) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

type alive struct {
	mu sync.Mutex
	ok bool
}

func (a *alive) Alive() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ok
}

func (a *alive) kill() {
	a.mu.Lock()
	a.ok = false
	a.mu.Unlock()
}

func pollUntil(t *testing.T, g *PermissionGate) PermissionState {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s, ok := g.Poll(); ok {
			return s
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("Timed out waiting for permission answer")
	return PermissionUnknown
}

func TestPermissionGate_NoAPIIsGranted(t *testing.T) {
	p := &fakePlatform{}
	g := NewPermissionGate(p, &alive{ok: true})
	g.Request(context.Background())

	if s := pollUntil(t, g); s != PermissionGranted {
		t.Errorf("Expected granted, got %s", s)
	}
	if p.count() != 0 {
		t.Errorf("Expected no prompt without a permission API, got %d", p.count())
	}
}

func TestPermissionGate_RequestsOnce(t *testing.T) {
	p := &fakePlatform{hasAPI: true, answer: make(chan PermissionState, 1)}
	g := NewPermissionGate(p, &alive{ok: true})
	if g.Requested() {
		t.Fatal("Expected a fresh gate to be unrequested")
	}
	g.Request(context.Background())
	g.Request(context.Background())
	if !g.Requested() {
		t.Error("Expected gate to be requested")
	}

	p.answer <- PermissionGranted
	if s := pollUntil(t, g); s != PermissionGranted {
		t.Errorf("Expected granted, got %s", s)
	}
	if _, ok := g.Poll(); ok {
		t.Error("Expected answer to be reported only once")
	}
	if p.count() != 1 {
		t.Errorf("Expected one request, got %d", p.count())
	}
}

func TestPermissionGate_DeniedAnswer(t *testing.T) {
	p := &fakePlatform{hasAPI: true, answer: make(chan PermissionState, 1)}
	g := NewPermissionGate(p, &alive{ok: true})
	g.Request(context.Background())
	p.answer <- PermissionUnknown
	if s := pollUntil(t, g); s != PermissionDenied {
		t.Errorf("Expected anything but granted to read as denied, got %s", s)
	}
}

func TestPermissionGate_AnswerAfterUnmountIsDropped(t *testing.T) {
	p := &fakePlatform{hasAPI: true, answer: make(chan PermissionState, 1)}
	mount := &alive{ok: true}
	g := NewPermissionGate(p, mount)
	g.Request(context.Background())

	mount.kill()
	p.answer <- PermissionGranted

	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) {
		if _, ok := g.Poll(); ok {
			t.Fatal("Expected late answer to be discarded")
		}
		time.Sleep(time.Millisecond)
	}
	if g.State() != PermissionUnknown {
		t.Errorf("Expected state to stay unknown, got %s", g.State())
	}
}
