package motion

import (
	"sync"

	"github.com/tanema/gween/ease"
)

var (
	easesMu sync.RWMutex
	eases   = map[string]ease.TweenFunc{}

	standardOnce sync.Once
)

// RegisterEase makes fn available under name for Options.Ease.
func RegisterEase(name string, fn ease.TweenFunc) {
	easesMu.Lock()
	defer easesMu.Unlock()
	eases[name] = fn
}

// RegisterStandardEases installs the curve names used by the page.
func RegisterStandardEases() {
	standardOnce.Do(func() {
		RegisterEase("none", ease.Linear)
		RegisterEase("linear", ease.Linear)
		RegisterEase("power1.out", ease.OutQuad)
		RegisterEase("power2.out", ease.OutCubic)
		RegisterEase("power3.out", ease.OutQuart)
		RegisterEase("power1.inOut", ease.InOutQuad)
		RegisterEase("power2.inOut", ease.InOutCubic)
		RegisterEase("sine.inOut", ease.InOutSine)
	})
}

// lookupEase falls back to linear for unknown names.
func lookupEase(name string) ease.TweenFunc {
	easesMu.RLock()
	fn, ok := eases[name]
	easesMu.RUnlock()
	if !ok {
		return ease.Linear
	}
	return fn
}

// EaseAt evaluates the named curve at normalized time t in [0,1].
func EaseAt(name string, t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return float64(lookupEase(name)(float32(t), 0, 1, 1))
}
