package motion

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tween drives a set of props on one target. Start values are captured when
// the delay runs out, not when the tween is created.
type tween struct {
	target *Transform
	props  PropSet
	vars   Vars
	opts   Options
	easing ease.TweenFunc

	delay    time.Duration
	started  bool
	elapsed  time.Duration
	tracks   [PropShadow]*gween.Tween
	progress *gween.Tween
	from     Shadow
}

func (tw *tween) begin() {
	tw.started = true
	secs := float32(tw.opts.Duration.Seconds())
	for p := PropX; p < PropShadow; p++ {
		if !tw.props.Has(p) {
			continue
		}
		tw.tracks[p] = gween.New(float32(tw.target.get(p)), float32(tw.vars.Props[p]), secs, tw.easing)
	}
	if tw.props.Has(PropShadow) {
		tw.from = tw.target.Shadow
		tw.progress = gween.New(0, 1, secs, tw.easing)
	}
}

// step advances a started tween and reports whether it reached the end.
func (tw *tween) step(dt time.Duration) bool {
	tw.elapsed += dt
	secs := float32(dt.Seconds())
	if tw.elapsed >= tw.opts.Duration {
		tw.finish()
		return true
	}
	for p := PropX; p < PropShadow; p++ {
		if !tw.props.Has(p) || tw.tracks[p] == nil {
			continue
		}
		v, _ := tw.tracks[p].Update(secs)
		tw.target.set(p, float64(v))
	}
	if tw.props.Has(PropShadow) && tw.progress != nil {
		k, _ := tw.progress.Update(secs)
		tw.target.Shadow = LerpShadow(tw.from, *tw.vars.Shadow, float64(k))
	}
	return false
}

// finish writes the exact end values for the props this tween still owns.
func (tw *tween) finish() {
	apply(tw.target, tw.vars, tw.props)
}

func apply(t *Transform, v Vars, props PropSet) {
	for p, val := range v.Props {
		if props.Has(p) {
			t.set(p, val)
		}
	}
	if v.Shadow != nil && props.Has(PropShadow) {
		t.Shadow = *v.Shadow
	}
}

// Engine owns every running tween. It is driven by Update from the frame
// loop and is not safe for concurrent use.
type Engine struct {
	tweens []*tween
}

func NewEngine() *Engine {
	return &Engine{}
}

// AnimateTo tweens the props named in v from their current values. Any
// running tween on the same target gives up the overlapping props; a tween
// left with no props is dropped without calling its OnComplete. A zero
// duration and delay applies v immediately.
func (e *Engine) AnimateTo(target *Transform, v Vars, o Options) {
	if target == nil {
		return
	}
	props := v.set()
	if props.Empty() {
		return
	}
	e.overwrite(target, props)

	if o.Duration <= 0 && o.Delay <= 0 {
		apply(target, v, props)
		if o.OnComplete != nil {
			o.OnComplete()
		}
		return
	}
	e.tweens = append(e.tweens, &tween{
		target: target,
		props:  props,
		vars:   v,
		opts:   o,
		easing: lookupEase(o.Ease),
		delay:  o.Delay,
	})
}

// Set applies v immediately and cancels running tweens on those props.
func (e *Engine) Set(target *Transform, v Vars) {
	if target == nil {
		return
	}
	props := v.set()
	e.overwrite(target, props)
	apply(target, v, props)
}

func (e *Engine) overwrite(target *Transform, props PropSet) {
	for _, tw := range e.tweens {
		if tw.target == target {
			tw.props = tw.props.Without(props)
		}
	}
}

// Update advances every tween by dt. Completion callbacks run after the
// frame's values are written, so a callback may start new tweens.
func (e *Engine) Update(dt time.Duration) {
	if len(e.tweens) == 0 {
		return
	}
	snapshot := make([]*tween, len(e.tweens))
	copy(snapshot, e.tweens)

	var completed []*tween
	for _, tw := range snapshot {
		if tw.props.Empty() {
			continue
		}
		step := dt
		if tw.delay > 0 {
			tw.delay -= dt
			if tw.delay > 0 {
				continue
			}
			step = -tw.delay
			tw.delay = 0
		}
		if !tw.started {
			tw.begin()
		}
		if tw.step(step) {
			completed = append(completed, tw)
			tw.props = 0
		}
	}

	e.compact()
	for _, tw := range completed {
		if tw.opts.OnComplete != nil {
			tw.opts.OnComplete()
		}
	}
}

// Kill drops every tween on target without completing it.
func (e *Engine) Kill(target *Transform) {
	for _, tw := range e.tweens {
		if tw.target == target {
			tw.props = 0
		}
	}
	e.compact()
}

// KillAll drops every tween.
func (e *Engine) KillAll() {
	for i := range e.tweens {
		e.tweens[i] = nil
	}
	e.tweens = e.tweens[:0]
}

func (e *Engine) compact() {
	live := e.tweens[:0]
	for _, tw := range e.tweens {
		if !tw.props.Empty() {
			live = append(live, tw)
		}
	}
	for i := len(live); i < len(e.tweens); i++ {
		e.tweens[i] = nil
	}
	e.tweens = live
}

// Active is the number of live tweens on target.
func (e *Engine) Active(target *Transform) int {
	n := 0
	for _, tw := range e.tweens {
		if tw.target == target && !tw.props.Empty() {
			n++
		}
	}
	return n
}

// Animating reports whether prop p of target is owned by a live tween.
func (e *Engine) Animating(target *Transform, p Prop) bool {
	for _, tw := range e.tweens {
		if tw.target == target && tw.props.Has(p) {
			return true
		}
	}
	return false
}

// Len is the number of live tweens.
func (e *Engine) Len() int {
	n := 0
	for _, tw := range e.tweens {
		if !tw.props.Empty() {
			n++
		}
	}
	return n
}
