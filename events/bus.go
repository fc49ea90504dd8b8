// Package events is the page's input bus. Every handler the controller
// installs goes through a Topic so teardown can be verified by counting
// subscribers.
package events

import "github.com/automoto/portfolio/interact"

// PointerMove is published for every element currently under the pointer.
// X and Y are viewport coordinates.
type PointerMove struct {
	Key  string
	X, Y float64
}

type PointerEnter struct {
	Key  string
	X, Y float64
}

type PointerLeave struct {
	Key string
}

// Click is published for every element under the pointer when the primary
// button goes down.
type Click struct {
	Key  string
	X, Y float64
}

// Scroll carries the new document scroll offset.
type Scroll struct {
	Top float64
}

type Resize struct {
	Width, Height float64
}

type Orientation struct {
	Sample interact.OrientationSample
}

// Topic fans a single event type out to its subscribers in subscription
// order. It is not safe for concurrent use; publish from the update loop.
type Topic[T any] struct {
	subs []*subscriber[T]
}

type subscriber[T any] struct {
	fn     func(T)
	active bool
}

// Subscribe adds fn and returns the function that removes it. Calling the
// returned function more than once is harmless.
func (t *Topic[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s := &subscriber[T]{fn: fn, active: true}
	t.subs = append(t.subs, s)
	return func() {
		if !s.active {
			return
		}
		s.active = false
		for i, cur := range t.subs {
			if cur == s {
				t.subs = append(t.subs[:i], t.subs[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers ev to a snapshot of the subscribers. Handlers removed
// while the event is in flight are skipped.
func (t *Topic[T]) Publish(ev T) {
	if len(t.subs) == 0 {
		return
	}
	snapshot := make([]*subscriber[T], len(t.subs))
	copy(snapshot, t.subs)
	for _, s := range snapshot {
		if s.active {
			s.fn(ev)
		}
	}
}

// Len is the number of live subscribers.
func (t *Topic[T]) Len() int {
	return len(t.subs)
}

// Bus groups the topics the page listens to.
type Bus struct {
	PointerMove  Topic[PointerMove]
	PointerEnter Topic[PointerEnter]
	PointerLeave Topic[PointerLeave]
	Click        Topic[Click]
	Scroll       Topic[Scroll]
	Resize       Topic[Resize]
	Orientation  Topic[Orientation]
}

func NewBus() *Bus {
	return &Bus{}
}

// Listeners counts subscribers across every topic.
func (b *Bus) Listeners() int {
	return b.PointerMove.Len() +
		b.PointerEnter.Len() +
		b.PointerLeave.Len() +
		b.Click.Len() +
		b.Scroll.Len() +
		b.Resize.Len() +
		b.Orientation.Len()
}
