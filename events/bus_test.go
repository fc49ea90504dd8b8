package events

import "testing"

func TestTopic_SubscribeAndUnsubscribe(t *testing.T) {
	var topic Topic[Scroll]
	var got []float64
	unsub := topic.Subscribe(func(ev Scroll) { got = append(got, ev.Top) })

	topic.Publish(Scroll{Top: 10})
	unsub()
	unsub()
	topic.Publish(Scroll{Top: 20})

	if len(got) != 1 || got[0] != 10 {
		t.Errorf("Expected [10], got %v", got)
	}
	if topic.Len() != 0 {
		t.Errorf("Expected no subscribers, got %d", topic.Len())
	}
}

func TestTopic_SameClosureSubscribedTwice(t *testing.T) {
	var topic Topic[Click]
	calls := 0
	handler := func(Click) { calls++ }
	first := topic.Subscribe(handler)
	topic.Subscribe(handler)

	first()
	topic.Publish(Click{Key: "social/0"})

	if calls != 1 {
		t.Errorf("Expected remaining subscription to fire once, got %d", calls)
	}
}

func TestTopic_UnsubscribeDuringPublish(t *testing.T) {
	var topic Topic[PointerLeave]
	secondCalled := false
	var unsubSecond func()
	topic.Subscribe(func(PointerLeave) { unsubSecond() })
	unsubSecond = topic.Subscribe(func(PointerLeave) { secondCalled = true })

	topic.Publish(PointerLeave{Key: "hero"})

	if secondCalled {
		t.Error("Expected handler removed mid-publish to be skipped")
	}
	if topic.Len() != 1 {
		t.Errorf("Expected 1 subscriber, got %d", topic.Len())
	}
}

func TestBus_Listeners(t *testing.T) {
	bus := NewBus()
	unsubs := []func(){
		bus.PointerMove.Subscribe(func(PointerMove) {}),
		bus.Scroll.Subscribe(func(Scroll) {}),
		bus.Resize.Subscribe(func(Resize) {}),
		bus.Orientation.Subscribe(func(Orientation) {}),
	}
	if bus.Listeners() != 4 {
		t.Errorf("Expected 4 listeners, got %d", bus.Listeners())
	}
	for _, u := range unsubs {
		u()
	}
	if bus.Listeners() != 0 {
		t.Errorf("Expected 0 listeners after unsubscribe, got %d", bus.Listeners())
	}
}
