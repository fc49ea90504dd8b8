package lifecycle

import (
	"context"
	"errors"
	"testing"
)

func TestScope_CloseRunsDefersNewestFirst(t *testing.T) {
	s := NewScope(context.Background())
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		if err := s.Defer(func() { order = append(order, i) }); err != nil {
			t.Fatalf("Defer returned %v", err)
		}
	}
	if s.Pending() != 3 {
		t.Errorf("Expected 3 pending cleanups, got %d", s.Pending())
	}

	s.Close()

	want := []int{2, 1, 0}
	if len(order) != len(want) {
		t.Fatalf("Expected %d cleanups, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expected order %v, got %v", want, order)
			break
		}
	}
	if s.Alive() {
		t.Error("Expected scope to be closed")
	}
	if s.Context().Err() == nil {
		t.Error("Expected context to be cancelled")
	}
}

func TestScope_CloseIsIdempotent(t *testing.T) {
	s := NewScope(nil)
	calls := 0
	_ = s.Defer(func() { calls++ })
	s.Close()
	s.Close()
	if calls != 1 {
		t.Errorf("Expected cleanup to run once, ran %d times", calls)
	}
}

func TestScope_DeferAfterClose(t *testing.T) {
	s := NewScope(context.Background())
	s.Close()

	ran := false
	err := s.Defer(func() { ran = true })
	if !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
	if !ran {
		t.Error("Expected cleanup registered after close to run immediately")
	}
}
