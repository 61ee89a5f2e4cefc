package core

import (
	"testing"
	"time"
)

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Set(ActionNone)
	f.Set(ActionPlace)

	if len(f.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(f.Actions))
	}
	if f.Actions[0] != ActionPause || f.Actions[1] != ActionPlace {
		t.Errorf("actions out of order: %v", f.Actions)
	}

	f.Clear()
	if len(f.Actions) != 0 {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionPlace.String() != "Place" {
		t.Errorf("ActionPlace.String() = %q", ActionPlace.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}

func TestManualClock(t *testing.T) {
	start := time.Unix(1000, 0)
	c := &ManualClock{T: start}
	c.Advance(1500 * time.Millisecond)

	if got := c.Now().Sub(start); got != 1500*time.Millisecond {
		t.Errorf("Advance moved clock by %v, expected 1.5s", got)
	}
}
