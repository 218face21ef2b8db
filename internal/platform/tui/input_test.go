package tui

import (
	"testing"

	"github.com/vovakirdan/stasis-arcade/internal/core"
)

func TestHeldDirectionExpires(t *testing.T) {
	h := newHeldInput(3)
	h.Press(core.ActionLeft)

	for i := 0; i < 3; i++ {
		if !h.Next().Has(core.ActionLeft) {
			t.Fatalf("tick %d: left should still be held", i)
		}
	}
	if h.Next().Has(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestRepeatedPressExtendsHold(t *testing.T) {
	h := newHeldInput(2)
	h.Press(core.ActionUp)
	h.Next()
	h.Press(core.ActionUp)
	h.Next()
	if !h.Next().Has(core.ActionUp) {
		t.Error("auto-repeat should keep the direction held")
	}
}

func TestOppositeDirectionReleases(t *testing.T) {
	h := newHeldInput(5)
	h.Press(core.ActionLeft)
	h.Press(core.ActionUp)
	h.Press(core.ActionRight)

	d := h.Next().Directions()
	if d.Left || !d.Right || !d.Up {
		t.Errorf("directions = %+v, want right and up", d)
	}
}

func TestOneShotActions(t *testing.T) {
	h := newHeldInput(0)
	if h.holdTicks != DefaultHoldTicks {
		t.Errorf("holdTicks = %d, want default %d", h.holdTicks, DefaultHoldTicks)
	}

	h.Press(core.ActionToggle)
	h.Press(core.ActionNone)
	if in := h.Next(); !in.Has(core.ActionToggle) || in.Has(core.ActionNone) {
		t.Errorf("first frame = %v", in.Actions)
	}
	if h.Next().Has(core.ActionToggle) {
		t.Error("one-shot actions must fire once")
	}
}

func TestRelease(t *testing.T) {
	h := newHeldInput(10)
	h.Press(core.ActionDown)
	h.Press(core.ActionPause)
	h.Release()

	if in := h.Next(); len(in.Actions) != 0 {
		t.Errorf("frame after release = %v", in.Actions)
	}
}
