package tui

import "github.com/vovakirdan/stasis-arcade/internal/core"

// DefaultHoldTicks is how long a direction stays pressed after its last key event.
const DefaultHoldTicks = 6

// heldInput turns terminal key presses into per-tick input.
// Terminals report presses and auto-repeat but never releases, so each
// direction stays held for a few ticks after its last press.
type heldInput struct {
	holdTicks int
	held      map[core.Action]int // Remaining ticks per held direction
	pending   core.InputFrame     // One-shot actions since the last tick
}

func newHeldInput(holdTicks int) *heldInput {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &heldInput{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
		pending:   core.NewInputFrame(),
	}
}

func isDirection(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// Press records a key press. Pressing a direction releases its opposite.
func (h *heldInput) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if isDirection(a) {
		h.held[a] = h.holdTicks
		delete(h.held, opposite(a))
		return
	}
	h.pending.Set(a)
}

// Next returns the input for the coming tick and ages the held directions.
func (h *heldInput) Next() core.InputFrame {
	frame := h.pending.Clone()
	h.pending.Clear()

	for a, left := range h.held {
		frame.Set(a)
		if left <= 1 {
			delete(h.held, a)
		} else {
			h.held[a] = left - 1
		}
	}
	return frame
}

// Release drops every held direction and pending action.
func (h *heldInput) Release() {
	clear(h.held)
	h.pending.Clear()
}
