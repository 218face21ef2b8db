package core

import (
	"errors"
	"fmt"
)

// ErrNoSurface is returned by hosts that cannot obtain a usable drawing surface.
var ErrNoSurface = errors.New("no drawing surface")

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the playfield size and for deterministic simulation.
type RuntimeConfig struct {
	Width    float64 // Playfield width in world units
	Height   float64 // Playfield height in world units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
	Clock    Clock   // Wall clock for time-driven rules; nil means SystemClock
}

// DefaultConfig returns a RuntimeConfig sized for an 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:    80 * DefaultCellWidth,
		Height:   24 * DefaultCellHeight,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Now returns the configured clock, falling back to the system clock.
func (c RuntimeConfig) Now() Clock {
	if c.Clock == nil {
		return SystemClock{}
	}
	return c.Clock
}

// Validate checks the host-provided surface and pacing values.
func (c RuntimeConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("runtime: playfield %gx%g: %w", c.Width, c.Height, ErrNoSurface)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("runtime: tick rate must be positive, got %d", c.TickRate)
	}
	return nil
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Running  bool // Whether the simulation is advancing
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Bodies   int  // Live bodies or balls
	Slowed   int  // Bodies currently slowed by a stasis zone
}

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventNone EventKind = iota
	EventStarted
	EventZoneToggled
	EventSplit
	EventGameOver
	EventPlacementRelaxed
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventZoneToggled:
		return "zone_toggled"
	case EventSplit:
		return "split"
	case EventGameOver:
		return "game_over"
	case EventPlacementRelaxed:
		return "placement_relaxed"
	default:
		return "none"
	}
}

// Event is reported by a game so hosts can show notices, play cues and log.
type Event struct {
	Kind    EventKind
	Message string // Player-facing notice; empty if the event is silent
	Value   int    // Kind-specific: ball count after a split, final score, relaxed bodies
	On      bool   // Zone state after a toggle
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
