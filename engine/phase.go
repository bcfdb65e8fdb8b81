package engine

import (
	"fmt"
	"sync/atomic"
)

// Phase is the top level game state
type Phase int32

const (
	PhaseLoading     Phase = iota // Simulated asset load, advances to Init after LoadingDelay
	PhaseInit                     // Session reset, then waits like Paused
	PhasePlaying                  // Simulation step runs
	PhaseHitReaction              // Player was hit; hp decremented, play frozen for HitReactionDelay
	PhasePaused                   // Waits for Confirm (resume) or Quit
	PhaseLose                     // Terminal; Confirm restarts
	PhaseWin                      // Terminal; Confirm restarts
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhaseInit:
		return "Init"
	case PhasePlaying:
		return "Playing"
	case PhaseHitReaction:
		return "HitReaction"
	case PhasePaused:
		return "Paused"
	case PhaseLose:
		return "Lose"
	case PhaseWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the phase ends a session
func (p Phase) Terminal() bool {
	return p == PhaseLose || p == PhaseWin
}

var validTransitions = map[Phase][]Phase{
	PhaseLoading:     {PhaseInit},
	PhaseInit:        {PhasePlaying},
	PhasePlaying:     {PhasePaused, PhaseHitReaction, PhaseWin},
	PhaseHitReaction: {PhasePlaying, PhaseLose},
	PhasePaused:      {PhasePlaying},
	PhaseLose:        {PhaseInit},
	PhaseWin:         {PhaseInit},
}

// CanTransition checks the transition table
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// phaseCell holds the current phase; written by the simulation goroutine, read by any
type phaseCell struct {
	v atomic.Int32
}

func (c *phaseCell) Load() Phase {
	return Phase(c.v.Load())
}

// swap stores to after validating the edge; an invalid edge is a programming error
func (c *phaseCell) swap(to Phase) Phase {
	from := c.Load()
	if !CanTransition(from, to) {
		panic(fmt.Sprintf("engine: invalid phase transition %s -> %s", from, to))
	}
	c.v.Store(int32(to))
	return from
}
