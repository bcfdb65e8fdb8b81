package engine

import (
	"time"

	"github.com/lixenwraith/seihou/input"
	"github.com/lixenwraith/seihou/vmath"
)

// TestEpoch is the start time of clocks created by NewTestGame
var TestEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestGame creates a game on the default playfield with a manual clock
// This is a test helper; it panics on configuration errors
func NewTestGame(oracle input.Oracle, listener Listener) (*Game, *ManualTimeProvider) {
	clock := NewManualTimeProvider(TestEpoch)
	g, err := NewGame(Config{
		Bounds:   vmath.Bounds{Width: 500, Height: 350},
		Input:    oracle,
		Clock:    clock,
		Listener: listener,
	})
	if err != nil {
		panic(err)
	}
	return g, clock
}

// MutateSession runs fn against the live session under the game lock
// Intended for tests and debugging tools that need to stage a frame
func (g *Game) MutateSession(fn func(s *Session)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&g.session)
	g.publish()
}
