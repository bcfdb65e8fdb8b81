package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/seihou/component"
	"github.com/lixenwraith/seihou/vmath"
)

// Snapshot is a read-only copy of everything the renderer draws
type Snapshot struct {
	Phase     Phase
	SessionID uuid.UUID
	Frame     uint64
	Bounds    vmath.Bounds

	Player  component.Player
	Boss    component.Boss
	Bullets []component.Bullet
	Shots   []component.Shot
}

// Snapshot returns a fresh copy of the current frame
func (g *Game) Snapshot() Snapshot {
	var s Snapshot
	g.SnapshotInto(&s)
	return s
}

// SnapshotInto copies the current frame into dst, reusing its slices
func (g *Game) SnapshotInto(dst *Snapshot) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	dst.Phase = g.phase.Load()
	dst.SessionID = g.session.ID
	dst.Frame = g.frame
	dst.Bounds = g.bounds
	dst.Player = g.session.Player
	dst.Boss = g.session.Boss
	dst.Bullets = g.session.Bullets.Snapshot(dst.Bullets)
	dst.Shots = g.session.Shots.Snapshot(dst.Shots)
}
