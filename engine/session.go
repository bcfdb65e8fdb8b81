package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/seihou/component"
	"github.com/lixenwraith/seihou/parameter"
	"github.com/lixenwraith/seihou/vmath"
)

// Session is the mutable state of one play-through, owned by the simulation goroutine
type Session struct {
	ID uuid.UUID

	Player component.Player
	Boss   component.Boss

	Bullets *BulletStore
	Shots   *ShotStore

	// Cooldown accumulators in seconds
	BossFireTimer float64
	ShotTimer     float64

	// FireReady is re-armed by ShotTimer and consumed by exactly one shot
	FireReady bool
}

func newSession() Session {
	return Session{
		Bullets: NewBulletStore(parameter.InitialBulletCapacity),
		Shots:   NewShotStore(parameter.InitialShotCapacity, parameter.ShotSpeed),
	}
}

// reset restores every documented default and empties both stores
func (s *Session) reset(bounds vmath.Bounds) {
	s.ID = uuid.New()

	s.Player = component.Player{
		X:      bounds.Width / 2,
		Y:      bounds.Height - parameter.PlayerSpawnBottomOffset,
		Radius: parameter.PlayerRadius,
		HP:     parameter.PlayerHitPoints,
	}
	s.Boss = component.Boss{
		X:      bounds.Width / 2,
		Y:      parameter.BossSpawnY,
		Radius: parameter.PlayerRadius,
		Health: parameter.BossHealth,
	}

	s.BossFireTimer = 0
	s.ShotTimer = 0
	s.FireReady = true

	s.Bullets.Clear()
	s.Shots.Clear()
}
