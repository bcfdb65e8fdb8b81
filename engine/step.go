package engine

import (
	"github.com/lixenwraith/seihou/component"
	"github.com/lixenwraith/seihou/input"
	"github.com/lixenwraith/seihou/parameter"
	"github.com/lixenwraith/seihou/vmath"
)

// step runs one Playing frame; each stage sees the results of the stages before it
func (g *Game) step(dt float64) {
	if g.input.Held(input.KeyPause) {
		g.transition(PhasePaused)
		return
	}

	g.movePlayer(dt)
	g.fireBoss(dt)
	g.firePlayer(dt)

	s := &g.session
	g.metrics.bulletsCulled.Add(int64(s.Bullets.StepAndCull(dt, g.bounds)))
	g.metrics.shotsCulled.Add(int64(s.Shots.StepAndCull(dt, g.bounds)))

	hit := g.collidePlayer()
	defeated := g.collideBoss()

	// A defeat landing on the same frame as a hit still wins the session
	switch {
	case defeated:
		g.transition(PhaseWin)
	case hit:
		g.transition(PhaseHitReaction)
	}
}

// movePlayer rejects any axis move that would leave the open playfield; no edge clamping
func (g *Game) movePlayer(dt float64) {
	speed := parameter.PlayerFastSpeed
	if g.input.Held(input.KeyPrecision) {
		speed = parameter.PlayerSlowSpeed
	}
	dv := speed * dt
	p := &g.session.Player

	if g.input.Held(input.KeyRight) && g.bounds.InsideX(p.X+dv) {
		p.X += dv
	}
	if g.input.Held(input.KeyLeft) && g.bounds.InsideX(p.X-dv) {
		p.X -= dv
	}
	if g.input.Held(input.KeyDown) && g.bounds.InsideY(p.Y+dv) {
		p.Y += dv
	}
	if g.input.Held(input.KeyUp) && g.bounds.InsideY(p.Y-dv) {
		p.Y -= dv
	}
}

func (g *Game) fireBoss(dt float64) {
	s := &g.session
	s.BossFireTimer += dt
	if s.BossFireTimer < parameter.BossFireInterval {
		return
	}
	for i, ring := range g.volley {
		if _, err := ring.Emit(s.Boss.X, s.Boss.Y, s.Bullets.Spawn); err != nil {
			g.log.Debug("volley ring skipped", "ring", i, "error", err)
		}
	}
	s.BossFireTimer = 0
}

// firePlayer gates shots on both the cooldown and the one-shot ready flag
func (g *Game) firePlayer(dt float64) {
	s := &g.session
	s.ShotTimer += dt
	if s.ShotTimer >= parameter.ShotCooldown {
		s.FireReady = true
	}
	if !s.FireReady || !g.input.Held(input.KeyFire) {
		return
	}

	s.FireReady = false
	s.ShotTimer = 0
	s.Shots.Spawn(component.Shot{
		X:      s.Player.X,
		Y:      s.Player.Y,
		Radius: parameter.ShotRadius,
	})
	g.listener.ShotFired()
}

// collidePlayer removes the first bullet touching the player; at most one hit per frame
func (g *Game) collidePlayer() bool {
	s := &g.session
	p := s.Player
	for i := 0; i < s.Bullets.Len(); i++ {
		b := s.Bullets.At(i)
		if vmath.CirclesOverlap(b.X, b.Y, b.Radius, p.X, p.Y, p.Radius) {
			s.Bullets.RemoveAt(i)
			return true
		}
	}
	return false
}

// collideBoss removes the first shot touching the boss and applies its damage
// Returns true when that hit exhausts the boss health
func (g *Game) collideBoss() bool {
	s := &g.session
	boss := &s.Boss
	for i := 0; i < s.Shots.Len(); i++ {
		sh := s.Shots.At(i)
		if vmath.CirclesOverlap(sh.X, sh.Y, sh.Radius, boss.X, boss.Y, boss.Radius) {
			s.Shots.RemoveAt(i)
			boss.Health -= parameter.BossDamagePerShot
			g.listener.BossHit(boss.Health)
			return boss.Defeated()
		}
	}
	return false
}
