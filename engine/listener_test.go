package engine_test

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/seihou/component"
	"github.com/lixenwraith/seihou/engine"
	enginemocks "github.com/lixenwraith/seihou/engine/mocks"
	"github.com/lixenwraith/seihou/input"
	inputmocks "github.com/lixenwraith/seihou/input/mocks"
	"github.com/lixenwraith/seihou/parameter"
)

func TestListenerNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := enginemocks.NewMockListener(ctrl)
	keys := &input.HeldSet{}
	g, clock := engine.NewTestGame(keys, listener)
	ctx := context.Background()

	gomock.InOrder(
		listener.EXPECT().PhaseChanged(engine.PhaseInit, engine.PhasePlaying),
		listener.EXPECT().ShotFired(),
		listener.EXPECT().BossHit(parameter.BossHealth-parameter.BossDamagePerShot),
		listener.EXPECT().PhaseChanged(engine.PhasePlaying, engine.PhaseHitReaction),
		listener.EXPECT().PlayerHit(parameter.PlayerHitPoints-1),
		listener.EXPECT().PhaseChanged(engine.PhaseHitReaction, engine.PhasePlaying),
	)

	keys.Press(input.KeyConfirm)
	if err := g.Update(ctx, 0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	keys.Release(input.KeyConfirm)

	keys.Press(input.KeyFire)
	if err := g.Update(ctx, 0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	keys.Release(input.KeyFire)

	g.MutateSession(func(s *engine.Session) {
		s.Shots.Clear()
		s.Shots.Spawn(component.Shot{X: s.Boss.X, Y: s.Boss.Y, Radius: parameter.ShotRadius})
	})
	if err := g.Update(ctx, 0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	g.MutateSession(func(s *engine.Session) {
		s.Bullets.Spawn(component.Bullet{X: s.Player.X, Y: s.Player.Y, Radius: 6})
	})
	for i := 0; i < 2; i++ {
		if err := g.Update(ctx, 0); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}

	clock.Advance(parameter.HitReactionDelay)
	if err := g.Update(ctx, 0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
}

func TestPauseCheckEndsFrame(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := inputmocks.NewMockOracle(ctrl)
	g, _ := engine.NewTestGame(oracle, nil)
	ctx := context.Background()

	// Any key query beyond these fails the test through the controller
	gomock.InOrder(
		oracle.EXPECT().Held(input.KeyConfirm).Return(true),
		oracle.EXPECT().Held(input.KeyPause).Return(true),
	)

	if err := g.Update(ctx, 0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := g.Update(ctx, 0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if g.Phase() != engine.PhasePaused {
		t.Errorf("Expected Paused, got %v", g.Phase())
	}
}

func TestPlayingFrameQueriesMovementKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := inputmocks.NewMockOracle(ctrl)
	g, _ := engine.NewTestGame(oracle, nil)
	ctx := context.Background()

	oracle.EXPECT().Held(input.KeyConfirm).Return(true)
	if err := g.Update(ctx, 0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	oracle.EXPECT().Held(input.KeyRight).Return(true)
	oracle.EXPECT().Held(gomock.Not(input.KeyRight)).Return(false).AnyTimes()

	if err := g.Update(ctx, parameter.FrameUpdateInterval); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if x := g.Snapshot().Player.X; x <= 250 {
		t.Errorf("Expected player to move right, got x=%v", x)
	}
}
