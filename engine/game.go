package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/seihou/input"
	"github.com/lixenwraith/seihou/parameter"
	"github.com/lixenwraith/seihou/pattern"
	"github.com/lixenwraith/seihou/status"
	"github.com/lixenwraith/seihou/vmath"
)

var (
	// ErrQuit is returned by Update when the player quits from the pause screen
	ErrQuit = errors.New("engine: quit requested")

	// ErrInterrupted is returned when the context ends while a real-time delay is pending
	ErrInterrupted = errors.New("engine: timed phase interrupted")

	// ErrInvalidConfig is returned by NewGame for unusable configuration
	ErrInvalidConfig = errors.New("engine: invalid configuration")

	// ErrNegativeDelta is returned by Update for a negative frame delta
	ErrNegativeDelta = errors.New("engine: negative frame delta")
)

// Config wires the game to its collaborators
type Config struct {
	Bounds vmath.Bounds
	Input  input.Oracle

	// Optional; defaults: monotonic clock, no-op listener, discarding logger, private registry
	Clock    TimeProvider
	Listener Listener
	Logger   *slog.Logger
	Status   *status.Registry

	// StartLoading begins in the Loading phase instead of Init
	StartLoading bool
}

// Game is the frame-stepped simulation and its phase machine
// Update is called from one goroutine; Phase and Snapshot may be called from any
type Game struct {
	phase phaseCell

	input    input.Oracle
	clock    TimeProvider
	listener Listener
	log      *slog.Logger
	bounds   vmath.Bounds
	volley   []pattern.Radial

	mu      sync.RWMutex
	session Session
	frame   uint64

	// Phase bookkeeping, simulation goroutine only
	deadline     time.Time  // Loading and HitReaction expiry
	resetPending bool       // Init has not reset the session yet
	hitApplied   bool       // HitReaction already took its hit point
	confirm      input.Edge // Lose/Win restart debounce

	metrics gameMetrics
}

type gameMetrics struct {
	frames        *atomic.Int64
	bullets       *atomic.Int64
	shots         *atomic.Int64
	bulletsCulled *atomic.Int64
	shotsCulled   *atomic.Int64
	playerHP      *atomic.Int64
	bossHealth    *status.AtomicFloat
	phase         *status.AtomicString
	session       *status.AtomicString
}

// NewGame validates cfg and creates a game with a freshly reset session
func NewGame(cfg Config) (*Game, error) {
	if !cfg.Bounds.Valid() {
		return nil, fmt.Errorf("%w: playfield %vx%v", ErrInvalidConfig, cfg.Bounds.Width, cfg.Bounds.Height)
	}
	if cfg.Input == nil {
		return nil, fmt.Errorf("%w: nil input oracle", ErrInvalidConfig)
	}
	if cfg.Clock == nil {
		cfg.Clock = NewMonotonicTimeProvider()
	}
	if cfg.Listener == nil {
		cfg.Listener = NopListener{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}

	volley := pattern.BossVolley()
	for i, ring := range volley {
		if err := ring.Validate(); err != nil {
			return nil, fmt.Errorf("%w: volley ring %d: %w", ErrInvalidConfig, i, err)
		}
	}

	g := &Game{
		input:    cfg.Input,
		clock:    cfg.Clock,
		listener: cfg.Listener,
		log:      cfg.Logger,
		bounds:   cfg.Bounds,
		volley:   volley,
		session:  newSession(),
		metrics: gameMetrics{
			frames:        cfg.Status.Ints.Get(status.KeyFrames),
			bullets:       cfg.Status.Ints.Get(status.KeyBullets),
			shots:         cfg.Status.Ints.Get(status.KeyShots),
			bulletsCulled: cfg.Status.Ints.Get(status.KeyBulletsCulled),
			shotsCulled:   cfg.Status.Ints.Get(status.KeyShotsCulled),
			playerHP:      cfg.Status.Ints.Get(status.KeyPlayerHP),
			bossHealth:    cfg.Status.Floats.Get(status.KeyBossHealth),
			phase:         cfg.Status.Strings.Get(status.KeyPhase),
			session:       cfg.Status.Strings.Get(status.KeySession),
		},
	}

	g.session.reset(g.bounds)
	if cfg.StartLoading {
		g.phase.v.Store(int32(PhaseLoading))
		g.deadline = g.clock.Now().Add(parameter.LoadingDelay)
	} else {
		g.phase.v.Store(int32(PhaseInit))
		g.resetPending = true
	}
	g.publish()
	return g, nil
}

// Phase returns the current phase; safe from any goroutine
func (g *Game) Phase() Phase {
	return g.phase.Load()
}

// Bounds returns the playfield extent
func (g *Game) Bounds() vmath.Bounds {
	return g.bounds
}

// Update advances the game by dt
// Returns ErrQuit when the player quits, ErrInterrupted when ctx ends during a timed phase
func (g *Game) Update(ctx context.Context, dt time.Duration) error {
	if dt < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeDelta, dt)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.frame++
	err := g.tick(ctx, dt.Seconds())
	g.publish()
	return err
}

func (g *Game) tick(ctx context.Context, dt float64) error {
	switch g.phase.Load() {
	case PhaseLoading:
		return g.tickLoading(ctx)
	case PhaseInit:
		if g.resetPending {
			g.resetPending = false
			g.session.reset(g.bounds)
			g.log.Info("session ready", "session", g.session.ID)
		}
		return g.tickPaused()
	case PhasePlaying:
		g.step(dt)
	case PhaseHitReaction:
		return g.tickHitReaction(ctx)
	case PhasePaused:
		return g.tickPaused()
	case PhaseLose, PhaseWin:
		g.tickTerminal()
	}
	return nil
}

func (g *Game) tickLoading(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: loading: %w", ErrInterrupted, err)
	}
	if !g.clock.Now().Before(g.deadline) {
		g.transition(PhaseInit)
	}
	return nil
}

func (g *Game) tickHitReaction(ctx context.Context) error {
	if !g.hitApplied {
		g.hitApplied = true
		g.session.Player.HP--
		g.listener.PlayerHit(g.session.Player.HP)
		g.log.Debug("player hit", "session", g.session.ID, "hp", g.session.Player.HP)
		if g.session.Player.HP <= 0 {
			g.transition(PhaseLose)
			return nil
		}
		g.deadline = g.clock.Now().Add(parameter.HitReactionDelay)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: hit reaction: %w", ErrInterrupted, err)
	}
	if !g.clock.Now().Before(g.deadline) {
		g.transition(PhasePlaying)
	}
	return nil
}

// tickPaused serves both Paused and Init: Confirm resumes, Quit ends the process
func (g *Game) tickPaused() error {
	if g.input.Held(input.KeyConfirm) {
		g.transition(PhasePlaying)
		return nil
	}
	if g.input.Held(input.KeyQuit) {
		g.log.Info("quit requested", "session", g.session.ID)
		return ErrQuit
	}
	return nil
}

// tickTerminal restarts on a complete Confirm press: held, then released
func (g *Game) tickTerminal() {
	if _, released := g.confirm.Update(g.input.Held(input.KeyConfirm)); released {
		g.transition(PhaseInit)
	}
}

// transition moves to the next phase and runs its entry bookkeeping
func (g *Game) transition(to Phase) {
	from := g.phase.swap(to)

	switch to {
	case PhaseInit:
		g.resetPending = true
	case PhaseHitReaction:
		g.hitApplied = false
	case PhaseLose, PhaseWin:
		g.confirm.Reset()
		g.log.Info("session over", "session", g.session.ID, "result", to,
			"hp", g.session.Player.HP, "boss_health", g.session.Boss.Health, "frames", g.frame)
	}

	g.log.Debug("phase transition", "from", from, "to", to)
	g.listener.PhaseChanged(from, to)
}

func (g *Game) publish() {
	m := &g.metrics
	m.frames.Store(int64(g.frame))
	m.bullets.Store(int64(g.session.Bullets.Len()))
	m.shots.Store(int64(g.session.Shots.Len()))
	m.playerHP.Store(int64(g.session.Player.HP))
	m.bossHealth.Set(g.session.Boss.Health)
	m.phase.Store(g.phase.Load().String())
	m.session.Store(g.session.ID.String())
}
