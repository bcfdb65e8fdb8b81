package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/seihou/engine"
	"github.com/lixenwraith/seihou/input"
	"github.com/lixenwraith/seihou/parameter"
	"github.com/lixenwraith/seihou/render"
)

var errScreenClosed = errors.New("screen closed")

// driver owns the two long-running goroutines: terminal event polling and the frame loop
// Simulation and rendering are sequenced on the frame goroutine
type driver struct {
	screen   tcell.Screen
	game     *engine.Game
	keys     *input.TerminalKeys
	renderer *render.TerminalRenderer
	clock    engine.TimeProvider
	interval time.Duration
	log      *slog.Logger
}

// run blocks until ctx ends, the player quits or the game fails
func (d *driver) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	resized := make(chan struct{}, 1)

	g.Go(func() error {
		defer crashGuard(d.screen, "event poller")
		return d.pollEvents(ctx, resized)
	})
	g.Go(func() error {
		defer crashGuard(d.screen, "frame loop")
		// Wake the poller out of PollEvent
		defer d.screen.PostEvent(tcell.NewEventInterrupt(nil))
		return d.frameLoop(ctx, resized)
	})

	return g.Wait()
}

func (d *driver) pollEvents(ctx context.Context, resized chan<- struct{}) error {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return errScreenClosed
		}
		if ctx.Err() != nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			select {
			case resized <- struct{}{}:
			default:
			}
		case *tcell.EventKey:
			d.keys.HandleEvent(ev)
		}
	}
}

func (d *driver) frameLoop(ctx context.Context, resized <-chan struct{}) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	var snap engine.Snapshot
	last := d.clock.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-resized:
			w, h := d.screen.Size()
			d.renderer.Resize(w, h)
			d.log.Debug("screen resized", "width", w, "height", h)
			d.keys.ReleaseAll()
			d.screen.Sync()

		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			now := d.clock.Now()
			dt := min(now.Sub(last), parameter.MaxFrameDelta)
			last = now

			if err := d.tick(ctx, dt, &snap); err != nil {
				return err
			}
		}
	}
}

// tick advances and draws one frame
// A timed phase cut short by shutdown is a clean stop, not a failure
func (d *driver) tick(ctx context.Context, dt time.Duration, snap *engine.Snapshot) error {
	if err := d.game.Update(ctx, dt); err != nil {
		if errors.Is(err, engine.ErrInterrupted) && ctx.Err() != nil {
			d.log.Debug("frame interrupted by shutdown", "phase", d.game.Phase())
			return nil
		}
		return err
	}
	d.game.SnapshotInto(snap)
	d.renderer.RenderFrame(snap)
	return nil
}
