package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/seihou/audio"
	"github.com/lixenwraith/seihou/engine"
	"github.com/lixenwraith/seihou/input"
	"github.com/lixenwraith/seihou/parameter"
	"github.com/lixenwraith/seihou/render"
	"github.com/lixenwraith/seihou/status"
	"github.com/lixenwraith/seihou/vmath"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/seihou.log")
	keysFlag   = flag.String("keys", "", "TOML key binding file")
	widthFlag  = flag.Float64("width", parameter.PlayfieldWidth, "Playfield width in world units")
	heightFlag = flag.Float64("height", parameter.PlayfieldHeight, "Playfield height in world units")
	tpsFlag    = flag.Int("tps", parameter.TicksPerSecond, "Simulation ticks per second")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if *tpsFlag <= 0 {
		fmt.Fprintf(os.Stderr, "seihou: -tps must be positive, got %d\n", *tpsFlag)
		return 2
	}

	bindings, err := input.LoadBindingsFile(*keysFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seihou: %v\n", err)
		return 2
	}

	reg := status.NewRegistry()
	clock := engine.NewMonotonicTimeProvider()
	keys := input.NewTerminalKeys(bindings, clock)

	// Audio is optional; the game runs silent when the speaker is unavailable
	audioCfg := audio.LoadAudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sounds := audio.NewSoundManager(audioCfg, logger)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio unavailable", "error", err)
	} else {
		defer sounds.Cleanup()
		reg.Bools.Get(status.KeyAudio).Store(true)
	}

	game, err := engine.NewGame(engine.Config{
		Bounds:       vmath.Bounds{Width: *widthFlag, Height: *heightFlag},
		Input:        keys,
		Clock:        clock,
		Listener:     sounds,
		Logger:       logger,
		Status:       reg,
		StartLoading: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "seihou: %v\n", err)
		return 2
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seihou: terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "seihou: terminal init: %v\n", err)
		return 1
	}
	defer crashGuard(screen, "main")
	screen.HideCursor()

	d := &driver{
		screen:   screen,
		game:     game,
		keys:     keys,
		renderer: render.NewTerminalRenderer(screen, reg),
		clock:    clock,
		interval: time.Second / time.Duration(*tpsFlag),
		log:      logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("game started", "tps", *tpsFlag, "width", *widthFlag, "height", *heightFlag)
	err = d.run(ctx)
	screen.Fini()

	if err == nil || errors.Is(err, engine.ErrQuit) {
		logger.Info("game ended")
		return 0
	}
	logger.Error("game stopped", "error", err)
	fmt.Fprintf(os.Stderr, "seihou: %v\n", err)
	return 1
}
