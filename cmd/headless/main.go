// Command headless runs a level without a window, driven by a scripted demo
// input. Useful for soak runs and checking a level loads and plays.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/ridgerunner/assets"
	"github.com/automoto/ridgerunner/components"
	"github.com/automoto/ridgerunner/config"
	"github.com/automoto/ridgerunner/entity"
	"github.com/automoto/ridgerunner/systems"
	"github.com/automoto/ridgerunner/systems/factory"
	"github.com/yohamta/donburi"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	levelName := flag.String("level", "", "Embedded level file (empty = first level)")
	frames := flag.Int("frames", 600, "Stop after N frames (0 = run until interrupted)")
	realtime := flag.Bool("realtime", false, "Pace frames at the configured TPS")
	jsonLogs := flag.Bool("json", false, "Log as JSON instead of text")
	flag.Parse()

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, nil)
	if *jsonLogs {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	level, err := assets.LoadEmbedded(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := donburi.NewWorld()
	player := factory.BuildLevel(w, level, logger)
	frameCtx := &entity.Context{
		World: w,
		Dt:    1.0 / float64(config.C.TPS),
		Log:   logger,
	}

	var tick <-chan time.Time
	if *realtime {
		ticker := time.NewTicker(time.Second / time.Duration(config.C.TPS))
		defer ticker.Stop()
		tick = ticker.C
	}

	logger.Info("starting headless run",
		"level", level.Name,
		"frames", *frames,
		"realtime", *realtime,
		"tps", config.C.TPS,
	)

	script := demoScript()
	n := 0
	for *frames == 0 || n < *frames {
		if tick != nil {
			select {
			case <-ctx.Done():
				summarize(logger, player, n, frameCtx.Elapsed)
				return
			case <-tick:
			}
		} else if ctx.Err() != nil {
			break
		}

		if script.Done() {
			script = demoScript()
		}
		systems.Step(frameCtx, script)
		n++
	}
	summarize(logger, player, n, frameCtx.Elapsed)
}

// demoScript walks right onto the drifting platform, hops, then walks back.
func demoScript() *systems.Script {
	return systems.NewScript().
		Hold(60).
		Hold(90, config.ActionMoveRight).
		Hold(1, config.ActionMoveRight, config.ActionJump).
		Hold(45, config.ActionMoveRight).
		Hold(30).
		Hold(1, config.ActionJump).
		Hold(60).
		Hold(120, config.ActionMoveLeft)
}

func summarize(logger *slog.Logger, player *donburi.Entry, frames int, elapsed float64) {
	if !player.Valid() {
		logger.Warn("player missing at end of run", "frames", frames)
		return
	}
	body := components.Body.Get(player)
	c := components.Controller.Get(player)
	logger.Info("headless run finished",
		"frames", frames,
		"elapsed", elapsed,
		"x", body.Position.X,
		"y", body.Position.Y,
		"deaths", c.Deaths,
		"grounded", c.Grounded,
	)
}
