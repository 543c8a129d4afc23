package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/automoto/ridgerunner/assets"
	"github.com/automoto/ridgerunner/config"
	"github.com/automoto/ridgerunner/fonts"
	"github.com/automoto/ridgerunner/input"
	"github.com/automoto/ridgerunner/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	watch := flag.Bool("watch", false, "Reload -config when the file changes")
	debug := flag.Bool("debug", false, "Outline bodies and show player state")
	jsonLogs := flag.Bool("json", false, "Log as JSON instead of text")
	levelName := flag.String("level", "", "Embedded level file (empty = first level)")
	flag.Parse()

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, nil)
	if *jsonLogs {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	config.Debug.DrawBounds = *debug

	var watcher *config.Watcher
	if *watch {
		if *configPath == "" {
			log.Fatal("-watch requires -config")
		}
		w, err := config.Watch(*configPath)
		if err != nil {
			log.Fatalf("Failed to watch config: %v", err)
		}
		defer w.Close()
		go func() {
			for err := range w.Errors {
				logger.Warn("config watcher error", "err", err)
			}
		}()
		watcher = w
	}

	level, err := assets.LoadEmbedded(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	fonts.LoadDefaults()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(level.Title)
	ebiten.SetTPS(config.C.TPS)

	scene := scenes.NewPlatformerScene(level, input.NewKeyboard(), watcher, logger)
	logger.Info("starting", "level", level.Name, "tps", config.C.TPS)
	if err := ebiten.RunGame(NewGame(scene)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
