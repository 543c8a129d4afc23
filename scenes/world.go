package scenes

import (
	"image/color"
	"log/slog"
	"sync"

	"github.com/automoto/ridgerunner/assets"
	cfg "github.com/automoto/ridgerunner/config"
	"github.com/automoto/ridgerunner/entity"
	"github.com/automoto/ridgerunner/render"
	"github.com/automoto/ridgerunner/systems"
	"github.com/automoto/ridgerunner/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerWorld ecs.LayerID = iota
	layerHUD
)

type PlatformerScene struct {
	ecs     *ecs.ECS
	ctx     *entity.Context
	level   *assets.Level
	source  systems.InputSource
	watcher *cfg.Watcher
	log     *slog.Logger
	once    sync.Once
	quit    bool
}

// NewPlatformerScene creates a scene for level. watcher may be nil.
func NewPlatformerScene(level *assets.Level, source systems.InputSource, watcher *cfg.Watcher, log *slog.Logger) *PlatformerScene {
	return &PlatformerScene{
		level:   level,
		source:  source,
		watcher: watcher,
		log:     log,
	}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)

	// Config edits land between frames, never mid-pipeline
	ps.reloadConfig()

	ps.ecs.Update()
	if ps.quit {
		return ebiten.Termination
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(ps.step)

	ecs.AddRenderer(layerWorld, drawWorld)
	ecs.AddRenderer(layerHUD, drawHUD)
	ecs.AddRenderer(layerHUD, drawDebug)
	ecs.AddRenderer(layerHUD, drawPause)

	ps.ecs = ecs
	ps.ctx = &entity.Context{
		World: ecs.World,
		Dt:    1.0 / float64(cfg.C.TPS),
		Log:   ps.log,
	}

	factory.BuildLevel(ecs.World, ps.level, ps.log)

	// Snap camera to the spawn to prevent panning from (0,0)
	systems.UpdateCamera(ecs.World)
}

func (ps *PlatformerScene) step(e *ecs.ECS) {
	systems.Step(ps.ctx, ps.source)
	if ps.ctx.Input != nil && ps.ctx.Input.Pressed(cfg.ActionQuit) {
		ps.quit = true
	}
}

func (ps *PlatformerScene) reloadConfig() {
	if ps.watcher == nil || !ps.watcher.Changed() {
		return
	}
	if err := cfg.Load(ps.watcher.Path()); err != nil {
		ps.log.Warn("config reload failed", "path", ps.watcher.Path(), "err", err)
		return
	}
	ps.ctx.Dt = 1.0 / float64(cfg.C.TPS)
	ebiten.SetTPS(cfg.C.TPS)
	factory.ApplyConfig(ps.ecs.World)
	ps.log.Info("config reloaded", "path", ps.watcher.Path())
}

func drawWorld(e *ecs.ECS, screen *ebiten.Image) {
	systems.DrawEntities(e.World, &render.Screen{Target: screen})
}

func drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	render.DrawHUD(e.World, screen)
}

func drawDebug(e *ecs.ECS, screen *ebiten.Image) {
	render.DrawDebug(e.World, screen)
}

func drawPause(e *ecs.ECS, screen *ebiten.Image) {
	render.DrawPause(e.World, screen)
}
