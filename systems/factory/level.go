package factory

import (
	"log/slog"

	"github.com/automoto/ridgerunner/archetypes"
	"github.com/automoto/ridgerunner/assets"
	"github.com/automoto/ridgerunner/components"
	cfg "github.com/automoto/ridgerunner/config"
	"github.com/automoto/ridgerunner/entity"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateLevel records the loaded level's extent.
func CreateLevel(w donburi.World, level *assets.Level) *donburi.Entry {
	e := archetypes.Level.Spawn(w)
	components.Level.SetValue(e, components.LevelData{
		Name:   level.Name,
		Width:  level.Width,
		Height: level.Height,
	})
	return e
}

// CreateBackdrop spawns the entity that clears the screen. It has an empty
// Body and is never solid.
func CreateBackdrop(w donburi.World) *donburi.Entry {
	backdrop := archetypes.Backdrop.Spawn(w)
	entity.Init(backdrop, components.BodyData{})
	entity.Add(backdrop, entity.Background, components.BackgroundData{Color: cfg.Colors.Background})
	return backdrop
}

// BuildLevel creates every singleton and entity for a level. The backdrop is
// first and the player last, so moving platforms have already moved when the
// player reads their position.
func BuildLevel(w donburi.World, level *assets.Level, log *slog.Logger) *donburi.Entry {
	CreateScene(w)
	CreateInput(w)
	CreateLevel(w, level)
	cell := level.TileSize
	if cell <= 0 {
		cell = 16
	}
	CreateSpace(w, int(level.Width), int(level.Height), cell, cell)
	CreateCamera(w)
	CreateBackdrop(w)

	for _, r := range level.Solids {
		CreateSolid(w, r)
	}
	for _, p := range level.Platforms {
		CreatePlatform(w, p)
	}
	for _, h := range level.Hazards {
		CreateHazard(w, h)
	}
	for _, en := range level.Enemies {
		CreateEnemy(w, en)
	}

	spawn := math.NewVec2(level.Spawn.X, level.Spawn.Y)
	player := CreatePlayer(w, spawn, level.Height+cfg.Player.DeathMargin)

	if log != nil {
		log.Info("level built",
			"level", level.Name,
			"solids", len(level.Solids),
			"platforms", len(level.Platforms),
			"hazards", len(level.Hazards),
			"enemies", len(level.Enemies),
		)
	}
	return player
}

// ApplyConfig pushes reloaded tunables onto a built level: the player's
// controller, the camera and falling bodies. Spawn points, patrol bounds and
// platform paths keep the values they were built with.
func ApplyConfig(w donburi.World) {
	if scene, ok := components.Scene.First(w); ok {
		if player := components.Scene.Get(scene).Player; player != donburi.Null && w.Valid(player) {
			ApplyPlayerConfig(w.Entry(player))
		}
	}
	ApplyCameraConfig(w)
	ApplyPhysicsConfig(w)
}
