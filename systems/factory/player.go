package factory

import (
	"github.com/automoto/ridgerunner/archetypes"
	"github.com/automoto/ridgerunner/components"
	cfg "github.com/automoto/ridgerunner/config"
	"github.com/automoto/ridgerunner/entity"
	"github.com/automoto/ridgerunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the controllable player at spawn. Falling below
// deathHeight kills it.
func CreatePlayer(w donburi.World, spawn math.Vec2, deathHeight float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	entity.Init(player, components.BodyData{
		Position: spawn,
		Size:     math.NewVec2(cfg.Player.Width, cfg.Player.Height),
		Previous: spawn,
	})

	entity.Add(player, entity.Controller, components.ControllerData{
		MoveSpeed:        cfg.Player.MoveSpeed,
		JumpImpulse:      cfg.Player.JumpImpulse,
		Gravity:          cfg.Player.Gravity,
		MaxFallSpeed:     cfg.Player.MaxFallSpeed,
		DeathHeight:      deathHeight,
		Spawn:            spawn,
		AttachedPlatform: donburi.Null,
	})
	entity.Add(player, entity.Sprite, components.SpriteData{Color: cfg.Colors.Player})

	attachObject(w, player, tags.ResolvPlayer)

	if scene, ok := components.Scene.First(w); ok {
		components.Scene.Get(scene).Player = player.Entity()
	}
	return player
}

// ApplyPlayerConfig copies the current player tunables onto an existing
// controller. Spawn, death height and counters are kept.
func ApplyPlayerConfig(player *donburi.Entry) {
	c := entity.Get(player, entity.Controller)
	if c == nil {
		return
	}
	c.MoveSpeed = cfg.Player.MoveSpeed
	c.JumpImpulse = cfg.Player.JumpImpulse
	c.Gravity = cfg.Player.Gravity
	c.MaxFallSpeed = cfg.Player.MaxFallSpeed
}
