package factory

import (
	"github.com/automoto/ridgerunner/archetypes"
	"github.com/automoto/ridgerunner/assets"
	"github.com/automoto/ridgerunner/components"
	cfg "github.com/automoto/ridgerunner/config"
	"github.com/automoto/ridgerunner/entity"
	"github.com/automoto/ridgerunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func rectBody(r assets.Rect) components.BodyData {
	pos := math.NewVec2(r.X, r.Y)
	return components.BodyData{
		Position: pos,
		Size:     math.NewVec2(r.Width, r.Height),
		Previous: pos,
	}
}

// CreateSolid spawns a static block the player stands on and is pushed out of.
func CreateSolid(w donburi.World, r assets.Rect) *donburi.Entry {
	solid := archetypes.Solid.Spawn(w)
	entity.Init(solid, rectBody(r))
	entity.Mark(solid, entity.Solid)
	entity.Add(solid, entity.Sprite, components.SpriteData{Color: cfg.Colors.Solid})

	attachObject(w, solid, tags.ResolvSolid)
	return solid
}

// CreateHazard spawns a block that kills the player on contact. Falling
// hazards drop under gravity from their placed position.
func CreateHazard(w donburi.World, h assets.Hazard) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(w)
	entity.Init(hazard, rectBody(h.Rect))
	if h.Motion == assets.MotionFall {
		entity.Add(hazard, entity.Gravity, components.GravityData{
			Accel:        cfg.Physics.Gravity,
			MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		})
	}
	entity.Mark(hazard, entity.Hazard)
	entity.Add(hazard, entity.Sprite, components.SpriteData{Color: cfg.Colors.Hazard})

	attachObject(w, hazard, tags.ResolvHazard)
	return hazard
}

// CreateEnemy spawns a patrolling hazard.
func CreateEnemy(w donburi.World, en assets.Enemy) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)
	entity.Init(enemy, rectBody(en.Rect))

	left, right := en.Left, en.Right
	if left == 0 && right == 0 {
		// Default patrol behavior (back and forth from current position)
		left = en.X - cfg.Enemy.PatrolDistance
		right = en.X + en.Width + cfg.Enemy.PatrolDistance
	}
	speed := en.Speed
	if speed == 0 {
		speed = cfg.Enemy.PatrolSpeed
	}
	entity.Add(enemy, entity.Patrol, components.PatrolData{
		Left:      left,
		Right:     right,
		Speed:     speed,
		Direction: -1, // Start facing left
	})
	entity.Mark(enemy, entity.Hazard)
	entity.Add(enemy, entity.Sprite, components.SpriteData{Color: cfg.Colors.Enemy})

	attachObject(w, enemy, tags.ResolvHazard)
	return enemy
}

// ApplyPhysicsConfig copies the shared gravity settings onto every body that
// falls under the Gravity behavior. Enemy and platform defaults only fill in
// values a level leaves out, so they are read once at build time.
func ApplyPhysicsConfig(w donburi.World) {
	for e := range components.Gravity.Iter(w) {
		g := components.Gravity.Get(e)
		g.Accel = cfg.Physics.Gravity
		g.MaxFallSpeed = cfg.Physics.MaxFallSpeed
	}
}
