package factory

import (
	"github.com/automoto/ridgerunner/archetypes"
	"github.com/automoto/ridgerunner/assets"
	"github.com/automoto/ridgerunner/components"
	cfg "github.com/automoto/ridgerunner/config"
	"github.com/automoto/ridgerunner/entity"
	"github.com/automoto/ridgerunner/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreatePlatform spawns a solid from a level description. Platforms without a
// motion are plain solids; moving ones can carry the player.
func CreatePlatform(w donburi.World, p assets.Platform) *donburi.Entry {
	if p.Motion == assets.MotionNone {
		return CreateSolid(w, p.Rect)
	}

	platform := archetypes.Platform.Spawn(w)
	entity.Init(platform, rectBody(p.Rect))

	switch p.Motion {
	case assets.MotionShuttle:
		left, right := bounds(p)
		entity.Add(platform, entity.Shuttle, components.ShuttleData{
			Left:      left,
			Right:     right,
			Speed:     orDefault(p.Speed, cfg.Platform.ShuttleSpeed),
			Direction: 1,
		})
	case assets.MotionPatrol:
		left, right := bounds(p)
		entity.Add(platform, entity.Patrol, components.PatrolData{
			Left:      left,
			Right:     right,
			Speed:     orDefault(p.Speed, cfg.Platform.ShuttleSpeed),
			Direction: 1,
		})
	case assets.MotionBounce:
		entity.Add(platform, entity.Bounce, components.BounceData{
			Amplitude: orDefault(p.Amplitude, cfg.Platform.BounceAmplitude),
			Frequency: orDefault(p.Frequency, cfg.Platform.BounceFrequency),
		})
	case assets.MotionPath:
		entity.Add(platform, entity.Path, newPath(p))
	}

	entity.Mark(platform, entity.Solid)
	entity.Add(platform, entity.Sprite, components.SpriteData{Color: cfg.Colors.Platform})

	attachObject(w, platform, tags.ResolvSolid)
	return platform
}

// newPath builds the floating platform loop: out along the axis and back.
// Horizontal paths travel right, vertical ones travel up.
func newPath(p assets.Platform) components.PathData {
	distance := float32(orDefault(p.Distance, cfg.Platform.PathDistance))
	duration := float32(orDefault(p.Duration, cfg.Platform.PathDuration))

	axis := components.AxisY
	start := float32(p.Y)
	end := start - distance
	if p.Axis == "x" {
		axis = components.AxisX
		start = float32(p.X)
		end = start + distance
	}

	return components.PathData{
		Axis: axis,
		Legs: []*gween.Tween{
			gween.New(start, end, duration, ease.InOutSine),
			gween.New(end, start, duration, ease.InOutSine),
		},
	}
}

// bounds falls back to the platform's own extent plus the configured path
// distance on each side when the level gives none.
func bounds(p assets.Platform) (float64, float64) {
	if p.Left == 0 && p.Right == 0 {
		d := cfg.Platform.PathDistance
		return p.X - d, p.X + p.Width + d
	}
	return p.Left, p.Right
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
