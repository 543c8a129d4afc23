package factory

import (
	"testing"

	"github.com/automoto/ridgerunner/assets"
	"github.com/automoto/ridgerunner/components"
	cfg "github.com/automoto/ridgerunner/config"
	"github.com/automoto/ridgerunner/entity"
	"github.com/automoto/ridgerunner/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func TestBuildLevel(t *testing.T) {
	cfg.Reset()
	level, err := assets.LoadEmbedded("")
	require.NoError(t, err)

	w := donburi.NewWorld()
	player := BuildLevel(w, level, nil)

	sceneEntry, ok := components.Scene.First(w)
	require.True(t, ok)
	scene := components.Scene.Get(sceneEntry)

	// backdrop + solids + platforms + hazards + enemies + player
	want := 1 + len(level.Solids) + len(level.Platforms) + len(level.Hazards) + len(level.Enemies) + 1
	assert.Len(t, scene.Entities, want)
	assert.Equal(t, player.Entity(), scene.Player)
	assert.Equal(t, player.Entity(), scene.Entities[len(scene.Entities)-1], "player updates last")

	backdrop := w.Entry(scene.Entities[0])
	assert.Equal(t, []entity.Kind{entity.KindBackground}, entity.Kinds(backdrop))

	c := entity.Get(player, entity.Controller)
	require.NotNil(t, c)
	assert.Equal(t, level.Height+cfg.Player.DeathMargin, c.DeathHeight)
	assert.Equal(t, level.Spawn, c.Spawn)
	assert.Equal(t, donburi.Null, c.AttachedPlatform)

	platforms := 0
	for e := range tags.Platform.Iter(w) {
		platforms++
		assert.True(t, entity.Has(e, entity.Solid))
	}
	assert.Equal(t, 4, platforms, "the static platform is a plain solid")

	_, ok = components.Space.First(w)
	assert.True(t, ok, "space")
	_, ok = components.Camera.First(w)
	assert.True(t, ok, "camera")
	_, ok = components.Input.First(w)
	assert.True(t, ok, "input")
	_, ok = components.Level.First(w)
	assert.True(t, ok, "level")
}

func newWorld() donburi.World {
	cfg.Reset()
	w := donburi.NewWorld()
	CreateScene(w)
	return w
}

func TestCreatePlatformKinds(t *testing.T) {
	tests := []struct {
		motion assets.Motion
		kinds  []entity.Kind
	}{
		{assets.MotionShuttle, []entity.Kind{entity.KindShuttle, entity.KindSolid, entity.KindSprite}},
		{assets.MotionPatrol, []entity.Kind{entity.KindPatrol, entity.KindSolid, entity.KindSprite}},
		{assets.MotionBounce, []entity.Kind{entity.KindBounce, entity.KindSolid, entity.KindSprite}},
		{assets.MotionPath, []entity.Kind{entity.KindPath, entity.KindSolid, entity.KindSprite}},
		{assets.MotionNone, []entity.Kind{entity.KindSolid, entity.KindSprite}},
	}
	for _, tt := range tests {
		t.Run(string(tt.motion), func(t *testing.T) {
			w := newWorld()
			e := CreatePlatform(w, assets.Platform{
				Rect:   assets.Rect{X: 100, Y: 200, Width: 64, Height: 16},
				Motion: tt.motion,
			})
			assert.Equal(t, tt.kinds, entity.Kinds(e))
			assert.Equal(t, tt.motion != assets.MotionNone, e.HasComponent(tags.Platform))
		})
	}
}

func TestPlatformDefaults(t *testing.T) {
	w := newWorld()
	e := CreatePlatform(w, assets.Platform{
		Rect:   assets.Rect{X: 100, Y: 200, Width: 64, Height: 16},
		Motion: assets.MotionShuttle,
	})

	s := entity.Get(e, entity.Shuttle)
	require.NotNil(t, s)
	assert.Equal(t, cfg.Platform.ShuttleSpeed, s.Speed)
	assert.Equal(t, 100-cfg.Platform.PathDistance, s.Left)
	assert.Equal(t, 164+cfg.Platform.PathDistance, s.Right)

	e = CreatePlatform(w, assets.Platform{
		Rect:   assets.Rect{X: 100, Y: 200, Width: 64, Height: 16},
		Motion: assets.MotionBounce,
	})
	b := entity.Get(e, entity.Bounce)
	require.NotNil(t, b)
	assert.Equal(t, cfg.Platform.BounceAmplitude, b.Amplitude)
	assert.False(t, b.Initialized)
}

func TestPathPlatformLegs(t *testing.T) {
	w := newWorld()
	e := CreatePlatform(w, assets.Platform{
		Rect:     assets.Rect{X: 100, Y: 200, Width: 64, Height: 16},
		Motion:   assets.MotionPath,
		Axis:     "x",
		Distance: 64,
		Duration: 1,
	})
	p := entity.Get(e, entity.Path)
	require.NotNil(t, p)
	assert.Equal(t, components.AxisX, p.Axis)
	require.Len(t, p.Legs, 2)

	// A whole leg moves the platform the full distance.
	v, done := p.Legs[0].Update(1)
	assert.True(t, done)
	assert.InDelta(t, 164, v, 1e-4)
	p.Legs[0].Reset()
}

func TestCreateEnemy(t *testing.T) {
	w := newWorld()
	e := CreateEnemy(w, assets.Enemy{Rect: assets.Rect{X: 500, Y: 300, Width: 24, Height: 24}})

	assert.True(t, entity.Has(e, entity.Hazard))
	assert.False(t, entity.Has(e, entity.Solid))
	p := entity.Get(e, entity.Patrol)
	require.NotNil(t, p)
	assert.Equal(t, 500-cfg.Enemy.PatrolDistance, p.Left)
	assert.Equal(t, 524+cfg.Enemy.PatrolDistance, p.Right)
	assert.Equal(t, cfg.Enemy.PatrolSpeed, p.Speed)
}

func TestFallingHazard(t *testing.T) {
	w := newWorld()
	e := CreateHazard(w, assets.Hazard{
		Rect:   assets.Rect{X: 0, Y: 0, Width: 16, Height: 24},
		Motion: assets.MotionFall,
	})

	g := entity.Get(e, entity.Gravity)
	require.NotNil(t, g)
	assert.Equal(t, cfg.Physics.Gravity, g.Accel)
	assert.Equal(t, []entity.Kind{entity.KindGravity, entity.KindHazard, entity.KindSprite}, entity.Kinds(e))
}

func TestObjectsJoinSpace(t *testing.T) {
	w := newWorld()
	space := CreateSpace(w, 320, 320, 16, 16)
	solid := CreateSolid(w, assets.Rect{X: 32, Y: 32, Width: 64, Height: 16})

	obj := components.Object.Get(solid)
	require.NotNil(t, obj.Object)
	assert.Equal(t, solid.Entity(), obj.Data)
	assert.True(t, obj.HasTags(tags.ResolvSolid))
	assert.Len(t, components.Space.Get(space).Objects(), 1)
}

func TestApplyPlayerConfig(t *testing.T) {
	w := newWorld()
	player := CreatePlayer(w, math.NewVec2(10, 10), 500)
	cfg.Player.MoveSpeed = 321
	t.Cleanup(cfg.Reset)

	ApplyPlayerConfig(player)

	c := entity.Get(player, entity.Controller)
	assert.Equal(t, 321.0, c.MoveSpeed)
	assert.Equal(t, 500.0, c.DeathHeight)
}

func TestApplyConfig(t *testing.T) {
	w := newWorld()
	t.Cleanup(cfg.Reset)
	CreateCamera(w)
	icicle := CreateHazard(w, assets.Hazard{
		Rect:   assets.Rect{X: 0, Y: 0, Width: 16, Height: 24},
		Motion: assets.MotionFall,
	})
	spikes := CreateHazard(w, assets.Hazard{Rect: assets.Rect{X: 32, Y: 0, Width: 16, Height: 16}})
	player := CreatePlayer(w, math.NewVec2(10, 10), 500)

	cfg.Physics.Gravity = 400
	cfg.Physics.MaxFallSpeed = 250
	cfg.Player.JumpImpulse = 640
	cfg.Camera.Zoom = 2

	ApplyConfig(w)

	g := entity.Get(icicle, entity.Gravity)
	assert.Equal(t, 400.0, g.Accel)
	assert.Equal(t, 250.0, g.MaxFallSpeed)
	assert.Nil(t, entity.Get(spikes, entity.Gravity), "static hazards gain no gravity")
	assert.Equal(t, 640.0, entity.Get(player, entity.Controller).JumpImpulse)
	cam, ok := components.Camera.First(w)
	require.True(t, ok)
	assert.Equal(t, 2.0, components.Camera.Get(cam).Scale)
}
