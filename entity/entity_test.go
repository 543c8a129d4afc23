package entity

import (
	"image/color"
	"io"
	"log/slog"
	"testing"

	"github.com/automoto/ridgerunner/collision"
	"github.com/automoto/ridgerunner/components"
	cfg "github.com/automoto/ridgerunner/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

const dt = 1.0 / 64

func newWorld() donburi.World {
	w := donburi.NewWorld()
	scene := w.Entry(w.Create(components.Scene))
	components.Scene.SetValue(scene, components.SceneData{Player: donburi.Null})
	return w
}

func box(x, y float64) components.BodyData {
	return components.BodyData{
		Position: math.NewVec2(x, y),
		Size:     math.NewVec2(16, 16),
	}
}

func newContext(w donburi.World) *Context {
	return &Context{
		World: w,
		Dt:    dt,
		Input: &components.InputData{},
		Log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestAddAndGet(t *testing.T) {
	w := newWorld()
	e := New(w, box(0, 0))

	assert.Nil(t, Get(e, Patrol))
	assert.False(t, Has(e, Patrol))

	p := Add(e, Patrol, components.PatrolData{Left: 0, Right: 100, Speed: 10})
	require.NotNil(t, p)
	p.Direction = -1

	got := Get(e, Patrol)
	require.NotNil(t, got)
	assert.Equal(t, -1.0, got.Direction)
	assert.Equal(t, 100.0, got.Right)
}

func TestAddTwiceReplacesInPlace(t *testing.T) {
	w := newWorld()
	e := New(w, box(0, 0))

	Add(e, Gravity, components.GravityData{Accel: 1})
	Add(e, Sprite, components.SpriteData{})
	Mark(e, Solid)
	Add(e, Gravity, components.GravityData{Accel: 2})
	Mark(e, Solid)

	assert.Equal(t, []Kind{KindGravity, KindSprite, KindSolid}, Kinds(e))
	assert.Equal(t, 2.0, Get(e, Gravity).Accel)
	assert.True(t, Has(e, Solid))
	assert.False(t, Has(e, Hazard))
}

func TestUpdateCapturesPrevious(t *testing.T) {
	w := newWorld()
	e := New(w, box(10, 20))
	Add(e, Gravity, components.GravityData{Accel: 640})

	Update(newContext(w), e)

	body := Body(e)
	assert.Equal(t, math.NewVec2(10, 20), body.Previous)
	assert.Equal(t, 10.0, body.Velocity.Y)
	assert.Equal(t, 10.0*dt, body.Displacement().Y)
	assert.Equal(t, 0.0, body.Displacement().X)
}

func TestUpdateRunsBehaviorsInOrder(t *testing.T) {
	w := newWorld()
	e := New(w, box(0, 100))
	// Bounce overwrites y from its baseline, so gravity running first is lost
	// and gravity running second lands on top of the bounce.
	Add(e, Bounce, components.BounceData{Amplitude: 0, Frequency: 1})
	Add(e, Gravity, components.GravityData{Accel: 64})

	Update(newContext(w), e)

	body := Body(e)
	assert.Equal(t, 100+1.0*dt, body.Position.Y)
}

func TestInactiveEntitiesAreSkipped(t *testing.T) {
	w := newWorld()
	e := New(w, box(0, 0))
	Add(e, Gravity, components.GravityData{Accel: 100})
	Add(e, Sprite, components.SpriteData{})
	SetActive(e, false)

	Update(newContext(w), e)
	r := &recorder{}
	Draw(e, r, &components.CameraData{})

	assert.False(t, Active(e))
	assert.Equal(t, math.NewVec2(0, 0), Body(e).Position)
	assert.Empty(t, r.calls)
	assert.True(t, w.Valid(e.Entity()), "deactivation does not destroy")
}

func TestMissingBodyIsNoop(t *testing.T) {
	w := newWorld()
	e := w.Entry(w.Create(Behaviors))
	Behaviors.SetValue(e, BehaviorsData{Active: true})
	Add(e, Gravity, components.GravityData{Accel: 100})

	assert.NotPanics(t, func() {
		Update(newContext(w), e)
		Draw(e, &recorder{}, &components.CameraData{})
	})
	assert.Nil(t, Body(e))
}

func TestSceneOrder(t *testing.T) {
	w := newWorld()
	a := New(w, box(0, 0))
	b := New(w, box(1, 0))
	c := New(w, box(2, 0))

	scene, ok := components.Scene.First(w)
	require.True(t, ok)
	assert.Equal(t,
		[]donburi.Entity{a.Entity(), b.Entity(), c.Entity()},
		components.Scene.Get(scene).Entities)
}

func TestControllerBehaviorReadsContextInput(t *testing.T) {
	w := newWorld()
	e := New(w, box(0, 0))
	Add(e, Controller, components.ControllerData{
		MoveSpeed:        128,
		DeathHeight:      1000,
		AttachedPlatform: donburi.Null,
	})

	ctx := newContext(w)
	var held [cfg.ActionCount]bool
	held[cfg.ActionMoveRight] = true
	ctx.Input.Advance(held)

	Update(ctx, e)
	assert.Equal(t, 2.0, Body(e).Position.X)

	ctx.Input = nil
	assert.NotPanics(t, func() { Update(ctx, e) })
}

func TestDrawOrder(t *testing.T) {
	w := newWorld()
	e := New(w, box(4, 8))
	red := color.RGBA{R: 255, A: 255}
	grey := color.RGBA{R: 10, G: 10, B: 10, A: 255}
	Add(e, Background, components.BackgroundData{Color: grey})
	Add(e, Sprite, components.SpriteData{Color: red})
	Mark(e, Hazard)

	r := &recorder{}
	Draw(e, r, &components.CameraData{})

	require.Len(t, r.calls, 2)
	assert.Equal(t, "clear", r.calls[0].op)
	assert.Equal(t, "fill", r.calls[1].op)
	assert.Equal(t, collision.Rect{X: 4, Y: 8, W: 16, H: 16}, r.calls[1].rect)
	assert.Equal(t, color.Color(red), r.calls[1].clr)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "shuttle", KindShuttle.String())
	assert.Equal(t, "unknown", KindCount.String())
}

type call struct {
	op   string
	rect collision.Rect
	clr  color.Color
}

type recorder struct {
	calls []call
}

func (r *recorder) Clear(clr color.Color) {
	r.calls = append(r.calls, call{op: "clear", clr: clr})
}

func (r *recorder) FillRect(rect collision.Rect, _ *components.CameraData, clr color.Color) {
	r.calls = append(r.calls, call{op: "fill", rect: rect, clr: clr})
}
