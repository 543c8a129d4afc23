package motion

import (
	stdmath "math"
	"testing"

	"github.com/automoto/ridgerunner/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/features/math"
)

const dt = 1.0 / 64

func newBody(x, y, w, h float64) *components.BodyData {
	return &components.BodyData{
		Position: math.NewVec2(x, y),
		Size:     math.NewVec2(w, h),
	}
}

func TestGravityAccumulates(t *testing.T) {
	b := newBody(0, 0, 10, 10)
	g := &components.GravityData{Accel: 980}

	const n = 90
	for i := 0; i < n; i++ {
		Gravity(b, g, dt)
	}

	assert.Equal(t, n*980*dt, b.Velocity.Y)
	assert.Greater(t, b.Position.Y, 0.0)
}

func TestGravityMaxFallSpeed(t *testing.T) {
	b := newBody(0, 0, 10, 10)
	g := &components.GravityData{Accel: 980, MaxFallSpeed: 300}

	for i := 0; i < 200; i++ {
		Gravity(b, g, dt)
		require.LessOrEqual(t, b.Velocity.Y, 300.0)
	}
	assert.Equal(t, 300.0, b.Velocity.Y)
}

func TestPatrolStaysWithinBounds(t *testing.T) {
	const (
		left  = 100.0
		right = 300.0
		speed = 90.0
	)
	b := newBody(150, 0, 24, 24)
	p := &components.PatrolData{Left: left, Right: right, Speed: speed}
	eps := speed * dt

	sawLeft, sawRight := false, false
	for i := 0; i < 2000; i++ {
		Patrol(b, p, dt)
		require.GreaterOrEqual(t, b.Position.X, left-eps)
		require.LessOrEqual(t, b.Position.X, right-b.Size.X+eps)
		if p.Direction < 0 {
			sawRight = true
		}
		if sawRight && p.Direction > 0 {
			sawLeft = true
		}
		assert.Equal(t, p.Direction*speed, b.Velocity.X)
	}
	assert.True(t, sawLeft && sawRight, "patrol should turn at both ends")
}

func TestPatrolZeroDirectionStartsRight(t *testing.T) {
	b := newBody(150, 0, 24, 24)
	p := &components.PatrolData{Left: 100, Right: 300, Speed: 64}

	Patrol(b, p, dt)

	assert.Equal(t, 151.0, b.Position.X)
	assert.Equal(t, 1.0, p.Direction)
}

func TestShuttleVelocityFromDisplacement(t *testing.T) {
	b := newBody(0, 50, 64, 16)
	s := &components.ShuttleData{Left: 0, Right: 400, Speed: 128, Direction: 1}

	Shuttle(b, s, dt)
	assert.Equal(t, 2.0, b.Position.X)
	assert.Equal(t, 128.0, b.Velocity.X)

	// Walk into the right bound and check the turn frame still reports what moved.
	b.Position.X = 335
	Shuttle(b, s, dt)
	assert.Equal(t, 337.0, b.Position.X)
	assert.Equal(t, 128.0, b.Velocity.X)
	assert.Equal(t, -1.0, s.Direction)

	Shuttle(b, s, dt)
	assert.Equal(t, 335.0, b.Position.X)
	assert.Equal(t, -128.0, b.Velocity.X)
}

func TestBounceFollowsSine(t *testing.T) {
	b := newBody(0, 200, 32, 16)
	bo := &components.BounceData{Amplitude: 40, Frequency: 2}

	for i := 0; i < 100; i++ {
		Bounce(b, bo, dt)
		assert.InDelta(t, 200+40*stdmath.Sin(2*bo.Elapsed), b.Position.Y, 1e-9)
	}
	assert.InDelta(t, 100*dt, bo.Elapsed, 1e-12)
}

func TestBounceBaselineAtZero(t *testing.T) {
	// A body spawned at y == 0 must keep 0 as its baseline instead of
	// re-capturing its current y every frame.
	b := newBody(0, 0, 32, 16)
	bo := &components.BounceData{Amplitude: 10, Frequency: 3}

	for i := 0; i < 50; i++ {
		Bounce(b, bo, dt)
	}

	assert.True(t, bo.Initialized)
	assert.Equal(t, 0.0, bo.Baseline)
	assert.InDelta(t, 10*stdmath.Sin(3*50*dt), b.Position.Y, 1e-9)
}

func TestBounceResumesPhase(t *testing.T) {
	b := newBody(0, 100, 32, 16)
	bo := &components.BounceData{Amplitude: 10, Frequency: 1, Elapsed: 1.5, Baseline: 100, Initialized: true}

	Bounce(b, bo, dt)

	assert.InDelta(t, 100+10*stdmath.Sin(1.5+dt), b.Position.Y, 1e-9)
}

func TestPathLoopsThroughLegs(t *testing.T) {
	b := newBody(0, 100, 64, 16)
	p := &components.PathData{
		Axis: components.AxisY,
		Legs: []*gween.Tween{
			gween.New(100, 36, 0.5, ease.Linear),
			gween.New(36, 100, 0.5, ease.Linear),
		},
	}

	// 32 frames of 1/64s finish the first leg.
	for i := 0; i < 32; i++ {
		Path(b, p, dt)
	}
	assert.InDelta(t, 36, b.Position.Y, 1e-4)
	assert.Equal(t, 1, p.Index)
	assert.InDelta(t, -128, b.Velocity.Y, 1e-2)

	for i := 0; i < 32; i++ {
		Path(b, p, dt)
	}
	assert.InDelta(t, 100, b.Position.Y, 1e-4)
	assert.Equal(t, 0, p.Index)
	assert.Equal(t, 0.0, b.Position.X)
}

func TestPathWithoutLegsIsNoop(t *testing.T) {
	b := newBody(5, 6, 1, 1)
	Path(b, &components.PathData{}, dt)
	assert.Equal(t, math.NewVec2(5, 6), b.Position)
}

func TestDeltaClampsNonPositive(t *testing.T) {
	if debugBuild {
		assert.Panics(t, func() { Delta(0) })
		return
	}
	assert.Equal(t, MinDelta, Delta(0))
	assert.Equal(t, MinDelta, Delta(-1))
	assert.Equal(t, 0.5, Delta(0.5))
}
