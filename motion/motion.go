// Package motion holds the per-frame motion rules that write into a Body.
// Each rule is a plain function over the Body and its own component data so it
// can run without a world.
package motion

import (
	"fmt"
	"math"

	"github.com/automoto/ridgerunner/components"
)

// MinDelta replaces a non-positive frame delta in release builds.
const MinDelta = 1e-6

// Delta validates a frame delta. A non-positive dt panics in debug builds
// (-tags debug) and is clamped to MinDelta otherwise.
func Delta(dt float64) float64 {
	if dt > 0 {
		return dt
	}
	if debugBuild {
		panic(fmt.Sprintf("motion: frame delta must be positive, got %v", dt))
	}
	return MinDelta
}

// Gravity accelerates the body downward and integrates its y position.
func Gravity(b *components.BodyData, g *components.GravityData, dt float64) {
	dt = Delta(dt)
	b.Velocity.Y += g.Accel * dt
	if g.MaxFallSpeed > 0 && b.Velocity.Y > g.MaxFallSpeed {
		b.Velocity.Y = g.MaxFallSpeed
	}
	b.Position.Y += b.Velocity.Y * dt
}

// Patrol walks the body between Left and Right - width. The position is not
// clamped, so it may pass a bound by at most one frame of travel before turning.
func Patrol(b *components.BodyData, p *components.PatrolData, dt float64) {
	dt = Delta(dt)
	p.Direction = turn(b, p.Left, p.Right, p.Speed, p.Direction, dt)
	b.Velocity.X = p.Direction * p.Speed
}

// Shuttle is Patrol for platforms: velocity is measured from the actual
// displacement so riders see what really happened this frame.
func Shuttle(b *components.BodyData, s *components.ShuttleData, dt float64) {
	dt = Delta(dt)
	oldX := b.Position.X
	s.Direction = turn(b, s.Left, s.Right, s.Speed, s.Direction, dt)
	b.Velocity.X = (b.Position.X - oldX) / dt
}

// turn moves the body one step and returns the direction for the next step.
func turn(b *components.BodyData, left, right, speed, dir, dt float64) float64 {
	if dir == 0 {
		dir = 1
	}
	b.Position.X += dir * speed * dt
	if b.Position.X <= left {
		dir = 1
	} else if b.Position.X >= right-b.Size.X {
		dir = -1
	}
	return dir
}

// Bounce places the body on a sine wave around the y it had on its first update.
func Bounce(b *components.BodyData, bo *components.BounceData, dt float64) {
	dt = Delta(dt)
	if !bo.Initialized {
		bo.Baseline = b.Position.Y
		bo.Initialized = true
	}
	oldY := b.Position.Y
	bo.Elapsed += dt
	b.Position.Y = bo.Baseline + bo.Amplitude*math.Sin(bo.Frequency*bo.Elapsed)
	b.Velocity.Y = (b.Position.Y - oldY) / dt
}

// Path advances the current eased leg and moves on to the next one when it
// finishes. Legs loop.
func Path(b *components.BodyData, p *components.PathData, dt float64) {
	dt = Delta(dt)
	if len(p.Legs) == 0 {
		return
	}
	if p.Index < 0 || p.Index >= len(p.Legs) {
		p.Index = 0
	}

	leg := p.Legs[p.Index]
	v, finished := leg.Update(float32(dt))
	if finished {
		leg.Reset()
		p.Index = (p.Index + 1) % len(p.Legs)
	}

	switch p.Axis {
	case components.AxisX:
		old := b.Position.X
		b.Position.X = float64(v)
		b.Velocity.X = (b.Position.X - old) / dt
	case components.AxisY:
		old := b.Position.Y
		b.Position.Y = float64(v)
		b.Velocity.Y = (b.Position.Y - old) / dt
	}
}
