package collision

import (
	"math"

	"github.com/automoto/ridgerunner/components"
)

// CarryDeadZone is the smallest platform displacement handed to a rider on landing.
const CarryDeadZone = 0.1

const (
	// StickDistance is how far above a surface a falling body still counts as standing on it.
	StickDistance = 1.0
	// MaxStickReach caps StickReach so a fast drop still leaves the rider behind.
	MaxStickReach = 8.0
)

// Rect is an axis-aligned rectangle in world space.
type Rect struct {
	X, Y, W, H float64
}

// FromBody returns the rectangle a Body currently occupies.
func FromBody(b *components.BodyData) Rect {
	return Rect{X: b.Position.X, Y: b.Position.Y, W: b.Size.X, H: b.Size.Y}
}

func (r Rect) Left() float64 { return r.X }
func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Top() float64 { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether a and b share interior area. Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return a.Left() < b.Right() && a.Right() > b.Left() &&
		a.Top() < b.Bottom() && a.Bottom() > b.Top()
}

// Resolve pushes mover out of obstacle along the axis of least penetration.
// Equal penetrations resolve vertically. It reports whether the mover landed on
// top of the obstacle, in which case obstacleDX is added to the mover's x when it
// exceeds CarryDeadZone. The obstacle is never modified.
func Resolve(mover *components.BodyData, obstacle Rect, obstacleDX float64) bool {
	m := FromBody(mover)
	if !Overlaps(m, obstacle) {
		return false
	}

	pushRight := obstacle.Right() - m.Left()
	pushLeft := m.Right() - obstacle.Left()
	pushDown := obstacle.Bottom() - m.Top()
	pushUp := m.Bottom() - obstacle.Top()

	dx := pushRight
	if pushLeft < pushRight {
		dx = -pushLeft
	}
	dy := pushDown
	if pushUp <= pushDown {
		dy = -pushUp
	}

	if math.Abs(dx) < math.Abs(dy) {
		if dx > 0 {
			mover.Position.X = obstacle.Right()
		} else {
			mover.Position.X = obstacle.Left() - m.W
		}
		mover.Velocity.X = 0
		return false
	}

	if dy < 0 {
		mover.Position.Y = obstacle.Top() - m.H
		mover.Velocity.Y = 0
		if math.Abs(obstacleDX) > CarryDeadZone {
			mover.Position.X += obstacleDX
		}
		return true
	}

	mover.Position.Y = obstacle.Bottom()
	if mover.Velocity.Y < 0 {
		mover.Velocity.Y = 0
	}
	return false
}

// StickReach is the gap Stick tolerates above an obstacle that moved obstacleDY
// this frame. A surface dropping away from its rider widens the reach by the drop.
func StickReach(obstacleDY float64) float64 {
	return math.Min(StickDistance+math.Max(obstacleDY, 0), MaxStickReach)
}

// Stick snaps a body that is not rising down onto obstacle when its bottom edge
// sits within reach above the obstacle's top and the two overlap horizontally.
// It keeps riders on surfaces that move down faster than one frame of gravity.
// Like Resolve it zeroes vertical velocity, applies obstacleDX past the dead
// zone and reports whether the mover is now standing on the obstacle.
func Stick(mover *components.BodyData, obstacle Rect, reach, obstacleDX float64) bool {
	if mover.Velocity.Y < 0 {
		return false
	}
	m := FromBody(mover)
	if m.Left() >= obstacle.Right() || m.Right() <= obstacle.Left() {
		return false
	}
	gap := obstacle.Top() - m.Bottom()
	if gap < 0 || gap > reach {
		return false
	}

	mover.Position.Y = obstacle.Top() - m.H
	mover.Velocity.Y = 0
	if math.Abs(obstacleDX) > CarryDeadZone {
		mover.Position.X += obstacleDX
	}
	return true
}
