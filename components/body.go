package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyData is the positional state of a placed entity. Position is the
// top-left corner in world units, y grows downward.
type BodyData struct {
	Position math.Vec2
	Size     math.Vec2
	Velocity math.Vec2
	// Previous is captured at the start of every entity update.
	Previous math.Vec2
}

// Displacement returns how far the body moved during the current frame.
func (b *BodyData) Displacement() math.Vec2 {
	return math.Vec2{
		X: b.Position.X - b.Previous.X,
		Y: b.Position.Y - b.Previous.Y,
	}
}

// Left, Right, Top and Bottom return the edges of the body rectangle.
func (b *BodyData) Left() float64 { return b.Position.X }
func (b *BodyData) Right() float64 { return b.Position.X + b.Size.X }
func (b *BodyData) Top() float64 { return b.Position.Y }
func (b *BodyData) Bottom() float64 { return b.Position.Y + b.Size.Y }

// Center returns the midpoint of the body rectangle.
func (b *BodyData) Center() math.Vec2 {
	return math.Vec2{
		X: b.Position.X + b.Size.X/2,
		Y: b.Position.Y + b.Size.Y/2,
	}
}

var Body = donburi.NewComponentType[BodyData]()
