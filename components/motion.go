package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GravityData integrates a constant downward acceleration.
type GravityData struct {
	Accel        float64
	MaxFallSpeed float64 // 0 = uncapped
}

// PatrolData walks an entity left and right between two bounds.
type PatrolData struct {
	Left      float64
	Right     float64
	Speed     float64
	Direction float64 // -1 or 1
}

// BounceData moves an entity vertically along a sine wave.
type BounceData struct {
	Amplitude   float64
	Frequency   float64 // radians per second
	Elapsed     float64
	Baseline    float64
	Initialized bool
}

// ShuttleData moves a platform back and forth horizontally and publishes the
// resulting velocity for riders.
type ShuttleData struct {
	Left      float64
	Right     float64
	Speed     float64
	Direction float64 // -1 or 1
}

// Axis selects which coordinate a path drives.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// PathData drives one axis through a looping sequence of eased legs.
type PathData struct {
	Axis  Axis
	Legs  []*gween.Tween
	Index int
}

var (
	Gravity = donburi.NewComponentType[GravityData]()
	Patrol  = donburi.NewComponentType[PatrolData]()
	Bounce  = donburi.NewComponentType[BounceData]()
	Shuttle = donburi.NewComponentType[ShuttleData]()
	Path    = donburi.NewComponentType[PathData]()
)
