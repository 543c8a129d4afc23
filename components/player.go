package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ControllerData is the player controller state machine plus its tunables.
type ControllerData struct {
	// Tunables
	MoveSpeed    float64
	JumpImpulse  float64
	Gravity      float64
	MaxFallSpeed float64 // 0 = uncapped
	DeathHeight  float64
	Spawn        math.Vec2

	// State
	Grounded   bool
	OnPlatform bool
	// AttachedPlatform is a lookup handle only and is revalidated on every use.
	// It is donburi.Null whenever OnPlatform is false.
	AttachedPlatform donburi.Entity
	// CarryRefX is the platform x the rider last synchronised with.
	CarryRefX float64
	Dead      bool

	Deaths int
}

var Controller = donburi.NewComponentType[ControllerData]()
