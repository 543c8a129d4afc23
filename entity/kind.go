package entity

import (
	"github.com/automoto/ridgerunner/components"
	"github.com/automoto/ridgerunner/tags"
	"github.com/yohamta/donburi"
)

// Kind enumerates every behavior an entity can carry.
type Kind int

const (
	KindGravity Kind = iota
	KindPatrol
	KindBounce
	KindShuttle
	KindPath
	KindController
	KindSolid
	KindHazard
	KindSprite
	KindBackground

	KindCount
)

var kindNames = [KindCount]string{
	"gravity",
	"patrol",
	"bounce",
	"shuttle",
	"path",
	"controller",
	"solid",
	"hazard",
	"sprite",
	"background",
}

func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Behavior binds a Kind to the component type that stores its data.
type Behavior[T any] struct {
	Kind Kind
	Type *donburi.ComponentType[T]
}

var (
	Gravity    = Behavior[components.GravityData]{KindGravity, components.Gravity}
	Patrol     = Behavior[components.PatrolData]{KindPatrol, components.Patrol}
	Bounce     = Behavior[components.BounceData]{KindBounce, components.Bounce}
	Shuttle    = Behavior[components.ShuttleData]{KindShuttle, components.Shuttle}
	Path       = Behavior[components.PathData]{KindPath, components.Path}
	Controller = Behavior[components.ControllerData]{KindController, components.Controller}
	Solid      = Behavior[donburi.Tag]{KindSolid, tags.Solid}
	Hazard     = Behavior[donburi.Tag]{KindHazard, tags.Hazard}
	Sprite     = Behavior[components.SpriteData]{KindSprite, components.Sprite}
	Background = Behavior[components.BackgroundData]{KindBackground, components.Background}
)
