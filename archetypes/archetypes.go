package archetypes

import (
	"github.com/automoto/ridgerunner/components"
	"github.com/automoto/ridgerunner/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Body,
		components.Object,
	)
	Solid = newArchetype(
		components.Body,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Body,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Body,
		components.Object,
	)
	Hazard = newArchetype(
		components.Body,
		components.Object,
	)
	Backdrop = newArchetype(
		components.Body,
	)
	Space = newArchetype(
		components.Space,
	)
	Scene = newArchetype(
		components.Scene,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
