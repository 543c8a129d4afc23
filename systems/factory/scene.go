package factory

import (
	"github.com/automoto/ridgerunner/archetypes"
	"github.com/automoto/ridgerunner/components"
	"github.com/yohamta/donburi"
)

// CreateScene spawns the singleton that records entity order. It must exist
// before any entity that should update or draw.
func CreateScene(w donburi.World) *donburi.Entry {
	scene := archetypes.Scene.Spawn(w)
	components.Scene.SetValue(scene, components.SceneData{Player: donburi.Null})
	return scene
}

func CreateInput(w donburi.World) *donburi.Entry {
	input := archetypes.Input.Spawn(w)
	components.Input.SetValue(input, components.InputData{})
	return input
}
