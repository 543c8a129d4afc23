package components

import "github.com/yohamta/donburi"

// SceneData is the singleton that fixes iteration order. Entities are
// updated, collided and drawn in the order they were created.
type SceneData struct {
	Entities []donburi.Entity
	Player   donburi.Entity
}

var Scene = donburi.NewComponentType[SceneData]()
