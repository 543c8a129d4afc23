package systems

import (
	"github.com/automoto/ridgerunner/components"
	"github.com/automoto/ridgerunner/entity"
	"github.com/yohamta/donburi"
)

// UpdateEntities runs every entity's behaviors in scene order.
func UpdateEntities(ctx *entity.Context) {
	scene := sceneOf(ctx.World)
	if scene == nil {
		return
	}
	for _, id := range scene.Entities {
		if !ctx.World.Valid(id) {
			continue
		}
		entity.Update(ctx, ctx.World.Entry(id))
	}
}

// DrawEntities draws every entity in scene order through the camera.
func DrawEntities(w donburi.World, r entity.Renderer) {
	scene := sceneOf(w)
	if scene == nil {
		return
	}
	cam := cameraOf(w)
	if cam == nil {
		return
	}
	for _, id := range scene.Entities {
		if !w.Valid(id) {
			continue
		}
		entity.Draw(w.Entry(id), r, cam)
	}
}

func sceneOf(w donburi.World) *components.SceneData {
	entry, ok := components.Scene.First(w)
	if !ok {
		return nil
	}
	return components.Scene.Get(entry)
}

func cameraOf(w donburi.World) *components.CameraData {
	entry, ok := components.Camera.First(w)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}

// PlayerEntry returns the player's entry if it is still alive in the world.
func PlayerEntry(w donburi.World) (*donburi.Entry, bool) {
	scene := sceneOf(w)
	if scene == nil || scene.Player == donburi.Null || !w.Valid(scene.Player) {
		return nil, false
	}
	return w.Entry(scene.Player), true
}
