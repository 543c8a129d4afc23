package factory

import (
	"github.com/automoto/ridgerunner/archetypes"
	"github.com/automoto/ridgerunner/components"
	cfg "github.com/automoto/ridgerunner/config"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{
		Scale:        cfg.Camera.Zoom,
		ScreenWidth:  float64(cfg.C.Width),
		ScreenHeight: float64(cfg.C.Height),
		ClampToLevel: cfg.Camera.ClampToLevel,
	})
	return camera
}

// ApplyCameraConfig copies the current camera settings onto the camera.
func ApplyCameraConfig(w donburi.World) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry)
	camera.Scale = cfg.Camera.Zoom
	camera.ClampToLevel = cfg.Camera.ClampToLevel
	camera.ScreenWidth = float64(cfg.C.Width)
	camera.ScreenHeight = float64(cfg.C.Height)
}
