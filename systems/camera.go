package systems

import (
	"github.com/automoto/ridgerunner/components"
	"github.com/automoto/ridgerunner/entity"
	"github.com/yohamta/donburi"
)

// UpdateCamera recentres the camera on the player, optionally keeping the view
// inside the level.
func UpdateCamera(w donburi.World) {
	camera := cameraOf(w)
	if camera == nil {
		return
	}
	player, ok := PlayerEntry(w)
	if !ok {
		return // no player, keep the last view
	}
	body := entity.Body(player)
	if body == nil {
		return
	}

	target := body.Center()

	if camera.ClampToLevel {
		if levelEntry, ok := components.Level.First(w); ok {
			level := components.Level.Get(levelEntry)
			viewW, viewH := camera.ViewSize()
			target.X = clampAxis(target.X, viewW, level.Width)
			target.Y = clampAxis(target.Y, viewH, level.Height)
		}
	}

	camera.Center = target
}

// clampAxis keeps a view of size view inside [0, extent]. A level smaller
// than the view is centred.
func clampAxis(center, view, extent float64) float64 {
	if extent <= view {
		return extent / 2
	}
	lo := view / 2
	hi := extent - view/2
	if center < lo {
		return lo
	}
	if center > hi {
		return hi
	}
	return center
}
