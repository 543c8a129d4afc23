package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/ridgerunner/collision"
	"github.com/automoto/ridgerunner/components"
	cfg "github.com/automoto/ridgerunner/config"
	"github.com/automoto/ridgerunner/entity"
	"github.com/automoto/ridgerunner/fonts"
	"github.com/automoto/ridgerunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

const hudMargin = 10

// DrawHUD prints the death counter in the top-left corner.
func DrawHUD(w donburi.World, screen *ebiten.Image) {
	scene, ok := components.Scene.First(w)
	if !ok {
		return
	}
	player := components.Scene.Get(scene).Player
	if player == donburi.Null || !w.Valid(player) {
		return
	}
	c := entity.Get(w.Entry(player), entity.Controller)
	if c == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, hudMargin)
	op.ColorScale.ScaleWithColor(cfg.Colors.HUDText)
	text.Draw(screen, fmt.Sprintf("DEATHS %d", c.Deaths), fonts.HUD.Get(), op)
}

const pausedLabel = "PAUSED"

// DrawPause dims the screen and centres a label while the simulation is frozen.
func DrawPause(w donburi.World, screen *ebiten.Image) {
	entry, ok := components.Pause.First(w)
	if !ok || !components.Pause.Get(entry).IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Colors.Overlay, false)

	face := fonts.HUD.Get()
	tw, th := text.Measure(pausedLabel, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((width-tw)/2, (height-th)/2)
	op.ColorScale.ScaleWithColor(cfg.Colors.HUDText)
	text.Draw(screen, pausedLabel, face, op)
}

// DrawDebug outlines every broad-phase object and prints the player's contact state.
func DrawDebug(w donburi.World, screen *ebiten.Image) {
	if !cfg.Debug.DrawBounds {
		return
	}
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	s := &Screen{Target: screen}

	spaceEntry, ok := components.Space.First(w)
	if ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvHazard) {
				c = color.RGBA{255, 0, 0, 255}
			}
			s.StrokeRect(collision.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}, camera, c)
		}
	}

	sceneEntry, ok := components.Scene.First(w)
	if !ok {
		return
	}
	player := components.Scene.Get(sceneEntry).Player
	if player == donburi.Null || !w.Valid(player) {
		return
	}
	pe := w.Entry(player)
	body := entity.Body(pe)
	ctrl := entity.Get(pe, entity.Controller)
	if body == nil || ctrl == nil {
		return
	}
	msg := fmt.Sprintf("pos %.1f,%.1f vel %.1f,%.1f grounded=%t platform=%t",
		body.Position.X, body.Position.Y, body.Velocity.X, body.Velocity.Y, ctrl.Grounded, ctrl.OnPlatform)
	op := &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, float64(screen.Bounds().Dy())-hudMargin-13)
	op.ColorScale.ScaleWithColor(cfg.Colors.HUDText)
	text.Draw(screen, msg, fonts.Debug.Get(), op)

	// Cursor in world space, for placing level objects
	cx, cy := ebiten.CursorPosition()
	wx, wy := camera.ScreenToWorld(float64(cx), float64(cy))
	op = &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, float64(screen.Bounds().Dy())-hudMargin-26)
	op.ColorScale.ScaleWithColor(cfg.Colors.HUDText)
	text.Draw(screen, fmt.Sprintf("cursor %.0f,%.0f", wx, wy), fonts.Debug.Get(), op)
}
