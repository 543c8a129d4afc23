// Package render draws the simulation with flat rectangles on an ebiten image.
package render

import (
	"image/color"

	"github.com/automoto/ridgerunner/collision"
	"github.com/automoto/ridgerunner/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen implements entity.Renderer on top of an ebiten image.
type Screen struct {
	Target *ebiten.Image
}

func (s *Screen) Clear(clr color.Color) {
	s.Target.Fill(clr)
}

func (s *Screen) FillRect(r collision.Rect, cam *components.CameraData, clr color.Color) {
	x0, y0, x1, y1 := screenRect(r, cam)
	if !s.visible(x0, y0, x1, y1) {
		return
	}
	vector.FillRect(s.Target, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), clr, false)
}

// StrokeRect outlines a world-space rectangle.
func (s *Screen) StrokeRect(r collision.Rect, cam *components.CameraData, clr color.Color) {
	x0, y0, x1, y1 := screenRect(r, cam)
	if !s.visible(x0, y0, x1, y1) {
		return
	}
	vector.StrokeRect(s.Target, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, clr, false)
}

func screenRect(r collision.Rect, cam *components.CameraData) (x0, y0, x1, y1 float64) {
	x0, y0 = cam.WorldToScreen(r.Left(), r.Top())
	x1, y1 = cam.WorldToScreen(r.Right(), r.Bottom())
	return x0, y0, x1, y1
}

// Cull rectangles outside the target
func (s *Screen) visible(x0, y0, x1, y1 float64) bool {
	b := s.Target.Bounds()
	return x1 >= float64(b.Min.X) && x0 <= float64(b.Max.X) &&
		y1 >= float64(b.Min.Y) && y0 <= float64(b.Max.Y)
}
