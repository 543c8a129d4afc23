package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData maps world coordinates to screen coordinates. It is recomputed
// from the player every frame.
type CameraData struct {
	Center       math.Vec2
	Scale        float64
	ScreenWidth  float64
	ScreenHeight float64
	// ClampToLevel keeps the view inside the level bounds.
	ClampToLevel bool
}

// WorldToScreen converts a world-space point into screen pixels.
func (c *CameraData) WorldToScreen(x, y float64) (float64, float64) {
	scale := c.scale()
	return (x-c.Center.X)*scale + c.ScreenWidth/2,
		(y-c.Center.Y)*scale + c.ScreenHeight/2
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *CameraData) ScreenToWorld(x, y float64) (float64, float64) {
	scale := c.scale()
	return (x-c.ScreenWidth/2)/scale + c.Center.X,
		(y-c.ScreenHeight/2)/scale + c.Center.Y
}

// ViewSize returns the visible world width and height.
func (c *CameraData) ViewSize() (float64, float64) {
	scale := c.scale()
	return c.ScreenWidth / scale, c.ScreenHeight / scale
}

func (c *CameraData) scale() float64 {
	// Safety check for zero zoom
	if c.Scale <= 0 {
		return 1.0
	}
	return c.Scale
}

var Camera = donburi.NewComponentType[CameraData]()
