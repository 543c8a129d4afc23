package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData fills the entity's Body rectangle with a flat color.
type SpriteData struct {
	Color color.RGBA
}

// BackgroundData clears the whole view before anything else is drawn.
type BackgroundData struct {
	Color color.RGBA
}

var Sprite = donburi.NewComponentType[SpriteData]()
var Background = donburi.NewComponentType[BackgroundData]()
