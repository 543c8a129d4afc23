package components

import "github.com/yohamta/donburi"

// LevelData describes the loaded level's extent.
type LevelData struct {
	Name   string
	Width  float64
	Height float64
}

var Level = donburi.NewComponentType[LevelData]()
