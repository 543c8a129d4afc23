package systems

import (
	"github.com/automoto/ridgerunner/components"
	cfg "github.com/automoto/ridgerunner/config"
	"github.com/yohamta/donburi"
)

// UpdatePause toggles pause on the pause action and reports whether the rest
// of the frame should be skipped. It must run after UpdateInput.
func UpdatePause(w donburi.World, input *components.InputData) bool {
	pause := GetOrCreatePause(w)
	if input != nil && input.Pressed(cfg.ActionPause) {
		pause.IsPaused = !pause.IsPaused
	}
	return pause.IsPaused
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(w donburi.World) *components.PauseData {
	if _, ok := components.Pause.First(w); !ok {
		ent := w.Entry(w.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{IsPaused: false})
	}

	ent, _ := components.Pause.First(w)
	return components.Pause.Get(ent)
}

// Paused reports the pause state without creating the singleton.
func Paused(w donburi.World) bool {
	ent, ok := components.Pause.First(w)
	return ok && components.Pause.Get(ent).IsPaused
}
