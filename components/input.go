package components

import (
	cfg "github.com/automoto/ridgerunner/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// Pressed (rising edge) is computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's held state
	Previous [cfg.ActionCount]bool // Previous frame's held state
}

// Advance swaps buffers: current becomes previous and the new poll becomes current.
func (in *InputData) Advance(polled [cfg.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = polled
}

// Held reports whether the action is down this frame.
func (in *InputData) Held(a cfg.ActionID) bool {
	if a < 0 || a >= cfg.ActionCount {
		return false
	}
	return in.Current[a]
}

// Pressed reports whether the action went down this frame.
func (in *InputData) Pressed(a cfg.ActionID) bool {
	if a < 0 || a >= cfg.ActionCount {
		return false
	}
	return in.Current[a] && !in.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
