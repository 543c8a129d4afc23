// Package input polls ebiten keyboard and gamepad state into action snapshots.
package input

import (
	cfg "github.com/automoto/ridgerunner/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding lists the keys and standard gamepad buttons that trigger one action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Keyboard implements systems.InputSource over ebiten.
type Keyboard struct {
	Bindings [cfg.ActionCount]Binding

	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID
}

func NewKeyboard() *Keyboard {
	k := &Keyboard{}
	k.Bindings[cfg.ActionMoveLeft] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	}
	k.Bindings[cfg.ActionMoveRight] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	}
	k.Bindings[cfg.ActionJump] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeyZ},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	}
	k.Bindings[cfg.ActionPause] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyP},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	}
	k.Bindings[cfg.ActionQuit] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyEscape},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	}
	return k
}

// Poll reports which actions are held right now.
func (k *Keyboard) Poll() [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool

	k.gamepadIDs = ebiten.AppendGamepadIDs(k.gamepadIDs[:0])

	for actionID, binding := range k.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held[actionID] = true
			}
		}
		for _, gpID := range k.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					held[actionID] = true
				}
			}
		}
	}
	return held
}
