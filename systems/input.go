package systems

import (
	"github.com/automoto/ridgerunner/components"
	cfg "github.com/automoto/ridgerunner/config"
	"github.com/yohamta/donburi"
)

// InputSource yields which actions are held this frame.
type InputSource interface {
	Poll() [cfg.ActionCount]bool
}

// UpdateInput advances the input singleton from src. It must run before the
// entities update.
func UpdateInput(w donburi.World, src InputSource) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		return nil
	}
	input := components.Input.Get(entry)
	var polled [cfg.ActionCount]bool
	if src != nil {
		polled = src.Poll()
	}
	input.Advance(polled)
	return input
}

// Script replays a fixed list of frames and then reports nothing held.
type Script struct {
	Frames [][cfg.ActionCount]bool
	next   int
}

// NewScript builds a script from per-frame action lists.
func NewScript(frames ...[]cfg.ActionID) *Script {
	s := &Script{Frames: make([][cfg.ActionCount]bool, len(frames))}
	for i, actions := range frames {
		for _, a := range actions {
			s.Frames[i][a] = true
		}
	}
	return s
}

// Hold appends n frames holding the given actions.
func (s *Script) Hold(n int, actions ...cfg.ActionID) *Script {
	var frame [cfg.ActionCount]bool
	for _, a := range actions {
		frame[a] = true
	}
	for i := 0; i < n; i++ {
		s.Frames = append(s.Frames, frame)
	}
	return s
}

func (s *Script) Poll() [cfg.ActionCount]bool {
	if s.next >= len(s.Frames) {
		return [cfg.ActionCount]bool{}
	}
	frame := s.Frames[s.next]
	s.next++
	return frame
}

// Done reports whether every scripted frame has been played.
func (s *Script) Done() bool {
	return s.next >= len(s.Frames)
}
