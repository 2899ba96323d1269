package modes

import "github.com/lixenwraith/planet-offline/engine"

const (
	// PressHoldFrames keeps a fresh press held until the terminal's auto-repeat starts
	PressHoldFrames = 30

	// RepeatHoldFrames keeps a key held between two auto-repeat events
	RepeatHoldFrames = 6
)

// KeyState emulates held keys for terminals that report presses and repeats but no releases
// A key is held until its countdown expires; it satisfies engine.Input
type KeyState struct {
	frames map[engine.Key]int // Frames left before the key counts as released
}

func NewKeyState() *KeyState {
	return &KeyState{frames: make(map[engine.Key]int)}
}

// Press records a press or repeat and reports whether it was a down edge
func (s *KeyState) Press(k engine.Key) bool {
	left, held := s.frames[k]
	if !held {
		s.frames[k] = PressHoldFrames
		if opp, ok := opposite[k]; ok {
			delete(s.frames, opp)
		}
		return true
	}
	s.frames[k] = max(left, RepeatHoldFrames)
	return false
}

// Held reports whether k is currently held
func (s *KeyState) Held(k engine.Key) bool {
	_, ok := s.frames[k]
	return ok
}

// Tick counts every held key down one frame and releases expired keys
func (s *KeyState) Tick() {
	for k, left := range s.frames {
		if left <= 1 {
			delete(s.frames, k)
			continue
		}
		s.frames[k] = left - 1
	}
}

// Reset releases every key
func (s *KeyState) Reset() {
	clear(s.frames)
}

// A terminal only repeats the last key, so pressing one arrow releases the arrow opposite it
var opposite = map[engine.Key]engine.Key{
	engine.KeyLeft:  engine.KeyRight,
	engine.KeyRight: engine.KeyLeft,
	engine.KeyUp:    engine.KeyDown,
	engine.KeyDown:  engine.KeyUp,
}
