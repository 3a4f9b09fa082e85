package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

// Bound actions
const (
	ActionPause = "pause"
	ActionQuit  = "quit"
)

// InputState holds the input for one frame
type InputState struct {
	Pressed    map[string]bool // actions whose key went down this frame
	MouseX     int
	MouseY     int
	MouseClick bool
}

// InputSource is what the engine polls once per frame
type InputSource interface {
	Poll()
	JustPressed(action string) bool
	Cursor() (x, y int)
	ClickIn(r geom.Rect) bool
}

// InputSystem resolves raw ebiten input through the keybinding table
type InputSystem struct {
	bindings map[string]ebiten.Key

	state     InputState
	clickUsed bool

	read func() InputState
}

// NewInputSystem creates an input system for the action -> key table
func NewInputSystem(bindings map[string]ebiten.Key) *InputSystem {
	s := &InputSystem{bindings: make(map[string]ebiten.Key, len(bindings))}
	for action, key := range bindings {
		s.bindings[action] = key
	}
	s.read = s.GetInput
	return s
}

// GetInput reads the current input state from ebiten
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	pressed := make(map[string]bool, len(s.bindings))
	for action, key := range s.bindings {
		if inpututil.IsKeyJustPressed(key) {
			pressed[action] = true
		}
	}
	return InputState{
		Pressed:    pressed,
		MouseX:     mx,
		MouseY:     my,
		MouseClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// SetReader replaces where Poll gets its snapshot from, e.g. a replay.
// A nil reader restores live ebiten input.
func (s *InputSystem) SetReader(read func() InputState) {
	if read == nil {
		read = s.GetInput
	}
	s.read = read
}

// Poll takes the snapshot for this frame
func (s *InputSystem) Poll() {
	s.state = s.read()
	s.clickUsed = false
}

// State returns the current snapshot
func (s *InputSystem) State() InputState { return s.state }

// Bound reports whether action has a key
func (s *InputSystem) Bound(action string) bool {
	_, ok := s.bindings[action]
	return ok
}

// JustPressed reports whether the key bound to action went down this frame.
// Unbound actions are never pressed.
func (s *InputSystem) JustPressed(action string) bool {
	return s.state.Pressed[action]
}

// Cursor returns the cursor position
func (s *InputSystem) Cursor() (int, int) {
	return s.state.MouseX, s.state.MouseY
}

// ClickIn reports whether this frame's click landed in r and consumes it
func (s *InputSystem) ClickIn(r geom.Rect) bool {
	if !s.state.MouseClick || s.clickUsed {
		return false
	}
	if !r.Contains(float64(s.state.MouseX), float64(s.state.MouseY)) {
		return false
	}
	s.clickUsed = true
	return true
}
