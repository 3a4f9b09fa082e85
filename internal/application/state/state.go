package state

// GameState represents the current state of the game
type GameState int

const (
	StateMenu GameState = iota
	StateGameplay
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateGameplay:
		return "Gameplay"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Speed is the world simulation speed
type Speed int

const (
	SpeedNormal Speed = iota
	SpeedFast
)

// Multiplier returns how many world updates run per frame
func (s Speed) Multiplier() int {
	if s == SpeedFast {
		return 2
	}
	return 1
}

// Toggle switches between normal and fast
func (s Speed) Toggle() Speed {
	if s == SpeedFast {
		return SpeedNormal
	}
	return SpeedFast
}

// String returns the string representation of the speed
func (s Speed) String() string {
	switch s {
	case SpeedNormal:
		return "1x"
	case SpeedFast:
		return "2x"
	default:
		return "Unknown"
	}
}
