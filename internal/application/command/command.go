// Package command defines the actions UI items can request from the engine.
//
// Buttons hold a Command value instead of a callback. The engine receives
// commands through a Dispatcher and decides what each one means.
package command

import "fmt"

// Kind identifies the action a Command requests.
type Kind int

const (
	None Kind = iota
	ChangeScreen
	TogglePopup
	StartRound
	FastForward
	Quit
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case ChangeScreen:
		return "ChangeScreen"
	case TogglePopup:
		return "TogglePopup"
	case StartRound:
		return "StartRound"
	case FastForward:
		return "FastForward"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is a tagged action. Only the fields relevant to Kind are set.
type Command struct {
	Kind Kind

	// Screen and Frames are used by ChangeScreen.
	Screen string
	Frames int

	// Popup is used by TogglePopup.
	Popup string
}

// GoTo requests a transition to screen that waits frames before switching.
func GoTo(screen string, frames int) Command {
	return Command{Kind: ChangeScreen, Screen: screen, Frames: frames}
}

// Toggle requests the named popup be opened or closed.
func Toggle(popup string) Command {
	return Command{Kind: TogglePopup, Popup: popup}
}

// Simple builds a command that carries no arguments.
func Simple(k Kind) Command {
	return Command{Kind: k}
}

func (c Command) String() string {
	switch c.Kind {
	case ChangeScreen:
		return fmt.Sprintf("%s(%s, %d)", c.Kind, c.Screen, c.Frames)
	case TogglePopup:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Popup)
	default:
		return c.Kind.String()
	}
}

// Dispatcher executes commands.
type Dispatcher interface {
	Dispatch(cmd Command)
}

// Recorder is a Dispatcher that only remembers what it was given.
// Useful in tests and for screens built before the engine exists.
type Recorder struct {
	Commands []Command
}

// Dispatch appends cmd to r.Commands.
func (r *Recorder) Dispatch(cmd Command) {
	r.Commands = append(r.Commands, cmd)
}
