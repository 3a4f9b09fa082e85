// Package screen implements named UI screens, popups and the manager that
// switches between them.
//
// A Screen is an ordered set of named items plus named animations. The
// Manager owns every registered screen, draws only the current one and
// runs timed transitions between them. A Popup is a screen-like item that
// gets inserted into, and removed from, the current screen.
package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/towerdefence/internal/application/command"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

// Pointer is the cursor state for the current frame.
type Pointer interface {
	// Cursor returns the cursor position in screen pixels.
	Cursor() (x, y int)
	// ClickIn reports whether a click landed inside r this frame.
	// It returns true at most once per frame; the click is consumed.
	ClickIn(r geom.Rect) bool
}

// Context is handed to every item on Update.
type Context struct {
	Pointer    Pointer
	Dispatcher command.Dispatcher
}

// Cursor returns the cursor position, or (-1, -1) without a pointer.
func (c *Context) Cursor() (int, int) {
	if c == nil || c.Pointer == nil {
		return -1, -1
	}
	return c.Pointer.Cursor()
}

// ClickIn forwards to the pointer. A nil context never clicks.
func (c *Context) ClickIn(r geom.Rect) bool {
	if c == nil || c.Pointer == nil {
		return false
	}
	return c.Pointer.ClickIn(r)
}

// Dispatch forwards cmd to the dispatcher if there is one.
func (c *Context) Dispatch(cmd command.Command) {
	if c == nil || c.Dispatcher == nil {
		return
	}
	c.Dispatcher.Dispatch(cmd)
}

// Item is anything a screen can hold.
type Item interface {
	Draw(dst *ebiten.Image)
	Update(ctx *Context)
}

// Hider is implemented by items that can be hidden. Hidden items are
// neither drawn nor updated.
type Hider interface {
	Hidden() bool
}

// Container is the capability set shared by screens and popups.
type Container interface {
	Item
	HasItem(name string) bool
	AddItem(name string, item Item)
	RemoveItem(name string)
	OnOpen()
	OnClose()
}

// PopupItem is an overlay that can be toggled into a Container.
type PopupItem interface {
	Item
	Name() string
	OnOpen()
	OnClose()
}

func isHidden(item Item) bool {
	h, ok := item.(Hider)
	return ok && h.Hidden()
}
