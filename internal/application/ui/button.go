package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/towerdefence/internal/application/command"
	"github.com/younwookim/towerdefence/internal/application/screen"
)

// Button dispatches its Command when clicked.
type Button struct {
	Base
	Style   Style
	Text    string
	Command command.Command

	hovered bool
}

// NewButton creates a button.
func NewButton(style Style, layout Layout, text string, cmd command.Command) *Button {
	return &Button{
		Base:    Base{rect: layout.resolve()},
		Style:   style,
		Text:    text,
		Command: cmd,
	}
}

// Hovered reports whether the cursor was over the button on the last update.
func (b *Button) Hovered() bool { return b.hovered }

// Update implements screen.Item.
func (b *Button) Update(ctx *screen.Context) {
	x, y := ctx.Cursor()
	b.hovered = b.rect.Contains(float64(x), float64(y))

	if b.Command.Kind == command.None {
		return
	}
	if ctx.ClickIn(b.rect) {
		ctx.Dispatch(b.Command)
	}
}

// Draw implements screen.Item.
func (b *Button) Draw(dst *ebiten.Image) {
	fillRect(dst, b.rect, b.Style, b.hovered)
	drawCenteredText(dst, b.Text, b.rect, b.Style)
}
