package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/towerdefence/internal/application/screen"
)

// Panel is a filled, outlined rectangle.
type Panel struct {
	Base
	Style Style
}

// NewPanel creates a panel.
func NewPanel(style Style, layout Layout) *Panel {
	return &Panel{Base: Base{rect: layout.resolve()}, Style: style}
}

// Draw implements screen.Item.
func (p *Panel) Draw(dst *ebiten.Image) {
	fillRect(dst, p.rect, p.Style, false)
}

// Update implements screen.Item.
func (p *Panel) Update(*screen.Context) {}
