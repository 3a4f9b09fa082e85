package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/towerdefence/internal/application/screen"
)

// Label draws a line of text centered in its rect.
type Label struct {
	Base
	Style Style

	// Text is drawn when Source is nil.
	Text string
	// Source, if set, is read every frame.
	Source fmt.Stringer
}

// TextFunc adapts a function to fmt.Stringer for dynamic labels.
type TextFunc func() string

func (f TextFunc) String() string { return f() }

// NewLabel creates a label with fixed text.
func NewLabel(style Style, layout Layout, text string) *Label {
	return &Label{Base: Base{rect: layout.resolve()}, Style: style, Text: text}
}

// NewDynamicLabel creates a label whose text comes from src each frame.
func NewDynamicLabel(style Style, layout Layout, src fmt.Stringer) *Label {
	return &Label{Base: Base{rect: layout.resolve()}, Style: style, Source: src}
}

// Content returns the text the label would draw now.
func (l *Label) Content() string {
	if l.Source != nil {
		return l.Source.String()
	}
	return l.Text
}

// Draw implements screen.Item.
func (l *Label) Draw(dst *ebiten.Image) {
	fillRect(dst, l.rect, l.Style, false)
	drawCenteredText(dst, l.Content(), l.rect, l.Style)
}

// Update implements screen.Item.
func (l *Label) Update(*screen.Context) {}
