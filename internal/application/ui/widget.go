package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/towerdefence/internal/application/anim"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

// Base holds the bounds and visibility every widget shares.
type Base struct {
	rect   geom.Rect
	hidden bool
}

// Rect returns the widget bounds in pixels.
func (b *Base) Rect() geom.Rect { return b.rect }

// SetRect moves or resizes the widget.
func (b *Base) SetRect(r geom.Rect) { b.rect = r }

// SetAttr implements anim.Target. Only the rect attribute exists.
func (b *Base) SetAttr(attr string, r geom.Rect) {
	if attr == anim.AttrRect {
		b.rect = r
	}
}

// Hidden reports whether the widget is hidden.
func (b *Base) Hidden() bool { return b.hidden }

// SetHidden shows or hides the widget.
func (b *Base) SetHidden(hidden bool) { b.hidden = hidden }

// Layout places a widget. Rect is interpreted according to Positioning
// against a screen of ScreenW x ScreenH.
type Layout struct {
	Rect        geom.Rect
	Positioning geom.Positioning
	ScreenW     int
	ScreenH     int
}

func (l Layout) resolve() geom.Rect {
	return geom.Resolve(l.Rect, l.Positioning, l.ScreenW, l.ScreenH)
}

func fillRect(dst *ebiten.Image, r geom.Rect, s Style, hovered bool) {
	if !s.NoFill || hovered {
		c := s.Color
		if hovered && s.HoverColor != nil {
			c = s.HoverColor
		}
		if c != nil {
			vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
		}
	}
	if s.BorderWidth > 0 && s.BorderColor != nil {
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), s.BorderWidth, s.BorderColor, false)
	}
}
