package ui

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

// DefaultFontSize is used when a style leaves FontSize at zero.
const DefaultFontSize = 24

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
	faces      = map[float64]*text.GoTextFace{}
)

// face returns the cached face for size, or nil if the font failed to load.
func face(size float64) *text.GoTextFace {
	fontOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
		if err == nil {
			fontSource = src
		}
	})
	if fontSource == nil {
		return nil
	}
	if f, ok := faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{
		Source:    fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	faces[size] = f
	return f
}

func (s Style) fontSize() float64 {
	if s.FontSize > 0 {
		return s.FontSize
	}
	return DefaultFontSize
}

// drawCenteredText draws str centered in r in the style's size and color.
func drawCenteredText(dst *ebiten.Image, str string, r geom.Rect, s Style) {
	if str == "" {
		return
	}
	f := face(s.fontSize())
	if f == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(r.X+r.W/2, r.Y+r.H/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	if s.ForeColor != nil {
		op.ColorScale.ScaleWithColor(s.ForeColor)
	}
	text.Draw(dst, str, f, op)
}
