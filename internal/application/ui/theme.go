// Package ui provides the small widget set screens are built from.
//
// Widgets are screen items and animation targets: their bounds are exposed
// as the "rect" attribute so open/close animations can slide them around.
package ui

import "image/color"

// Palette
var (
	DarkBackgroundColor = color.RGBA{24, 24, 32, 255}
	DarkSurfaceColor    = color.RGBA{40, 40, 54, 255}
	DarkHoverColor      = color.RGBA{62, 62, 84, 255}
	DarkForeColor       = color.RGBA{230, 230, 240, 255}
	DarkAccentColor     = color.RGBA{120, 200, 255, 255}
)

// Style describes how a widget is filled and outlined.
type Style struct {
	Color       color.Color
	HoverColor  color.Color
	ForeColor   color.Color
	BorderColor color.Color
	BorderWidth float32
	// FontSize in pixels; zero means DefaultFontSize.
	FontSize float64
	// NoFill draws only the border and text.
	NoFill bool
}

// WithSize returns a copy of s with a different font size.
func (s Style) WithSize(size float64) Style {
	s.FontSize = size
	return s
}

// Themes
var (
	ButtonDark = Style{
		Color:       DarkSurfaceColor,
		HoverColor:  DarkHoverColor,
		ForeColor:   DarkForeColor,
		BorderColor: DarkForeColor,
		BorderWidth: 2,
	}
	ButtonDarkNoFill = Style{
		HoverColor:  DarkHoverColor,
		ForeColor:   DarkForeColor,
		BorderColor: DarkForeColor,
		BorderWidth: 2,
		NoFill:      true,
	}
	// ButtonDarkActive marks a toggle button that is on.
	ButtonDarkActive = Style{
		Color:       DarkSurfaceColor,
		HoverColor:  DarkHoverColor,
		ForeColor:   DarkAccentColor,
		BorderColor: DarkAccentColor,
		BorderWidth: 2,
	}
	LabelDark = Style{
		ForeColor: DarkForeColor,
		NoFill:    true,
	}
	RectDark = Style{
		Color:       DarkSurfaceColor,
		BorderColor: DarkAccentColor,
		BorderWidth: 2,
	}
)
