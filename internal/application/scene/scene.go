// Package scene builds the menu screens of the game.
//
// Every screen embeds *screen.Screen and only overrides OnOpen/OnClose
// when it has animations to run. Buttons carry commands; the engine
// turns them into screen changes.
package scene

import (
	"github.com/younwookim/towerdefence/internal/application/screen"
	"github.com/younwookim/towerdefence/internal/application/ui"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

// Screen names
const (
	Menu       = "menu"
	GameSelect = "game_select"
	Settings   = "settings"
	Heroes     = "heroes"
	Upgrades   = "upgrades"
	Game       = "game"
)

// TransitionFrames is how long menu transitions wait before switching
const TransitionFrames = 20

// Size is the logical screen size widgets are laid out against
type Size struct {
	W, H int
}

// Relative lays r out as a percentage-centered rect
func (s Size) Relative(r geom.Rect) ui.Layout {
	return ui.Layout{Rect: r, Positioning: geom.Relative, ScreenW: s.W, ScreenH: s.H}
}

// Absolute lays r out in pixels
func (s Size) Absolute(r geom.Rect) ui.Layout {
	return ui.Layout{Rect: r, Positioning: geom.Absolute, ScreenW: s.W, ScreenH: s.H}
}

// All builds every menu screen keyed by name. The gameplay screen is
// built by the playing package.
func All(size Size) map[string]screen.Container {
	return map[string]screen.Container{
		Menu:       NewMenu(size),
		GameSelect: NewGameSelect(size),
		Settings:   NewSettings(size),
		Heroes:     NewHeroes(size),
		Upgrades:   NewUpgrades(size),
	}
}
