package scene

import (
	"github.com/younwookim/towerdefence/internal/application/command"
	"github.com/younwookim/towerdefence/internal/application/screen"
	"github.com/younwookim/towerdefence/internal/application/ui"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

// InfoScreen is a titled page with a back button to game select.
// Settings, heroes and upgrades are all info screens for now.
type InfoScreen struct {
	*screen.Screen
}

func newInfo(name, title string, size Size) *InfoScreen {
	s := screen.New(name, ui.DarkBackgroundColor)
	s.AddItem("lbl_title", ui.NewLabel(ui.LabelDark.WithSize(64), size.Relative(geom.R(50, 15, float64(size.W), 100)), title))
	s.AddItem("pnl_body", ui.NewPanel(ui.RectDark, size.Relative(geom.R(50, 55, float64(size.W)*0.6, float64(size.H)*0.5))))
	s.AddItem("btn_back", ui.NewButton(ui.ButtonDarkNoFill, size.Absolute(geom.R(25, 25, 50, 50)), "X",
		command.GoTo(GameSelect, TransitionFrames)))
	return &InfoScreen{Screen: s}
}

// NewSettings creates the settings screen
func NewSettings(size Size) *InfoScreen { return newInfo(Settings, "SETTINGS", size) }

// NewHeroes creates the heroes screen
func NewHeroes(size Size) *InfoScreen { return newInfo(Heroes, "HEROES", size) }

// NewUpgrades creates the upgrades screen
func NewUpgrades(size Size) *InfoScreen { return newInfo(Upgrades, "UPGRADES", size) }
