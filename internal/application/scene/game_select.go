package scene

import (
	"github.com/younwookim/towerdefence/internal/application/anim"
	"github.com/younwookim/towerdefence/internal/application/command"
	"github.com/younwookim/towerdefence/internal/application/screen"
	"github.com/younwookim/towerdefence/internal/application/ui"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

// Slide offsets for the game select open/close animations
const (
	slideDown  = 250
	slideRight = 100
)

// GameSelectScreen picks what to do next: play, heroes, upgrades or settings.
// Its buttons slide in on open and out on close.
type GameSelectScreen struct {
	*screen.Screen
}

// NewGameSelect creates the game select screen
func NewGameSelect(size Size) *GameSelectScreen {
	s := screen.New(GameSelect, ui.DarkBackgroundColor)

	slides := []struct {
		name string
		btn  *ui.Button
	}{
		{"btn_play", ui.NewButton(ui.ButtonDark, size.Relative(geom.R(50, 85, 180, 100)), "PLAY", command.GoTo(Game, TransitionFrames))},
		{"btn_heroes", ui.NewButton(ui.ButtonDark, size.Relative(geom.R(30, 87, 270, 100)), "HEROES", command.GoTo(Heroes, TransitionFrames))},
		{"btn_upgrades", ui.NewButton(ui.ButtonDark, size.Relative(geom.R(70, 87, 270, 100)), "UPGRADE", command.GoTo(Upgrades, TransitionFrames))},
	}
	for _, sl := range slides {
		s.AddItem(sl.name, sl.btn)
		addSlide(s, sl.name, sl.btn, 0, slideDown)
	}

	s.AddItem("btn_back", ui.NewButton(ui.ButtonDarkNoFill, size.Absolute(geom.R(25, 25, 50, 50)), "X",
		command.GoTo(Menu, TransitionFrames)))

	settings := ui.NewButton(ui.ButtonDark, size.Relative(geom.R(97, 5, 50, 50)), "{o}", command.GoTo(Settings, TransitionFrames))
	s.AddItem("btn_settings", settings)
	addSlide(s, "btn_settings", settings, slideRight, 0)

	s.AddItem("lbl_title", ui.NewLabel(ui.LabelDark.WithSize(100), size.Relative(geom.R(50, 40, float64(size.W), 200)), "TOWER DEFENCE"))

	return &GameSelectScreen{Screen: s}
}

// addSlide registers name_open and name_close, moving btn between its
// resting rect and the rect offset by dx, dy.
func addSlide(s *screen.Screen, name string, btn *ui.Button, dx, dy float64) {
	rest := btn.Rect()
	away := rest.Offset(dx, dy)
	s.AddAnimation(name+"_open", away, rest, TransitionFrames, btn, anim.AttrRect)
	s.AddAnimation(name+"_close", rest, away, TransitionFrames, btn, anim.AttrRect)
}

// OnOpen slides the buttons in.
func (g *GameSelectScreen) OnOpen() {
	g.StartAnimations("_open")
}

// OnClose slides the buttons out.
func (g *GameSelectScreen) OnClose() {
	g.StartAnimations("_close")
}
