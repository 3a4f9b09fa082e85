package scene

import (
	"github.com/younwookim/towerdefence/internal/application/command"
	"github.com/younwookim/towerdefence/internal/application/screen"
	"github.com/younwookim/towerdefence/internal/application/ui"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

// MenuScreen is the title screen
type MenuScreen struct {
	*screen.Screen
}

// NewMenu creates the title screen
func NewMenu(size Size) *MenuScreen {
	s := screen.New(Menu, ui.DarkBackgroundColor)

	s.AddItem("lbl_title", ui.NewLabel(ui.LabelDark.WithSize(100), size.Relative(geom.R(50, 30, float64(size.W), 200)), "TOWER DEFENCE"))
	s.AddItem("btn_start", ui.NewButton(ui.ButtonDark, size.Relative(geom.R(50, 60, 270, 100)), "START",
		command.GoTo(GameSelect, TransitionFrames)))
	s.AddItem("btn_quit", ui.NewButton(ui.ButtonDarkNoFill, size.Relative(geom.R(50, 80, 270, 80)), "QUIT",
		command.Simple(command.Quit)))

	return &MenuScreen{Screen: s}
}
