package playing

import (
	"github.com/younwookim/towerdefence/internal/application/command"
	"github.com/younwookim/towerdefence/internal/application/scene"
	"github.com/younwookim/towerdefence/internal/application/screen"
	"github.com/younwookim/towerdefence/internal/application/ui"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

// PauseName is the name the pause popup is toggled under
const PauseName = "pause"

// Pause is the pause menu. Opening it pauses the world, closing resumes.
type Pause struct {
	*screen.Popup
	hud *HUD
}

// NewPause creates the pause popup for hud
func NewPause(size scene.Size, hud *HUD) *Pause {
	p := &Pause{Popup: screen.NewPopup(PauseName), hud: hud}

	p.AddItem("pnl_bg", ui.NewPanel(ui.RectDark, size.Relative(geom.R(50, 50, 500, 500))))
	p.AddItem("lbl_paused", ui.NewLabel(ui.LabelDark.WithSize(80), size.Relative(geom.R(50, 8, 1000, 100)), "PAUSED"))
	p.AddItem("btn_settings", ui.NewButton(ui.ButtonDark, size.Relative(geom.R(50, 51, 400, 100)), "SETTINGS",
		command.GoTo(scene.Settings, 1)))
	p.AddItem("btn_continue", ui.NewButton(ui.ButtonDark, size.Relative(geom.R(50, 28, 400, 100)), "CONTINUE",
		command.Toggle(PauseName)))
	p.AddItem("btn_exit", ui.NewButton(ui.ButtonDark, size.Relative(geom.R(50, 73, 400, 100)), "EXIT",
		command.GoTo(scene.GameSelect, 1)))

	return p
}

// OnOpen pauses the game.
func (p *Pause) OnOpen() { p.hud.setPaused(true) }

// OnClose resumes the game.
func (p *Pause) OnClose() { p.hud.setPaused(false) }
