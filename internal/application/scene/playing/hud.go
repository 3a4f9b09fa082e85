// Package playing provides the gameplay HUD and its pause popup.
package playing

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/towerdefence/internal/application/command"
	"github.com/younwookim/towerdefence/internal/application/scene"
	"github.com/younwookim/towerdefence/internal/application/screen"
	"github.com/younwookim/towerdefence/internal/application/ui"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

// Host is the part of the engine the HUD reads from and writes to
type Host interface {
	RoundNumber() int
	SetPaused(paused bool)
}

// Bank reports collected gold
type Bank interface {
	Gold() int
}

// Item names
const (
	LabelFPS          = "lbl_fps"
	LabelRound        = "lbl_round"
	LabelGold         = "lbl_gold"
	ButtonRoundStart  = "btn_roundstart"
	ButtonFastForward = "btn_fastforward"
)

// HUD is the "game" screen. It has no background so the level and
// entities drawn before it stay visible.
type HUD struct {
	*screen.Screen

	host   Host
	popups map[string]screen.PopupItem

	start       *ui.Button
	fastForward *ui.Button
}

// NewHUD creates the gameplay HUD. bank may be nil.
func NewHUD(size scene.Size, bank Bank) *HUD {
	h := &HUD{
		Screen: screen.New(scene.Game, nil),
		popups: make(map[string]screen.PopupItem),
	}

	h.AddItem(LabelFPS, ui.NewDynamicLabel(ui.LabelDark, size.Relative(geom.R(98, 98, 125, 50)),
		ui.TextFunc(func() string { return fmt.Sprintf("%d", int(ebiten.ActualFPS())) })))
	h.AddItem(LabelRound, ui.NewDynamicLabel(ui.LabelDark, size.Relative(geom.R(98, 2, 125, 50)),
		ui.TextFunc(h.roundText)))
	if bank != nil {
		h.AddItem(LabelGold, ui.NewDynamicLabel(ui.LabelDark, size.Relative(geom.R(2, 2, 125, 50)),
			ui.TextFunc(func() string { return fmt.Sprintf("$%d", bank.Gold()) })))
	}

	h.start = ui.NewButton(ui.ButtonDark, size.Relative(geom.R(95, 90, 100, 100)), ">", command.Simple(command.StartRound))
	h.fastForward = ui.NewButton(ui.ButtonDark, size.Relative(geom.R(95, 90, 100, 100)), ">>", command.Simple(command.FastForward))
	h.fastForward.SetHidden(true)
	h.AddItem(ButtonRoundStart, h.start)
	h.AddItem(ButtonFastForward, h.fastForward)

	pause := NewPause(size, h)
	h.popups[pause.Name()] = pause

	return h
}

func (h *HUD) roundText() string {
	if h.host == nil {
		return "0"
	}
	return fmt.Sprintf("%d", h.host.RoundNumber())
}

// Attach connects the HUD to the engine
func (h *HUD) Attach(host Host) {
	h.host = host
}

// Popup returns the named popup
func (h *HUD) Popup(name string) (screen.PopupItem, bool) {
	p, ok := h.popups[name]
	return p, ok
}

// SetRoundActive swaps the start button for the fast-forward button
// while a round is running, and back when it ends.
func (h *HUD) SetRoundActive(active bool) {
	h.start.SetHidden(active)
	h.fastForward.SetHidden(!active)
}

// SetFastForward shows whether 2x speed is on
func (h *HUD) SetFastForward(on bool) {
	if on {
		h.fastForward.Style = ui.ButtonDarkActive
		return
	}
	h.fastForward.Style = ui.ButtonDark
}

func (h *HUD) setPaused(paused bool) {
	if h.host != nil {
		h.host.SetPaused(paused)
	}
}
