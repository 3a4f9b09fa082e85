package playing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/towerdefence/internal/application/command"
	"github.com/younwookim/towerdefence/internal/application/scene"
	"github.com/younwookim/towerdefence/internal/application/screen"
	"github.com/younwookim/towerdefence/internal/application/ui"
)

var testSize = scene.Size{W: 1280, H: 720}

type mockHost struct {
	round  int
	paused []bool
}

func (h *mockHost) RoundNumber() int      { return h.round }
func (h *mockHost) SetPaused(paused bool) { h.paused = append(h.paused, paused) }

type mockBank struct{ gold int }

func (b *mockBank) Gold() int { return b.gold }

func hudButton(t *testing.T, h *HUD, name string) *ui.Button {
	t.Helper()
	item, ok := h.Item(name)
	require.True(t, ok)
	btn, ok := item.(*ui.Button)
	require.True(t, ok)
	return btn
}

func hudLabel(t *testing.T, h *HUD, name string) *ui.Label {
	t.Helper()
	item, ok := h.Item(name)
	require.True(t, ok)
	lbl, ok := item.(*ui.Label)
	require.True(t, ok)
	return lbl
}

func TestNewHUD(t *testing.T) {
	h := NewHUD(testSize, &mockBank{gold: 12})

	assert.Equal(t, scene.Game, h.Name())
	assert.Nil(t, h.Background, "HUD must not paint over the world")
	assert.Equal(t, command.Simple(command.StartRound), hudButton(t, h, ButtonRoundStart).Command)
	assert.Equal(t, command.Simple(command.FastForward), hudButton(t, h, ButtonFastForward).Command)
	assert.False(t, hudButton(t, h, ButtonRoundStart).Hidden())
	assert.True(t, hudButton(t, h, ButtonFastForward).Hidden())
	assert.Equal(t, "$12", hudLabel(t, h, LabelGold).Content())

	_, ok := h.Popup(PauseName)
	assert.True(t, ok)
	assert.False(t, h.HasItem(PauseName), "Pause starts closed")
}

func TestNewHUD_NoBank(t *testing.T) {
	h := NewHUD(testSize, nil)

	assert.False(t, h.HasItem(LabelGold))
}

func TestHUD_RoundLabel(t *testing.T) {
	h := NewHUD(testSize, nil)
	lbl := hudLabel(t, h, LabelRound)
	assert.Equal(t, "0", lbl.Content())

	host := &mockHost{round: 7}
	h.Attach(host)
	assert.Equal(t, "7", lbl.Content())
}

func TestHUD_SetRoundActive(t *testing.T) {
	h := NewHUD(testSize, nil)

	h.SetRoundActive(true)
	assert.True(t, hudButton(t, h, ButtonRoundStart).Hidden())
	assert.False(t, hudButton(t, h, ButtonFastForward).Hidden())

	h.SetRoundActive(false)
	assert.False(t, hudButton(t, h, ButtonRoundStart).Hidden())
	assert.True(t, hudButton(t, h, ButtonFastForward).Hidden())
}

func TestHUD_SetFastForward(t *testing.T) {
	h := NewHUD(testSize, nil)
	ff := hudButton(t, h, ButtonFastForward)

	h.SetFastForward(true)
	assert.Equal(t, ui.ButtonDarkActive, ff.Style)

	h.SetFastForward(false)
	assert.Equal(t, ui.ButtonDark, ff.Style)
}

func TestPause_TogglePausesHost(t *testing.T) {
	h := NewHUD(testSize, nil)
	host := &mockHost{}
	h.Attach(host)
	p, _ := h.Popup(PauseName)

	assert.True(t, screen.TogglePopup(h, p))
	assert.True(t, h.HasItem(PauseName))

	assert.False(t, screen.TogglePopup(h, p))
	assert.False(t, h.HasItem(PauseName))

	assert.Equal(t, []bool{true, false}, host.paused)
}

func TestPause_ButtonCommands(t *testing.T) {
	p := NewPause(testSize, NewHUD(testSize, nil))

	tests := []struct {
		item string
		cmd  command.Command
	}{
		{"btn_settings", command.GoTo(scene.Settings, 1)},
		{"btn_continue", command.Toggle(PauseName)},
		{"btn_exit", command.GoTo(scene.GameSelect, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			item, ok := p.Item(tt.item)
			require.True(t, ok)
			assert.Equal(t, tt.cmd, item.(*ui.Button).Command)
		})
	}
}

func TestPause_WithoutHost(t *testing.T) {
	h := NewHUD(testSize, nil)
	p, _ := h.Popup(PauseName)

	assert.NotPanics(t, func() { screen.TogglePopup(h, p) })
}
