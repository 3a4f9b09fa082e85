package screen

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/towerdefence/internal/application/anim"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

// mockScreen is a test double for Container
type mockScreen struct {
	*Screen
	opened  int
	closed  int
	updates int
	draws   int
}

func newMockScreen(name string) *mockScreen {
	return &mockScreen{Screen: New(name, nil)}
}

func (m *mockScreen) OnOpen()                { m.opened++ }
func (m *mockScreen) OnClose()               { m.closed++ }
func (m *mockScreen) Update(ctx *Context)    { m.updates++ }
func (m *mockScreen) Draw(dst *ebiten.Image) { m.draws++ }

func newTestManager(t *testing.T) (*Manager, *mockScreen, *mockScreen) {
	t.Helper()
	menu := newMockScreen("menu")
	settings := newMockScreen("settings")
	m, err := NewManager("menu", map[string]Container{
		"menu":     menu,
		"settings": settings,
	}, Context{}, log.New(io.Discard))
	require.NoError(t, err)
	return m, menu, settings
}

func TestNewManager(t *testing.T) {
	m, menu, _ := newTestManager(t)

	assert.Equal(t, "menu", m.Current())
	assert.Equal(t, 1, menu.opened, "initial screen OnOpen called")
	assert.False(t, m.Transitioning())
}

func TestNewManager_UnknownInitial(t *testing.T) {
	_, err := NewManager("game", map[string]Container{"menu": newMockScreen("menu")}, Context{}, log.New(io.Discard))
	assert.Error(t, err)
}

func TestManager_ChangeScreenCountdown(t *testing.T) {
	m, menu, settings := newTestManager(t)

	ok := m.ChangeScreen("settings", 3)
	require.True(t, ok)
	assert.Equal(t, 1, menu.closed, "OnClose called when transition starts")
	assert.True(t, m.Transitioning())

	m.Update()
	m.Update()
	assert.Equal(t, "menu", m.Current(), "still counting down")
	assert.Equal(t, 0, settings.opened)

	m.Update()
	assert.Equal(t, "settings", m.Current())
	assert.Equal(t, 1, settings.opened)
	assert.False(t, m.Transitioning())
	assert.Equal(t, 3, menu.updates, "outgoing screen updated during the wait")
}

func TestManager_DrawsOutgoingScreenDuringTransition(t *testing.T) {
	m, menu, settings := newTestManager(t)

	m.ChangeScreen("settings", 2)
	m.Update()
	m.Draw(nil)

	assert.Equal(t, 1, menu.draws)
	assert.Equal(t, 0, settings.draws)

	m.Update()
	m.Draw(nil)
	assert.Equal(t, 1, settings.draws)
}

func TestManager_RejectsOverlappingTransition(t *testing.T) {
	m, menu, _ := newTestManager(t)
	m.AddScreen("game", newMockScreen("game"))

	require.True(t, m.ChangeScreen("settings", 5))
	assert.False(t, m.ChangeScreen("game", 1))
	assert.Equal(t, 1, menu.closed, "no second OnClose")

	for i := 0; i < 5; i++ {
		m.Update()
	}
	assert.Equal(t, "settings", m.Current(), "first transition wins")
}

func TestManager_UnknownTargetIsNoop(t *testing.T) {
	m, menu, _ := newTestManager(t)

	assert.False(t, m.ChangeScreen("heroes", 20))
	assert.Equal(t, "menu", m.Current())
	assert.Equal(t, 0, menu.closed)
	assert.False(t, m.Transitioning())
}

func TestManager_ZeroFramesSwapsOnNextUpdate(t *testing.T) {
	m, _, settings := newTestManager(t)

	m.ChangeScreen("settings", 0)
	assert.Equal(t, "menu", m.Current())

	m.Update()
	assert.Equal(t, "settings", m.Current())
	assert.Equal(t, 1, settings.opened)
}

func TestManager_AddScreenAfterConstruction(t *testing.T) {
	m, _, _ := newTestManager(t)
	game := newMockScreen("game")

	assert.False(t, m.Has("game"))
	m.AddScreen("game", game)
	assert.True(t, m.Has("game"))

	m.ChangeScreen("game", 1)
	m.Update()
	assert.Equal(t, "game", m.Current())
	assert.Same(t, game, m.Active())
}

func TestManager_UpdateOnlyCurrent(t *testing.T) {
	m, menu, settings := newTestManager(t)

	m.Update()
	m.Update()

	assert.Equal(t, 2, menu.updates)
	assert.Equal(t, 0, settings.updates)
}

// closingScreen starts its "_close" animations when it loses focus
type closingScreen struct {
	*Screen
}

func (c *closingScreen) OnClose() { c.StartAnimations("_close") }

// clickItem runs fire on its first update, like a button being clicked
type clickItem struct {
	fire  func()
	fired bool
}

func (c *clickItem) Draw(dst *ebiten.Image) {}
func (c *clickItem) Update(ctx *Context) {
	if !c.fired {
		c.fired = true
		c.fire()
	}
}

func newClickManager(t *testing.T, frames int) (*Manager, *mockItem, *anim.Animation) {
	t.Helper()
	sel := &closingScreen{Screen: New("select", nil)}
	btn := &mockItem{}
	closing := sel.AddAnimation("btn_close", geom.R(0, 0, 10, 10), geom.R(0, 250, 10, 10), frames, btn, anim.AttrRect)

	var m *Manager
	sel.AddItem("btn", btn)
	sel.AddItem("click", &clickItem{fire: func() { m.ChangeScreen("settings", frames) }})

	m, err := NewManager("select", map[string]Container{
		"select":   sel,
		"settings": newMockScreen("settings"),
	}, Context{}, log.New(io.Discard))
	require.NoError(t, err)
	return m, btn, closing
}

func TestManager_ChangeScreenFromItemWaitsFullDuration(t *testing.T) {
	m, btn, closing := newClickManager(t, 20)

	m.Update()
	require.True(t, m.Transitioning())
	assert.Equal(t, "select", m.Current(), "click frame does not count")
	assert.True(t, closing.Running())

	for i := 0; i < 19; i++ {
		m.Update()
		require.Equal(t, "select", m.Current(), "update %d", i+1)
	}
	assert.True(t, closing.Running(), "exit animation still playing")

	m.Update()
	assert.Equal(t, "settings", m.Current())
	assert.False(t, closing.Running(), "exit animation finished before the swap")
	assert.Equal(t, 20, closing.Counter())
	assert.Equal(t, geom.R(0, 250, 10, 10), btn.rect)
}

func TestManager_OneFrameChangeFromItemSwapsNextUpdate(t *testing.T) {
	m, _, _ := newClickManager(t, 1)

	m.Update()
	assert.Equal(t, "select", m.Current(), "no swap inside the click frame")

	m.Update()
	assert.Equal(t, "settings", m.Current())
}
