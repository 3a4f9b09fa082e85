package screen

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type transition struct {
	target    string
	remaining int
	queued    bool // started during this frame's screen update
}

// Manager is a state machine over named screens.
//
// Only the current screen is updated and drawn. ChangeScreen starts a
// countdown transition; while it runs the outgoing screen keeps drawing so
// its exit animations stay visible. At most one transition is in flight.
type Manager struct {
	screens  map[string]Container
	current  string
	pending  *transition
	ctx      Context
	logger   *log.Logger
	updating bool
}

// NewManager creates a manager showing initial, which must be one of
// screens. The initial screen's OnOpen is called immediately.
func NewManager(initial string, screens map[string]Container, ctx Context, logger *log.Logger) (*Manager, error) {
	if _, ok := screens[initial]; !ok {
		return nil, fmt.Errorf("initial screen %q is not registered", initial)
	}

	m := &Manager{
		screens: make(map[string]Container, len(screens)),
		current: initial,
		ctx:     ctx,
		logger:  logger,
	}
	for name, c := range screens {
		m.screens[name] = c
	}
	m.screens[initial].OnOpen()
	return m, nil
}

// AddScreen registers c under name, replacing any previous screen with
// that name. Replacing the current screen takes effect immediately.
func (m *Manager) AddScreen(name string, c Container) {
	m.screens[name] = c
}

// SetContext replaces the context passed to screens on Update.
func (m *Manager) SetContext(ctx Context) {
	m.ctx = ctx
}

// Has reports whether a screen is registered under name.
func (m *Manager) Has(name string) bool {
	_, ok := m.screens[name]
	return ok
}

// Current returns the name of the current screen.
func (m *Manager) Current() string { return m.current }

// Active returns the current screen.
func (m *Manager) Active() Container { return m.screens[m.current] }

// Screen returns the named screen.
func (m *Manager) Screen(name string) (Container, bool) {
	c, ok := m.screens[name]
	return c, ok
}

// Transitioning reports whether a transition is in flight.
func (m *Manager) Transitioning() bool { return m.pending != nil }

// ChangeScreen starts a transition to target that completes after frames
// more updates. A call made by an item during Update is not counted
// against that frame. It returns false without side effects if target is unknown or
// another transition is still in flight.
func (m *Manager) ChangeScreen(target string, frames int) bool {
	if _, ok := m.screens[target]; !ok {
		m.logger.Warn("unknown screen", "screen", target)
		return false
	}
	if m.pending != nil {
		m.logger.Debug("transition rejected, one already in flight",
			"from", m.current, "to", m.pending.target, "requested", target)
		return false
	}

	m.logger.Debug("changing screen", "from", m.current, "to", target, "frames", frames)
	m.screens[m.current].OnClose()
	m.pending = &transition{target: target, remaining: frames, queued: m.updating}
	return true
}

// Update updates the current screen, then advances any transition.
func (m *Manager) Update() {
	m.updating = true
	m.screens[m.current].Update(&m.ctx)
	m.updating = false
	m.advance()
}

func (m *Manager) advance() {
	if m.pending == nil {
		return
	}
	if m.pending.queued {
		m.pending.queued = false
		return
	}
	m.pending.remaining--
	if m.pending.remaining > 0 {
		return
	}

	next := m.pending.target
	m.pending = nil
	m.current = next
	m.screens[next].OnOpen()
	m.logger.Info("screen changed", "screen", next)
}

// Draw draws the current screen only.
func (m *Manager) Draw(dst *ebiten.Image) {
	m.screens[m.current].Draw(dst)
}
