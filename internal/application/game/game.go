// Package game provides the frame scheduler that drives screens, the world
// and the round spawner from ebiten's game loop.
package game

import (
	"image/color"
	"math/rand"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/towerdefence/internal/application/command"
	"github.com/younwookim/towerdefence/internal/application/scene"
	"github.com/younwookim/towerdefence/internal/application/scene/playing"
	"github.com/younwookim/towerdefence/internal/application/screen"
	"github.com/younwookim/towerdefence/internal/application/state"
	"github.com/younwookim/towerdefence/internal/application/system"
)

// Draw priorities. Lower draws first.
const (
	PriorityLevel    = 1
	PriorityEntities = 2
	PriorityScreens  = 6
)

// Drawable is anything in the draw queue
type Drawable interface {
	Draw(dst *ebiten.Image)
}

// Updatable is anything in the update queue
type Updatable interface {
	Update()
}

// DrawEntry is one layer of the draw queue
type DrawEntry struct {
	Priority int
	Drawable Drawable
}

// World is the entity registry as the engine sees it
type World interface {
	system.Registry
	Updatable
	Drawable
}

// HUD is the gameplay screen
type HUD interface {
	screen.Container
	Attach(host playing.Host)
	Popup(name string) (screen.PopupItem, bool)
	SetRoundActive(active bool)
	SetFastForward(on bool)
}

// Options wires the engine's collaborators
type Options struct {
	ScreenW, ScreenH int

	Manager    *screen.Manager
	HUD        HUD
	Input      system.InputSource
	Level      Drawable
	World      World
	Combat     Updatable // optional
	Archetypes []system.Archetype
	Rand       *rand.Rand
	Logger     *log.Logger
}

// Game implements ebiten.Game.
//
// In gameplay (the current screen is the HUD) every update queue entry runs
// once per frame, twice at 2x speed, and the draw queue is drawn by
// priority. Anywhere else only the screen manager runs.
type Game struct {
	screenW int
	screenH int

	manager *screen.Manager
	hud     HUD
	input   system.InputSource
	world   World

	drawQueue   []DrawEntry
	updateQueue []Updatable

	round      *system.Round
	archetypes []system.Archetype
	rng        *rand.Rand

	mode         state.GameState
	speed        state.Speed
	paused       bool
	roundStarted bool
	quit         bool

	logger *log.Logger
}

// New creates the engine and registers the HUD with the manager.
// The manager's context is replaced so screens dispatch to the engine.
func New(opts Options) *Game {
	g := &Game{
		screenW:    opts.ScreenW,
		screenH:    opts.ScreenH,
		manager:    opts.Manager,
		hud:        opts.HUD,
		input:      opts.Input,
		world:      opts.World,
		archetypes: opts.Archetypes,
		rng:        opts.Rand,
		logger:     opts.Logger,
	}

	g.manager.AddScreen(scene.Game, g.hud)
	g.manager.SetContext(screen.Context{Pointer: opts.Input, Dispatcher: g})
	g.hud.Attach(g)

	g.round = system.NewRound(0, g.archetypes, g.world, g, g.rng, g.logger)

	g.drawQueue = []DrawEntry{
		{Priority: PriorityScreens, Drawable: g.manager},
		{Priority: PriorityLevel, Drawable: opts.Level},
		{Priority: PriorityEntities, Drawable: g.world},
	}
	g.updateQueue = []Updatable{g.world, g.manager}
	if opts.Combat != nil {
		g.updateQueue = append(g.updateQueue, opts.Combat)
	}
	g.updateQueue = append(g.updateQueue, g.round)

	return g
}

// AddDrawable adds a layer to the draw queue
func (g *Game) AddDrawable(priority int, d Drawable) {
	g.drawQueue = append(g.drawQueue, DrawEntry{Priority: priority, Drawable: d})
}

// Update runs one frame.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.input.Poll()
	if g.input.JustPressed(system.ActionQuit) {
		g.quit = true
	}

	if g.manager.Current() != scene.Game {
		g.mode = state.StateMenu
		g.manager.Update()
		return g.exit()
	}

	g.mode = state.StateGameplay
	if g.input.JustPressed(system.ActionPause) {
		g.TogglePopup(playing.PauseName)
	}
	if g.paused {
		g.mode = state.StatePaused
		g.manager.Update()
		return g.exit()
	}

	// Speed is re-read per step; ending a round drops back to 1x mid-frame.
	for i := 0; i < len(g.updateQueue); i++ {
		u := g.updateQueue[i]
		for step := 0; step < g.speed.Multiplier(); step++ {
			u.Update()
		}
	}
	return g.exit()
}

func (g *Game) exit() error {
	if g.quit {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}
	return nil
}

// Draw renders the frame.
// Implements ebiten.Game interface.
func (g *Game) Draw(dst *ebiten.Image) {
	if g.mode == state.StateMenu {
		dst.Fill(color.Black)
		g.manager.Draw(dst)
		return
	}

	g.sortDrawQueue()
	for _, e := range g.drawQueue {
		e.Drawable.Draw(dst)
		if g.paused && e.Drawable == Drawable(g.manager) {
			return
		}
	}
}

func (g *Game) sortDrawQueue() {
	sort.SliceStable(g.drawQueue, func(i, j int) bool {
		return g.drawQueue[i].Priority < g.drawQueue[j].Priority
	})
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Dispatch executes a command from the UI
func (g *Game) Dispatch(cmd command.Command) {
	g.logger.Debug("command", "cmd", cmd.String())
	switch cmd.Kind {
	case command.None:
	case command.ChangeScreen:
		g.manager.ChangeScreen(cmd.Screen, cmd.Frames)
	case command.TogglePopup:
		g.TogglePopup(cmd.Popup)
	case command.StartRound:
		g.StartRound()
	case command.FastForward:
		g.FastForward()
	case command.Quit:
		g.quit = true
	default:
		g.logger.Warn("unknown command", "kind", int(cmd.Kind))
	}
}

// StartRound replaces the finished round with the next one and starts it.
// Starting also toggles fast-forward.
func (g *Game) StartRound() {
	if g.roundStarted {
		g.logger.Debug("round already running", "round", g.round.Number())
		return
	}

	next := system.NewRound(g.round.Number()+1, g.archetypes, g.world, g, g.rng, g.logger)
	for i, u := range g.updateQueue {
		if u == Updatable(g.round) {
			g.updateQueue[i] = next
			break
		}
	}
	g.round = next
	g.roundStarted = true
	g.hud.SetRoundActive(true)
	g.logger.Info("round started", "round", next.Number(), "enemies", next.Remaining())

	g.FastForward()
}

// FastForward toggles between 1x and 2x speed
func (g *Game) FastForward() {
	g.speed = g.speed.Toggle()
	g.hud.SetFastForward(g.speed == state.SpeedFast)
	g.logger.Debug("speed changed", "speed", g.speed.String())
}

// EndRound implements system.RoundHost
func (g *Game) EndRound() {
	g.roundStarted = false
	g.speed = state.SpeedNormal
	g.hud.SetRoundActive(false)
	g.hud.SetFastForward(false)
}

// RoundStarted implements system.RoundHost
func (g *Game) RoundStarted() bool { return g.roundStarted }

// RoundNumber returns the current round number
func (g *Game) RoundNumber() int { return g.round.Number() }

// TogglePopup opens or closes the named HUD popup
func (g *Game) TogglePopup(name string) {
	p, ok := g.hud.Popup(name)
	if !ok {
		g.logger.Warn("unknown popup", "popup", name)
		return
	}
	opened := screen.TogglePopup(g.hud, p)
	g.logger.Debug("popup toggled", "popup", name, "open", opened)
}

// SetPaused freezes or resumes the world. Called by the pause popup.
func (g *Game) SetPaused(paused bool) { g.paused = paused }

// Paused reports whether the world is frozen
func (g *Game) Paused() bool { return g.paused }

// Mode returns the state computed on the last update
func (g *Game) Mode() state.GameState { return g.mode }

// Speed returns the current simulation speed
func (g *Game) Speed() state.Speed { return g.speed }

// Manager returns the screen manager
func (g *Game) Manager() *screen.Manager { return g.manager }
