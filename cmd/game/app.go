package main

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/towerdefence/internal/application/game"
	"github.com/younwookim/towerdefence/internal/application/scene"
	"github.com/younwookim/towerdefence/internal/application/scene/playing"
	"github.com/younwookim/towerdefence/internal/application/screen"
	"github.com/younwookim/towerdefence/internal/application/system"
	"github.com/younwookim/towerdefence/internal/domain/entity"
	"github.com/younwookim/towerdefence/internal/domain/geom"
	"github.com/younwookim/towerdefence/internal/ecs"
	"github.com/younwookim/towerdefence/internal/infrastructure/assets"
	"github.com/younwookim/towerdefence/internal/infrastructure/config"
)

// newGame wires screens, world and engine from the loaded config
func newGame(cfg *config.GameConfig, sprites *assets.Provider, input system.InputSource, rng *rand.Rand, logger *log.Logger) (*game.Game, error) {
	size := scene.Size{W: cfg.Engine.ScreenWidth, H: cfg.Engine.ScreenHeight}

	world := ecs.NewWorld()
	path := buildPath(cfg.World.Path)
	for _, tc := range cfg.World.Towers {
		world.AddEntity(buildTower(tc, sprites), ecs.TagTower)
	}
	combat := system.NewCombatSystem(world, logger.WithPrefix("combat"))

	hud := playing.NewHUD(size, combat)
	screens := scene.All(size)
	screens[scene.Game] = hud

	manager, err := screen.NewManager(scene.Menu, screens, screen.Context{Pointer: input}, logger.WithPrefix("screens"))
	if err != nil {
		return nil, fmt.Errorf("failed to create screen manager: %w", err)
	}

	return game.New(game.Options{
		ScreenW:    size.W,
		ScreenH:    size.H,
		Manager:    manager,
		HUD:        hud,
		Input:      input,
		Level:      entity.NewLevel(path),
		World:      world,
		Combat:     combat,
		Archetypes: buildArchetypes(cfg.World.Archetypes, path, sprites),
		Rand:       rng,
		Logger:     logger.WithPrefix("game"),
	}), nil
}

func buildPath(points []config.PointConfig) *entity.Path {
	p := &entity.Path{Points: make([]geom.Vec, len(points))}
	for i, pt := range points {
		p.Points[i] = geom.Vec{X: pt.X, Y: pt.Y}
	}
	return p
}

func buildTower(tc config.TowerConfig, sprites *assets.Provider) *entity.Tower {
	stats := entity.TowerStats{Range: tc.Range, Damage: tc.Damage, Cooldown: tc.Cooldown}
	sprite := sprites.Get(assets.NullKey)
	if tc.Sprite != "" {
		sprite = sprites.Get(tc.Sprite)
	}
	return entity.NewTower(geom.Vec{X: tc.X, Y: tc.Y}, stats, sprite)
}

// buildArchetypes turns the enemy table into constructors. Sprites are
// resolved once, not per enemy.
func buildArchetypes(table []config.ArchetypeConfig, path *entity.Path, sprites *assets.Provider) []system.Archetype {
	out := make([]system.Archetype, 0, len(table))
	for _, a := range table {
		kind := a.Kind
		stats := a.EnemyStats()
		sprite := sprites.Get(assets.NullKey)
		if a.Sprite != "" {
			sprite = sprites.Get(a.Sprite)
		}
		out = append(out, system.Archetype{
			Name:   a.Name,
			Weight: a.Weight,
			New: func() ecs.Entity {
				return entity.NewEnemy(kind, stats, path, sprite)
			},
		})
	}
	return out
}
