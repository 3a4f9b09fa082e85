package config

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/towerdefence/internal/domain/entity"
)

// EngineConfig is the root config for config.cfg
type EngineConfig struct {
	ScreenWidth  int
	ScreenHeight int
	FPS          int
	Title        string

	// Bindings maps an action name to its key
	Bindings map[string]ebiten.Key

	// Values holds every KEY VALUE line, including the ones above
	Values map[string]string
}

// WorldConfig is the root config for enemies.yaml
type WorldConfig struct {
	Archetypes []ArchetypeConfig `yaml:"archetypes"`
	Path       []PointConfig     `yaml:"path"`
	Towers     []TowerConfig     `yaml:"towers"`
}

// ArchetypeConfig is one row of the enemy table
type ArchetypeConfig struct {
	Name   string       `yaml:"name"`
	Kind   string       `yaml:"kind"`
	Weight int          `yaml:"weight"` // 0-100
	Sprite string       `yaml:"sprite"`
	Stats  *StatsConfig `yaml:"stats"`
}

// StatsConfig overrides the built-in stats of a kind.
// Zero fields keep the built-in value.
type StatsConfig struct {
	MaxHealth int     `yaml:"max_health"`
	Speed     float64 `yaml:"speed"` // pixels per update
	Size      float64 `yaml:"size"`  // pixels
	Bounty    int     `yaml:"bounty"`
}

// EnemyStats returns the kind's built-in stats with any overrides applied
func (a ArchetypeConfig) EnemyStats() entity.EnemyStats {
	stats := entity.DefaultStats(a.Kind)
	if a.Stats == nil {
		return stats
	}
	if a.Stats.MaxHealth > 0 {
		stats.MaxHealth = a.Stats.MaxHealth
	}
	if a.Stats.Speed > 0 {
		stats.Speed = a.Stats.Speed
	}
	if a.Stats.Size > 0 {
		stats.Size = a.Stats.Size
	}
	if a.Stats.Bounty > 0 {
		stats.Bounty = a.Stats.Bounty
	}
	return stats
}

// PointConfig is a pixel position
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// TowerConfig places a tower
type TowerConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Range    float64 `yaml:"range"` // pixels
	Damage   int     `yaml:"damage"`
	Cooldown int     `yaml:"cooldown"` // frames
	Sprite   string  `yaml:"sprite"`
}
