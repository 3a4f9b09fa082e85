package system

import (
	"github.com/charmbracelet/log"
	"github.com/younwookim/towerdefence/internal/domain/entity"
	"github.com/younwookim/towerdefence/internal/ecs"
)

// EntitySource lists live entities by tag
type EntitySource interface {
	Entities(tag ecs.Tag) []ecs.Entity
}

// CombatSystem lets every ready tower shoot the nearest enemy in range
type CombatSystem struct {
	world  EntitySource
	logger *log.Logger

	kills int
	gold  int
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(world EntitySource, logger *log.Logger) *CombatSystem {
	return &CombatSystem{world: world, logger: logger}
}

// Kills returns the number of enemies killed so far
func (s *CombatSystem) Kills() int { return s.kills }

// Gold returns the bounty collected so far
func (s *CombatSystem) Gold() int { return s.gold }

// Update resolves one round of tower fire
func (s *CombatSystem) Update() {
	enemies := s.enemies()
	if len(enemies) == 0 {
		return
	}

	for _, te := range s.world.Entities(ecs.TagTower) {
		tower, ok := te.(*entity.Tower)
		if !ok || !tower.Ready() {
			continue
		}
		target := nearestInRange(tower, enemies)
		if target == nil {
			continue
		}
		if tower.Fire(target) {
			s.kills++
			s.gold += target.Bounty
			s.logger.Debug("enemy killed", "kind", target.Kind, "bounty", target.Bounty, "gold", s.gold)
		}
	}
}

func (s *CombatSystem) enemies() []*entity.Enemy {
	list := s.world.Entities(ecs.TagEnemy)
	out := make([]*entity.Enemy, 0, len(list))
	for _, e := range list {
		if enemy, ok := e.(*entity.Enemy); ok {
			out = append(out, enemy)
		}
	}
	return out
}

// nearestInRange returns the closest living enemy within the tower's range.
// Ties go to the enemy added first.
func nearestInRange(t *entity.Tower, enemies []*entity.Enemy) *entity.Enemy {
	var best *entity.Enemy
	bestDist := 0.0
	for _, e := range enemies {
		if !e.Alive() || !t.InRange(e.Pos) {
			continue
		}
		d := e.Pos.Sub(t.Pos).LenSq()
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}
