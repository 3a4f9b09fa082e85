package system

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/younwookim/towerdefence/internal/ecs"
)

// DefaultSpawnDelay is the number of updates between two releases
const DefaultSpawnDelay = 60

// Archetype is one row of the enemy table
type Archetype struct {
	Name   string
	Weight int // 0..100, percent of the round size
	New    func() ecs.Entity
}

// Registry is where released enemies go
type Registry interface {
	AddEntity(e ecs.Entity, tag ecs.Tag) ecs.EntityID
	Count(tag ecs.Tag) int
}

// RoundHost owns the started flag and reacts to the end of a round
type RoundHost interface {
	RoundStarted() bool
	EndRound()
}

// Round releases a pre-built pool of enemies into the registry at a fixed
// cadence while the host reports the round as started.
type Round struct {
	number  int
	pool    []ecs.Entity
	delay   int
	counter int

	registry Registry
	host     RoundHost
	rng      *rand.Rand
	logger   *log.Logger
}

// PoolSize returns floor(number^1.2), 0 for rounds below 1
func PoolSize(number int) int {
	if number <= 0 {
		return 0
	}
	return int(math.Pow(float64(number), 1.2))
}

// NewRound builds the pool for round number. Each archetype contributes
// PoolSize(number)*Weight/100 instances, in table order.
func NewRound(number int, archetypes []Archetype, registry Registry, host RoundHost, rng *rand.Rand, logger *log.Logger) *Round {
	n := PoolSize(number)
	r := &Round{
		number:   number,
		delay:    DefaultSpawnDelay,
		counter:  DefaultSpawnDelay,
		registry: registry,
		host:     host,
		rng:      rng,
		logger:   logger,
	}
	for _, a := range archetypes {
		count := n * a.Weight / 100
		for i := 0; i < count; i++ {
			r.pool = append(r.pool, a.New())
		}
	}
	logger.Debug("round built", "round", number, "size", n, "pool", len(r.pool))
	return r
}

// Number returns the round number
func (r *Round) Number() int { return r.number }

// Remaining returns how many enemies are still waiting to be released
func (r *Round) Remaining() int { return len(r.pool) }

// Delay returns the number of updates between releases
func (r *Round) Delay() int { return r.delay }

// Update advances the release counter. While the round is started it
// releases one random pool member every delay updates, and ends the round
// once the pool is drained and no enemy is left alive.
func (r *Round) Update() {
	r.counter++
	if !r.host.RoundStarted() {
		return
	}

	if len(r.pool) > 0 && r.counter >= r.delay {
		r.counter = 0
		r.release()
	}

	if len(r.pool) == 0 && r.registry.Count(ecs.TagEnemy) == 0 {
		r.logger.Info("round complete", "round", r.number)
		r.host.EndRound()
	}
}

func (r *Round) release() {
	i := r.rng.Intn(len(r.pool))
	e := r.pool[i]

	last := len(r.pool) - 1
	r.pool[i] = r.pool[last]
	r.pool[last] = nil
	r.pool = r.pool[:last]

	id := r.registry.AddEntity(e, ecs.TagEnemy)
	r.logger.Debug("enemy released", "round", r.number, "id", id, "remaining", len(r.pool))
}
