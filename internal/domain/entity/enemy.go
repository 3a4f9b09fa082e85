package entity

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

// Enemy kinds
const (
	KindStandard = "standard"
	KindFast     = "fast"
)

// EnemyStats are the per-archetype tunables
type EnemyStats struct {
	MaxHealth int
	Speed     float64 // pixels per update
	Size      float64 // sprite edge in pixels
	Bounty    int
}

// DefaultStats returns the built-in stats for a kind.
// Unknown kinds get the standard stats.
func DefaultStats(kind string) EnemyStats {
	switch kind {
	case KindFast:
		return EnemyStats{MaxHealth: 6, Speed: 3, Size: 20, Bounty: 2}
	default:
		return EnemyStats{MaxHealth: 12, Speed: 1.5, Size: 28, Bounty: 1}
	}
}

// Enemy walks along a path until it is killed or reaches the end
type Enemy struct {
	Kind   string
	Pos    geom.Vec
	Health Health
	Speed  float64
	Size   float64
	Bounty int
	Sprite *ebiten.Image

	path     *Path
	waypoint int
	escaped  bool
	HitTimer int // frames of hit flash left
}

// NewEnemy creates an enemy standing on the first waypoint of path
func NewEnemy(kind string, stats EnemyStats, path *Path, sprite *ebiten.Image) *Enemy {
	e := &Enemy{
		Kind:     kind,
		Health:   NewHealth(stats.MaxHealth),
		Speed:    stats.Speed,
		Size:     stats.Size,
		Bounty:   stats.Bounty,
		Sprite:   sprite,
		path:     path,
		waypoint: 1,
	}
	if path != nil {
		e.Pos = path.Start()
	}
	return e
}

// TakeDamage applies damage to the enemy
func (e *Enemy) TakeDamage(damage int) bool {
	e.HitTimer = 6
	return e.Health.TakeDamage(damage)
}

// Alive reports whether the enemy is still in play.
// Enemies that reached the end of the path are no longer alive.
func (e *Enemy) Alive() bool {
	return e.Health.IsAlive() && !e.escaped
}

// Escaped reports whether the enemy walked off the end of its path
func (e *Enemy) Escaped() bool { return e.escaped }

// Bounds returns the enemy's rect centered on its position
func (e *Enemy) Bounds() geom.Rect {
	return geom.R(e.Pos.X-e.Size/2, e.Pos.Y-e.Size/2, e.Size, e.Size)
}

// Update moves the enemy Speed pixels along the path
func (e *Enemy) Update() {
	if e.HitTimer > 0 {
		e.HitTimer--
	}
	if !e.Alive() || e.path == nil {
		return
	}

	remaining := e.Speed
	for remaining > 0 {
		if e.waypoint >= e.path.Len() {
			e.escaped = true
			return
		}
		target := e.path.Points[e.waypoint]
		delta := target.Sub(e.Pos)
		dist := math.Sqrt(delta.LenSq())
		if dist <= remaining {
			e.Pos = target
			e.waypoint++
			remaining -= dist
			continue
		}
		e.Pos = e.Pos.Add(delta.Scale(remaining / dist))
		remaining = 0
	}
	if e.waypoint >= e.path.Len() {
		e.escaped = true
	}
}

var (
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}
	colorHit      = color.RGBA{255, 255, 255, 255}
)

// Draw renders the sprite scaled to Size and a health bar above it
func (e *Enemy) Draw(dst *ebiten.Image) {
	b := e.Bounds()
	if e.Sprite != nil {
		sw, sh := e.Sprite.Bounds().Dx(), e.Sprite.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		if sw > 0 && sh > 0 {
			op.GeoM.Scale(b.W/float64(sw), b.H/float64(sh))
		}
		op.GeoM.Translate(b.X, b.Y)
		if e.HitTimer > 0 {
			op.ColorScale.Scale(2, 2, 2, 1)
		}
		dst.DrawImage(e.Sprite, op)
	} else {
		vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colorHit, false)
	}

	barY := float32(b.Y - 6)
	vector.DrawFilledRect(dst, float32(b.X), barY, float32(b.W), 3, colorHealthBG, false)
	vector.DrawFilledRect(dst, float32(b.X), barY, float32(b.W*e.Health.Fraction()), 3, colorHealthFG, false)
}
