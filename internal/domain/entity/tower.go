package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

// TowerStats are the tunables of a tower
type TowerStats struct {
	Range    float64 // pixels
	Damage   int
	Cooldown int // frames between shots
}

// Tower shoots the nearest enemy in range
type Tower struct {
	Pos    geom.Vec
	Stats  TowerStats
	Sprite *ebiten.Image

	cooldown int

	// last shot, kept for a few frames so it can be drawn
	shotTarget geom.Vec
	shotTimer  int
}

// NewTower creates a tower ready to fire
func NewTower(pos geom.Vec, stats TowerStats, sprite *ebiten.Image) *Tower {
	return &Tower{Pos: pos, Stats: stats, Sprite: sprite}
}

// Ready reports whether the tower can fire this update
func (t *Tower) Ready() bool { return t.cooldown <= 0 }

// InRange reports whether p is within the tower's range
func (t *Tower) InRange(p geom.Vec) bool {
	return p.Sub(t.Pos).LenSq() <= t.Stats.Range*t.Stats.Range
}

// Fire shoots e and restarts the cooldown, returns true if e died
func (t *Tower) Fire(e *Enemy) bool {
	t.cooldown = t.Stats.Cooldown
	t.shotTarget = e.Pos
	t.shotTimer = 4
	return e.TakeDamage(t.Stats.Damage)
}

// Alive is always true; towers are never removed by the registry sweep
func (t *Tower) Alive() bool { return true }

// Update counts down the cooldown
func (t *Tower) Update() {
	if t.cooldown > 0 {
		t.cooldown--
	}
	if t.shotTimer > 0 {
		t.shotTimer--
	}
}

var (
	colorTower = color.RGBA{100, 200, 100, 255}
	colorShot  = color.RGBA{255, 200, 100, 255}
)

// Draw renders the tower and its most recent shot
func (t *Tower) Draw(dst *ebiten.Image) {
	const size = 32
	x, y := t.Pos.X-size/2, t.Pos.Y-size/2
	if t.Sprite != nil {
		op := &ebiten.DrawImageOptions{}
		sw, sh := t.Sprite.Bounds().Dx(), t.Sprite.Bounds().Dy()
		if sw > 0 && sh > 0 {
			op.GeoM.Scale(size/float64(sw), size/float64(sh))
		}
		op.GeoM.Translate(x, y)
		dst.DrawImage(t.Sprite, op)
	} else {
		vector.DrawFilledRect(dst, float32(x), float32(y), size, size, colorTower, false)
	}

	if t.shotTimer > 0 {
		vector.StrokeLine(dst, float32(t.Pos.X), float32(t.Pos.Y), float32(t.shotTarget.X), float32(t.shotTarget.Y), 2, colorShot, false)
	}
}
