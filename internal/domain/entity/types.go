package entity

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

// Health tracks hit points
type Health struct {
	Current int
	Max     int
}

// NewHealth creates full health
func NewHealth(max int) Health {
	return Health{Current: max, Max: max}
}

// TakeDamage applies damage, returns true if dead
func (h *Health) TakeDamage(amount int) bool {
	h.Current -= amount
	return h.Current <= 0
}

// IsAlive returns true if health > 0
func (h *Health) IsAlive() bool {
	return h.Current > 0
}

// Heal restores health up to max
func (h *Health) Heal(amount int) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Fraction returns Current/Max clamped to [0, 1]
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, float64(h.Current)/float64(h.Max)))
}

// Path is the polyline enemies walk along
type Path struct {
	Points []geom.Vec
}

// Len returns the number of waypoints
func (p *Path) Len() int { return len(p.Points) }

// Start returns the first waypoint, or the origin for an empty path
func (p *Path) Start() geom.Vec {
	if len(p.Points) == 0 {
		return geom.Vec{}
	}
	return p.Points[0]
}

// Level is the static world layer: a background and the enemy path
type Level struct {
	Path       *Path
	Background color.Color
	PathColor  color.Color
	PathWidth  float32
}

// NewLevel creates a level around path
func NewLevel(path *Path) *Level {
	return &Level{
		Path:       path,
		Background: color.RGBA{26, 26, 46, 255},
		PathColor:  color.RGBA{80, 80, 100, 255},
		PathWidth:  24,
	}
}

// Draw renders the background and the path
func (l *Level) Draw(dst *ebiten.Image) {
	if l.Background != nil {
		dst.Fill(l.Background)
	}
	if l.Path == nil {
		return
	}
	pts := l.Path.Points
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), l.PathWidth, l.PathColor, false)
	}
}
