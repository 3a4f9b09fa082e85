// Package geom provides the small amount of 2D geometry the UI and world share.
package geom

// Vec is a 2D point or displacement in pixels.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// LenSq returns the squared length of v.
func (v Vec) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Rect is an axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Center returns the center point of r.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether the point (px, py) lies inside r.
// The right and bottom edges are exclusive.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Lerp interpolates each of the four components independently.
// t is clamped to [0, 1] and t == 1 returns exactly end.
func (r Rect) Lerp(end Rect, t float64) Rect {
	if t <= 0 {
		return r
	}
	if t >= 1 {
		return end
	}
	return Rect{
		X: lerp(r.X, end.X, t),
		Y: lerp(r.Y, end.Y, t),
		W: lerp(r.W, end.W, t),
		H: lerp(r.H, end.H, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Positioning selects how a layout rect is interpreted.
type Positioning int

const (
	// Absolute rects are pixel coordinates of the top-left corner.
	Absolute Positioning = iota
	// Relative rects give the center as a percentage of the screen size;
	// width and height stay in pixels.
	Relative
)

// Resolve converts a layout rect into pixel coordinates for a screen of
// size screenW x screenH.
func Resolve(r Rect, p Positioning, screenW, screenH int) Rect {
	if p != Relative {
		return r
	}
	cx := float64(screenW) * r.X / 100
	cy := float64(screenH) * r.Y / 100
	return Rect{X: cx - r.W/2, Y: cy - r.H/2, W: r.W, H: r.H}
}
