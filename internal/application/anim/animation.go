// Package anim provides frame-counted rect animations for UI items.
//
// An Animation is advanced once per frame by its owner. Opening and closing
// a widget use two separate Animation values so that replaying "open" always
// starts from its own start rect, no matter where "close" left off.
package anim

import "github.com/younwookim/towerdefence/internal/domain/geom"

// AttrRect is the attribute name every widget exposes for its bounds.
const AttrRect = "rect"

// Target receives interpolated values for a named attribute.
type Target interface {
	SetAttr(attr string, r geom.Rect)
}

// Animation linearly interpolates a rect from start to end over a fixed
// number of frames and writes each step to target's attribute.
type Animation struct {
	start   geom.Rect
	end     geom.Rect
	frames  int
	counter int
	running bool

	target Target
	attr   string
}

// New creates a stopped animation bound to target.attr.
func New(start, end geom.Rect, frames int, target Target, attr string) *Animation {
	return &Animation{
		start:  start,
		end:    end,
		frames: frames,
		target: target,
		attr:   attr,
	}
}

// Start rewinds the animation to frame 0 and marks it running.
// Calling Start on a running animation restarts it.
func (a *Animation) Start() {
	a.counter = 0
	a.running = true
}

// Tick advances one frame. It does nothing when the animation is stopped.
func (a *Animation) Tick() {
	if !a.running {
		return
	}

	if a.frames <= 0 {
		a.finish()
		return
	}

	a.counter++
	if a.counter >= a.frames {
		a.finish()
		return
	}

	t := float64(a.counter) / float64(a.frames)
	a.target.SetAttr(a.attr, a.start.Lerp(a.end, t))
}

func (a *Animation) finish() {
	a.counter = a.frames
	if a.counter < 0 {
		a.counter = 0
	}
	a.running = false
	a.target.SetAttr(a.attr, a.end)
}

// Running reports whether the animation still has frames to play.
func (a *Animation) Running() bool { return a.running }

// Counter returns the number of frames played since the last Start.
func (a *Animation) Counter() int { return a.counter }

// Frames returns the total length in frames.
func (a *Animation) Frames() int { return a.frames }
