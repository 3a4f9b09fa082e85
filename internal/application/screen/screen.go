package screen

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/towerdefence/internal/application/anim"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

// Screen is a named container of items drawn in insertion order.
type Screen struct {
	name       string
	Background color.Color

	order []string
	items map[string]Item

	animOrder  []string
	animations map[string]*anim.Animation
}

// New creates an empty screen. A nil background leaves the target untouched.
func New(name string, background color.Color) *Screen {
	return &Screen{
		name:       name,
		Background: background,
		items:      make(map[string]Item),
		animations: make(map[string]*anim.Animation),
	}
}

// Name returns the screen name.
func (s *Screen) Name() string { return s.name }

// AddItem inserts item under name. Replacing an existing name keeps its
// position in the draw order.
func (s *Screen) AddItem(name string, item Item) {
	if _, ok := s.items[name]; !ok {
		s.order = append(s.order, name)
	}
	s.items[name] = item
}

// RemoveItem deletes the named item. Removing an absent name is a no-op.
func (s *Screen) RemoveItem(name string) {
	if _, ok := s.items[name]; !ok {
		return
	}
	delete(s.items, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// HasItem reports whether name is present.
func (s *Screen) HasItem(name string) bool {
	_, ok := s.items[name]
	return ok
}

// Item returns the named item.
func (s *Screen) Item(name string) (Item, bool) {
	item, ok := s.items[name]
	return item, ok
}

// ItemNames returns item names in draw order.
func (s *Screen) ItemNames() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// AddAnimation registers a named animation that writes to target.attr.
// Several animations may drive different attributes of the same item.
func (s *Screen) AddAnimation(name string, start, end geom.Rect, frames int, target anim.Target, attr string) *anim.Animation {
	a := anim.New(start, end, frames, target, attr)
	if _, ok := s.animations[name]; !ok {
		s.animOrder = append(s.animOrder, name)
	}
	s.animations[name] = a
	return a
}

// Animation returns the named animation, or nil.
func (s *Screen) Animation(name string) *anim.Animation {
	return s.animations[name]
}

// StartAnimations starts every animation whose name ends with suffix and
// returns how many were started.
func (s *Screen) StartAnimations(suffix string) int {
	n := 0
	for _, name := range s.animOrder {
		if strings.HasSuffix(name, suffix) {
			s.animations[name].Start()
			n++
		}
	}
	return n
}

// Animating reports whether any animation is still running.
func (s *Screen) Animating() bool {
	for _, a := range s.animations {
		if a.Running() {
			return true
		}
	}
	return false
}

// Draw fills the background and draws visible items in order.
func (s *Screen) Draw(dst *ebiten.Image) {
	if s.Background != nil {
		dst.Fill(s.Background)
	}
	for _, name := range s.order {
		item := s.items[name]
		if isHidden(item) {
			continue
		}
		item.Draw(dst)
	}
}

// Update ticks running animations, then updates visible items in order.
func (s *Screen) Update(ctx *Context) {
	for _, name := range s.animOrder {
		s.animations[name].Tick()
	}

	// Items may remove themselves (a popup closing), so walk a snapshot.
	for _, name := range s.ItemNames() {
		item, ok := s.items[name]
		if !ok || isHidden(item) {
			continue
		}
		item.Update(ctx)
	}
}

// OnOpen is called when the screen becomes current. No-op by default.
func (s *Screen) OnOpen() {}

// OnClose is called when a transition away from the screen starts.
// No-op by default.
func (s *Screen) OnClose() {}
