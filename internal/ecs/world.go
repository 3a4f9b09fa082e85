package ecs

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// Tag groups entities so callers can count and query them
type Tag string

// Entity tags
const (
	TagEnemy  Tag = "enemy"
	TagTower  Tag = "tower"
	TagPlayer Tag = "player"
)

// Entity is anything the world can hold
type Entity interface {
	Update()
	Draw(dst *ebiten.Image)
	Alive() bool
}

// World holds all live entities and the next entity ID
type World struct {
	nextID EntityID

	entities map[EntityID]Entity
	tags     map[EntityID]Tag
	order    []EntityID // insertion order, used for update and draw

	// per-tag membership
	byTag map[Tag]map[EntityID]struct{}
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:   1, // 0 is "nil"
		entities: make(map[EntityID]Entity),
		tags:     make(map[EntityID]Tag),
		byTag:    make(map[Tag]map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// AddEntity registers e under tag and returns its ID
func (w *World) AddEntity(e Entity, tag Tag) EntityID {
	id := w.NewEntity()

	w.entities[id] = e
	w.tags[id] = tag
	w.order = append(w.order, id)

	set, ok := w.byTag[tag]
	if !ok {
		set = make(map[EntityID]struct{})
		w.byTag[tag] = set
	}
	set[id] = struct{}{}

	return id
}

// DestroyEntity removes an entity. Unknown IDs are ignored.
func (w *World) DestroyEntity(id EntityID) {
	if _, ok := w.entities[id]; !ok {
		return
	}
	delete(w.byTag[w.tags[id]], id)
	delete(w.entities, id)
	delete(w.tags, id)
	for i, oid := range w.order {
		if oid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Exists checks if an entity is registered
func (w *World) Exists(id EntityID) bool {
	_, ok := w.entities[id]
	return ok
}

// Get returns the entity for id
func (w *World) Get(id EntityID) (Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// TagOf returns the tag an entity was added with
func (w *World) TagOf(id EntityID) (Tag, bool) {
	t, ok := w.tags[id]
	return t, ok
}

// Count returns the number of live entities with tag
func (w *World) Count(tag Tag) int {
	return len(w.byTag[tag])
}

// CountEnemies returns the number of active enemies
func (w *World) CountEnemies() int {
	return w.Count(TagEnemy)
}

// Entities returns the entities with tag in insertion order
func (w *World) Entities(tag Tag) []Entity {
	set := w.byTag[tag]
	if len(set) == 0 {
		return nil
	}
	out := make([]Entity, 0, len(set))
	for _, id := range w.order {
		if _, ok := set[id]; ok {
			out = append(out, w.entities[id])
		}
	}
	return out
}

// Len returns the total number of entities
func (w *World) Len() int {
	return len(w.order)
}

// Update updates every entity in insertion order, then removes the dead ones
func (w *World) Update() {
	ids := make([]EntityID, len(w.order))
	copy(ids, w.order)

	for _, id := range ids {
		if e, ok := w.entities[id]; ok {
			e.Update()
		}
	}
	w.sweep()
}

func (w *World) sweep() {
	kept := w.order[:0]
	for _, id := range w.order {
		if w.entities[id].Alive() {
			kept = append(kept, id)
			continue
		}
		delete(w.byTag[w.tags[id]], id)
		delete(w.entities, id)
		delete(w.tags, id)
	}
	// clear the tail so dropped IDs don't linger in the backing array
	for i := len(kept); i < len(w.order); i++ {
		w.order[i] = 0
	}
	w.order = kept
}

// Draw draws every entity in insertion order
func (w *World) Draw(dst *ebiten.Image) {
	for _, id := range w.order {
		w.entities[id].Draw(dst)
	}
}
