package ecs

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/common"
	"github.com/milk9111/tileworld/ecs/component"
)

// Registry owns every entity. Entities live densely in insertion order and are
// addressed by their stable ID rather than by position.
type Registry struct {
	entities *Vector[component.Entity]
	nextID   int
	size     float64
}

// NewRegistry creates an empty registry whose entities are size units square.
func NewRegistry(size float64) *Registry {
	if size <= 0 {
		size = common.ScreenTileSize
	}
	return &Registry{entities: NewVector[component.Entity](), size: size}
}

// EntitySize is the edge of every entity footprint.
func (r *Registry) EntitySize() float64 {
	return r.size
}

// NextID returns the identifier the next created entity should take. The
// first entity created after a reset gets component.PlayerID.
func (r *Registry) NextID() int {
	return r.nextID
}

// Add stores e. IDs must be unique among stored entities.
func (r *Registry) Add(e component.Entity) error {
	if e.ID < 0 {
		return fmt.Errorf("ecs: add entity: invalid id %d", e.ID)
	}
	if r.Get(e.ID) != nil {
		return fmt.Errorf("ecs: add entity: duplicate id %d", e.ID)
	}
	r.entities.Append(e)
	if e.ID >= r.nextID {
		r.nextID = e.ID + 1
	}
	return nil
}

// Remove deletes the entity with id. Later entities shift down one slot.
func (r *Registry) Remove(id int) bool {
	return r.entities.RemoveAt(r.index(id))
}

func (r *Registry) index(id int) int {
	return r.entities.Index(func(e *component.Entity) bool { return e.ID == id })
}

// Get returns the entity with id, or nil. The pointer is invalidated by the
// next Add, Remove or Reset.
func (r *Registry) Get(id int) *component.Entity {
	return r.entities.At(r.index(id))
}

// Player returns the player entity, or nil when none is registered.
func (r *Registry) Player() *component.Entity {
	return r.Get(component.PlayerID)
}

// At returns the entity stored at position i.
func (r *Registry) At(i int) *component.Entity {
	return r.entities.At(i)
}

func (r *Registry) Len() int {
	return r.entities.Len()
}

func (r *Registry) Cap() int {
	return r.entities.Cap()
}

// Each calls fn for every stored entity in storage order.
func (r *Registry) Each(fn func(*component.Entity)) {
	items := r.entities.Items()
	for i := range items {
		fn(&items[i])
	}
}

// Reset drops every entity and restarts identifiers at zero.
func (r *Registry) Reset() {
	r.entities.Reset()
	r.nextID = 0
}

// QueryCollision returns the ID of the first entity other than exclude whose
// footprint contains point and which still has health, or component.None.
// Pass component.NoEntity to exclude nothing.
func (r *Registry) QueryCollision(exclude int, point cp.Vector) int {
	items := r.entities.Items()
	for i := range items {
		e := &items[i]
		if e.ID == exclude || e.Health <= 0 {
			continue
		}
		if e.Rect(r.size).Contains(point) {
			return e.ID
		}
	}
	return component.None
}

// Visible calls fn for every alive entity whose centre lies inside area.
func (r *Registry) Visible(area common.Rect, fn func(*component.Entity)) {
	r.Each(func(e *component.Entity) {
		if e.IsAlive() && area.Contains(e.Center(r.size)) {
			fn(e)
		}
	})
}

// Fallen lists the mobs that are no longer alive.
func (r *Registry) Fallen() []int {
	var ids []int
	r.Each(func(e *component.Entity) {
		if e.Kind == component.KindMob && !e.IsAlive() {
			ids = append(ids, e.ID)
		}
	})
	return ids
}
