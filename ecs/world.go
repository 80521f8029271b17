package ecs

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/common"
	"github.com/milk9111/tileworld/ecs/component"
	"github.com/milk9111/tileworld/ecs/render"
)

// World is the simulation context. It owns the tile layers, the entity
// registry, the spawn point and the session status; every system receives it
// explicitly.
type World struct {
	layers   *Layers
	entities *Registry
	spawn    cp.Vector
	area     common.Rect
	status   component.Status
	input    component.Input
	clock    component.Clock
	sprites  *render.SpriteCache
	events   EventQueue
}

// Option configures a World at construction.
type Option func(*World)

// WithClock replaces the wall clock cooldowns are measured against.
func WithClock(c component.Clock) Option {
	return func(w *World) {
		if c != nil {
			w.clock = c
		}
	}
}

// WithSprites attaches the sprite cache tiles and entities resolve paths through.
func WithSprites(s *render.SpriteCache) Option {
	return func(w *World) {
		if s != nil {
			w.sprites = s
		}
	}
}

// WithTileSize sets the footprint edge of tiles and entities.
func WithTileSize(size float64) Option {
	return func(w *World) {
		if size > 0 {
			w.layers = NewLayers(size)
			w.entities = NewRegistry(size)
		}
	}
}

// NewWorld creates an empty, alive world.
func NewWorld(opts ...Option) *World {
	w := &World{
		layers:   NewLayers(common.ScreenTileSize),
		entities: NewRegistry(common.ScreenTileSize),
		clock:    component.SystemClock{},
		sprites:  render.NewSpriteCache(nil),
		status:   component.StatusAlive,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *World) Layers() *Layers {
	return w.layers
}

func (w *World) Entities() *Registry {
	return w.entities
}

func (w *World) Sprites() *render.SpriteCache {
	return w.sprites
}

func (w *World) Clock() component.Clock {
	return w.clock
}

func (w *World) Spawn() cp.Vector {
	return w.spawn
}

func (w *World) SetSpawn(p cp.Vector) {
	w.spawn = p
}

// Area is the playable rectangle draw queries are clipped to.
func (w *World) Area() common.Rect {
	return w.area
}

func (w *World) SetArea(r common.Rect) {
	w.area = r
}

// Focus centres the area on c, keeping its size.
func (w *World) Focus(c cp.Vector, width, height float64) {
	w.area = common.Rect{X: c.X - width/2, Y: c.Y - height/2, Width: width, Height: height}
}

func (w *World) Status() component.Status {
	return w.status
}

func (w *World) SetStatus(s component.Status) {
	w.status = s
}

// Input is the snapshot for the current tick.
func (w *World) Input() component.Input {
	return w.input
}

// SetInput installs the snapshot systems read during the next tick.
func (w *World) SetInput(in component.Input) {
	w.input = in
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Emit queues an event for the driver.
func (w *World) Emit(t EventType, id int, data any) {
	w.events.Push(Event{Type: t, EntityID: id, Data: data})
}

// Player is shorthand for the registry's player.
func (w *World) Player() *component.Entity {
	return w.entities.Player()
}

// EntitySize is the footprint edge shared by tiles and entities.
func (w *World) EntitySize() float64 {
	return w.entities.EntitySize()
}

// NearestAlive returns the alive entity of kind closest to from, ignoring
// exclude, or nil.
func (w *World) NearestAlive(from cp.Vector, kind component.Kind, exclude int) *component.Entity {
	var (
		best     *component.Entity
		bestDist float64
	)
	w.entities.Each(func(e *component.Entity) {
		if e.ID == exclude || e.Kind != kind || !e.IsAlive() {
			return
		}
		d := e.Pos.DistanceSq(from)
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	})
	return best
}

// ClearWorld empties every layer and moves the spawn point to the origin.
func (w *World) ClearWorld() {
	w.layers.Clear()
	w.spawn = cp.Vector{}
}

// Close tears the world down: tiles, entities, queued events and every cached
// sprite are released.
func (w *World) Close() {
	if w == nil {
		return
	}
	w.ClearWorld()
	w.entities.Reset()
	w.events.flush()
	w.sprites.Purge()
}
