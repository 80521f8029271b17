package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/common"
	"github.com/milk9111/tileworld/ecs"
	"github.com/milk9111/tileworld/ecs/component"
	"github.com/milk9111/tileworld/ecs/entity"
	"github.com/milk9111/tileworld/logger"
	"github.com/milk9111/tileworld/prefabs"
	"github.com/sirupsen/logrus"
)

// SpawnSystem places a mob at the cursor when a spawn is requested.
type SpawnSystem struct {
	Mob prefabs.MobSpec
}

func NewSpawnSystem(mob prefabs.MobSpec) *SpawnSystem {
	return &SpawnSystem{Mob: mob}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	in := w.Input()
	if !in.SpawnPressed {
		return
	}
	s.TrySpawn(w, in.Cursor)
}

// TrySpawn creates a mob at point unless a tile-sized footprint there touches
// a wall or its centre lands on any entity, the player included. Points
// outside a non-empty world area are refused too.
func (s *SpawnSystem) TrySpawn(w *ecs.World, point cp.Vector) (int, bool) {
	log := logger.Log.WithFields(logrus.Fields{
		"component": "spawn",
		"x":         point.X,
		"y":         point.Y,
	})

	if area := w.Area(); !area.Empty() && !area.Contains(point) {
		log.Debug("spawn outside world area")
		return component.None, false
	}
	footprint := common.Square(point, w.EntitySize())
	if w.Layers().QueryCollision(footprint, component.Wall) != component.None {
		log.Debug("spawn blocked by wall")
		return component.None, false
	}
	if w.Entities().QueryCollision(component.NoEntity, footprint.Center()) != component.None {
		log.Debug("spawn blocked by entity")
		return component.None, false
	}

	id, err := entity.NewMob(w, s.Mob, point)
	if err != nil {
		log.WithError(err).Error("spawn failed")
		return component.None, false
	}
	w.Emit(ecs.EventSpawned, id, point)
	log.WithField("id", id).Debug("mob spawned")
	return id, true
}
