package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/ecs"
	"github.com/milk9111/tileworld/ecs/component"
	"github.com/milk9111/tileworld/prefabs"
)

// NewPlayer creates the player at pos. The registry must be empty so the
// player takes component.PlayerID.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, pos cp.Vector) (int, error) {
	if w.Entities().NextID() != component.PlayerID {
		return component.None, fmt.Errorf("player: registry not reset, next id %d", w.Entities().NextID())
	}
	spec.Behavior = ""
	e, err := buildActor(w, component.KindPlayer, spec, pos)
	if err != nil {
		return component.None, fmt.Errorf("player: %w", err)
	}
	return add(w, e)
}

// NewPlayerAtSpawn creates the player at the world's spawn point.
func NewPlayerAtSpawn(w *ecs.World, spec prefabs.PlayerSpec) (int, error) {
	return NewPlayer(w, spec, w.Spawn())
}
