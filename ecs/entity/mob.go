package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/ecs"
	"github.com/milk9111/tileworld/ecs/component"
	"github.com/milk9111/tileworld/prefabs"
)

// NewMob creates a mob at pos without any placement check.
func NewMob(w *ecs.World, spec prefabs.MobSpec, pos cp.Vector) (int, error) {
	e, err := buildActor(w, component.KindMob, spec, pos)
	if err != nil {
		return component.None, fmt.Errorf("mob: %w", err)
	}
	return add(w, e)
}
