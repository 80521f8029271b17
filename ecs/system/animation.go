package system

import (
	"github.com/milk9111/tileworld/ecs"
	"github.com/milk9111/tileworld/ecs/component"
)

// AnimationSystem advances animated tiles and moving entities. Entities that
// stand still show their resting frame.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.Layers().Animate()
	w.Entities().Each(func(e *component.Entity) {
		if !e.IsAlive() {
			return
		}
		if e.Moving {
			e.Animation.Advance()
			return
		}
		e.Animation.Idle()
	})
}
