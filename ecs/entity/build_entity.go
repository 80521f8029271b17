package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/ecs"
	"github.com/milk9111/tileworld/ecs/component"
	"github.com/milk9111/tileworld/prefabs"
)

// buildActor turns a spec into an entity value with the registry's next ID.
// Nothing is stored yet.
func buildActor(w *ecs.World, kind component.Kind, spec prefabs.ActorSpec, pos cp.Vector) (component.Entity, error) {
	behavior, err := component.ParseBehavior(spec.Behavior)
	if err != nil {
		return component.Entity{}, fmt.Errorf("%s: %w", spec.Name, err)
	}

	maxHealth := spec.MaxHealth
	if maxHealth <= 0 {
		maxHealth = component.MaxHealth
	}

	e := component.Entity{
		ID:        w.Entities().NextID(),
		Kind:      kind,
		Name:      spec.Name,
		Pos:       pos,
		Speed:     spec.Speed,
		BaseSpeed: spec.Speed,
		MaxHealth: maxHealth,
		Alive:     true,
		Sprite:    w.Sprites().Get(spec.Sprite),
		Animation: component.NewAnimation(spec.Animation.Frames, spec.Animation.Speed),
		Damage:    spec.Damage,

		AttackRate:      spec.Cooldowns.Attack,
		HealRate:        spec.Cooldowns.Heal,
		InvulnerableFor: spec.Cooldowns.Invincible,
		WanderRate:      spec.Cooldowns.Wander,

		Level:    1,
		Behavior: behavior,
		Script:   spec.Script,
	}
	health := spec.Health
	if health <= 0 {
		health = maxHealth
	}
	e.SetHealth(health)
	return e, nil
}

func add(w *ecs.World, e component.Entity) (int, error) {
	if err := w.Entities().Add(e); err != nil {
		return component.None, fmt.Errorf("%s: %w", e.Name, err)
	}
	return e.ID, nil
}
