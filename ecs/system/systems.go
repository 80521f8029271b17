package system

import (
	"github.com/milk9111/tileworld/ecs"
	"github.com/milk9111/tileworld/prefabs"
)

// Systems is the full tick in its fixed order: status, animation, movement,
// combat, spawn. Damage is resolved on post-move positions.
type Systems struct {
	Status    *StatusSystem
	Animation *AnimationSystem
	Movement  *MovementSystem
	Combat    *CombatSystem
	Spawn     *SpawnSystem
}

func NewSystems(game prefabs.GameSpec, player prefabs.PlayerSpec, mob prefabs.MobSpec, opts ...MovementOption) *Systems {
	return &Systems{
		Status:    NewStatusSystem(player),
		Animation: NewAnimationSystem(),
		Movement:  NewMovementSystem(opts...),
		Combat: NewCombatSystem(Rules{
			ExperienceAward: game.ExperienceAward,
			LevelThreshold:  game.LevelThreshold,
			HealAmount:      game.HealAmount,
		}),
		Spawn: NewSpawnSystem(mob),
	}
}

// Scheduler orders the systems for ecs.Scheduler.
func (s *Systems) Scheduler() *ecs.Scheduler {
	return ecs.NewScheduler(s.Status, s.Animation, s.Movement, s.Combat, s.Spawn)
}

// Reload swaps in freshly loaded specs. Steering scripts are recompiled on
// their next use.
func (s *Systems) Reload(game prefabs.GameSpec, player prefabs.PlayerSpec, mob prefabs.MobSpec) {
	s.Status.Player = player
	s.Spawn.Mob = mob
	s.Combat.Rules = NewCombatSystem(Rules{
		ExperienceAward: game.ExperienceAward,
		LevelThreshold:  game.LevelThreshold,
		HealAmount:      game.HealAmount,
	}).Rules
	s.Movement.Scripts().Reset()
}
