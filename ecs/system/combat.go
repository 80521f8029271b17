package system

import (
	"github.com/milk9111/tileworld/ecs"
	"github.com/milk9111/tileworld/ecs/component"
	"github.com/milk9111/tileworld/logger"
	"github.com/sirupsen/logrus"
)

// Rules are the progression constants combat applies.
type Rules struct {
	// ExperienceAward is granted to the attacker for every kill.
	ExperienceAward float64
	// LevelThreshold is multiplied by the current level to get the
	// experience needed for the next one.
	LevelThreshold float64
	HealAmount     float64
}

func DefaultRules() Rules {
	return Rules{ExperienceAward: 20, LevelThreshold: 100, HealAmount: 20}
}

type CombatSystem struct {
	Rules Rules
}

func NewCombatSystem(rules Rules) *CombatSystem {
	d := DefaultRules()
	if rules.ExperienceAward <= 0 {
		rules.ExperienceAward = d.ExperienceAward
	}
	if rules.LevelThreshold <= 0 {
		rules.LevelThreshold = d.LevelThreshold
	}
	if rules.HealAmount <= 0 {
		rules.HealAmount = d.HealAmount
	}
	return &CombatSystem{Rules: rules}
}

// Update lets every mob and the player trade blows, applies health buffs and
// finally removes the spent buff and the mobs that died this tick.
func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player := w.Player()
	if player == nil {
		return
	}

	reg := w.Entities()
	for i := 0; i < reg.Len(); i++ {
		mob := reg.At(i)
		if mob.Kind != component.KindMob {
			continue
		}
		s.ResolveAttack(w, mob, player)
		s.ResolveAttack(w, player, mob)
	}

	if s.ConsumeHealthBuff(w, player) {
		w.Layers().Compact(component.HealthBuff)
	}

	for _, id := range reg.Fallen() {
		reg.Remove(id)
	}
}

// ResolveAttack lets attacker hit target when their footprints overlap and
// the attacker's cooldown has elapsed. A player inside its post-hit window
// takes no damage. It reports whether damage was dealt.
func (s *CombatSystem) ResolveAttack(w *ecs.World, attacker, target *component.Entity) bool {
	if !attacker.IsAlive() || !target.IsAlive() || attacker.ID == target.ID {
		return false
	}
	size := w.EntitySize()
	if !attacker.Rect(size).Intersects(target.Rect(size)) {
		return false
	}
	clock := w.Clock()
	if !attacker.AttackCooldown.Elapsed(clock) {
		return false
	}
	if target.Kind == component.KindPlayer && !target.Invulnerable.Elapsed(clock) {
		return false
	}

	target.SetHealth(target.Health - attacker.Damage)
	attacker.AttackCooldown.Start(clock, attacker.AttackRate)
	if target.Kind == component.KindPlayer && target.InvulnerableFor > 0 {
		target.Invulnerable.Start(clock, target.InvulnerableFor)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"component": "combat",
		"attacker":  attacker.ID,
		"target":    target.ID,
	})
	log.WithField("health", target.Health).Debug("attack resolved")

	if target.Health > 0 {
		return true
	}
	target.Alive = false

	if target.Kind == component.KindPlayer {
		w.SetStatus(component.StatusDead)
		w.Emit(ecs.EventPlayerDied, target.ID, attacker.ID)
		log.Info("player died")
		return true
	}

	w.Emit(ecs.EventEntityKilled, target.ID, attacker.ID)
	log.Info("entity killed")
	if s.GainExperience(attacker) {
		w.Emit(ecs.EventLevelUp, attacker.ID, attacker.Level)
		log.WithField("level", attacker.Level).Info("level up")
	}
	return true
}

// GainExperience awards one kill's worth of experience. Reaching the
// threshold for the current level resets experience and adds one level.
func (s *CombatSystem) GainExperience(e *component.Entity) bool {
	if e == nil {
		return false
	}
	if e.Level < 1 {
		e.Level = 1
	}
	e.Experience += s.Rules.ExperienceAward
	if e.Experience < s.Rules.LevelThreshold*float64(e.Level) {
		return false
	}
	e.Experience = 0
	e.Level++
	return true
}

// Heal adds amount to e's health, capped at its maximum, when the heal
// cooldown has elapsed and e is hurt.
func Heal(clock component.Clock, e *component.Entity, amount float64) bool {
	if !e.IsAlive() || amount <= 0 {
		return false
	}
	if e.Health >= e.HealthCap() || !e.HealCooldown.Elapsed(clock) {
		return false
	}
	e.SetHealth(e.Health + amount)
	e.HealCooldown.Start(clock, e.HealRate)
	return true
}

// ConsumeHealthBuff heals e from the health buff it stands on when the heal
// key was pressed this tick. The buff is spent on success.
func (s *CombatSystem) ConsumeHealthBuff(w *ecs.World, e *component.Entity) bool {
	if !w.Input().HealPressed || !e.IsAlive() {
		return false
	}
	idx := w.Layers().QueryCollision(e.Rect(w.EntitySize()), component.HealthBuff)
	if idx == component.None {
		return false
	}
	if !Heal(w.Clock(), e, s.Rules.HealAmount) {
		if left := e.HealCooldown.Remaining(w.Clock()); left > 0 {
			logger.Log.WithFields(logrus.Fields{
				"component": "combat",
				"id":        e.ID,
				"remaining": left,
			}).Debug("heal on cooldown")
		}
		return false
	}
	w.Layers().Deactivate(component.HealthBuff, idx)
	w.Emit(ecs.EventHealed, e.ID, e.Health)
	logger.Log.WithFields(logrus.Fields{
		"component": "combat",
		"id":        e.ID,
		"health":    e.Health,
	}).Debug("healed")
	return true
}
