package component

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/common"
)

// Kind separates the input-driven entity from autonomous ones.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindMob
)

func (k Kind) String() string {
	if k == KindPlayer {
		return "player"
	}
	return "mob"
}

const (
	// PlayerID is the identifier the player always gets.
	PlayerID = 0
	// NoEntity excludes nothing from registry queries.
	NoEntity = -1

	MaxHealth = 100.0
)

// Behavior selects how a mob picks its direction each tick.
type Behavior uint8

const (
	Pursue Behavior = iota
	Wander
	Scripted
)

func ParseBehavior(s string) (Behavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pursue":
		return Pursue, nil
	case "wander":
		return Wander, nil
	case "script":
		return Scripted, nil
	}
	return Pursue, fmt.Errorf("%w: %q", ErrUnknownBehavior, s)
}

func (b Behavior) String() string {
	switch b {
	case Wander:
		return "wander"
	case Scripted:
		return "script"
	default:
		return "pursue"
	}
}

// Entity is the player or a mob.
type Entity struct {
	ID   int
	Kind Kind
	Name string

	Pos cp.Vector
	// Speed is the current per-axis speed; BaseSpeed the nominal one it is
	// reset to when diagonal movement ends.
	Speed         float64
	BaseSpeed     float64
	SpeedAdjusted bool
	Moving        bool
	Direction     cp.Vector
	// Angle faces the nearest relevant target, in degrees [0, 360).
	Angle float64

	Health    float64
	MaxHealth float64
	Alive     bool

	Sprite    Sprite
	Animation Animation

	Damage         float64
	AttackRate     float64
	AttackCooldown Cooldown
	HealRate       float64
	HealCooldown   Cooldown
	// InvulnerableFor is the grace window after taking a hit, in seconds.
	InvulnerableFor float64
	Invulnerable    Cooldown

	Experience float64
	Level      int

	Behavior       Behavior
	WanderRate     float64
	WanderCooldown Cooldown
	Script         string
}

// IsAlive reports whether the entity takes part in movement and combat.
func (e *Entity) IsAlive() bool {
	return e != nil && e.Alive && e.Health > 0
}

func (e *Entity) Rect(size float64) common.Rect {
	return common.Square(e.Pos, size)
}

func (e *Entity) Center(size float64) cp.Vector {
	return cp.Vector{X: e.Pos.X + size/2, Y: e.Pos.Y + size/2}
}

// HealthCap is the entity's maximum health, MaxHealth when unset.
func (e *Entity) HealthCap() float64 {
	if e.MaxHealth <= 0 {
		return MaxHealth
	}
	return e.MaxHealth
}

// SetHealth assigns health clamped to [0, HealthCap].
func (e *Entity) SetHealth(v float64) {
	if e == nil {
		return
	}
	limit := e.HealthCap()
	switch {
	case v < 0:
		v = 0
	case v > limit:
		v = limit
	}
	e.Health = v
}
