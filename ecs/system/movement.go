package system

import (
	"math"
	"math/rand"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/common"
	"github.com/milk9111/tileworld/ecs"
	"github.com/milk9111/tileworld/ecs/component"
	"github.com/milk9111/tileworld/logger"
	"github.com/sirupsen/logrus"
)

// MovementSystem moves the player from input and every mob by its behaviour.
type MovementSystem struct {
	rng     *rand.Rand
	scripts *ScriptCache
}

type MovementOption func(*MovementSystem)

// WithRand fixes the source wandering mobs draw directions from.
func WithRand(r *rand.Rand) MovementOption {
	return func(s *MovementSystem) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithScripts shares a steering script cache, so a reload clears it in one place.
func WithScripts(c *ScriptCache) MovementOption {
	return func(s *MovementSystem) {
		if c != nil {
			s.scripts = c
		}
	}
}

func NewMovementSystem(opts ...MovementOption) *MovementSystem {
	s := &MovementSystem{
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		scripts: NewScriptCache(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scripts exposes the steering script cache.
func (s *MovementSystem) Scripts() *ScriptCache {
	return s.scripts
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player := w.Player()
	if player.IsAlive() {
		MovePlayer(w, player, w.Input())
	}

	reg := w.Entities()
	for i := 0; i < reg.Len(); i++ {
		e := reg.At(i)
		if e.Kind != component.KindMob || !e.IsAlive() {
			continue
		}
		s.steer(w, e, player)
		Step(w, e, e.Direction.Mult(e.Speed), true)
	}
}

// MovePlayer applies one tick of keyboard movement to p, sliding along walls.
func MovePlayer(w *ecs.World, p *component.Entity, in component.Input) {
	x, y := in.Axis()
	p.Moving = in.Moving()
	AdjustDiagonal(p, x != 0 && y != 0)

	// Later keys win, so D beats S beats A beats W.
	if in.Up {
		p.Animation.Row = common.RowUp
	}
	if in.Left {
		p.Animation.Row = common.RowLeft
	}
	if in.Down {
		p.Animation.Row = common.RowDown
	}
	if in.Right {
		p.Animation.Row = common.RowRight
	}

	size := w.EntitySize()
	if target := w.NearestAlive(p.Pos, component.KindMob, p.ID); target != nil {
		p.Angle = common.FacingAngle(p.Center(size), target.Center(size))
	}

	p.Direction = cp.Vector{X: x, Y: y}
	Step(w, p, cp.Vector{X: x * p.Speed, Y: y * p.Speed}, false)
}

// AdjustDiagonal scales e's speed by 1/√2 when diagonal movement begins and
// restores it when it ends. Repeated calls with the same flag change nothing.
func AdjustDiagonal(e *component.Entity, diagonal bool) {
	switch {
	case diagonal && !e.SpeedAdjusted:
		e.Speed = e.BaseSpeed / math.Sqrt2
		e.SpeedAdjusted = true
	case !diagonal && e.SpeedAdjusted:
		e.Speed = e.BaseSpeed
		e.SpeedAdjusted = false
	}
}

// Step moves e by delta one axis at a time, X first. An axis whose move lands
// e's footprint on a wall, or with withEntities its centre on another
// entity, is restored to its previous value. It reports whether e moved.
func Step(w *ecs.World, e *component.Entity, delta cp.Vector, withEntities bool) bool {
	if !e.IsAlive() {
		return false
	}
	moved := false
	if delta.X != 0 {
		old := e.Pos.X
		e.Pos.X += delta.X
		if Blocked(w, e, withEntities) {
			e.Pos.X = old
		} else {
			moved = true
		}
	}
	if delta.Y != 0 {
		old := e.Pos.Y
		e.Pos.Y += delta.Y
		if Blocked(w, e, withEntities) {
			e.Pos.Y = old
		} else {
			moved = true
		}
	}
	return moved
}

// Blocked reports whether e in its current position collides.
func Blocked(w *ecs.World, e *component.Entity, withEntities bool) bool {
	size := w.EntitySize()
	if w.Layers().QueryCollision(e.Rect(size), component.Wall) != component.None {
		return true
	}
	return withEntities && w.Entities().QueryCollision(e.ID, e.Center(size)) != component.None
}

// steer sets the mob's direction, facing and moving flag for this tick.
func (s *MovementSystem) steer(w *ecs.World, e *component.Entity, player *component.Entity) {
	size := w.EntitySize()
	hasTarget := player.IsAlive()

	switch e.Behavior {
	case component.Wander:
		if e.WanderCooldown.Elapsed(w.Clock()) {
			theta := s.rng.Float64() * 2 * math.Pi
			e.Direction = cp.Vector{X: math.Cos(theta), Y: math.Sin(theta)}
			e.WanderCooldown.Start(w.Clock(), e.WanderRate)
		}
	case component.Scripted:
		if !hasTarget {
			e.Direction = cp.Vector{}
			break
		}
		dir, err := s.scripts.Steer(e.Script, e.Pos, player.Pos, e.Speed)
		if err != nil {
			// Fall back to plain pursuit; the cache logs the failure once.
			dir = common.Direction(e.Pos, player.Pos)
		}
		e.Direction = dir
	default:
		if !hasTarget {
			e.Direction = cp.Vector{}
			break
		}
		e.Direction = common.Direction(e.Pos, player.Pos)
	}

	if hasTarget && e.Behavior != component.Wander {
		e.Angle = common.FacingAngle(e.Center(size), player.Center(size))
	} else if e.Direction.X != 0 || e.Direction.Y != 0 {
		e.Angle = common.FacingAngle(cp.Vector{}, e.Direction)
	}
	e.Animation.Row = common.FacingRow(e.Angle)
	e.Moving = e.Direction.X != 0 || e.Direction.Y != 0

	logger.Log.WithFields(logrus.Fields{
		"component": "movement",
		"id":        e.ID,
		"behavior":  e.Behavior.String(),
	}).Trace("mob steered")
}
