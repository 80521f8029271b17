package system

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/common"
	"github.com/milk9111/tileworld/ecs/component"
	"github.com/milk9111/tileworld/prefabs"
)

func TestMovePlayerIntoWallIsReverted(t *testing.T) {
	cases := []struct {
		name  string
		start cp.Vector
		in    component.Input
		want  func(t *testing.T, start, got cp.Vector)
	}{
		{
			name:  "straight_into_wall",
			start: cp.Vector{X: 0, Y: 32},
			in:    component.Input{Right: true},
			want: func(t *testing.T, start, got cp.Vector) {
				if got != start {
					t.Fatalf("expected %v, got %v", start, got)
				}
			},
		},
		{
			name:  "diagonal_slides_along_wall",
			start: cp.Vector{X: 0, Y: 32},
			in:    component.Input{Right: true, Down: true},
			want: func(t *testing.T, start, got cp.Vector) {
				if got.X != start.X {
					t.Fatalf("x should be reverted, got %v", got.X)
				}
				if math.Abs(got.Y-(start.Y+3/math.Sqrt2)) > 1e-9 {
					t.Fatalf("y should advance, got %v", got.Y)
				}
			},
		},
		{
			name:  "away_from_wall",
			start: cp.Vector{X: 0, Y: 32},
			in:    component.Input{Left: true},
			want: func(t *testing.T, start, got cp.Vector) {
				if got.X != start.X-3 || got.Y != start.Y {
					t.Fatalf("expected move left by 3, got %v", got)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _ := newTestWorld(t, c.start)
			addWall(t, w, 32, 32)
			p := w.Player()
			MovePlayer(w, p, c.in)
			c.want(t, c.start, p.Pos)
		})
	}
}

func TestStepOntoWallRestoresExactPosition(t *testing.T) {
	w, _ := newTestWorld(t, cp.Vector{X: 0.1, Y: 32})
	addWall(t, w, 32, 32)
	p := w.Player()

	if Step(w, p, cp.Vector{X: 31.9}, false) {
		t.Fatalf("move onto the wall should be rejected")
	}
	if p.Pos != (cp.Vector{X: 0.1, Y: 32}) {
		t.Fatalf("expected exact restore, got %v", p.Pos)
	}
}

func TestDiagonalDisplacementMatchesStraight(t *testing.T) {
	displacement := func(in component.Input, ticks int) (cp.Vector, float64) {
		w, _ := newTestWorld(t, cp.Vector{X: 500, Y: 500})
		p := w.Player()
		var last cp.Vector
		for i := 0; i < ticks; i++ {
			before := p.Pos
			MovePlayer(w, p, in)
			last = p.Pos.Sub(before)
		}
		return last, p.Speed
	}

	straight, _ := displacement(component.Input{Up: true}, 1)
	for _, ticks := range []int{1, 5, 20} {
		diag, speed := displacement(component.Input{Up: true, Right: true}, ticks)
		if math.Abs(diag.Length()-straight.Length()) > 1e-9 {
			t.Fatalf("after %d ticks diagonal step %v, straight %v", ticks, diag.Length(), straight.Length())
		}
		if math.Abs(speed-3/math.Sqrt2) > 1e-9 {
			t.Fatalf("speed compounded to %v after %d ticks", speed, ticks)
		}
	}
}

func TestAdjustDiagonalRevert(t *testing.T) {
	e := &component.Entity{Speed: 4, BaseSpeed: 4}
	AdjustDiagonal(e, true)
	AdjustDiagonal(e, true)
	if math.Abs(e.Speed-4/math.Sqrt2) > 1e-9 || !e.SpeedAdjusted {
		t.Fatalf("unexpected diagonal speed %v", e.Speed)
	}
	AdjustDiagonal(e, false)
	if e.Speed != 4 || e.SpeedAdjusted {
		t.Fatalf("speed not restored: %v", e.Speed)
	}
}

func TestMovePlayerFacing(t *testing.T) {
	cases := []struct {
		name string
		in   component.Input
		row  int
	}{
		{"up", component.Input{Up: true}, common.RowUp},
		{"left", component.Input{Left: true}, common.RowLeft},
		{"down", component.Input{Down: true}, common.RowDown},
		{"right", component.Input{Right: true}, common.RowRight},
		{"up_right_right_wins", component.Input{Up: true, Right: true}, common.RowRight},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _ := newTestWorld(t, cp.Vector{X: 200, Y: 200})
			addMob(t, w, cp.Vector{X: 200, Y: 0}, nil)
			p := w.Player()
			MovePlayer(w, p, c.in)
			if p.Animation.Row != c.row {
				t.Fatalf("row %d, want %d", p.Animation.Row, c.row)
			}
			if !p.Moving {
				t.Fatalf("player should be moving")
			}
			if p.Angle < 80 || p.Angle > 100 {
				t.Fatalf("player should face the mob above, angle %v", p.Angle)
			}
		})
	}
}

func TestMobPursuesPlayer(t *testing.T) {
	w, _ := newTestWorld(t, cp.Vector{X: 0, Y: 0})
	id := addMob(t, w, cp.Vector{X: 200, Y: 0}, nil)

	NewMovementSystem().Update(w)

	m := w.Entities().Get(id)
	if m.Pos.X != 198 || m.Pos.Y != 0 {
		t.Fatalf("expected mob at (198,0), got %v", m.Pos)
	}
	if m.Animation.Row != common.RowLeft || !m.Moving {
		t.Fatalf("mob should face left and move, row %d", m.Animation.Row)
	}
}

func TestMobBlockedByEntityCentre(t *testing.T) {
	w, _ := newTestWorld(t, cp.Vector{X: 0, Y: 0})
	// Mob centre is 1 unit right of the player's right edge; one step left
	// puts it inside the player.
	id := addMob(t, w, cp.Vector{X: 17, Y: 0}, nil)

	NewMovementSystem().Update(w)

	if got := w.Entities().Get(id).Pos; got.X != 17 {
		t.Fatalf("mob should be blocked by the player, got %v", got)
	}
}

func TestMobsStillWhenPlayerDead(t *testing.T) {
	w, _ := newTestWorld(t, cp.Vector{})
	id := addMob(t, w, cp.Vector{X: 200}, nil)
	w.Player().Alive = false

	NewMovementSystem().Update(w)

	if got := w.Entities().Get(id).Pos; got.X != 200 {
		t.Fatalf("mob moved without a target: %v", got)
	}
}

func TestWanderRerollsOnCooldown(t *testing.T) {
	w, clock := newTestWorld(t, cp.Vector{})
	id := addMob(t, w, cp.Vector{X: 300, Y: 300}, func(s *prefabs.MobSpec) { s.Behavior = "wander" })
	s := NewMovementSystem(WithRand(rand.New(rand.NewSource(7))))

	s.Update(w)
	m := w.Entities().Get(id)
	first := m.Direction
	if math.Abs(first.Length()-1) > 1e-9 {
		t.Fatalf("wander direction should be a unit vector, got %v", first)
	}

	clock.Advance(time.Second)
	s.Update(w)
	if w.Entities().Get(id).Direction != first {
		t.Fatalf("direction re-rolled before the interval passed")
	}

	clock.Advance(250 * time.Millisecond)
	s.Update(w)
	if w.Entities().Get(id).Direction == first {
		t.Fatalf("direction should re-roll after 1.25s")
	}
}
