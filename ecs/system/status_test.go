package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/ecs"
	"github.com/milk9111/tileworld/ecs/component"
	"github.com/milk9111/tileworld/prefabs"
)

func TestStatusSystem(t *testing.T) {
	cases := []struct {
		name       string
		status     component.Status
		in         component.Input
		wantStatus component.Status
		wantLen    int
	}{
		{"alive_no_input", component.StatusAlive, component.Input{}, component.StatusAlive, 2},
		{"quit_while_alive", component.StatusAlive, component.Input{QuitPressed: true}, component.StatusQuit, 2},
		{"dead_waits", component.StatusDead, component.Input{}, component.StatusDead, 2},
		{"dead_respawns", component.StatusDead, component.Input{RespawnPressed: true}, component.StatusAlive, 1},
		{"dead_quits", component.StatusDead, component.Input{QuitPressed: true}, component.StatusQuit, 2},
		{"respawn_ignored_while_alive", component.StatusAlive, component.Input{RespawnPressed: true}, component.StatusAlive, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _ := newTestWorld(t, cp.Vector{X: 64, Y: 64})
			addMob(t, w, cp.Vector{X: 300, Y: 300}, nil)
			if c.status == component.StatusDead {
				w.Player().SetHealth(0)
				w.Player().Alive = false
			}
			w.SetStatus(c.status)
			w.SetInput(c.in)

			NewStatusSystem(prefabs.DefaultPlayerSpec()).Update(w)

			if w.Status() != c.wantStatus {
				t.Fatalf("status %v, want %v", w.Status(), c.wantStatus)
			}
			if w.Entities().Len() != c.wantLen {
				t.Fatalf("expected %d entities, got %d", c.wantLen, w.Entities().Len())
			}
		})
	}
}

func TestRespawnRecreatesPlayerAtSpawn(t *testing.T) {
	w, _ := newTestWorld(t, cp.Vector{X: 64, Y: 64})
	addMob(t, w, cp.Vector{X: 300, Y: 300}, nil)
	addWall(t, w, 0, 0)
	p := w.Player()
	p.Pos = cp.Vector{X: 500, Y: 500}
	p.Level = 4
	w.SetStatus(component.StatusDead)

	if err := Respawn(w, prefabs.DefaultPlayerSpec()); err != nil {
		t.Fatalf("Respawn: %v", err)
	}
	p = w.Player()
	if p == nil || p.Pos != w.Spawn() || p.Level != 1 || p.Health != 100 {
		t.Fatalf("unexpected player after respawn: %+v", p)
	}
	if w.Entities().Len() != 1 || w.Layers().Len(component.Wall) != 1 {
		t.Fatalf("respawn should clear entities only")
	}
	if w.Status() != component.StatusAlive {
		t.Fatalf("expected alive status, got %v", w.Status())
	}
	evs := w.Events().Drain()
	if len(evs) != 1 || evs[0].Type != ecs.EventRespawned {
		t.Fatalf("unexpected events %+v", evs)
	}
}

func TestFullTickSuspendsWhileDead(t *testing.T) {
	w, _ := newTestWorld(t, cp.Vector{X: 100, Y: 100})
	id := addMob(t, w, cp.Vector{X: 110, Y: 100}, func(s *prefabs.MobSpec) { s.Damage = 250 })
	systems := NewSystems(prefabs.DefaultGameSpec(), prefabs.DefaultPlayerSpec(), prefabs.DefaultMobSpec())
	sched := systems.Scheduler()

	sched.Update(w)
	if w.Status() != component.StatusDead {
		t.Fatalf("player should die on the first tick, status %v", w.Status())
	}

	before := w.Entities().Get(id).Pos
	sched.Update(w)
	if w.Entities().Get(id).Pos != before {
		t.Fatalf("mobs must not move while the world is dead")
	}

	w.SetInput(component.Input{RespawnPressed: true})
	sched.Update(w)
	if w.Status() != component.StatusAlive || w.Entities().Len() != 1 {
		t.Fatalf("respawn through the tick failed: status %v len %d", w.Status(), w.Entities().Len())
	}
}

func TestAnimationSystem(t *testing.T) {
	w, _ := newTestWorld(t, cp.Vector{})
	id := addMob(t, w, cp.Vector{X: 200}, nil)
	m := w.Entities().Get(id)
	m.Moving = true
	m.Animation = component.NewAnimation(3, 1)
	m.Animation.Row = 2
	p := w.Player()
	p.Animation.Counter = 7
	p.Animation.Col = 2
	p.Animation.Row = 3

	NewAnimationSystem().Update(w)

	if m.Animation.Col != 1 || m.Animation.Row != 2 {
		t.Fatalf("moving mob should advance, got col %d row %d", m.Animation.Col, m.Animation.Row)
	}
	if p.Animation.Col != 0 || p.Animation.Row != 0 {
		t.Fatalf("idle player should show (0,0), got (%d,%d)", p.Animation.Col, p.Animation.Row)
	}
}
