package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/common"
	"github.com/milk9111/tileworld/ecs"
	"github.com/milk9111/tileworld/ecs/component"
	"github.com/milk9111/tileworld/prefabs"
)

func TestTrySpawn(t *testing.T) {
	cases := []struct {
		name  string
		point cp.Vector
		area  common.Rect
		want  bool
	}{
		{"open_floor", cp.Vector{X: 200, Y: 200}, common.Rect{}, true},
		{"on_wall", cp.Vector{X: 40, Y: 40}, common.Rect{}, false},
		{"wall_edge_touch_allowed", cp.Vector{X: 64, Y: 32}, common.Rect{}, true},
		{"on_player", cp.Vector{X: 300, Y: 300}, common.Rect{}, false},
		{"outside_area", cp.Vector{X: 200, Y: 200}, common.Rect{Width: 100, Height: 100}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _ := newTestWorld(t, cp.Vector{X: 300, Y: 300})
			addWall(t, w, 32, 32)
			w.SetArea(c.area)
			s := NewSpawnSystem(prefabs.DefaultMobSpec())
			before := w.Entities().Len()

			id, ok := s.TrySpawn(w, c.point)
			if ok != c.want {
				t.Fatalf("TrySpawn = %v, want %v", ok, c.want)
			}
			if !c.want {
				if id != component.None || w.Entities().Len() != before {
					t.Fatalf("rejected spawn changed the registry: id %d len %d", id, w.Entities().Len())
				}
				return
			}
			m := w.Entities().Get(id)
			if m == nil || m.Kind != component.KindMob || m.Health != 100 || m.Pos != c.point {
				t.Fatalf("unexpected mob %+v", m)
			}
		})
	}
}

func TestSpawnSystemUsesCursor(t *testing.T) {
	w, _ := newTestWorld(t, cp.Vector{})
	s := NewSpawnSystem(prefabs.DefaultMobSpec())

	w.SetInput(component.Input{Cursor: cp.Vector{X: 200, Y: 200}})
	s.Update(w)
	if w.Entities().Len() != 1 {
		t.Fatalf("no spawn without the spawn key")
	}

	w.SetInput(component.Input{SpawnPressed: true, Cursor: cp.Vector{X: 200, Y: 200}})
	s.Update(w)
	s.Update(w)
	if w.Entities().Len() != 2 {
		t.Fatalf("second spawn on the same spot should be blocked, got %d entities", w.Entities().Len())
	}
	evs := w.Events().Drain()
	if len(evs) != 1 || evs[0].Type != ecs.EventSpawned || evs[0].EntityID != 1 {
		t.Fatalf("unexpected events %+v", evs)
	}
}
