package ecs

import "github.com/milk9111/tileworld/ecs/component"

type System interface {
	Update(w *World)
}

// deadRunner is implemented by systems that must keep running while the world
// is not alive, such as the one that handles respawn and quit.
type deadRunner interface {
	RunsWhileDead() bool
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := make([]System, 0, len(systems))
	for _, s := range systems {
		if s != nil {
			copied = append(copied, s)
		}
	}
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs one tick. Once the world stops being alive only systems that
// opt in through RunsWhileDead are run.
func (s *Scheduler) Update(w *World) {
	if w == nil {
		return
	}
	for _, system := range s.systems {
		if w.Status() != component.StatusAlive {
			if dr, ok := system.(deadRunner); !ok || !dr.RunsWhileDead() {
				continue
			}
		}
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
