package system

import (
	"fmt"

	"github.com/milk9111/tileworld/ecs"
	"github.com/milk9111/tileworld/ecs/component"
	"github.com/milk9111/tileworld/ecs/entity"
	"github.com/milk9111/tileworld/logger"
	"github.com/milk9111/tileworld/prefabs"
	"github.com/sirupsen/logrus"
)

// StatusSystem handles the session state: quitting at any time, and
// respawning once the player has died.
type StatusSystem struct {
	Player prefabs.PlayerSpec
}

func NewStatusSystem(player prefabs.PlayerSpec) *StatusSystem {
	return &StatusSystem{Player: player}
}

func (s *StatusSystem) RunsWhileDead() bool { return true }

func (s *StatusSystem) Update(w *ecs.World) {
	if w == nil || w.Status() == component.StatusQuit {
		return
	}
	in := w.Input()
	if in.QuitPressed {
		w.SetStatus(component.StatusQuit)
		logger.Log.WithField("component", "status").Info("session quit")
		return
	}
	if w.Status() == component.StatusDead && in.RespawnPressed {
		if err := Respawn(w, s.Player); err != nil {
			logger.Log.WithField("component", "status").WithError(err).Error("respawn failed")
		}
	}
}

// Respawn clears every entity, recreates the player at the spawn point and
// brings the world back to life. Tiles are left as they are.
func Respawn(w *ecs.World, spec prefabs.PlayerSpec) error {
	w.Entities().Reset()
	id, err := entity.NewPlayerAtSpawn(w, spec)
	if err != nil {
		return fmt.Errorf("respawn: %w", err)
	}
	w.SetStatus(component.StatusAlive)
	w.Emit(ecs.EventRespawned, id, w.Spawn())
	logger.Log.WithFields(logrus.Fields{
		"component": "status",
		"x":         w.Spawn().X,
		"y":         w.Spawn().Y,
	}).Info("player respawned")
	return nil
}
