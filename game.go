package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tileworld/assets"
	"github.com/milk9111/tileworld/ecs"
	"github.com/milk9111/tileworld/ecs/component"
	"github.com/milk9111/tileworld/ecs/entity"
	"github.com/milk9111/tileworld/ecs/render"
	"github.com/milk9111/tileworld/ecs/system"
	"github.com/milk9111/tileworld/levels"
	"github.com/milk9111/tileworld/logger"
	"github.com/milk9111/tileworld/prefabs"
	"github.com/sirupsen/logrus"
)

// maxFeed is how many recent events the HUD keeps.
const maxFeed = 5

type Options struct {
	WorldPath string
	SpawnPath string
	Debug     bool
	Watch     bool
}

type Game struct {
	spec   prefabs.GameSpec
	player prefabs.PlayerSpec
	mob    prefabs.MobSpec

	world   *ecs.World
	systems *system.Systems
	sched   *ecs.Scheduler
	camera  *render.Camera
	watcher *prefabs.Watcher

	worldPath string
	spawnPath string
	debug     bool

	frames int
	feed   []string
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{worldPath: opts.WorldPath, spawnPath: opts.SpawnPath, debug: opts.Debug}
	g.loadSpecs()
	if g.spawnPath == "" && g.worldPath != "" {
		g.spawnPath = g.spec.Spawn
	}

	g.world = ecs.NewWorld(
		ecs.WithTileSize(g.spec.ScreenTileSize()),
		ecs.WithSprites(render.NewSpriteCache(assets.Loader)),
	)
	g.systems = system.NewSystems(g.spec, g.player, g.mob)
	g.sched = g.systems.Scheduler()
	g.camera = render.NewCamera(g.spec.ScreenWidth, g.spec.ScreenHeight, g.spec.CameraLerp)

	g.loadWorld()
	if _, err := entity.NewPlayerAtSpawn(g.world, g.player); err != nil {
		return nil, fmt.Errorf("game: create player: %w", err)
	}
	g.camera.Pos = g.world.Player().Center(g.world.EntitySize())
	w, h := g.camera.Size()
	g.world.Focus(g.camera.Pos, w, h)

	if opts.Watch {
		dirs := []string{"prefabs", filepath.Join("prefabs", "scripts")}
		if g.worldPath != "" {
			dirs = append(dirs, filepath.Dir(g.worldPath))
		}
		watcher, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			logger.Log.WithError(err).Warn("file watching disabled")
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

// loadSpecs reads the game, player and mob specs, keeping defaults for any
// that fail to load.
func (g *Game) loadSpecs() {
	var err error
	if g.spec, err = prefabs.LoadGameSpec(); err != nil {
		logger.Log.WithError(err).Warn("using default game spec")
	}
	if g.player, err = prefabs.LoadPlayerSpec(); err != nil {
		logger.Log.WithError(err).Warn("using default player spec")
	}
	if g.mob, err = prefabs.LoadMobSpec(); err != nil {
		logger.Log.WithError(err).Warn("using default mob spec")
	}
}

// loadWorld fills the layers and spawn point. A missing world file leaves
// the world empty.
func (g *Game) loadWorld() {
	if g.worldPath == "" {
		if _, err := levels.LoadDefault(g.world); err != nil {
			logger.Log.WithError(err).Error("built-in world failed to load")
		}
		return
	}

	g.world.ClearWorld()
	if _, err := levels.LoadFile(g.world, g.worldPath); err != nil {
		if errors.Is(err, levels.ErrNoWorld) {
			logger.Log.WithField("path", g.worldPath).Error("world file missing, starting empty")
		} else {
			logger.Log.WithError(err).Error("world load failed")
		}
	}
	g.loadSpawn()
}

func (g *Game) loadSpawn() {
	if g.spawnPath == "" {
		return
	}
	p, err := levels.LoadSpawn(g.spawnPath)
	if err != nil {
		logger.Log.WithError(err).Warn("bad spawn file, using origin")
	}
	g.world.SetSpawn(p)
}

func (g *Game) Update() error {
	g.frames++
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.save()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	g.world.SetInput(pollInput(g.camera))
	g.sched.Update(g.world)
	g.drainEvents()

	if g.world.Status() == component.StatusQuit {
		return ebiten.Termination
	}

	if p := g.world.Player(); p != nil {
		g.camera.Update(p.Center(g.world.EntitySize()))
	}
	w, h := g.camera.Size()
	g.world.Focus(g.camera.Pos, w, h)
	return nil
}

func (g *Game) drainEvents() {
	for _, ev := range g.world.Events().Drain() {
		var line string
		switch ev.Type {
		case ecs.EventEntityKilled:
			line = fmt.Sprintf("mob %d slain", ev.EntityID)
		case ecs.EventLevelUp:
			line = fmt.Sprintf("level up: %v", ev.Data)
		case ecs.EventHealed:
			line = fmt.Sprintf("healed to %.0f", ev.Data)
		case ecs.EventPlayerDied:
			line = "you died"
		case ecs.EventRespawned:
			line = "respawned"
		default:
			continue
		}
		g.feed = append(g.feed, line)
		if len(g.feed) > maxFeed {
			g.feed = g.feed[len(g.feed)-maxFeed:]
		}
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			logger.Log.WithError(err).Warn("watcher error")
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	log := logger.Log.WithFields(logrus.Fields{"component": "reload", "file": name})
	switch {
	case prefabs.IsSpecFile(name):
		g.loadSpecs()
		g.systems.Reload(g.spec, g.player, g.mob)
		log.Info("specs reloaded")
	case prefabs.IsScriptFile(name):
		g.systems.Movement.Scripts().Reset()
		log.Info("scripts reloaded")
	case g.spawnPath != "" && samePath(name, g.spawnPath):
		g.loadSpawn()
		log.Info("spawn reloaded")
	case g.worldPath != "" && samePath(name, g.worldPath):
		spawn := g.world.Spawn()
		if _, err := levels.LoadFile(g.world, g.worldPath); err != nil {
			log.WithError(err).Warn("world reload failed")
			return
		}
		g.world.SetSpawn(spawn)
		log.Info("world reloaded")
	}
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b) || filepath.Base(a) == filepath.Base(b)
}

// save writes the current layers and spawn point back to disk.
func (g *Game) save() {
	worldPath, spawnPath := g.worldPath, g.spawnPath
	if worldPath == "" {
		worldPath, spawnPath = g.spec.World, g.spec.Spawn
	}
	if err := levels.Save(worldPath, g.world.Layers()); err != nil {
		logger.Log.WithError(err).Error("save world failed")
		return
	}
	if err := levels.SaveSpawn(spawnPath, g.world.Spawn()); err != nil {
		logger.Log.WithError(err).Error("save spawn failed")
		return
	}
	logger.Log.WithFields(logrus.Fields{"world": worldPath, "spawn": spawnPath}).Info("world saved")
}

// Layout follows the window size, so a larger window shows more of the world.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.SetScreenSize(outsideWidth, outsideHeight)
	w, h := g.camera.Size()
	return int(w), int(h)
}

// Close releases the world and stops watching files.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
	g.world.Close()
}
