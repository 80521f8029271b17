package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tileworld/logger"
)

func main() {
	worldPath := flag.String("world", "", "world file to load (empty uses the built-in world)")
	spawnPath := flag.String("spawn", "", "spawn point file (defaults to the game spec)")
	debug := flag.Bool("debug", false, "draw collision boxes and entity details")
	watch := flag.Bool("watch", false, "reload world, spawn, specs and scripts when they change on disk")
	logFile := flag.String("logfile", "", "write logs to a rotating file instead of stdout")
	logLevel := flag.String("loglevel", "", "log level (trace, debug, info, warn, error)")
	flag.Parse()

	logger.Init(logger.Options{Level: *logLevel, File: *logFile})

	game, err := NewGame(Options{
		WorldPath: *worldPath,
		SpawnPath: *spawnPath,
		Debug:     *debug,
		Watch:     *watch,
	})
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to start")
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.spec.ScreenWidth, game.spec.ScreenHeight)
	ebiten.SetWindowTitle(game.spec.Title)
	ebiten.SetTPS(game.spec.FPS)

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		logger.Log.WithError(err).Fatal("game exited")
	}
}
