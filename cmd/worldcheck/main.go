// Command worldcheck validates a world file: it reports skipped lines, tiles
// per category, unloadable sprites and whether the spawn point is free.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/milk9111/tileworld/common"
	"github.com/milk9111/tileworld/ecs"
	"github.com/milk9111/tileworld/ecs/component"
	"github.com/milk9111/tileworld/ecs/render"
	"github.com/milk9111/tileworld/levels"
	"github.com/milk9111/tileworld/logger"
)

type checkOptions struct {
	World   string
	Spawn   string
	Sprites bool
	Rewrite string
	// Categories limits the per-category report and sprite check, as a comma
	// separated list of names such as "wall,health_buff". Empty means all.
	Categories string
}

func main() {
	var opts checkOptions
	flag.StringVar(&opts.World, "world", "levels/world.txt", "world file to check")
	flag.StringVar(&opts.Spawn, "spawn", "", "spawn point file to check against the walls")
	flag.BoolVar(&opts.Sprites, "sprites", false, "also try to decode every sprite path")
	flag.StringVar(&opts.Rewrite, "rewrite", "", "write the loaded world, normalised, to this path")
	flag.StringVar(&opts.Categories, "category", "", "comma separated categories to report (default all)")
	logLevel := flag.String("loglevel", "warn", "log level")
	flag.Parse()

	logger.Init(logger.Options{Level: *logLevel})

	ok, err := run(os.Stdout, opts)
	if err != nil {
		logger.Log.WithError(err).Error("worldcheck failed")
		os.Exit(2)
	}
	if !ok {
		os.Exit(1)
	}
}

// selectCategories resolves a comma separated list of category names.
func selectCategories(list string) ([]component.Category, error) {
	if strings.TrimSpace(list) == "" {
		return component.Categories(), nil
	}
	var cats []component.Category
	for _, name := range strings.Split(list, ",") {
		cat, err := component.CategoryByName(name)
		if err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

// run reports on the world at opts.World. It returns false when the world has
// problems worth failing a check over.
func run(out io.Writer, opts checkOptions) (bool, error) {
	cats, err := selectCategories(opts.Categories)
	if err != nil {
		return false, err
	}

	var loader render.Loader
	if opts.Sprites {
		loader = render.DecodeFile
	}
	w := ecs.NewWorld(ecs.WithSprites(render.NewSpriteCache(loader)))
	defer w.Close()

	res, err := levels.LoadFile(w, opts.World)
	if err != nil {
		return false, err
	}

	ok := res.Skipped == 0
	fmt.Fprintf(out, "%s: %d tiles loaded, %d lines skipped\n", opts.World, res.Loaded, res.Skipped)
	for _, cat := range cats {
		fmt.Fprintf(out, "  %-13s %d\n", cat, res.ByCategory[cat])
	}

	if opts.Sprites {
		bad := map[string]bool{}
		for _, cat := range cats {
			w.Layers().Each(cat, func(_ int, t *component.Tile) {
				if !t.Sprite.Valid() {
					bad[t.Sprite.Path] = true
				}
			})
		}
		for path := range bad {
			fmt.Fprintf(out, "  sprite not loadable: %s\n", path)
		}
		ok = ok && len(bad) == 0
	}

	if opts.Spawn != "" {
		spawn, err := levels.LoadSpawn(opts.Spawn)
		if err != nil {
			return false, err
		}
		footprint := common.Square(spawn, w.EntitySize())
		if idx := w.Layers().QueryCollision(footprint, component.Wall); idx != component.None {
			wall := w.Layers().Tile(component.Wall, idx)
			fmt.Fprintf(out, "  spawn (%g,%g) overlaps wall at (%g,%g)\n", spawn.X, spawn.Y, wall.Pos.X, wall.Pos.Y)
			ok = false
		} else {
			fmt.Fprintf(out, "  spawn (%g,%g) is clear\n", spawn.X, spawn.Y)
		}
	}

	if opts.Rewrite != "" {
		if err := levels.Save(opts.Rewrite, w.Layers()); err != nil {
			return false, err
		}
		fmt.Fprintf(out, "  rewritten to %s\n", opts.Rewrite)
	}
	return ok, nil
}
