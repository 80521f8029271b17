package levels

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/milk9111/tileworld/ecs"
)

//go:embed default.txt default_spawn.txt
var LevelsFS embed.FS

// LoadDefault fills w with the built-in world and spawn point.
func LoadDefault(w *ecs.World) (LoadResult, error) {
	data, err := LevelsFS.ReadFile("default.txt")
	if err != nil {
		return LoadResult{}, fmt.Errorf("levels: read default world: %w", err)
	}
	spawn, err := LevelsFS.ReadFile("default_spawn.txt")
	if err != nil {
		return LoadResult{}, fmt.Errorf("levels: read default spawn: %w", err)
	}
	p, err := ParseSpawn(string(bytes.TrimSpace(spawn)))
	if err != nil {
		return LoadResult{}, err
	}

	w.ClearWorld()
	w.SetSpawn(p)
	return Load(bytes.NewReader(data), w.Layers(), w.Sprites())
}
