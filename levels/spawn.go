package levels

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/logger"
)

// ParseSpawn reads a spawn point written as "x,y" or "x y".
func ParseSpawn(s string) (cp.Vector, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return cp.Vector{}, fmt.Errorf("levels: spawn: want 2 values, got %d", len(fields))
	}
	x, err := parseCoord(fields[0])
	if err != nil {
		return cp.Vector{}, fmt.Errorf("levels: spawn x: %w", err)
	}
	y, err := parseCoord(fields[1])
	if err != nil {
		return cp.Vector{}, fmt.Errorf("levels: spawn y: %w", err)
	}
	return cp.Vector{X: x, Y: y}, nil
}

// parseCoord reads one finite spawn coordinate.
func parseCoord(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return f, nil
}

// LoadSpawn reads the spawn file at path. A missing file is not an error: the
// spawn point is the origin. A corrupt file returns the origin with an error.
func LoadSpawn(path string) (cp.Vector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Log.WithField("path", path).Info("no spawn point saved, using origin")
			return cp.Vector{}, nil
		}
		return cp.Vector{}, fmt.Errorf("levels: read spawn: %w", err)
	}
	first, _, _ := strings.Cut(string(data), "\n")
	return ParseSpawn(first)
}

func FormatSpawn(p cp.Vector) string {
	return strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64)
}

// SaveSpawn overwrites the spawn file at path.
func SaveSpawn(path string, p cp.Vector) error {
	if err := os.WriteFile(path, []byte(FormatSpawn(p)+"\n"), 0o644); err != nil {
		return fmt.Errorf("levels: write spawn: %w", err)
	}
	return nil
}
