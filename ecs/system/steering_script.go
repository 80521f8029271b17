package system

import (
	"fmt"
	"math"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/common"
	"github.com/milk9111/tileworld/logger"
	"github.com/milk9111/tileworld/prefabs"
	"github.com/sirupsen/logrus"
)

// SteeringScript is a compiled tengo program that picks a mob's direction.
// It sees mob_x, mob_y, player_x, player_y and speed, and must leave its
// answer in dx and dy.
type SteeringScript struct {
	path     string
	compiled *tengo.Compiled
}

var steeringInputs = []string{"mob_x", "mob_y", "player_x", "player_y", "speed"}

// LoadSteeringScript compiles the script at path, looked up the way prefabs are.
func LoadSteeringScript(path string) (*SteeringScript, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("steering: load %s: %w", path, err)
	}
	return CompileSteeringScript(path, src)
}

func CompileSteeringScript(name string, src []byte) (*SteeringScript, error) {
	script := tengo.NewScript(src)
	for _, in := range steeringInputs {
		if err := script.Add(in, 0.0); err != nil {
			return nil, fmt.Errorf("steering: %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("steering: compile %s: %w", name, err)
	}
	return &SteeringScript{path: name, compiled: compiled}, nil
}

// Steer runs the script once and returns the unit direction it chose, or the
// zero vector when it chose none.
func (s *SteeringScript) Steer(mob, player cp.Vector, speed float64) (cp.Vector, error) {
	values := map[string]float64{
		"mob_x":    mob.X,
		"mob_y":    mob.Y,
		"player_x": player.X,
		"player_y": player.Y,
		"speed":    speed,
	}
	for name, v := range values {
		if err := s.compiled.Set(name, v); err != nil {
			return cp.Vector{}, fmt.Errorf("steering: %s: set %s: %w", s.path, name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return cp.Vector{}, fmt.Errorf("steering: %s: run: %w", s.path, err)
	}
	if !s.compiled.IsDefined("dx") || !s.compiled.IsDefined("dy") {
		return cp.Vector{}, fmt.Errorf("steering: %s: dx and dy must be set", s.path)
	}
	d := cp.Vector{X: s.compiled.Get("dx").Float(), Y: s.compiled.Get("dy").Float()}
	if math.IsNaN(d.X) || math.IsNaN(d.Y) {
		return cp.Vector{}, fmt.Errorf("steering: %s: result is not a number", s.path)
	}
	return common.Direction(cp.Vector{}, d), nil
}

// ScriptCache compiles each steering script once. Scripts that failed to load
// are remembered so the failure is reported only once.
type ScriptCache struct {
	scripts map[string]*SteeringScript
	failed  map[string]error
}

func NewScriptCache() *ScriptCache {
	return &ScriptCache{
		scripts: map[string]*SteeringScript{},
		failed:  map[string]error{},
	}
}

func (c *ScriptCache) Get(path string) (*SteeringScript, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("steering: no script configured")
	}
	if s, ok := c.scripts[path]; ok {
		return s, nil
	}
	if err, ok := c.failed[path]; ok {
		return nil, err
	}
	s, err := LoadSteeringScript(path)
	if err != nil {
		c.failed[path] = err
		logger.Log.WithFields(logrus.Fields{
			"component": "steering",
			"script":    path,
		}).WithError(err).Warn("steering script unavailable, mobs pursue instead")
		return nil, err
	}
	c.scripts[path] = s
	return s, nil
}

// Steer runs the script at path.
func (c *ScriptCache) Steer(path string, mob, player cp.Vector, speed float64) (cp.Vector, error) {
	s, err := c.Get(path)
	if err != nil {
		return cp.Vector{}, err
	}
	return s.Steer(mob, player, speed)
}

// Reset forgets every compiled script so edited files are picked up.
func (c *ScriptCache) Reset() {
	c.scripts = map[string]*SteeringScript{}
	c.failed = map[string]error{}
}
