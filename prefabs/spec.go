package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type AnimationSpec struct {
	Frames int `yaml:"frames"`
	Speed  int `yaml:"speed"`
}

type CooldownSpec struct {
	Attack     float64 `yaml:"attack"`
	Heal       float64 `yaml:"heal"`
	Invincible float64 `yaml:"invincible"`
	Wander     float64 `yaml:"wander"`
}

// GameSpec holds session-wide settings.
type GameSpec struct {
	Title        string  `yaml:"title"`
	ScreenWidth  int     `yaml:"screen_width"`
	ScreenHeight int     `yaml:"screen_height"`
	FPS          int     `yaml:"fps"`
	TileSize     float64 `yaml:"tile_size"`
	Scale        float64 `yaml:"scale"`
	CameraLerp   float64 `yaml:"camera_lerp"`

	World string `yaml:"world"`
	Spawn string `yaml:"spawn"`

	ExperienceAward float64 `yaml:"experience_award"`
	LevelThreshold  float64 `yaml:"level_threshold"`
	HealAmount      float64 `yaml:"heal_amount"`
}

// ScreenTileSize is the placed footprint of one tile.
func (g GameSpec) ScreenTileSize() float64 {
	return g.TileSize * g.Scale
}

// ActorSpec describes the player or a mob.
type ActorSpec struct {
	Name      string        `yaml:"name"`
	Sprite    string        `yaml:"sprite"`
	Speed     float64       `yaml:"speed"`
	Health    float64       `yaml:"health"`
	MaxHealth float64       `yaml:"max_health"`
	Damage    float64       `yaml:"damage"`
	Cooldowns CooldownSpec  `yaml:"cooldowns"`
	Animation AnimationSpec `yaml:"animation"`
	// Behavior is pursue, wander or script. Ignored for the player.
	Behavior string `yaml:"behavior"`
	Script   string `yaml:"script"`
}

type PlayerSpec = ActorSpec
type MobSpec = ActorSpec

func LoadGameSpec() (GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return DefaultGameSpec(), err
	}
	spec.fill(DefaultGameSpec())
	return spec, nil
}

func LoadPlayerSpec() (PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return DefaultPlayerSpec(), err
	}
	spec.fill(DefaultPlayerSpec())
	return spec, nil
}

func LoadMobSpec() (MobSpec, error) {
	spec, err := LoadSpec[MobSpec]("mob.yaml")
	if err != nil {
		return DefaultMobSpec(), err
	}
	spec.fill(DefaultMobSpec())
	return spec, nil
}

func DefaultGameSpec() GameSpec {
	return GameSpec{
		Title:           "tileworld",
		ScreenWidth:     1280,
		ScreenHeight:    720,
		FPS:             60,
		TileSize:        16,
		Scale:           2,
		CameraLerp:      0.1,
		World:           "levels/world.txt",
		Spawn:           "levels/spawn.txt",
		ExperienceAward: 20,
		LevelThreshold:  100,
		HealAmount:      20,
	}
}

func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name:      "player",
		Sprite:    "assets/player.png",
		Speed:     3,
		Health:    100,
		MaxHealth: 100,
		Damage:    25,
		Cooldowns: CooldownSpec{Attack: 1.0, Heal: 0.5, Invincible: 1.5},
		Animation: AnimationSpec{Frames: 3, Speed: 15},
	}
}

func DefaultMobSpec() MobSpec {
	return MobSpec{
		Name:      "mob",
		Sprite:    "assets/mob.png",
		Speed:     2,
		Health:    100,
		MaxHealth: 100,
		Damage:    10,
		Cooldowns: CooldownSpec{Attack: 1.0, Wander: 1.25},
		Animation: AnimationSpec{Frames: 3, Speed: 15},
		Behavior:  "pursue",
		Script:    "scripts/pursue.tengo",
	}
}

func (g *GameSpec) fill(d GameSpec) {
	if g.Title == "" {
		g.Title = d.Title
	}
	if g.ScreenWidth <= 0 {
		g.ScreenWidth = d.ScreenWidth
	}
	if g.ScreenHeight <= 0 {
		g.ScreenHeight = d.ScreenHeight
	}
	if g.FPS <= 0 {
		g.FPS = d.FPS
	}
	if g.TileSize <= 0 {
		g.TileSize = d.TileSize
	}
	if g.Scale <= 0 {
		g.Scale = d.Scale
	}
	if g.CameraLerp <= 0 || g.CameraLerp > 1 {
		g.CameraLerp = d.CameraLerp
	}
	if g.World == "" {
		g.World = d.World
	}
	if g.Spawn == "" {
		g.Spawn = d.Spawn
	}
	if g.ExperienceAward <= 0 {
		g.ExperienceAward = d.ExperienceAward
	}
	if g.LevelThreshold <= 0 {
		g.LevelThreshold = d.LevelThreshold
	}
	if g.HealAmount <= 0 {
		g.HealAmount = d.HealAmount
	}
}

func (a *ActorSpec) fill(d ActorSpec) {
	if a.Name == "" {
		a.Name = d.Name
	}
	if a.Sprite == "" {
		a.Sprite = d.Sprite
	}
	if a.Speed <= 0 {
		a.Speed = d.Speed
	}
	if a.MaxHealth <= 0 {
		a.MaxHealth = d.MaxHealth
	}
	if a.Health <= 0 || a.Health > a.MaxHealth {
		a.Health = a.MaxHealth
	}
	if a.Damage <= 0 {
		a.Damage = d.Damage
	}
	if a.Cooldowns.Attack <= 0 {
		a.Cooldowns.Attack = d.Cooldowns.Attack
	}
	if a.Cooldowns.Heal <= 0 {
		a.Cooldowns.Heal = d.Cooldowns.Heal
	}
	if a.Cooldowns.Invincible <= 0 {
		a.Cooldowns.Invincible = d.Cooldowns.Invincible
	}
	if a.Cooldowns.Wander <= 0 {
		a.Cooldowns.Wander = d.Cooldowns.Wander
	}
	if a.Animation.Frames <= 0 {
		a.Animation.Frames = d.Animation.Frames
	}
	if a.Animation.Speed <= 0 {
		a.Animation.Speed = d.Animation.Speed
	}
	if a.Behavior == "" {
		a.Behavior = d.Behavior
	}
	if a.Script == "" {
		a.Script = d.Script
	}
}
