// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

import "math"

// Config contains all tunable parameters of the simulation.
type Config struct {
	Physics    Physics          `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Coin       CoinConfig       `yaml:"coin"`
	Exit       ExitConfig       `yaml:"exit"`
	World      WorldConfig      `yaml:"world"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Physics defines the player's motion parameters, in pixels and seconds.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // px/s², applied every frame
	JumpImpulse float64 `yaml:"jump_impulse"` // px/s, negative is up
	MoveSpeed   float64 `yaml:"move_speed"`   // px/s, horizontal
	Friction    float64 `yaml:"friction"`     // per-frame multiplier on VX
}

// PlayerConfig defines the player's hitbox.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemyConfig defines enemy size and base patrol speed.
type EnemyConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	BaseSpeed float64 `yaml:"base_speed"` // px/s before the difficulty multiplier
}

// CoinConfig defines coin size, value and spin animation.
type CoinConfig struct {
	Size  float64 `yaml:"size"`
	Value int     `yaml:"value"`
	Spin  float64 `yaml:"spin"` // radians per rendered frame
}

// ExitConfig defines the exit portal.
type ExitConfig struct {
	PulseRate float64 `yaml:"pulse_rate"` // pulse units per second
	SwirlRate float64 `yaml:"swirl_rate"` // radians per second
}

// WorldConfig defines canvas dimensions and life rules.
type WorldConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	SafetyBoundary float64 `yaml:"safety_boundary"` // fall-out line in px
	BaseLives      int     `yaml:"base_lives"`
}

// Size returns the world size in whole pixels.
func (w WorldConfig) Size() (int, int) {
	return int(math.Round(w.Width)), int(math.Round(w.Height))
}

// DifficultyConfig holds the multipliers of each preset.
type DifficultyConfig struct {
	Easy   Multipliers `yaml:"easy"`
	Normal Multipliers `yaml:"normal"`
	Hard   Multipliers `yaml:"hard"`
}

// Multipliers scales enemy speed and starting lives.
type Multipliers struct {
	EnemySpeed float64 `yaml:"enemy_speed"`
	Lives      float64 `yaml:"lives"`
}

// For returns the multipliers of a difficulty preset.
// Unknown presets use Normal.
func (d DifficultyConfig) For(diff Difficulty) Multipliers {
	switch diff {
	case Easy:
		return d.Easy
	case Hard:
		return d.Hard
	default:
		return d.Normal
	}
}

// EnemySpeed returns the patrol speed for the given difficulty.
func (c Config) EnemySpeed(diff Difficulty) float64 {
	return c.Enemy.BaseSpeed * c.Difficulty.For(diff).EnemySpeed
}

// StartingLives returns the lives granted at the start of a level.
// Never less than one.
func (c Config) StartingLives(diff Difficulty) int {
	lives := int(float64(c.World.BaseLives) * c.Difficulty.For(diff).Lives)
	if lives < 1 {
		return 1
	}
	return lives
}
