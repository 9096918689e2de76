package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:     1000,
			JumpImpulse: -500,
			MoveSpeed:   300,
			Friction:    0.9,
		},
		Player: PlayerConfig{
			Width:  40,
			Height: 60,
		},
		Enemy: EnemyConfig{
			Width:     40,
			Height:    40,
			BaseSpeed: 100,
		},
		Coin: CoinConfig{
			Size:  20,
			Value: 10,
			Spin:  0.05,
		},
		Exit: ExitConfig{
			PulseRate: 2,
			SwirlRate: 2,
		},
		World: WorldConfig{
			Width:          800,
			Height:         500,
			SafetyBoundary: 600,
			BaseLives:      3,
		},
		Difficulty: DifficultyConfig{
			Easy:   Multipliers{EnemySpeed: 0.7, Lives: 1.5},
			Normal: Multipliers{EnemySpeed: 1.0, Lives: 1.0},
			Hard:   Multipliers{EnemySpeed: 1.5, Lives: 0.7},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
