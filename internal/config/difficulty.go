package config

import (
	"fmt"
	"strings"
)

// Difficulty is a named difficulty preset.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// Difficulties lists every preset in menu order.
var Difficulties = []Difficulty{Easy, Normal, Hard}

// String returns the preset name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "normal"
	}
}

// ParseDifficulty parses a preset name, case-insensitively.
// An empty string yields Normal.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "", "normal", "medium":
		return Normal, nil
	case "hard":
		return Hard, nil
	default:
		return Normal, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Next returns the following preset, wrapping around.
func (d Difficulty) Next() Difficulty {
	return Difficulty((int(d) + 1) % len(Difficulties))
}

// Prev returns the preceding preset, wrapping around.
func (d Difficulty) Prev() Difficulty {
	n := len(Difficulties)
	return Difficulty((int(d) - 1 + n) % n)
}
