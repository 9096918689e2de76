// Package level holds the static geometry of platformer levels and loads
// level packs from YAML.
package level

import (
	"errors"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ErrNoLevels is returned when a pack source contains no levels.
var ErrNoLevels = errors.New("level: pack contains no levels")

// EnemySpec is an enemy spawn point with its patrol bounds.
type EnemySpec struct {
	Pos        core.Point
	LeftBound  float64
	RightBound float64
}

// Level is the declarative description of one level.
type Level struct {
	ID          int
	Name        string
	Platforms   []core.Rect
	Coins       []core.Point // top-left corners
	Enemies     []EnemySpec
	PlayerStart core.Point
	Exit        *core.Rect // nil when the level has no exit
}

// Pack is an ordered, non-empty list of levels. Level numbers are 1-based.
type Pack struct {
	levels []Level
}

// NewPack creates a pack from the given levels.
func NewPack(levels []Level) (*Pack, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	return &Pack{levels: levels}, nil
}

// Count returns the number of levels in the pack.
func (p *Pack) Count() int {
	return len(p.levels)
}

// Get returns level n (1-based). Out-of-range numbers fall back to level 1.
func (p *Pack) Get(n int) Level {
	if n < 1 || n > len(p.levels) {
		n = 1
	}
	return p.levels[n-1]
}

// Levels returns every level in order.
func (p *Pack) Levels() []Level {
	out := make([]Level, len(p.levels))
	copy(out, p.levels)
	return out
}
