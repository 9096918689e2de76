package level

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

//go:embed levels/default.yaml
var defaultYAML []byte

// File is the on-disk YAML layout of a level pack.
type File struct {
	Levels []LevelFile `yaml:"levels"`
}

// LevelFile is one level as written in YAML.
type LevelFile struct {
	ID          int         `yaml:"id"`
	Name        string      `yaml:"name"`
	PlayerStart *PointFile  `yaml:"player_start"`
	Platforms   []RectFile  `yaml:"platforms"`
	Coins       []PointFile `yaml:"coins"`
	Enemies     []EnemyFile `yaml:"enemies"`
	Exit        *RectFile   `yaml:"exit"`
}

// PointFile is a position in pixels.
type PointFile struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectFile is a rectangle in pixels.
type RectFile struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemyFile is an enemy spawn with its patrol bounds.
type EnemyFile struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	LeftBound  float64 `yaml:"left_bound"`
	RightBound float64 `yaml:"right_bound"`
}

func (r RectFile) rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.Width, r.Height)
}

func (p PointFile) point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

// Parse decodes a YAML level pack. Levels without an explicit id are
// numbered by their position in the document.
func Parse(data []byte) ([]Level, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("level: cannot parse yaml: %w", err)
	}
	if len(f.Levels) == 0 {
		return nil, ErrNoLevels
	}

	levels := make([]Level, 0, len(f.Levels))
	var errs []error
	for i, lf := range f.Levels {
		lvl, err := lf.toLevel(i + 1)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		levels = append(levels, lvl)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return levels, nil
}

// Default returns the embedded default pack.
func Default() *Pack {
	levels, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("level: embedded default pack is invalid: %v", err))
	}
	pack, _ := NewPack(levels)
	return pack
}

func (lf LevelFile) toLevel(pos int) (Level, error) {
	id := lf.ID
	if id == 0 {
		id = pos
	}
	name := lf.Name
	if name == "" {
		name = fmt.Sprintf("Level %d", id)
	}

	fail := func(format string, args ...any) (Level, error) {
		return Level{}, fmt.Errorf("level %d (%s): %s", id, name, fmt.Sprintf(format, args...))
	}

	if lf.PlayerStart == nil {
		return fail("player_start is required")
	}

	lvl := Level{
		ID:          id,
		Name:        name,
		PlayerStart: lf.PlayerStart.point(),
		Platforms:   make([]core.Rect, 0, len(lf.Platforms)),
		Coins:       make([]core.Point, 0, len(lf.Coins)),
		Enemies:     make([]EnemySpec, 0, len(lf.Enemies)),
	}

	for i, p := range lf.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return fail("platform %d has non-positive size %vx%v", i, p.Width, p.Height)
		}
		lvl.Platforms = append(lvl.Platforms, p.rect())
	}
	for _, c := range lf.Coins {
		lvl.Coins = append(lvl.Coins, c.point())
	}
	for i, e := range lf.Enemies {
		if e.LeftBound >= e.RightBound {
			return fail("enemy %d has left_bound %v not below right_bound %v", i, e.LeftBound, e.RightBound)
		}
		lvl.Enemies = append(lvl.Enemies, EnemySpec{
			Pos:        core.Point{X: e.X, Y: e.Y},
			LeftBound:  e.LeftBound,
			RightBound: e.RightBound,
		})
	}
	if lf.Exit != nil {
		if lf.Exit.Width <= 0 || lf.Exit.Height <= 0 {
			return fail("exit has non-positive size %vx%v", lf.Exit.Width, lf.Exit.Height)
		}
		r := lf.Exit.rect()
		lvl.Exit = &r
	}
	return lvl, nil
}
