package game

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

const frameStep = 16 * time.Millisecond

var epoch = time.Unix(1700000000, 0)

type drawOp struct {
	kind  string
	rect  core.Rect
	text  string
	color core.Color
}

type recordingCanvas struct {
	ops []drawOp
}

func (c *recordingCanvas) FillRect(r core.Rect, col core.Color) {
	c.ops = append(c.ops, drawOp{kind: "rect", rect: r, color: col})
}

func (c *recordingCanvas) FillEllipse(cx, cy, rx, ry float64, col core.Color) {
	c.ops = append(c.ops, drawOp{kind: "ellipse", rect: core.NewRect(cx-rx, cy-ry, 2*rx, 2*ry), color: col})
}

func (c *recordingCanvas) DrawText(x, y float64, text string, col core.Color) {
	c.ops = append(c.ops, drawOp{kind: "text", rect: core.NewRect(x, y, 0, 0), text: text, color: col})
}

// frames counts rendered frames by their background fill.
func (c *recordingCanvas) frames() int {
	n := 0
	for _, op := range c.ops {
		if op.kind == "rect" && op.color == core.ColorBackground {
			n++
		}
	}
	return n
}

type fakeSurface struct {
	w, h   int
	canvas *recordingCanvas
	err    error
}

func newSurface() *fakeSurface {
	return &fakeSurface{w: 800, h: 500, canvas: &recordingCanvas{}}
}

func (s *fakeSurface) Size() (int, int) { return s.w, s.h }

func (s *fakeSurface) Context() (core.Canvas, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.canvas, nil
}

var errNoCanvas = errors.New("canvas unsupported")

type recordingSounds struct {
	played      []audio.Sound
	musicStarts int
	musicStops  int
	muted       bool
}

func (r *recordingSounds) Play(s audio.Sound) {
	if !r.muted {
		r.played = append(r.played, s)
	}
}

func (r *recordingSounds) StartMusic()         { r.musicStarts++ }
func (r *recordingSounds) StopMusic()          { r.musicStops++ }
func (r *recordingSounds) SetMuted(muted bool) { r.muted = muted }

func (r *recordingSounds) count(s audio.Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

// newSim builds level n of the default pack on an 800x500 canvas.
func newSim(n int, diff config.Difficulty, sounds SoundPlayer, hooks Hooks) *Simulation {
	return NewSimulation(level.Default().Get(n), config.Default(), diff, 800, 500, sounds, hooks)
}

// emptyLevel has no platforms, so the player falls out immediately.
func emptyLevel(id int) level.Level {
	return level.Level{ID: id, Name: "void", PlayerStart: core.Point{X: 50, Y: 300}}
}

// exitLevel puts the player on a floor right next to the exit.
func exitLevel(id int) level.Level {
	exit := core.NewRect(100, 390, 50, 50)
	return level.Level{
		ID:          id,
		Name:        "exit",
		PlayerStart: core.Point{X: 300, Y: 380},
		Platforms:   []core.Rect{core.NewRect(0, 440, 800, 60)},
		Exit:        &exit,
	}
}

func mustPack(levels ...level.Level) *level.Pack {
	p, err := level.NewPack(levels)
	if err != nil {
		panic(err)
	}
	return p
}

// pump runs queued frames at a fixed step, up to max frames.
func pump(q *FrameQueue, start time.Time, max int) time.Time {
	ts := start
	for i := 0; i < max && q.Pending(); i++ {
		ts = ts.Add(frameStep)
		q.RunPending(ts)
	}
	return ts
}
