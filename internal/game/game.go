package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// ErrNoContext is returned by New when the surface cannot produce a canvas.
var ErrNoContext = errors.New("game: could not get drawing context")

// Sounds is the sound sink of a running game.
type Sounds interface {
	SoundPlayer
	StartMusic()
	StopMusic()
	SetMuted(muted bool)
}

// Controls is the input surface of a running game, fed by the shells.
type Controls interface {
	KeyDown(k core.Key)
	KeyUp(k core.Key)
	SetTouchMove(d core.TouchDirection)
	ClearTouchMove()
	TriggerJump()
}

var _ Controls = (*Game)(nil)

// Options configures a Game.
type Options struct {
	Surface core.Surface // required

	OnScore         func(score int)
	OnLives         func(lives int)
	OnLevelComplete func()

	Level      int // 1-based; out-of-range numbers play level 1
	Difficulty config.Difficulty
	Compact    bool // layout hint, recorded for the shell

	Levels    *level.Pack    // nil uses the embedded default pack
	Config    *config.Config // nil uses config.Default
	Sound     Sounds         // nil plays nothing
	Scheduler Scheduler      // nil uses a private FrameQueue
	Logger    *log.Logger    // nil discards
}

// Game drives one level: it owns the frame loop, the input state and the
// simulation.
type Game struct {
	opts   Options
	sim    *Simulation
	canvas core.Canvas
	input  *core.InputState
	sched  Scheduler
	sound  Sounds
	logger *log.Logger

	level    int
	frameID  FrameID
	running  bool
	attached bool // input listeners attached
	last     time.Time
}

// New builds a game for the requested level. It fails with ErrNoContext if
// the surface cannot be drawn on.
func New(opts Options) (*Game, error) {
	if opts.Surface == nil {
		return nil, ErrNoContext
	}
	canvas, err := opts.Surface.Context()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoContext, err)
	}

	g := &Game{
		opts:   opts,
		canvas: canvas,
		input:  core.NewInputState(),
		sched:  opts.Scheduler,
		sound:  opts.Sound,
		logger: opts.Logger,
	}
	if g.sched == nil {
		g.sched = NewFrameQueue()
	}
	if g.sound == nil {
		g.sound = audio.NewMixer(nil, nil)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	pack := opts.Levels
	if pack == nil {
		pack = level.Default()
	}
	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	g.level = opts.Level
	if g.level < 1 || g.level > pack.Count() {
		g.level = 1
	}
	lvl := pack.Get(g.level)
	// Levels are shown by their position in the pack.
	lvl.ID = g.level

	w, h := opts.Surface.Size()
	g.sim = NewSimulation(lvl, cfg, opts.Difficulty, float64(w), float64(h), g.sound, Hooks{
		OnScore:         opts.OnScore,
		OnLives:         opts.OnLives,
		OnLevelComplete: opts.OnLevelComplete,
	})
	g.logger.Debug("level loaded", "level", g.level, "name", lvl.Name, "difficulty", opts.Difficulty, "lives", g.sim.Lives())
	return g, nil
}

// Sim returns the simulation being driven.
func (g *Game) Sim() *Simulation { return g.sim }

// Level returns the level number being played, after fallback.
func (g *Game) Level() int { return g.level }

// Running reports whether the frame loop is active.
func (g *Game) Running() bool { return g.running }

// Compact reports the layout hint the game was built with.
func (g *Game) Compact() bool { return g.opts.Compact }

// Start begins the frame loop at now, attaches input and starts the music.
// The first frame runs immediately with a zero delta.
func (g *Game) Start(now time.Time) {
	if g.running {
		return
	}
	g.running = true
	g.attached = true
	g.last = now
	g.sound.StartMusic()
	g.Frame(now)
}

// Stop cancels the pending frame, detaches input and stops the music.
// A frame already executing completes normally.
func (g *Game) Stop() {
	g.running = false
	g.sched.CancelFrame(g.frameID)
	g.frameID = 0
	g.attached = false
	g.input.Reset()
	g.sound.StopMusic()
}

// SetMuted mutes or unmutes every sound.
func (g *Game) SetMuted(muted bool) {
	g.sound.SetMuted(muted)
}

// SetTouchMove holds the on-screen direction control.
func (g *Game) SetTouchMove(d core.TouchDirection) {
	if g.attached {
		g.input.SetTouch(d)
	}
}

// ClearTouchMove releases the on-screen direction control.
func (g *Game) ClearTouchMove() {
	if g.attached {
		g.input.ClearTouch()
	}
}

// TriggerJump jumps immediately if the player is grounded.
func (g *Game) TriggerJump() {
	if g.attached {
		g.sim.TryJump()
	}
}

// KeyDown records a key press.
func (g *Game) KeyDown(k core.Key) {
	if g.attached {
		g.input.KeyDown(k)
	}
}

// KeyUp records a key release.
func (g *Game) KeyUp(k core.Key) {
	if g.attached {
		g.input.KeyUp(k)
	}
}

// Frame runs one update-animate-render cycle at timestamp ts and schedules
// the next one while the level is still being played. The delta is the
// wall-clock time since the previous frame and is not clamped.
func (g *Game) Frame(ts time.Time) {
	if !g.running {
		return
	}
	dt := ts.Sub(g.last).Seconds()
	g.last = ts

	g.sim.Update(dt, g.input.Frame())
	g.sim.Animate(dt)
	g.sim.Render(g.canvas)

	if g.running && g.sim.Phase() == PhaseRunning && g.sim.Lives() > 0 {
		g.frameID = g.sched.RequestFrame(g.Frame)
	}
}
