// Package window provides the desktop shell of the platformer on
// Ebitengine. The game loop runs from Update; drawing is recorded while the
// game renders and replayed onto the screen in Draw.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// Height of the on-screen control strip shown below a compact canvas.
const controlsHeight = 120

// Options configures the window shell.
type Options struct {
	Runtime    core.RuntimeConfig // ScreenW/ScreenH are the window size in pixels
	Config     *config.Config
	Levels     *level.Pack
	Level      int
	Difficulty config.Difficulty
	Muted      bool
	Sound      game.Sounds
	Logger     *log.Logger
}

// Shell implements ebiten.Game around a level session.
type Shell struct {
	opts    Options
	session *game.Session
	queue   *game.FrameQueue
	rec     *Recorder
	pointer pointerInput
	logger  *log.Logger

	frame   []drawOp // last completed frame
	started bool
	quit    bool
	now     func() time.Time
}

// NewShell builds the session for the requested level without starting it.
func NewShell(opts Options) (*Shell, error) {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if opts.Config == nil {
		def := config.Default()
		opts.Config = &def
	}

	worldW, worldH := opts.Config.World.Size()
	w, h := core.CanvasSize(worldW, worldH, opts.Runtime.Compact, opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	rec := NewRecorder(w, h)
	queue := game.NewFrameQueue()

	session, err := game.NewSession(game.SessionOptions{
		Surface:    rec,
		Scheduler:  queue,
		Levels:     opts.Levels,
		Config:     opts.Config,
		Sound:      opts.Sound,
		Logger:     logger,
		Difficulty: opts.Difficulty,
		Level:      opts.Level,
		Compact:    opts.Runtime.Compact,
	})
	if err != nil {
		return nil, err
	}
	session.SetMuted(opts.Muted)

	return &Shell{
		opts:    opts,
		session: session,
		queue:   queue,
		rec:     rec,
		pointer: pointerInput{compact: opts.Runtime.Compact},
		logger:  logger,
		now:     time.Now,
	}, nil
}

// Session returns the session being played.
func (s *Shell) Session() *game.Session {
	return s.session
}

// Update implements ebiten.Game.
func (s *Shell) Update() error {
	now := s.now()
	if !s.started {
		s.started = true
		s.session.Start(now)
		s.capture()
	}

	s.handleCommands(now)
	if s.quit {
		return ebiten.Termination
	}
	w, h := s.rec.Size()
	s.pointer.poll(s.session.Game(), w, h)

	s.step(now)
	return nil
}

// handleCommands processes the shell keys: mute, restart and quit.
func (s *Shell) handleCommands(now time.Time) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		s.quit = true
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.session.SetMuted(!s.session.Muted())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.restart(now)
	}
}

// restart replays the current level once play has stopped, or the first
// level once all of them are complete.
func (s *Shell) restart(now time.Time) {
	switch s.session.Phase() {
	case game.PhaseDepleted, game.PhaseTerminal:
	default:
		return
	}
	if err := s.session.Restart(now); err != nil {
		s.logger.Error("cannot restart level", "err", err)
		s.quit = true
		return
	}
	s.capture()
}

// step runs the frames requested since the previous tick and keeps the
// drawing of the last one.
func (s *Shell) step(now time.Time) {
	s.rec.Reset()
	s.queue.RunPending(now)
	s.capture()
}

// capture keeps the recorded drawing if anything was drawn.
func (s *Shell) capture() {
	if s.rec.Len() > 0 {
		s.frame = s.rec.take(s.frame)
	}
}

// Draw implements ebiten.Game.
func (s *Shell) Draw(screen *ebiten.Image) {
	replay(screen, s.frame)

	ebitenutil.DebugPrintAt(screen, s.status(), 10, 10)
	if msg := s.overlay(); msg != "" {
		w, h := s.rec.Size()
		ebitenutil.DebugPrintAt(screen, msg, w/2-len(msg)*3, h/2)
	}
	if s.opts.Runtime.Compact {
		s.drawControls(screen)
	}
}

func (s *Shell) status() string {
	line := fmt.Sprintf("Score: %d  Total: %d  Lives: %d  %s",
		s.session.Score(), s.session.TotalScore(), s.session.Lives(), s.session.Difficulty())
	if s.session.Muted() {
		line += "  [muted]"
	}
	return line
}

func (s *Shell) overlay() string {
	switch s.session.Phase() {
	case game.PhaseDepleted:
		return "GAME OVER - press R to restart"
	case game.PhaseTerminal:
		return fmt.Sprintf("ALL LEVELS COMPLETE - total %d - press R to play again", s.session.TotalScore())
	}
	return ""
}

// drawControls draws the touch buttons below a compact canvas.
func (s *Shell) drawControls(screen *ebiten.Image) {
	for _, b := range controlButtons(s.rec.Size()) {
		fillRect(screen, b.rect, core.ColorHUDBox)
		c := b.rect.Center()
		ebitenutil.DebugPrintAt(screen, b.label, int(c.X)-len(b.label)*3, int(c.Y)-8)
	}
}

// Layout implements ebiten.Game. The logical screen is the canvas plus the
// control strip in compact mode.
func (s *Shell) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := s.rec.Size()
	if s.opts.Runtime.Compact {
		h += controlsHeight
	}
	return w, h
}

// Run opens the window and plays until it is closed.
func Run(opts Options) error {
	shell, err := NewShell(opts)
	if err != nil {
		return err
	}
	defer shell.session.Stop()

	w, h := shell.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Platformer")
	ebiten.SetTPS(shell.opts.Runtime.TickRate)

	shell.logger.Info("window opened", "width", w, "height", h, "level", shell.session.Level())
	if err := ebiten.RunGame(shell); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
