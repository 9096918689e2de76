package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// SessionOptions configures a Session.
type SessionOptions struct {
	Surface    core.Surface
	Scheduler  Scheduler
	Levels     *level.Pack
	Config     *config.Config
	Sound      Sounds
	Logger     *log.Logger
	Difficulty config.Difficulty
	Level      int // starting level, 1-based
	Compact    bool

	// OnLevelChange is called after a level is loaded.
	OnLevelChange func(level int)
}

// Session plays levels in order. When a level is completed the next one is
// loaded on the following frame; completing the last level ends the session.
type Session struct {
	opts   SessionOptions
	sched  Scheduler
	levels *level.Pack
	logger *log.Logger

	game   *Game
	level  int
	phase  Phase // PhaseLoading or PhaseTerminal override the game's phase
	loadID FrameID

	score  int // current level
	banked int // completed levels
	lives  int
	muted  bool
}

// NewSession builds the game for the starting level without starting it.
func NewSession(opts SessionOptions) (*Session, error) {
	s := &Session{
		opts:   opts,
		sched:  opts.Scheduler,
		levels: opts.Levels,
		logger: opts.Logger,
	}
	if s.sched == nil {
		s.sched = NewFrameQueue()
	}
	if s.levels == nil {
		s.levels = level.Default()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	if err := s.build(opts.Level); err != nil {
		return nil, err
	}
	return s, nil
}

// build replaces the current game with a fresh one for level n.
func (s *Session) build(n int) error {
	g, err := New(Options{
		Surface:         s.opts.Surface,
		OnScore:         func(v int) { s.score = v },
		OnLives:         func(v int) { s.lives = v },
		OnLevelComplete: s.handleLevelComplete,
		Level:           n,
		Difficulty:      s.opts.Difficulty,
		Compact:         s.opts.Compact,
		Levels:          s.levels,
		Config:          s.opts.Config,
		Sound:           s.opts.Sound,
		Scheduler:       s.sched,
		Logger:          s.logger,
	})
	if err != nil {
		return err
	}
	s.game = g
	s.level = g.Level()
	s.score = 0
	s.phase = PhaseRunning
	if s.opts.OnLevelChange != nil {
		s.opts.OnLevelChange(s.level)
	}
	return nil
}

// Start starts the current level.
func (s *Session) Start(now time.Time) {
	s.game.SetMuted(s.muted)
	s.game.Start(now)
}

// Stop stops the current level and cancels any pending level load.
func (s *Session) Stop() {
	s.game.Stop()
	s.cancelLoad()
}

func (s *Session) cancelLoad() {
	if s.phase == PhaseLoading {
		s.sched.CancelFrame(s.loadID)
		s.loadID = 0
		s.phase = PhaseRunning
	}
}

// Restart reloads the current level with fresh lives and a zero score.
// Once every level is complete it starts over from the first one.
func (s *Session) Restart(now time.Time) error {
	n := s.level
	if s.phase == PhaseTerminal {
		n = 1
	}
	s.game.Stop()
	s.cancelLoad()
	s.banked = 0
	s.logger.Debug("restarting level", "level", n)
	if err := s.build(n); err != nil {
		return err
	}
	s.Start(now)
	return nil
}

// SetLevels swaps the level pack. The new pack takes effect at the next
// level load or restart.
func (s *Session) SetLevels(pack *level.Pack) {
	if pack != nil {
		s.levels = pack
	}
}

func (s *Session) handleLevelComplete() {
	s.banked += s.score
	s.score = 0
	s.game.Stop()

	if s.level >= s.levels.Count() {
		s.phase = PhaseTerminal
		s.logger.Info("all levels completed", "score", s.banked)
		return
	}

	next := s.level + 1
	s.phase = PhaseLoading
	s.logger.Debug("level completed", "level", s.level, "next", next)
	s.loadID = s.sched.RequestFrame(func(ts time.Time) {
		s.loadID = 0
		if err := s.build(next); err != nil {
			s.logger.Error("cannot load next level", "level", next, "err", err)
			s.phase = PhaseTerminal
			return
		}
		s.Start(ts)
	})
}

// Game returns the game of the current level.
func (s *Session) Game() *Game { return s.game }

// Level returns the current level number.
func (s *Session) Level() int { return s.level }

// LevelCount returns the number of levels in the pack.
func (s *Session) LevelCount() int { return s.levels.Count() }

// Score returns the score of the current level.
func (s *Session) Score() int { return s.score }

// TotalScore returns the score accumulated across the session.
func (s *Session) TotalScore() int { return s.banked + s.score }

// Lives returns the lives left in the current level.
func (s *Session) Lives() int { return s.lives }

// Difficulty returns the difficulty preset of the session.
func (s *Session) Difficulty() config.Difficulty { return s.opts.Difficulty }

// Phase returns the session phase.
func (s *Session) Phase() Phase {
	if s.phase == PhaseLoading || s.phase == PhaseTerminal {
		return s.phase
	}
	return s.game.Sim().Phase()
}

// SetMuted mutes or unmutes the session, including future levels.
func (s *Session) SetMuted(muted bool) {
	s.muted = muted
	s.game.SetMuted(muted)
}

// Muted reports the mute flag.
func (s *Session) Muted() bool { return s.muted }
