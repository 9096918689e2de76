// Package audio turns game sound events into playback on a backend.
// Playback is fire-and-forget: backend failures are logged and dropped.
package audio

import (
	"github.com/charmbracelet/log"
)

// Sound is a sound event raised by the simulation.
type Sound int

const (
	Jump Sound = iota
	Coin
	Hurt
	GameOver
	LevelComplete
)

// Sounds lists every sound event.
var Sounds = []Sound{Jump, Coin, Hurt, GameOver, LevelComplete}

// String returns the event name.
func (s Sound) String() string {
	switch s {
	case Jump:
		return "jump"
	case Coin:
		return "coin"
	case Hurt:
		return "hurt"
	case GameOver:
		return "game_over"
	case LevelComplete:
		return "level_complete"
	default:
		return "unknown"
	}
}

// Backend plays sounds on a concrete output device.
type Backend interface {
	Play(s Sound) error
	StartMusic() error
	StopMusic() error
}

// Mixer routes sound events to a backend, honouring the mute flag.
// Background music is paused while muted and resumed on unmute.
type Mixer struct {
	backend     Backend
	logger      *log.Logger
	muted       bool
	wantMusic   bool // music requested by the game
	musicActive bool // music running on the backend
}

// NewMixer creates a mixer. A nil backend plays nothing; a nil logger
// discards failures.
func NewMixer(backend Backend, logger *log.Logger) *Mixer {
	if backend == nil {
		backend = Nop{}
	}
	return &Mixer{backend: backend, logger: logger}
}

// Play plays a sound unless muted.
func (m *Mixer) Play(s Sound) {
	if m.muted {
		return
	}
	if err := m.backend.Play(s); err != nil {
		m.debug("sound playback failed", "sound", s, "err", err)
	}
}

// StartMusic starts the background music. While muted it only records the
// request so that unmuting starts it.
func (m *Mixer) StartMusic() {
	m.wantMusic = true
	if !m.muted {
		m.startMusic()
	}
}

// StopMusic stops the background music.
func (m *Mixer) StopMusic() {
	m.wantMusic = false
	m.stopMusic()
}

// SetMuted toggles muting. Muting pauses the music; unmuting resumes it if
// the game still wants it.
func (m *Mixer) SetMuted(muted bool) {
	if m.muted == muted {
		return
	}
	m.muted = muted
	if muted {
		m.stopMusic()
	} else if m.wantMusic {
		m.startMusic()
	}
}

// Muted reports the mute flag.
func (m *Mixer) Muted() bool {
	return m.muted
}

// MusicPlaying reports whether the backend is currently playing music.
func (m *Mixer) MusicPlaying() bool {
	return m.musicActive
}

func (m *Mixer) startMusic() {
	if m.musicActive {
		return
	}
	if err := m.backend.StartMusic(); err != nil {
		m.debug("background music failed", "err", err)
		return
	}
	m.musicActive = true
}

func (m *Mixer) stopMusic() {
	if !m.musicActive {
		return
	}
	m.musicActive = false
	if err := m.backend.StopMusic(); err != nil {
		m.debug("stopping background music failed", "err", err)
	}
}

func (m *Mixer) debug(msg string, keyvals ...interface{}) {
	if m.logger != nil {
		m.logger.Debug(msg, keyvals...)
	}
}

// Nop is a backend that plays nothing.
type Nop struct{}

func (Nop) Play(Sound) error  { return nil }
func (Nop) StartMusic() error { return nil }
func (Nop) StopMusic() error  { return nil }
