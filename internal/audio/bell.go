package audio

import (
	"fmt"
	"io"
)

// BellBackend rings the terminal bell. Terminals have a single tone, so
// only the events that end a level are audible; the rest would be noise.
type BellBackend struct {
	w io.Writer
}

// NewBellBackend creates a bell backend writing to w (usually os.Stdout).
func NewBellBackend(w io.Writer) *BellBackend {
	return &BellBackend{w: w}
}

// Play implements Backend.
func (b *BellBackend) Play(s Sound) error {
	switch s {
	case GameOver, LevelComplete:
		if _, err := io.WriteString(b.w, "\a"); err != nil {
			return fmt.Errorf("audio: cannot ring bell: %w", err)
		}
	}
	return nil
}

// StartMusic implements Backend. The terminal has no music.
func (b *BellBackend) StartMusic() error { return nil }

// StopMusic implements Backend.
func (b *BellBackend) StopMusic() error { return nil }
