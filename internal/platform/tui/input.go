package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

// HoldWindow is how long a key counts as held after its last press.
// Terminals report presses and auto-repeats but never releases.
const HoldWindow = 180 * time.Millisecond

// holdTracker synthesizes key releases for terminal key presses.
type holdTracker struct {
	window  time.Duration
	expires map[core.Key]time.Time
}

func newHoldTracker(window time.Duration) *holdTracker {
	return &holdTracker{window: window, expires: make(map[core.Key]time.Time)}
}

// press records a key press at now and forwards it.
func (h *holdTracker) press(c game.Controls, k core.Key, now time.Time) {
	h.expires[k] = now.Add(h.window)
	c.KeyDown(k)
}

// release sends key-ups for every key whose hold window has passed.
func (h *holdTracker) release(c game.Controls, now time.Time) {
	for k, until := range h.expires {
		if !now.Before(until) {
			delete(h.expires, k)
			c.KeyUp(k)
		}
	}
}

// reset forgets every held key without sending releases.
func (h *holdTracker) reset() {
	for k := range h.expires {
		delete(h.expires, k)
	}
}

// handleMouse forwards a mouse event as touch input: the outer thirds of
// the screen move, the middle third jumps. Returns true if the event was a
// touch control.
func handleMouse(c game.Controls, msg tea.MouseMsg, width int) bool {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return false
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if d := core.TouchZone(msg.X, width); d != core.TouchNone {
			c.SetTouchMove(d)
		} else {
			c.TriggerJump()
		}
		return true
	case tea.MouseActionRelease:
		c.ClearTouchMove()
		return true
	}
	return false
}
