package core

// RuntimeConfig contains configuration passed from the shell at startup.
type RuntimeConfig struct {
	ScreenW  int  // Screen width in cells (terminal) or pixels (window)
	ScreenH  int  // Screen height in cells (terminal) or pixels (window)
	TickRate int  // Host frames per second (default 60)
	Compact  bool // Compact layout, affects canvas sizing only
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// CanvasSize returns the pixel size of the drawing surface for a world of
// worldW x worldH pixels. The full layout is the world size; the compact
// layout shrinks to fit the available area, leaving room for on-screen
// controls.
func CanvasSize(worldW, worldH int, compact bool, availW, availH int) (int, int) {
	if !compact {
		return Max(worldW, 1), Max(worldH, 1)
	}
	w := Min(availW-20, worldW)
	h := Min(availH-150, worldH)
	return Max(w, 1), Max(h, 1)
}
