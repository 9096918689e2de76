package tui

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ScreenSurface is a core.Surface backed by a character screen. The pixel
// canvas is scaled onto the whole screen; resizing the terminal rescales
// the drawing without changing the canvas size seen by the game.
type ScreenSurface struct {
	screen *core.Screen
	canvas *core.ScreenCanvas
	pxW    int
	pxH    int
}

// NewScreenSurface creates a surface of pxW x pxH pixels drawn into a
// screen of cols x rows cells.
func NewScreenSurface(pxW, pxH, cols, rows int) *ScreenSurface {
	s := &ScreenSurface{
		screen: core.NewScreen(cols, rows),
		pxW:    pxW,
		pxH:    pxH,
	}
	s.rescale()
	return s
}

func (s *ScreenSurface) rescale() {
	s.canvas = core.NewScreenCanvas(s.screen, s.pxW, s.pxH, s.screen.Width(), s.screen.Height())
}

// Resize changes the cell area.
func (s *ScreenSurface) Resize(cols, rows int) {
	s.screen.Resize(core.Max(cols, 1), core.Max(rows, 1))
	s.rescale()
}

// SetPixelSize changes the canvas size used by games built afterwards.
func (s *ScreenSurface) SetPixelSize(pxW, pxH int) {
	s.pxW, s.pxH = pxW, pxH
	s.rescale()
}

// Screen returns the character buffer.
func (s *ScreenSurface) Screen() *core.Screen {
	return s.screen
}

// Size implements core.Surface.
func (s *ScreenSurface) Size() (int, int) {
	return s.pxW, s.pxH
}

// Context implements core.Surface. The surface is its own canvas so that
// resizes take effect on the next draw.
func (s *ScreenSurface) Context() (core.Canvas, error) {
	return s, nil
}

// FillRect implements core.Canvas.
func (s *ScreenSurface) FillRect(r core.Rect, c core.Color) {
	s.canvas.FillRect(r, c)
}

// FillEllipse implements core.Canvas.
func (s *ScreenSurface) FillEllipse(cx, cy, rx, ry float64, c core.Color) {
	s.canvas.FillEllipse(cx, cy, rx, ry, c)
}

// DrawText implements core.Canvas.
func (s *ScreenSurface) DrawText(x, y float64, text string, c core.Color) {
	s.canvas.DrawText(x, y, text, c)
}
