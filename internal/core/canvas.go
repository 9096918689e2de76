package core

import "math"

// Canvas is a renderable context in pixel space. Implementations decide how
// pixels map onto their backend.
type Canvas interface {
	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c Color)

	// FillEllipse fills an axis-aligned ellipse centred on (cx, cy).
	FillEllipse(cx, cy, rx, ry float64, c Color)

	// DrawText writes a single line of text with its top-left corner at (x, y).
	DrawText(x, y float64, text string, c Color)
}

// Surface is a drawable area of known pixel size.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Context returns the canvas to draw on, or an error if the surface
	// cannot produce one.
	Context() (Canvas, error)
}

// EllipseSpans splits an ellipse into horizontal rectangles of the given
// row height. Backends without a native ellipse primitive fill these.
func EllipseSpans(cx, cy, rx, ry, step float64) []Rect {
	if rx <= 0 || ry <= 0 || step <= 0 {
		return nil
	}
	spans := make([]Rect, 0, int(2*ry/step)+1)
	for y := cy - ry; y < cy+ry; y += step {
		mid := y + step/2
		dy := (mid - cy) / ry
		if dy*dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		spans = append(spans, NewRect(cx-half, y, 2*half, step))
	}
	return spans
}

// ScreenCanvas draws pixel-space shapes onto a character Screen, scaling
// pixels down to cells. Rows reserved at the top of the screen (for a HUD)
// are skipped via OffsetY.
type ScreenCanvas struct {
	screen  *Screen
	scaleX  float64 // cells per pixel, horizontally
	scaleY  float64 // cells per pixel, vertically
	OffsetY int
}

// NewScreenCanvas maps a pixel area of pxW x pxH onto the given cell area.
func NewScreenCanvas(s *Screen, pxW, pxH, cols, rows int) *ScreenCanvas {
	c := &ScreenCanvas{screen: s}
	if pxW > 0 {
		c.scaleX = float64(cols) / float64(pxW)
	}
	if pxH > 0 {
		c.scaleY = float64(rows) / float64(pxH)
	}
	return c
}

// glyphFor picks the cell glyph used for a palette colour.
func glyphFor(c Color) rune {
	switch c {
	case ColorBackground, ColorHUDBox:
		return ' '
	case ColorPlatformTop:
		return '▀'
	case ColorCoin:
		return '●'
	case ColorPortal, ColorPortalGlow:
		return '░'
	case ColorEnemyEye, ColorPlayerFace, ColorEnemyPupil, ColorPortalSwirl:
		return '▪'
	default:
		return '█'
	}
}

// cellRect converts a pixel rectangle to the cells it covers.
// Any non-empty rectangle covers at least one cell.
func (c *ScreenCanvas) cellRect(r Rect) (x0, y0, x1, y1 int) {
	s := r.Scale(c.scaleX, c.scaleY)
	x0 = int(math.Floor(s.X))
	y0 = int(math.Floor(s.Y)) + c.OffsetY
	x1 = int(math.Ceil(s.Right()))
	y1 = int(math.Ceil(s.Bottom())) + c.OffsetY
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// FillRect implements Canvas. Cells outside the screen are skipped.
func (c *ScreenCanvas) FillRect(r Rect, col Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0, y0, x1, y1 := c.cellRect(r)
	w, h := c.screen.Width(), c.screen.Height()
	x0, x1 = Clamp(x0, 0, w), Clamp(x1, 0, w)
	y0, y1 = Clamp(y0, 0, h), Clamp(y1, 0, h)
	glyph := glyphFor(col)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.screen.SetColored(x, y, glyph, col)
		}
	}
}

// FillEllipse implements Canvas.
func (c *ScreenCanvas) FillEllipse(cx, cy, rx, ry float64, col Color) {
	if c.scaleY <= 0 {
		return
	}
	// One span per cell row keeps the shape readable at terminal resolution.
	for _, span := range EllipseSpans(cx, cy, rx, ry, 1/c.scaleY) {
		c.FillRect(span, col)
	}
}

// DrawText implements Canvas.
func (c *ScreenCanvas) DrawText(x, y float64, text string, col Color) {
	cx := int(math.Floor(x * c.scaleX))
	cy := int(math.Floor(y*c.scaleY)) + c.OffsetY
	c.screen.DrawTextColored(cx, cy, text, col)
}
