package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type opKind int

const (
	opRect opKind = iota
	opEllipse
	opText
)

// drawOp is one recorded canvas call.
type drawOp struct {
	kind   opKind
	rect   core.Rect // opRect
	cx, cy float64   // opEllipse center, opText origin
	rx, ry float64
	text   string
	color  core.Color
}

// debugGlyphAscent lifts text drawn by ebitenutil, which anchors at the
// top-left, so that y is the baseline as on the game canvas.
const debugGlyphAscent = 12

// Recorder is a core.Surface whose canvas records draw calls. The game
// draws during Update; the recorded frame is replayed in Draw.
type Recorder struct {
	w, h int
	ops  []drawOp
}

// NewRecorder creates a recorder for a w x h pixel canvas.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{w: w, h: h}
}

// Size implements core.Surface.
func (r *Recorder) Size() (int, int) { return r.w, r.h }

// Context implements core.Surface.
func (r *Recorder) Context() (core.Canvas, error) { return r, nil }

// FillRect implements core.Canvas.
func (r *Recorder) FillRect(rect core.Rect, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: opRect, rect: rect, color: c})
}

// FillEllipse implements core.Canvas.
func (r *Recorder) FillEllipse(cx, cy, rx, ry float64, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: opEllipse, cx: cx, cy: cy, rx: rx, ry: ry, color: c})
}

// DrawText implements core.Canvas.
func (r *Recorder) DrawText(x, y float64, text string, c core.Color) {
	r.ops = append(r.ops, drawOp{kind: opText, cx: x, cy: y, text: text, color: c})
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int { return len(r.ops) }

// Reset drops the recorded calls.
func (r *Recorder) Reset() { r.ops = r.ops[:0] }

// take returns a copy of the recorded calls and resets the recorder.
func (r *Recorder) take(dst []drawOp) []drawOp {
	dst = append(dst[:0], r.ops...)
	r.Reset()
	return dst
}

// toColor converts a palette entry to an image colour.
func toColor(c core.Color) color.RGBA {
	v := c.RGBA()
	return color.RGBA{R: v.R, G: v.G, B: v.B, A: v.A}
}

// replay draws recorded calls onto dst.
func replay(dst *ebiten.Image, ops []drawOp) {
	for _, op := range ops {
		switch op.kind {
		case opRect:
			fillRect(dst, op.rect, op.color)
		case opEllipse:
			for _, span := range core.EllipseSpans(op.cx, op.cy, op.rx, op.ry, 1) {
				fillRect(dst, span, op.color)
			}
		case opText:
			// The debug font is monochrome white.
			ebitenutil.DebugPrintAt(dst, op.text, int(op.cx), int(op.cy)-debugGlyphAscent)
		}
	}
}

func fillRect(dst *ebiten.Image, r core.Rect, c core.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), toColor(c), false)
}
