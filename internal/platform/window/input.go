package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

// keyMap translates Ebitengine keys to the keys the game listens to.
var keyMap = map[ebiten.Key]core.Key{
	ebiten.KeyArrowLeft:  core.KeyArrowLeft,
	ebiten.KeyArrowRight: core.KeyArrowRight,
	ebiten.KeyArrowUp:    core.KeyArrowUp,
	ebiten.KeyW:          core.KeyW,
	ebiten.KeyA:          core.KeyA,
	ebiten.KeyS:          core.KeyS,
	ebiten.KeyD:          core.KeyD,
	ebiten.KeySpace:      core.KeySpace,
}

// touchButton is one on-screen control of the compact layout.
type touchButton struct {
	label string
	dir   core.TouchDirection // TouchNone jumps
	rect  core.Rect
}

// controlButtons lays out the control strip below a w x h canvas.
func controlButtons(w, h int) []touchButton {
	buttons := []touchButton{
		{label: "<", dir: core.TouchLeft},
		{label: "JUMP", dir: core.TouchNone},
		{label: ">", dir: core.TouchRight},
	}
	third := float64(w) / 3
	for i := range buttons {
		buttons[i].rect = core.NewRect(float64(i)*third+5, float64(h)+10, third-10, controlsHeight-20)
	}
	return buttons
}

func press(c game.Controls, d core.TouchDirection) {
	if d != core.TouchNone {
		c.SetTouchMove(d)
		return
	}
	c.TriggerJump()
}

// touchPress handles a pointer going down at (x, y) over a w x h canvas.
// The compact layout only reacts to its buttons; otherwise the thirds of
// the canvas are the controls.
func touchPress(c game.Controls, x, y, w, h int, compact bool) {
	if !compact {
		press(c, core.TouchZone(x, w))
		return
	}
	for _, b := range controlButtons(w, h) {
		if b.rect.Contains(float64(x), float64(y)) {
			press(c, b.dir)
			return
		}
	}
}

// pointerInput tracks touches and the mouse acting as a touch.
type pointerInput struct {
	compact bool
	touches []ebiten.TouchID
	pressed []ebiten.TouchID
}

// forwardKeys sends the key transitions of this tick to c.
func forwardKeys(c game.Controls, pressed, released []ebiten.Key) {
	for _, k := range pressed {
		if key, ok := keyMap[k]; ok {
			c.KeyDown(key)
		}
	}
	for _, k := range released {
		if key, ok := keyMap[k]; ok {
			c.KeyUp(key)
		}
	}
}

// poll reads keyboard, touch and mouse input of the current tick over a
// w x h canvas.
func (p *pointerInput) poll(c game.Controls, w, h int) {
	forwardKeys(c,
		inpututil.AppendJustPressedKeys(nil),
		inpututil.AppendJustReleasedKeys(nil),
	)

	p.pressed = inpututil.AppendJustPressedTouchIDs(p.pressed[:0])
	for _, id := range p.pressed {
		x, y := ebiten.TouchPosition(id)
		touchPress(c, x, y, w, h, p.compact)
		p.touches = append(p.touches, id)
	}
	kept := p.touches[:0]
	for _, id := range p.touches {
		if inpututil.IsTouchJustReleased(id) {
			c.ClearTouchMove()
			continue
		}
		kept = append(kept, id)
	}
	p.touches = kept

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		touchPress(c, x, y, w, h, p.compact)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		c.ClearTouchMove()
	}
}
