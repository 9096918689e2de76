package core

// Key is a physical key the platformer recognizes. Shells translate their
// own key events to these values.
type Key int

const (
	KeyNone Key = iota
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyArrowLeft:
		return "ArrowLeft"
	case KeyArrowRight:
		return "ArrowRight"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyW:
		return "w"
	case KeyA:
		return "a"
	case KeyS:
		return "s"
	case KeyD:
		return "d"
	case KeySpace:
		return "Space"
	default:
		return "None"
	}
}

// TouchDirection is the direction held on the on-screen touch controls.
type TouchDirection int

const (
	TouchNone TouchDirection = iota
	TouchLeft
	TouchRight
)

// String returns a human-readable name for the direction.
func (d TouchDirection) String() string {
	switch d {
	case TouchLeft:
		return "left"
	case TouchRight:
		return "right"
	default:
		return "none"
	}
}

// TouchZone maps a horizontal position to the on-screen control under it:
// the left and right thirds of the width move, the middle third jumps and
// reports TouchNone.
func TouchZone(x, width int) TouchDirection {
	if width <= 0 {
		return TouchNone
	}
	switch third := x * 3 / width; {
	case third <= 0:
		return TouchLeft
	case third >= 2:
		return TouchRight
	default:
		return TouchNone
	}
}

// InputFrame is the input snapshot consumed by one simulation update.
// Keyboard and touch sources are already merged.
type InputFrame struct {
	Left  bool
	Right bool
	Jump  bool
}

// InputState accumulates raw key and touch events between frames.
// Events overwrite each other; there is no queueing.
type InputState struct {
	keys  map[Key]bool
	touch TouchDirection
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{keys: make(map[Key]bool)}
}

// KeyDown marks a key as held.
func (s *InputState) KeyDown(k Key) {
	s.keys[k] = true
}

// KeyUp marks a key as released.
func (s *InputState) KeyUp(k Key) {
	s.keys[k] = false
}

// SetTouch records the held touch direction.
func (s *InputState) SetTouch(d TouchDirection) {
	s.touch = d
}

// ClearTouch releases the touch direction.
func (s *InputState) ClearTouch() {
	s.touch = TouchNone
}

// Frame snapshots the current state into an InputFrame.
// Either source moving left triggers Left, and so on.
func (s *InputState) Frame() InputFrame {
	return InputFrame{
		Left:  s.keys[KeyArrowLeft] || s.keys[KeyA] || s.touch == TouchLeft,
		Right: s.keys[KeyArrowRight] || s.keys[KeyD] || s.touch == TouchRight,
		Jump:  s.keys[KeyArrowUp] || s.keys[KeySpace] || s.keys[KeyW],
	}
}

// Reset releases every key and the touch direction.
func (s *InputState) Reset() {
	for k := range s.keys {
		delete(s.keys, k)
	}
	s.touch = TouchNone
}
