package core

import "testing"

func TestTouchZone(t *testing.T) {
	tests := []struct {
		x, width int
		want     TouchDirection
	}{
		{0, 90, TouchLeft},
		{29, 90, TouchLeft},
		{30, 90, TouchNone},
		{59, 90, TouchNone},
		{60, 90, TouchRight},
		{89, 90, TouchRight},
		{120, 90, TouchRight},
		{-5, 90, TouchLeft},
		{10, 0, TouchNone},
	}
	for _, tt := range tests {
		if got := TouchZone(tt.x, tt.width); got != tt.want {
			t.Errorf("TouchZone(%d, %d) = %v, want %v", tt.x, tt.width, got, tt.want)
		}
	}
}

func TestInputStateFrame(t *testing.T) {
	tests := []struct {
		name  string
		keys  []Key
		touch TouchDirection
		want  InputFrame
	}{
		{"idle", nil, TouchNone, InputFrame{}},
		{"arrow left", []Key{KeyArrowLeft}, TouchNone, InputFrame{Left: true}},
		{"a", []Key{KeyA}, TouchNone, InputFrame{Left: true}},
		{"d", []Key{KeyD}, TouchNone, InputFrame{Right: true}},
		{"touch right", nil, TouchRight, InputFrame{Right: true}},
		{"space", []Key{KeySpace}, TouchNone, InputFrame{Jump: true}},
		{"w", []Key{KeyW}, TouchNone, InputFrame{Jump: true}},
		{"arrow up", []Key{KeyArrowUp}, TouchNone, InputFrame{Jump: true}},
		{"s is ignored", []Key{KeyS}, TouchNone, InputFrame{}},
		{"both directions", []Key{KeyA}, TouchRight, InputFrame{Left: true, Right: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewInputState()
			for _, k := range tt.keys {
				s.KeyDown(k)
			}
			s.SetTouch(tt.touch)
			if got := s.Frame(); got != tt.want {
				t.Errorf("Frame() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInputStateRelease(t *testing.T) {
	s := NewInputState()
	s.KeyDown(KeyD)
	s.SetTouch(TouchLeft)

	s.KeyUp(KeyD)
	if got := s.Frame(); got != (InputFrame{Left: true}) {
		t.Errorf("Frame() after KeyUp = %+v, want only Left", got)
	}
	s.ClearTouch()
	if got := s.Frame(); got != (InputFrame{}) {
		t.Errorf("Frame() after ClearTouch = %+v", got)
	}

	s.KeyDown(KeySpace)
	s.SetTouch(TouchRight)
	s.Reset()
	if got := s.Frame(); got != (InputFrame{}) {
		t.Errorf("Frame() after Reset = %+v", got)
	}
}
