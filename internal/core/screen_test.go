package core

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", c.Rune, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorCoin)
	if c := s.GetCell(5, 5); c != (Cell{Rune: 'X', Color: ColorCoin}) {
		t.Errorf("GetCell(5, 5) = %+v, expected a coin-coloured X", c)
	}

	// Out of bounds should be silent
	s.SetColored(-1, 0, 'A', ColorCoin)
	s.SetColored(100, 0, 'A', ColorCoin)
	s.SetColored(0, -1, 'A', ColorCoin)
	s.SetColored(0, 100, 'A', ColorCoin)

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should be uncoloured")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColored(3, 4, 'X', ColorPlayer)
	s.Clear()

	if c := s.GetCell(3, 4); c != (Cell{Rune: ' '}) {
		t.Errorf("GetCell(3, 4) = %+v after Clear(), expected an uncoloured space", c)
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(2, 1, "Level 1", ColorHUDText)

	if c := s.GetCell(2, 1); c != (Cell{Rune: 'L', Color: ColorHUDText}) {
		t.Errorf("GetCell(2, 1) = %+v, expected a HUD-coloured L", c)
	}
	if c := s.GetCell(8, 1); c.Rune != '1' {
		t.Errorf("GetCell(8, 1) = %q, expected '1'", c.Rune)
	}

	// Clipped at the right edge
	s.DrawTextColored(8, 0, "abc", ColorHUDText)
	if got := string([]rune{s.GetCell(8, 0).Rune, s.GetCell(9, 0).Rune}); got != "ab" {
		t.Errorf("row 0 tail = %q, expected clipped text", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(1, 1, 'A', ColorPlayer)
	s.SetColored(4, 4, 'B', ColorPlayer)

	s.Resize(3, 3)

	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize() gave %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if s.GetCell(1, 1).Rune != 'A' {
		t.Error("Resize() should preserve content inside the new bounds")
	}
}

func TestScreenCanvasFillRect(t *testing.T) {
	s := NewScreen(80, 25)
	c := NewScreenCanvas(s, 800, 500, 80, 25)

	// The 300px wide ground platform maps to 30 columns.
	c.FillRect(NewRect(0, 450, 300, 50), ColorPlatform)

	for x := 0; x < 30; x++ {
		if got := s.GetCell(x, 23).Color; got != ColorPlatform {
			t.Fatalf("cell (%d, 23) color = %v, expected ColorPlatform", x, got)
		}
	}
	if got := s.GetCell(30, 23).Color; got != ColorDefault {
		t.Errorf("cell (30, 23) should be untouched, got %v", got)
	}
}

func TestScreenCanvasClipsToScreen(t *testing.T) {
	s := NewScreen(80, 25)
	c := NewScreenCanvas(s, 800, 500, 80, 25)

	// A far-off platform must not cost a loop over millions of cells.
	c.FillRect(NewRect(-1e9, 480, 2e9, 1e9), ColorPlatform)

	for x := 0; x < 80; x++ {
		if got := s.GetCell(x, 24).Color; got != ColorPlatform {
			t.Fatalf("cell (%d, 24) color = %v, expected ColorPlatform", x, got)
		}
	}
	if got := s.GetCell(0, 23).Color; got != ColorDefault {
		t.Errorf("cell (0, 23) should be untouched, got %v", got)
	}

	c.FillRect(NewRect(900, 600, 50, 50), ColorCoin)
	for y := 0; y < 25; y++ {
		if got := s.GetCell(79, y).Color; got == ColorCoin {
			t.Fatalf("off-screen rect leaked into cell (79, %d)", y)
		}
	}
}

func TestScreenCanvasTinyShapesStayVisible(t *testing.T) {
	s := NewScreen(80, 25)
	c := NewScreenCanvas(s, 800, 500, 80, 25)

	c.FillRect(NewRect(405, 105, 2, 2), ColorEnemyPupil)

	if got := s.GetCell(40, 5).Color; got != ColorEnemyPupil {
		t.Errorf("small rect should cover one cell, got %v", got)
	}
}

func TestScreenCanvasOffset(t *testing.T) {
	s := NewScreen(80, 26)
	c := NewScreenCanvas(s, 800, 500, 80, 25)
	c.OffsetY = 1

	c.FillRect(NewRect(0, 0, 10, 10), ColorPlayer)

	if s.GetCell(0, 0).Color != ColorDefault {
		t.Error("row 0 is reserved and should be untouched")
	}
	if s.GetCell(0, 1).Color != ColorPlayer {
		t.Error("first canvas row should be drawn at screen row 1")
	}
}

func TestEllipseSpans(t *testing.T) {
	spans := EllipseSpans(100, 100, 10, 10, 5)
	if len(spans) != 4 {
		t.Fatalf("EllipseSpans() returned %d spans, expected 4", len(spans))
	}
	for _, sp := range spans {
		if sp.X < 90 || sp.Right() > 110 {
			t.Errorf("span %v escapes the ellipse bounds", sp)
		}
	}

	if EllipseSpans(0, 0, 0, 10, 1) != nil {
		t.Error("zero radius should yield no spans")
	}
}
