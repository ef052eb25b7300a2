package core

import (
	"strings"
	"testing"
)

func TestCanvasWorldSize(t *testing.T) {
	c := NewCanvas(NewScreen(80, 23), 10, 17.5)

	got := c.WorldSize()
	if got.X != 800 || got.Y != 402.5 {
		t.Errorf("WorldSize() = %+v, expected (800, 402.5)", got)
	}
}

func TestCanvasDrawRect(t *testing.T) {
	c := NewCanvas(NewScreen(20, 10), 10, 20)

	// 150x40 at (20, 40) covers columns 2..16 and rows 2..3
	c.DrawRect(NewRect(20, 40, 150, 40), ColorGreen)
	s := c.Screen()

	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			inside := x >= 2 && x < 17 && y >= 2 && y < 4
			cell := s.GetCell(x, y)
			if inside && (cell.Rune != BlockRune || cell.Color != ColorGreen) {
				t.Errorf("expected green block at (%d, %d), got %+v", x, y, cell)
			}
			if !inside && cell.Rune != ' ' {
				t.Errorf("expected blank at (%d, %d), got %q", x, y, cell.Rune)
			}
		}
	}
}

func TestCanvasDrawRectMinimumCell(t *testing.T) {
	c := NewCanvas(NewScreen(10, 10), 10, 20)
	c.DrawRect(NewRect(31, 41, 2, 2), ColorRed)

	if c.Screen().Get(3, 2) != BlockRune {
		t.Error("sub-cell rectangle should still occupy one cell")
	}
}

func TestCanvasDrawTextBaseline(t *testing.T) {
	c := NewCanvas(NewScreen(40, 10), 10, 17.5)
	font := &Font{Name: "hud", Attr: AttrItalic, BoldFrom: 20}

	c.DrawText("lives: 3", 30, 40, TextStyle{Font: font, Size: 30, Color: ColorWhite})

	// Baseline 40 falls in row 2 (35 <= 40 < 52.5)
	row := c.Screen().Row(2)
	if !strings.HasPrefix(row, "   lives: 3") {
		t.Errorf("Row(2) = %q, expected text at column 3", row)
	}
	cell := c.Screen().GetCell(3, 2)
	if !cell.Attr.Has(AttrItalic | AttrBold) {
		t.Errorf("expected italic bold text, got attr %b", cell.Attr)
	}
}

func TestCanvasMeasureText(t *testing.T) {
	c := NewCanvas(NewScreen(40, 10), 10, 17.5)

	plain := c.MeasureText("score: 0", nil, 30)
	if plain.X != 80 || plain.Y != 17.5 {
		t.Errorf("MeasureText() = %+v, expected (80, 17.5)", plain)
	}

	spaced := c.MeasureText("abc", &Font{LetterSpacing: 1}, 30)
	if spaced.X != 50 {
		t.Errorf("MeasureText() with spacing = %v, expected 50", spaced.X)
	}
}

func TestShapeUppercase(t *testing.T) {
	got := shape("score: 10", &Font{Uppercase: true, LetterSpacing: 1})
	if got != "S C O R E :   1 0" {
		t.Errorf("shape() = %q", got)
	}
}
