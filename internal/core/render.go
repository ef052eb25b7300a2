package core

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Font is a loaded text face. Terminals have a single glyph size, so a face
// is expressed as attributes and spacing rather than outlines.
type Font struct {
	Name          string
	Attr          Attr
	Uppercase     bool
	LetterSpacing int     // Blank cells inserted between glyphs
	BoldFrom      float64 // Sizes at or above this render bold; 0 disables
}

// TextStyle groups the parameters of a text draw call.
type TextStyle struct {
	Font  *Font
	Size  float64
	Color Color
}

// Renderer is what a game draws into each frame. The game issues calls but
// owns no rendering state.
type Renderer interface {
	// Clear blanks the drawing surface.
	Clear()
	// DrawRect fills a world-space rectangle with a solid color.
	DrawRect(r Rect, c Color)
	// DrawText draws text whose baseline starts at (x, y) in world space.
	DrawText(text string, x, y float64, st TextStyle)
	// MeasureText returns the world-space extent of text.
	MeasureText(text string, font *Font, size float64) Vec2
}

// BlockRune is the glyph used to fill rectangles.
const BlockRune = '█'

// Canvas implements Renderer on top of a Screen, mapping world units to
// character cells with a fixed cell size.
type Canvas struct {
	screen *Screen
	cellW  float64
	cellH  float64
}

// NewCanvas wraps screen. cellW and cellH are the world size of one cell.
func NewCanvas(screen *Screen, cellW, cellH float64) *Canvas {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Canvas{screen: screen, cellW: cellW, cellH: cellH}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// WorldSize returns the drawable area in world units.
func (c *Canvas) WorldSize() Vec2 {
	return Vec2{
		X: float64(c.screen.Width()) * c.cellW,
		Y: float64(c.screen.Height()) * c.cellH,
	}
}

// Clear blanks the screen.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// DrawRect fills every cell the rectangle covers. Rectangles narrower than a
// cell still occupy one cell so small bodies stay visible.
func (c *Canvas) DrawRect(r Rect, color Color) {
	x0 := int(math.Round(r.X / c.cellW))
	x1 := int(math.Round(r.Right() / c.cellW))
	y0 := int(math.Round(r.Y / c.cellH))
	y1 := int(math.Round(r.Bottom() / c.cellH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	c.screen.Fill(x0, y0, x1, y1, Cell{Rune: BlockRune, Color: color})
}

// DrawText writes text on the row containing the baseline y.
func (c *Canvas) DrawText(text string, x, y float64, st TextStyle) {
	glyphs := shape(text, st.Font)
	col := int(math.Round(x / c.cellW))
	row := int(math.Ceil(y/c.cellH)) - 1
	c.screen.DrawText(col, row, glyphs, st.Color, textAttr(st.Font, st.Size))
}

// MeasureText returns the width and height the text occupies once drawn.
func (c *Canvas) MeasureText(text string, font *Font, _ float64) Vec2 {
	n := utf8.RuneCountInString(shape(text, font))
	return Vec2{X: float64(n) * c.cellW, Y: c.cellH}
}

// shape applies the font's case and spacing to text.
func shape(text string, font *Font) string {
	if font == nil {
		return text
	}
	if font.Uppercase {
		text = strings.ToUpper(text)
	}
	if font.LetterSpacing <= 0 {
		return text
	}
	gap := strings.Repeat(" ", font.LetterSpacing)
	var sb strings.Builder
	i := 0
	for _, r := range text {
		if i > 0 {
			sb.WriteString(gap)
		}
		sb.WriteRune(r)
		i++
	}
	return sb.String()
}

func textAttr(font *Font, size float64) Attr {
	if font == nil {
		return 0
	}
	attr := font.Attr
	if font.BoldFrom > 0 && size >= font.BoldFrom {
		attr |= AttrBold
	}
	return attr
}
