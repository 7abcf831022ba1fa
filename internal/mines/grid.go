package mines

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	GlyphUnexplored = '.'
	GlyphMarked     = '*'
	GlyphMine       = 'X'
	GlyphFree       = '/'
)

// Glyph returns the character drawn for the cell at column x and row y.
func (f *Minefield) Glyph(x, y int) rune {
	c := f.cell(x, y)
	switch {
	case c.Marked:
		return GlyphMarked
	case c.Mine && f.Exploded:
		return GlyphMine
	case c.Revealed && c.Adjacent > 0:
		return rune('0' + c.Adjacent)
	case c.Revealed:
		return GlyphFree
	default:
		return GlyphUnexplored
	}
}

// Render draws the field with its legend:
//
//	 |012|
//	-|---|
//	0|///|
//	1|/11|
//	2|/1*|
//	-|---|
//
// Column labels show the last digit of the column index.
func (f *Minefield) Render() string {
	return f.RenderWith(nil)
}

// RenderWith is [Minefield.Render] with every cell glyph passed through
// style. A nil style draws glyphs as they are.
func (f *Minefield) RenderWith(style func(glyph rune) string) string {
	var (
		b     strings.Builder
		width = len(strconv.Itoa(f.Size - 1))
		band  = strings.Repeat("-", width) + "|" + strings.Repeat("-", f.Size) + "|\n"
	)

	b.WriteString(strings.Repeat(" ", width) + "|")
	for x := range f.Size {
		b.WriteByte(byte('0' + x%10))
	}
	b.WriteString("|\n")
	b.WriteString(band)

	for y := range f.Size {
		fmt.Fprintf(&b, "%*d|", width, y)
		for x := range f.Size {
			g := f.Glyph(x, y)
			if style != nil {
				b.WriteString(style(g))
			} else {
				b.WriteRune(g)
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(band)

	return b.String()
}
