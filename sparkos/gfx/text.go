package gfx

import "tinygo.org/x/tinyfont"

// Alignment is the horizontal placement of text in its box.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Font is a loaded typeface.
type Font = tinyfont.Fonter

// DrawText writes one line of s in box with the text color. The top of the
// tallest glyph sits on the top edge of box.
func (c *Context) DrawText(s string, font Font, box Rect, align Alignment) {
	if s == "" || font == nil || c.text.A == 0 {
		return
	}
	_, w := tinyfont.LineWidth(font, s)
	x := int(box.X)
	switch align {
	case AlignCenter:
		x += (int(box.W) - int(w)) / 2
	case AlignRight:
		x += int(box.W) - int(w)
	}
	y := int(box.Y) + Ascent(font)

	st := c.Enter(box)
	tinyfont.WriteLine(clipped{c}, font, int16(x-int(box.X)), int16(y-int(box.Y)), s, c.text)
	c.Leave(st)
}

// TextWidth returns the advance width of s.
func TextWidth(font Font, s string) int {
	if font == nil {
		return 0
	}
	_, w := tinyfont.LineWidth(font, s)
	return int(w)
}

// Ascent returns the distance from the top of a digit to the baseline.
func Ascent(font Font) int {
	if font == nil {
		return 0
	}
	g := font.GetGlyph('0')
	if g == nil {
		return int(font.GetYAdvance())
	}
	if off := int(g.Info().YOffset); off < 0 {
		return -off
	}
	return int(g.Info().Height)
}
