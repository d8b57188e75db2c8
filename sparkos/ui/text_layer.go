package ui

import (
	"image/color"

	"elitewatch/sparkos/gfx"
)

// TextLayer draws one line of text.
type TextLayer struct {
	layer *Layer

	text  string
	font  gfx.Font
	color color.RGBA
	bg    color.RGBA
	align gfx.Alignment
}

// NewTextLayer returns a layer with black text on a white background, left
// aligned.
func NewTextLayer(frame gfx.Rect) *TextLayer {
	t := &TextLayer{
		layer: NewLayer(frame),
		color: gfx.ColorBlack,
		bg:    gfx.ColorWhite,
	}
	t.layer.SetUpdateProc(t.draw)
	return t
}

func (t *TextLayer) Layer() *Layer { return t.layer }

func (t *TextLayer) Text() string { return t.text }

func (t *TextLayer) SetText(s string) {
	if s == t.text {
		return
	}
	t.text = s
	t.layer.MarkDirty()
}

func (t *TextLayer) SetFont(f gfx.Font) {
	t.font = f
	t.layer.MarkDirty()
}

func (t *TextLayer) SetTextColor(c color.RGBA) {
	t.color = c
	t.layer.MarkDirty()
}

func (t *TextLayer) TextColor() color.RGBA { return t.color }

func (t *TextLayer) SetBackgroundColor(c color.RGBA) {
	t.bg = c
	t.layer.MarkDirty()
}

func (t *TextLayer) SetAlignment(a gfx.Alignment) {
	t.align = a
	t.layer.MarkDirty()
}

func (t *TextLayer) draw(l *Layer, ctx *gfx.Context) {
	b := l.Bounds()
	if t.bg.A != 0 {
		ctx.SetFillColor(t.bg)
		ctx.FillRect(b)
	}
	ctx.SetTextColor(t.color)
	ctx.DrawText(t.text, t.font, b, t.align)
}
