package ui

import (
	"image/color"

	"elitewatch/sparkos/gfx"
)

// BitmapLayer draws a bitmap centered over a background fill.
type BitmapLayer struct {
	layer  *Layer
	bitmap *gfx.Bitmap
	bg     color.RGBA
}

func NewBitmapLayer(frame gfx.Rect) *BitmapLayer {
	b := &BitmapLayer{layer: NewLayer(frame)}
	b.layer.SetUpdateProc(b.draw)
	return b
}

func (b *BitmapLayer) Layer() *Layer { return b.layer }

func (b *BitmapLayer) SetBitmap(bm *gfx.Bitmap) {
	b.bitmap = bm
	b.layer.MarkDirty()
}

func (b *BitmapLayer) SetBackgroundColor(c color.RGBA) {
	b.bg = c
	b.layer.MarkDirty()
}

func (b *BitmapLayer) draw(l *Layer, ctx *gfx.Context) {
	r := l.Bounds()
	if b.bg.A != 0 {
		ctx.SetFillColor(b.bg)
		ctx.FillRect(r)
	}
	ctx.DrawBitmap(b.bitmap, r)
}
