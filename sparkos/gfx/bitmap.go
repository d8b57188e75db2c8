package gfx

import (
	"image"
	"image/color"
)

// Bitmap is a decoded image ready for drawing.
type Bitmap struct {
	w, h int16
	pix  []color.RGBA
}

// NewBitmap copies img into a Bitmap. Fully transparent pixels are skipped
// when drawing.
func NewBitmap(img image.Image) *Bitmap {
	b := img.Bounds()
	bm := &Bitmap{w: int16(b.Dx()), h: int16(b.Dy()), pix: make([]color.RGBA, b.Dx()*b.Dy())}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			bm.pix[i] = color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			i++
		}
	}
	return bm
}

func (b *Bitmap) Bounds() Rect { return Rect{W: b.w, H: b.h} }

func (b *Bitmap) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= int(b.w) || y >= int(b.h) {
		return color.RGBA{}
	}
	return b.pix[y*int(b.w)+x]
}

// DrawBitmap draws b centered in box and clipped to it.
func (c *Context) DrawBitmap(b *Bitmap, box Rect) {
	if b == nil || box.Empty() {
		return
	}
	ox := int(box.X) + (int(box.W)-int(b.w))/2
	oy := int(box.Y) + (int(box.H)-int(b.h))/2

	st := c.Enter(box)
	defer c.Leave(st)
	for y := 0; y < int(b.h); y++ {
		for x := 0; x < int(b.w); x++ {
			c.setPixel(ox+x-int(box.X), oy+y-int(box.Y), b.pix[y*int(b.w)+x])
		}
	}
}
