package hal

import "image"

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// maskRound blacks out the corners a round panel cannot show.
func maskRound(img *image.RGBA) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	d := w
	if h < d {
		d = h
	}
	// Work in doubled coordinates so odd sizes keep a pixel-centred circle.
	cx, cy := w, h
	r2 := d * d
	for y := 0; y < h; y++ {
		dy := 2*y + 1 - cy
		for x := 0; x < w; x++ {
			dx := 2*x + 1 - cx
			if dx*dx+dy*dy <= r2 {
				continue
			}
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			img.Pix[i+0] = 0x10
			img.Pix[i+1] = 0x10
			img.Pix[i+2] = 0x10
			img.Pix[i+3] = 0xFF
		}
	}
}
