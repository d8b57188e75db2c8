package hal

// MemFramebuffer is an RGB565 framebuffer backed by a plain byte slice.
//
// Present only counts frames; it suits targets without a panel and tests.
type MemFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	Presents int
}

// NewMemFramebuffer allocates a w*h RGB565 framebuffer.
func NewMemFramebuffer(w, h int) *MemFramebuffer {
	stride := w * 2
	return &MemFramebuffer{
		w:      w,
		h:      h,
		stride: stride,
		buf:    make([]byte, stride*h),
	}
}

func (f *MemFramebuffer) Width() int          { return f.w }
func (f *MemFramebuffer) Height() int         { return f.h }
func (f *MemFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *MemFramebuffer) StrideBytes() int    { return f.stride }
func (f *MemFramebuffer) Buffer() []byte      { return f.buf }

func (f *MemFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *MemFramebuffer) Present() error {
	f.Presents++
	return nil
}

// PixelRGB565 returns the raw pixel at (x, y), or 0 outside the buffer.
func (f *MemFramebuffer) PixelRGB565(x, y int) uint16 {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return 0
	}
	off := y*f.stride + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

// RGB565 packs an 8-bit-per-channel color the way framebuffers store it.
func RGB565(r, g, b uint8) uint16 { return rgb565(r, g, b) }
