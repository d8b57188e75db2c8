package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Context holds drawing state for one render pass.
type Context struct {
	d drivers.Displayer

	off  Point
	clip Rect

	stroke      color.RGBA
	strokeWidth uint8
	fill        color.RGBA
	text        color.RGBA
}

// State is a saved offset and clip, restored with Leave.
type State struct {
	off  Point
	clip Rect
}

func NewContext(d drivers.Displayer) *Context {
	w, h := d.Size()
	return &Context{
		d:           d,
		clip:        Rect{W: w, H: h},
		stroke:      ColorBlack,
		strokeWidth: 1,
		fill:        ColorBlack,
		text:        ColorWhite,
	}
}

func (c *Context) SetStrokeColor(col color.RGBA) { c.stroke = col }
func (c *Context) SetStrokeWidth(w uint8)        { c.strokeWidth = w }
func (c *Context) SetFillColor(col color.RGBA)   { c.fill = col }
func (c *Context) SetTextColor(col color.RGBA)   { c.text = col }

func (c *Context) StrokeColor() color.RGBA { return c.stroke }
func (c *Context) StrokeWidth() uint8      { return c.strokeWidth }

// Enter moves the origin to frame (in current coordinates) and narrows the
// clip to it.
func (c *Context) Enter(frame Rect) State {
	prev := State{off: c.off, clip: c.clip}
	abs := frame.Offset(c.off)
	c.off = Point{X: abs.X, Y: abs.Y}
	c.clip = c.clip.Intersect(abs)
	return prev
}

func (c *Context) Leave(s State) {
	c.off = s.off
	c.clip = s.clip
}

// Clip returns the current clip in screen coordinates.
func (c *Context) Clip() Rect { return c.clip }

func (c *Context) setPixel(x, y int, col color.RGBA) {
	if col.A == 0 {
		return
	}
	ax := x + int(c.off.X)
	ay := y + int(c.off.Y)
	if ax < int(c.clip.X) || ax >= c.clip.MaxX() || ay < int(c.clip.Y) || ay >= c.clip.MaxY() {
		return
	}
	c.d.SetPixel(int16(ax), int16(ay), col)
}

// FillRect fills r with the fill color.
func (c *Context) FillRect(r Rect) {
	if c.fill.A == 0 {
		return
	}
	area := r.Offset(c.off).Intersect(c.clip)
	if area.Empty() {
		return
	}
	if f, ok := c.d.(rectFiller); ok {
		_ = f.FillRectangle(area.X, area.Y, area.W, area.H, c.fill)
		return
	}
	for y := int(area.Y); y < area.MaxY(); y++ {
		for x := int(area.X); x < area.MaxX(); x++ {
			c.d.SetPixel(int16(x), int16(y), c.fill)
		}
	}
}

type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// clipped wraps the display so glyph drawing honours the offset and clip.
type clipped struct{ c *Context }

func (d clipped) Size() (x, y int16) { return d.c.d.Size() }

func (d clipped) SetPixel(x, y int16, col color.RGBA) {
	d.c.setPixel(int(x), int(y), col)
}

func (d clipped) Display() error { return nil }
