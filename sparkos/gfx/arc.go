package gfx

import "math"

// TrigMaxAngle is one full turn.
const TrigMaxAngle = 0x10000

// OvalScaleMode selects how an arc is fit into its rectangle.
type OvalScaleMode uint8

const (
	// OvalScaleModeFitCircle uses the largest circle inside the rectangle.
	OvalScaleModeFitCircle OvalScaleMode = iota
	// OvalScaleModeFillCircle uses the smallest circle covering the rectangle.
	OvalScaleModeFillCircle
)

// DrawArc strokes the part of a circle between angles start and end with the
// current stroke color and width. The stroke lies inside the circle edge.
// A span of TrigMaxAngle or more draws the whole ring; end <= start draws
// nothing.
func (c *Context) DrawArc(r Rect, mode OvalScaleMode, start, end int32) {
	if end <= start || r.Empty() || c.strokeWidth == 0 {
		return
	}

	d := min(r.W, r.H)
	if mode == OvalScaleModeFillCircle {
		d = max(r.W, r.H)
	}
	outer := float64(d) / 2
	inner := outer - float64(c.strokeWidth)
	if inner < 0 {
		inner = 0
	}
	cx := float64(r.X) + float64(r.W)/2
	cy := float64(r.Y) + float64(r.H)/2

	full := end-start >= TrigMaxAngle
	s := start % TrigMaxAngle
	if s < 0 {
		s += TrigMaxAngle
	}
	e := s + (end - start)

	x0 := int(math.Floor(cx - outer))
	x1 := int(math.Ceil(cx + outer))
	y0 := int(math.Floor(cy - outer))
	y1 := int(math.Ceil(cy + outer))
	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - cx
			dist := math.Hypot(dx, dy)
			if dist > outer || dist < inner {
				continue
			}
			if !full {
				a := angleOf(dx, dy)
				if !(a >= s && a < e) && !(a+TrigMaxAngle >= s && a+TrigMaxAngle < e) {
					continue
				}
			}
			c.setPixel(x, y, c.stroke)
		}
	}
}

// angleOf returns the clockwise angle from 12 o'clock of the vector (dx, dy)
// in screen coordinates, in [0, TrigMaxAngle).
func angleOf(dx, dy float64) int32 {
	a := math.Atan2(dx, -dy)
	if a < 0 {
		a += 2 * math.Pi
	}
	v := int32(a / (2 * math.Pi) * TrigMaxAngle)
	if v >= TrigMaxAngle {
		v = TrigMaxAngle - 1
	}
	return v
}
