package gfx

// Point is a screen position.
type Point struct {
	X, Y int16
}

// Rect is an origin plus size. Negative origins are allowed; drawing is clipped.
type Rect struct {
	X, Y int16
	W, H int16
}

func R(x, y, w, h int16) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (r Rect) MaxX() int { return int(r.X) + int(r.W) }
func (r Rect) MaxY() int { return int(r.Y) + int(r.H) }

// Bounds returns r moved to the origin.
func (r Rect) Bounds() Rect { return Rect{W: r.W, H: r.H} }

func (r Rect) Offset(p Point) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, W: r.W, H: r.H}
}

func (r Rect) Contains(p Point) bool {
	return int(p.X) >= int(r.X) && int(p.X) < r.MaxX() &&
		int(p.Y) >= int(r.Y) && int(p.Y) < r.MaxY()
}

// Intersect returns the overlap of r and o, or the zero Rect.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(int(r.X), int(o.X))
	y0 := max(int(r.Y), int(o.Y))
	x1 := min(r.MaxX(), o.MaxX())
	y1 := min(r.MaxY(), o.MaxY())
	if x0 >= x1 || y0 >= y1 {
		return Rect{}
	}
	return Rect{X: int16(x0), Y: int16(y0), W: int16(x1 - x0), H: int16(y1 - y0)}
}
