package math

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
// Width and height are never negative for rectangles built by RectFromPoints.
type Rect struct {
	X, Y, W, H float32
}

// RectFromPoints returns the rectangle spanned by two opposite corners,
// given in any order.
func RectFromPoints(p1, p2 Vec2) Rect {
	lo := p1.Min(p2)
	hi := p1.Max(p2)
	return Rect{X: lo.X, Y: lo.Y, W: hi.X - lo.X, H: hi.Y - lo.Y}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 {
	return Vec2{r.X, r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return Vec2{r.X + r.W, r.Y + r.H}
}

// Size returns the rectangle dimensions.
func (r Rect) Size() Vec2 {
	return Vec2{r.W, r.H}
}

// Center returns the center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Contains reports whether p lies inside r. Edges are inclusive on all
// four sides.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Overlaps reports whether r and other share any point.
func (r Rect) Overlaps(other Rect) bool {
	return r.X <= other.X+other.W && other.X <= r.X+r.W &&
		r.Y <= other.Y+other.H && other.Y <= r.Y+r.H
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Inset shrinks r by d on every side. Negative d grows it.
func (r Rect) Inset(d float32) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Bounds returns the envelope of points. An empty slice yields the zero Rect.
func Bounds(points []Vec2) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return RectFromPoints(lo, hi)
}
