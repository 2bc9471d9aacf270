package sim

import "math"

// Vec2 is a 2D vector in window (pixel) coordinates. +y points down.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Abs() Vec2            { return Vec2{math.Abs(v.X), math.Abs(v.Y)} }
func (v Vec2) IsZero() bool         { return v.X == 0 && v.Y == 0 }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64  { return v.Sub(o).Len() }
func (v Vec2) Min(o Vec2) Vec2      { return Vec2{math.Min(v.X, o.X), math.Min(v.Y, o.Y)} }
func (v Vec2) Max(o Vec2) Vec2      { return Vec2{math.Max(v.X, o.X), math.Max(v.Y, o.Y)} }
func (v Vec2) LessEq(o Vec2) bool   { return v.X <= o.X && v.Y <= o.Y }

// Rect is an axis-aligned rectangle stored as center + half-extents.
// Half-extents are never negative.
type Rect struct {
	Center      Vec2
	HalfExtents Vec2
}

// NewRect builds a rect around center. Negative half-extents are folded to
// their magnitude, so half-extents are never negative.
func NewRect(center, halfExtents Vec2) Rect {
	return Rect{Center: center, HalfExtents: halfExtents.Abs()}
}

// RectFromPoints normalises two arbitrary corners into a rect. Argument
// order does not matter.
func RectFromPoints(p1, p2 Vec2) Rect {
	lo := p1.Min(p2)
	hi := p1.Max(p2)
	half := hi.Sub(lo).Scale(0.5)
	return Rect{Center: lo.Add(half), HalfExtents: half}
}

func (r Rect) MinPoint() Vec2 { return r.Center.Sub(r.HalfExtents) }
func (r Rect) MaxPoint() Vec2 { return r.Center.Add(r.HalfExtents) }
func (r Rect) Extents() Vec2  { return r.HalfExtents.Scale(2) }

// Overlaps reports whether r and o intersect. Touching edges count.
//
// Minkowski form: |ca - cb| <= ha + hb on both axes.
func (r Rect) Overlaps(o Rect) bool {
	return overlapAABB(r.Center, r.HalfExtents, o.Center, o.HalfExtents)
}

// Circle keeps its radius as a vector with equal components so it can share
// the rectangle overlap math.
type Circle struct {
	Center Vec2
	Radius Vec2
}

// NewCircle returns a circle of radius r (negative r is folded to |r|).
func NewCircle(center Vec2, r float64) Circle {
	r = math.Abs(r)
	return Circle{Center: center, Radius: Vec2{r, r}}
}

// R returns the scalar radius.
func (c Circle) R() float64 { return c.Radius.X }

// OverlapsRect treats the circle as its bounding square. This over-reports
// hits near the square's corners; callers rely on exactly this test.
func (c Circle) OverlapsRect(r Rect) bool {
	return overlapAABB(c.Center, c.Radius, r.Center, r.HalfExtents)
}

func overlapAABB(ca, ha, cb, hb Vec2) bool {
	return ca.Sub(cb).Abs().LessEq(ha.Add(hb))
}
