package entity

import "math"

// Vec is a 2D vector in pixels (or pixels per tick)
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v * k
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// IsZero returns true if both components are zero
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rect is an axis-aligned box in screen coordinates (y grows downward).
// X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectFromCenter creates a rect of the given size centred on c
func RectFromCenter(c Vec, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the centre point
func (r Rect) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

// SetLeft moves the rect so its left edge is at x
func (r *Rect) SetLeft(x float64) { r.X = x }

// SetRight moves the rect so its right edge is at x
func (r *Rect) SetRight(x float64) { r.X = x - r.W }

// SetTop moves the rect so its top edge is at y
func (r *Rect) SetTop(y float64) { r.Y = y }

// SetBottom moves the rect so its bottom edge is at y
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

// SetCenter moves the rect so it is centred on c
func (r *Rect) SetCenter(c Vec) {
	r.X = c.X - r.W/2
	r.Y = c.Y - r.H/2
}

// Translate returns the rect shifted by d
func (r Rect) Translate(d Vec) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Inflate returns the rect grown by dw, dh around the same centre
func (r Rect) Inflate(dw, dh float64) Rect {
	return RectFromCenter(r.Center(), r.W+dw, r.H+dh)
}

// Overlaps reports whether the two rects share any area.
// Rects that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// ContainsPoint reports whether p lies inside the rect (right/bottom exclusive)
func (r Rect) ContainsPoint(p Vec) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Side is a bit set of rectangle sides
type Side uint8

const (
	SideTop Side = 1 << iota
	SideBottom
	SideLeft
	SideRight

	SideNone Side = 0
)

// Has returns true if every side in s2 is set in s
func (s Side) Has(s2 Side) bool {
	return s2 != SideNone && s&s2 == s2
}

// Any returns true if at least one side is set
func (s Side) Any() bool {
	return s != SideNone
}

// String returns a compact description like "Top|Left"
func (s Side) String() string {
	if s == SideNone {
		return "None"
	}
	names := []struct {
		side Side
		name string
	}{
		{SideTop, "Top"},
		{SideBottom, "Bottom"},
		{SideLeft, "Left"},
		{SideRight, "Right"},
	}
	out := ""
	for _, n := range names {
		if s&n.side == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += n.name
	}
	return out
}

// FloorDiv3 returns floor(v / 3), the lossy bounce divisor applied on impact
func FloorDiv3(v float64) float64 {
	return math.Floor(v / 3)
}
