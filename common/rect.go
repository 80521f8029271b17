package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned rectangle in world units. Edges are half-open, so
// two rectangles that only share a border do not overlap.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Square returns a size x size rectangle anchored at pos.
func Square(pos cp.Vector, size float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size, Height: size}
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p cp.Vector) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
