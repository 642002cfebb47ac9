// Package physics provides collision detection and distance utilities.
package physics

import "math"

// Rect is an axis-aligned bounding box anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// Center returns the midpoint of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Heading returns the velocity of something travelling from (x, y) towards
// (tx, ty) at the given speed. A target at the origin point yields a
// rightward heading, matching atan2(0, 0) = 0.
func Heading(x, y, tx, ty, speed float64) (vx, vy float64) {
	angle := math.Atan2(ty-y, tx-x)
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
