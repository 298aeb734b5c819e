package sketch

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Finite reports whether both coordinates are finite numbers.
// Non-finite points are rejected at every mutating entry point.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Line is an ordered pair of endpoints, addressed by its index in the
// document's line list. Indices are stable handles: undo and trim remove
// lines, after which the graph is rebuilt against the new list.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Finite reports whether all four coordinates are finite.
func (l Line) Finite() bool {
	return Pt(l.X1, l.Y1).Finite() && Pt(l.X2, l.Y2).Finite()
}

// LengthSquared returns the squared length of the line.
func (l Line) LengthSquared() float64 {
	dx := l.X2 - l.X1
	dy := l.Y2 - l.Y1
	return dx*dx + dy*dy
}
