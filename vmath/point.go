package vmath

import "math"

// Point is a 2D world coordinate in tile units
type Point struct {
	X, Y float64
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by n
func (p Point) Mul(n float64) Point {
	return Point{p.X * n, p.Y * n}
}

// Dot returns the dot product of p and q
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// MagnitudeSq returns the squared length without the sqrt
func (p Point) MagnitudeSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Magnitude returns the Euclidean length
func (p Point) Magnitude() float64 {
	return math.Sqrt(p.MagnitudeSq())
}

// Unit returns p scaled to length one, zero-safe
func (p Point) Unit() Point {
	mag := p.Magnitude()
	if mag == 0 {
		return Point{}
	}
	return p.Mul(1 / mag)
}

// Turn rotates p by theta radians about the origin
func (p Point) Turn(theta float64) Point {
	cos := math.Cos(theta)
	sin := math.Sin(theta)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Slope returns y over x, the off-axis slip of a hero-frame point
func (p Point) Slope() float64 {
	return p.Y / p.X
}

// Near reports whether p is within distance of q
func (p Point) Near(q Point, distance float64) bool {
	return p.Sub(q).MagnitudeSq() <= distance*distance
}

// Cell returns the integer grid cell containing p
func (p Point) Cell() (x, y int) {
	return Fl(p.X), Fl(p.Y)
}
