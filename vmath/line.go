package vmath

// Line is a directed segment between two world points.
// The hero's focal plane is a Line; rotating it orients the camera
type Line struct {
	A, B Point
}

// Turn rotates both endpoints by theta radians about the origin
func (l Line) Turn(theta float64) Line {
	return Line{l.A.Turn(theta), l.B.Turn(theta)}
}

// Lerp returns the point a fraction t of the way from A to B
func (l Line) Lerp(t float64) Point {
	return l.A.Add(l.B.Sub(l.A).Mul(t))
}
