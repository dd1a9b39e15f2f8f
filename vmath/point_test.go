package vmath

import (
	"math"
	"testing"
)

func TestFloorCeilDec(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		fl   int
		cl   int
	}{
		{"Integral", 3.0, 3, 3},
		{"Positive fraction", 3.25, 3, 4},
		{"Near one", 3.999, 3, 4},
		{"Zero", 0.0, 0, 0},
		{"Negative fraction", -1.25, -2, -1},
		{"Negative integral", -2.0, -2, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fl(tt.x); got != tt.fl {
				t.Errorf("Fl(%v) = %d, want %d", tt.x, got, tt.fl)
			}
			if got := Cl(tt.x); got != tt.cl {
				t.Errorf("Cl(%v) = %d, want %d", tt.x, got, tt.cl)
			}
		})
	}
}

func TestDecIsExactAfterFloor(t *testing.T) {
	// The caster's face predicates compare Dec against exactly zero
	// on coordinates produced by Fl and Cl
	for _, x := range []float64{0.25, 1.75, 6.999, 42.5} {
		if Dec(float64(Fl(x))) != 0 {
			t.Errorf("Dec(Fl(%v)) != 0", x)
		}
		if Dec(float64(Cl(x))) != 0 {
			t.Errorf("Dec(Cl(%v)) != 0", x)
		}
	}
}

func TestPointAlgebra(t *testing.T) {
	p := Point{X: 3, Y: 4}
	q := Point{X: 1, Y: -2}

	if got := p.Add(q); got != (Point{X: 4, Y: 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(q); got != (Point{X: 2, Y: 6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Mul(2); got != (Point{X: 6, Y: 8}) {
		t.Errorf("Mul = %v", got)
	}
	if got := p.Magnitude(); got != 5 {
		t.Errorf("Magnitude = %v, want 5", got)
	}
	if got := p.Dot(q); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := p.Unit().Magnitude(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Unit magnitude = %v, want 1", got)
	}
	if got := (Point{}).Unit(); got != (Point{}) {
		t.Errorf("zero Unit = %v, want zero", got)
	}
}

func TestTurn(t *testing.T) {
	tests := []struct {
		name  string
		p     Point
		theta float64
		want  Point
	}{
		{"Quarter turn", Point{X: 1, Y: 0}, math.Pi / 2, Point{X: 0, Y: 1}},
		{"Half turn", Point{X: 1, Y: 0}, math.Pi, Point{X: -1, Y: 0}},
		{"Full turn", Point{X: 2, Y: 3}, 2 * math.Pi, Point{X: 2, Y: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Turn(tt.theta)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Turn(%v) = %v, want %v", tt.theta, got, tt.want)
			}
		})
	}
}

func TestTurnRoundTrip(t *testing.T) {
	p := Point{X: 1.75, Y: -0.5}
	for _, theta := range []float64{0, 0.3, 1.234, math.Pi / 3} {
		back := p.Turn(-theta).Turn(theta)
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Errorf("theta %v: round trip %v, want %v", theta, back, p)
		}
	}
}

func TestLineLerp(t *testing.T) {
	l := Line{A: Point{X: 1, Y: -1}, B: Point{X: 1, Y: 1}}
	if got := l.Lerp(0.5); got != (Point{X: 1, Y: 0}) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
	if got := l.Lerp(0); got != l.A {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := l.Lerp(1); got != l.B {
		t.Errorf("Lerp(1) = %v", got)
	}
}

func TestCell(t *testing.T) {
	x, y := (Point{X: 1.5, Y: 4.99}).Cell()
	if x != 1 || y != 4 {
		t.Errorf("Cell = (%d, %d), want (1, 4)", x, y)
	}
}
