package field

import (
	"github.com/lixenwraith/andvaranaut/vmath"
	"github.com/lixenwraith/andvaranaut/world"
)

// Field is a scalar potential on a sub-cell grid laid over the map.
// Diffusing from a source fills concentric rings with decreasing
// values; walkers climb the gradient to home in on the source while
// wall cells, stamped with a negative blocker mark, never take a ring
// value, so the pull never settles on stone.
//
// wallMark is negative so a blocked sub-cell can never out-bid a
// reachable neighbor during gradient ascent
const wallMark = -1.0

// Gradient probe directions, E first, winding clockwise
var spokes = [8]vmath.Point{
	{X: +1, Y: +0}, // E
	{X: +1, Y: +1}, // SE
	{X: +0, Y: +1}, // S
	{X: -1, Y: +1}, // SW
	{X: -1, Y: +0}, // W
	{X: -1, Y: -1}, // NW
	{X: +0, Y: -1}, // N
	{X: +1, Y: -1}, // NE
}

// Field holds the mesh and its sub-cell resolution
type Field struct {
	Res  int // sub-cells per map tile
	Rows int
	Cols int
	Mesh [][]float64
	Aura int // propagation radius in sub-cells
}

// Prepare sizes a field over the map at double resolution. Aura is
// the reach in map tiles
func Prepare(m *world.Map, aura float64) *Field {
	f := &Field{Res: 2}
	f.Rows = f.Res * m.Rows
	f.Cols = f.Res * m.Cols
	f.Aura = int(float64(f.Res) * aura)
	f.Mesh = make([][]float64, f.Rows)
	for j := range f.Mesh {
		f.Mesh[j] = make([]float64, f.Cols)
	}
	return f
}

// On reports whether the sub-cell (x, y) is inside the mesh
func (f *Field) On(y, x int) bool {
	return y >= 0 && x >= 0 && y < f.Rows && x < f.Cols
}

// materialize values a ring cell. Any strictly decreasing function
// of the ring radius works; the integer countdown is drift-free
func (f *Field) materialize(w int) float64 {
	return float64(f.Aura - w + 1)
}

// reset zeroes the mesh and stamps wall footprints with the blocker
// mark so diffusion cannot pass through them
func (f *Field) reset(m *world.Map) {
	for j := 0; j < f.Rows; j++ {
		row := f.Mesh[j]
		my := j / f.Res
		for i := 0; i < f.Cols; i++ {
			if m.BlockedCell(i/f.Res, my) {
				row[i] = wallMark
			} else {
				row[i] = 0
			}
		}
	}
}

// box grows one square ring of radius w around the source sub-cell,
// assigning the ring value to cells still at zero. Nonzero cells -
// earlier rings and wall marks - are never overwritten, which is
// exactly what stops the potential leaking through walls
func (f *Field) box(y, x, w int) {
	t := y - w
	b := y + w
	l := x - w
	r := x + w
	value := f.materialize(w)
	for j := t; j <= b; j++ {
		for i := l; i <= r; i++ {
			if (i == l || j == t || i == r || j == b) && f.On(j, i) && f.Mesh[j][i] == 0 {
				f.Mesh[j][i] = value
			}
		}
	}
}

// Diffuse rebuilds the potential around a source point. Re-running
// within a tick from the same source is idempotent: the mesh is reset
// first, so the same rings are laid down again
func (f *Field) Diffuse(m *world.Map, where vmath.Point) {
	f.reset(m)
	y := int(float64(f.Res) * where.Y)
	x := int(float64(f.Res) * where.X)
	for w := 1; w <= f.Aura; w++ {
		f.box(y, x, w)
	}
}

// Force returns the unit step a walker at from should take toward
// to, following the gradient around walls. The zero point means
// stay put: already adjacent, out of reach, or boxed in
func (f *Field) Force(from, to vmath.Point, m *world.Map) vmath.Point {
	dead := vmath.Point{}
	dist := from.Sub(to).Magnitude()
	if dist < 1.33 || dist > float64(f.Aura)/float64(f.Res) {
		return dead
	}
	y := int(float64(f.Res) * from.Y)
	x := int(float64(f.Res) * from.X)
	if !f.On(y, x) {
		return dead
	}
	here := f.Mesh[y][x]

	best := 0
	steepest := 0.0
	found := false
	for i, spoke := range spokes {
		probe := from.Add(spoke)
		yy := int(float64(f.Res) * probe.Y)
		xx := int(float64(f.Res) * probe.X)
		if !f.On(yy, xx) {
			continue
		}
		grad := f.Mesh[yy][xx] - here
		if !found || grad > steepest {
			best, steepest, found = i, grad, true
		}
	}
	if !found {
		return dead
	}
	if m.Blocked(from.Add(spokes[best])) {
		return dead
	}
	return spokes[best].Unit()
}
