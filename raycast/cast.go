package raycast

import (
	"log"
	"math"

	"github.com/lixenwraith/andvaranaut/vmath"
)

// Tile codes come from the map's walling grid. A space is passable,
// anything else is opaque to rays (doors included - they render as walls)
const passable = ' '

// stepEast advances to the next vertical grid line in the +x direction
func stepEast(where vmath.Point, m, b float64) vmath.Point {
	x := float64(vmath.Fl(where.X + 1))
	return vmath.Point{X: x, Y: m*x + b}
}

// stepWest advances to the next vertical grid line in the -x direction
func stepWest(where vmath.Point, m, b float64) vmath.Point {
	x := float64(vmath.Cl(where.X - 1))
	return vmath.Point{X: x, Y: m*x + b}
}

// stepSouth advances to the next horizontal grid line in the +y direction
func stepSouth(where vmath.Point, m, b float64) vmath.Point {
	y := float64(vmath.Fl(where.Y + 1))
	return vmath.Point{X: (y - b) / m, Y: y}
}

// stepNorth advances to the next horizontal grid line in the -y direction
func stepNorth(where vmath.Point, m, b float64) vmath.Point {
	y := float64(vmath.Cl(where.Y - 1))
	return vmath.Point{X: (y - b) / m, Y: y}
}

// closer picks whichever candidate lies nearer to where.
// An axis-aligned ray turns the unused candidate infinite, never NaN,
// because the landed coordinate can never equal the intercept
func closer(where, i, j vmath.Point) vmath.Point {
	if i.Sub(where).MagnitudeSq() < j.Sub(where).MagnitudeSq() {
		return i
	}
	return j
}

// quadrant classifies the ray direction by the signs of its components.
// Ties on an axis fall into the lower quadrant so every angle maps
func quadrant(radians float64) int {
	x := math.Cos(radians)
	y := math.Sin(radians)
	switch {
	case x >= 0 && y >= 0:
		return 0
	case x <= 0 && y >= 0:
		return 1
	case x <= 0 && y <= 0:
		return 2
	}
	return 3
}

// step takes the closer of the two candidate grid line crossings for
// the ray's quadrant
func step(where vmath.Point, m, b float64, q int) vmath.Point {
	switch q {
	case 0:
		return closer(where, stepEast(where, m, b), stepSouth(where, m, b))
	case 1:
		return closer(where, stepWest(where, m, b), stepSouth(where, m, b))
	case 2:
		return closer(where, stepWest(where, m, b), stepNorth(where, m, b))
	}
	return closer(where, stepEast(where, m, b), stepNorth(where, m, b))
}

// tile reads the walling grid, treating out of bounds as passable so
// the face predicates stay quiet at the map edge
func tile(walling [][]byte, y, x int) byte {
	if y < 0 || y >= len(walling) || x < 0 || x >= len(walling[y]) {
		return passable
	}
	return walling[y][x]
}

// enclosure classifies the face entered at a landed point, if any.
// Comparing the fractional part against exactly zero is sound: the
// landed coordinate was produced by Fl or Cl so it is integral by
// construction, never merely close.
// Horizontal faces are tested before vertical so an exact corner hit
// resolves the same way every frame
func enclosure(point vmath.Point, walling [][]byte) (Compass, bool) {
	x := int(point.X)
	y := int(point.Y)
	if vmath.Dec(point.Y) == 0 {
		if tile(walling, y, x) != passable && tile(walling, y-1, x) == passable {
			return North, true
		}
		if tile(walling, y, x) == passable && tile(walling, y-1, x) != passable {
			return South, true
		}
	}
	if vmath.Dec(point.X) == 0 {
		if tile(walling, y, x) != passable && tile(walling, y, x-1) == passable {
			return West, true
		}
		if tile(walling, y, x) == passable && tile(walling, y, x-1) != passable {
			return East, true
		}
	}
	// A diagonal ray through a lattice point can pass from the passable
	// cell up-left of it straight into an opaque cell whose north and
	// west neighbors are opaque too. No single edge shows the change,
	// so the entry is reported as that cell's north face
	if vmath.Dec(point.X) == 0 && vmath.Dec(point.Y) == 0 &&
		tile(walling, y, x) != passable && tile(walling, y-1, x-1) == passable {
		return North, true
	}
	return North, false
}

// seal builds the hit record for a landed point known to be on a face.
// Texture u runs left to right as seen from the passable side:
// N takes frac(x), E takes 1-frac(y), S takes 1-frac(x), W takes frac(y)
func seal(point vmath.Point, facing Compass, walling [][]byte) Hit {
	x := int(point.X)
	y := int(point.Y)
	hit := Hit{Where: point, Facing: facing}
	switch facing {
	case North:
		hit.Tile = tile(walling, y, x)
		hit.U = vmath.Dec(point.X)
	case South:
		hit.Tile = tile(walling, y-1, x)
		hit.U = 1 - vmath.Dec(point.X)
	case West:
		hit.Tile = tile(walling, y, x)
		hit.U = vmath.Dec(point.Y)
	case East:
		hit.Tile = tile(walling, y, x-1)
		hit.U = 1 - vmath.Dec(point.Y)
	}
	return hit
}

// Cast marches a ray from where at the given angle across the walling
// grid and returns the hit on the first opaque face entered.
//
// The caller guarantees where sits inside a passable cell of a map
// whose outer boundary is fully walled; each step then crosses at
// least one grid line, so the march terminates within rows+cols
// steps. The guard exists for malformed maps only: it logs once per
// offending ray and hands back the zero sentinel hit
func Cast(where vmath.Point, radians float64, walling [][]byte) Hit {
	m := math.Tan(radians)
	b := where.Y - m*where.X
	q := quadrant(radians)

	rows := len(walling)
	cols := 0
	if rows > 0 {
		cols = len(walling[0])
	}

	cur := where
	for n := 0; n < rows+cols; n++ {
		cur = step(cur, m, b, q)
		if cur.X < 0 || cur.Y < 0 || cur.X > float64(cols) || cur.Y > float64(rows) {
			break
		}
		if facing, ok := enclosure(cur, walling); ok {
			return seal(cur, facing, walling)
		}
	}
	log.Printf("raycast: ray from (%.3f,%.3f) at %.4f rad overflowed an unclosed map", where.X, where.Y, radians)
	return Hit{}
}
