package raycast

import "github.com/lixenwraith/andvaranaut/vmath"

// Compass identifies which face of a tile a ray entered.
// A face is named for the direction it looks out of the tile
type Compass int

const (
	North Compass = iota
	East
	South
	West
)

// String returns the face initial for diagnostics
func (c Compass) String() string {
	switch c {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// Hit reports the first opaque cell boundary struck by a ray.
// A zero Tile marks the sentinel hit produced when the step guard
// trips; renderers paint a blank span for it
type Hit struct {
	Tile   byte        // walling code of the struck tile
	U      float64     // fractional offset along the face, in [0, 1]
	Where  vmath.Point // landing point, exactly on a grid line
	Facing Compass
}
