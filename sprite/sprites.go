package sprite

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/andvaranaut/vmath"
)

// State selects the row of a sprite's animation atlas
type State int

const (
	Idle State = iota
	Chasing
	Lifted
	Hurt
	Dead
)

// Rect is a screen-space clip rectangle
type Rect struct {
	X, Y, W, H int
}

// Sprite is one animated billboard. Where holds world coordinates
// except during compositing, when the container reorients it into
// the hero's frame and restores it afterwards
type Sprite struct {
	Where       vmath.Point
	Ascii       byte
	State       State
	Transparent bool
	Seen        Rect // last visible clip, after occlusion
	Speed       float64
	Health      float64
	Audible     bool // within the hero's aura last tick
	hurtTicks   int
}

// Sprites owns every sprite of the loaded zone
type Sprites struct {
	All []Sprite
}

// spawn builds a live sprite for a glyph
func spawn(ascii byte, where vmath.Point) Sprite {
	return Sprite{
		Where:  where,
		Ascii:  ascii,
		State:  Idle,
		Speed:  0.033,
		Health: 3,
	}
}

// Default wakes the trio of walkers that haunt the built-in zone
func Default() *Sprites {
	return &Sprites{All: []Sprite{
		spawn('a', vmath.Point{X: 6.5, Y: 2.5}),
		spawn('a', vmath.Point{X: 6.5, Y: 6.5}),
		spawn('a', vmath.Point{X: 2.5, Y: 6.5}),
	}}
}

// Wake loads a zone's sprite table: "<x>,<y> <glyph>" lines, '#'
// comments. A missing file is an empty zone
func Wake(dir, zone string) (*Sprites, error) {
	file, err := os.Open(filepath.Join(dir, zone+".sprites"))
	if err != nil {
		if os.IsNotExist(err) {
			return &Sprites{}, nil
		}
		return nil, errors.Wrapf(err, "open sprites for zone %s", zone)
	}
	defer file.Close()

	sprites := &Sprites{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 || len(fields[1]) != 1 {
			return nil, errors.Errorf("sprite line %q: want \"<x>,<y> <glyph>\"", line)
		}
		coords := strings.SplitN(fields[0], ",", 2)
		if len(coords) != 2 {
			return nil, errors.Errorf("sprite line %q: bad coordinate pair", line)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "sprite line %q", line)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "sprite line %q", line)
		}
		sprites.All = append(sprites.All, spawn(fields[1][0], vmath.Point{X: x, Y: y}))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read sprites for zone %s", zone)
	}
	return sprites, nil
}

// Orient moves every sprite into the hero's frame: translate so the
// hero sits at the origin, rotate so the gaze runs along +x. The
// compositor reads positions in this frame; Restore is its inverse,
// applied once pasting is done so world state survives the round
// trip (bit-exact at zero rotation, within rounding otherwise)
func (s *Sprites) Orient(where vmath.Point, theta float64) {
	for i := range s.All {
		s.All[i].Where = s.All[i].Where.Sub(where).Turn(-theta)
	}
}

// Restore undoes Orient
func (s *Sprites) Restore(where vmath.Point, theta float64) {
	for i := range s.All {
		s.All[i].Where = s.All[i].Where.Turn(theta).Add(where)
	}
}
