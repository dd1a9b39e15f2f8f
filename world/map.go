package world

import "github.com/lixenwraith/andvaranaut/vmath"

// Tile codes are single bytes; subtracting space yields the texture
// index. Space is passable emptiness, everything else is solid to
// the ray caster
const (
	TileEmpty = byte(' ')
	TileDoor  = byte('!') // renders as a wall, walks like a floor
	TileWater = byte('~')
)

// Map is three equally shaped grids of tile codes indexed [y][x].
// The outer boundary of the walling grid is fully opaque; the ray
// caster relies on that to terminate
type Map struct {
	Rows, Cols int
	Walling    [][]byte
	Flooring   [][]byte
	Ceiling    [][]byte
}

// In reports whether the cell (x, y) lies inside the grids
func (m *Map) In(x, y int) bool {
	return x >= 0 && y >= 0 && y < m.Rows && x < m.Cols
}

// Wall returns the walling code of the cell containing p
func (m *Map) Wall(p vmath.Point) byte {
	x, y := p.Cell()
	if !m.In(x, y) {
		return TileEmpty
	}
	return m.Walling[y][x]
}

// Floor returns the flooring code of the cell containing p
func (m *Map) Floor(p vmath.Point) byte {
	x, y := p.Cell()
	if !m.In(x, y) {
		return TileEmpty
	}
	return m.Flooring[y][x]
}

// Roof returns the ceiling code of the cell containing p
func (m *Map) Roof(p vmath.Point) byte {
	x, y := p.Cell()
	if !m.In(x, y) {
		return TileEmpty
	}
	return m.Ceiling[y][x]
}

// Blocked reports whether the cell containing p stops a walker.
// Doors block rays but not walkers, which is what lets a hero step
// through a rendered wall into the next zone
func (m *Map) Blocked(p vmath.Point) bool {
	x, y := p.Cell()
	if !m.In(x, y) {
		return true
	}
	code := m.Walling[y][x]
	return code != TileEmpty && code != TileDoor
}

// BlockedCell is Blocked on integer cell coordinates, the shape the
// diffusion field wants
func (m *Map) BlockedCell(x, y int) bool {
	if !m.In(x, y) {
		return true
	}
	code := m.Walling[y][x]
	return code != TileEmpty && code != TileDoor
}

// Default returns the built-in nine by nine zone used when a zone's
// files cannot be loaded from disk. Single room with a
// center pillar, a water channel, and a sky gap in the ceiling
func Default() *Map {
	walling := []string{
		"#########",
		"##     ##",
		"#       #",
		"#       #",
		"#   #   #",
		"#       #",
		"#       #",
		"##     ##",
		"#########",
	}
	flooring := []string{
		"#########",
		"##.....##",
		"#.......#",
		"#.~~~~~.#",
		"#.~.#.~.#",
		"#.~~~~~.#",
		"#.......#",
		"##.....##",
		"#########",
	}
	ceiling := []string{
		"#########",
		"#########",
		"###   ###",
		"###   ###",
		"###   ###",
		"###   ###",
		"###   ###",
		"#########",
		"#########",
	}
	m := &Map{Rows: len(walling), Cols: len(walling[0])}
	for j := 0; j < m.Rows; j++ {
		m.Walling = append(m.Walling, []byte(walling[j]))
		m.Flooring = append(m.Flooring, []byte(flooring[j]))
		m.Ceiling = append(m.Ceiling, []byte(ceiling[j]))
	}
	return m
}
