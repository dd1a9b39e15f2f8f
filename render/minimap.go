package render

import (
	"github.com/lixenwraith/andvaranaut/vmath"
	"github.com/lixenwraith/andvaranaut/world"
)

// Minimap colors
const (
	mapWall  = 0xFFDFEFD7
	mapFloor = 0xFF202020
	mapHero  = 0xFFD34549
)

// Minimap paints the room plan into the top-left corner of the
// frame, one pixel per tile edge cell plus a dot for the hero.
// Drawn last so it rides over walls and sprites alike
func (r *Renderer) Minimap(m *world.Map, where vmath.Point) {
	// Wall cells facing free space outline the rooms; interior free
	// space fills dim. Doors read as free space so rooms connect
	for y := 1; y < m.Rows-1; y++ {
		for x := 1; x < m.Cols-1; x++ {
			code := m.Walling[y][x]
			if code == world.TileEmpty || code == world.TileDoor {
				r.fb.Set(x, y, mapFloor)
				continue
			}
			edge := m.Walling[y][x+1] == world.TileEmpty ||
				m.Walling[y][x-1] == world.TileEmpty ||
				m.Walling[y+1][x] == world.TileEmpty ||
				m.Walling[y-1][x] == world.TileEmpty
			if edge {
				r.fb.Set(x, y, mapWall)
			}
		}
	}
	hx, hy := where.Cell()
	r.fb.Set(hx, hy, mapHero)
}
