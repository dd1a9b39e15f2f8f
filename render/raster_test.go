package render

import (
	"testing"

	"github.com/lixenwraith/andvaranaut/sprite"
	"github.com/lixenwraith/andvaranaut/texture"
	"github.com/lixenwraith/andvaranaut/vmath"
	"github.com/lixenwraith/andvaranaut/world"
)

// testView is the default spawn pose: level gaze east from the
// west side of the built-in room
func testView() View {
	return View{
		Where:  vmath.Point{X: 1.5, Y: 4.5},
		Theta:  0,
		Yaw:    1,
		Height: 0.5,
		Fov:    vmath.Line{A: vmath.Point{X: 1, Y: -1}, B: vmath.Point{X: 1, Y: 1}},
		Torch:  1250,
	}
}

func testRenderer(threads int) *Renderer {
	return New(320, 180, threads, texture.Procedural())
}

func TestRasterFillsDepthBuffer(t *testing.T) {
	for _, threads := range []int{1, 4} {
		r := testRenderer(threads)
		m := world.Default()
		r.Raster(testView(), m, world.StartFlow(-0.1), world.StartFlow(0.2))

		for x, z := range r.Depth() {
			if z.X <= 0 {
				t.Fatalf("threads %d: column %d depth %v never written", threads, x, z)
			}
		}
	}
}

func TestRasterThreadCountsAgree(t *testing.T) {
	// Columns are disjoint, so the fan-out must not change a pixel
	m := world.Default()
	current := world.StartFlow(-0.1)
	clouds := world.StartFlow(0.2)

	single := testRenderer(1)
	single.Raster(testView(), m, current, clouds)
	fanned := testRenderer(5)
	fanned.Raster(testView(), m, current, clouds)

	for i := range single.Frame().Pix {
		if single.Frame().Pix[i] != fanned.Frame().Pix[i] {
			t.Fatalf("pixel %d differs between 1 and 5 threads", i)
		}
	}
}

func TestRasterPaintsAllThreeSpans(t *testing.T) {
	r := testRenderer(2)
	m := world.Default()
	r.Raster(testView(), m, world.StartFlow(-0.1), world.StartFlow(0.2))

	// Center column: wall pixels at mid screen, floor at the
	// bottom, ceiling at the top, none of them still black
	fb := r.Frame()
	for _, row := range []int{5, fb.YRes / 2, fb.YRes - 5} {
		if fb.At(fb.XRes/2, row)&0x00FFFFFF == 0 {
			t.Errorf("center column row %d left black", row)
		}
	}
}

func TestPasteOccludedSpriteClipsToNothing(t *testing.T) {
	// A sprite at (5, 4.5) hides behind the room's center pillar
	// from the spawn viewpoint; its clip must shrink to width zero
	r := testRenderer(2)
	m := world.Default()
	v := testView()
	r.Raster(v, m, world.StartFlow(-0.1), world.StartFlow(0.2))

	s := &sprite.Sprites{All: []sprite.Sprite{{Where: vmath.Point{X: 5, Y: 4.5}, Ascii: 'a'}}}
	s.Orient(v.Where, v.Theta)
	r.Paste(s, v, 0)
	s.Restore(v.Where, v.Theta)

	if s.All[0].Seen.W != 0 {
		t.Errorf("seen = %+v, want zero width", s.All[0].Seen)
	}
}

func TestPasteVisibleSpriteMarksFrame(t *testing.T) {
	r := testRenderer(2)
	m := world.Default()
	v := testView()
	r.Raster(v, m, world.StartFlow(-0.1), world.StartFlow(0.2))

	before := append([]uint32(nil), r.Frame().Pix...)

	s := &sprite.Sprites{All: []sprite.Sprite{{Where: vmath.Point{X: 3, Y: 4.5}, Ascii: 'a'}}}
	s.Orient(v.Where, v.Theta)
	r.Paste(s, v, 0)
	s.Restore(v.Where, v.Theta)

	if s.All[0].Seen.W <= 0 {
		t.Fatalf("seen = %+v, want visible", s.All[0].Seen)
	}
	changed := 0
	for i := range before {
		if before[i] != r.Frame().Pix[i] {
			changed++
		}
	}
	if changed == 0 {
		t.Error("visible sprite left no pixels")
	}
	if s.All[0].Where != (vmath.Point{X: 3, Y: 4.5}) {
		t.Errorf("restore lost the sprite at %v", s.All[0].Where)
	}
}

func TestPasteSkipsSpriteBehindHero(t *testing.T) {
	r := testRenderer(1)
	m := world.Default()
	v := testView()
	r.Raster(v, m, world.StartFlow(-0.1), world.StartFlow(0.2))

	s := &sprite.Sprites{All: []sprite.Sprite{{Where: vmath.Point{X: 1.2, Y: 4.5}, Ascii: 'a'}}}
	s.Orient(v.Where, v.Theta)
	r.Paste(s, v, 0)
	s.Restore(v.Where, v.Theta)

	if s.All[0].Seen.W != 0 {
		t.Errorf("seen = %+v for a sprite behind the hero", s.All[0].Seen)
	}
}

func TestMinimapDrawsHeroDot(t *testing.T) {
	r := testRenderer(1)
	m := world.Default()
	v := testView()
	r.Raster(v, m, world.StartFlow(-0.1), world.StartFlow(0.2))
	r.Minimap(m, v.Where)

	if got := r.Frame().At(1, 4); got != mapHero {
		t.Errorf("hero dot = %#x, want %#x", got, mapHero)
	}
}
