package render

import (
	"math"
	"sync"

	"github.com/lixenwraith/andvaranaut/raycast"
	"github.com/lixenwraith/andvaranaut/texture"
	"github.com/lixenwraith/andvaranaut/vmath"
	"github.com/lixenwraith/andvaranaut/world"
)

// Ceiling gaps open onto the scrolling cloud layer drawn with this
// tile code
const cloudCode = byte('%')

// View is the hero pose the renderer needs, copied out each frame
// so worker goroutines never share the live hero
type View struct {
	Where  vmath.Point
	Theta  float64
	Yaw    float64 // vertical look, 0..2, 1 is level
	Height float64 // eye height, 0..1
	Fov    vmath.Line
	Torch  float64
}

// Focal returns the focal length of the view plane
func (v View) Focal() float64 {
	return v.Fov.A.X
}

// Renderer rasterizes frames into a column-major framebuffer and a
// per-column depth buffer. One renderer serves the whole session;
// both buffers are overwritten every frame
type Renderer struct {
	fb      *Framebuffer
	zbuff   []vmath.Point
	threads int
	bank    *texture.Bank
}

// New sizes a renderer. Threads is the worker count for the column
// fan-out, at least one
func New(xres, yres, threads int, bank *texture.Bank) *Renderer {
	if threads < 1 {
		threads = 1
	}
	return &Renderer{
		fb:      NewFramebuffer(xres, yres),
		zbuff:   make([]vmath.Point, xres),
		threads: threads,
		bank:    bank,
	}
}

// Frame exposes the pixel buffer for the presenter
func (r *Renderer) Frame() *Framebuffer {
	return r.fb
}

// Depth exposes the depth buffer; valid only between a Raster and
// the next
func (r *Renderer) Depth() []vmath.Point {
	return r.zbuff
}

// bundle is one worker's slice of the frame: a half-open column
// range plus read-only views of the world. Bundles write disjoint
// columns of the pixel and depth buffers, so the fan-out needs no
// locks - the WaitGroup join is the only barrier
type bundle struct {
	a, b    int
	camera  vmath.Line
	view    View
	m       *world.Map
	current world.Flow
	clouds  world.Flow
	r       *Renderer
}

// Raster draws walls, floors, and ceilings for the whole frame,
// partitioning the columns over the renderer's worker count. The
// depth buffer is fully written when this returns
func (r *Renderer) Raster(v View, m *world.Map, current, clouds world.Flow) {
	camera := v.Fov.Turn(v.Theta)
	var wg sync.WaitGroup
	for i := 0; i < r.threads; i++ {
		b := bundle{
			a:       (i + 0) * r.fb.XRes / r.threads,
			b:       (i + 1) * r.fb.XRes / r.threads,
			camera:  camera,
			view:    v,
			m:       m,
			current: current,
			clouds:  clouds,
			r:       r,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.raster()
		}()
	}
	wg.Wait()
}

// raster renders one bundle's columns
func (b *bundle) raster() {
	for x := b.a; x < b.b; x++ {
		b.column(x)
	}
}

// column renders a single screen column: cast, project, then the
// three vertical spans. The landed ray is rotated into the hero
// frame once; its x is the fish-eye free perpendicular distance
// every span and the depth buffer reuse
func (b *bundle) column(x int) {
	r := b.r
	yres := r.fb.YRes

	t := float64(x) / float64(r.fb.XRes)
	direction := b.camera.Lerp(t)
	radians := math.Atan2(direction.Y, direction.X)
	hit := raycast.Cast(b.view.Where, radians, b.m.Walling)

	ray := hit.Where.Sub(b.view.Where)
	corrected := ray.Turn(-b.view.Theta)
	r.zbuff[x] = corrected

	if hit.Tile == 0 {
		// Sentinel from an unclosed map: degrade to a blank column
		col := r.fb.Column(x)
		for i := range col {
			col[i] = 0xFF000000
		}
		return
	}

	proj := raycast.Project(yres, b.view.Focal(), b.view.Yaw, corrected, b.view.Height)
	b.wall(x, hit, proj, corrected.X)
	b.floor(x, ray, proj, corrected.X)
	b.ceiling(x, ray, proj, corrected.X)
}

// wall draws the textured wall span with torch shading
func (b *bundle) wall(x int, hit raycast.Hit, proj raycast.Projection, distance float64) {
	r := b.r
	yres := r.fb.YRes
	tex := r.bank.Tile(hit.Tile)
	tx := int(hit.U * float64(tex.W))
	mod := Illuminate(b.view.Torch, distance)
	for y := proj.Clamp.Bot; y < proj.Clamp.Top; y++ {
		v := (float64(y) - proj.Bot) / proj.Size
		ty := int(v * float64(tex.H))
		if ty > tex.H-1 {
			ty = tex.H - 1
		}
		if ty < 0 {
			ty = 0
		}
		// Texture rows grow downward, projection rows grow up
		r.fb.Set(x, yres-1-y, Shade(tex.At(tx, tex.H-1-ty), mod))
	}
}

// floor draws the span below the wall. Water tiles resample through
// a projection dropped to the current's depth, translated by the
// accumulated flow so the surface scrolls
func (b *bundle) floor(x int, ray vmath.Point, proj raycast.Projection, distance float64) {
	r := b.r
	yres := r.fb.YRes
	lower := proj.Drop(b.current.Height)
	for y := 0; y < proj.Clamp.Bot; y++ {
		frac := proj.Fcast(y)
		spot := b.view.Where.Add(ray.Mul(frac))
		code := b.m.Floor(spot)
		if code == world.TileEmpty {
			continue
		}
		if code == world.TileWater {
			frac = lower.Fcast(y)
			spot = b.view.Where.Add(ray.Mul(frac)).Add(b.current.Where)
		}
		tex := r.bank.Tile(code)
		texel := tex.Sample(vmath.Dec(spot.X), vmath.Dec(spot.Y))
		mod := Illuminate(b.view.Torch, distance*frac)
		r.fb.Set(x, yres-1-y, Shade(texel, mod))
	}
}

// ceiling draws the span above the wall. Open ceilings stack a
// cloud layer above the wall top, scrolled by the cloud flow
func (b *bundle) ceiling(x int, ray vmath.Point, proj raycast.Projection, distance float64) {
	r := b.r
	yres := r.fb.YRes
	upper := proj.Stack(b.clouds.Height)
	for y := proj.Clamp.Top; y < yres; y++ {
		frac := proj.Ccast(y)
		spot := b.view.Where.Add(ray.Mul(frac))
		code := b.m.Roof(spot)
		tex := r.bank.Tile(code)
		if code == world.TileEmpty {
			frac = upper.Ccast(y)
			spot = b.view.Where.Add(ray.Mul(frac)).Add(b.clouds.Where)
			tex = r.bank.Tile(cloudCode)
		}
		texel := tex.Sample(vmath.Dec(spot.X), vmath.Dec(spot.Y))
		mod := Illuminate(b.view.Torch, distance*frac)
		r.fb.Set(x, yres-1-y, Shade(texel, mod))
	}
}
