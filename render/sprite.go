package render

import (
	"github.com/lixenwraith/andvaranaut/sprite"
	"github.com/lixenwraith/andvaranaut/texture"
	"github.com/lixenwraith/andvaranaut/vmath"
)

// clip shrinks a sprite's target rect from both sides until the
// sprite is nearer than the wall recorded for that column. A rect
// clipped to zero width is fully hidden
func (r *Renderer) clip(frame sprite.Rect, where vmath.Point) sprite.Rect {
	seen := frame

	// Left edge
	for ; seen.W > 0; seen.W, seen.X = seen.W-1, seen.X+1 {
		x := seen.X
		if x < 0 || x >= r.fb.XRes {
			continue
		}
		if where.X < r.zbuff[x].X {
			break
		}
	}

	// Right edge
	for ; seen.W > 0; seen.W-- {
		x := seen.X + seen.W - 1
		if x < 0 || x >= r.fb.XRes {
			continue
		}
		if where.X < r.zbuff[x].X {
			break
		}
	}

	return seen
}

// Paste composites every visible sprite over the rasterized frame.
// Sprites must already be oriented into the hero frame; the caller
// restores them afterwards. Reads the depth buffer the column pass
// just finished writing, so Paste must run after the raster join
func (r *Renderer) Paste(sprites *sprite.Sprites, v View, ticks int) {
	xres := r.fb.XRes
	yres := r.fb.YRes
	for i := range sprites.All {
		sp := &sprites.All[i]
		sp.Seen = sprite.Rect{}

		// Behind the hero
		if sp.Where.X <= 0 {
			continue
		}

		// An odd size jitters as the sprite center rounds, so bump
		size := int(v.Focal() * float64(xres/2) / sp.Where.X)
		if vmath.Odd(size) {
			size++
		}
		if size <= 0 {
			continue
		}

		// Screen placement shifts with yaw and height, except for a
		// lifted sprite which hangs centered before the hero's eyes
		var my, top int
		mx := xres / 2
		if sp.State == sprite.Lifted {
			my = yres / 2
			top = my - size/2
		} else {
			my = int(float64(yres) / 2 * (2 - v.Yaw))
			top = my - int(float64(size)*(1-v.Height))
		}
		slip := int(v.Focal() * float64(xres/2) * sp.Where.Slope())
		target := sprite.Rect{X: mx - size/2 + slip, Y: top, W: size, H: size}

		// Off screen entirely
		if target.X+target.W < 0 || target.X >= xres {
			continue
		}

		sp.Seen = r.clip(target, sp.Where)
		if sp.Seen.W <= 0 {
			continue
		}

		atlas := r.bank.Sprite(sp.Ascii)
		fw := atlas.W / texture.Frames
		fh := atlas.H / texture.States
		fx := fw * (ticks % texture.Frames)
		fy := fh * int(sp.State)

		mod := Illuminate(v.Torch, sp.Where.X)
		for x := sp.Seen.X; x < sp.Seen.X+sp.Seen.W; x++ {
			if x < 0 || x >= xres {
				continue
			}
			tx := fx + (x-target.X)*fw/target.W
			for y := target.Y; y < target.Y+target.H; y++ {
				if y < 0 || y >= yres {
					continue
				}
				ty := fy + (y-target.Y)*fh/target.H
				texel := atlas.Pix[ty*atlas.W+tx]
				if texel>>24 == 0 {
					continue
				}
				shaded := Shade(texel, mod)
				if sp.Transparent {
					r.fb.Set(x, y, add(r.fb.At(x, y), shaded))
				} else {
					r.fb.Set(x, y, shaded)
				}
			}
		}
	}
}
