package texture

// Atlas layout for sprite sheets: Frames animation frames across,
// States behavior rows down
const (
	Frames = 4
	States = 5
)

// Texture is a decoded image in the renderer's pixel format, ARGB
// packed into uint32, row-major
type Texture struct {
	W, H int
	Pix  []uint32
}

// At samples the texel at (x, y) with wrap-around
func (t *Texture) At(x, y int) uint32 {
	x %= t.W
	y %= t.H
	if x < 0 {
		x += t.W
	}
	if y < 0 {
		y += t.H
	}
	return t.Pix[y*t.W+x]
}

// Sample maps fractional coordinates in [0,1) onto the texel grid
func (t *Texture) Sample(u, v float64) uint32 {
	return t.At(int(u*float64(t.W)), int(v*float64(t.H)))
}

// argb packs channels into the renderer pixel format
func argb(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// hash is a small integer scrambler for procedural grain
func hash(x, y int) uint32 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

// brick draws a mortar-and-brick pattern in the base color
func brick(size int, r, g, b uint8) *Texture {
	t := &Texture{W: size, H: size, Pix: make([]uint32, size*size)}
	course := size / 4
	for y := 0; y < size; y++ {
		row := y / course
		shift := 0
		if row%2 == 1 {
			shift = size / 4
		}
		for x := 0; x < size; x++ {
			grain := uint8(hash(x, y) % 24)
			mortar := y%course == 0 || (x+shift)%(size/2) == 0
			if mortar {
				t.Pix[y*size+x] = argb(0xFF, 0x30+grain/2, 0x30+grain/2, 0x30+grain/2)
			} else {
				t.Pix[y*size+x] = argb(0xFF, r-grain, g-grain, b-grain)
			}
		}
	}
	return t
}

// grain draws flat speckled ground in the base color
func grain(size int, r, g, b uint8) *Texture {
	t := &Texture{W: size, H: size, Pix: make([]uint32, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := uint8(hash(x, y) % 40)
			t.Pix[y*size+x] = argb(0xFF, r-n/2, g-n/2, b-n)
		}
	}
	return t
}

// bands draws horizontal liquid bands in the base color
func bands(size int, r, g, b uint8) *Texture {
	t := &Texture{W: size, H: size, Pix: make([]uint32, size*size)}
	for y := 0; y < size; y++ {
		wave := uint8(8 * ((y / 4) % 3))
		for x := 0; x < size; x++ {
			n := uint8(hash(x, y) % 16)
			t.Pix[y*size+x] = argb(0xFF, r+wave/2, g+wave, b+wave-n)
		}
	}
	return t
}

// checker is the loud fallback for codes with no art, after the
// error tile every asset pack carries
func checker(size int) *Texture {
	t := &Texture{W: size, H: size, Pix: make([]uint32, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/8+y/8)%2 == 0 {
				t.Pix[y*size+x] = argb(0xFF, 0xFF, 0x00, 0xFF)
			} else {
				t.Pix[y*size+x] = argb(0xFF, 0x00, 0x00, 0x00)
			}
		}
	}
	return t
}

// figure draws a procedural sprite atlas: Frames columns of a simple
// hooded walker, States rows tinted by behavior. Transparent texels
// carry zero alpha
func figure(size int) *Texture {
	w := size * Frames
	h := size * States
	t := &Texture{W: w, H: h, Pix: make([]uint32, w*h)}
	tints := [States][3]uint8{
		{0x90, 0x90, 0xA0}, // idle
		{0xA0, 0x80, 0x60}, // chasing
		{0x80, 0xA0, 0xC0}, // lifted
		{0xC0, 0x50, 0x50}, // hurt
		{0x50, 0x50, 0x50}, // dead
	}
	for state := 0; state < States; state++ {
		for frame := 0; frame < Frames; frame++ {
			ox := frame * size
			oy := state * size
			bob := frame % 2
			tint := tints[state]
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					cx := float64(x-size/2) / float64(size)
					cy := float64(y-size/2-bob) / float64(size)
					head := cx*cx+(cy+0.22)*(cy+0.22) < 0.012
					body := cx*cx*3+(cy-0.05)*(cy-0.05) < 0.05 && cy > -0.18
					if head || body {
						n := uint8(hash(x+ox, y+oy) % 24)
						t.Pix[(oy+y)*w+ox+x] = argb(0xFF, tint[0]-n, tint[1]-n, tint[2]-n)
					}
				}
			}
		}
	}
	return t
}
