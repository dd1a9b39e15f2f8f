package render

import "github.com/lucasb-eyer/go-colorful"

// Torch light falls off with the square of distance and carries the
// color of burning pitch: the dimmer the level, the further each
// channel multiplier eases from white toward ember. The 256-entry
// table is built once so the per-pixel cost is three multiplies
var torchLUT [256][3]uint32

func init() {
	white := colorful.Color{R: 1, G: 1, B: 1}
	ember := colorful.Color{R: 1, G: 0.56, B: 0.30}
	for mod := 0; mod < 256; mod++ {
		level := float64(mod) / 255
		warmth := (1 - level) * 0.35
		tint := white.BlendRgb(ember, warmth)
		torchLUT[mod][0] = uint32(level * tint.R * 256)
		torchLUT[mod][1] = uint32(level * tint.G * 256)
		torchLUT[mod][2] = uint32(level * tint.B * 256)
	}
}

// Illuminate returns the 0..255 torch level at a distance, the
// inverse-square falloff capped at full brightness
func Illuminate(torch, distance float64) int {
	mod := int(torch / (distance * distance))
	if mod > 0xFF {
		return 0xFF
	}
	if mod < 0 {
		return 0
	}
	return mod
}

// Shade applies a torch level to a pixel
func Shade(pixel uint32, mod int) uint32 {
	tint := &torchLUT[mod]
	r := (pixel >> 16 & 0xFF) * tint[0] >> 8
	g := (pixel >> 8 & 0xFF) * tint[1] >> 8
	b := (pixel & 0xFF) * tint[2] >> 8
	return pixel&0xFF000000 | r<<16 | g<<8 | b
}

// add blends a shaded pixel additively onto what is already in the
// frame, the transparent-sprite path
func add(dst, src uint32) uint32 {
	r := (dst >> 16 & 0xFF) + (src >> 16 & 0xFF)
	g := (dst >> 8 & 0xFF) + (src >> 8 & 0xFF)
	b := (dst & 0xFF) + (src & 0xFF)
	if r > 0xFF {
		r = 0xFF
	}
	if g > 0xFF {
		g = 0xFF
	}
	if b > 0xFF {
		b = 0xFF
	}
	return 0xFF000000 | r<<16 | g<<8 | b
}
