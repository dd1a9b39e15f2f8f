package texture

import (
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
	"gopkg.in/yaml.v3"
)

// Tile art is rescaled to a fixed square so the column renderer's
// texel math never branches on size
const tileSize = 64

// codes is the span of printable tile and sprite bytes; subtracting
// space indexes the bank
const codes = '~' - ' ' + 1

// Bank holds every tile and sprite texture for a play session. It
// replaces the global surface atlas of old with an explicit object
// handed to the renderer
type Bank struct {
	tiles   [codes]*Texture
	sprites [codes]*Texture
	err     *Texture
}

// manifest is the on-disk art table: tile and sprite codes mapped
// to image files relative to the art directory
type manifest struct {
	Tiles   map[string]string `yaml:"tiles"`
	Sprites map[string]string `yaml:"sprites"`
}

// Tile returns the wall, floor, or ceiling texture for a tile code
func (b *Bank) Tile(code byte) *Texture {
	if code < ' ' || code > '~' || b.tiles[code-' '] == nil {
		return b.err
	}
	return b.tiles[code-' ']
}

// Sprite returns the animation atlas for a sprite glyph
func (b *Bank) Sprite(ascii byte) *Texture {
	if ascii < ' ' || ascii > '~' || b.sprites[ascii-' '] == nil {
		return b.err
	}
	return b.sprites[ascii-' ']
}

// convert rescales a decoded image to w by h pixels and packs it
// into the renderer pixel format
func convert(src image.Image, w, h int) *Texture {
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	t := &Texture{W: w, H: h, Pix: make([]uint32, w*h)}
	for i := 0; i < w*h; i++ {
		r := scaled.Pix[4*i+0]
		g := scaled.Pix[4*i+1]
		b := scaled.Pix[4*i+2]
		a := scaled.Pix[4*i+3]
		t.Pix[i] = argb(a, r, g, b)
	}
	return t
}

// loadImage decodes one PNG from the art directory
func loadImage(dir, name string) (image.Image, error) {
	file, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, errors.Wrapf(err, "open art %s", name)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "decode art %s", name)
	}
	return img, nil
}

// Procedural builds the fallback bank used when no art directory is
// available: generated stone, dirt, water, planks, and a walker
// atlas. Load also starts from this bank, so it fills every code the
// art manifest leaves out
func Procedural() *Bank {
	b := &Bank{err: checker(tileSize)}
	b.tiles['#'-' '] = brick(tileSize, 0x8A, 0x85, 0x7A)
	b.tiles['.'-' '] = grain(tileSize, 0x6E, 0x5A, 0x40)
	b.tiles['~'-' '] = bands(tileSize, 0x20, 0x48, 0x70)
	b.tiles['%'-' '] = bands(tileSize, 0x58, 0x60, 0x70)
	b.tiles['!'-' '] = brick(tileSize, 0x7A, 0x58, 0x30)
	b.sprites['a'-' '] = figure(tileSize)
	return b
}

// Load reads the art manifest and every texture it names. Codes the
// manifest misses fall back to the procedural bank; a missing
// manifest falls back entirely
func Load(dir string) (*Bank, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "art.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("texture: no art manifest under %s, using procedural bank", dir)
			return Procedural(), nil
		}
		return nil, errors.Wrap(err, "read art manifest")
	}
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, errors.Wrap(err, "parse art manifest")
	}

	b := Procedural()
	for code, name := range m.Tiles {
		if len(code) != 1 || code[0] < ' ' || code[0] > '~' {
			return nil, errors.Errorf("art manifest: bad tile code %q", code)
		}
		img, err := loadImage(dir, name)
		if err != nil {
			return nil, err
		}
		b.tiles[code[0]-' '] = convert(img, tileSize, tileSize)
	}
	for code, name := range m.Sprites {
		if len(code) != 1 || code[0] < ' ' || code[0] > '~' {
			return nil, errors.Errorf("art manifest: bad sprite code %q", code)
		}
		img, err := loadImage(dir, name)
		if err != nil {
			return nil, err
		}
		b.sprites[code[0]-' '] = convert(img, tileSize*Frames, tileSize*States)
	}
	return b, nil
}
