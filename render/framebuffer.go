package render

// Framebuffer is the per-frame pixel target, ARGB packed uint32.
// Storage is column-major - the yres by xres swap of old - so the
// renderer's top-to-bottom column writes land on contiguous memory.
// The presenter undoes the rotation when it walks cells
type Framebuffer struct {
	XRes, YRes int
	Pix        []uint32
}

// NewFramebuffer allocates a cleared buffer
func NewFramebuffer(xres, yres int) *Framebuffer {
	return &Framebuffer{
		XRes: xres,
		YRes: yres,
		Pix:  make([]uint32, xres*yres),
	}
}

// Set writes the pixel at column x, raster row (0 is the top)
func (f *Framebuffer) Set(x, row int, color uint32) {
	if x < 0 || x >= f.XRes || row < 0 || row >= f.YRes {
		return
	}
	f.Pix[x*f.YRes+row] = color
}

// At reads the pixel at column x, raster row
func (f *Framebuffer) At(x, row int) uint32 {
	if x < 0 || x >= f.XRes || row < 0 || row >= f.YRes {
		return 0
	}
	return f.Pix[x*f.YRes+row]
}

// Column returns the contiguous pixel slice of one screen column
func (f *Framebuffer) Column(x int) []uint32 {
	return f.Pix[x*f.YRes : (x+1)*f.YRes]
}

// Clear blacks out the frame using the doubling copy
func (f *Framebuffer) Clear() {
	if len(f.Pix) == 0 {
		return
	}
	f.Pix[0] = 0xFF000000
	for filled := 1; filled < len(f.Pix); filled *= 2 {
		copy(f.Pix[filled:], f.Pix[:filled])
	}
}
