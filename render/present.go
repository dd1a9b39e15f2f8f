package render

import "github.com/gdamore/tcell/v2"

// Presenter copies finished frames onto a tcell screen. Each cell
// carries two vertically stacked pixels through the upper half
// block, its foreground the top pixel and its background the
// bottom. Walking cells row-major here is also what undoes the
// framebuffer's 90 degree storage rotation
type Presenter struct {
	screen tcell.Screen
}

// NewPresenter wraps an initialized screen
func NewPresenter(screen tcell.Screen) *Presenter {
	return &Presenter{screen: screen}
}

// rgb converts a framebuffer pixel to a tcell color
func rgb(pixel uint32) tcell.Color {
	return tcell.NewRGBColor(
		int32(pixel>>16&0xFF),
		int32(pixel>>8&0xFF),
		int32(pixel&0xFF),
	)
}

// Present pushes the frame to the terminal. Frames larger than the
// terminal clip; smaller ones leave the margin alone
func (p *Presenter) Present(fb *Framebuffer) {
	cols, rows := p.screen.Size()
	if cols > fb.XRes {
		cols = fb.XRes
	}
	if rows > fb.YRes/2 {
		rows = fb.YRes / 2
	}
	for cy := 0; cy < rows; cy++ {
		for x := 0; x < cols; x++ {
			style := tcell.StyleDefault.
				Foreground(rgb(fb.At(x, 2*cy))).
				Background(rgb(fb.At(x, 2*cy+1)))
			p.screen.SetContent(x, cy, '▀', nil, style)
		}
	}
	p.screen.Show()
}
