package raycast

import "github.com/lixenwraith/andvaranaut/vmath"

// Screen y coordinates in a projection run bottom-up: 0 is the lowest
// raster row, yres the highest. The framebuffer flips at write time.

// Clamped is a projection span cut to the raster
type Clamped struct {
	Bot, Top int
}

// Projection maps a perpendicular wall distance to a vertical screen
// span. Stacked and dropped derivatives composite extra layers above
// and below the base wall in the same column
type Projection struct {
	Bot, Top float64
	Clamp    Clamped
	Size     float64 // world-to-screen scale at this distance
	Height   float64 // hero eye height, 0..1
	YRes     int
	Mid      float64 // horizon row for the hero's yaw
	Shift    float64
	Level    int
}

// clamp cuts a raw span to [0, yres]
func clamp(yres int, bot, top float64) Clamped {
	c := Clamped{}
	if int(bot) < 0 {
		c.Bot = 0
	} else {
		c.Bot = vmath.Cl(bot)
	}
	if int(top) > yres {
		c.Top = yres
	} else {
		c.Top = vmath.Fl(top)
	}
	return c
}

// Project computes the wall span for a hero-frame hit. The corrected
// point is the ray rotated into the hero's frame, so corrected.X is
// already the fish-eye free perpendicular distance. It is clamped
// from below to keep the scale finite when a wall grazes the eye
func Project(yres int, focal, yaw float64, corrected vmath.Point, height float64) Projection {
	distance := corrected.X
	if distance < 1e-5 {
		distance = 1e-5
	}
	size := focal * float64(yres) / distance
	mid := yaw * float64(yres) / 2
	bot := mid + (0-height)*size
	top := mid + (1-height)*size
	return Projection{
		Bot:    bot,
		Top:    top,
		Clamp:  clamp(yres, bot, top),
		Size:   size,
		Height: height,
		YRes:   yres,
		Mid:    mid,
		Shift:  0,
		Level:  0,
	}
}

// Stack raises a second layer one unit above this one, shift tall
func (p Projection) Stack(shift float64) Projection {
	bot := p.Top - 1
	top := p.Top - 1 + p.Size*shift
	return Projection{
		Bot:    bot,
		Top:    top,
		Clamp:  clamp(p.YRes, bot, top),
		Size:   p.Size,
		Height: p.Height,
		YRes:   p.YRes,
		Mid:    p.Mid,
		Shift:  p.Shift + shift,
		Level:  p.Level + 1,
	}
}

// Drop sinks a second layer one unit below this one, shift deep
func (p Projection) Drop(shift float64) Projection {
	top := p.Bot + 2
	bot := p.Bot + 2 + p.Size*shift
	return Projection{
		Bot:    bot,
		Top:    top,
		Clamp:  clamp(p.YRes, bot, top),
		Size:   p.Size,
		Height: p.Height,
		YRes:   p.YRes,
		Mid:    p.Mid,
		Shift:  p.Shift + shift,
		Level:  p.Level - 1,
	}
}

// Ccast returns the fraction along the ray at which a ceiling row y
// above the wall top meets the ceiling plane. One at the wall top,
// shrinking toward the top of the screen
func (p Projection) Ccast(y int) float64 {
	return (1 - p.Height + p.Shift) * p.Size / (float64(y+1+p.Level) - p.Mid)
}

// Fcast returns the fraction along the ray at which a floor row y
// below the wall bottom meets the floor plane
func (p Projection) Fcast(y int) float64 {
	return (0 - p.Height + p.Shift) * p.Size / (float64(y-1+p.Level) - p.Mid)
}
