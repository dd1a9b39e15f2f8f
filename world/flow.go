package world

import "github.com/lixenwraith/andvaranaut/vmath"

// Flow is a persistent scrolling offset applied to floor or ceiling
// texture lookups. Water currents sit below the floor plane, cloud
// layers above the ceiling; Height carries that signed depth into
// the dropped and stacked projections
type Flow struct {
	Where        vmath.Point
	Direction    vmath.Point
	Velocity     vmath.Point
	Acceleration float64
	Speed        float64
	Height       float64
}

// StartFlow seeds a flow drifting northeast. Negative heights sink
// below the floor (water), positive ones ride above the ceiling
// (clouds)
func StartFlow(height float64) Flow {
	return Flow{
		Direction:    vmath.Point{X: 1, Y: -1}.Unit(),
		Acceleration: 0.00001,
		Speed:        0.01,
		Height:       height,
	}
}

// Stream advances the flow one tick: the velocity eases toward the
// drifting direction, capped at the flow speed, and the accumulated
// offset moves on. The direction wanders a hair each tick so the
// scroll never looks mechanical
func (f *Flow) Stream() {
	f.Direction = f.Direction.Turn(0.0005)
	f.Velocity = f.Velocity.Add(f.Direction.Mul(f.Acceleration))
	if f.Velocity.Magnitude() > f.Speed {
		f.Velocity = f.Velocity.Unit().Mul(f.Speed)
	}
	f.Where = f.Where.Add(f.Velocity)
}
