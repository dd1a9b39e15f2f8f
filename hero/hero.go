package hero

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/andvaranaut/vmath"
	"github.com/lixenwraith/andvaranaut/world"
)

// Movement and look tuning, per tick
const (
	stride    = 0.1
	turnStep  = 0.08
	lookStep  = 0.04
	riseStep  = 0.03
	ftgDrain  = 0.02
	ftgRegen  = 0.01
	baseTorch = 1250
)

// Hero is the player viewpoint plus its survival bars. Where always
// sits on a passable cell - Sustain rejects any candidate move whose
// cell is blocked
type Hero struct {
	Where  vmath.Point
	Theta  float64 // yaw, radians
	Yaw    float64 // vertical look, open interval (0, 2)
	Height float64 // eye height in wall units, (0, 1)
	Fov    vmath.Line
	Torch  float64
	Aura   float64 // speech and interaction radius

	Hps, HpsMax float64
	Mna, MnaMax float64
	Ftg, FtgMax float64
	Warning     float64 // low-resource threshold as a bar fraction; no bars are drawn

	Zone string

	Moved bool // last tick covered ground, drives footstep cues
}

// Spawn builds the hero at the classic start of a zone
func Spawn(zone string) *Hero {
	return &Hero{
		Where:   vmath.Point{X: 1.5, Y: 4.5},
		Theta:   0,
		Yaw:     1,
		Height:  0.5,
		Fov:     vmath.Line{A: vmath.Point{X: 1, Y: -1}, B: vmath.Point{X: 1, Y: 1}},
		Torch:   baseTorch,
		Aura:    3,
		Hps:     10, HpsMax: 10,
		Mna: 5, MnaMax: 5,
		Ftg: 10, FtgMax: 10,
		Warning: 0.25,
		Zone:    zone,
	}
}

// Gaze returns the unit vector of the hero's facing
func (h *Hero) Gaze() vmath.Point {
	return vmath.Point{X: math.Cos(h.Theta), Y: math.Sin(h.Theta)}
}

// Sustain applies one tick of input to the pose. Movement follows
// the gaze, strafing runs perpendicular to it, and a candidate
// position lands only if its integer cell is passable. Fatigue
// drains while moving and trickles back at rest; an exhausted hero
// shuffles at half stride
func (h *Hero) Sustain(imp Impulse, m *world.Map) {
	if imp.TurnL {
		h.Theta -= turnStep
	}
	if imp.TurnR {
		h.Theta += turnStep
	}
	if imp.LookUp {
		h.Yaw = vmath.Clamp(h.Yaw+lookStep, 0.1, 1.9)
	}
	if imp.LookDown {
		h.Yaw = vmath.Clamp(h.Yaw-lookStep, 0.1, 1.9)
	}
	if imp.Rise {
		h.Height = vmath.Clamp(h.Height+riseStep, 0.05, 0.95)
	}
	if imp.Sink {
		h.Height = vmath.Clamp(h.Height-riseStep, 0.05, 0.95)
	}

	pace := stride
	if h.Ftg <= 0 {
		pace = stride / 2
	}
	direction := h.Gaze().Mul(pace)

	candidate := h.Where
	if imp.Forward {
		candidate = candidate.Add(direction)
	}
	if imp.Backward {
		candidate = candidate.Sub(direction)
	}
	if imp.StrafeL {
		candidate.X += direction.Y
		candidate.Y -= direction.X
	}
	if imp.StrafeR {
		candidate.X -= direction.Y
		candidate.Y += direction.X
	}

	h.Moved = false
	if candidate != h.Where {
		// Slide along walls axis by axis instead of stopping dead
		moved := h.Where
		trial := moved
		trial.X = candidate.X
		if !m.Blocked(trial) {
			moved.X = candidate.X
		}
		trial = moved
		trial.Y = candidate.Y
		if !m.Blocked(trial) {
			moved.Y = candidate.Y
		}
		if moved != h.Where {
			h.Where = moved
			h.Moved = true
		}
	}

	if h.Moved {
		h.Ftg -= ftgDrain
	} else {
		h.Ftg += ftgRegen
	}
	h.Ftg = vmath.Clamp(h.Ftg, 0, h.FtgMax)
}

// Flicker wobbles the torch a little each tick so the walls breathe
func (h *Hero) Flicker() {
	h.Torch = baseTorch * (0.94 + 0.06*rand.Float64())
}

// Travel drops the hero through a portal into another zone,
// spawning at that zone's start
func (h *Hero) Travel(name string) {
	fresh := Spawn(name)
	fresh.Hps, fresh.Mna, fresh.Ftg = h.Hps, h.Mna, h.Ftg
	fresh.Theta = h.Theta
	*h = *fresh
}
