package sprite

import (
	"github.com/lixenwraith/andvaranaut/field"
	"github.com/lixenwraith/andvaranaut/vmath"
	"github.com/lixenwraith/andvaranaut/world"
)

// How long a sprite flinches after taking a hit, in ticks
const hurtRecovery = 30

// Bite range and damage per tick for a sprite pressing the hero
const (
	biteReach  = 1.0
	biteDamage = 0.05
)

// walk advances a sprite one step with per-axis wall sliding, the
// same collision the hero uses
func walk(s *Sprite, step vmath.Point, m *world.Map) {
	moved := s.Where
	moved.X += step.X
	if m.Blocked(moved) {
		moved.X = s.Where.X
	}
	moved.Y += step.Y
	if m.Blocked(moved) {
		moved.Y = s.Where.Y
	}
	s.Where = moved
}

// Caretake updates every sprite for one tick: chase the hero down
// the diffusion gradient, flag who is within speaking range, and
// total up the damage of sprites close enough to bite. Both the
// field and the hero pose arrive as arguments each frame - sprites
// hold no back-pointers
func (s *Sprites) Caretake(m *world.Map, f *field.Field, hero vmath.Point, aura float64) float64 {
	damage := 0.0
	for i := range s.All {
		sp := &s.All[i]
		if sp.State == Dead || sp.State == Lifted {
			continue
		}
		if sp.State == Hurt {
			sp.hurtTicks--
			if sp.hurtTicks > 0 {
				continue
			}
			sp.State = Idle
		}
		sp.Audible = sp.Where.Near(hero, aura)
		step := f.Force(sp.Where, hero, m)
		if step == (vmath.Point{}) {
			sp.State = Idle
		} else {
			sp.State = Chasing
			walk(sp, step.Mul(sp.Speed), m)
		}
		if sp.Where.Near(hero, biteReach) {
			damage += biteDamage
		}
	}
	return damage
}

// Harm wounds the sprite nearest to where within reach, returning
// whether anything was struck. Dead sprites stay where they fell
func (s *Sprites) Harm(where vmath.Point, reach, wound float64) bool {
	best := -1
	bestSq := reach * reach
	for i := range s.All {
		sp := &s.All[i]
		if sp.State == Dead {
			continue
		}
		if d := sp.Where.Sub(where).MagnitudeSq(); d <= bestSq {
			best, bestSq = i, d
		}
	}
	if best < 0 {
		return false
	}
	sp := &s.All[best]
	sp.Health -= wound
	if sp.Health <= 0 {
		sp.State = Dead
	} else {
		sp.State = Hurt
		sp.hurtTicks = hurtRecovery
	}
	return true
}
