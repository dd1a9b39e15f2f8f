package hero

import "github.com/gdamore/tcell/v2"

// Impulse is one tick's worth of decoded input. Terminals deliver
// key presses, not key states, so each repeat event re-arms its
// impulse for the tick it lands in - holding a key rides the
// terminal's autorepeat
type Impulse struct {
	Forward, Backward bool
	StrafeL, StrafeR  bool
	TurnL, TurnR      bool
	LookUp, LookDown  bool
	Rise, Sink        bool
	Attack            bool
	Quit              bool
}

// Merge folds another impulse into this one
func (imp *Impulse) Merge(other Impulse) {
	imp.Forward = imp.Forward || other.Forward
	imp.Backward = imp.Backward || other.Backward
	imp.StrafeL = imp.StrafeL || other.StrafeL
	imp.StrafeR = imp.StrafeR || other.StrafeR
	imp.TurnL = imp.TurnL || other.TurnL
	imp.TurnR = imp.TurnR || other.TurnR
	imp.LookUp = imp.LookUp || other.LookUp
	imp.LookDown = imp.LookDown || other.LookDown
	imp.Rise = imp.Rise || other.Rise
	imp.Sink = imp.Sink || other.Sink
	imp.Attack = imp.Attack || other.Attack
	imp.Quit = imp.Quit || other.Quit
}

// Bindings maps key runes to movement. The zero value is useless;
// start from DefaultBindings and overlay the config
type Bindings struct {
	Forward, Backward rune
	StrafeL, StrafeR  rune
	TurnL, TurnR      rune
	LookUp, LookDown  rune
	Rise, Sink        rune
	Attack            rune
	Quit              rune
}

// DefaultBindings is the classic layout: WASD to move, H and L to
// turn, J and K to look, U and O to crouch and stretch
func DefaultBindings() Bindings {
	return Bindings{
		Forward:  'w',
		Backward: 's',
		StrafeL:  'a',
		StrafeR:  'd',
		TurnL:    'h',
		TurnR:    'l',
		LookDown: 'j',
		LookUp:   'k',
		Sink:     'u',
		Rise:     'o',
		Attack:   ' ',
		Quit:     'q',
	}
}

// Decode turns one terminal event into an impulse. Escape and
// Ctrl-C always quit regardless of bindings
func Decode(ev *tcell.EventKey, binds Bindings) Impulse {
	var imp Impulse
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		imp.Quit = true
		return imp
	case tcell.KeyRune:
	default:
		return imp
	}
	switch ev.Rune() {
	case binds.Forward:
		imp.Forward = true
	case binds.Backward:
		imp.Backward = true
	case binds.StrafeL:
		imp.StrafeL = true
	case binds.StrafeR:
		imp.StrafeR = true
	case binds.TurnL:
		imp.TurnL = true
	case binds.TurnR:
		imp.TurnR = true
	case binds.LookUp:
		imp.LookUp = true
	case binds.LookDown:
		imp.LookDown = true
	case binds.Rise:
		imp.Rise = true
	case binds.Sink:
		imp.Sink = true
	case binds.Attack:
		imp.Attack = true
	case binds.Quit:
		imp.Quit = true
	}
	return imp
}
