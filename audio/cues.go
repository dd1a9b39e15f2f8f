package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue names one synthesized game sound
type Cue int

const (
	CueStep Cue = iota
	CueHurt
	CueStrike
	CuePortal
	CueMurmur
)

// tone is the synthesis recipe for a cue
type tone struct {
	freq     float64
	duration time.Duration
	volume   float64 // dB-ish, base-2 exponent for effects.Volume
}

var tones = map[Cue]tone{
	CueStep:   {freq: 110, duration: 40 * time.Millisecond, volume: -4},
	CueHurt:   {freq: 180, duration: 160 * time.Millisecond, volume: -2},
	CueStrike: {freq: 660, duration: 70 * time.Millisecond, volume: -3},
	CuePortal: {freq: 880, duration: 350 * time.Millisecond, volume: -2},
	CueMurmur: {freq: 300, duration: 220 * time.Millisecond, volume: -5},
}

// Mixer plays short synthesized cues. A failed speaker leaves the
// mixer mute rather than killing the game - audio is never fatal
type Mixer struct {
	rate beep.SampleRate
	live bool
}

// NewMixer initializes the speaker. Pass enabled false for headless
// or benchmark runs
func NewMixer(enabled bool) *Mixer {
	mx := &Mixer{rate: beep.SampleRate(44100)}
	if !enabled {
		return mx
	}
	if err := speaker.Init(mx.rate, mx.rate.N(time.Second/10)); err != nil {
		log.Printf("audio: speaker init failed, playing mute: %v", err)
		return mx
	}
	mx.live = true
	return mx
}

// Play fires a cue and returns immediately. Unknown cues are quiet
func (mx *Mixer) Play(c Cue) {
	if !mx.live {
		return
	}
	t, ok := tones[c]
	if !ok {
		return
	}
	sine, err := generators.SineTone(mx.rate, t.freq)
	if err != nil {
		log.Printf("audio: tone %v: %v", c, err)
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Take(mx.rate.N(t.duration), sine),
		Base:     2,
		Volume:   t.volume,
	})
}

// Close releases the speaker
func (mx *Mixer) Close() {
	if mx.live {
		speaker.Close()
		mx.live = false
	}
}
