package engine

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/andvaranaut/audio"
	"github.com/lixenwraith/andvaranaut/config"
	"github.com/lixenwraith/andvaranaut/field"
	"github.com/lixenwraith/andvaranaut/hero"
	"github.com/lixenwraith/andvaranaut/render"
	"github.com/lixenwraith/andvaranaut/sprite"
	"github.com/lixenwraith/andvaranaut/texture"
	"github.com/lixenwraith/andvaranaut/world"
)

// Animation advances one atlas frame every this many ticks
const frameDivisor = 6

// Reach for stepping through portals and for melee swings
const (
	portalReach = 0.5
	swingReach  = 1.2
	swingWound  = 1
)

// Game owns every piece of play state: map, hero, sprites, field,
// flows. Collaborators receive references through method arguments
// each frame, never back-pointers, so ownership stays in one place
type Game struct {
	cfg     config.Config
	screen  tcell.Screen // nil when running headless
	binds   hero.Bindings
	mixer   *audio.Mixer
	r       *render.Renderer
	p       *render.Presenter
	h       *hero.Hero
	m       *world.Map
	portals world.Portals
	sprites *sprite.Sprites
	f       *field.Field
	current world.Flow
	clouds  world.Flow
	ticks   int
}

// New assembles a game. A nil screen selects headless operation,
// which the benchmark mode uses; everything else still runs
func New(cfg config.Config, screen tcell.Screen) (*Game, error) {
	bank, err := texture.Load(cfg.Art)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:     cfg,
		screen:  screen,
		binds:   bindings(cfg),
		mixer:   audio.NewMixer(cfg.Audio && screen != nil),
		r:       render.New(cfg.XRes, cfg.YRes(), cfg.Threads, bank),
		h:       hero.Spawn(cfg.Zone),
		current: world.StartFlow(-0.1),
		clouds:  world.StartFlow(0.2),
	}
	if screen != nil {
		g.p = render.NewPresenter(screen)
	}
	if err := g.enter(cfg.Zone); err != nil {
		return nil, err
	}
	return g, nil
}

// bindings overlays configured keys onto the default layout
func bindings(cfg config.Config) hero.Bindings {
	binds := hero.DefaultBindings()
	assign := map[string]*rune{
		"forward":  &binds.Forward,
		"backward": &binds.Backward,
		"strafel":  &binds.StrafeL,
		"strafer":  &binds.StrafeR,
		"turnl":    &binds.TurnL,
		"turnr":    &binds.TurnR,
		"lookup":   &binds.LookUp,
		"lookdown": &binds.LookDown,
		"rise":     &binds.Rise,
		"sink":     &binds.Sink,
		"attack":   &binds.Attack,
		"quit":     &binds.Quit,
	}
	for action, key := range cfg.Keys {
		if slot, ok := assign[action]; ok {
			*slot = []rune(key)[0]
		} else {
			log.Printf("engine: unknown key action %q ignored", action)
		}
	}
	return binds
}

// enter loads a zone's map, sprites, and portal table and rebuilds
// the diffusion field over it. Zones missing from disk fall back to
// the built-in room so a bare checkout still plays
func (g *Game) enter(zone string) error {
	m, err := world.Load(g.cfg.Zones, zone)
	if err != nil {
		log.Printf("engine: zone %s: %v, falling back to built-in room", zone, err)
		g.m = world.Default()
		g.sprites = sprite.Default()
		g.portals = nil
		g.f = field.Prepare(g.m, g.cfg.Aura)
		return nil
	}
	sprites, err := sprite.Wake(g.cfg.Zones, zone)
	if err != nil {
		return err
	}
	portals, err := world.LoadPortals(g.cfg.Zones, zone)
	if err != nil {
		return err
	}
	g.m = m
	g.sprites = sprites
	g.portals = portals
	g.f = field.Prepare(g.m, g.cfg.Aura)
	return nil
}

// view snapshots the hero pose for the renderer's worker goroutines
func (g *Game) view() render.View {
	return render.View{
		Where:  g.h.Where,
		Theta:  g.h.Theta,
		Yaw:    g.h.Yaw,
		Height: g.h.Height,
		Fov:    g.h.Fov,
		Torch:  g.h.Torch,
	}
}

// update advances play state one tick
func (g *Game) update(imp hero.Impulse) {
	g.ticks++

	g.h.Sustain(imp, g.m)
	if g.h.Moved && g.ticks%12 == 0 {
		g.mixer.Play(audio.CueStep)
	}
	g.h.Flicker()

	if portal := g.portals.At(g.h.Where, portalReach); portal != nil {
		zone := portal.Name
		g.h.Travel(zone)
		if err := g.enter(zone); err != nil {
			log.Printf("engine: travel to %s failed: %v", zone, err)
		}
		g.mixer.Play(audio.CuePortal)
		return
	}

	g.current.Stream()
	g.clouds.Stream()

	g.f.Diffuse(g.m, g.h.Where)
	damage := g.sprites.Caretake(g.m, g.f, g.h.Where, g.h.Aura)
	if damage > 0 {
		g.h.Hps -= damage
		if g.h.Hps < 0 {
			g.h.Hps = 0
		}
		g.mixer.Play(audio.CueHurt)
	}

	if imp.Attack {
		target := g.h.Where.Add(g.h.Gaze().Mul(swingReach))
		if g.sprites.Harm(target, swingReach, swingWound) {
			g.mixer.Play(audio.CueStrike)
		}
	}

	// A murmur now and then from whoever stands in earshot
	if g.ticks%90 == 0 {
		for i := range g.sprites.All {
			if g.sprites.All[i].Audible && g.sprites.All[i].State != sprite.Dead {
				g.mixer.Play(audio.CueMurmur)
				break
			}
		}
	}
}

// frame renders one complete frame: parallel column raster, then
// sprites against the finished depth buffer, then the overlay
func (g *Game) frame() {
	v := g.view()
	g.r.Raster(v, g.m, g.current, g.clouds)
	g.sprites.Orient(g.h.Where, g.h.Theta)
	g.r.Paste(g.sprites, v, g.ticks/frameDivisor)
	g.sprites.Restore(g.h.Where, g.h.Theta)
	g.r.Minimap(g.m, g.h.Where)
	if g.p != nil {
		g.p.Present(g.r.Frame())
	}
}

// Frames exposes the tick count, for tests and the benchmark report
func (g *Game) Frames() int {
	return g.ticks
}

// Run drives the play loop until quit. A 128-wide resolution is the
// benchmark mode: it renders exactly one second of frames headless
// and returns, no input, no pacing
func (g *Game) Run() error {
	defer g.mixer.Close()

	if g.cfg.XRes == 128 {
		for renders := 0; renders < g.cfg.FPS; renders++ {
			g.update(hero.Impulse{})
			g.frame()
		}
		return nil
	}

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	budget := time.Second / time.Duration(g.cfg.FPS)
	for {
		start := time.Now()

		var imp hero.Impulse
	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				switch ev := ev.(type) {
				case *tcell.EventKey:
					imp.Merge(hero.Decode(ev, g.binds))
				case *tcell.EventResize:
					g.screen.Sync()
				}
			default:
				break drain
			}
		}
		if imp.Quit {
			return nil
		}

		g.update(imp)
		g.frame()

		// Sleep off the rest of the frame budget; a slow frame just
		// runs long, it is never dropped
		if elapsed := time.Since(start); elapsed < budget {
			time.Sleep(budget - elapsed)
		}
	}
}
