package sprite

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/andvaranaut/field"
	"github.com/lixenwraith/andvaranaut/vmath"
	"github.com/lixenwraith/andvaranaut/world"
)

func TestOrientRestoreIsInvolution(t *testing.T) {
	tests := []struct {
		name  string
		theta float64
		exact bool
	}{
		{"Zero rotation is bit exact", 0, true},
		{"Quarter turn", math.Pi / 2, false},
		{"Arbitrary angle", 1.234, false},
		{"Negative angle", -2.6, false},
	}

	hero := vmath.Point{X: 4.25, Y: 3.75}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			before := make([]vmath.Point, len(s.All))
			for i := range s.All {
				before[i] = s.All[i].Where
			}

			s.Orient(hero, tt.theta)
			s.Restore(hero, tt.theta)

			for i := range s.All {
				got := s.All[i].Where
				if tt.exact {
					if got != before[i] {
						t.Errorf("sprite %d: %v, want exactly %v", i, got, before[i])
					}
				} else if math.Abs(got.X-before[i].X) > 1e-9 || math.Abs(got.Y-before[i].Y) > 1e-9 {
					t.Errorf("sprite %d: %v, want %v", i, got, before[i])
				}
			}
		})
	}
}

func TestOrientPutsGazeAlongX(t *testing.T) {
	hero := vmath.Point{X: 2, Y: 2}
	theta := 0.8
	ahead := hero.Add(vmath.Point{X: math.Cos(theta), Y: math.Sin(theta)}.Mul(3))

	s := &Sprites{All: []Sprite{{Where: ahead}}}
	s.Orient(hero, theta)

	got := s.All[0].Where
	if math.Abs(got.X-3) > 1e-9 || math.Abs(got.Y) > 1e-9 {
		t.Errorf("oriented to %v, want (3, 0)", got)
	}
}

func TestCaretakeChasesHero(t *testing.T) {
	m := world.Default()
	f := field.Prepare(m, 8)
	hero := vmath.Point{X: 1.5, Y: 4.5}
	f.Diffuse(m, hero)

	s := &Sprites{All: []Sprite{{Where: vmath.Point{X: 6.5, Y: 4.5}, Ascii: 'a', Speed: 0.033, Health: 3}}}
	before := s.All[0].Where
	damage := s.Caretake(m, f, hero, 3)

	if damage != 0 {
		t.Errorf("damage = %v from five tiles away", damage)
	}
	if s.All[0].State != Chasing {
		t.Errorf("state = %v, want Chasing", s.All[0].State)
	}
	if s.All[0].Where == before {
		t.Error("sprite never moved")
	}
	if m.Blocked(s.All[0].Where) {
		t.Errorf("sprite walked into a wall at %v", s.All[0].Where)
	}
}

func TestCaretakeBitesWhenClose(t *testing.T) {
	m := world.Default()
	f := field.Prepare(m, 8)
	hero := vmath.Point{X: 1.5, Y: 4.5}
	f.Diffuse(m, hero)

	s := &Sprites{All: []Sprite{{Where: vmath.Point{X: 2.2, Y: 4.5}, Ascii: 'a', Speed: 0.033, Health: 3}}}
	if damage := s.Caretake(m, f, hero, 3); damage <= 0 {
		t.Errorf("damage = %v, want a bite", damage)
	}
}

func TestCaretakeSkipsDead(t *testing.T) {
	m := world.Default()
	f := field.Prepare(m, 8)
	hero := vmath.Point{X: 1.5, Y: 4.5}
	f.Diffuse(m, hero)

	s := &Sprites{All: []Sprite{{Where: vmath.Point{X: 2.0, Y: 4.5}, State: Dead}}}
	before := s.All[0].Where
	if damage := s.Caretake(m, f, hero, 3); damage != 0 {
		t.Errorf("the dead bit for %v damage", damage)
	}
	if s.All[0].Where != before {
		t.Error("the dead walked")
	}
}

func TestHarm(t *testing.T) {
	s := &Sprites{All: []Sprite{{Where: vmath.Point{X: 3, Y: 3}, Health: 2}}}

	if !s.Harm(vmath.Point{X: 3.2, Y: 3}, 1, 1) {
		t.Fatal("swing within reach missed")
	}
	if s.All[0].State != Hurt {
		t.Errorf("state = %v, want Hurt", s.All[0].State)
	}
	if !s.Harm(vmath.Point{X: 3.2, Y: 3}, 1, 1) {
		t.Fatal("second swing missed")
	}
	if s.All[0].State != Dead {
		t.Errorf("state = %v, want Dead", s.All[0].State)
	}
	if s.Harm(vmath.Point{X: 3.2, Y: 3}, 1, 1) {
		t.Error("swing connected with a corpse")
	}
}

func TestWakeParsesZoneFile(t *testing.T) {
	dir := t.TempDir()
	lines := "1.5,2.5 a # a walker\n\n# comment line\n6.25,3 b\n"
	if err := os.WriteFile(filepath.Join(dir, "crypt.sprites"), []byte(lines), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Wake(dir, "crypt")
	if err != nil {
		t.Fatalf("Wake: %v", err)
	}
	if len(s.All) != 2 {
		t.Fatalf("len = %d, want 2", len(s.All))
	}
	if s.All[0].Where != (vmath.Point{X: 1.5, Y: 2.5}) || s.All[0].Ascii != 'a' {
		t.Errorf("first sprite = %+v", s.All[0])
	}
	if s.All[1].Ascii != 'b' {
		t.Errorf("second sprite glyph = %c", s.All[1].Ascii)
	}
	if s.All[0].State != Idle || s.All[0].Speed <= 0 {
		t.Errorf("spawn defaults wrong: %+v", s.All[0])
	}
}

func TestWakeMissingFileIsEmptyZone(t *testing.T) {
	s, err := Wake(t.TempDir(), "nowhere")
	if err != nil {
		t.Fatalf("Wake: %v", err)
	}
	if len(s.All) != 0 {
		t.Errorf("len = %d, want 0", len(s.All))
	}
}

func TestWakeRejectsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.sprites"), []byte("1.5 a\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Wake(dir, "bad"); err == nil {
		t.Error("malformed line accepted")
	}
}
