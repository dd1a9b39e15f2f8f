package config

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is everything tunable from outside the binary. Flags
// override whatever the yaml file set
type Config struct {
	XRes    int    `yaml:"xres"`
	FPS     int    `yaml:"fps"`
	Threads int    `yaml:"threads"`
	Zones   string `yaml:"zones"`
	Art     string `yaml:"art"`
	Zone    string `yaml:"zone"`
	Audio   bool   `yaml:"audio"`
	Aura    float64 `yaml:"aura"`

	// Keys maps action names to single-character bindings. Actions:
	// forward backward strafel strafer turnl turnr lookup lookdown
	// rise sink attack quit
	Keys map[string]string `yaml:"keys"`
}

// Default is the configuration of record; the yaml file and flags
// both start from here
func Default() Config {
	return Config{
		XRes:    640,
		FPS:     60,
		Threads: runtime.NumCPU(),
		Zones:   "zones",
		Art:     "art",
		Zone:    "start",
		Audio:   true,
		Aura:    8,
	}
}

// YRes derives the vertical resolution at the classic 16:9, kept
// even so the half-block presenter pairs every raster row
func (c Config) YRes() int {
	y := c.XRes * 9 / 16
	if y%2 != 0 {
		y++
	}
	return y
}

// Load overlays a yaml file onto the defaults. A missing file is
// not an error - the defaults simply stand
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// validate rejects values the engine cannot run with
func (c Config) validate() error {
	if c.XRes < 64 {
		return errors.Errorf("xres %d too small, want at least 64", c.XRes)
	}
	if c.FPS < 1 {
		return errors.Errorf("fps %d, want at least 1", c.FPS)
	}
	if c.Threads < 1 {
		return errors.Errorf("threads %d, want at least 1", c.Threads)
	}
	if c.Aura < 1 {
		return errors.Errorf("aura %.1f, want at least 1", c.Aura)
	}
	for action, key := range c.Keys {
		if len([]rune(key)) != 1 {
			return errors.Errorf("key for %s is %q, want one character", action, key)
		}
	}
	return nil
}
