// Package config loads the process-wide plotting defaults.
//
// Settings are layered, lowest priority first: built-in defaults, an
// optional debugplotter.yaml in the working directory, then PLOT_*
// environment variables (PLOT_DIR, PLOT_LIVE_FPS, ...). Per-call-site
// options passed to plot.Plot always win over anything loaded here.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PLOT_"

// Config holds the process-wide plotting defaults.
type Config struct {
	// Disabled turns every Plot call and the teardown flush into a no-op.
	Disabled bool `koanf:"disabled"`
	// Dir is the directory chart files are written to when a call site
	// does not override the output path.
	Dir string `koanf:"dir"`
	// Width and Height are the default chart dimensions in pixels.
	Width  int `koanf:"width"`
	Height int `koanf:"height"`
	// LiveFPS caps how many times per second a live chart is redrawn.
	LiveFPS int `koanf:"live_fps"`
	// Log is the minimum log level (trace, debug, info, warn, error).
	Log string `koanf:"log"`
}

// Default returns the built-in configuration used when no file or
// environment overrides are present.
func Default() Config {
	return Config{
		Dir:     "plots",
		Width:   640,
		Height:  480,
		LiveFPS: 30,
		Log:     "info",
	}
}

// findConfigFile locates the config file to use.
// Priority: explicit path > debugplotter.yaml > debugplotter.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"debugplotter.yaml", "debugplotter.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds the effective configuration from defaults, an optional
// config file and PLOT_* environment variables, in that order.
func Load() (Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file path. An empty path
// falls back to the working-directory search.
func LoadFile(path string) (Config, error) {
	k := koanf.New(".")

	def := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"disabled": def.Disabled,
		"dir":      def.Dir,
		"width":    def.Width,
		"height":   def.Height,
		"live_fps": def.LiveFPS,
		"log":      def.Log,
	}, "."), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile := findConfigFile(path); cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// Transform: PLOT_LIVE_FPS -> live_fps
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize clamps nonsense values back to the defaults so a bad file
// or env var cannot disable rendering outright.
func (c *Config) normalize() {
	def := Default()
	if c.Dir == "" {
		c.Dir = def.Dir
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.LiveFPS <= 0 {
		c.LiveFPS = def.LiveFPS
	}
	if c.Log == "" {
		c.Log = def.Log
	}
}
