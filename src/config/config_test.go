package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	def := Default()
	if def.Disabled {
		t.Errorf("Default().Disabled = true, want false")
	}
	if def.Dir != "plots" {
		t.Errorf("Default().Dir = %q, want %q", def.Dir, "plots")
	}
	if def.Width != 640 || def.Height != 480 {
		t.Errorf("Default() size = %dx%d, want 640x480", def.Width, def.Height)
	}
	if def.LiveFPS != 30 {
		t.Errorf("Default().LiveFPS = %d, want 30", def.LiveFPS)
	}
	if def.Log != "info" {
		t.Errorf("Default().Log = %q, want %q", def.Log, "info")
	}
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "debugplotter.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, "dir: charts\nwidth: 800\nlive_fps: 10\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Dir != "charts" {
		t.Errorf("Dir = %q, want %q", cfg.Dir, "charts")
	}
	if cfg.Width != 800 {
		t.Errorf("Width = %d, want 800", cfg.Width)
	}
	if cfg.LiveFPS != 10 {
		t.Errorf("LiveFPS = %d, want 10", cfg.LiveFPS)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Height != 480 {
		t.Errorf("Height = %d, want default 480", cfg.Height)
	}
	if cfg.Log != "info" {
		t.Errorf("Log = %q, want default %q", cfg.Log, "info")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PLOT_DIR", "envdir")
	t.Setenv("PLOT_LIVE_FPS", "5")
	t.Setenv("PLOT_DISABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dir != "envdir" {
		t.Errorf("Dir = %q, want %q", cfg.Dir, "envdir")
	}
	if cfg.LiveFPS != 5 {
		t.Errorf("LiveFPS = %d, want 5", cfg.LiveFPS)
	}
	if !cfg.Disabled {
		t.Errorf("Disabled = false, want true")
	}
}

func TestEnvBeatsFile(t *testing.T) {
	path := writeConfigFile(t, "dir: filedir\nheight: 300\n")
	t.Setenv("PLOT_DIR", "envdir")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Dir != "envdir" {
		t.Errorf("Dir = %q, want env override %q", cfg.Dir, "envdir")
	}
	if cfg.Height != 300 {
		t.Errorf("Height = %d, want file value 300", cfg.Height)
	}
}

func TestLoadClampsBadValues(t *testing.T) {
	path := writeConfigFile(t, "width: -10\nheight: 0\nlive_fps: -1\ndir: \"\"\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	def := Default()
	if cfg.Width != def.Width || cfg.Height != def.Height {
		t.Errorf("size = %dx%d, want defaults %dx%d", cfg.Width, cfg.Height, def.Width, def.Height)
	}
	if cfg.LiveFPS != def.LiveFPS {
		t.Errorf("LiveFPS = %d, want default %d", cfg.LiveFPS, def.LiveFPS)
	}
	if cfg.Dir != def.Dir {
		t.Errorf("Dir = %q, want default %q", cfg.Dir, def.Dir)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load without config file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}
