package config

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Lambda != -1.0 {
		t.Errorf("expected lambda -1, got %f", cfg.Lambda)
	}
	if cfg.T <= 0 {
		t.Error("terminal time should be positive")
	}
	if cfg.Samples < 2 {
		t.Error("samples should allow a plot grid")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("decay")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Theta0 != 0.2 {
		t.Errorf("expected theta0 0.2, got %f", cfg.Theta0)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")

	cfg := &Config{Lambda: 0.5, T: 2.0, XT: 3.0, Theta0: 0.1, Theta1: 1.5, Samples: 100}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Lambda != 0.5 || loaded.T != 2.0 || loaded.XT != 3.0 {
		t.Errorf("problem params not preserved: %+v", loaded)
	}
	if loaded.Theta0 != 0.1 || loaded.Theta1 != 1.5 || loaded.Samples != 100 {
		t.Errorf("guesses not preserved: %+v", loaded)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_ClampsSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	if err := Save(path, &Config{Lambda: -1, T: 5, XT: 1, Samples: 1}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Samples != DefaultSamples {
		t.Errorf("expected samples clamped to %d, got %d", DefaultSamples, loaded.Samples)
	}
}

func TestProblem(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.Problem()

	if p.Lambda != cfg.Lambda || p.T != cfg.T || p.XT != cfg.XT {
		t.Errorf("problem does not match config: %+v", p)
	}

	// default scenario is the worked example: theta* = e^5
	if math.Abs(p.ExactTheta()-math.Exp(5)) > 1e-9 {
		t.Errorf("expected theta* = e^5, got %f", p.ExactTheta())
	}
}
