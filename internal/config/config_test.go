package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scene != "bounce" {
		t.Errorf("expected scene bounce, got %s", cfg.Scene)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if !cfg.ValidateState {
		t.Error("state validation should default on")
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")

	cfg := DefaultConfig()
	cfg.Scene = "rope"
	cfg.Duration = 2500
	cfg.Bodies = []BodyConfig{
		{Label: "weight", Shape: "circle", Radius: 0.5, Position: []float64{0, 6, 0}},
	}
	cfg.Constraints = []ConstraintConfig{
		{Kind: "distance", Anchor: []float64{0, 10, 0}, Targets: []string{"weight"},
			Params: map[string]float64{"length": 3}},
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got.Scene != "rope" || got.Duration != 2500 {
		t.Errorf("top-level fields lost: %+v", got)
	}
	if len(got.Bodies) != 1 || got.Bodies[0].Label != "weight" {
		t.Errorf("bodies lost: %+v", got.Bodies)
	}
	if len(got.Constraints) != 1 || got.Constraints[0].Params["length"] != 3 {
		t.Errorf("constraint params lost: %+v", got.Constraints)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := []byte("scene: orbit\nduration: 1234\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Scene != "orbit" || cfg.Duration != 1234 {
		t.Errorf("explicit fields not applied: %+v", cfg)
	}
	if cfg.Dt != DefaultDt {
		t.Errorf("omitted dt should keep the default, got %f", cfg.Dt)
	}
	if !cfg.ValidateState {
		t.Error("omitted validate_state should keep the default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestEngineConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RenormalizeEvery = 30

	ec := cfg.Engine()
	if ec.Dt != cfg.Dt || ec.Duration != cfg.Duration {
		t.Errorf("stepping options lost in conversion: %+v", ec)
	}
	if ec.RenormalizeEvery != 30 || !ec.ValidateState {
		t.Errorf("options lost in conversion: %+v", ec)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("bounce", "drop")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Bodies) == 0 {
		t.Error("preset should carry bodies")
	}
	if !cfg.ValidateState {
		t.Error("presets must keep state validation on")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("bounce", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "drop") != nil {
		t.Error("expected nil for nonexistent scene")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("rope")
	if len(presets) == 0 {
		t.Error("expected presets for rope")
	}

	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent scene")
	}
}

func TestPresetsAreWellFormed(t *testing.T) {
	for scene, variants := range Presets {
		for name, cfg := range variants {
			if cfg.Scene != scene {
				t.Errorf("%s/%s: scene label %q does not match key", scene, name, cfg.Scene)
			}
			if cfg.Dt <= 0 || cfg.Duration <= 0 {
				t.Errorf("%s/%s: bad stepping options", scene, name)
			}

			labels := make(map[string]bool)
			for _, b := range cfg.Bodies {
				labels[b.Label] = true
			}
			for _, f := range cfg.Forces {
				for _, target := range f.Targets {
					if !labels[target] {
						t.Errorf("%s/%s: force targets unknown body %q", scene, name, target)
					}
				}
			}
			for _, c := range cfg.Constraints {
				for _, target := range c.Targets {
					if !labels[target] {
						t.Errorf("%s/%s: constraint targets unknown body %q", scene, name, target)
					}
				}
				if c.Source != "" && !labels[c.Source] {
					t.Errorf("%s/%s: constraint source unknown body %q", scene, name, c.Source)
				}
			}
		}
	}
}
