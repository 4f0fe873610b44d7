package scene

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/kinetic/internal/engine"
)

func shortConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Dt = 10
	cfg.Duration = 500
	return cfg
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()

	s, err := r.Get("bounce")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if s.Name != "bounce" || s.Build == nil {
		t.Errorf("malformed scene entry: %+v", s)
	}

	if _, err := r.Get("nonexistent"); err == nil {
		t.Error("expected error for unknown scene")
	}
}

func TestRegistryList(t *testing.T) {
	scenes := NewRegistry().List()

	want := []string{"bead", "bounce", "orbit", "rope", "snapgrid"}
	if len(scenes) != len(want) {
		t.Fatalf("expected %d scenes, got %d", len(want), len(scenes))
	}
	for i, s := range scenes {
		if s.Name != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], s.Name)
		}
		if s.Description == "" {
			t.Errorf("scene %s has no description", s.Name)
		}
	}
}

func TestSceneBuildersRun(t *testing.T) {
	for _, s := range NewRegistry().List() {
		t.Run(s.Name, func(t *testing.T) {
			w := s.Build(shortConfig())
			if len(w.Bodies()) == 0 {
				t.Fatal("scene has no bodies")
			}

			result, err := w.Run(context.Background())
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if len(result.Errors) != 0 {
				t.Fatalf("run recorded errors: %v", result.Errors)
			}
			if len(result.Frames) < 2 {
				t.Error("run produced no motion frames")
			}
		})
	}
}

func TestOrbitHoldsRadius(t *testing.T) {
	w := Orbit(shortConfig())
	moon := w.Bodies()[0]

	for i := 0; i < 300; i++ {
		if err := w.Step(10); err != nil {
			t.Fatalf("step failed: %v", err)
		}
		if r := moon.Position().Norm(); math.Abs(r-8) > 0.2 {
			t.Fatalf("step %d: orbit radius drifted to %v", i, r)
		}
	}
}

func TestSnapGridSeeded(t *testing.T) {
	cfg := shortConfig()
	cfg.Seed = 1

	w1 := SnapGrid(cfg)
	w2 := SnapGrid(cfg)
	for i := 0; i < 50; i++ {
		if err := w1.Step(10); err != nil {
			t.Fatal(err)
		}
		if err := w2.Step(10); err != nil {
			t.Fatal(err)
		}
	}
	for i := range w1.Bodies() {
		if w1.Bodies()[i].Position() != w2.Bodies()[i].Position() {
			t.Fatalf("same seed diverged at body %d", i)
		}
	}

	cfg.Seed = 2
	w3 := SnapGrid(cfg)
	for i := 0; i < 50; i++ {
		if err := w3.Step(10); err != nil {
			t.Fatal(err)
		}
	}
	same := true
	for i := range w1.Bodies() {
		if w1.Bodies()[i].Position() != w3.Bodies()[i].Position() {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical grids")
	}
}

func TestParseEquation(t *testing.T) {
	tests := []struct {
		spec    string
		x, y, z float64
		want    float64
	}{
		{"plane", 1, 2, 3, 3},
		{"circle:8", 8, 0, 0, 0},
		{"circle:8", 0, 0, 0, -64},
		{"sphere:2", 0, 0, 2, 0},
		{"sphere:1", 2, 0, 0, 3},
	}

	for _, tt := range tests {
		fn, err := ParseEquation(tt.spec)
		if err != nil {
			t.Fatalf("ParseEquation(%q) failed: %v", tt.spec, err)
		}
		if got := fn(tt.x, tt.y, tt.z); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s at (%v,%v,%v): expected %v, got %v", tt.spec, tt.x, tt.y, tt.z, tt.want, got)
		}
	}

	for _, bad := range []string{"torus", "circle:abc", ""} {
		if _, err := ParseEquation(bad); err == nil {
			t.Errorf("ParseEquation(%q) should fail", bad)
		}
	}
}
