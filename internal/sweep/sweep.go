// Package sweep runs families of related simulations from one declarative
// config: a parameter swept over a range, a grid search over several
// parameters, and seeded Monte Carlo trials of a perturbed scene.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/san-kum/kinetic/internal/config"
	"github.com/san-kum/kinetic/internal/metrics"
	"github.com/san-kum/kinetic/internal/scene"
	"github.com/san-kum/kinetic/internal/vecmath"
	"github.com/san-kum/kinetic/internal/world"
)

const defaultBound = 100

var errDeclarativeOnly = errors.New("sweep: config has no inline bodies")

// Target addresses one numeric option inside a declarative config, such as
// the period of the first constraint.
type Target struct {
	Section string // "constraint" or "force"
	Index   int
	Key     string
}

func (t Target) String() string {
	return fmt.Sprintf("%s.%d.%s", t.Section, t.Index, t.Key)
}

// ParseTarget parses the section.index.key form used by the CLI, for
// example "constraint.0.period".
func ParseTarget(s string) (Target, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Target{}, fmt.Errorf("sweep: target %q must be section.index.key", s)
	}
	if parts[0] != "constraint" && parts[0] != "force" {
		return Target{}, fmt.Errorf("sweep: target %q: unknown section %q (constraint, force)", s, parts[0])
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil {
		return Target{}, fmt.Errorf("sweep: target %q: bad index: %w", s, err)
	}
	return Target{Section: parts[0], Index: idx, Key: parts[2]}, nil
}

// applyTarget returns a copy of cfg with the targeted option set. Only the
// touched section slice and params map are cloned; the rest is shared with
// the base, which callers must not mutate.
func applyTarget(cfg *config.Config, t Target, value float64) (*config.Config, error) {
	out := *cfg
	switch t.Section {
	case "constraint":
		if t.Index < 0 || t.Index >= len(cfg.Constraints) {
			return nil, fmt.Errorf("sweep: constraint index %d out of range", t.Index)
		}
		cs := make([]config.ConstraintConfig, len(cfg.Constraints))
		copy(cs, cfg.Constraints)
		c := cs[t.Index]
		c.Params = cloneParams(c.Params)
		c.Params[t.Key] = value
		cs[t.Index] = c
		out.Constraints = cs

	case "force":
		if t.Index < 0 || t.Index >= len(cfg.Forces) {
			return nil, fmt.Errorf("sweep: force index %d out of range", t.Index)
		}
		fs := make([]config.ForceConfig, len(cfg.Forces))
		copy(fs, cfg.Forces)
		f := fs[t.Index]
		f.Params = cloneParams(f.Params)
		f.Params[t.Key] = value
		fs[t.Index] = f
		out.Forces = fs

	default:
		return nil, fmt.Errorf("sweep: unknown section %q (constraint, force)", t.Section)
	}
	return &out, nil
}

func cloneParams(params map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(params)+1)
	for k, v := range params {
		out[k] = v
	}
	return out
}

func attachMetrics(w *world.World, bound float64) {
	w.AddMetric(metrics.NewEnergy())
	w.AddMetric(metrics.NewEnergyDrift())
	w.AddMetric(metrics.NewMomentum())
	w.AddMetric(metrics.NewActivity())
	w.AddMetric(metrics.NewStability(bound))
}

var knownMetrics = map[string]bool{
	"activity":     true,
	"energy":       true,
	"energy_drift": true,
	"momentum":     true,
	"stability":    true,
}

func orDefault(bound float64) float64 {
	if bound <= 0 {
		return defaultBound
	}
	return bound
}

// Sweep varies one target over [Min, Max] in Steps evenly spaced values
// and runs the scene once per value.
type Sweep struct {
	Base     *config.Config
	Target   Target
	Min, Max float64
	Steps    int
	Bound    float64
}

// Point is the outcome of one swept run. Unstable marks runs that stopped
// early on a state error; their metrics cover only the steps taken.
type Point struct {
	Value    float64
	Metrics  map[string]float64
	Unstable bool
}

func (s *Sweep) Run(ctx context.Context) ([]Point, error) {
	if len(s.Base.Bodies) == 0 {
		return nil, errDeclarativeOnly
	}
	if s.Steps < 1 {
		return nil, fmt.Errorf("sweep: need at least one step")
	}

	points := make([]Point, 0, s.Steps)
	for i := 0; i < s.Steps; i++ {
		value := s.Min
		if s.Steps > 1 {
			value = s.Min + float64(i)*(s.Max-s.Min)/float64(s.Steps-1)
		}

		cfg, err := applyTarget(s.Base, s.Target, value)
		if err != nil {
			return nil, err
		}
		w, err := scene.FromConfig(cfg)
		if err != nil {
			return nil, fmt.Errorf("sweep %s=%v: %w", s.Target, value, err)
		}
		attachMetrics(w, orDefault(s.Bound))

		result, err := w.Run(ctx)
		if err != nil {
			return points, err
		}
		points = append(points, Point{
			Value:    value,
			Metrics:  result.Metrics,
			Unstable: len(result.Errors) > 0,
		})
	}
	return points, nil
}

// Grid searches every combination of candidate values for the metric
// minimum. Combinations that fail to assemble or stop early are skipped.
type Grid struct {
	Base    *config.Config
	Targets []Target
	Values  [][]float64
	Metric  string
	Bound   float64
}

// Search returns the winning assignment, aligned with Targets, and its
// metric value.
func (g *Grid) Search(ctx context.Context) ([]float64, float64, error) {
	if len(g.Base.Bodies) == 0 {
		return nil, 0, errDeclarativeOnly
	}
	if len(g.Targets) == 0 || len(g.Targets) != len(g.Values) {
		return nil, 0, fmt.Errorf("sweep: targets and value lists must pair up")
	}
	if !knownMetrics[g.Metric] {
		return nil, 0, fmt.Errorf("sweep: unknown metric %q (activity, energy, energy_drift, momentum, stability)", g.Metric)
	}

	best := math.Inf(1)
	var bestAssign []float64
	g.search(ctx, 0, make([]float64, len(g.Targets)), &best, &bestAssign)

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if bestAssign == nil {
		return nil, 0, fmt.Errorf("sweep: no stable configuration found")
	}
	return bestAssign, best, nil
}

func (g *Grid) search(ctx context.Context, depth int, current []float64, best *float64, bestAssign *[]float64) {
	if depth == len(g.Targets) {
		cfg := g.Base
		for i, t := range g.Targets {
			next, err := applyTarget(cfg, t, current[i])
			if err != nil {
				return
			}
			cfg = next
		}

		w, err := scene.FromConfig(cfg)
		if err != nil {
			return
		}
		attachMetrics(w, orDefault(g.Bound))

		result, err := w.Run(ctx)
		if err != nil || len(result.Errors) > 0 {
			return
		}
		if val := result.Metrics[g.Metric]; val < *best {
			*best = val
			*bestAssign = append([]float64(nil), current...)
		}
		return
	}

	for _, v := range g.Values[depth] {
		current[depth] = v
		g.search(ctx, depth+1, current, best, bestAssign)
	}
}

// Trials runs Count copies of the scene in parallel, each with a seeded
// random velocity kick, and reports which stayed stable.
type Trials struct {
	Base         *config.Config
	Perturbation float64
	Count        int
	Seed         int64
	Bound        float64
}

// TrialResult is one perturbed run. Stable means the run finished without
// state errors and no body ever left the bound.
type TrialResult struct {
	Seed   int64
	Drift  float64
	Stable bool
}

func (t *Trials) Run(ctx context.Context) ([]TrialResult, int, error) {
	if len(t.Base.Bodies) == 0 {
		return nil, 0, errDeclarativeOnly
	}
	if t.Count < 1 {
		return nil, 0, fmt.Errorf("sweep: need at least one trial")
	}
	// Surface assembly errors once, before the ensemble fans out.
	if _, err := scene.FromConfig(t.Base); err != nil {
		return nil, 0, err
	}

	build := func(seed int64) *world.World {
		w, err := scene.FromConfig(t.Base)
		if err != nil {
			return world.New(t.Base.Engine())
		}
		rng := rand.New(rand.NewSource(seed))
		for _, b := range w.Bodies() {
			if b.IsImmovable() {
				continue
			}
			kick := vecmath.V3(
				(rng.Float64()-0.5)*2*t.Perturbation,
				(rng.Float64()-0.5)*2*t.Perturbation,
				(rng.Float64()-0.5)*2*t.Perturbation,
			)
			b.SetVelocity(b.Velocity().Add(kick))
		}
		attachMetrics(w, orDefault(t.Bound))
		return w
	}

	ensemble := world.NewEnsemble(build, t.Count, t.Seed)
	results, err := ensemble.Run(ctx)
	if err != nil {
		return nil, 0, err
	}

	out := make([]TrialResult, len(results))
	stable := 0
	for i, r := range results {
		ok := len(r.Errors) == 0 && r.Metrics["stability"] == 1.0
		if ok {
			stable++
		}
		out[i] = TrialResult{
			Seed:   t.Seed + int64(i),
			Drift:  r.EnergyDrift,
			Stable: ok,
		}
	}
	return out, stable, nil
}
