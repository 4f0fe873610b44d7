package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/kinetic/internal/analysis"
	"github.com/san-kum/kinetic/internal/config"
	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/export"
	"github.com/san-kum/kinetic/internal/metrics"
	"github.com/san-kum/kinetic/internal/scene"
	"github.com/san-kum/kinetic/internal/storage"
	"github.com/san-kum/kinetic/internal/sweep"
	"github.com/san-kum/kinetic/internal/vecmath"
	"github.com/san-kum/kinetic/internal/viz"
	"github.com/san-kum/kinetic/internal/world"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	seed       int64
	configFile string
	preset     string
	outFile    string
	bound      float64
	// Series selection for plot, export, and analyze
	bodyIndex int
	coord     string
	// Export options
	svgOut   string
	metaOnly bool
	// Second run for divergence analysis
	against string
	// Sweep, tune, and trials options
	sweepParam  string
	tuneParams  []string
	sweepMin    float64
	sweepMax    float64
	sweepSteps  int
	sweepMetric string
	trialCount  int
	perturb     float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kinetic",
		Short: "constraint physics sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive scene picker when no command given
			return liveMenu()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".kinetic", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "run a scene and store the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScene,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (ms)")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (ms)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().Float64Var(&bound, "bound", 100, "stability bound (world units)")
	runCmd.Flags().StringVar(&outFile, "out", "", "also export full frames to a json file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list built-in scenes and presets",
		RunE:  listScenes,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot one body of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&bodyIndex, "body", 0, "body index")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().BoolVar(&metaOnly, "meta", false, "metadata only")
	exportCmd.Flags().StringVar(&svgOut, "svg", "", "write the xy trajectory to an svg file")
	exportCmd.Flags().IntVar(&bodyIndex, "body", 0, "body index for svg export")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "statistics and frequency analysis of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&bodyIndex, "body", 0, "body index")
	analyzeCmd.Flags().StringVar(&coord, "coord", "py", "coordinate (px, py, pz, vx, vy, vz)")
	analyzeCmd.Flags().StringVar(&against, "against", "", "second run id for trajectory divergence")

	liveCmd := &cobra.Command{
		Use:   "live [scene]",
		Short: "watch a scene live in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (ms)")
	liveCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (ms)")
	liveCmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	sweepCmd := &cobra.Command{
		Use:   "sweep [config.yaml]",
		Short: "sweep one parameter of a declarative scene",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "", "target as section.index.key, e.g. constraint.0.period")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "lowest value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0, "highest value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of values")
	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "energy_drift", "metric to tabulate")
	sweepCmd.Flags().Float64Var(&bound, "bound", 100, "stability bound (world units)")

	tuneCmd := &cobra.Command{
		Use:   "tune [config.yaml]",
		Short: "grid-search parameters for the lowest metric",
		Args:  cobra.ExactArgs(1),
		RunE:  runTune,
	}
	tuneCmd.Flags().StringArrayVar(&tuneParams, "param", nil, "candidates as section.index.key=v1,v2,... (repeatable)")
	tuneCmd.Flags().StringVar(&sweepMetric, "metric", "energy_drift", "metric to minimize")
	tuneCmd.Flags().Float64Var(&bound, "bound", 100, "stability bound (world units)")

	trialsCmd := &cobra.Command{
		Use:   "trials [config.yaml]",
		Short: "run perturbed copies of a scene and count survivors",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrials,
	}
	trialsCmd.Flags().IntVar(&trialCount, "count", 20, "number of trials")
	trialsCmd.Flags().Float64Var(&perturb, "perturb", 0.005, "velocity kick amplitude (units/ms)")
	trialsCmd.Flags().Int64Var(&seed, "seed", 1, "base random seed")
	trialsCmd.Flags().Float64Var(&bound, "bound", 100, "stability bound (world units)")

	rootCmd.AddCommand(runCmd, listCmd, scenesCmd, plotCmd, exportCmd, analyzeCmd, liveCmd, sweepCmd, tuneCmd, trialsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges defaults, preset, config file, and flags, in that
// order. The scene argument always wins over the config file's scene.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Scene = args[0]
	}

	if preset != "" {
		if len(args) == 0 {
			return nil, fmt.Errorf("--preset needs a scene argument")
		}
		p := config.GetPreset(args[0], preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(args[0]))
		}
		cp := *p
		cfg = &cp
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if len(args) > 0 {
			cfg.Scene = args[0]
		}
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, nil
}

// buildWorld assembles from the declarative body list when the config has
// one, otherwise from the scene registry.
func buildWorld(cfg *config.Config) (*world.World, error) {
	if len(cfg.Bodies) > 0 {
		return scene.FromConfig(cfg)
	}
	registry := scene.NewRegistry()
	sc, err := registry.Get(cfg.Scene)
	if err != nil {
		return nil, err
	}
	return sc.Build(cfg.Engine()), nil
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	w, err := buildWorld(cfg)
	if err != nil {
		return err
	}

	w.AddMetric(metrics.NewEnergy())
	w.AddMetric(metrics.NewEnergyDrift())
	w.AddMetric(metrics.NewMomentum())
	w.AddMetric(metrics.NewActivity())
	w.AddMetric(metrics.NewStability(bound))

	fmt.Printf("running %s...\n", cfg.Scene)
	start := time.Now()

	result, err := w.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Scene, cfg.Engine(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	for _, e := range result.Errors {
		fmt.Printf("stopped early: %v\n", e)
	}

	fmt.Println("\nmetrics:")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%.6f\n", name, result.Metrics[name])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if outFile != "" {
		if err := storage.ExportJSON(outFile, cfg.Scene, cfg.Engine(), result); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tDURATION\tDT\tBODIES\tSTEPS\tDRIFT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0fms\t%.2fms\t%d\t%d\t%.2e\n",
			run.ID,
			run.Scene,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Bodies,
			run.Steps,
			run.EnergyDrift,
		)
	}

	return w.Flush()
}

func listScenes(cmd *cobra.Command, args []string) error {
	registry := scene.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPRESETS\tDESCRIPTION")
	for _, s := range registry.List() {
		presets := config.ListPresets(s.Name)
		sort.Strings(presets)
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, strings.Join(presets, ","), s.Description)
	}
	return w.Flush()
}

// coordOffsets maps coordinate names to their column inside one body's
// six-column block in states.csv.
var coordOffsets = map[string]int{"px": 0, "py": 1, "pz": 2, "vx": 3, "vy": 4, "vz": 5}

func stateColumn(bodyIdx int, name string, cols int) (int, error) {
	off, ok := coordOffsets[name]
	if !ok {
		return 0, fmt.Errorf("unknown coordinate %q (px, py, pz, vx, vy, vz)", name)
	}
	col := bodyIdx*6 + off
	if bodyIdx < 0 || col >= cols {
		return 0, fmt.Errorf("body %d out of range, run has %d bodies", bodyIdx, cols/6)
	}
	return col, nil
}

func column(states [][]float64, idx int) []float64 {
	data := make([]float64, len(states))
	for i := range states {
		if idx < len(states[i]) {
			data[i] = states[i][idx]
		}
	}
	return data
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}
	if (bodyIndex+1)*6 > len(states[0]) || bodyIndex < 0 {
		return fmt.Errorf("body %d out of range, run has %d bodies", bodyIndex, len(states[0])/6)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scene: %s\n", meta.Scene)
	fmt.Printf("samples: %d\n\n", len(states))

	coords := []string{"px", "py", "pz", "vx", "vy", "vz"}
	for k, name := range coords {
		data := column(states, bodyIndex*6+k)

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("b%d %s", bodyIndex, name)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	if metaOnly {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if svgOut != "" {
		if len(states) == 0 || (bodyIndex+1)*6 > len(states[0]) || bodyIndex < 0 {
			return fmt.Errorf("body %d out of range", bodyIndex)
		}
		xs := column(states, bodyIndex*6)
		ys := column(states, bodyIndex*6+1)
		doc := export.TrajectorySVG(xs, ys, 800, 600, "")
		if doc == "" {
			return fmt.Errorf("not enough samples for an svg path")
		}
		if err := os.WriteFile(svgOut, []byte(doc), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
		return nil
	}

	// Rebuild frames from the CSV store. Orientation is not persisted
	// there, so exported bodies carry the identity rotation.
	result := &engine.Result{
		Frames:      make([]engine.Frame, len(states)),
		Metrics:     meta.Metrics,
		EnergyDrift: meta.EnergyDrift,
		StepsTaken:  meta.Steps,
	}
	for i, row := range states {
		frame := engine.Frame{Time: times[i]}
		for b := 0; b+6 <= len(row); b += 6 {
			frame.Bodies = append(frame.Bodies, engine.BodyState{
				Position:    vecmath.V3(row[b], row[b+1], row[b+2]),
				Velocity:    vecmath.V3(row[b+3], row[b+4], row[b+5]),
				Orientation: vecmath.QuatIdentity(),
			})
		}
		result.Frames[i] = frame
	}

	cfg := engine.Config{Dt: meta.Dt, Duration: meta.Duration, Seed: meta.Seed}
	return storage.ExportJSONStdout(meta.Scene, cfg, result)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) < 2 {
		return fmt.Errorf("not enough samples")
	}

	col, err := stateColumn(bodyIndex, coord, len(states[0]))
	if err != nil {
		return err
	}
	data := column(states, col)

	sampleDt := meta.Dt
	if sampleDt <= 0 && len(times) > 1 {
		sampleDt = times[1] - times[0]
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scene: %s\n", meta.Scene)
	fmt.Printf("series: b%d %s, %d samples\n\n", bodyIndex, coord, len(data))

	sum := analysis.Summarize(data)
	fmt.Printf("mean:   %12.6f\n", sum.Mean)
	fmt.Printf("stddev: %12.6f\n", sum.StdDev)
	fmt.Printf("min:    %12.6f\n", sum.Min)
	fmt.Printf("max:    %12.6f\n", sum.Max)
	fmt.Println()

	power, _ := analysis.Spectrum(data, sampleDt)
	if len(power) > 1 {
		graph := asciigraph.Plot(power[1:],
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if period := analysis.DominantPeriod(data, sampleDt); period > 0 {
		fmt.Printf("dominant period: %.1fms\n", period)
	} else {
		fmt.Println("no dominant period")
	}

	if against != "" {
		other, _, err := st.LoadStates(against)
		if err != nil {
			return err
		}
		sep := analysis.Separation(states, other)
		if len(sep) < 2 {
			return fmt.Errorf("runs share no overlapping samples")
		}

		fmt.Println()
		graph := asciigraph.Plot(sep,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("separation from %s", against)),
		)
		fmt.Println(graph)
		fmt.Printf("divergence rate: %.6f per ms\n", analysis.DivergenceRate(states, other, sampleDt))
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && preset == "" && configFile == "" {
		return liveMenu()
	}

	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	var build viz.Builder
	if len(cfg.Bodies) > 0 {
		// Surface assembly errors before the program takes the terminal.
		if _, err := scene.FromConfig(cfg); err != nil {
			return err
		}
		build = func(engine.Config) *world.World {
			w, err := scene.FromConfig(cfg)
			if err != nil {
				return world.New(cfg.Engine())
			}
			return w
		}
	} else {
		registry := scene.NewRegistry()
		sc, err := registry.Get(cfg.Scene)
		if err != nil {
			return err
		}
		build = viz.Builder(sc.Build)
	}

	return viz.Run(cfg.Scene, build, cfg.Engine())
}

func liveMenu() error {
	registry := scene.NewRegistry()
	scenes := registry.List()

	choices := make([]viz.Choice, 0, len(scenes))
	for _, s := range scenes {
		choices = append(choices, viz.Choice{
			Name:        s.Name,
			Description: s.Description,
			Config:      engine.DefaultConfig(),
			Build:       viz.Builder(s.Build),
		})
	}
	return viz.RunPicker(choices)
}

func runSweep(cmd *cobra.Command, args []string) error {
	if sweepParam == "" {
		return fmt.Errorf("--param is required")
	}
	target, err := sweep.ParseTarget(sweepParam)
	if err != nil {
		return err
	}
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}

	s := &sweep.Sweep{Base: cfg, Target: target, Min: sweepMin, Max: sweepMax, Steps: sweepSteps, Bound: bound}
	points, err := s.Run(context.Background())
	if err != nil {
		return err
	}

	if _, ok := points[0].Metrics[sweepMetric]; !ok {
		names := make([]string, 0, len(points[0].Metrics))
		for name := range points[0].Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown metric %q (available: %s)", sweepMetric, strings.Join(names, ", "))
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\t"+strings.ToUpper(sweepMetric)+"\tSTABLE")
	for _, p := range points {
		stable := "yes"
		if p.Unstable {
			stable = "no"
		}
		fmt.Fprintf(tw, "%.4f\t%.6f\t%s\n", p.Value, p.Metrics[sweepMetric], stable)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	series := make([]float64, 0, len(points))
	for _, p := range points {
		if !p.Unstable {
			series = append(series, p.Metrics[sweepMetric])
		}
	}
	if len(series) > 1 {
		fmt.Println()
		graph := asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("%s vs %s", sweepMetric, target)),
		)
		fmt.Println(graph)
	}
	return nil
}

func runTune(cmd *cobra.Command, args []string) error {
	if len(tuneParams) == 0 {
		return fmt.Errorf("at least one --param is required")
	}
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}

	targets := make([]sweep.Target, 0, len(tuneParams))
	values := make([][]float64, 0, len(tuneParams))
	for _, spec := range tuneParams {
		parts := strings.SplitN(spec, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("param %q must be section.index.key=v1,v2,...", spec)
		}
		target, err := sweep.ParseTarget(parts[0])
		if err != nil {
			return err
		}
		var vals []float64
		for _, raw := range strings.Split(parts[1], ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return fmt.Errorf("param %q: bad value %q", spec, raw)
			}
			vals = append(vals, v)
		}
		targets = append(targets, target)
		values = append(values, vals)
	}

	g := &sweep.Grid{Base: cfg, Targets: targets, Values: values, Metric: sweepMetric, Bound: bound}
	best, val, err := g.Search(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("best %s: %.6f\n", sweepMetric, val)
	for i, t := range targets {
		fmt.Printf("  %s = %v\n", t, best[i])
	}
	return nil
}

func runTrials(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}

	tr := &sweep.Trials{Base: cfg, Perturbation: perturb, Count: trialCount, Seed: seed, Bound: bound}
	results, stable, err := tr.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("stable: %d/%d\n", stable, len(results))

	drifts := make([]float64, len(results))
	for i, r := range results {
		drifts[i] = r.Drift
	}
	sum := analysis.Summarize(drifts)
	fmt.Printf("energy drift: mean %.4e, max %.4e\n", sum.Mean, sum.Max)

	if stable < len(results) {
		fmt.Println("\nunstable seeds:")
		for _, r := range results {
			if !r.Stable {
				fmt.Printf("  %d\n", r.Seed)
			}
		}
	}
	return nil
}
