package config

// Presets holds tuned variants of the built-in scenes, keyed by scene name
// then variant. Every preset is a full declarative config; the body labels
// are local to each entry.
var Presets = map[string]map[string]*Config{
	"bounce": {
		"drop": {
			Scene: "bounce", Dt: DefaultDt, Duration: DefaultDuration,
			SleepEpsilon: DefaultSleepEpsilon, SleepDelay: DefaultSleepDelay, ValidateState: true,
			Bodies: []BodyConfig{
				{Label: "ball", Shape: "circle", Radius: 1, Position: []float64{0, 8, 0}},
			},
			Forces: []ForceConfig{
				{Kind: "force", Vector: []float64{0, -0.0005, 0}, Targets: []string{"ball"}},
			},
			Constraints: []ConstraintConfig{
				{Kind: "walls", Size: []float64{20, 20, 20}, Sides: []string{"bottom"}, Targets: []string{"ball"}},
			},
		},
		"box": {
			Scene: "bounce", Dt: DefaultDt, Duration: DefaultDuration,
			SleepEpsilon: DefaultSleepEpsilon, SleepDelay: DefaultSleepDelay, ValidateState: true,
			Bodies: []BodyConfig{
				{Label: "ball", Shape: "circle", Radius: 1, Velocity: []float64{0.01, 0.013, 0.007}},
				{Label: "ball2", Shape: "circle", Radius: 1, Position: []float64{4, 2, 0},
					Velocity: []float64{-0.008, 0.01, -0.005}},
			},
			Constraints: []ConstraintConfig{
				{Kind: "collision", Source: "ball", Targets: []string{"ball2"},
					Params: map[string]float64{"restitution": 0.9}},
				{Kind: "walls", Size: []float64{20, 20, 20}, Targets: []string{"ball", "ball2"},
					Params: map[string]float64{"restitution": 1.0}},
			},
		},
	},
	"rope": {
		"swing": {
			Scene: "rope", Dt: DefaultDt, Duration: DefaultDuration,
			SleepEpsilon: DefaultSleepEpsilon, SleepDelay: DefaultSleepDelay, ValidateState: true,
			Bodies: []BodyConfig{
				{Label: "b1", Shape: "circle", Radius: 0.5, Position: []float64{3, 10, 0}},
				{Label: "b2", Shape: "circle", Radius: 0.5, Position: []float64{6, 10, 0}},
				{Label: "b3", Shape: "circle", Radius: 0.5, Position: []float64{9, 10, 0}},
			},
			Forces: []ForceConfig{
				{Kind: "force", Vector: []float64{0, -0.0005, 0}},
			},
			Constraints: []ConstraintConfig{
				{Kind: "distance", Anchor: []float64{0, 10, 0}, Targets: []string{"b1"},
					Params: map[string]float64{"length": 3}},
				{Kind: "distance", Source: "b1", Targets: []string{"b2"},
					Params: map[string]float64{"length": 3}},
				{Kind: "distance", Source: "b2", Targets: []string{"b3"},
					Params: map[string]float64{"length": 3}},
			},
		},
		"slack": {
			Scene: "rope", Dt: DefaultDt, Duration: DefaultDuration,
			SleepEpsilon: DefaultSleepEpsilon, SleepDelay: DefaultSleepDelay, ValidateState: true,
			Bodies: []BodyConfig{
				{Label: "weight", Shape: "circle", Radius: 0.5, Position: []float64{0, 6, 0}},
			},
			Forces: []ForceConfig{
				{Kind: "force", Vector: []float64{0, -0.0005, 0}, Targets: []string{"weight"}},
			},
			Constraints: []ConstraintConfig{
				{Kind: "distance", Anchor: []float64{0, 10, 0}, Targets: []string{"weight"},
					Params: map[string]float64{"length": 3, "minLength": 3}},
			},
		},
	},
	"snapgrid": {
		"grid": {
			Scene: "snapgrid", Dt: DefaultDt, Duration: DefaultDuration,
			SleepEpsilon: DefaultSleepEpsilon, SleepDelay: DefaultSleepDelay, ValidateState: true,
			Bodies: []BodyConfig{
				{Label: "g1", Shape: "circle", Radius: 0.5, Position: []float64{-4, 0, 0}, Velocity: []float64{0.005, 0, 0}},
				{Label: "g2", Shape: "circle", Radius: 0.5, Position: []float64{0, 0, 0}, Velocity: []float64{0, 0.005, 0}},
				{Label: "g3", Shape: "circle", Radius: 0.5, Position: []float64{4, 0, 0}, Velocity: []float64{-0.005, 0, 0}},
			},
			Forces: []ForceConfig{
				{Kind: "drag", Params: map[string]float64{"strength": 0.002}},
			},
			Constraints: []ConstraintConfig{
				{Kind: "snap", Anchor: []float64{-4, 0, 0}, Targets: []string{"g1"},
					Params: map[string]float64{"period": 600, "dampingRatio": 0.3}},
				{Kind: "snap", Anchor: []float64{0, 0, 0}, Targets: []string{"g2"},
					Params: map[string]float64{"period": 600, "dampingRatio": 0.3}},
				{Kind: "snap", Anchor: []float64{4, 0, 0}, Targets: []string{"g3"},
					Params: map[string]float64{"period": 600, "dampingRatio": 0.3}},
			},
		},
		"stiff": {
			Scene: "snapgrid", Dt: DefaultDt, Duration: 5000,
			SleepEpsilon: DefaultSleepEpsilon, SleepDelay: DefaultSleepDelay, ValidateState: true,
			Bodies: []BodyConfig{
				{Label: "g1", Shape: "circle", Radius: 0.5, Velocity: []float64{0.01, 0, 0}},
			},
			Constraints: []ConstraintConfig{
				{Kind: "snap", Anchor: []float64{0, 0, 0}, Targets: []string{"g1"},
					Params: map[string]float64{"period": 150, "dampingRatio": 0.9}},
			},
		},
	},
	"bead": {
		"ring": {
			Scene: "bead", Dt: DefaultDt, Duration: DefaultDuration,
			SleepEpsilon: DefaultSleepEpsilon, SleepDelay: DefaultSleepDelay, ValidateState: true,
			Bodies: []BodyConfig{
				{Label: "bead", Shape: "circle", Radius: 0.3, Position: []float64{8, 0, 0}, Velocity: []float64{0, 0.01, 0}},
			},
			Forces: []ForceConfig{
				{Kind: "force", Vector: []float64{0, -0.0005, 0}, Targets: []string{"bead"}},
			},
			Constraints: []ConstraintConfig{
				{Kind: "curve", Equation: "circle:8", Targets: []string{"bead"}},
			},
		},
		"shell": {
			Scene: "bead", Dt: DefaultDt, Duration: DefaultDuration,
			SleepEpsilon: DefaultSleepEpsilon, SleepDelay: DefaultSleepDelay, ValidateState: true,
			Bodies: []BodyConfig{
				{Label: "bead", Shape: "circle", Radius: 0.3, Position: []float64{8, 0, 0}, Velocity: []float64{0, 0.01, 0.004}},
			},
			Constraints: []ConstraintConfig{
				{Kind: "surface", Equation: "sphere:8", Targets: []string{"bead"}},
			},
		},
	},
	"orbit": {
		"circular": {
			Scene: "orbit", Dt: DefaultDt, Duration: DefaultDuration,
			SleepEpsilon: DefaultSleepEpsilon, SleepDelay: DefaultSleepDelay, ValidateState: true,
			Bodies: []BodyConfig{
				{Label: "moon", Shape: "circle", Radius: 0.5, Position: []float64{8, 0, 0}, Velocity: []float64{0, 0.01, 0}},
			},
			Constraints: []ConstraintConfig{
				{Kind: "distance", Anchor: []float64{0, 0, 0}, Targets: []string{"moon"},
					Params: map[string]float64{"length": 8}},
			},
		},
		"fast": {
			Scene: "orbit", Dt: DefaultDt, Duration: 5000,
			SleepEpsilon: DefaultSleepEpsilon, SleepDelay: DefaultSleepDelay, ValidateState: true,
			Bodies: []BodyConfig{
				{Label: "moon", Shape: "circle", Radius: 0.5, Position: []float64{8, 0, 0}, Velocity: []float64{0, 0.02, 0}},
			},
			Constraints: []ConstraintConfig{
				{Kind: "distance", Anchor: []float64{0, 0, 0}, Targets: []string{"moon"},
					Params: map[string]float64{"length": 8}},
			},
		},
	},
}

func GetPreset(scene, preset string) *Config {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	cfg, ok := scenePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scene string) []string {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenePresets))
	for name := range scenePresets {
		names = append(names, name)
	}
	return names
}
