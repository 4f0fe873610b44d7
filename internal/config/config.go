package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/kinetic/internal/engine"
)

const (
	DefaultDt           = 1000.0 / 60.0
	DefaultDuration     = 10000.0
	DefaultSleepEpsilon = 1e-7
	DefaultSleepDelay   = 60
)

// Config is the declarative description of a run: stepping options plus
// optional body, force, and constraint lists for custom scenes. Times are
// in milliseconds, matching the engine.
type Config struct {
	Scene            string             `yaml:"scene"`
	Dt               float64            `yaml:"dt"`
	Duration         float64            `yaml:"duration"`
	Seed             int64              `yaml:"seed"`
	SleepEpsilon     float64            `yaml:"sleep_epsilon"`
	SleepDelay       int                `yaml:"sleep_delay"`
	RenormalizeEvery int                `yaml:"renormalize_every"`
	ValidateState    bool               `yaml:"validate_state"`
	Bodies           []BodyConfig       `yaml:"bodies,omitempty"`
	Forces           []ForceConfig      `yaml:"forces,omitempty"`
	Constraints      []ConstraintConfig `yaml:"constraints,omitempty"`
}

// BodyConfig describes one body. A zero Mass means the default of 1;
// Immovable wins over any mass given.
type BodyConfig struct {
	Label     string    `yaml:"label"`
	Shape     string    `yaml:"shape"`
	Radius    float64   `yaml:"radius,omitempty"`
	Width     float64   `yaml:"width,omitempty"`
	Height    float64   `yaml:"height,omitempty"`
	Mass      float64   `yaml:"mass,omitempty"`
	Immovable bool      `yaml:"immovable,omitempty"`
	Position  []float64 `yaml:"position,omitempty"`
	Velocity  []float64 `yaml:"velocity,omitempty"`
}

// ForceConfig describes one generator. Params carries only the options the
// scene author set; anything absent keeps the generator's default.
type ForceConfig struct {
	Kind     string             `yaml:"kind"`
	Vector   []float64          `yaml:"vector,omitempty"`
	Function string             `yaml:"function,omitempty"`
	Targets  []string           `yaml:"targets,omitempty"`
	Params   map[string]float64 `yaml:"params,omitempty"`
}

// ConstraintConfig describes one constraint. Numeric options travel in
// Params and are applied through SetParam, so absent keys keep defaults and
// bad values fail with the constraint's own validation errors.
type ConstraintConfig struct {
	Kind      string             `yaml:"kind"`
	Source    string             `yaml:"source,omitempty"`
	Targets   []string           `yaml:"targets,omitempty"`
	Anchor    []float64          `yaml:"anchor,omitempty"`
	Normal    []float64          `yaml:"normal,omitempty"`
	Size      []float64          `yaml:"size,omitempty"`
	Sides     []string           `yaml:"sides,omitempty"`
	OnContact string             `yaml:"on_contact,omitempty"`
	Equation  string             `yaml:"equation,omitempty"`
	Params    map[string]float64 `yaml:"params,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene:         "bounce",
		Dt:            DefaultDt,
		Duration:      DefaultDuration,
		SleepEpsilon:  DefaultSleepEpsilon,
		SleepDelay:    DefaultSleepDelay,
		ValidateState: true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Engine converts the stepping options into the engine's run config.
func (c *Config) Engine() engine.Config {
	return engine.Config{
		Dt:               c.Dt,
		Duration:         c.Duration,
		Seed:             c.Seed,
		SleepEpsilon:     c.SleepEpsilon,
		SleepDelay:       c.SleepDelay,
		RenormalizeEvery: c.RenormalizeEvery,
		ValidateState:    c.ValidateState,
	}
}
