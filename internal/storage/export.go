package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/kinetic/internal/engine"
)

// ExportData is the JSON export shape: full frames including orientation,
// unlike the CSV store.
type ExportData struct {
	Scene       string             `json:"scene"`
	Dt          float64            `json:"dt"`
	Duration    float64            `json:"duration"`
	Seed        int64              `json:"seed"`
	Steps       int                `json:"steps"`
	EnergyDrift float64            `json:"energy_drift"`
	Frames      []engine.Frame     `json:"frames"`
	Metrics     map[string]float64 `json:"metrics"`
}

func ExportJSON(path string, scene string, cfg engine.Config, result *engine.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return exportTo(file, scene, cfg, result)
}

func ExportJSONStdout(scene string, cfg engine.Config, result *engine.Result) error {
	return exportTo(os.Stdout, scene, cfg, result)
}

func exportTo(w io.Writer, scene string, cfg engine.Config, result *engine.Result) error {
	data := ExportData{
		Scene:       scene,
		Dt:          cfg.Dt,
		Duration:    cfg.Duration,
		Seed:        cfg.Seed,
		Steps:       result.StepsTaken,
		EnergyDrift: result.EnergyDrift,
		Frames:      result.Frames,
		Metrics:     result.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
