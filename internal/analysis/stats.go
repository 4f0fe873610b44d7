package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics for one recorded series.
type Summary struct {
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
	Samples int
}

// Summarize computes summary statistics over a series. An empty series
// yields the zero Summary; a single sample has zero standard deviation.
func Summarize(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	s := Summary{
		Mean:    stat.Mean(samples, nil),
		Min:     floats.Min(samples),
		Max:     floats.Max(samples),
		Samples: len(samples),
	}
	if len(samples) > 1 {
		s.StdDev = stat.StdDev(samples, nil)
	}
	return s
}
