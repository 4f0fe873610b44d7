package analysis

import "math"

// Separation returns the Euclidean distance between two recorded
// trajectories at each step. Rows are per-step state vectors, as loaded
// from a run store. Trailing steps or columns present in only one run
// are ignored.
func Separation(a, b [][]float64) []float64 {
	steps := len(a)
	if len(b) < steps {
		steps = len(b)
	}
	if steps == 0 {
		return nil
	}

	out := make([]float64, steps)
	for i := 0; i < steps; i++ {
		cols := len(a[i])
		if len(b[i]) < cols {
			cols = len(b[i])
		}
		sum := 0.0
		for j := 0; j < cols; j++ {
			d := a[i][j] - b[i][j]
			sum += d * d
		}
		out[i] = math.Sqrt(sum)
	}
	return out
}

// DivergenceRate estimates the mean exponential growth rate of the
// separation between two runs, the stored-trajectory analogue of a
// largest Lyapunov exponent. A positive value means the runs drift apart;
// identical or non-diverging runs report 0.
//
// The rate is the average of ln(d[i]/d[i-1]) over consecutive steps with
// nonzero separation, divided by the step size.
func DivergenceRate(a, b [][]float64, dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	sep := Separation(a, b)

	sumLog := 0.0
	count := 0
	for i := 1; i < len(sep); i++ {
		if sep[i] > 0 && sep[i-1] > 0 {
			sumLog += math.Log(sep[i] / sep[i-1])
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}
