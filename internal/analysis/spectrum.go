package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

// Spectrum computes the single-sided power spectrum of a uniformly sampled
// series. The mean is removed and a Hann window applied before the
// transform, so a constant offset does not swamp slow oscillations.
//
// It returns the magnitude per bin and the matching frequencies in cycles
// per time unit of dt. Fewer than two samples or a non-positive dt yield
// nil slices.
func Spectrum(samples []float64, dt float64) (power, freqs []float64) {
	n := len(samples)
	if n < 2 || dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil, nil
	}

	mean := stat.Mean(samples, nil)
	windowed := make([]float64, n)
	for i, v := range samples {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		windowed[i] = (v - mean) * w
	}

	spectrum := fft.FFTReal(windowed)

	half := n / 2
	power = make([]float64, half)
	freqs = make([]float64, half)
	for i := 0; i < half; i++ {
		power[i] = cmplx.Abs(spectrum[i])
		freqs[i] = float64(i) / (float64(n) * dt)
	}
	return power, freqs
}

// DominantPeriod returns the period of the strongest non-constant
// component of the series, in the time unit of dt. It returns 0 when the
// series is too short or has no oscillatory content.
func DominantPeriod(samples []float64, dt float64) float64 {
	power, freqs := Spectrum(samples, dt)
	if len(power) < 2 {
		return 0
	}

	// Bin 0 is the residual mean, not a period.
	peak := 1
	for i := 2; i < len(power); i++ {
		if power[i] > power[peak] {
			peak = i
		}
	}
	if power[peak] == 0 || freqs[peak] == 0 {
		return 0
	}
	return 1 / freqs[peak]
}
