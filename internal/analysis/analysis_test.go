package analysis

import (
	"math"
	"testing"
)

func TestSpectrumFindsOscillation(t *testing.T) {
	// 20 full periods of a 100ms sine sampled every 10ms.
	const (
		dt     = 10.0
		period = 100.0
		n      = 200
	)
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = 3.0 + math.Sin(2*math.Pi*float64(i)*dt/period)
	}

	power, freqs := Spectrum(samples, dt)
	if len(power) != n/2 || len(freqs) != n/2 {
		t.Fatalf("got %d power and %d freq bins, want %d", len(power), len(freqs), n/2)
	}

	peak := 0
	for i := range power {
		if power[i] > power[peak] {
			peak = i
		}
	}
	wantFreq := 1.0 / period
	if math.Abs(freqs[peak]-wantFreq) > 1e-12 {
		t.Errorf("peak at %.6f cycles/ms, want %.6f", freqs[peak], wantFreq)
	}

	got := DominantPeriod(samples, dt)
	if math.Abs(got-period) > 1e-9 {
		t.Errorf("DominantPeriod = %v, want %v", got, period)
	}
}

func TestSpectrumRemovesOffset(t *testing.T) {
	// A large constant offset must not outweigh the oscillation.
	samples := make([]float64, 128)
	for i := range samples {
		samples[i] = 500.0 + 0.01*math.Sin(2*math.Pi*float64(i)/16.0)
	}
	got := DominantPeriod(samples, 1.0)
	if math.Abs(got-16.0) > 1.0 {
		t.Errorf("DominantPeriod = %v, want 16", got)
	}
}

func TestSpectrumDegenerate(t *testing.T) {
	cases := []struct {
		name    string
		samples []float64
		dt      float64
	}{
		{"empty", nil, 1.0},
		{"single", []float64{4.2}, 1.0},
		{"zero dt", []float64{1, 2, 3, 4}, 0},
		{"negative dt", []float64{1, 2, 3, 4}, -1},
		{"nan dt", []float64{1, 2, 3, 4}, math.NaN()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			power, freqs := Spectrum(tc.samples, tc.dt)
			if power != nil || freqs != nil {
				t.Errorf("Spectrum returned %d/%d bins, want nil", len(power), len(freqs))
			}
			if p := DominantPeriod(tc.samples, tc.dt); p != 0 {
				t.Errorf("DominantPeriod = %v, want 0", p)
			}
		})
	}
}

func TestDominantPeriodFlatSeries(t *testing.T) {
	samples := make([]float64, 64)
	for i := range samples {
		samples[i] = 7.0
	}
	if p := DominantPeriod(samples, 1.0); p != 0 {
		t.Errorf("DominantPeriod of constant series = %v, want 0", p)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 4})
	if s.Samples != 4 {
		t.Fatalf("Samples = %d, want 4", s.Samples)
	}
	if math.Abs(s.Mean-2.5) > 1e-12 {
		t.Errorf("Mean = %v, want 2.5", s.Mean)
	}
	wantStd := math.Sqrt(5.0 / 3.0)
	if math.Abs(s.StdDev-wantStd) > 1e-12 {
		t.Errorf("StdDev = %v, want %v", s.StdDev, wantStd)
	}
	if s.Min != 1 || s.Max != 4 {
		t.Errorf("Min/Max = %v/%v, want 1/4", s.Min, s.Max)
	}
}

func TestSummarizeDegenerate(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero value", s)
	}

	s := Summarize([]float64{9})
	if s.Mean != 9 || s.StdDev != 0 || s.Min != 9 || s.Max != 9 || s.Samples != 1 {
		t.Errorf("Summarize single sample = %+v", s)
	}
}

func TestSeparation(t *testing.T) {
	a := [][]float64{{0, 0}, {1, 0}, {2, 0}}
	b := [][]float64{{0, 0}, {1, 1}, {2, 2}}

	sep := Separation(a, b)
	want := []float64{0, 1, 2}
	if len(sep) != len(want) {
		t.Fatalf("got %d steps, want %d", len(sep), len(want))
	}
	for i := range want {
		if math.Abs(sep[i]-want[i]) > 1e-12 {
			t.Errorf("sep[%d] = %v, want %v", i, sep[i], want[i])
		}
	}
}

func TestSeparationRagged(t *testing.T) {
	// Extra steps and columns on one side are ignored.
	a := [][]float64{{1, 0, 99}, {2, 0, 99}, {3, 0, 99}}
	b := [][]float64{{0, 0}, {0, 0}}

	sep := Separation(a, b)
	if len(sep) != 2 {
		t.Fatalf("got %d steps, want 2", len(sep))
	}
	if math.Abs(sep[1]-2) > 1e-12 {
		t.Errorf("sep[1] = %v, want 2", sep[1])
	}
	if Separation(nil, b) != nil {
		t.Error("Separation(nil, b) should be nil")
	}
}

func TestDivergenceRate(t *testing.T) {
	// Exponential drift d(t) = d0 * exp(lambda*t) recovers lambda exactly.
	const (
		lambda = 0.02
		dt     = 10.0
		d0     = 1e-6
	)
	var a, b [][]float64
	for i := 0; i < 50; i++ {
		tm := float64(i) * dt
		a = append(a, []float64{0, 0})
		b = append(b, []float64{d0 * math.Exp(lambda*tm), 0})
	}

	got := DivergenceRate(a, b, dt)
	if math.Abs(got-lambda) > 1e-9 {
		t.Errorf("DivergenceRate = %v, want %v", got, lambda)
	}
}

func TestDivergenceRateIdenticalRuns(t *testing.T) {
	a := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	if r := DivergenceRate(a, a, 10); r != 0 {
		t.Errorf("DivergenceRate of identical runs = %v, want 0", r)
	}
	if r := DivergenceRate(a, a, 0); r != 0 {
		t.Errorf("DivergenceRate with zero dt = %v, want 0", r)
	}
}
