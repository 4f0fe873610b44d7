package metrics

import (
	"github.com/san-kum/kinetic/internal/body"
)

// Stability reports the fraction of observations in which every body stayed
// inside a positional bound. A value of 1.0 means nothing escaped.
type Stability struct {
	name       string
	bound      float64
	violations int
	samples    int
}

func NewStability(bound float64) *Stability {
	return &Stability{name: "stability", bound: bound}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(bodies []*body.RigidBody, t float64) {
	s.samples++
	for _, b := range bodies {
		if b.Position().Norm() > s.bound {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
