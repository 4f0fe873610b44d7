package metrics

import (
	"github.com/san-kum/kinetic/internal/body"
)

// Activity reports the mean summed speed per observation, a cheap gauge of
// how much a scene is still moving. Useful when tuning sleep thresholds.
type Activity struct {
	name    string
	sum     float64
	samples int
}

func NewActivity() *Activity {
	return &Activity{name: "activity"}
}

func (a *Activity) Name() string {
	return a.name
}

func (a *Activity) Observe(bodies []*body.RigidBody, t float64) {
	for _, b := range bodies {
		a.sum += b.Velocity().Norm()
	}
	a.samples++
}

func (a *Activity) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.sum / float64(a.samples)
}

func (a *Activity) Reset() {
	a.sum = 0
	a.samples = 0
}
