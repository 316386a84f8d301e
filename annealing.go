// Simulated-annealing cooling schedules and the Metropolis acceptance
// criterion, generalized from a hardcoded minimize sense to either
// ObjectiveSense.
//
// Reference:
// Kirkpatrick, S., Gelatt, C. D., & Vecchi, M. P. (1983). Optimization by
// Simulated Annealing. Science, 220(4598), 671-680.
package mh

import (
	"math"
	"math/rand"
)

// AnnealingSchedule manages the temperature over a simulated-annealing
// run under one of three cooling schedules.
type AnnealingSchedule struct {
	kind               CoolingSchedule
	initialTemperature float64
	temperature        float64
	coolingRate        float64
	iteration          int64
}

// NewAnnealingSchedule creates a schedule starting at initialTemp,
// cooling at coolingRate under kind (exponential/linear/logarithmic).
func NewAnnealingSchedule(initialTemp, coolingRate float64, kind CoolingSchedule) *AnnealingSchedule {
	if kind == "" {
		kind = CoolingExponential
	}
	return &AnnealingSchedule{
		kind:               kind,
		initialTemperature: initialTemp,
		temperature:        initialTemp,
		coolingRate:        coolingRate,
	}
}

// Update advances the schedule by one iteration under its cooling rule:
//   - exponential: T(k) = T0 * rate^k — fast early cooling, slow late cooling.
//   - linear:      T(k) = T0 - k*rate, floored at 0.01.
//   - logarithmic: T(k) = T0 / (1 + rate*log(1+k)) — slowest, best for
//     highly multimodal landscapes.
func (a *AnnealingSchedule) Update() {
	a.iteration++

	switch a.kind {
	case CoolingLinear:
		a.temperature = a.initialTemperature - float64(a.iteration)*a.coolingRate
		if a.temperature < 0.01 {
			a.temperature = 0.01
		}
	case CoolingLogarithmic:
		a.temperature = a.initialTemperature / (1.0 + a.coolingRate*math.Log(1.0+float64(a.iteration)))
	default: // CoolingExponential
		a.temperature *= a.coolingRate
	}

	if a.temperature < 1e-10 {
		a.temperature = 1e-10
	}
}

// Temperature returns the current temperature.
func (a *AnnealingSchedule) Temperature() float64 { return a.temperature }

// Reset restores the schedule to its initial temperature.
func (a *AnnealingSchedule) Reset() {
	a.temperature = a.initialTemperature
	a.iteration = 0
}

// acceptanceProbability returns the Metropolis acceptance probability
// for moving from a solution with objective oldObj to one with newObj,
// honoring sense: always 1 if newObj does not make things worse, else
// exp(-degradation/temperature).
func acceptanceProbability(sense ObjectiveSense, oldObj, newObj, temperature float64) float64 {
	degradation := signedDelta(sense, newObj, oldObj) // positive iff newObj is worse than oldObj
	if degradation <= 0 {
		return 1.0
	}
	return math.Exp(-degradation / temperature)
}

// shouldAccept applies the Metropolis criterion: always accept a
// non-worsening move, otherwise accept with acceptanceProbability.
func shouldAccept(sense ObjectiveSense, oldObj, newObj, temperature float64, rng *rand.Rand) bool {
	return rng.Float64() < acceptanceProbability(sense, oldObj, newObj, temperature)
}
