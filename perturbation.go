// Perturbation operators for vector-representable problems: arithmetic
// crossover, Gaussian/Cauchy mutation, Mantegna's Lévy flight, and a
// logistic chaotic map. These are not part of the Solution contract;
// they are library helpers a problem's shaking/crossover Method may
// call.
package mh

import (
	"math"
	"math/rand"
)

// ArithmeticCrossover blends two parent vectors into two offspring using
// a per-gene random weight L: off1 = L*x1+(1-L)*x2, off2 its mirror.
// Offspring are clamped to [lo, hi].
func ArithmeticCrossover(x1, x2 []float64, lo, hi float64, rng *rand.Rand) ([]float64, []float64) {
	size := len(x1)
	off1 := make([]float64, size)
	off2 := make([]float64, size)

	for i := 0; i < size; i++ {
		l := unifrnd(0, 1, rng)
		off1[i] = l*x1[i] + (1-l)*x2[i]
		off2[i] = l*x2[i] + (1-l)*x1[i]
	}

	clampVec(off1, lo, hi)
	clampVec(off2, lo, hi)
	return off1, off2
}

// GaussianMutate returns a copy of x with ceil(mu*len(x)) randomly chosen
// genes perturbed by N(0, 0.1*(hi-lo)), clamped to [lo, hi].
func GaussianMutate(x []float64, mu, lo, hi float64, rng *rand.Rand) []float64 {
	n := len(x)
	nMu := int(math.Ceil(mu * float64(n)))
	sigma := 0.1 * (hi - lo)

	y := make([]float64, n)
	copy(y, x)

	for _, j := range rng.Perm(n)[:nMu] {
		y[j] = x[j] + sigma*randn(rng)
	}

	clampVec(y, lo, hi)
	return y
}

// CauchyStep draws one Cauchy(x0, gamma)-distributed value as the ratio
// of two independent standard normals, which is standard-Cauchy
// distributed. The denominator is resampled while it is too close to
// zero to keep the result finite.
func CauchyStep(x0, gamma float64, rng *rand.Rand) float64 {
	z := randn(rng)
	w := randn(rng)
	for math.Abs(w) < 1e-12 {
		w = randn(rng)
	}
	return x0 + gamma*z/w
}

// CauchyMutate applies CauchyStep(0, 0.1*(hi-lo)) to ceil(mu*len(x))
// randomly chosen genes of x, clipping any step larger than 3x the
// search span, then clamping the result to [lo, hi].
func CauchyMutate(x []float64, mu, lo, hi float64, rng *rand.Rand) []float64 {
	n := len(x)
	nMu := int(math.Ceil(mu * float64(n)))
	gamma := 0.1 * (hi - lo)
	span := hi - lo

	y := make([]float64, n)
	copy(y, x)

	for _, j := range rng.Perm(n)[:nMu] {
		step := CauchyStep(0, gamma, rng)
		if math.Abs(step) > 3*span {
			if step > 0 {
				step = 3 * span
			} else {
				step = -3 * span
			}
		}
		y[j] = x[j] + step
	}

	clampVec(y, lo, hi)
	return y
}

// LevyStep draws one step of a Lévy-stable distribution with stability
// index alpha in (0, 2] and scale beta, using Mantegna's method: the
// ratio u/|v|^(1/alpha) of two normals, where u's standard deviation is
// chosen so the ratio has the desired tail index. A non-finite ratio
// degrades to a plain Gaussian step.
func LevyStep(alpha, beta float64, rng *rand.Rand) float64 {
	u := randn(rng) * mantegnaSigma(alpha)
	v := randn(rng)
	for v == 0 {
		v = randn(rng)
	}

	step := beta * u / math.Pow(math.Abs(v), 1/alpha)
	if math.IsNaN(step) || math.IsInf(step, 0) {
		return beta * randn(rng)
	}
	return step
}

// mantegnaSigma is the numerator standard deviation of Mantegna's
// method, evaluated in log space so the gamma terms stay stable over the
// whole alpha range.
func mantegnaSigma(alpha float64) float64 {
	lgNum, _ := math.Lgamma(1 + alpha)
	lgDen, _ := math.Lgamma((1 + alpha) / 2)
	logSigma := lgNum + math.Log(math.Sin(math.Pi*alpha/2)) - lgDen - math.Log(alpha) - (alpha-1)/2*math.Ln2
	return math.Exp(logSigma / alpha)
}

// LogisticMap iterates x <- 4x(1-x), the fully chaotic regime of the
// logistic map, as a deterministic driver for chaos-seeded shake
// intensities.
type LogisticMap struct {
	x float64
}

// logisticEps bounds the state away from the absorbing endpoints 0 and 1.
const logisticEps = 1e-9

// NewLogisticMap creates a map seeded as by Reset(seed).
func NewLogisticMap(seed float64) *LogisticMap {
	lm := &LogisticMap{}
	lm.Reset(seed)
	return lm
}

// Next advances the sequence and returns the new state in (0, 1).
func (lm *LogisticMap) Next() float64 {
	lm.x = 4 * lm.x * (1 - lm.x)
	lm.x = clampOpenUnit(lm.x)
	return lm.x
}

// Current returns the current state without advancing the sequence.
func (lm *LogisticMap) Current() float64 { return lm.x }

// Reset reseeds the map by folding seed into the open unit interval,
// nudging it off 3/4 (a fixed point) and 1/2 (which maps to 1 and then
// to 0), either of which would collapse the orbit.
func (lm *LogisticMap) Reset(seed float64) {
	x := clampOpenUnit(math.Mod(math.Abs(seed), 1))
	if x == 0.5 || x == 0.75 {
		x += logisticEps
	}
	lm.x = x
}

func clampOpenUnit(x float64) float64 {
	if x < logisticEps {
		return logisticEps
	}
	if x > 1-logisticEps {
		return 1 - logisticEps
	}
	return x
}
