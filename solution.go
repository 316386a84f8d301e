package mh

import "fmt"

// ObjectiveSense fixes whether a problem's objective is to be maximized
// or minimized. It is a constant property of a representation class: it
// must not vary between two Solutions of the same concrete type.
type ObjectiveSense bool

const (
	Minimize ObjectiveSense = false
	Maximize ObjectiveSense = true
)

// Solution is the capability set a problem representation must satisfy
// for the scheduler to drive a search over it. The scheduler never sees
// the concrete representation, only this interface.
type Solution interface {
	// Sense reports whether this representation's objective is to be
	// maximized or minimized. Constant per concrete type.
	Sense() ObjectiveSense

	// Copy produces a deep-independent clone: mutating either the
	// receiver or the clone afterward must not affect the other.
	Copy() Solution

	// CopyFrom overwrites the receiver's representation and cached
	// objective with other's. The receiver's instance reference is left
	// untouched; both solutions must already share the same instance.
	CopyFrom(other Solution)

	// CalcObjective recomputes the objective from the current
	// representation, ignoring any cache.
	CalcObjective() float64

	// Invalidate clears the cached objective. Must be called after any
	// mutation of the representation, before Obj is called again.
	Invalidate()

	// Obj returns the cached objective if valid, else recomputes it via
	// CalcObjective, stores it, and returns it.
	Obj() float64

	// IsBetter reports whether the receiver is strictly better than
	// other, honoring ObjectiveSense. Ties are not better.
	IsBetter(other Solution) bool

	// IsWorse reports whether the receiver is strictly worse than other.
	IsWorse(other Solution) bool

	// IsEqual reports structural equality (not just equal objective).
	IsEqual(other Solution) bool

	// Initialize installs a representation obtained from construction
	// heuristic variant par, and clears the objective cache.
	Initialize(par int)

	// Check asserts the representation's structural invariants. Only
	// called in audit mode; must return a *SolutionInvariantViolated
	// wrapped error (or nil) rather than panicking.
	Check() error
}

// SolutionInvariantViolated is returned by Check when a representation's
// structural invariants (e.g. permutation bijectivity) do not hold.
type SolutionInvariantViolated struct {
	Reason string
}

func (e *SolutionInvariantViolated) Error() string {
	return fmt.Sprintf("solution invariant violated: %s", e.Reason)
}

func (e *SolutionInvariantViolated) ErrorKind() ErrorKind {
	return KindSolutionInvariantViolated
}

// ObjectiveCache is an embeddable helper realizing the valid-flag/cached-
// value bookkeeping every Solution implementation otherwise has to
// hand-roll. A concrete Solution embeds ObjectiveCache and calls Obj with
// its own CalcObjective.
type ObjectiveCache struct {
	value float64
	valid bool
}

// Obj returns the cached value if valid, else calls calc, stores the
// result, marks the cache valid, and returns it.
func (c *ObjectiveCache) Obj(calc func() float64) float64 {
	if !c.valid {
		c.value = calc()
		c.valid = true
	}
	return c.value
}

// Invalidate clears the cache so the next Obj call recomputes.
func (c *ObjectiveCache) Invalidate() {
	c.valid = false
}

// Set installs a precomputed value directly into the cache, marking it
// valid. Used by CopyFrom implementations to carry over the source's
// cache without forcing a recompute.
func (c *ObjectiveCache) Set(value float64) {
	c.value = value
	c.valid = true
}

// Valid reports whether the cache currently holds a computed value.
func (c *ObjectiveCache) Valid() bool {
	return c.valid
}

// CompareObjectives applies sense to two objective values and returns 1
// if a is strictly better than b, -1 if strictly worse, and 0 if they are
// equal. Exposed so Solution
// implementations can realize IsBetter/IsWorse/IsEqual from a single
// cached pair of objective values without duplicating the sense switch.
func CompareObjectives(sense ObjectiveSense, a, b float64) int {
	switch {
	case a == b:
		return 0
	case sense == Maximize:
		if a > b {
			return 1
		}
		return -1
	default: // Minimize
		if a < b {
			return 1
		}
		return -1
	}
}
