package mh

import (
	"fmt"
	"math/rand"
)

// scalarSolution is a minimal Solution fixture used across the engine's
// own tests: a single float64 value on [Lo, Hi], objective is the value
// itself (Minimize) or its negation (Maximize via Flip).
type scalarSolution struct {
	ObjectiveCache
	X      float64
	Lo, Hi float64
	Flip   bool
	rng    *rand.Rand
}

func newScalarSolution(lo, hi float64, flip bool, rng *rand.Rand) *scalarSolution {
	return &scalarSolution{Lo: lo, Hi: hi, Flip: flip, rng: rng}
}

func (s *scalarSolution) Sense() ObjectiveSense {
	if s.Flip {
		return Maximize
	}
	return Minimize
}

func (s *scalarSolution) Copy() Solution {
	clone := &scalarSolution{X: s.X, Lo: s.Lo, Hi: s.Hi, Flip: s.Flip, rng: s.rng}
	if s.Valid() {
		clone.Set(s.Obj())
	}
	return clone
}

func (s *scalarSolution) CopyFrom(other Solution) {
	o := other.(*scalarSolution)
	s.X = o.X
	if o.Valid() {
		s.Set(o.Obj())
	} else {
		s.Invalidate()
	}
}

func (s *scalarSolution) CalcObjective() float64 {
	if s.Flip {
		return -s.X
	}
	return s.X
}

func (s *scalarSolution) Obj() float64 { return s.ObjectiveCache.Obj(s.CalcObjective) }

func (s *scalarSolution) IsBetter(other Solution) bool {
	o := other.(*scalarSolution)
	return CompareObjectives(s.Sense(), s.Obj(), o.Obj()) > 0
}

func (s *scalarSolution) IsWorse(other Solution) bool {
	o := other.(*scalarSolution)
	return CompareObjectives(s.Sense(), s.Obj(), o.Obj()) < 0
}

func (s *scalarSolution) IsEqual(other Solution) bool {
	return s.X == other.(*scalarSolution).X
}

// Initialize draws a uniform random value in [Lo, Hi], ignoring par.
func (s *scalarSolution) Initialize(par int) {
	s.X = unifrnd(s.Lo, s.Hi, s.rng)
	s.Invalidate()
}

func (s *scalarSolution) Check() error {
	if s.X < s.Lo || s.X > s.Hi {
		return &SolutionInvariantViolated{Reason: fmt.Sprintf("%g out of [%g, %g]", s.X, s.Lo, s.Hi)}
	}
	return nil
}

func scalarConstruct(sol Solution, par int, result *Result) {
	sol.Initialize(par)
	result.Changed = true
}

// scalarShake nudges X by a step proportional to par, clamping to bounds.
func scalarShake(par int) Method {
	return Method{
		Name: fmt.Sprintf("shake_%d", par),
		Func: func(sol Solution, _ int, result *Result) {
			s := sol.(*scalarSolution)
			step := float64(par) * 0.1 * (s.Hi - s.Lo)
			if s.rng.Float64() < 0.5 {
				step = -step
			}
			s.X += step
			if s.X < s.Lo {
				s.X = s.Lo
			}
			if s.X > s.Hi {
				s.X = s.Hi
			}
			s.Invalidate()
			result.Changed = true
		},
		Par: par,
	}
}

func scalarMutate(sol Solution, _ int, result *Result) {
	s := sol.(*scalarSolution)
	s.X += unifrnd(-0.01, 0.01, s.rng) * (s.Hi - s.Lo)
	if s.X < s.Lo {
		s.X = s.Lo
	}
	if s.X > s.Hi {
		s.X = s.Hi
	}
	s.Invalidate()
	result.Changed = true
}

func scalarCrossover(p1, p2 Solution) {
	a := p1.(*scalarSolution)
	b := p2.(*scalarSolution)
	a.X = (a.X + b.X) / 2
	a.Invalidate()
}

// failingMethod always panics, to exercise MethodFailedError propagation.
func failingMethod(_ Solution, _ int, _ *Result) {
	panic("boom")
}
