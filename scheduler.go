// Package mh is a general-purpose metaheuristic scheduler: a Solution
// contract problem implementations satisfy, a Scheduler that dispatches
// named construction/shaking/local-improvement/crossover Methods while
// owning termination and statistics bookkeeping, a Population container,
// and the SSGA, VNS, and SA strategies built on top of it.
package mh

import (
	"fmt"
	"math/rand"
)

// TerminationReason names why a Scheduler's Run returned.
type TerminationReason string

const (
	ReasonNone            TerminationReason = ""
	ReasonIterations      TerminationReason = "iterations"
	ReasonStagnation      TerminationReason = "stagnation"
	ReasonTime            TerminationReason = "time"
	ReasonObjectiveReached TerminationReason = "objective_reached"
	ReasonMethodSignaled  TerminationReason = "method_signaled"
	ReasonCompleted       TerminationReason = "completed"
)

// Scheduler owns the incumbent, the iteration/time budget, method
// dispatch, and statistics bookkeeping shared by every concrete
// strategy (SteadyStateGeneticAlgorithm, VariableNeighborhoodSearch,
// SimulatedAnnealing). Concrete strategies embed *Scheduler and
// implement their own Run, calling PerformMethod/PerformMethods to stay
// on the shared termination/statistics machinery.
type Scheduler struct {
	Config *Config
	Rand   *rand.Rand

	Incumbent Solution
	Population *Population

	MethodStats map[string]*MethodStatistics

	iteration              int64
	iterationsSinceImprove int64
	clock                  Stopwatch
	terminated             bool
	terminationReason      TerminationReason
}

// NewScheduler creates a Scheduler ready for a strategy to seed its
// incumbent (and, if it uses one, its Population) before calling Run.
func NewScheduler(config *Config, rng *rand.Rand) *Scheduler {
	return &Scheduler{
		Config:      config,
		Rand:        rng,
		MethodStats: map[string]*MethodStatistics{},
		clock:       NewStopwatch(),
	}
}

// SeedIncumbent installs sol as the incumbent directly (no Copy — the
// caller is handing over an allocation it no longer needs, e.g. a fresh
// copy of the population's best member). Construction-phase work never goes
// through PerformMethod/MethodStatistics, mirroring how population
// construction itself dispatches meths_ch directly (§4.4): construction
// heuristics are setup, not iterations against the search budget.
func (s *Scheduler) SeedIncumbent(sol Solution) {
	s.Incumbent = sol
}

// CheckTermination runs every termination predicate once and latches the
// first one that holds. Strategies call this once after seeding the
// incumbent (and/or population) and before entering their main loop, so
// a target objective already met by construction output, or a zero
// iteration/time budget, terminates before any main-loop method runs —
// without construction itself counting against the iteration budget.
func (s *Scheduler) CheckTermination() bool {
	s.checkTermination()
	return s.terminated
}

// Iteration returns the current 0-based iteration counter.
func (s *Scheduler) Iteration() int64 { return s.iteration }

// IterationsSinceImprovement returns the stagnation counter.
func (s *Scheduler) IterationsSinceImprovement() int64 { return s.iterationsSinceImprove }

// TerminationReason returns why the scheduler stopped, or ReasonNone if
// it has not terminated yet.
func (s *Scheduler) TerminationReason() TerminationReason { return s.terminationReason }

// Terminated reports whether any termination predicate currently holds.
// Termination is sticky: once true it stays true.
func (s *Scheduler) Terminated() bool {
	if s.terminated {
		return true
	}
	s.checkTermination()
	return s.terminated
}

// checkTermination evaluates every predicate in §4.3 order and latches
// the first one that holds.
func (s *Scheduler) checkTermination() {
	if s.terminated {
		return
	}
	c := s.Config
	switch {
	case c.MaxIterations >= 0 && s.iteration >= c.MaxIterations:
		s.terminate(ReasonIterations)
	case c.MaxIterationsNoImprove >= 0 && s.iterationsSinceImprove >= c.MaxIterationsNoImprove:
		s.terminate(ReasonStagnation)
	case c.MaxSeconds >= 0 && s.clock.Elapsed().Seconds() >= c.MaxSeconds:
		s.terminate(ReasonTime)
	case c.TargetObjectiveSet && s.Incumbent != nil && objectiveReached(s.Incumbent, c.TargetObjective):
		s.terminate(ReasonObjectiveReached)
	}
}

func objectiveReached(incumbent Solution, target float64) bool {
	obj := incumbent.Obj()
	if incumbent.Sense() == Maximize {
		return obj >= target
	}
	return obj <= target
}

func (s *Scheduler) terminate(reason TerminationReason) {
	if s.terminated {
		return
	}
	s.terminated = true
	s.terminationReason = reason
}

// adoptIfBetter overwrites the incumbent from working if working is
// strictly better, resetting the stagnation counter; otherwise it
// increments the stagnation counter.
func (s *Scheduler) adoptIfBetter(working Solution) {
	if s.Incumbent == nil {
		s.Incumbent = working.Copy()
		s.iterationsSinceImprove = 0
		return
	}
	if working.IsBetter(s.Incumbent) {
		s.Incumbent.CopyFrom(working)
		s.iterationsSinceImprove = 0
	} else {
		s.iterationsSinceImprove++
	}
}

// statsFor returns (creating if necessary) the MethodStatistics record
// for name.
func (s *Scheduler) statsFor(name string) *MethodStatistics {
	st, ok := s.MethodStats[name]
	if !ok {
		st = &MethodStatistics{}
		s.MethodStats[name] = st
	}
	return st
}

// PerformMethod dispatches a single method call on working, updating
// statistics, the incumbent, and the iteration counter, then evaluating
// termination. Any error/panic raised by method.Func is converted into a
// *MethodFailedError and returned; statistics and elapsed time for the
// call are recorded regardless, via a deferred release exactly as
// §4.3/§9 "scoped timing" describes.
func (s *Scheduler) PerformMethod(method Method, working Solution) (result Result, err error) {
	o0 := working.Obj()
	watch := NewStopwatch()

	defer func() {
		elapsed := watch.Elapsed()
		stats := s.statsFor(method.Name)
		if r := recover(); r != nil {
			stats.update(0, elapsed)
			err = &MethodFailedError{MethodName: method.Name, Cause: panicToError(r)}
			return
		}
		delta := signedDelta(working.Sense(), o0, working.Obj())
		if !result.Changed {
			delta = 0
		}
		stats.update(delta, elapsed)
	}()

	method.Func(working, method.Par, &result)

	s.iteration++
	s.adoptIfBetter(working)
	if result.Terminate {
		s.terminate(ReasonMethodSignaled)
	}
	s.checkTermination()
	result.Terminate = s.terminated
	return result, nil
}

func panicToError(r any) error {
	if e, ok := r.(error); ok {
		return e
	}
	return fmt.Errorf("%v", r)
}

// PerformMethods sequentially dispatches methods on working, checking
// termination and the incumbent after every single call (not just the
// last), so an improvement produced by an earlier method and later
// regressed is still captured. The sequence aborts as soon as any call
// sets result.Terminate, or returns a *MethodFailedError.
func (s *Scheduler) PerformMethods(methods []Method, working Solution) (Result, error) {
	var last Result
	for _, m := range methods {
		r, err := s.PerformMethod(m, working)
		last = r
		if err != nil {
			return last, err
		}
		if r.Terminate {
			break
		}
	}
	return last, nil
}
