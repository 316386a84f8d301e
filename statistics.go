package mh

import "time"

// MethodStatistics is the running aggregate of calls, successes,
// cumulative wall-clock time, and cumulative net objective improvement
// for every method name a Scheduler has dispatched.
type MethodStatistics struct {
	Calls          int64
	Successes      int64
	TotalTime      time.Duration
	NetImprovement float64
}

// update applies the statistics update rule from §4.3: Δ is the
// objective change already signed toward improvement by the caller.
// Every call increments Calls and adds elapsed time; a strictly positive
// Δ also increments Successes and accumulates into NetImprovement.
func (s *MethodStatistics) update(delta float64, elapsed time.Duration) {
	s.Calls++
	s.TotalTime += elapsed
	if delta > 0 {
		s.Successes++
		s.NetImprovement += delta
	}
}

// signedDelta computes o1-o0 for maximize, o0-o1 for minimize, i.e. a
// value that is positive exactly when o1 improves on o0.
func signedDelta(sense ObjectiveSense, o0, o1 float64) float64 {
	if sense == Maximize {
		return o1 - o0
	}
	return o0 - o1
}
