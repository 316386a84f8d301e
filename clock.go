package mh

import "time"

// Stopwatch measures wall-clock elapsed time from the moment it is
// started. A Scheduler acquires one at start and reads it on every
// termination check; PerformMethod times each call with its own. A
// Stopwatch is never stopped or paused.
type Stopwatch struct {
	start time.Time
}

// NewStopwatch starts a stopwatch running from now.
func NewStopwatch() Stopwatch {
	return Stopwatch{start: time.Now()}
}

// Elapsed returns the wall-clock duration since the stopwatch started.
func (s Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}
