package mh

// MethodFunc is a user-supplied callable applied to a Solution during a
// scheduler dispatch. It may mutate sol; it must set result.Changed to
// true iff sol was altered, and result.Terminate to true only if it has
// itself diagnosed a termination condition.
type MethodFunc func(sol Solution, par int, result *Result)

// Method is a named callable plus the parameter it is invoked with, e.g.
// a construction heuristic variant index or a shake intensity.
type Method struct {
	Name string
	Func MethodFunc
	Par  int
}

// Result is the per-call outcome record a MethodFunc populates.
type Result struct {
	Changed   bool
	Terminate bool
}
