package mh

import "math/rand"

// SimulatedAnnealing drives a single working solution through repeated
// shaking moves, accepted or rejected via the Metropolis criterion under
// a cooling AnnealingSchedule (§4.7). Unlike SSGA it keeps no
// Population: Scheduler.Population stays nil for the lifetime of a run.
type SimulatedAnnealing struct {
	*Scheduler

	shake    Method
	schedule *AnnealingSchedule
	current  Solution // the Metropolis-accepted walk, distinct from Incumbent
}

// NewSimulatedAnnealing constructs an SA run: prototype is copied and
// constructed via methsCh[0] to seed both the incumbent and the current
// walk, then shake is applied once per iteration under the configured
// cooling schedule.
func NewSimulatedAnnealing(prototype Solution, methsCh []Method, shake Method, config *Config, rng *rand.Rand) (*SimulatedAnnealing, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(methsCh) == 0 {
		return nil, &InvalidConfigurationError{Violations: []string{"simulated annealing requires at least one construction method"}}
	}

	sched := NewScheduler(config, rng)

	start := prototype.Copy()
	var result Result
	m := methsCh[0]
	m.Func(start, m.Par, &result)

	sa := &SimulatedAnnealing{
		Scheduler: sched,
		shake:     shake,
		schedule:  NewAnnealingSchedule(config.SAInitialTemperature, config.SACoolingRate, config.SACoolingSchedule),
		current:   start,
	}
	sa.SeedIncumbent(start.Copy())
	return sa, nil
}

// Run executes the Metropolis/shake loop until a termination predicate
// holds. A *MethodFailedError from the shake method is propagated as-is,
// after statistics bookkeeping for that call — SA does not swallow
// method failures (§7).
func (sa *SimulatedAnnealing) Run() (TerminationReason, error) {
	if sa.CheckTermination() {
		return sa.TerminationReason(), nil
	}

	for {
		candidate := sa.current.Copy()
		result, err := sa.PerformMethod(sa.shake, candidate)
		if err != nil {
			return ReasonNone, err
		}

		if shouldAccept(sa.current.Sense(), sa.current.Obj(), candidate.Obj(), sa.schedule.Temperature(), sa.Rand) {
			sa.current = candidate
		}
		sa.schedule.Update()

		if result.Terminate {
			break
		}
	}
	return sa.TerminationReason(), nil
}
