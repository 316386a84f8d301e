package mh

import "math/rand"

// CrossoverFunc recombines p2 into p1 in place; p1 is the child, p2 stays
// unmodified. Tracked under the method name "cx".
type CrossoverFunc func(p1, p2 Solution)

// SteadyStateGeneticAlgorithm replaces one population member per
// iteration: select a parent, optionally cross it with a second selected
// parent, mutate, optionally locally improve, then replace the worst
// member if the result is not rejected by termination (§4.5).
type SteadyStateGeneticAlgorithm struct {
	*Scheduler

	crossover CrossoverFunc
	mutate    Method
	localImprove *Method

	crossProb float64
	locProb   float64
}

// NewSteadyStateGeneticAlgorithm builds the initial population of
// config.PopulationSize members via methsCh (see NewPopulation) and seeds
// the incumbent from its best member.
func NewSteadyStateGeneticAlgorithm(prototype Solution, methsCh []Method, crossover CrossoverFunc, mutate Method, localImprove *Method, config *Config, rng *rand.Rand) (*SteadyStateGeneticAlgorithm, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(methsCh) == 0 {
		return nil, &InvalidConfigurationError{Violations: []string{"SSGA requires at least one construction method"}}
	}

	population, terminateSignaled, err := NewPopulation(prototype, methsCh, config, rng)
	if err != nil {
		return nil, err
	}

	sched := NewScheduler(config, rng)
	sched.Population = population
	sched.MethodStats["cx"] = &MethodStatistics{}

	ssga := &SteadyStateGeneticAlgorithm{
		Scheduler:    sched,
		crossover:    crossover,
		mutate:       mutate,
		localImprove: localImprove,
		crossProb:    config.SSGACrossProb,
		locProb:      config.SSGALocProb,
	}

	if population.Len() > 0 {
		ssga.SeedIncumbent(population.At(population.Best()).Copy())
	}
	if terminateSignaled {
		ssga.terminate(ReasonMethodSignaled)
	}

	return ssga, nil
}

// Run executes the steady-state loop until a termination predicate
// holds. A method failure (crossover, mutation, or local improvement)
// is propagated as-is, after statistics bookkeeping for
// that call — SSGA does not swallow method failures.
func (ssga *SteadyStateGeneticAlgorithm) Run() (TerminationReason, error) {
	if ssga.CheckTermination() {
		return ssga.TerminationReason(), nil
	}

	population := ssga.Population

	for {
		p1 := population.At(population.Select()).Copy()

		var methods []Method
		if ssga.Rand.Float64() < ssga.crossProb {
			p2 := population.At(population.Select()).Copy()
			crossover := ssga.crossover
			methods = append(methods, Method{
				Name: "cx",
				Func: func(sol Solution, par int, result *Result) {
					crossover(sol, p2)
				},
			})
		}

		methods = append(methods, ssga.mutate)

		if ssga.localImprove != nil && ssga.Rand.Float64() < ssga.locProb {
			methods = append(methods, *ssga.localImprove)
		}

		result, err := ssga.PerformMethods(methods, p1)
		if err != nil {
			return ReasonNone, err
		}

		if result.Terminate {
			break
		}

		worst := population.Worst()
		population.At(worst).CopyFrom(p1)

		if p1.IsBetter(ssga.Incumbent) {
			ssga.Incumbent.CopyFrom(p1)
		}
	}

	return ssga.TerminationReason(), nil
}
