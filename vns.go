package mh

import "math/rand"

// VariableNeighborhoodSearch shakes the incumbent in a nested sequence of
// neighborhoods of increasing strength (indexed 1..KMax), optionally
// followed by local improvement, moving to the shaken solution whenever
// it improves and otherwise advancing to the next neighborhood (§4.6).
// Like SimulatedAnnealing it keeps no Population.
type VariableNeighborhoodSearch struct {
	*Scheduler

	shake        []Method // shake[i] is the Method for neighborhood i+1
	localImprove *Method  // optional
	k            int      // current neighborhood index, 1-based
}

// NewVariableNeighborhoodSearch constructs a VNS run: prototype is copied
// and constructed via methsCh[0] to seed the incumbent. len(shake) must
// equal config.VNSKMax — one shaking method per neighborhood.
func NewVariableNeighborhoodSearch(prototype Solution, methsCh []Method, shake []Method, localImprove *Method, config *Config, rng *rand.Rand) (*VariableNeighborhoodSearch, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(methsCh) == 0 {
		return nil, &InvalidConfigurationError{Violations: []string{"VNS requires at least one construction method"}}
	}
	if len(shake) != config.VNSKMax {
		return nil, &InvalidConfigurationError{Violations: []string{
			"VNS requires exactly mh_vns_kmax shaking methods, one per neighborhood",
		}}
	}

	sched := NewScheduler(config, rng)

	start := prototype.Copy()
	var result Result
	m := methsCh[0]
	m.Func(start, m.Par, &result)

	vns := &VariableNeighborhoodSearch{
		Scheduler:    sched,
		shake:        shake,
		localImprove: localImprove,
		k:            1,
	}
	vns.SeedIncumbent(start)
	return vns, nil
}

// Run executes the shake/improve/move-or-not loop until a termination
// predicate holds. A method failure is propagated as-is, after
// statistics bookkeeping for that call — VNS does not swallow method
// failures.
func (vns *VariableNeighborhoodSearch) Run() (TerminationReason, error) {
	if vns.CheckTermination() {
		return vns.TerminationReason(), nil
	}

	for {
		working := vns.Incumbent.Copy()
		prevObj := vns.Incumbent.Obj()

		shakeMethod := vns.shake[vns.k-1]
		result, err := vns.PerformMethod(shakeMethod, working)
		if err != nil {
			return ReasonNone, err
		}

		if !result.Terminate && vns.localImprove != nil {
			result, err = vns.PerformMethod(*vns.localImprove, working)
			if err != nil {
				return ReasonNone, err
			}
		}

		// PerformMethod has already adopted working into the incumbent if
		// it improved, so the move-or-not decision must compare against
		// the objective the incumbent had before this neighborhood ran.
		if CompareObjectives(working.Sense(), working.Obj(), prevObj) > 0 {
			vns.k = 1
		} else {
			vns.k++
			if vns.k > vns.Config.VNSKMax {
				vns.k = 1
			}
		}

		if result.Terminate {
			break
		}
	}
	return vns.TerminationReason(), nil
}
