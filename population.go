package mh

import (
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// Population is an ordered, fixed-capacity multiset of Solutions
// maintained by GA-style strategies. Entries are independently owned:
// no slot aliases the scheduler's incumbent or any other slot.
type Population struct {
	members []Solution
	rng     *rand.Rand
	tournamentSize int
}

// NewPopulation builds a population of config.PopulationSize members by
// cycling round-robin through methsCh starting at index 0: each slot is
// a fresh deep copy of prototype with one construction method applied
// directly (bypassing Scheduler/MethodStatistics — construction is
// setup, not a tracked dispatch; see scheduler.go's SeedIncumbent doc).
//
// If config.DupElim is set, a candidate structurally equal to an
// existing member is rejected and retried with the next construction
// method in the cycle; after 100*config.PopulationSize consecutive
// rejections, NewPopulation fails with *PopulationInitFailedError. If
// any construction call signals Result.Terminate, initialization stops
// early and the returned population may hold fewer than
// config.PopulationSize members — callers must handle that.
func NewPopulation(prototype Solution, methsCh []Method, config *Config, rng *rand.Rand) (*Population, bool, error) {
	p := &Population{
		rng:            rng,
		tournamentSize: config.TournamentSize,
	}

	if config.PopulationSize == 0 || len(methsCh) == 0 {
		return p, false, nil
	}

	const maxRejectionsFactor = 100
	maxRejections := maxRejectionsFactor * config.PopulationSize
	rejections := 0
	methIdx := 0
	terminateSignaled := false

	for len(p.members) < config.PopulationSize {
		m := methsCh[methIdx%len(methsCh)]
		methIdx++

		candidate := prototype.Copy()
		var result Result
		m.Func(candidate, m.Par, &result)

		if config.DupElim && len(p.duplicatesOfLocked(candidate)) > 0 {
			rejections++
			if rejections >= maxRejections {
				return nil, false, &PopulationInitFailedError{
					Attempts: rejections,
					Wanted:   config.PopulationSize,
					Got:      len(p.members),
				}
			}
			if result.Terminate {
				terminateSignaled = true
				break
			}
			continue
		}

		p.members = append(p.members, candidate)
		rejections = 0

		if result.Terminate {
			terminateSignaled = true
			break
		}
	}

	return p, terminateSignaled, nil
}

// Len returns the number of members currently held.
func (p *Population) Len() int { return len(p.members) }

// At returns the member at index i.
func (p *Population) At(i int) Solution { return p.members[i] }

// Best returns the index of a member not worse than any other; ties
// resolve to the lowest index.
func (p *Population) Best() int {
	best := 0
	for i := 1; i < len(p.members); i++ {
		if p.members[i].IsBetter(p.members[best]) {
			best = i
		}
	}
	return best
}

// Worst returns the index of a member not better than any other; ties
// resolve to the lowest index.
func (p *Population) Worst() int {
	worst := 0
	for i := 1; i < len(p.members); i++ {
		if p.members[i].IsWorse(p.members[worst]) {
			worst = i
		}
	}
	return worst
}

// Select performs tournament selection: it samples tournamentSize
// distinct indices uniformly from [1, Len) and returns the best among
// them. A tournament at least as large as the eligible range degenerates
// into a scan of every eligible index. Index 0 is reserved and never
// returned.
func (p *Population) Select() int {
	n := len(p.members)
	if n <= 2 {
		return 1
	}

	if p.tournamentSize >= n-1 {
		best := 1
		for i := 2; i < n; i++ {
			if p.members[i].IsBetter(p.members[best]) {
				best = i
			}
		}
		return best
	}

	best := -1
	for _, idx := range p.rng.Perm(n - 1)[:p.tournamentSize] {
		candidate := idx + 1
		if best < 0 || p.members[candidate].IsBetter(p.members[best]) {
			best = candidate
		}
	}
	return best
}

// DuplicatesOf returns every index whose member IsEqual(sol).
func (p *Population) DuplicatesOf(sol Solution) []int {
	return p.duplicatesOfLocked(sol)
}

func (p *Population) duplicatesOfLocked(sol Solution) []int {
	var dups []int
	for i, m := range p.members {
		if m.IsEqual(sol) {
			dups = append(dups, i)
		}
	}
	return dups
}

// ObjAvg returns the mean objective value across all members.
func (p *Population) ObjAvg() float64 {
	return stat.Mean(p.objectives(), nil)
}

// ObjStd returns the sample standard deviation of objective values
// across all members.
func (p *Population) ObjStd() float64 {
	return stat.StdDev(p.objectives(), nil)
}

func (p *Population) objectives() []float64 {
	objs := make([]float64, len(p.members))
	for i, m := range p.members {
		objs[i] = m.Obj()
	}
	return objs
}
