package tsp

import (
	"github.com/tourloop/tourloop/schedule"
	"github.com/tourloop/tourloop/transit"
)

// DenseProblem is the all-pairs schedule closure of a transit.Problem:
// Entries[from*NumStops+to] holds the minimal Schedule connecting from
// to to, direct or via any chain of intermediate stops.
type DenseProblem struct {
	NumStops int
	Entries  []schedule.Schedule
}

func (dp *DenseProblem) at(from, to int) schedule.Schedule {
	return dp.Entries[from*dp.NumStops+to]
}

func (dp *DenseProblem) set(from, to int, s schedule.Schedule) {
	dp.Entries[from*dp.NumStops+to] = s
}

// MakeDenseProblem runs a modified Floyd–Warshall over the schedule
// algebra: for every intermediate stop except dummyStopID (if non-empty),
// and every (from, to) pair not touching it, the schedule connecting
// through the intermediate is composed and merged into the direct
// entry. The k→i→j loop order matches matrix.FloydWarshall's
// deterministic convention.
//
// dummyStopID, when non-empty, must name a stop already present in p;
// it is excluded as an intermediate so it can serve as an open-tour
// start/finish connected to every other stop by a zero-cost anytime
// link, without that link ever shortcutting a real connection.
func MakeDenseProblem(p *transit.Problem, dummyStopID string) (*DenseProblem, error) {
	n := p.NumStops()
	dummyIdx := -1
	if dummyStopID != "" {
		idx, err := p.StopIndex(dummyStopID)
		if err != nil {
			return nil, ErrUnknownDummyStop
		}
		dummyIdx = idx
	}

	result := &DenseProblem{
		NumStops: n,
		Entries:  make([]schedule.Schedule, n*n),
	}
	for from := 0; from < n; from++ {
		for _, edge := range p.Edges[from] {
			result.set(from, edge.Destination, edge.Schedule)
		}
	}

	for intermediate := 0; intermediate < n; intermediate++ {
		if intermediate == dummyIdx {
			continue
		}
		for from := 0; from < n; from++ {
			for to := 0; to < n; to++ {
				if intermediate == from || intermediate == to || from == to {
					continue
				}
				composed := schedule.Compose(result.at(from, intermediate), result.at(intermediate, to), 0)
				dst := result.at(from, to)
				schedule.Merge(&dst, composed)
				result.set(from, to, dst)
			}
		}
	}

	return result, nil
}
