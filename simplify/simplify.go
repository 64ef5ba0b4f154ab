package simplify

import (
	"container/heap"
	"sort"

	"github.com/tourloop/tourloop/schedule"
	"github.com/tourloop/tourloop/transit"
)

// nodeState is the per-stop bookkeeping a single time-expanded Dijkstra
// run keeps: the best arrival found so far, the stop it was reached
// from, the departure time at that predecessor (the departure side of
// the edge that produced this arrival), and the trip ridden on that
// edge.
type nodeState struct {
	arrival              uint32
	reached              bool
	predecessor          int
	predecessorDeparture uint32
	trip                 int
}

// nodeItem and nodePQ give the runner a lazy-decrease-key min-heap
// ordered by ascending arrival time, the same container/heap shape the
// teacher's dijkstra package uses for its own priority queue.
type nodeItem struct {
	stop    int
	arrival uint32
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].arrival < pq[j].arrival }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// runner is the dedicated search engine for one source stop, reused
// across every distinct departure moment found at that stop.
type runner struct {
	p      *transit.Problem
	isKept []bool
	states []nodeState
}

func newRunner(p *transit.Problem, isKept []bool) *runner {
	return &runner{p: p, isKept: isKept}
}

// run computes, for a single source stop departing at the given time,
// the best arrival at every other stop, stopping early once every kept
// stop other than the source has been finalized.
func (r *runner) run(source int, departure uint32) error {
	n := r.p.NumStops()
	r.states = make([]nodeState, n)
	for i := range r.states {
		r.states[i] = nodeState{arrival: schedule.InfiniteDuration, predecessor: -1}
	}
	r.states[source] = nodeState{arrival: departure, reached: true, predecessor: -1}

	pq := &nodePQ{{stop: source, arrival: departure}}
	heap.Init(pq)

	visited := make([]bool, n)
	remaining := 0
	for idx, kept := range r.isKept {
		if kept && idx != source {
			remaining++
		}
	}

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*nodeItem)
		u := item.stop
		if visited[u] {
			continue
		}
		visited[u] = true

		if r.isKept[u] && u != source {
			remaining--
			if remaining == 0 {
				break
			}
		}

		for _, edge := range r.p.Edges[u] {
			arrival, trip, ok, err := relax(edge.Schedule, r.states[u].arrival)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if arrival < r.states[edge.Destination].arrival {
				r.states[edge.Destination] = nodeState{
					arrival:              arrival,
					reached:              true,
					predecessor:          u,
					predecessorDeparture: r.states[u].arrival,
					trip:                 trip,
				}
				heap.Push(pq, &nodeItem{stop: edge.Destination, arrival: arrival})
			}
		}
	}
	return nil
}

// relax finds the best arrival reachable by boarding sched no earlier
// than tCur: the anytime component (if any) offset from tCur, and the
// earliest feasible segment located by binary search over the sorted
// segment list, then scanned forward while a later departure could
// still beat the current best arrival — input segments are not
// necessarily minimal (BuildProblem does not prune them), so a later
// departure can still arrive earlier, and the forward scan catches it.
func relax(sched schedule.Schedule, tCur uint32) (arrival uint32, trip int, ok bool, err error) {
	best := uint32(schedule.InfiniteDuration)
	bestTrip := -1
	if sched.AnytimeDuration != nil {
		best = tCur + *sched.AnytimeDuration
		bestTrip = schedule.AnytimeTrip
	}

	idx := sort.Search(len(sched.Segments), func(i int) bool {
		return sched.Segments[i].Departure >= tCur
	})
	for idx < len(sched.Segments) && sched.Segments[idx].Departure < best {
		seg := sched.Segments[idx]
		if seg.DepartureTrip != seg.ArrivalTrip {
			return 0, 0, false, ErrMultiTripSegment
		}
		if seg.Arrival < best {
			best = seg.Arrival
			bestTrip = seg.DepartureTrip
		}
		idx++
	}

	if bestTrip == -1 {
		return 0, 0, false, nil
	}
	return best, bestTrip, true, nil
}

// breadcrumb is one stop along a reconstructed path, nearest-first
// (index 0 is the destination).
type breadcrumb struct {
	stop                 int
	arrival              uint32
	predecessorDeparture uint32
	trip                 int
}

// chainToSource walks r.states' predecessor pointers from dest back to
// source, returning the visited stops nearest-first. Both dest (first
// entry) and source (last entry) are included.
func (r *runner) chainToSource(dest int) []breadcrumb {
	var chain []breadcrumb
	cur := dest
	for {
		st := r.states[cur]
		chain = append(chain, breadcrumb{stop: cur, arrival: st.arrival, predecessorDeparture: st.predecessorDeparture, trip: st.trip})
		if st.predecessor == -1 {
			break
		}
		cur = st.predecessor
	}
	return chain
}

// SimplifyProblem collapses p down to the stops named by keepStopIDs:
// for every kept stop and every distinct departure moment found on its
// outgoing segments, a Dijkstra search produces a direct edge to every
// other kept stop reachable without passing a third kept stop along
// the way. Networks whose connectivity between two kept stops is
// purely anytime (no scheduled segment ever departs the source) are
// still explored via one search seeded at departure zero, so a
// schedule-free network does not simplify to an empty graph.
func SimplifyProblem(p *transit.Problem, keepStopIDs []string) (*transit.Problem, error) {
	out := &transit.Problem{
		StopIDToIndex: make(map[string]int, len(keepStopIDs)),
		StopIndexToID: make([]string, 0, len(keepStopIDs)),
		TripIDToIndex: p.TripIDToIndex,
		TripIndexToID: p.TripIndexToID,
	}
	oldToNew := make(map[int]int, len(keepStopIDs))
	isKept := make([]bool, p.NumStops())

	for _, id := range keepStopIDs {
		oldIdx, err := p.StopIndex(id)
		if err != nil {
			return nil, ErrUnknownKeepStop
		}
		if _, dup := out.StopIDToIndex[id]; dup {
			continue
		}
		newIdx := len(out.StopIndexToID)
		out.StopIDToIndex[id] = newIdx
		out.StopIndexToID = append(out.StopIndexToID, id)
		oldToNew[oldIdx] = newIdx
		isKept[oldIdx] = true
	}

	numKept := len(out.StopIndexToID)
	pendingSegments := make([]map[int][]schedule.Segment, numKept)
	pendingAnytime := make([]map[int]uint32, numKept)
	for i := range pendingSegments {
		pendingSegments[i] = make(map[int][]schedule.Segment)
		pendingAnytime[i] = make(map[int]uint32)
	}

	rnr := newRunner(p, isKept)

	for _, sourceID := range out.StopIndexToID {
		source := p.StopIDToIndex[sourceID]
		newSource := out.StopIDToIndex[sourceID]

		departures := distinctDepartures(p, source)

		for _, dep := range departures {
			if err := rnr.run(source, dep); err != nil {
				return nil, err
			}
			extractEdges(rnr, source, isKept, oldToNew, newSource, pendingSegments, pendingAnytime)
		}
	}

	out.Edges = make([][]transit.Edge, numKept)
	out.Adjacency = make([][]int, numKept)
	for newSource := 0; newSource < numKept; newSource++ {
		dests := make(map[int]struct{}, len(pendingSegments[newSource])+len(pendingAnytime[newSource]))
		for dest := range pendingSegments[newSource] {
			dests[dest] = struct{}{}
		}
		for dest := range pendingAnytime[newSource] {
			dests[dest] = struct{}{}
		}
		sorted := make([]int, 0, len(dests))
		for dest := range dests {
			sorted = append(sorted, dest)
		}
		sort.Ints(sorted)

		for _, dest := range sorted {
			segs := pendingSegments[newSource][dest]
			schedule.SortSegments(segs)
			sch := schedule.Schedule{Segments: segs}
			if d, ok := pendingAnytime[newSource][dest]; ok {
				sch.AnytimeDuration = schedule.Dur32(d)
			}
			sch = schedule.EraseNonMinimal(sch)
			out.Edges[newSource] = append(out.Edges[newSource], transit.Edge{Destination: dest, Schedule: sch})
			out.Adjacency[newSource] = append(out.Adjacency[newSource], dest)
		}
	}

	return out, nil
}

func distinctDepartures(p *transit.Problem, source int) []uint32 {
	seen := make(map[uint32]struct{})
	hasAnytime := false
	for _, edge := range p.Edges[source] {
		if edge.Schedule.AnytimeDuration != nil {
			hasAnytime = true
		}
		for _, seg := range edge.Schedule.Segments {
			seen[seg.Departure] = struct{}{}
		}
	}
	if len(seen) == 0 {
		if hasAnytime {
			return []uint32{0}
		}
		return nil
	}
	out := make([]uint32, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// extractEdges walks the breadcrumb chain back to source for every
// kept destination reached by the last run, truncating at the kept
// stop nearest source (L) so a chain passing through an intermediate
// kept stop never produces a simplified edge that skips over it —
// that intermediate stop's own search already covers the remainder.
func extractEdges(r *runner, source int, isKept []bool, oldToNew map[int]int, newSource int, pendingSegments []map[int][]schedule.Segment, pendingAnytime []map[int]uint32) {
	for oldDest := range oldToNew {
		if oldDest == source {
			continue
		}
		if !r.states[oldDest].reached {
			continue
		}

		chain := r.chainToSource(oldDest)

		// chain's last entry is source itself, carrying no real
		// predecessor data; candidates for L range over everything
		// before it, scanned nearest-source-first so the first kept
		// stop found is the one closest to source.
		lIdx := 0
		for i := len(chain) - 2; i >= 0; i-- {
			if isKept[chain[i].stop] {
				lIdx = i
				break
			}
		}
		l := chain[lIdx]

		originDeparture := chain[len(chain)-2].predecessorDeparture
		departureTrip := chain[len(chain)-2].trip

		tripSet := make(map[int]struct{})
		var auxTrips []int
		for i := 0; i <= lIdx; i++ {
			if _, ok := tripSet[chain[i].trip]; ok {
				continue
			}
			tripSet[chain[i].trip] = struct{}{}
			auxTrips = append(auxTrips, chain[i].trip)
		}
		sort.Ints(auxTrips)

		lNew := oldToNew[l.stop]
		if lNew == newSource {
			continue
		}

		// A chain that never boards a scheduled trip represents a
		// connection available at any time, not one pinned to this
		// particular search's departure moment: record it as the
		// edge's anytime duration instead of a concrete segment.
		if pureAnytimeChain(chain, lIdx) {
			duration := l.arrival - originDeparture
			if best, ok := pendingAnytime[newSource][lNew]; !ok || duration < best {
				pendingAnytime[newSource][lNew] = duration
			}
			continue
		}

		seg := schedule.Segment{
			Departure:     originDeparture,
			Arrival:       l.arrival,
			DepartureTrip: departureTrip,
			ArrivalTrip:   l.trip,
			AuxTrips:      auxTrips,
		}

		existing := pendingSegments[newSource][lNew]
		dup := false
		for _, s := range existing {
			if s.Departure == seg.Departure && s.Arrival == seg.Arrival && s.DepartureTrip == seg.DepartureTrip && s.ArrivalTrip == seg.ArrivalTrip {
				dup = true
				break
			}
		}
		if !dup {
			pendingSegments[newSource][lNew] = append(existing, seg)
		}
	}
}

// pureAnytimeChain reports whether every leg from source to chain[lIdx]
// was ridden on the anytime trip. chain's last entry is source itself
// and carries no leg.
func pureAnytimeChain(chain []breadcrumb, lIdx int) bool {
	for i := lIdx; i < len(chain)-1; i++ {
		if chain[i].trip != schedule.AnytimeTrip {
			return false
		}
	}
	return true
}
