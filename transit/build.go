package transit

import "github.com/tourloop/tourloop/schedule"

// builder accumulates a Problem incrementally while assigning dense
// indices in first-sighting order, mirroring the id->index/index->id
// pair maintained throughout this package.
type builder struct {
	p *Problem
}

func newBuilder() *builder {
	return &builder{p: &Problem{
		StopIDToIndex: make(map[string]int),
		TripIDToIndex: make(map[string]int),
	}}
}

// getOrAddStop returns stopID's dense index, assigning the next
// available one (and growing Edges/Adjacency in lockstep) on first
// sight.
func (b *builder) getOrAddStop(stopID string) (int, error) {
	if stopID == "" {
		return 0, ErrEmptyStopID
	}
	if idx, ok := b.p.StopIDToIndex[stopID]; ok {
		return idx, nil
	}
	idx := len(b.p.StopIndexToID)
	b.p.StopIDToIndex[stopID] = idx
	b.p.StopIndexToID = append(b.p.StopIndexToID, stopID)
	b.p.Edges = append(b.p.Edges, nil)
	b.p.Adjacency = append(b.p.Adjacency, nil)
	return idx, nil
}

// getOrAddTrip returns tripID's dense index, assigning the next
// available one on first sight. Callers must reserve index 0 for
// AnytimeTripID before adding any other trip — BuildProblem does this
// up front.
func (b *builder) getOrAddTrip(tripID string) int {
	if idx, ok := b.p.TripIDToIndex[tripID]; ok {
		return idx
	}
	idx := len(b.p.TripIndexToID)
	b.p.TripIDToIndex[tripID] = idx
	b.p.TripIndexToID = append(b.p.TripIndexToID, tripID)
	return idx
}

// getOrAddEdge returns a pointer to the Edge from origin to
// destination, creating one (and recording the adjacency projection)
// on first sight.
func (b *builder) getOrAddEdge(origin, destination int) *Edge {
	for i := range b.p.Edges[origin] {
		if b.p.Edges[origin][i].Destination == destination {
			return &b.p.Edges[origin][i]
		}
	}
	b.p.Edges[origin] = append(b.p.Edges[origin], Edge{Destination: destination})
	b.p.Adjacency[origin] = append(b.p.Adjacency[origin], destination)
	return &b.p.Edges[origin][len(b.p.Edges[origin])-1]
}

// BuildProblem assembles a dense, read-only Problem from a World: every
// WorldSegment contributes one Segment to its (origin, destination)
// Edge's Schedule; every AnytimeConnection sets that Edge's
// AnytimeDuration. Trip index schedule.AnytimeTrip (0) is reserved for
// AnytimeTripID before any WorldSegment trip is indexed.
//
// Each edge's accumulated segments are sorted into canonical order
// before BuildProblem returns, but EraseNonMinimal is not run here —
// a freshly built Problem may legitimately carry redundant segments;
// pruning them is Simplifier's job, not ingest's.
func BuildProblem(w World) (*Problem, error) {
	b := newBuilder()
	b.getOrAddTrip(AnytimeTripID)

	for _, seg := range w.Segments {
		if seg.OriginStopID == seg.DestinationStopID {
			return nil, ErrSameOriginDestination
		}
		origin, err := b.getOrAddStop(seg.OriginStopID)
		if err != nil {
			return nil, err
		}
		destination, err := b.getOrAddStop(seg.DestinationStopID)
		if err != nil {
			return nil, err
		}
		tripIdx := b.getOrAddTrip(seg.TripID)
		edge := b.getOrAddEdge(origin, destination)
		edge.Schedule.Segments = append(edge.Schedule.Segments, schedule.Segment{
			Departure:     seg.Departure,
			Arrival:       seg.Departure + seg.Duration,
			DepartureTrip: tripIdx,
			ArrivalTrip:   tripIdx,
		})
	}

	for _, ac := range w.AnytimeConnections {
		if ac.OriginStopID == ac.DestinationStopID {
			return nil, ErrSameOriginDestination
		}
		origin, err := b.getOrAddStop(ac.OriginStopID)
		if err != nil {
			return nil, err
		}
		destination, err := b.getOrAddStop(ac.DestinationStopID)
		if err != nil {
			return nil, err
		}
		edge := b.getOrAddEdge(origin, destination)
		dur := ac.Duration
		edge.Schedule.AnytimeDuration = &dur
	}

	for i := range b.p.Edges {
		for j := range b.p.Edges[i] {
			schedule.SortSegments(b.p.Edges[i][j].Schedule.Segments)
		}
	}

	return b.p, nil
}
