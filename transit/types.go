package transit

import "github.com/tourloop/tourloop/schedule"

// AnytimeTripID is the trip id reserved for anytime transitions, mapped
// to trip index schedule.AnytimeTrip (0) by BuildProblem.
const AnytimeTripID = "anytime"

// Stop is a named location. ParentID is empty for a root stop; only
// root stops are ever referenced as Segment or AnytimeConnection
// endpoints — station-grouping is an ingest-time concern this package
// does not enforce.
type Stop struct {
	ID       string
	Name     string
	ParentID string
}

// TripStopTime is one scheduled (stop, arrival, departure) entry along
// a Trip. Arrival must not exceed Departure, and consecutive
// TripStopTime.Arrival values along a Trip must be non-decreasing —
// both are ingest-time invariants this package assumes rather than
// checks, since Trip.StopTimes is informational here: BuildProblem
// consumes WorldSegment, not Trip, to build edges.
type TripStopTime struct {
	StopID    string
	Arrival   uint32
	Departure uint32
}

// Trip is an ordered run of a vehicle along a route.
type Trip struct {
	ID        string
	RouteID   string
	StopTimes []TripStopTime
}

// WorldSegment is a single scheduled trip segment between two stops:
// board TripID at OriginStopID at time Departure, alight at
// DestinationStopID, Duration seconds later.
type WorldSegment struct {
	OriginStopID      string
	DestinationStopID string
	Departure         uint32
	Duration          uint32
	TripID            string
}

// AnytimeConnection is an always-available walk/bike-style link. World
// builders are expected to insert the reverse counterpart themselves
// when the connection is bidirectional; BuildProblem does not infer it.
type AnytimeConnection struct {
	OriginStopID      string
	DestinationStopID string
	Duration          uint32
}

// World is the sparse input supplied by an ingest collaborator (GTFS
// parsing and similar are out of this module's scope).
type World struct {
	Stops              []Stop
	Trips              []Trip
	Segments           []WorldSegment
	AnytimeConnections []AnytimeConnection
}

// Edge is one outgoing connection from its owning stop, identified by
// Destination's dense stop index and carrying the accumulated Schedule
// for that (origin, destination) pair.
type Edge struct {
	Destination int
	Schedule    schedule.Schedule
}

// Problem is the dense, read-only graph BuildProblem produces from a
// World. Stop and trip indices are contiguous from 0 in first-sighting
// order; TripIndexToID[schedule.AnytimeTrip] is always "anytime".
//
// Edges[i] holds every outgoing Edge from stop index i, at most one per
// destination. Adjacency is a destination-only projection of Edges,
// kept in sync by every constructor in this package, for callers (e.g.
// walkfinder) that only need graph shape, not schedules.
type Problem struct {
	StopIDToIndex map[string]int
	StopIndexToID []string

	TripIDToIndex map[string]int
	TripIndexToID []string

	Edges     [][]Edge
	Adjacency [][]int
}

// StopIndex returns the dense index for stopID, or ErrUnknownStop.
func (p *Problem) StopIndex(stopID string) (int, error) {
	idx, ok := p.StopIDToIndex[stopID]
	if !ok {
		return 0, ErrUnknownStop
	}
	return idx, nil
}

// EdgeTo returns the Edge from origin to destination and true, or the
// zero Edge and false if no such edge exists.
func (p *Problem) EdgeTo(origin, destination int) (Edge, bool) {
	for _, e := range p.Edges[origin] {
		if e.Destination == destination {
			return e, true
		}
	}
	return Edge{}, false
}

// NumStops returns the number of dense stop indices in the Problem.
func (p *Problem) NumStops() int {
	return len(p.StopIndexToID)
}
