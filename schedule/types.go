package schedule

import (
	"math"
	"sort"
)

// AnytimeTrip is the reserved trip index meaning "no scheduled trip was
// taken" — used for both endpoints of a pure anytime transition, and for
// whichever endpoint of a mixed anytime/segment composition crosses the
// anytime leg. Problem-building code (package transit) reserves trip
// index 0 for exactly this purpose, per spec.
const AnytimeTrip = 0

// InfiniteDuration stands in for "+infinity" wherever a duration bound
// is needed but no anytime component is present. It equals
// math.MaxUint32, a value valid times and durations never reach; adding
// to it overflows, so it is only ever compared against.
const InfiniteDuration = math.MaxUint32

// Segment is a single time-discriminating (departure, arrival) entry in
// a Schedule. DepartureTrip and ArrivalTrip are AnytimeTrip (0) iff this
// segment represents an anytime transition; otherwise they identify the
// scheduled trip boarded at departure and alighted at arrival.
//
// AuxTrips optionally records every distinct trip index used along a
// composed segment, for display purposes only — solving logic never
// reads it.
type Segment struct {
	Departure uint32
	Arrival   uint32

	DepartureTrip int
	ArrivalTrip   int

	AuxTrips []int
}

// Duration returns Arrival - Departure. Callers must ensure Arrival >=
// Departure (a Segment invariant maintained by every constructor in this
// package).
func (s Segment) Duration() uint32 {
	return s.Arrival - s.Departure
}

// Schedule is a minimal set of Segments plus an optional anytime
// duration. Segments are always kept sorted by (Departure asc, Arrival
// desc on ties) and contain no dominated entry — see EraseNonMinimal.
type Schedule struct {
	Segments        []Segment
	AnytimeDuration *uint32
}

// Empty reports whether the schedule has neither segments nor an
// anytime component, i.e. represents "no connection at all".
func (s Schedule) Empty() bool {
	return len(s.Segments) == 0 && s.AnytimeDuration == nil
}

// anytimeOrInf returns the schedule's anytime duration, or
// InfiniteDuration if none is set.
func (s Schedule) anytimeOrInf() uint32 {
	if s.AnytimeDuration == nil {
		return InfiniteDuration
	}
	return *s.AnytimeDuration
}

// Dur32 is a convenience constructor for *uint32, used throughout tests
// and call sites that need to populate Schedule.AnytimeDuration.
func Dur32(v uint32) *uint32 {
	return &v
}

// segmentLess implements the canonical Schedule ordering: departure
// ascending, ties broken by arrival descending.
func segmentLess(a, b Segment) bool {
	if a.Departure != b.Departure {
		return a.Departure < b.Departure
	}
	return a.Arrival > b.Arrival
}

// sortSegments sorts s in place using the canonical order. Used only by
// constructors that assemble segments out of order (e.g. transit's
// per-edge accumulation); every function in this package that returns a
// Schedule already returns one in canonical order.
func sortSegments(segs []Segment) {
	sort.SliceStable(segs, func(i, j int) bool { return segmentLess(segs[i], segs[j]) })
}

// isSorted reports whether segs is already in canonical order. No
// routine in this package calls it: each one sorts its input itself.
func isSorted(segs []Segment) bool {
	for i := 1; i < len(segs); i++ {
		if segmentLess(segs[i], segs[i-1]) {
			return false
		}
	}
	return true
}

// LowerBound returns the minimum duration over every segment, the
// anytime component (if any), and +infinity if the schedule is empty.
// This is the scalar used to seed a TSP cost-matrix entry from a
// Schedule (spec's "Cost matrix seed").
func (s Schedule) LowerBound() uint32 {
	best := s.anytimeOrInf()
	for _, seg := range s.Segments {
		if d := seg.Duration(); d < best {
			best = d
		}
	}
	return best
}

// SortSegments sorts segs into canonical order in place. Exported for
// callers outside this package (package transit) that build up a
// Schedule's Segments slice incrementally and need to canonicalize it
// before handing the Schedule to EraseNonMinimal.
func SortSegments(segs []Segment) {
	sortSegments(segs)
}
