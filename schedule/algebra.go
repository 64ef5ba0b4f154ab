// Package schedule: algebra.go implements EraseNonMinimal, Compose, and
// Merge — the three operations spec'd as the "ScheduleAlgebra" core.
//
// Grounded on original_source/src/Problem.cpp's EraseNonMinimal,
// GetMinimalConnectingSegments/GetMinimalConnectingSchedule, and
// MergeIntoSchedule, generalized to the corrected, spec-formalized
// semantics for the mixed anytime/segment composition cases (the
// original C++ left that path a documented TODO; this package
// implements the composition the way spec.md describes it).
package schedule

// EraseNonMinimal returns a copy of s with every dominated segment
// removed: scanning latest-to-earliest (by departure), a segment is
// dropped if its arrival is not strictly better than every segment
// already kept, or if its duration meets or exceeds the schedule's own
// anytime duration (the anytime component itself is never removed).
//
// EraseNonMinimal accepts its input in any order — it canonicalizes
// before scanning — so repeated calls are idempotent.
//
// Complexity: O(n log n) due to the canonicalizing sort (O(n) if the
// input is already sorted, since sort.SliceStable short-circuits
// cheaply on already-ordered data in practice, though the bound itself
// remains O(n log n) in the worst case).
func EraseNonMinimal(s Schedule) Schedule {
	segs := make([]Segment, len(s.Segments))
	copy(segs, s.Segments)
	sortSegments(segs)

	anytime := s.anytimeOrInf()
	bestArrival := uint32(InfiniteDuration)
	kept := make([]Segment, 0, len(segs))
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		if seg.Arrival >= bestArrival || seg.Duration() >= anytime {
			continue
		}
		bestArrival = seg.Arrival
		kept = append(kept, seg)
	}
	// kept was built latest-to-earliest; reverse to restore canonical order.
	for l, r := 0, len(kept)-1; l < r; l, r = l+1, r-1 {
		kept[l], kept[r] = kept[r], kept[l]
	}

	return Schedule{Segments: kept, AnytimeDuration: s.AnytimeDuration}
}

// minimalConnectingSegments runs the two-pointer sweep of spec's
// "Minimal connection" definition over two segment lists already sorted
// canonically, returning every new segment formed by riding a then b.
//
// transferSeconds(i, j) is 0 when a[i]'s arrival trip equals b[j]'s
// departure trip (no transfer: the rider never got off), else
// minTransfer.
//
// Complexity: O(|a|+|b|).
func minimalConnectingSegments(a, b []Segment, minTransfer uint32) []Segment {
	transferSeconds := func(ai, bi int) uint32 {
		if a[ai].ArrivalTrip == b[bi].DepartureTrip {
			return 0
		}
		return minTransfer
	}

	var result []Segment
	ai, bi := 0, 0
	for ai < len(a) {
		for bi < len(b) && b[bi].Departure < a[ai].Arrival+transferSeconds(ai, bi) {
			bi++
		}
		if bi == len(b) {
			break
		}
		isLast := ai == len(a)-1
		if isLast || a[ai+1].Arrival+transferSeconds(ai+1, bi) > b[bi].Departure {
			result = append(result, Segment{
				Departure:     a[ai].Departure,
				Arrival:       b[bi].Arrival,
				DepartureTrip: a[ai].DepartureTrip,
				ArrivalTrip:   b[bi].ArrivalTrip,
			})
		}
		ai++
	}
	return result
}

// Compose produces the schedule representing "take a, then b", honoring
// minTransferSeconds whenever the rider changes trips (same-trip
// continuations, detected via ArrivalTrip == DepartureTrip, never pay a
// transfer).
//
// Four composition paths feed the result, matched against the presence
// of each side's anytime component:
//
//   - both present: the result's anytime is their sum.
//   - a has an anytime component: every segment of b can also be
//     reached by taking a's anytime leg instead of a scheduled segment
//     of a, departing dA seconds before b's own segment departure so as
//     to reach b's departure stop just in time (segments of b departing
//     earlier than dA are skipped).
//   - b has an anytime component: symmetric, for every segment of a.
//   - always: the two-pointer minimal-connection sweep between a's and
//     b's segment lists.
//
// All candidate segments are collected, sorted into canonical order,
// and passed through EraseNonMinimal (which also applies the resulting
// anytime duration as a cutoff).
//
// Complexity: O(|A|+|B|) to collect candidates, O(n log n) to sort them.
func Compose(a, b Schedule, minTransferSeconds uint32) Schedule {
	var result Schedule
	if a.AnytimeDuration != nil && b.AnytimeDuration != nil {
		sum := *a.AnytimeDuration + *b.AnytimeDuration
		result.AnytimeDuration = &sum
	}

	var segs []Segment
	if a.AnytimeDuration != nil {
		dA := *a.AnytimeDuration
		for _, s := range b.Segments {
			if s.Departure < dA {
				// Would require departing before the service-day epoch;
				// no valid anytime-then-b composition exists here.
				continue
			}
			segs = append(segs, Segment{
				Departure:     s.Departure - dA,
				Arrival:       s.Arrival,
				DepartureTrip: AnytimeTrip,
				ArrivalTrip:   s.ArrivalTrip,
			})
		}
	}
	if b.AnytimeDuration != nil {
		dB := *b.AnytimeDuration
		for _, s := range a.Segments {
			segs = append(segs, Segment{
				Departure:     s.Departure,
				Arrival:       s.Arrival + dB,
				DepartureTrip: s.DepartureTrip,
				ArrivalTrip:   AnytimeTrip,
			})
		}
	}
	segs = append(segs, minimalConnectingSegments(a.Segments, b.Segments, minTransferSeconds)...)

	sortSegments(segs)
	result.Segments = segs

	return EraseNonMinimal(result)
}

// Merge combines src into *dst in place, taking the minimum of the two
// anytime components (absence treated as +infinity) and the union of
// their segments, then eliminating non-minimal entries. Merge is the
// one operation in this package that mutates its argument directly,
// mirroring its use inside Floyd–Warshall-style closures (package tsp)
// where a destination cell accumulates contributions from many
// intermediate stops.
//
// Merge(dst, empty) leaves dst's minimal-segment set unchanged.
// Merge(dst, *dst) is a no-op after EraseNonMinimal deduplicates the
// doubled segment list.
//
// Complexity: O(|dst|+|src|) to merge, O(n log n) worst case to sort.
func Merge(dst *Schedule, src Schedule) {
	anytime := dst.anytimeOrInf()
	if a := src.anytimeOrInf(); a < anytime {
		anytime = a
	}
	if anytime != InfiniteDuration {
		v := anytime
		dst.AnytimeDuration = &v
	}

	merged := make([]Segment, 0, len(dst.Segments)+len(src.Segments))
	merged = append(merged, dst.Segments...)
	merged = append(merged, src.Segments...)
	sortSegments(merged)
	dst.Segments = merged

	*dst = EraseNonMinimal(*dst)
}
