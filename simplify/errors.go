package simplify

import "errors"

var (
	// ErrMultiTripSegment is returned when an edge being simplified
	// carries a segment whose departure and arrival trip differ.
	// Simplification relaxes one scheduled hop at a time and assumes
	// every input segment is a single uninterrupted ride.
	ErrMultiTripSegment = errors.New("simplify: segment spans more than one trip")

	// ErrUnknownKeepStop is returned when a requested keep stop id is
	// not present in the source problem.
	ErrUnknownKeepStop = errors.New("simplify: unknown keep stop id")
)
