package transit

import "errors"

// Sentinel errors returned by package transit.
var (
	// ErrEmptyStopID indicates a WorldSegment or AnytimeConnection named
	// the empty string as an origin or destination stop id.
	ErrEmptyStopID = errors.New("transit: stop id is empty")

	// ErrSameOriginDestination indicates a WorldSegment or
	// AnytimeConnection named the same stop as both origin and
	// destination, violating the World invariant that endpoints are
	// distinct.
	ErrSameOriginDestination = errors.New("transit: segment origin equals destination")

	// ErrUnknownStop is returned by lookups against a Problem for a stop
	// id that was never added during BuildProblem.
	ErrUnknownStop = errors.New("transit: unknown stop id")
)
