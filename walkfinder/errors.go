package walkfinder

import "errors"

// Sentinel errors returned by package walkfinder.
var (
	// ErrTooManyStops indicates the adjacency list has more stops than
	// BitsetWidth, exceeding the compile-time bitset capacity.
	ErrTooManyStops = errors.New("walkfinder: stop count exceeds bitset width")

	// ErrStartOutOfRange indicates start does not index a stop in the
	// adjacency list.
	ErrStartOutOfRange = errors.New("walkfinder: start stop out of range")
)
