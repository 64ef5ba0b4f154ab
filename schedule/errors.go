package schedule

import "errors"

// Sentinel errors of package schedule.
var (
	// ErrUnsortedInput names the condition of segments not sorted by
	// (departure asc, arrival desc on ties). No operation of this
	// package returns it: EraseNonMinimal, Compose and Merge sort their
	// segments themselves before relying on that order.
	ErrUnsortedInput = errors.New("schedule: segments are not sorted by (departure asc, arrival desc)")
)
