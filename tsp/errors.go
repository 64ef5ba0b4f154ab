package tsp

import "errors"

var (
	// ErrUnknownDummyStop is returned by MakeDenseProblem when a
	// non-empty dummyStopID does not name a stop in the problem.
	ErrUnknownDummyStop = errors.New("tsp: unknown dummy stop id")

	// ErrDimensionMismatch indicates a CostMatrix whose internal slices
	// (FromActive, ToActive, LinkedTo, LinkedFrom) and cost grid
	// disagree on stop count, or a stop count too small to form a tour.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonSquare indicates a cost grid that is not square.
	ErrNonSquare = errors.New("tsp: cost matrix is not square")
)
