package solve

// WalkResult is one candidate solution: a walk (sequence of dense stop
// indices, ending where coverage completes) achieving Duration seconds. Anytime is true when
// this candidate's duration came from an edge's always-available
// component rather than a scheduled departure, in which case
// DepartureTime carries no meaning.
type WalkResult struct {
	Stops         []int
	Duration      uint32
	DepartureTime uint32
	Anytime       bool
}

// Result is Solve's output: the best duration found (schedule.InfiniteDuration
// if the target set was empty or unreachable) and every tying WalkResult.
type Result struct {
	BestDuration uint32
	Walks        []WalkResult
}
