package walkfinder

// BitsetWidth is the maximum number of stops this package can track in
// a single search: every visited-set and loop-abort bitset is a single
// uint64 keyed by stop index.
const BitsetWidth = 64

// searchState is the DFS engine's mutable state, held across the whole
// recursion so that recursive calls can save, mutate, and restore it on
// backtrack rather than threading copies through return values.
type searchState struct {
	adjacency [][]int
	targets   uint64
	visitor   Visitor

	// visitedAtStop[v] is the target-visited bitset recorded the last
	// time the DFS was at stop v, or 0 if v has not been visited yet.
	visitedAtStop []uint64

	// loopAborts is the stack of "targets visited since this revisit"
	// bitsets described in the package doc comment.
	loopAborts []uint64
}

// FindMinimalWalks enumerates every minimal walk starting at start that
// covers every stop index in targets, invoking visitor along the way.
// Each walk ends at the stop where coverage completes; it is not
// extended back to start. adjacency is a plain destination-index
// adjacency list (transit.Problem.Adjacency is a direct fit).
//
// Grounded on the same recursive shape as the original walk enumerator:
// a target-visited bitset carried down the recursion, a per-stop
// "last visited-at" record, and a stack of loop-abort bitsets that
// prunes the branch the instant a revisit is proven to have added no
// target coverage.
func FindMinimalWalks(adjacency [][]int, targets []int, start int, visitor Visitor) error {
	n := len(adjacency)
	if n > BitsetWidth {
		return ErrTooManyStops
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	var targetMask uint64
	for _, t := range targets {
		targetMask |= 1 << uint(t)
	}

	st := &searchState{
		adjacency:     adjacency,
		targets:       targetMask,
		visitor:       visitor,
		visitedAtStop: make([]uint64, n),
	}

	var startVisited uint64
	if targetMask&(1<<uint(start)) != 0 {
		startVisited = 1 << uint(start)
	}

	st.recurse(start, startVisited)
	return nil
}

func (st *searchState) recurse(current int, currentVisited uint64) {
	if !st.visitor.PushStop(current) {
		st.visitor.PopStop()
		return
	}

	if currentVisited == st.targets {
		st.visitor.WalkDone()
		st.visitor.PopStop()
		return
	}

	oldLoopAborts := append([]uint64(nil), st.loopAborts...)
	oldVisitedAtCurrent := st.visitedAtStop[current]
	st.visitedAtStop[current] = currentVisited
	if oldVisitedAtCurrent != 0 {
		st.loopAborts = append(st.loopAborts, currentVisited&^oldVisitedAtCurrent)
	}

	bit := uint64(1) << uint(current)
	for i := range st.loopAborts {
		st.loopAborts[i] &^= bit
		if st.loopAborts[i] == 0 {
			st.visitedAtStop[current] = oldVisitedAtCurrent
			st.loopAborts = oldLoopAborts
			st.visitor.PopStop()
			return
		}
	}

	for _, next := range st.adjacency[current] {
		nextVisited := currentVisited
		if st.targets&(1<<uint(next)) != 0 {
			nextVisited |= 1 << uint(next)
		}
		st.recurse(next, nextVisited)
	}

	st.visitedAtStop[current] = oldVisitedAtCurrent
	st.loopAborts = oldLoopAborts
	st.visitor.PopStop()
}
