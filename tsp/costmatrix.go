package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/matrix"

	"github.com/tourloop/tourloop/schedule"
)

// costInf stands in for "no edge" inside a CostMatrix's backing
// matrix.Dense grid. matrix.Dense rejects an actually-infinite value on
// Set, so — exactly as the ported algorithm's unsigned-integer source
// used std::numeric_limits<unsigned int>::max() as its sentinel — a
// large finite value plays the same role here. It is chosen far above
// any realistic sum of schedule durations so it always loses a min
// comparison against a real cost.
const costInf = 1e18

// CostMatrix is a Little's-algorithm search state: a cost grid plus the
// active-row/column bitmaps and chain bookkeeping CommitEdge maintains
// to forbid premature sub-tour closure.
type CostMatrix struct {
	// C holds the cost grid, C.At(from, to) being the current cost of
	// the from→to edge, or costInf if that edge has been excluded or
	// already closes a committed chain.
	C *matrix.Dense

	FromActive []bool
	ToActive   []bool

	// LinkedTo[i], for a stop i with no committed incoming edge, is the
	// farthest stop along the committed outgoing path from i (i itself
	// if none is committed). LinkedFrom is the symmetric bookkeeping in
	// the opposite direction.
	LinkedTo   []int
	LinkedFrom []int

	NumCommittedEdges int
}

// NumStops returns the cost matrix's stop count.
func (cm *CostMatrix) NumStops() int {
	return len(cm.FromActive)
}

func (cm *CostMatrix) at(from, to int) float64 {
	v, err := cm.C.At(from, to)
	if err != nil {
		panic(fmt.Sprintf("tsp: cost matrix At(%d,%d): %v", from, to, err))
	}
	return v
}

func (cm *CostMatrix) set(from, to int, v float64) {
	if err := cm.C.Set(from, to, v); err != nil {
		panic(fmt.Sprintf("tsp: cost matrix Set(%d,%d): %v", from, to, err))
	}
}

// At returns the current from→to cost, reporting an excluded/forbidden
// edge as +Inf rather than the internal finite sentinel.
func (cm *CostMatrix) At(from, to int) float64 {
	v := cm.at(from, to)
	if v >= costInf {
		return math.Inf(1)
	}
	return v
}

// findSetIndex returns the smallest index >= i with active[index] true,
// or len(active) if none exists.
func findSetIndex(i int, active []bool) int {
	for i < len(active) && !active[i] {
		i++
	}
	return i
}

// NextFrom returns the smallest active row index >= i.
func (cm *CostMatrix) NextFrom(i int) int { return findSetIndex(i, cm.FromActive) }

// NextTo returns the smallest active column index >= i.
func (cm *CostMatrix) NextTo(i int) int { return findSetIndex(i, cm.ToActive) }

// CommitEdge fixes from→to as part of the tour: its row and column
// become inactive, the committed count increments, and the edge that
// would close the partial chain prematurely (from the chain's true
// end back to its true start) is forbidden by setting its cost to costInf.
func (cm *CostMatrix) CommitEdge(from, to int) {
	ultimateTo := cm.LinkedTo[to]
	ultimateFrom := cm.LinkedFrom[from]

	cm.LinkedTo[cm.LinkedFrom[from]] = ultimateTo
	cm.LinkedFrom[cm.LinkedTo[to]] = ultimateFrom

	cm.set(ultimateTo, ultimateFrom, costInf)

	cm.FromActive[from] = false
	cm.ToActive[to] = false
	cm.NumCommittedEdges++
}

// clone returns a deep, independent copy of cm, mirroring the
// by-value CostMatrix copies the ported algorithm relies on when
// branching (committing an edge on one branch must never mutate the
// matrix another branch still needs).
func (cm *CostMatrix) clone() *CostMatrix {
	n := cm.NumStops()
	d, err := matrix.NewDense(n, n)
	if err != nil {
		panic(fmt.Sprintf("tsp: clone cost matrix: %v", err))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := d.Set(i, j, cm.at(i, j)); err != nil {
				panic(fmt.Sprintf("tsp: clone cost matrix Set(%d,%d): %v", i, j, err))
			}
		}
	}
	return &CostMatrix{
		C:                 d,
		FromActive:        append([]bool(nil), cm.FromActive...),
		ToActive:          append([]bool(nil), cm.ToActive...),
		LinkedTo:          append([]int(nil), cm.LinkedTo...),
		LinkedFrom:        append([]int(nil), cm.LinkedFrom...),
		NumCommittedEdges: cm.NumCommittedEdges,
	}
}

// NewCostMatrixFromCosts builds a CostMatrix directly from a row-major
// n×n cost grid (costs[from*n+to]), accepting math.Inf(1) as "no edge".
// This is the entry point for callers solving a raw cost matrix rather
// than one derived from a DenseProblem.
func NewCostMatrixFromCosts(n int, costs []float64) (*CostMatrix, error) {
	if n <= 0 || len(costs) != n*n {
		return nil, ErrDimensionMismatch
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			v := costs[from*n+to]
			if math.IsInf(v, 1) || v >= costInf {
				v = costInf
			}
			if err := d.Set(from, to, v); err != nil {
				return nil, err
			}
		}
	}

	fromActive := make([]bool, n)
	toActive := make([]bool, n)
	linkedTo := make([]int, n)
	linkedFrom := make([]int, n)
	for i := 0; i < n; i++ {
		fromActive[i] = true
		toActive[i] = true
		linkedTo[i] = i
		linkedFrom[i] = i
	}

	return &CostMatrix{
		C:          d,
		FromActive: fromActive,
		ToActive:   toActive,
		LinkedTo:   linkedTo,
		LinkedFrom: linkedFrom,
	}, nil
}

// NewCostMatrix derives the initial cost matrix from a DenseProblem,
// seeding each cell with its Schedule's lower bound (spec's "cost
// matrix seed"): the minimum over segment durations, the anytime
// duration if present, and +infinity if the schedule is empty.
func NewCostMatrix(dp *DenseProblem) *CostMatrix {
	n := dp.NumStops
	costs := make([]float64, n*n)
	for i, sched := range dp.Entries {
		lb := sched.LowerBound()
		if lb == schedule.InfiniteDuration {
			costs[i] = costInf
		} else {
			costs[i] = float64(lb)
		}
	}
	cm, err := NewCostMatrixFromCosts(n, costs)
	if err != nil {
		panic(fmt.Sprintf("tsp: NewCostMatrix: %v", err))
	}
	return cm
}

// ReduceCostMatrix performs the standard row-then-column min-subtraction
// reduction over cm's active rows and columns, skipping costInf cells,
// mutating cm in place and returning the total amount subtracted — the
// lower-bound contribution of this reduction.
func ReduceCostMatrix(cm *CostMatrix) float64 {
	n := cm.NumStops()
	var reduction float64
	toMinCost := make([]float64, n)
	for i := range toMinCost {
		toMinCost[i] = costInf
	}

	for from := cm.NextFrom(0); from < n; from = cm.NextFrom(from + 1) {
		minCost := costInf
		for to := cm.NextTo(0); to < n; to = cm.NextTo(to + 1) {
			if v := cm.at(from, to); v < minCost {
				minCost = v
			}
		}
		reduction += minCost
		for to := cm.NextTo(0); to < n; to = cm.NextTo(to + 1) {
			v := cm.at(from, to)
			if v < costInf {
				v -= minCost
				cm.set(from, to, v)
			}
			if v < toMinCost[to] {
				toMinCost[to] = v
			}
		}
	}

	for to := cm.NextTo(0); to < n; to = cm.NextTo(to + 1) {
		minCost := toMinCost[to]
		reduction += minCost
		for from := cm.NextFrom(0); from < n; from = cm.NextFrom(from + 1) {
			if v := cm.at(from, to); v < costInf {
				cm.set(from, to, v-minCost)
			}
		}
	}

	return reduction
}
