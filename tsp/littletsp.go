package tsp

import (
	"container/heap"
	"math"
)

// rightModeResetEvery periodically re-enables the right-dive traversal
// after a run of heap pops, keeping the upper bound from going stale on
// long best-first stretches.
const rightModeResetEvery = 10_000

// searchEdge labels the branch taken from parent: either "from→to is
// excluded" or "from→to is committed".
type searchEdge struct {
	parent  int
	exclude bool
	from    int
	to      int
}

// searchNode is one node of the branch-and-bound tree: its edge label
// (nil at the root), the lower bound established when it was built, and
// whether the search has already expanded it.
type searchNode struct {
	edge    *searchEdge
	lb      float64
	visited bool
}

// heapEntry is the priority-queue payload: a node index ordered by its
// lower bound, ascending (best-first).
type heapEntry struct {
	lb   float64
	node int
}

type nodeHeap []heapEntry

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].lb < h[j].lb }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(heapEntry)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// littleEngine is the dedicated branch-and-bound search engine for one
// LittleTSP call: explicit mutable search state in struct fields rather
// than closures, the same shape the teacher's own branch-and-bound
// engine uses for its DFS frontier.
type littleEngine struct {
	numStops int

	initialReduced   *CostMatrix
	initialReduction float64

	nodes []searchNode
	heap  nodeHeap

	cost        *CostMatrix
	costForNode int

	rightMode bool
	ub        float64
}

// LittleTSP runs Little's branch-and-bound algorithm over cm to exact
// optimality and returns the minimum tour cost. math.Inf(1) signals no
// feasible tour exists — this is an ordinary result, not an error.
func LittleTSP(cm *CostMatrix) (float64, error) {
	if cm == nil {
		return 0, ErrDimensionMismatch
	}
	n := cm.NumStops()
	if n < 2 {
		return 0, ErrDimensionMismatch
	}
	if rows, cols := cm.C.Rows(), cm.C.Cols(); rows != cols {
		return 0, ErrNonSquare
	} else if rows != n || len(cm.ToActive) != n || len(cm.LinkedTo) != n || len(cm.LinkedFrom) != n {
		return 0, ErrDimensionMismatch
	}

	initialReduced := cm.clone()
	initialReduction := ReduceCostMatrix(initialReduced)

	e := &littleEngine{
		numStops:         n,
		initialReduced:   initialReduced,
		initialReduction: initialReduction,
		cost:             initialReduced.clone(),
		costForNode:      0,
		rightMode:        true,
		ub:               costInf,
	}
	e.nodes = append(e.nodes, searchNode{lb: initialReduction})
	heap.Init(&e.heap)
	heap.Push(&e.heap, heapEntry{lb: initialReduction, node: 0})

	ub := e.run()
	if ub >= costInf {
		return math.Inf(1), nil
	}
	return ub, nil
}

func (e *littleEngine) run() float64 {
	numSteps := 0
	for e.heap.Len() > 0 || e.rightMode {
		topIdx, ok := e.popNext()
		if !ok {
			continue
		}
		if e.nodes[topIdx].visited {
			continue
		}
		e.nodes[topIdx].visited = true
		topNode := e.nodes[topIdx]

		if topNode.lb >= e.ub {
			if e.rightMode {
				// A right-dive pick is not the heap minimum: prune only
				// this node and keep searching.
				continue
			}
			return e.ub
		}

		numSteps++
		if numSteps%rightModeResetEvery == 0 {
			e.rightMode = true
		}

		if topIdx != e.costForNode {
			topNode.lb = e.rebuildCost(topIdx, topNode)
			e.nodes[topIdx].lb = topNode.lb
			e.costForNode = topIdx
		}

		if e.cost.NumCommittedEdges == e.numStops-2 {
			if topNode.lb < e.ub {
				e.ub = topNode.lb
			}
			if e.rightMode {
				e.rightMode = false
			}
			continue
		}

		e.branch(topIdx, topNode)
	}
	return e.ub
}

// popNext selects the next node to expand: right-dive mode walks down
// to the most recently pushed unvisited include-node; otherwise the
// heap's best (lowest lb) node is popped. A false ok means the caller
// should loop again (right-dive just ran dry and fell back to the
// heap).
func (e *littleEngine) popNext() (int, bool) {
	if e.rightMode {
		idx := len(e.nodes) - 1
		for idx > 0 && (e.nodes[idx].visited || (e.nodes[idx].edge != nil && e.nodes[idx].edge.exclude)) {
			idx--
		}
		if idx == 0 && e.nodes[idx].visited {
			e.rightMode = false
			return 0, false
		}
		return idx, true
	}
	top := heap.Pop(&e.heap).(heapEntry)
	return top.node, true
}

// rebuildCost lazily reconstructs the cost matrix for topIdx by
// replaying its parent chain of include/exclude decisions against the
// stored initially-reduced matrix, then re-reducing. Reductions do not
// commute, so the node's lb is overwritten with the reduction found
// along this particular path — still a valid bound for any tour
// feasible through this node.
func (e *littleEngine) rebuildCost(topIdx int, topNode searchNode) float64 {
	cost := e.initialReduced.clone()
	cur := topNode
	reduction := 0.0
	for cur.edge != nil {
		if cur.edge.exclude {
			cost.set(cur.edge.from, cur.edge.to, costInf)
		} else {
			cost.CommitEdge(cur.edge.from, cur.edge.to)
			reduction += cost.at(cur.edge.from, cur.edge.to)
		}
		cur = e.nodes[cur.edge.parent]
	}
	reduction += ReduceCostMatrix(cost)
	e.cost = cost
	return e.initialReduction + reduction
}

// branch selects the θ-regret branch cell on e.cost and pushes the
// exclude and include children, pruning either side whose bound cannot
// beat the current upper bound.
func (e *littleEngine) branch(topIdx int, topNode searchNode) {
	n := e.numStops
	cost := e.cost

	fromNumZeros := make([]int, n)
	toNumZeros := make([]int, n)
	fromSmallestNonzero := make([]float64, n)
	toSmallestNonzero := make([]float64, n)
	for i := range fromSmallestNonzero {
		fromSmallestNonzero[i] = costInf
		toSmallestNonzero[i] = costInf
	}

	for from := cost.NextFrom(0); from < n; from = cost.NextFrom(from + 1) {
		for to := cost.NextTo(0); to < n; to = cost.NextTo(to + 1) {
			v := cost.at(from, to)
			if v == 0 {
				fromNumZeros[from]++
				toNumZeros[to]++
			} else {
				if v < fromSmallestNonzero[from] {
					fromSmallestNonzero[from] = v
				}
				if v < toSmallestNonzero[to] {
					toSmallestNonzero[to] = v
				}
			}
		}
	}

	bestFrom, bestTo := -1, -1
	bestTheta := 0.0
	for from := cost.NextFrom(0); from < n; from = cost.NextFrom(from + 1) {
		if fromNumZeros[from] == 0 {
			continue
		}
		for to := cost.NextTo(0); to < n; to = cost.NextTo(to + 1) {
			if cost.at(from, to) != 0 {
				continue
			}
			minFrom := fromSmallestNonzero[from]
			if fromNumZeros[from] > 1 {
				minFrom = 0
			}
			minTo := toSmallestNonzero[to]
			if toNumZeros[to] > 1 {
				minTo = 0
			}
			if minFrom >= costInf || minTo >= costInf {
				bestTheta = costInf
				bestFrom, bestTo = from, to
			} else if minFrom+minTo >= bestTheta {
				bestTheta = minFrom + minTo
				bestFrom, bestTo = from, to
			}
		}
	}

	if bestFrom == -1 {
		// Every active row is entirely costInf: this sub-problem is
		// infeasible. Nothing more to branch on here.
		return
	}

	if bestTheta < costInf && topNode.lb+bestTheta < e.ub {
		e.pushNode(topIdx, true, bestFrom, bestTo, topNode.lb+bestTheta)
	}

	cost.CommitEdge(bestFrom, bestTo)
	branchReduction := ReduceCostMatrix(cost)
	if topNode.lb+branchReduction < e.ub {
		idx := e.pushNode(topIdx, false, bestFrom, bestTo, topNode.lb+branchReduction)
		e.costForNode = idx
	}
}

func (e *littleEngine) pushNode(parent int, exclude bool, from, to int, lb float64) int {
	e.nodes = append(e.nodes, searchNode{
		edge: &searchEdge{parent: parent, exclude: exclude, from: from, to: to},
		lb:   lb,
	})
	idx := len(e.nodes) - 1
	heap.Push(&e.heap, heapEntry{lb: lb, node: idx})
	return idx
}
