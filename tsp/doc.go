// Package tsp turns a transit.Problem into a dense all-pairs schedule
// closure and solves the resulting asymmetric traveling-salesman
// instance exactly with Little's branch-and-bound algorithm.
//
// MakeDenseProblem runs a modified Floyd–Warshall over the schedule
// algebra (package schedule), using the same k→i→j loop order the
// teacher's own matrix package uses for its metric closure. NewCostMatrix
// scalarizes each cell's Schedule down to a lower-bound duration backed
// by matrix.Dense storage, and LittleTSP runs the branch-and-bound search
// over that scalar cost grid, committing edges and excluding premature
// sub-tours until a complete tour falls out of the search frontier.
package tsp
