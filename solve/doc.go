// Package solve implements the walk-driven Solver: it drives
// walkfinder.FindMinimalWalks once per candidate start stop with a
// visitor that maintains an incrementally composed schedule along the
// current DFS frontier, pruning against the best duration found so far
// across every start tried, and records every tying candidate once the
// walk covers every target (the walk does not return to its start).
package solve
