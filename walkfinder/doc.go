// Package walkfinder implements the minimal-walk enumerator: a
// depth-first search over a plain adjacency list that yields every
// walk from a start stop covering a target stop set such that no
// revisit of a stop can be excised without losing coverage of some
// target. A walk ends at the stop where coverage completes; it does
// not return to its start.
//
// The search tracks, per stop, the target-visited bitset recorded the
// last time the DFS was there, plus a stack of "loop abort" bitsets —
// the targets picked up since each still-open revisit — and abandons
// the current branch the moment any loop abort bitset goes empty,
// since that means the most recent revisit closed a loop that added no
// new target coverage.
//
// Stop count is bounded by BitsetWidth (64): every bitset in this
// package is a single uint64 keyed by stop index.
package walkfinder
