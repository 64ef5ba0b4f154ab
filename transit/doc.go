// Package transit defines the World/Problem data model: the sparse,
// origin-indexed graph that every other package in this module consumes
// or produces. A World is what an ingest collaborator builds (stops,
// trips, scheduled segments, anytime connections); BuildProblem turns it
// into a dense-indexed, read-only Problem.
//
// Stop and trip indices are assigned in first-sighting order starting
// from 0, with trip index 0 permanently reserved for "anytime". Once
// built, a Problem is never mutated in place — Simplifier and the TSP
// closure both produce new Problem/DenseProblem values rather than
// editing one.
package transit
