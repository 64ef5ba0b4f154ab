// Package simplify collapses a transit.Problem down to a dense graph
// over a chosen "keep" stop set: for every kept stop and every distinct
// departure moment found on its outgoing segments, a single-source
// time-expanded Dijkstra search produces direct edges to every other
// kept stop reachable without passing through a third kept stop along
// the way.
//
// Grounded on the teacher's dijkstra package for the search engine
// shape (a dedicated runner struct, a lazy-decrease-key
// container/heap priority queue) generalized from a single departure
// to a batch of per-stop departure moments.
package simplify
