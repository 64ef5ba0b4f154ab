// Command tourloop drives the transit-planning pipeline end to end: it
// loads a pre-built World or Problem JSON dump, optionally simplifies it
// down to a kept-stop subset, and solves either an exhaustive walk
// search or an exact traveling-salesman tour over the result.
//
// GTFS ingestion is out of scope; tourloop consumes only the JSON
// dumps transit.Problem.MarshalJSON/transit.UnmarshalProblem produce,
// or a plain World document an upstream ingest step has already built.
package main
