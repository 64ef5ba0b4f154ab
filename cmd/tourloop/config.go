package main

import "github.com/BurntSushi/toml"

// Config is tourloop's TOML-driven run configuration: which stops to
// keep after simplification, which stops the search must visit, which
// solver to run, and the knobs each solver needs.
type Config struct {
	// KeepStopIDs, if non-empty, are passed to simplify.SimplifyProblem
	// before solving. An empty list skips simplification entirely.
	KeepStopIDs []string `toml:"keep_stops"`

	// TargetStopIDs are the stops a "walk" solve must visit.
	TargetStopIDs []string `toml:"target_stops"`

	// Mode selects the solver: "walk" (solve.Solve, exhaustive walk
	// enumeration) or "tsp" (tsp.MakeDenseProblem + tsp.LittleTSP,
	// exact branch-and-bound over every stop in the (simplified)
	// problem).
	Mode string `toml:"mode"`

	// MinTransferSeconds is solve.WithMinTransferSeconds's argument;
	// unused in "tsp" mode.
	MinTransferSeconds uint32 `toml:"min_transfer_seconds"`

	// DummyStopID names the stop tsp.MakeDenseProblem never uses as a
	// Floyd–Warshall intermediate (its own entries are still filled);
	// unused in "walk" mode.
	DummyStopID string `toml:"dummy_stop"`
}

// LoadConfig reads and decodes the TOML file at path.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
