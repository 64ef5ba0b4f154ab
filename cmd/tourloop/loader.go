package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tourloop/tourloop/transit"
)

// ProblemLoader builds a transit.Problem from an input path. jsonLoader
// is its only implementation; run constructs a jsonLoader directly and
// does not accept another ProblemLoader.
type ProblemLoader interface {
	Load(path string) (*transit.Problem, error)
}

// jsonLoader reads an input file and builds a Problem from it, either
// directly (kind "problem", the format transit.Problem.MarshalJSON
// produces) or by first running transit.BuildProblem over a decoded
// World (kind "world").
type jsonLoader struct {
	kind string
}

func (l jsonLoader) Load(path string) (*transit.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch l.kind {
	case "problem":
		return transit.UnmarshalProblem(data)
	case "world":
		var w transit.World
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		return transit.BuildProblem(w)
	default:
		return nil, fmt.Errorf("tourloop: unknown input kind %q (want \"world\" or \"problem\")", l.kind)
	}
}
