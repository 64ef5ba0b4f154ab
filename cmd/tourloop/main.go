package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/tourloop/tourloop/simplify"
	"github.com/tourloop/tourloop/solve"
	"github.com/tourloop/tourloop/tsp"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tourloop - fastest-round-trip planner over a schedule-based transit graph\n\nUsage:\n\n  %s -c <config.toml> -i <input.json>\n\nAllowed options:\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	configPath := flag.StringP("config", "c", "", "path to the TOML run configuration")
	inputPath := flag.StringP("input", "i", "", "path to the input JSON dump")
	inputKind := flag.StringP("input-kind", "k", "problem", "shape of the input JSON: \"world\" or \"problem\"")
	help := flag.BoolP("help", "h", false, "this message")
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}
	if *configPath == "" || *inputPath == "" {
		fmt.Fprintln(os.Stderr, "tourloop: both -c and -i are required, see -h")
		os.Exit(1)
	}

	if err := run(*configPath, *inputPath, *inputKind); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(configPath, inputPath, inputKind string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("tourloop: loading config: %w", err)
	}

	loader := jsonLoader{kind: inputKind}
	problem, err := loader.Load(inputPath)
	if err != nil {
		return fmt.Errorf("tourloop: loading input: %w", err)
	}

	if len(cfg.KeepStopIDs) > 0 {
		problem, err = simplify.SimplifyProblem(problem, cfg.KeepStopIDs)
		if err != nil {
			return fmt.Errorf("tourloop: simplifying problem: %w", err)
		}
	}

	switch cfg.Mode {
	case "walk":
		result, err := solve.Solve(problem, cfg.TargetStopIDs, solve.WithMinTransferSeconds(cfg.MinTransferSeconds))
		if err != nil {
			return fmt.Errorf("tourloop: solving walk: %w", err)
		}
		fmt.Printf("best duration: %d seconds, %d tying walk(s)\n", result.BestDuration, len(result.Walks))
		for _, w := range result.Walks {
			fmt.Printf("  stops=%v duration=%d anytime=%v departure=%d\n", w.Stops, w.Duration, w.Anytime, w.DepartureTime)
		}
		return nil

	case "tsp":
		dp, err := tsp.MakeDenseProblem(problem, cfg.DummyStopID)
		if err != nil {
			return fmt.Errorf("tourloop: building dense closure: %w", err)
		}
		cm := tsp.NewCostMatrix(dp)
		cost, err := tsp.LittleTSP(cm)
		if err != nil {
			return fmt.Errorf("tourloop: solving tsp: %w", err)
		}
		fmt.Printf("optimal tour cost: %v\n", cost)
		return nil

	default:
		return fmt.Errorf("tourloop: unknown mode %q (want \"walk\" or \"tsp\")", cfg.Mode)
	}
}
