package solve

import (
	"github.com/tourloop/tourloop/schedule"
	"github.com/tourloop/tourloop/transit"
	"github.com/tourloop/tourloop/walkfinder"
)

// solverVisitor is the dedicated engine struct driving walkfinder's DFS:
// it owns the per-frame composed-schedule stack explicitly rather than
// threading state through closures, the same shape the teacher uses for
// its branch-and-bound search engine.
//
// One solverVisitor is reused across every candidate start stop in a
// single Solve call, so bestDuration and results accumulate ties across
// starts, not just within one DFS tree.
type solverVisitor struct {
	p           *transit.Problem
	minTransfer uint32

	stops  []int
	frames []schedule.Schedule

	bestDuration uint32
	results      []WalkResult
}

func newSolverVisitor(p *transit.Problem, minTransfer uint32) *solverVisitor {
	return &solverVisitor{p: p, minTransfer: minTransfer, bestDuration: schedule.InfiniteDuration}
}

// pruneAgainstBest drops any segment whose duration exceeds the best
// duration found so far, and clears the anytime component if it too
// exceeds the bound — the same cutoff EraseNonMinimal applies against a
// schedule's own anytime duration, generalized to the search's running
// upper bound.
func (sv *solverVisitor) pruneAgainstBest(s schedule.Schedule) schedule.Schedule {
	out := schedule.Schedule{}
	if s.AnytimeDuration != nil && *s.AnytimeDuration <= sv.bestDuration {
		d := *s.AnytimeDuration
		out.AnytimeDuration = &d
	}
	for _, seg := range s.Segments {
		if seg.Duration() <= sv.bestDuration {
			out.Segments = append(out.Segments, seg)
		}
	}
	return out
}

// PushStop implements walkfinder.Visitor. The first stop on an empty
// stack seeds an anytime-0 frame (any departure, zero elapsed time).
// Every subsequent stop composes the previous frame with the outgoing
// edge's schedule and prunes against the running best duration; a
// missing edge or a fully-pruned result returns false to abandon the
// branch.
func (sv *solverVisitor) PushStop(stop int) bool {
	if len(sv.frames) == 0 {
		sv.stops = append(sv.stops, stop)
		sv.frames = append(sv.frames, schedule.Schedule{AnytimeDuration: schedule.Dur32(0)})
		return true
	}

	prevStop := sv.stops[len(sv.stops)-1]
	edge, ok := sv.p.EdgeTo(prevStop, stop)
	if !ok {
		sv.stops = append(sv.stops, stop)
		sv.frames = append(sv.frames, schedule.Schedule{})
		return false
	}

	composed := schedule.Compose(sv.frames[len(sv.frames)-1], edge.Schedule, sv.minTransfer)
	pruned := sv.pruneAgainstBest(composed)

	sv.stops = append(sv.stops, stop)
	sv.frames = append(sv.frames, pruned)
	return !pruned.Empty()
}

// PopStop implements walkfinder.Visitor.
func (sv *solverVisitor) PopStop() {
	sv.stops = sv.stops[:len(sv.stops)-1]
	sv.frames = sv.frames[:len(sv.frames)-1]
}

// WalkDone implements walkfinder.Visitor: every segment (and the
// anytime component, if any) of the top frame is a candidate solution.
// Candidates strictly better than the running best replace it and
// clear prior ties; candidates equal to it join the tie ledger.
func (sv *solverVisitor) WalkDone() {
	top := sv.frames[len(sv.frames)-1]
	if top.Empty() {
		return
	}

	walk := make([]int, len(sv.stops))
	copy(walk, sv.stops)

	if top.AnytimeDuration != nil {
		sv.record(WalkResult{Stops: walk, Duration: *top.AnytimeDuration, Anytime: true})
	}
	for _, seg := range top.Segments {
		sv.record(WalkResult{Stops: walk, Duration: seg.Duration(), DepartureTime: seg.Departure})
	}
}

func (sv *solverVisitor) record(candidate WalkResult) {
	switch {
	case candidate.Duration < sv.bestDuration:
		sv.bestDuration = candidate.Duration
		sv.results = []WalkResult{candidate}
	case candidate.Duration == sv.bestDuration:
		sv.results = append(sv.results, candidate)
	}
}

// Solve finds the fastest walk, starting from any of targetStopIDs,
// covering every one of them, per the contract of
// walkfinder.FindMinimalWalks: the walk ends where coverage completes
// and its duration does not include a return to the start. Target stop ids absent from p are
// ignored; if none remain, Result.BestDuration is
// schedule.InfiniteDuration and Result.Walks is empty.
func Solve(p *transit.Problem, targetStopIDs []string, opts ...Option) (Result, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var targets []int
	for _, id := range targetStopIDs {
		idx, err := p.StopIndex(id)
		if err != nil {
			continue
		}
		targets = append(targets, idx)
	}
	if len(targets) == 0 {
		return Result{BestDuration: schedule.InfiniteDuration}, nil
	}

	sv := newSolverVisitor(p, cfg.MinTransferSeconds)
	for _, start := range targets {
		if err := walkfinder.FindMinimalWalks(p.Adjacency, targets, start, sv); err != nil {
			return Result{}, err
		}
	}

	return Result{BestDuration: sv.bestDuration, Walks: sv.results}, nil
}
