package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourloop/tourloop/schedule"
	"github.com/tourloop/tourloop/solve"
	"github.com/tourloop/tourloop/transit"
)

func TestSolve_TwoStopAnytimeRoundTrip(t *testing.T) {
	w := transit.World{
		AnytimeConnections: []transit.AnytimeConnection{
			{OriginStopID: "A", DestinationStopID: "B", Duration: 600},
			{OriginStopID: "B", DestinationStopID: "A", Duration: 600},
		},
	}
	p, err := transit.BuildProblem(w)
	require.NoError(t, err)

	res, err := solve.Solve(p, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, uint32(600), res.BestDuration)
	require.NotEmpty(t, res.Walks)
	for _, walk := range res.Walks {
		assert.Equal(t, uint32(600), walk.Duration)
		assert.True(t, walk.Anytime)
	}
}

func TestSolve_TriangleCoverageCompletesWithoutFullClosure(t *testing.T) {
	w := transit.World{
		AnytimeConnections: []transit.AnytimeConnection{
			{OriginStopID: "A", DestinationStopID: "B", Duration: 100},
			{OriginStopID: "B", DestinationStopID: "A", Duration: 100},
			{OriginStopID: "B", DestinationStopID: "C", Duration: 100},
			{OriginStopID: "C", DestinationStopID: "B", Duration: 100},
			{OriginStopID: "C", DestinationStopID: "A", Duration: 100},
			{OriginStopID: "A", DestinationStopID: "C", Duration: 100},
		},
	}
	p, err := transit.BuildProblem(w)
	require.NoError(t, err)

	res, err := solve.Solve(p, []string{"A", "B", "C"})
	require.NoError(t, err)
	// Coverage completes as soon as all three targets have been seen;
	// the cheapest covering walk is a single hop between two directly
	// connected stops followed by one more hop to the third, 200s total,
	// never needing to close the loop back to its start.
	assert.Equal(t, uint32(200), res.BestDuration)
}

func TestSolve_SequentialSegmentsChain(t *testing.T) {
	w := transit.World{
		Segments: []transit.WorldSegment{
			{OriginStopID: "A", DestinationStopID: "B", Departure: 0, Duration: 300, TripID: "t1"},
			{OriginStopID: "B", DestinationStopID: "C", Departure: 400, Duration: 300, TripID: "t2"},
		},
	}
	p, err := transit.BuildProblem(w)
	require.NoError(t, err)

	res, err := solve.Solve(p, []string{"A", "C"})
	require.NoError(t, err)
	assert.Equal(t, uint32(700), res.BestDuration)
}

func TestSolve_IgnoresUnknownTargets(t *testing.T) {
	w := transit.World{
		AnytimeConnections: []transit.AnytimeConnection{
			{OriginStopID: "A", DestinationStopID: "B", Duration: 600},
			{OriginStopID: "B", DestinationStopID: "A", Duration: 600},
		},
	}
	p, err := transit.BuildProblem(w)
	require.NoError(t, err)

	res, err := solve.Solve(p, []string{"A", "B", "does-not-exist"})
	require.NoError(t, err)
	assert.Equal(t, uint32(600), res.BestDuration)
}

func TestSolve_EmptyTargetSetYieldsNoOutput(t *testing.T) {
	p, err := transit.BuildProblem(transit.World{})
	require.NoError(t, err)

	res, err := solve.Solve(p, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(schedule.InfiniteDuration), res.BestDuration)
	assert.Empty(t, res.Walks)
}
