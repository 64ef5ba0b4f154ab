package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourloop/tourloop/simplify"
	"github.com/tourloop/tourloop/transit"
)

func TestSimplifyProblem_KeepsExactlyRequestedStops(t *testing.T) {
	w := transit.World{
		Segments: []transit.WorldSegment{
			{OriginStopID: "A", DestinationStopID: "X", Departure: 0, Duration: 100, TripID: "t1"},
			{OriginStopID: "X", DestinationStopID: "B", Departure: 150, Duration: 100, TripID: "t1"},
		},
	}
	p, err := transit.BuildProblem(w)
	require.NoError(t, err)

	sp, err := simplify.SimplifyProblem(p, []string{"A", "B"})
	require.NoError(t, err)

	assert.Len(t, sp.StopIndexToID, 2)
	assert.Equal(t, []string{"A", "B"}, sp.StopIndexToID)
	_, err = sp.StopIndex("X")
	assert.Error(t, err)
}

func TestSimplifyProblem_CollapsesIntermediateHop(t *testing.T) {
	w := transit.World{
		Segments: []transit.WorldSegment{
			{OriginStopID: "A", DestinationStopID: "X", Departure: 0, Duration: 100, TripID: "t1"},
			{OriginStopID: "X", DestinationStopID: "B", Departure: 150, Duration: 100, TripID: "t1"},
		},
	}
	p, err := transit.BuildProblem(w)
	require.NoError(t, err)

	sp, err := simplify.SimplifyProblem(p, []string{"A", "B"})
	require.NoError(t, err)

	a, err := sp.StopIndex("A")
	require.NoError(t, err)
	b, err := sp.StopIndex("B")
	require.NoError(t, err)

	edge, ok := sp.EdgeTo(a, b)
	require.True(t, ok)
	require.Len(t, edge.Schedule.Segments, 1)
	seg := edge.Schedule.Segments[0]
	assert.Equal(t, uint32(0), seg.Departure)
	assert.Equal(t, uint32(250), seg.Arrival)
}

func TestSimplifyProblem_StopsAtIntermediateKeptStop(t *testing.T) {
	w := transit.World{
		Segments: []transit.WorldSegment{
			{OriginStopID: "A", DestinationStopID: "M", Departure: 0, Duration: 100, TripID: "t1"},
			{OriginStopID: "M", DestinationStopID: "B", Departure: 150, Duration: 100, TripID: "t1"},
		},
	}
	p, err := transit.BuildProblem(w)
	require.NoError(t, err)

	sp, err := simplify.SimplifyProblem(p, []string{"A", "M", "B"})
	require.NoError(t, err)

	a, err := sp.StopIndex("A")
	require.NoError(t, err)
	m, err := sp.StopIndex("M")
	require.NoError(t, err)
	b, err := sp.StopIndex("B")
	require.NoError(t, err)

	// A's departure search must stop at M rather than continuing through
	// to B, since M is itself a kept stop along the way.
	_, directToB := sp.EdgeTo(a, b)
	assert.False(t, directToB)

	edgeToM, ok := sp.EdgeTo(a, m)
	require.True(t, ok)
	require.Len(t, edgeToM.Schedule.Segments, 1)
	assert.Equal(t, uint32(100), edgeToM.Schedule.Segments[0].Arrival)

	edgeToB, ok := sp.EdgeTo(m, b)
	require.True(t, ok)
	require.Len(t, edgeToB.Schedule.Segments, 1)
	assert.Equal(t, uint32(250), edgeToB.Schedule.Segments[0].Arrival)
}

func TestSimplifyProblem_AnytimeOnlyNetworkStillProducesEdges(t *testing.T) {
	w := transit.World{
		AnytimeConnections: []transit.AnytimeConnection{
			{OriginStopID: "A", DestinationStopID: "B", Duration: 600},
		},
	}
	p, err := transit.BuildProblem(w)
	require.NoError(t, err)

	sp, err := simplify.SimplifyProblem(p, []string{"A", "B"})
	require.NoError(t, err)

	a, err := sp.StopIndex("A")
	require.NoError(t, err)
	b, err := sp.StopIndex("B")
	require.NoError(t, err)

	edge, ok := sp.EdgeTo(a, b)
	require.True(t, ok)
	require.NotNil(t, edge.Schedule.AnytimeDuration)
	assert.Equal(t, uint32(600), *edge.Schedule.AnytimeDuration)
}

func TestSimplifyProblem_RejectsUnknownKeepStop(t *testing.T) {
	p, err := transit.BuildProblem(transit.World{})
	require.NoError(t, err)

	_, err = simplify.SimplifyProblem(p, []string{"does-not-exist"})
	assert.ErrorIs(t, err, simplify.ErrUnknownKeepStop)
}

func TestSimplifyProblem_RejectsMultiTripSegment(t *testing.T) {
	w := transit.World{
		Segments: []transit.WorldSegment{
			{OriginStopID: "A", DestinationStopID: "B", Departure: 0, Duration: 100, TripID: "t1"},
		},
	}
	p, err := transit.BuildProblem(w)
	require.NoError(t, err)

	a, err := p.StopIndex("A")
	require.NoError(t, err)
	b, err := p.StopIndex("B")
	require.NoError(t, err)
	p.Edges[a][0].Schedule.Segments[0].ArrivalTrip = p.Edges[a][0].Schedule.Segments[0].DepartureTrip + 1
	_ = b

	_, err = simplify.SimplifyProblem(p, []string{"A", "B"})
	assert.ErrorIs(t, err, simplify.ErrMultiTripSegment)
}
