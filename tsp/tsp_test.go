package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourloop/tourloop/schedule"
	"github.com/tourloop/tourloop/transit"
	"github.com/tourloop/tourloop/tsp"
)

// TestLittleTSP_HandWorkedFourByFour checks Little's algorithm against a
// hand-worked 4x4 instance with a known optimum of 11.
func TestLittleTSP_HandWorkedFourByFour(t *testing.T) {
	inf := math.Inf(1)
	costs := []float64{
		inf, 5, 7, 3,
		2, inf, 1, 9,
		8, 4, inf, 4,
		1, 3, 2, inf,
	}
	cm, err := tsp.NewCostMatrixFromCosts(4, costs)
	require.NoError(t, err)

	cost, err := tsp.LittleTSP(cm)
	require.NoError(t, err)
	assert.Equal(t, 11.0, cost)
}

// TestReduceCostMatrix_AlreadyReduced_SubtractsZero checks that once a
// matrix has been reduced, reducing it again subtracts nothing more:
// every active row and column already contains a zero.
func TestReduceCostMatrix_AlreadyReduced_SubtractsZero(t *testing.T) {
	inf := math.Inf(1)
	costs := []float64{
		inf, 5, 7, 3,
		2, inf, 1, 9,
		8, 4, inf, 4,
		1, 3, 2, inf,
	}
	cm, err := tsp.NewCostMatrixFromCosts(4, costs)
	require.NoError(t, err)

	first := tsp.ReduceCostMatrix(cm)
	assert.Greater(t, first, 0.0)

	second := tsp.ReduceCostMatrix(cm)
	assert.Zero(t, second)
}

// bruteForceTSP returns the minimum-cost Hamiltonian cycle starting and
// ending at vertex 0 by exhaustive search, for cross-checking LittleTSP
// on small random instances.
func bruteForceTSP(n int, costs []float64) float64 {
	at := func(i, j int) float64 { return costs[i*n+j] }

	rest := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		rest = append(rest, i)
	}

	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			sum := 0.0
			prev := 0
			for _, v := range rest {
				sum += at(prev, v)
				prev = v
			}
			sum += at(prev, 0)
			if sum < best {
				best = sum
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)
	return best
}

// TestLittleTSP_RandomEightByEightMatchesBruteForce cross-checks
// LittleTSP's exact result against exhaustive search on a random
// asymmetric instance small enough to brute-force.
func TestLittleTSP_RandomEightByEightMatchesBruteForce(t *testing.T) {
	const n = 8
	rng := rand.New(rand.NewSource(42))

	costs := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				costs[i*n+j] = math.Inf(1)
				continue
			}
			costs[i*n+j] = float64(rng.Intn(10))
		}
	}

	want := bruteForceTSP(n, costs)

	cm, err := tsp.NewCostMatrixFromCosts(n, costs)
	require.NoError(t, err)
	got, err := tsp.LittleTSP(cm)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

// TestMakeDenseProblem_TrivialAnytimeFillsAllPairs checks that a
// uniform anytime duration between every pair of stops produces a
// dense closure whose off-diagonal entries all keep that duration: no
// two-hop path can beat a direct one-hop link of equal cost.
func TestMakeDenseProblem_TrivialAnytimeFillsAllPairs(t *testing.T) {
	w := transit.World{
		Stops: []transit.Stop{{ID: "A"}, {ID: "B"}, {ID: "C"}},
	}
	for _, pair := range [][2]string{
		{"A", "B"}, {"B", "A"},
		{"A", "C"}, {"C", "A"},
		{"B", "C"}, {"C", "B"},
	} {
		w.AnytimeConnections = append(w.AnytimeConnections, transit.AnytimeConnection{
			OriginStopID:      pair[0],
			DestinationStopID: pair[1],
			Duration:          100,
		})
	}

	p, err := transit.BuildProblem(w)
	require.NoError(t, err)

	dp, err := tsp.MakeDenseProblem(p, "")
	require.NoError(t, err)

	for from := 0; from < dp.NumStops; from++ {
		for to := 0; to < dp.NumStops; to++ {
			if from == to {
				continue
			}
			sched := dp.Entries[from*dp.NumStops+to]
			require.NotNil(t, sched.AnytimeDuration, "missing anytime entry %d->%d", from, to)
			assert.Equal(t, uint32(100), *sched.AnytimeDuration)
		}
	}
}

// TestMakeDenseProblem_DummyStopNeverImproves checks that a zero-cost
// anytime hub excluded via dummyStopID never shortcuts a real
// stop-to-stop connection, even though the naive Floyd-Warshall closure
// would compose to a strictly better cost through it.
func TestMakeDenseProblem_DummyStopNeverImproves(t *testing.T) {
	w := transit.World{
		Stops: []transit.Stop{{ID: "A"}, {ID: "B"}, {ID: "DUMMY"}},
		AnytimeConnections: []transit.AnytimeConnection{
			{OriginStopID: "A", DestinationStopID: "B", Duration: 500},
			{OriginStopID: "A", DestinationStopID: "DUMMY", Duration: 0},
			{OriginStopID: "DUMMY", DestinationStopID: "A", Duration: 0},
			{OriginStopID: "B", DestinationStopID: "DUMMY", Duration: 0},
			{OriginStopID: "DUMMY", DestinationStopID: "B", Duration: 0},
		},
	}

	p, err := transit.BuildProblem(w)
	require.NoError(t, err)

	dp, err := tsp.MakeDenseProblem(p, "DUMMY")
	require.NoError(t, err)

	aIdx, err := p.StopIndex("A")
	require.NoError(t, err)
	bIdx, err := p.StopIndex("B")
	require.NoError(t, err)

	sched := dp.Entries[aIdx*dp.NumStops+bIdx]
	require.NotNil(t, sched.AnytimeDuration)
	assert.Equal(t, uint32(500), *sched.AnytimeDuration)
}

// TestMakeDenseProblem_UnknownDummyStop checks the sentinel error for a
// dummyStopID that does not name a stop in the problem.
func TestMakeDenseProblem_UnknownDummyStop(t *testing.T) {
	w := transit.World{Stops: []transit.Stop{{ID: "A"}, {ID: "B"}}}
	w.AnytimeConnections = append(w.AnytimeConnections, transit.AnytimeConnection{
		OriginStopID: "A", DestinationStopID: "B", Duration: 10,
	})
	p, err := transit.BuildProblem(w)
	require.NoError(t, err)

	_, err = tsp.MakeDenseProblem(p, "NOPE")
	assert.ErrorIs(t, err, tsp.ErrUnknownDummyStop)
}

// TestNewCostMatrix_SeedsFromLowerBound checks that NewCostMatrix seeds
// each cell from the schedule's LowerBound, mapping an empty schedule to
// +Inf.
func TestNewCostMatrix_SeedsFromLowerBound(t *testing.T) {
	dp := &tsp.DenseProblem{
		NumStops: 2,
		Entries: []schedule.Schedule{
			{},                                    // 0->0, unused
			{AnytimeDuration: schedule.Dur32(42)}, // 0->1
			{},                                    // 1->0, empty
			{},                                    // 1->1, unused
		},
	}
	cm := tsp.NewCostMatrix(dp)
	assert.Equal(t, 42.0, cm.At(0, 1))
	assert.True(t, math.IsInf(cm.At(1, 0), 1))
}
