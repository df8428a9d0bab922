package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/animate"
	"github.com/katalvlaran/pathviz/engine"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

func TestNew_Errors(t *testing.T) {
	_, err := engine.New(0, 5)
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions)

	_, err = engine.New(2, 2, engine.WithUnitDelay(-time.Second))
	assert.ErrorIs(t, err, engine.ErrOptionViolation)

	_, err = engine.New(2, 2, engine.WithPolicy(search.AlgorithmBFS, animate.Policy(9)))
	assert.ErrorIs(t, err, engine.ErrOptionViolation)

	_, err = engine.NewFromGrid(nil)
	assert.ErrorIs(t, err, engine.ErrNilGrid)
}

func TestDefaultConfig(t *testing.T) {
	eng, err := engine.New(1, 1)
	require.NoError(t, err)

	cfg := eng.Config()
	assert.Equal(t, engine.DefaultUnitDelay, cfg.UnitDelay)
	assert.Equal(t, animate.PolicyIndex, cfg.PolicyFor(search.AlgorithmBFS))
	assert.Equal(t, animate.PolicyCoordinateSum, cfg.PolicyFor(search.AlgorithmDFS))
	assert.Equal(t, animate.PolicyIndex, cfg.PolicyFor(search.AlgorithmAStar))
	assert.Equal(t, animate.PolicyIndex, cfg.PolicyFor(search.Algorithm(5)))

	// returned config does not alias the engine's
	cfg.Policies[search.AlgorithmBFS] = animate.PolicyCoordinateSum
	assert.Equal(t, animate.PolicyIndex, eng.Config().PolicyFor(search.AlgorithmBFS))
}

func TestSolve_MissingEndpoint(t *testing.T) {
	eng, err := engine.New(2, 2)
	require.NoError(t, err)

	_, err = eng.Solve(search.AlgorithmBFS)
	assert.ErrorIs(t, err, engine.ErrMissingEndpoint)
	assert.ErrorIs(t, err, grid.ErrCellNotFound)
	assert.Contains(t, err.Error(), "no start")

	require.NoError(t, eng.SetCellState(0, 0, grid.Start))
	_, err = eng.Solve(search.AlgorithmBFS)
	assert.ErrorIs(t, err, engine.ErrMissingEndpoint)
	assert.Contains(t, err.Error(), "no end")
}

func TestSolve_UnknownAlgorithm(t *testing.T) {
	eng, err := engine.NewFromGrid(grid.MustParse("SE\n"))
	require.NoError(t, err)
	_, err = eng.Solve(search.Algorithm(-1))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

// TestSolve_BFSScenario drives the 3×3 walled-corner scenario through the
// shell-facing API: edits, solve, then events at 100ms steps.
func TestSolve_BFSScenario(t *testing.T) {
	eng, err := engine.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, eng.SetCellState(0, 0, grid.Start))
	require.NoError(t, eng.SetCellState(2, 2, grid.End))
	require.NoError(t, eng.SetCellState(1, 1, grid.Wall))
	require.NoError(t, eng.SetCellState(0, 1, grid.Wall))

	sol, err := eng.Solve(search.AlgorithmBFS)
	require.NoError(t, err)
	require.True(t, sol.Result.Found)
	assert.Equal(t, animate.PolicyIndex, sol.Policy)
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, sol.Start)
	assert.Equal(t, grid.Coord{Row: 2, Col: 2}, sol.End)
	assert.Equal(t, []animate.Event{
		{Coord: grid.Coord{Row: 1, Col: 0}, Delay: 100 * time.Millisecond},
		{Coord: grid.Coord{Row: 2, Col: 0}, Delay: 200 * time.Millisecond},
		{Coord: grid.Coord{Row: 2, Col: 1}, Delay: 300 * time.Millisecond},
		{Coord: grid.Coord{Row: 2, Col: 2}, Delay: 400 * time.Millisecond},
	}, sol.Events)
}

func TestSolve_NotFoundHasNoEvents(t *testing.T) {
	eng, err := engine.NewFromGrid(grid.MustParse("S#E\n"))
	require.NoError(t, err)

	for _, alg := range search.Algorithms() {
		sol, err := eng.Solve(alg)
		require.NoError(t, err, alg)
		assert.False(t, sol.Result.Found, alg)
		assert.Empty(t, sol.Events, alg)
	}
}

// TestSolve_DFSRevealsExploredRegion checks the default DFS policy reveals
// visited cells other than start and end, on a coordinate-sum schedule.
func TestSolve_DFSRevealsExploredRegion(t *testing.T) {
	eng, err := engine.NewFromGrid(grid.MustParse(""+
		"S..\n"+
		"...\n"+
		"E..\n"), engine.WithUnitDelay(10*time.Millisecond))
	require.NoError(t, err)

	sol, err := eng.Solve(search.AlgorithmDFS)
	require.NoError(t, err)
	require.True(t, sol.Result.Found)
	assert.Equal(t, animate.PolicyCoordinateSum, sol.Policy)
	assert.Len(t, sol.Events, len(sol.Result.Visited)-2)
	for _, ev := range sol.Events {
		assert.NotEqual(t, sol.Start, ev.Coord)
		assert.NotEqual(t, sol.End, ev.Coord)
		assert.Equal(t, time.Duration(ev.Coord.Row+ev.Coord.Col)*10*time.Millisecond, ev.Delay)
	}
}

func TestSolve_PolicyOverride(t *testing.T) {
	eng, err := engine.NewFromGrid(grid.MustParse("S..E\n"),
		engine.WithPolicy(search.AlgorithmDFS, animate.PolicyIndex),
		engine.WithUnitDelay(time.Second),
	)
	require.NoError(t, err)

	sol, err := eng.Solve(search.AlgorithmDFS)
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second},
		[]time.Duration{sol.Events[0].Delay, sol.Events[1].Delay, sol.Events[2].Delay})
}

// TestSolve_EditsBetweenSolves checks solves see the latest edits and are
// idempotent on an unchanged grid.
func TestSolve_EditsBetweenSolves(t *testing.T) {
	eng, err := engine.NewFromGrid(grid.MustParse(""+
		"S..\n"+
		"...\n"+
		"..E\n"))
	require.NoError(t, err)

	first, err := eng.Solve(search.AlgorithmAStar)
	require.NoError(t, err)
	again, err := eng.Solve(search.AlgorithmAStar)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 4, first.Result.Length())

	// wall off the end
	require.NoError(t, eng.SetCellState(1, 2, grid.Wall))
	require.NoError(t, eng.SetCellState(2, 1, grid.Wall))
	blocked, err := eng.Solve(search.AlgorithmAStar)
	require.NoError(t, err)
	assert.False(t, blocked.Result.Found)

	cs, err := eng.CellState(2, 1)
	require.NoError(t, err)
	assert.Equal(t, grid.Wall, cs)
	assert.Same(t, eng.Grid(), eng.Grid())
}
