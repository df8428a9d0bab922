package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathviz/animate"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

var (
	// ErrMissingEndpoint is returned by Solve when the grid has no start or
	// no end cell. It wraps grid.ErrCellNotFound.
	ErrMissingEndpoint = errors.New("engine: start and end must both be set")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("engine: invalid option supplied")

	// ErrNilGrid is returned by NewFromGrid for a nil grid.
	ErrNilGrid = errors.New("engine: grid is nil")
)

// Engine owns a grid and solves it on request.
type Engine struct {
	grid *grid.Grid
	cfg  Config
}

// Solution is the outcome of one Solve call.
//   - Result: the search outcome (path or not found).
//   - Events: reveal events for the shell, ordered by non-decreasing delay;
//     empty when no path was found.
type Solution struct {
	Algorithm search.Algorithm
	Policy    animate.Policy
	Start     grid.Coord
	End       grid.Coord
	Result    search.Result
	Events    []animate.Event
}

// New creates an Engine over a fresh rows×cols grid of Empty cells.
// Returns grid.ErrInvalidDimensions or ErrOptionViolation.
func New(rows, cols int, opts ...Option) (*Engine, error) {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}

	return NewFromGrid(g, opts...)
}

// NewFromGrid creates an Engine that takes ownership of g.
func NewFromGrid(g *grid.Grid, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Engine{grid: g, cfg: cfg}, nil
}

// Grid returns the owned grid. Mutating it directly is equivalent to calling
// SetCellState.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config { return e.cfg.clone() }

// SetCellState forwards a user edit to the grid, with the grid's validation.
func (e *Engine) SetCellState(row, col int, s grid.CellState) error {
	return e.grid.SetCellState(row, col, s)
}

// CellState reads a cell from the grid.
func (e *Engine) CellState(row, col int) (grid.CellState, error) {
	return e.grid.CellState(row, col)
}

// Endpoints locates the start and end cells.
// Returns ErrMissingEndpoint naming whichever is absent.
func (e *Engine) Endpoints() (start, end grid.Coord, err error) {
	start, err = e.grid.FindCell(grid.Start)
	if err != nil {
		return start, end, fmt.Errorf("%w: no start: %w", ErrMissingEndpoint, err)
	}
	end, err = e.grid.FindCell(grid.End)
	if err != nil {
		return start, end, fmt.Errorf("%w: no end: %w", ErrMissingEndpoint, err)
	}

	return start, end, nil
}

// Solve runs alg from the start cell to the end cell and schedules the
// reveal events. A missing path is reported through Solution.Result.Found,
// not as an error.
//
// Errors: ErrMissingEndpoint, search.ErrUnknownAlgorithm, search.ErrBrokenChain.
func (e *Engine) Solve(alg search.Algorithm, opts ...search.Option) (*Solution, error) {
	start, end, err := e.Endpoints()
	if err != nil {
		return nil, err
	}

	res, err := search.Solve(alg, e.grid, start, end, opts...)
	if err != nil {
		return nil, err
	}

	policy := e.cfg.PolicyFor(alg)
	events, err := animate.Plan(policy, res, e.cfg.UnitDelay)
	if err != nil {
		return nil, err
	}

	return &Solution{
		Algorithm: alg,
		Policy:    policy,
		Start:     start,
		End:       end,
		Result:    res,
		Events:    events,
	}, nil
}
