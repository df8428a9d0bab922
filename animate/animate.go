package animate

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

var (
	// ErrNegativeUnit indicates a negative unit delay.
	ErrNegativeUnit = errors.New("animate: unit delay must be non-negative")
	// ErrUnknownPolicy indicates an unrecognized Policy.
	ErrUnknownPolicy = errors.New("animate: unknown policy")
)

// Event reveals Coord once Delay has elapsed since playback began.
type Event struct {
	Coord grid.Coord
	Delay time.Duration
}

// Policy selects how delays are derived.
type Policy int

const (
	// PolicyIndex delays the k-th path cell after start by k units.
	PolicyIndex Policy = iota
	// PolicyCoordinateSum delays each explored cell by row+col units.
	PolicyCoordinateSum
)

// String returns the name accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case PolicyIndex:
		return "index"
	case PolicyCoordinateSum:
		return "coordsum"
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps a case-insensitive name to a Policy.
// Accepted: index, coordsum, coordinate-sum.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "index":
		return PolicyIndex, nil
	case "coordsum", "coordinate-sum":
		return PolicyCoordinateSum, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// ByIndex schedules path[1:] so the k-th cell after the start gets k × unit.
// The start cell is skipped because shells already draw it distinctly.
// A path of zero or one cell yields no events.
func ByIndex(path []grid.Coord, unit time.Duration) ([]Event, error) {
	if unit < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeUnit, unit)
	}
	if len(path) < 2 {
		return nil, nil
	}

	events := make([]Event, 0, len(path)-1)
	for k, c := range path[1:] {
		events = append(events, Event{Coord: c, Delay: time.Duration(k+1) * unit})
	}

	return events, nil
}

// ByCoordinateSum schedules every cell at (row+col) × unit, leaving out any
// cell listed in skip. Events are stably sorted by delay, so cells sharing a
// diagonal keep their input order.
func ByCoordinateSum(cells []grid.Coord, unit time.Duration, skip ...grid.Coord) ([]Event, error) {
	if unit < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeUnit, unit)
	}
	omit := make(map[grid.Coord]bool, len(skip))
	for _, c := range skip {
		omit[c] = true
	}

	events := make([]Event, 0, len(cells))
	for _, c := range cells {
		if omit[c] {
			continue
		}
		events = append(events, Event{Coord: c, Delay: time.Duration(c.Row+c.Col) * unit})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Delay < events[j].Delay })

	return events, nil
}

// Plan schedules a search result under policy p.
//
//   - PolicyIndex reveals res.Path after its start cell.
//   - PolicyCoordinateSum reveals res.Visited except the path's start and end.
//
// A result with Found == false yields no events.
func Plan(p Policy, res search.Result, unit time.Duration) ([]Event, error) {
	if unit < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeUnit, unit)
	}
	if !res.Found {
		return nil, nil
	}

	switch p {
	case PolicyIndex:
		return ByIndex(res.Path, unit)
	case PolicyCoordinateSum:
		start, end := res.Path[0], res.Path[len(res.Path)-1]
		return ByCoordinateSum(res.Visited, unit, start, end)
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, p)
}

// Total returns the delay of the last event, i.e. how long playback lasts.
func Total(events []Event) time.Duration {
	if len(events) == 0 {
		return 0
	}

	return events[len(events)-1].Delay
}
