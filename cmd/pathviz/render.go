package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pathviz/animate"
	"github.com/katalvlaran/pathviz/engine"
	"github.com/katalvlaran/pathviz/grid"
)

// revealedGlyph marks a cell uncovered by an animation event.
const revealedGlyph = '*'

// render draws g with every cell in events marked revealed. Start, end and
// walls keep their own glyphs.
func render(g *grid.Grid, events []animate.Event) string {
	revealed := make(map[grid.Coord]bool, len(events))
	for _, ev := range events {
		revealed[ev.Coord] = true
	}

	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			at := grid.Coord{Row: r, Col: c}
			s := g.At(at)
			if s == grid.Empty && revealed[at] {
				sb.WriteRune(revealedGlyph)
				continue
			}
			sb.WriteRune(s.Glyph())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// writeSolution prints the path, the schedule and the final painted grid.
func writeSolution(w io.Writer, g *grid.Grid, sol *engine.Solution) {
	fmt.Fprintf(w, "algorithm: %s (policy %s)\n", sol.Algorithm, sol.Policy)
	if !sol.Result.Found {
		fmt.Fprintln(w, "no path exists")
		return
	}

	steps := make([]string, len(sol.Result.Path))
	for i, c := range sol.Result.Path {
		steps[i] = c.String()
	}
	fmt.Fprintf(w, "path: %d moves\n", sol.Result.Length())
	fmt.Fprintln(w, strings.Join(steps, " -> "))

	fmt.Fprintf(w, "events: %d over %v\n", len(sol.Events), animate.Total(sol.Events))
	for _, ev := range sol.Events {
		fmt.Fprintf(w, "  %8v %v\n", ev.Delay, ev.Coord)
	}
	fmt.Fprint(w, render(g, sol.Events))
}
