// Command pathviz is a terminal shell for the pathfinding engine.
//
// It reads a grid layout (one glyph per cell: '.' empty, '#' wall, 'S' start,
// 'E' end) from a file or stdin, solves it with BFS, DFS or A*, and prints the
// path, its reveal schedule and the painted grid. With --play it replays the
// schedule in real time, redrawing the grid as each cell is revealed.
//
// Flags may also be set through PATHVIZ_* environment variables; a .env file
// in the working directory is loaded first if present.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/pathviz/animate"
	"github.com/katalvlaran/pathviz/engine"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "pathviz"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdin, os.Stdout).Run(ctx, os.Args); err != nil {
		log.Fatalf("%s: %v", AppName, err)
	}
}

// newApp builds the command tree reading layouts from in and writing to out.
func newApp(in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "visualize grid pathfinding with BFS, DFS or A*",
		Version: Version,
		Reader:  in,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("PATHVIZ_DEBUG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			} else {
				log.SetFlags(log.LstdFlags)
			}

			return ctx, nil
		},
		Commands: []*cli.Command{
			solveCommand(),
			componentsCommand(),
		},
	}
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "find a path from S to E and print its reveal schedule",
		ArgsUsage: "[LAYOUT_FILE]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   search.AlgorithmBFS.String(),
				Usage:   "search strategy: bfs, dfs or astar",
				Sources: cli.EnvVars("PATHVIZ_ALGORITHM"),
			},
			&cli.DurationFlag{
				Name:    "unit-delay",
				Value:   engine.DefaultUnitDelay,
				Usage:   "delay per animation step",
				Sources: cli.EnvVars("PATHVIZ_UNIT_DELAY"),
			},
			&cli.StringFlag{
				Name:    "policy",
				Usage:   "animation policy override: index or coordsum (default depends on algorithm)",
				Sources: cli.EnvVars("PATHVIZ_POLICY"),
			},
			&cli.BoolFlag{
				Name:  "play",
				Usage: "replay the schedule in real time",
			},
		},
		Action: runSolve,
	}
}

func componentsCommand() *cli.Command {
	return &cli.Command{
		Name:      "components",
		Usage:     "list connected regions of traversable cells",
		ArgsUsage: "[LAYOUT_FILE]",
		Action:    runComponents,
	}
}

func runSolve(ctx context.Context, cmd *cli.Command) error {
	alg, err := search.ParseAlgorithm(cmd.String("algorithm"))
	if err != nil {
		return err
	}
	opts := []engine.Option{engine.WithUnitDelay(cmd.Duration("unit-delay"))}
	if name := cmd.String("policy"); name != "" {
		p, err := animate.ParsePolicy(name)
		if err != nil {
			return err
		}
		opts = append(opts, engine.WithPolicy(alg, p))
	}

	g, err := loadGrid(cmd)
	if err != nil {
		return err
	}
	eng, err := engine.NewFromGrid(g, opts...)
	if err != nil {
		return err
	}

	sol, err := eng.Solve(alg)
	if err != nil {
		return err
	}
	log.Printf("%s settled %d cells", alg, len(sol.Result.Visited))

	out := cmd.Root().Writer
	if cmd.Bool("play") {
		return play(ctx, out, g, sol)
	}
	writeSolution(out, g, sol)

	return nil
}

func runComponents(_ context.Context, cmd *cli.Command) error {
	g, err := loadGrid(cmd)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	comps := g.ConnectedComponents()
	fmt.Fprintf(out, "%d region(s)\n", len(comps))
	for i, comp := range comps {
		fmt.Fprintf(out, "  #%d: %d cell(s) from %v\n", i, len(comp), comp[0])
	}

	start, errS := g.FindCell(grid.Start)
	end, errE := g.FindCell(grid.End)
	if errS == nil && errE == nil {
		fmt.Fprintf(out, "start %v and end %v connected: %t\n", start, end, g.Connected(start, end))
	}

	return nil
}

// loadGrid parses the layout named by the first argument, or stdin when no
// argument (or "-") is given.
func loadGrid(cmd *cli.Command) (*grid.Grid, error) {
	name := cmd.Args().First()
	if name == "" || name == "-" {
		g, err := grid.Parse(cmd.Root().Reader)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		log.Printf("loaded %dx%d grid from stdin", g.Rows(), g.Cols())

		return g, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := grid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	log.Printf("loaded %dx%d grid from %s", g.Rows(), g.Cols(), name)

	return g, nil
}

// play realizes the schedule against the wall clock, redrawing the grid after
// each reveal. It returns early if ctx is cancelled.
func play(ctx context.Context, w io.Writer, g *grid.Grid, sol *engine.Solution) error {
	if !sol.Result.Found {
		fmt.Fprintln(w, "no path exists")
		return nil
	}

	began := time.Now()
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for i, ev := range sol.Events {
		timer.Reset(time.Until(began.Add(ev.Delay)))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		fmt.Fprintf(w, "\033[H\033[2J%s", render(g, sol.Events[:i+1]))
	}
	fmt.Fprintf(w, "%d moves in %v\n", sol.Result.Length(), animate.Total(sol.Events))

	return nil
}
