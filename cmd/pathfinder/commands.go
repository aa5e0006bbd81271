package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/internal/config"
	"github.com/katalvlaran/pathfinder/lights"
	"github.com/katalvlaran/pathfinder/maze"
	"github.com/katalvlaran/pathfinder/search"
)

// app carries state resolved once in PersistentPreRunE.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath  string
	logLevel    string
	reportEvery int

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "pathfinder",
		Short: "Solve grid mazes and light machines with a generic shortest-path engine",
		Long: `pathfinder runs breadth-first and uniform-cost searches over puzzle inputs.

Subcommands:
  maze      - fewest steps from S to E
  reindeer  - lowest move/turn score from S to E and its best seats
  fill      - minutes for oxygen to fill every open cell
  lights    - fewest button presses over all light machines

Examples:
  pathfinder maze input.txt --all
  pathfinder reindeer input.txt --config pathfinder.yaml
  pathfinder lights machines.txt --report-every 10000`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.IntVar(&a.reportEvery, "report-every", 0, "log search progress every N dequeues")

	root.AddCommand(a.mazeCmd(), a.reindeerCmd(), a.fillCmd(), a.lightsCmd())
	return root
}

// setup loads config and applies flag overrides.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("report-every") {
		cfg.Search.ReportEvery = a.reportEvery
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	a.cfg = cfg
	a.logger = cfg.Logger(a.errOut)
	return nil
}

func (a *app) options() []search.Option {
	return a.cfg.SearchOptions(a.logger)
}

func (a *app) loadMaze(path string) (*maze.Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := maze.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("maze loaded", slog.String("file", path),
		slog.Int("width", m.Grid.Width), slog.Int("height", m.Grid.Height))
	return m, nil
}

func (a *app) mazeCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "maze FILE",
		Short: "Fewest orthogonal steps from S to E",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMaze(args[0])
			if err != nil {
				return err
			}
			steps, err := maze.ShortestPath(m, a.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "steps: %d\n", steps)
			if !all {
				return nil
			}
			tiles, err := maze.Tiles(m, a.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "tiles: %d\n", tiles)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "also count tiles on any shortest path")
	return cmd
}

func (a *app) reindeerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reindeer FILE",
		Short: "Lowest score from S to E starting East, and the tiles on any best route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMaze(args[0])
			if err != nil {
				return err
			}
			score, seats, err := maze.BestSeats(m, a.cfg.Costs(), a.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "score: %d\nseats: %d\n", score, seats)
			return nil
		},
	}
}

func (a *app) fillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fill FILE",
		Short: "Minutes for oxygen from O (or S) to reach every connected open cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMaze(args[0])
			if err != nil {
				return err
			}
			from, err := m.Origin()
			if err != nil {
				return err
			}
			minutes, err := maze.Fill(m, from, a.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "minutes: %d\n", minutes)
			return nil
		},
	}
}

func (a *app) lightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lights FILE",
		Short: "Sum of fewest button presses over every machine in FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			machines, err := lights.ParseAll(string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			a.logger.Debug("machines loaded", slog.Int("count", len(machines)))
			total, err := lights.Total(machines, a.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "presses: %d\n", total)
			return nil
		},
	}
}
