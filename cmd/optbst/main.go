// Command optbst is a small driver for the optbst package: it counts,
// enumerates and optimizes binary search trees over the keys of a
// frequency array given on the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/npat-efault/treedp/bintree"
	"github.com/npat-efault/treedp/optbst"
)

func main() {
	app := newApp()
	app.RunAndExitOnError()
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "optbst",
		Usage: "count, enumerate and optimize binary search trees over weighted keys",
		Flags: []cli.Flag{
			&cli.Float64SliceFlag{
				Name:  "freq",
				Usage: "access frequency of each key, in key order",
				Value: cli.NewFloat64Slice(34, 8, 50),
			},
			&cli.IntFlag{
				Name:  "n",
				Usage: "number of keys (default: number of frequencies)",
			},
			&cli.StringFlag{
				Name:  "strategy",
				Usage: "algorithm: recursive, iterative (or closed, for count)",
				Value: "iterative",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug records to stderr",
			},
		},
		Before: func(cctx *cli.Context) error {
			level := slog.LevelInfo
			if cctx.Bool("verbose") {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(h))
			return nil
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "count",
			Usage:  "print the number of distinct trees",
			Action: runCount,
		},
		{
			Name:   "shapes",
			Usage:  "print every distinct tree as a parent: [children] map",
			Action: runShapes,
		},
		{
			Name:   "cost",
			Usage:  "print the minimum weighted search cost",
			Action: runCost,
		},
		{
			Name:   "tree",
			Usage:  "print a tree of minimum weighted search cost",
			Action: runTree,
		},
	}
	return app
}

func solverFromFlags(cctx *cli.Context) (*optbst.Solver[float64], optbst.Strategy, error) {
	freq := cctx.Float64Slice("freq")
	n := cctx.Int("n")
	if n == 0 {
		n = len(freq)
	}
	st, err := optbst.ParseStrategy(cctx.String("strategy"))
	if err != nil {
		return nil, 0, err
	}
	s, err := optbst.New(n, freq)
	if err != nil {
		return nil, 0, err
	}
	return s, st, nil
}

func printTree(cctx *cli.Context, s *optbst.Solver[float64], tree *bintree.Node) {
	fmt.Fprintln(cctx.App.Writer, s.ExportGraph(tree).ByKey())
}

func runCount(cctx *cli.Context) error {
	s, st, err := solverFromFlags(cctx)
	if err != nil {
		return err
	}
	c, err := s.CountDistinctShapes(st)
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, c)
	return nil
}

func runShapes(cctx *cli.Context) error {
	s, _, err := solverFromFlags(cctx)
	if err != nil {
		return err
	}
	for _, tree := range s.EnumerateShapes() {
		printTree(cctx, s, tree)
	}
	return nil
}

func runCost(cctx *cli.Context) error {
	s, st, err := solverFromFlags(cctx)
	if err != nil {
		return err
	}
	c, err := s.OptimalCost(st)
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, c)
	return nil
}

func runTree(cctx *cli.Context) error {
	s, st, err := solverFromFlags(cctx)
	if err != nil {
		return err
	}
	tree, err := s.OptimalTree(st)
	if err != nil {
		return err
	}
	printTree(cctx, s, tree)
	return nil
}
