// Command bmsspsolver is the CLI surface named in spec.md §6.5: read or
// generate a graph, solve it with bmssp.SolveNormalized, and print the resulting
// distances. Grounded on phr3nzy-duan-sssp/main.go and
// phr3nzy-duan-sssp/cmd/visualbench/main.go for flag handling shape;
// uses stdlib flag (no pack repo imports cobra/urfave-cli — checked,
// zero hits — so stdlib flag is the idiomatic default here).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/duanbmssp/bmssp/bmsspctx"
	"github.com/duanbmssp/bmssp/bmssp"
	"github.com/duanbmssp/bmssp/config"
	"github.com/duanbmssp/bmssp/graph"
	"github.com/duanbmssp/bmssp/refdijkstra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("bmsspsolver", flag.ContinueOnError)
	fs.SetOutput(stderr)

	graphPath := fs.String("graph", "", "path to a graph file in spec.md §6's text format")
	random := fs.Bool("random", false, "generate a random graph instead of reading -graph")
	seed := fs.Uint64("seed", 1, "RNG seed for -random")
	n := fs.Int("n", 1000, "vertex count for -random")
	m := fs.Int("m", 3000, "edge count for -random")
	minWeight := fs.Float64("min", 1, "minimum edge weight for -random")
	maxWeight := fs.Float64("max", 10, "maximum edge weight for -random")
	verify := fs.Bool("verify", false, "cross-check against refdijkstra.Solve")
	verbose := fs.Bool("v", false, "raise log verbosity to debug")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := bmsspctx.New(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	g, err := loadGraph(*graphPath, *random, *seed, *n, *m, *minWeight, *maxWeight)
	if err != nil {
		logger.Error("loading graph", err)
		return 1
	}

	dist, err := bmssp.SolveNormalized(g, config.WithLogger(logger.Get()))
	if err != nil {
		logger.Error("solve failed", err)
		return 1
	}

	if *verify {
		want := refdijkstra.Solve(g)
		if mismatch, v := firstMismatch(dist, want); mismatch {
			logger.Error("verify: bmssp.Solve disagrees with refdijkstra.Solve", nil, "vertex", v, "bmssp", dist[v], "refdijkstra", want[v])
			return 1
		}
		logger.Info("verify: bmssp.Solve matches refdijkstra.Solve", "n", g.V)
	}

	for v, d := range dist {
		fmt.Fprintf(stdout, "d[%d] = %s\n", v, formatDistance(d))
	}
	return 0
}

func loadGraph(path string, random bool, seed uint64, n, m int, minWeight, maxWeight float64) (*graph.Graph, error) {
	if random {
		return graph.RandomGraph(n, m, graph.WithSeed(seed), graph.WithMinWeight(minWeight), graph.WithMaxWeight(maxWeight)), nil
	}
	if path == "" {
		return nil, fmt.Errorf("bmsspsolver: one of -graph or -random is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bmsspsolver: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := graph.Load(f)
	if err != nil {
		return nil, fmt.Errorf("bmsspsolver: load %s: %w", path, err)
	}
	return g, nil
}

func firstMismatch(got, want []float64) (bool, int) {
	for v := range want {
		if math.IsInf(got[v], 1) && math.IsInf(want[v], 1) {
			continue
		}
		if math.Abs(got[v]-want[v]) > 1e-9 {
			return true, v
		}
	}
	return false, -1
}

func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "+Inf"
	}
	return fmt.Sprintf("%g", d)
}
