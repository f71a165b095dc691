package graph

import "math/rand/v2"

// RandomOption customizes RandomGraph. Grounded on builder.WithSeed/
// WithRand's functional-options shape, carried over to math/rand/v2.
type RandomOption func(cfg *randomConfig)

type randomConfig struct {
	rng       *rand.Rand
	minWeight float64
	maxWeight float64
}

func newRandomConfig(opts ...RandomOption) *randomConfig {
	cfg := &randomConfig{
		rng:       rand.New(rand.NewPCG(1, 1)),
		minWeight: 1,
		maxWeight: 10,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds the generator deterministically, for reproducible
// random graphs in tests and benchmarks.
func WithSeed(seed uint64) RandomOption {
	return func(cfg *randomConfig) {
		cfg.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand injects an explicit *rand.Rand source. A nil rng is a no-op.
func WithRand(rng *rand.Rand) RandomOption {
	return func(cfg *randomConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithMinWeight sets the inclusive lower bound on generated edge
// weights. Negative values are clamped to 0 (spec.md Non-goal: no
// negative weights).
func WithMinWeight(min float64) RandomOption {
	return func(cfg *randomConfig) {
		if min < 0 {
			min = 0
		}
		cfg.minWeight = min
	}
}

// WithMaxWeight sets the exclusive upper bound on generated edge
// weights.
func WithMaxWeight(max float64) RandomOption {
	return func(cfg *randomConfig) {
		cfg.maxWeight = max
	}
}

// RandomGraph builds a directed graph on n vertices with m edges, each
// endpoint chosen uniformly at random (self-loops excluded) and each
// weight drawn uniformly from [minWeight, maxWeight).
func RandomGraph(n, m int, opts ...RandomOption) *Graph {
	cfg := newRandomConfig(opts...)
	g := New(n)
	if n < 2 {
		return g
	}

	span := cfg.maxWeight - cfg.minWeight
	for i := 0; i < m; i++ {
		from := cfg.rng.IntN(n)
		to := cfg.rng.IntN(n)
		for to == from {
			to = cfg.rng.IntN(n)
		}
		weight := cfg.minWeight + cfg.rng.Float64()*span
		g.AddEdge(from, to, weight)
	}
	return g
}
