// Package config carries the functional-options configuration shared by
// bmssp.Solve and the cmd/bmsspsolver CLI: the derived recursion
// parameters (l, k, t), an optional structured logger, and an optional
// phase/vertex EventListener.
//
// Grounded on builder.Option / prim_kruskal.Option / core.GraphOption's
// functional-options pattern. Unlike those (which keep their config
// struct package-private, since the struct never crosses a package
// boundary), Options here is deliberately exported: spec.md's package
// map names config as a standalone collaborator consumed by both bmssp
// and cmd/bmsspsolver, so its fields must be visible across that
// boundary.
package config

import "log/slog"

// EventListener receives phase and vertex-finalization notifications
// during a Solve. Grounded on phr3nzy-duan-sssp/sssp's EventListener/
// NoOpListener pattern and algorithms.BFSOptions's OnEnqueue/OnVisit
// callback shape, generalized from per-vertex visitation to
// recursion-phase callbacks.
type EventListener interface {
	// OnPhaseChange fires on entry to each phase (Solve, FindPivot,
	// PullLoop, BaseCase), with the recursion level it runs at.
	OnPhaseChange(phase string, level int)
	// OnPull fires after the batch of a non-empty Frontier Manager Pull
	// has been solved one level down, reporting the Pull's bound and the
	// size of that recursive call's output set.
	OnPull(level int, bound float64, size int)
	// OnVertexFinalized fires when a vertex's dhat value is accepted
	// into the solve's output set.
	OnVertexFinalized(v int, length float64)
}

// NoOpListener implements EventListener with no-ops; it is the default
// when a caller supplies no Option.
type NoOpListener struct{}

func (NoOpListener) OnPhaseChange(string, int)      {}
func (NoOpListener) OnPull(int, float64, int)       {}
func (NoOpListener) OnVertexFinalized(int, float64) {}

// Options carries Solve's tunable parameters. K and T override the
// derived pivot-count and block-size-exponent parameters (spec.md §4.9) when
// KSet/TSet are true; otherwise bmssp.Solve derives them from n.
type Options struct {
	K, T     int
	KSet     bool
	TSet     bool
	Logger   *slog.Logger
	Listener EventListener
}

// Option mutates Options before a Solve begins.
type Option func(o *Options)

// New applies opts over a fresh Options with NoOpListener as the
// default listener.
func New(opts ...Option) *Options {
	o := &Options{Listener: NoOpListener{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithK overrides the derived pivot-count parameter k. Intended for
// tests exercising small graphs where the derived value would be 1.
func WithK(k int) Option {
	return func(o *Options) {
		o.K = k
		o.KSet = true
	}
}

// WithT overrides the derived parameter t, which sets the frontier block
// capacity M = 2^((l-1)·t). The recursion depth is l, not t.
func WithT(t int) Option {
	return func(o *Options) {
		o.T = t
		o.TSet = true
	}
}

// WithLogger attaches a *slog.Logger that receives Solve's single debug
// record of the parameters n, l, k and t. Phase transitions go to the
// EventListener, not the logger. A nil logger is a no-op.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithEventListener attaches an EventListener. A nil listener is a
// no-op (the default NoOpListener remains in place).
func WithEventListener(listener EventListener) Option {
	return func(o *Options) {
		if listener != nil {
			o.Listener = listener
		}
	}
}

// Log returns the configured logger, falling back to slog.Default()
// when none was attached.
func (o *Options) Log() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
