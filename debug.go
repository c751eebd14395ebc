package isometric

import (
	"context"
	"fmt"
	"log/slog"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// logger is the package logger. A plain variable: the engine runs on the
// host's render thread only.
var logger = newNopLogger()

// silentLogger stands in for the package logger while debug output is off.
var silentLogger = newNopLogger()

// debugLogger returns the package logger when on is set, else a silent one.
func debugLogger(on bool) *slog.Logger {
	if on {
		return logger
	}
	return silentLogger
}

// SetLogger configures the logger used by the engine. By default nothing is
// logged. Pass nil to restore the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: skipped entities, missing scene context, rebuild stats
//   - [slog.LevelInfo]: projection mode changes
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	logger = l
}

// Logger returns the current engine logger.
func Logger() *slog.Logger {
	return logger
}

// debugEnabled turns on tree-misuse checks. Set through SetDebugMode.
var debugEnabled bool

// SetDebugMode enables panics on disposed-node misuse in tree operations.
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("isometric debug: %s on disposed node %q", op, n.Name))
	}
}
