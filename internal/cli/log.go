// Package cli implements the fdeb command-line interface: a single root
// command wiring every relaxation parameter from the original calculator's
// flag surface onto the bundle/solver/ioformat pipeline.
//
// Logging uses charmbracelet/log, attached to the command context so
// library packages never import a CLI-specific logging type. --verbose
// switches from info to debug level.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// newLogger creates a logger writing to w at the given level, with
// timestamps enabled.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger attached to ctx, or log.Default()
// if none was attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
