package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type logPathKey struct{}

// ContextWithLogPath records that the logger in ctx writes to path.
func ContextWithLogPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, logPathKey{}, path)
}

// LogPathFromContext returns the log file path stored in ctx, or "" when
// logs go to stderr.
func LogPathFromContext(ctx context.Context) string {
	path, _ := ctx.Value(logPathKey{}).(string)
	return path
}

// DetachFromTerminal returns ctx with a disabled logger unless logs are
// written to a file. Full-screen programs own stderr while they run.
func DetachFromTerminal(ctx context.Context) context.Context {
	if LogPathFromContext(ctx) != "" {
		return ctx
	}
	return zerolog.Nop().WithContext(ctx)
}
