// Package ctxlog passes a slog.Logger through context.Context so library
// code can log without threading a logger argument everywhere.
package ctxlog

import (
	"context"
	"log/slog"
)

type key struct{}

// With returns a context carrying logger.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// From extracts the logger from ctx, falling back to slog.Default when the
// context carries none.
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(key{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
