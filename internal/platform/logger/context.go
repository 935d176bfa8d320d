package logger

import (
	"context"
	"log/slog"

	"github.com/SHEBN-DEV/Demoshebn/pkg/middleware"
)

// FromContext returns the request logger set by middleware.RequestLogger,
// or the default logger outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(middleware.LoggerKey).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

// WithContext stores l for FromContext, used by background work that
// outlives the request.
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, middleware.LoggerKey, l)
}
