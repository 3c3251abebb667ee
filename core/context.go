package core

import "context"

type contextKey int

const suppressHeaderKey contextKey = iota

// WithSuppressHeader returns a context that silences the analysis header.
// Used when output must stay machine-readable, such as MCP tool calls.
func WithSuppressHeader(ctx context.Context, suppress bool) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, suppress)
}

func shouldSuppressHeader(ctx context.Context) bool {
	v, ok := ctx.Value(suppressHeaderKey).(bool)
	return ok && v
}
