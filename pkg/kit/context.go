package kit

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	TransportKey contextKey = "kit_transport" // "http", "mcp", "cli"
	RequestIDKey contextKey = "kit_request_id"
	SourceKey    contextKey = "kit_source"
)

func WithTransport(ctx context.Context, t string) context.Context {
	return context.WithValue(ctx, TransportKey, t)
}
func GetTransport(ctx context.Context) string {
	if v, ok := ctx.Value(TransportKey).(string); ok {
		return v
	}
	return "http"
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(RequestIDKey).(string)
	return v
}

// EnsureRequestID returns ctx unchanged when it already carries a request
// ID, otherwise it attaches a fresh UUID.
func EnsureRequestID(ctx context.Context) context.Context {
	if GetRequestID(ctx) != "" {
		return ctx
	}
	return WithRequestID(ctx, uuid.NewString())
}

// WithSource labels where the text came from (file name, "http", "mcp").
// It ends up in the history journal.
func WithSource(ctx context.Context, src string) context.Context {
	return context.WithValue(ctx, SourceKey, src)
}
func GetSource(ctx context.Context) string {
	if v, ok := ctx.Value(SourceKey).(string); ok && v != "" {
		return v
	}
	return GetTransport(ctx)
}
