// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Context keys and getter/setter functions live here so that values set by
// middleware can be consumed by services without pulling net/http into the
// service packages.
//
// Usage in services (read values):
//
//	contextID := requestcontext.ContextID(ctx)
//	now := requestcontext.Now(ctx)
//
// Usage in middleware (set values):
//
//	ctx = requestcontext.WithContextID(ctx, contextID)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"
)

// Context key types (unexported for encapsulation).
type (
	contextIDKey   struct{}
	requestTimeKey struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeyContextID   = contextIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// ContextID retrieves the correlation ID for the current request. Returns ""
// if not set.
func ContextID(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyContextID).(string); ok {
		return id
	}
	return ""
}

// WithContextID injects a correlation ID into the context.
func WithContextID(ctx context.Context, contextID string) context.Context {
	return context.WithValue(ctx, ContextKeyContextID, contextID)
}

// Now retrieves the request-scoped time from context. Falls back to time.Now()
// for non-HTTP contexts like workers, CLI, and tests.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context. Useful for service unit
// tests that don't run the full HTTP middleware chain.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
