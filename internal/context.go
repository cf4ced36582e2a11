package internal

import (
	"context"
	"time"
)

type ctxKey string

const contextActorKey ctxKey = "actor"

// ActorFromContext returns the value stored by the auth middleware, if any.
// The concrete type lives in internal/auth; this indirection keeps the
// context key in one place without an import cycle.
func ActorFromContext(ctx context.Context) (interface{}, bool) {
	if ctx == nil {
		return nil, false
	}
	v := ctx.Value(contextActorKey)
	return v, v != nil
}

func ContextWithActor(ctx context.Context, actor interface{}) context.Context {
	return context.WithValue(ctx, contextActorKey, actor)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
