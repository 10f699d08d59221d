package logging

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type sessionIDKey struct{}

// NewSessionID returns a new, time-ordered session id.
func NewSessionID() string {
	return ulid.Make().String()
}

// ContextWithSessionID stores id in ctx.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext returns the session id stored in ctx, or "".
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}

// GetOrGenerateSessionID returns the id in ctx, generating one if absent.
func GetOrGenerateSessionID(ctx context.Context) string {
	if id := SessionIDFromContext(ctx); id != "" {
		return id
	}
	return NewSessionID()
}
