package scope

import (
	"context"

	"ugc-srv/internal/model"
)

// Payload carries verified token claims.
type Payload struct {
	UserID    string
	Username  string
	Role      string
	Subject   string
	Issuer    string
	ID        string
	IssuedAt  int64
	ExpiresAt int64
}

// Manager verifies a token string into a Payload.
type Manager interface {
	Verify(token string) (Payload, error)
}

// NewScope creates a request scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

type scopeKey struct{}
type payloadKey struct{}

// SetScopeToContext stores the scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the scope stored in the context, or a zero scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}

// SetPayloadToContext stores the raw token payload in the context.
func SetPayloadToContext(ctx context.Context, p Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, p)
}

// GetPayloadFromContext returns the payload stored in the context.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadKey{}).(Payload)
	return p, ok
}
