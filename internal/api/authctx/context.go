// Package authctx carries the authenticated identity through a request
// context. Both the HTTP and the gRPC layer use it.
package authctx

import (
	"context"

	"github.com/dtroode/authgate-server/internal/model"
)

// identityKey is the context key under which the identity is stored.
type identityKey struct{}

var _ model.ContextManager = (*Manager)(nil)

// Manager represents a request context manager for identity operations.
type Manager struct{}

// NewManager creates a new context manager instance.
//
// Returns a pointer to the newly created Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext stores the authenticated identity in the context.
//
// Parameters:
//   - ctx: The request context
//   - identity: The identity resolved by the authentication gate
//
// Returns a new context carrying the identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentityFromContext retrieves the identity stored by
// SetIdentityToContext.
//
// Parameters:
//   - ctx: The request context
//
// Returns the identity and a boolean indicating if one was found.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(model.Identity)
	if !ok {
		return model.Identity{}, false
	}
	return identity, true
}
