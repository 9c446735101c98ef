package middleware

import (
	"context"

	"google.golang.org/grpc/metadata"

	"github.com/dtroode/authgate-server/internal/apierror"
	"github.com/dtroode/authgate-server/internal/logger"
	"github.com/dtroode/authgate-server/internal/model"
)

const authorizationKey = "authorization"

// Authenticate resolves bearer tokens through the authentication gate and
// injects the identity into the context.
type Authenticate struct {
	gate           model.Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(gate model.Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{gate: gate, contextManager: contextManager, logger: logger}
}

// AuthFunc reads the authorization metadata and returns a context carrying
// the caller's identity. Calls without bearer credentials are refused.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	var header string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(authorizationKey); len(values) > 0 {
			header = values[0]
		}
	}

	identity, ok, err := m.gate.Authenticate(ctx, header, DeviceFromContext(ctx))
	if err != nil {
		m.logger.Debug("Authenticate middleware: request rejected",
			"error", err.Error())
		return nil, apierror.GRPC(err)
	}
	if !ok {
		return nil, apierror.Unauthenticated().GRPCStatus().Err()
	}

	return m.contextManager.SetIdentityToContext(ctx, identity), nil
}
