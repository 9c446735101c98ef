package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"

	authv1 "github.com/dtroode/authgate-server/api/authgate/v1"
	"github.com/dtroode/authgate-server/internal/api/grpc/handler"
	"github.com/dtroode/authgate-server/internal/api/grpc/middleware"
	"github.com/dtroode/authgate-server/internal/logger"
	"github.com/dtroode/authgate-server/internal/model"
)

// protected lists the methods that require an authenticated caller.
var protected = map[string]struct{}{
	authv1.Auth_Logout_FullMethodName:        {},
	authv1.Auth_GetProfile_FullMethodName:    {},
	authv1.Auth_UpdateProfile_FullMethodName: {},
}

// Router represents a gRPC router for authgate operations.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	authService    model.AuthService
	profileService model.ProfileService
	gate           model.Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
//
// Parameters:
//   - authService: The registration, verification and login service
//   - profileService: The profile service
//   - gate: The authentication gate resolving bearer tokens
//   - contextManager: Stores the caller identity in request contexts
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	authService model.AuthService,
	profileService model.ProfileService,
	gate model.Authenticator,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		profileService: profileService,
		gate:           gate,
		contextManager: contextManager,
		logger:         logger,
	}
}

func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	_, ok := protected[c.FullMethod()]
	return ok
}

// Register registers all gRPC services and middleware.
// It sets up the gRPC server with request logging and authentication interceptors.
//
// Returns the configured gRPC server instance.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.gate, r.contextManager, r.logger)

	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
	)

	s := grpc.NewServer(opts...)
	authHandler := handler.NewAuth(r.authService, r.profileService, r.contextManager, r.logger)
	authv1.RegisterAuthServer(s, authHandler)

	return s
}
