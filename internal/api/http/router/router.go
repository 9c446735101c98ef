package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/authgate-server/internal/api/http/handler"
	"github.com/dtroode/authgate-server/internal/api/http/middleware"
	"github.com/dtroode/authgate-server/internal/logger"
	"github.com/dtroode/authgate-server/internal/model"
)

// BasePath prefixes every API route.
const BasePath = "/api/v2"

// Router builds the gin engine serving the HTTP API.
type Router struct {
	authService    model.AuthService
	profileService model.ProfileService
	gate           model.Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

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

// Register creates the engine with logging, recovery and all routes.
// Routes that act on an account run behind the authentication gate.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.gate, r.contextManager, r.logger)
	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	profileHandler := handler.NewProfile(r.profileService, r.contextManager, r.logger)

	engine := gin.New()
	engine.Use(logging.Handle, gin.Recovery())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group(BasePath)
	api.POST("/subscription/", authHandler.Register)
	api.POST("/register/", authHandler.RegisterWithOTP)
	api.POST("/login/", authHandler.RequestLoginOTP)
	api.POST("/login/otp/", authHandler.ValidateLoginOTP)
	api.POST("/verify/", authHandler.VerifyAccount)

	protected := api.Group("", authenticate.Handle, authenticate.RequireIdentity)
	protected.POST("/logout/", authHandler.Logout)
	protected.GET("/profile/", profileHandler.Get)
	protected.PATCH("/profile/", profileHandler.Update)

	return engine
}
