package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/dtroode/authgate-server/internal/api/http/handler"
	"github.com/dtroode/authgate-server/internal/apierror"
	"github.com/dtroode/authgate-server/internal/logger"
	"github.com/dtroode/authgate-server/internal/model"
)

// Authenticate runs the authentication gate for HTTP requests.
type Authenticate struct {
	gate           model.Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(gate model.Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{gate: gate, contextManager: contextManager, logger: logger}
}

// Handle resolves the Authorization header. A rejected token aborts the
// request; an anonymous request continues without an identity.
func (m *Authenticate) Handle(c *gin.Context) {
	device := model.Device{UserAgent: c.Request.UserAgent(), IP: c.ClientIP()}

	identity, ok, err := m.gate.Authenticate(c.Request.Context(), c.GetHeader("Authorization"), device)
	if err != nil {
		m.logger.Debug("Authenticate middleware: request rejected",
			"path", c.FullPath(),
			"error", err.Error())
		handler.Fail(c, err)
		return
	}
	if ok {
		c.Request = c.Request.WithContext(m.contextManager.SetIdentityToContext(c.Request.Context(), identity))
	}

	c.Next()
}

// RequireIdentity refuses requests that reached it without an identity.
func (m *Authenticate) RequireIdentity(c *gin.Context) {
	if _, ok := m.contextManager.GetIdentityFromContext(c.Request.Context()); !ok {
		handler.Fail(c, apierror.Unauthenticated())
		return
	}
	c.Next()
}
