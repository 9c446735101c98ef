package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/authgate-server/internal/logger"
	"github.com/dtroode/authgate-server/internal/model"
)

// Rejection reasons reported to clients.
const (
	ReasonTokenExpired    = "token expired, please re-authenticate."
	ReasonUserNotFound    = "user matching this token was not found."
	ReasonUserDeactivated = "forbidden, user deactivated."
	ReasonSessionConflict = "session active on another device"
)

const bearerScheme = "bearer"

// Gate authenticates bearer tokens and enforces a single active session per
// user.
type Gate struct {
	users    model.UserStore
	sessions model.SessionRegistry
	tokens   model.TokenCodec
	timeout  time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func NewGate(
	users model.UserStore,
	sessions model.SessionRegistry,
	tokens model.TokenCodec,
	timeout time.Duration,
	logger *logger.Logger,
) *Gate {
	return &Gate{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		timeout:  timeout,
		now:      time.Now,
		logger:   logger,
	}
}

// Authenticate resolves the Authorization header value. It returns ok=false
// with a nil error when the request carries no bearer credentials. A
// *model.Rejection is returned for credentials that must be refused; any
// other error is an infrastructure failure.
func (g *Gate) Authenticate(ctx context.Context, header string, device model.Device) (model.Identity, bool, error) {
	token, ok := parseBearer(header)
	if !ok {
		return model.Identity{}, false, nil
	}

	userID, err := g.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, model.ErrExpiredToken) {
			g.logger.Debug("Gate: expired token")
			return model.Identity{}, false, model.NewRejection(model.ErrExpiredToken, ReasonTokenExpired)
		}
		g.logger.Debug("Gate: malformed token", "error", err.Error())
		return model.Identity{}, false, model.NewRejection(model.ErrMalformedToken, err.Error())
	}

	user, err := bounded(ctx, g.timeout, func(ctx context.Context) (model.User, error) {
		return g.users.GetByID(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			g.logger.Info("Gate: token for unknown user", "user_id", userID)
			return model.Identity{}, false, model.NewRejection(model.ErrUserNotFound, ReasonUserNotFound)
		}
		g.logger.Error("Gate: failed to get user",
			"user_id", userID,
			"error", err.Error())
		return model.Identity{}, false, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		g.logger.Info("Gate: deactivated user", "user_id", userID)
		return model.Identity{}, false, model.NewRejection(model.ErrUserDeactivated, ReasonUserDeactivated)
	}

	if err := g.bindSession(ctx, user.ID, token, device); err != nil {
		return model.Identity{}, false, err
	}

	return model.Identity{User: user, Token: token}, true, nil
}

// bindSession makes token the user's active session or verifies that it
// already is.
func (g *Gate) bindSession(ctx context.Context, userID uuid.UUID, token string, device model.Device) error {
	record, err := bounded(ctx, g.timeout, func(ctx context.Context) (model.SessionRecord, error) {
		return g.sessions.GetActive(ctx, userID)
	})
	if errors.Is(err, model.ErrNotFound) {
		err = boundedErr(ctx, g.timeout, func(ctx context.Context) error {
			return g.sessions.Create(ctx, model.SessionRecord{
				UserID:    userID,
				Token:     token,
				Device:    device,
				CreatedAt: g.now(),
			})
		})
		if err == nil {
			g.logger.Info("Gate: session established",
				"user_id", userID,
				"user_agent", device.UserAgent,
				"ip", device.IP)
			return nil
		}
		if !errors.Is(err, model.ErrSessionExists) {
			g.logger.Error("Gate: failed to create session",
				"user_id", userID,
				"error", err.Error())
			return fmt.Errorf("failed to create session: %w", err)
		}

		// Another request created the record first.
		record, err = bounded(ctx, g.timeout, func(ctx context.Context) (model.SessionRecord, error) {
			return g.sessions.GetActive(ctx, userID)
		})
	}
	if err != nil {
		g.logger.Error("Gate: failed to get active session",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to get active session: %w", err)
	}

	if record.Token != token {
		g.logger.Info("Gate: session active on another device",
			"user_id", userID,
			"user_agent", device.UserAgent,
			"ip", device.IP)
		return model.NewRejection(model.ErrSessionConflict, ReasonSessionConflict)
	}
	return nil
}

// parseBearer extracts the token from "Bearer <token>". Anything that does
// not split into exactly two fields with a bearer scheme is not a bearer
// credential.
func parseBearer(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], bearerScheme) {
		return "", false
	}
	return parts[1], true
}
