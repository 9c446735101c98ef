package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dtroode/authgate-server/internal/model"
)

// Ensure SessionRegistry implements the model.SessionRegistry interface.
var _ model.SessionRegistry = (*SessionRegistry)(nil)

// sessionDoc is the JSON value stored under a session key.
type sessionDoc struct {
	UserID    uuid.UUID    `json:"user_id"`
	Token     string       `json:"token"`
	Device    model.Device `json:"device"`
	CreatedAt time.Time    `json:"created_at"`
}

// SessionRegistry keeps one key per user. SETNX makes Create atomic.
type SessionRegistry struct {
	client redis.UniversalClient
}

func NewSessionRegistry(client redis.UniversalClient) *SessionRegistry {
	return &SessionRegistry{client: client}
}

func sessionKey(userID uuid.UUID) string {
	return "session:" + userID.String()
}

func (r *SessionRegistry) GetActive(ctx context.Context, userID uuid.UUID) (model.SessionRecord, error) {
	raw, err := r.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.SessionRecord{}, model.ErrNotFound
		}
		return model.SessionRecord{}, fmt.Errorf("failed to get active session: %w", err)
	}

	var doc sessionDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.SessionRecord{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return model.SessionRecord{
		UserID:    doc.UserID,
		Token:     doc.Token,
		Device:    doc.Device,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (r *SessionRegistry) Create(ctx context.Context, record model.SessionRecord) error {
	raw, err := json.Marshal(sessionDoc{
		UserID:    record.UserID,
		Token:     record.Token,
		Device:    record.Device,
		CreatedAt: record.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	ok, err := r.client.SetNX(ctx, sessionKey(record.UserID), raw, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	if !ok {
		return model.ErrSessionExists
	}
	return nil
}

func (r *SessionRegistry) Destroy(ctx context.Context, userID uuid.UUID) error {
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
