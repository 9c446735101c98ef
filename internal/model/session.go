package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionRegistry keeps at most one active session per user.
//
// Create must be an atomic insert-if-absent: when a record for the user
// already exists it returns ErrSessionExists and leaves the record untouched.
// Destroy is idempotent.
type SessionRegistry interface {
	GetActive(ctx context.Context, userID uuid.UUID) (SessionRecord, error)
	Create(ctx context.Context, record SessionRecord) error
	Destroy(ctx context.Context, userID uuid.UUID) error
}

// Device describes the client a session was established from.
type Device struct {
	UserAgent string `json:"user_agent,omitempty" bson:"agent,omitempty"`
	IP        string `json:"ip,omitempty" bson:"ip,omitempty"`
}

// SessionRecord binds a user to the only token currently allowed for them.
type SessionRecord struct {
	UserID    uuid.UUID
	Token     string
	Device    Device
	CreatedAt time.Time
}

// Identity is the authenticated caller of a request.
type Identity struct {
	User  User
	Token string
}
