package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/authgate-server/internal/model"
)

// Ensure SessionRepository implements the model.SessionRegistry interface.
var _ model.SessionRegistry = (*SessionRepository)(nil)

// SessionRepository keeps session records in the user_sessions table. The
// primary key on user_id makes Create an atomic insert-if-absent.
type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) GetActive(ctx context.Context, userID uuid.UUID) (model.SessionRecord, error) {
	const query = `
        SELECT user_id, token, user_agent, ip, created_at
        FROM user_sessions
        WHERE user_id = $1
    `
	var rec model.SessionRecord
	if err := r.db.QueryRow(ctx, query, userID).Scan(
		&rec.UserID,
		&rec.Token,
		&rec.Device.UserAgent,
		&rec.Device.IP,
		&rec.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.SessionRecord{}, model.ErrNotFound
		}
		return model.SessionRecord{}, fmt.Errorf("failed to get active session: %w", err)
	}
	return rec, nil
}

func (r *SessionRepository) Create(ctx context.Context, record model.SessionRecord) error {
	const query = `
        INSERT INTO user_sessions (user_id, token, user_agent, ip, created_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query,
		record.UserID,
		record.Token,
		record.Device.UserAgent,
		record.Device.IP,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSessionExists
	}
	return nil
}

func (r *SessionRepository) Destroy(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM user_sessions WHERE user_id = $1`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
