package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/authgate-server/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

type ProfileRepository struct {
	db *Connection
}

func NewProfileRepository(db *Connection) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	const query = `
        SELECT user_id, recording_time, parental_lock, package, updated_at
        FROM profiles WHERE user_id = $1
    `
	var p model.Profile
	if err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.RecordingTime, &p.ParentalLock, &p.Package, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile model.Profile) error {
	const query = `
        INSERT INTO profiles (user_id, recording_time, parental_lock, package, updated_at)
        VALUES ($1, $2, $3, $4, NOW())
        ON CONFLICT (user_id) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, query,
		profile.UserID, profile.RecordingTime, profile.ParentalLock, profile.Package,
	); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile model.Profile) (model.Profile, error) {
	const query = `
        UPDATE profiles
        SET recording_time = $2, parental_lock = $3, package = $4, updated_at = NOW()
        WHERE user_id = $1
        RETURNING user_id, recording_time, parental_lock, package, updated_at
    `
	var p model.Profile
	if err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.RecordingTime, profile.ParentalLock, profile.Package,
	).Scan(&p.UserID, &p.RecordingTime, &p.ParentalLock, &p.Package, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return p, nil
}
