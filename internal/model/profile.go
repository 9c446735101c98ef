package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileStore defines persistence operations for user profiles.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	Create(ctx context.Context, profile Profile) error
	Update(ctx context.Context, profile Profile) (Profile, error)
}

// Profile holds per-user preferences.
type Profile struct {
	UserID        uuid.UUID
	RecordingTime int
	ParentalLock  bool
	Package       string
	UpdatedAt     time.Time
}

// ProfilePatch is a partial profile update; nil fields are left untouched.
type ProfilePatch struct {
	RecordingTime *int    `json:"recording_time" validate:"omitempty,min=0"`
	ParentalLock  *bool   `json:"parental_lock"`
	Package       *string `json:"package" validate:"omitempty,max=64"`
}

// Apply returns a copy of p with the patch fields set.
func (pp ProfilePatch) Apply(p Profile) Profile {
	if pp.RecordingTime != nil {
		p.RecordingTime = *pp.RecordingTime
	}
	if pp.ParentalLock != nil {
		p.ParentalLock = *pp.ParentalLock
	}
	if pp.Package != nil {
		p.Package = *pp.Package
	}
	return p
}

// UserProfile is a user's account fields merged with their profile.
type UserProfile struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	IsVerified    bool   `json:"is_verified"`
	RecordingTime int    `json:"recording_time"`
	ParentalLock  bool   `json:"parental_lock"`
	Package       string `json:"package"`
}

// NewUserProfile merges user and profile.
func NewUserProfile(user User, profile Profile) UserProfile {
	return UserProfile{
		UserID:        user.ID.String(),
		Email:         user.Email,
		IsVerified:    user.IsVerified,
		RecordingTime: profile.RecordingTime,
		ParentalLock:  profile.ParentalLock,
		Package:       profile.Package,
	}
}
