package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dtroode/authgate-server/internal/logger"
	"github.com/dtroode/authgate-server/internal/model"
)

// Profiles serves the authenticated user's own profile.
type Profiles struct {
	profiles model.ProfileStore
	validate *validator.Validate
	timeout  time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func NewProfiles(profiles model.ProfileStore, timeout time.Duration, logger *logger.Logger) *Profiles {
	return &Profiles{
		profiles: profiles,
		validate: NewValidator(),
		timeout:  timeout,
		now:      time.Now,
		logger:   logger,
	}
}

// GetProfile returns the caller's account merged with their profile. A user
// without a stored profile gets empty profile fields.
func (p *Profiles) GetProfile(ctx context.Context, caller model.Identity) (model.UserProfile, error) {
	profile, err := p.load(ctx, caller)
	if errors.Is(err, model.ErrNotFound) {
		return model.NewUserProfile(caller.User, model.Profile{UserID: caller.User.ID}), nil
	}
	if err != nil {
		return model.UserProfile{}, err
	}
	return model.NewUserProfile(caller.User, profile), nil
}

// UpdateProfile applies patch to the caller's profile, creating the profile
// first when it is missing.
func (p *Profiles) UpdateProfile(ctx context.Context, caller model.Identity, patch model.ProfilePatch) (model.UserProfile, error) {
	if err := checkInput(p.validate, patch); err != nil {
		return model.UserProfile{}, err
	}

	profile, err := p.load(ctx, caller)
	if errors.Is(err, model.ErrNotFound) {
		profile = model.Profile{UserID: caller.User.ID, UpdatedAt: p.now()}
		err = boundedErr(ctx, p.timeout, func(ctx context.Context) error {
			return p.profiles.Create(ctx, profile)
		})
		if err != nil {
			p.logger.Error("Profile service: failed to create profile",
				"user_id", caller.User.ID,
				"error", err.Error())
			return model.UserProfile{}, fmt.Errorf("failed to create profile: %w", err)
		}
	} else if err != nil {
		return model.UserProfile{}, err
	}

	next := patch.Apply(profile)
	next.UpdatedAt = p.now()
	updated, err := bounded(ctx, p.timeout, func(ctx context.Context) (model.Profile, error) {
		return p.profiles.Update(ctx, next)
	})
	if err != nil {
		p.logger.Error("Profile service: failed to update profile",
			"user_id", caller.User.ID,
			"error", err.Error())
		return model.UserProfile{}, fmt.Errorf("failed to update profile: %w", err)
	}

	p.logger.Info("Profile service: profile updated",
		"user_id", caller.User.ID)
	return model.NewUserProfile(caller.User, updated), nil
}

// load fetches the caller's profile and checks it belongs to them.
func (p *Profiles) load(ctx context.Context, caller model.Identity) (model.Profile, error) {
	profile, err := bounded(ctx, p.timeout, func(ctx context.Context) (model.Profile, error) {
		return p.profiles.GetByUserID(ctx, caller.User.ID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Profile{}, model.ErrNotFound
		}
		p.logger.Error("Profile service: failed to get profile",
			"user_id", caller.User.ID,
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.UserID != caller.User.ID {
		p.logger.Warn("Profile service: profile owner mismatch",
			"user_id", caller.User.ID,
			"owner", profile.UserID)
		return model.Profile{}, model.NewRejection(model.ErrOwnershipViolation, MsgOwnership)
	}
	return profile, nil
}
