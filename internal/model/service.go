package model

import (
	"context"

	"github.com/google/uuid"
)

// Authenticator resolves the Authorization header of a request.
type Authenticator interface {
	Authenticate(ctx context.Context, header string, device Device) (Identity, bool, error)
}

// AuthService holds the registration, passcode and logout flows served by
// the transports.
type AuthService interface {
	Register(ctx context.Context, req Registration) (User, error)
	RegisterWithOTP(ctx context.Context, req Registration) (User, error)
	VerifyAccount(ctx context.Context, attempt OTPAttempt) (User, error)
	RequestLoginOTP(ctx context.Context, req LoginRequest) error
	ValidateLoginOTP(ctx context.Context, attempt OTPAttempt, device Device) (Session, error)
	Logout(ctx context.Context, caller Identity, target uuid.UUID) (string, error)
}

// ProfileService serves the caller's profile.
type ProfileService interface {
	GetProfile(ctx context.Context, caller Identity) (UserProfile, error)
	UpdateProfile(ctx context.Context, caller Identity, patch ProfilePatch) (UserProfile, error)
}
