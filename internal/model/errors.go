package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested entity is absent.
	ErrNotFound = errors.New("not found")
	// ErrSessionExists is returned by SessionRegistry.Create when the user
	// already has an active session.
	ErrSessionExists = errors.New("session already exists")
	// ErrUnavailable marks a retryable infrastructure failure such as a timeout.
	ErrUnavailable = errors.New("service temporarily unavailable")

	ErrExpiredToken       = errors.New("token expired")
	ErrMalformedToken     = errors.New("malformed token")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserDeactivated    = errors.New("user deactivated")
	ErrSessionConflict    = errors.New("session active on another device")
	ErrOTPMismatch        = errors.New("otp mismatch")
	ErrOwnershipViolation = errors.New("ownership violation")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation error")
	ErrEmailTaken         = errors.New("email already taken")
)

// Rejection is an authentication failure carrying a human-readable reason.
// errors.Is matches it against its Kind.
type Rejection struct {
	Kind   error
	Reason string
}

// NewRejection creates a Rejection of the given kind.
func NewRejection(kind error, reason string) *Rejection {
	return &Rejection{Kind: kind, Reason: reason}
}

func (r *Rejection) Error() string {
	return r.Reason
}

func (r *Rejection) Unwrap() error {
	return r.Kind
}
