package model

import (
	"context"
	"time"
)

// OTPPurpose separates the passcode lifecycles sharing one store.
type OTPPurpose string

const (
	// OTPPurposeVerify is the registration email verification passcode.
	OTPPurposeVerify OTPPurpose = "verify"
	// OTPPurposeLogin is the passwordless login passcode.
	OTPPurposeLogin OTPPurpose = "login"
)

// OTPKey builds the store key for a purpose and an email.
func OTPKey(purpose OTPPurpose, email string) string {
	return "otp:" + string(purpose) + ":" + email
}

// OTPStore is a key-value cache with expiry holding one-time passcodes.
// A zero ttl means the entry lives until it is deleted.
type OTPStore interface {
	// Get returns the live code or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores code, replacing any live entry.
	Set(ctx context.Context, key, code string, ttl time.Duration) error
	// SetIfAbsent stores code only when no live entry exists and returns
	// whichever code is live after the call.
	SetIfAbsent(ctx context.Context, key, code string, ttl time.Duration) (string, error)
	// CompareAndDelete deletes the entry only if it holds code. It reports
	// whether the entry matched.
	CompareAndDelete(ctx context.Context, key, code string) (bool, error)
	Delete(ctx context.Context, key string) error
}
