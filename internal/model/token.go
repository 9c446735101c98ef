package model

import "github.com/google/uuid"

// TokenCodec issues and verifies signed, time-bound authentication tokens.
//
// Verify returns ErrExpiredToken for tokens past their expiry and an error
// wrapping ErrMalformedToken for anything else it cannot accept.
type TokenCodec interface {
	Issue(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}
