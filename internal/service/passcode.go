package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/dtroode/authgate-server/internal/logger"
	"github.com/dtroode/authgate-server/internal/model"
)

// MinCodeLength is the shortest passcode the service issues.
const MinCodeLength = 6

// GenerateCode returns a random decimal code of the given length.
func GenerateCode(length int) (string, error) {
	if length < MinCodeLength {
		length = MinCodeLength
	}
	var b strings.Builder
	b.Grow(length)
	ten := big.NewInt(10)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("failed to generate code: %w", err)
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}

// Passcodes manages the per-purpose one-time passcodes of an email address.
type Passcodes struct {
	store   model.OTPStore
	ttl     time.Duration
	length  int
	timeout time.Duration
	newCode func(length int) (string, error)
	logger  *logger.Logger
}

func NewPasscodes(store model.OTPStore, ttl time.Duration, length int, timeout time.Duration, logger *logger.Logger) *Passcodes {
	return &Passcodes{
		store:   store,
		ttl:     ttl,
		length:  length,
		timeout: timeout,
		newCode: GenerateCode,
		logger:  logger,
	}
}

// Issue stores a fresh code, replacing any live one, and returns it.
func (p *Passcodes) Issue(ctx context.Context, purpose model.OTPPurpose, email string) (string, error) {
	code, err := p.newCode(p.length)
	if err != nil {
		return "", err
	}

	err = boundedErr(ctx, p.timeout, func(ctx context.Context) error {
		return p.store.Set(ctx, model.OTPKey(purpose, email), code, p.ttl)
	})
	if err != nil {
		p.logger.Error("Passcodes: failed to store code",
			"purpose", purpose,
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to store otp: %w", err)
	}

	p.logger.Debug("Passcodes: code issued",
		"purpose", purpose,
		"email", email)
	return code, nil
}

// IssueOrReuse returns the live code for email, storing a fresh one only
// when none exists.
func (p *Passcodes) IssueOrReuse(ctx context.Context, purpose model.OTPPurpose, email string) (string, error) {
	candidate, err := p.newCode(p.length)
	if err != nil {
		return "", err
	}

	code, err := bounded(ctx, p.timeout, func(ctx context.Context) (string, error) {
		return p.store.SetIfAbsent(ctx, model.OTPKey(purpose, email), candidate, p.ttl)
	})
	if err != nil {
		p.logger.Error("Passcodes: failed to store code",
			"purpose", purpose,
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to store otp: %w", err)
	}

	p.logger.Debug("Passcodes: code ready",
		"purpose", purpose,
		"email", email,
		"reused", code != candidate)
	return code, nil
}

// Consume deletes the entry if it holds code. A mismatch, including a
// missing entry, returns model.ErrOTPMismatch and leaves the store as is.
func (p *Passcodes) Consume(ctx context.Context, purpose model.OTPPurpose, email, code string) error {
	if code == "" {
		return model.ErrOTPMismatch
	}

	matched, err := bounded(ctx, p.timeout, func(ctx context.Context) (bool, error) {
		return p.store.CompareAndDelete(ctx, model.OTPKey(purpose, email), code)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrOTPMismatch
		}
		p.logger.Error("Passcodes: failed to consume code",
			"purpose", purpose,
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to consume otp: %w", err)
	}
	if !matched {
		p.logger.Info("Passcodes: code mismatch",
			"purpose", purpose,
			"email", email)
		return model.ErrOTPMismatch
	}
	return nil
}

// Restore puts a consumed code back for the rest of its TTL. A code issued
// in the meantime wins.
func (p *Passcodes) Restore(ctx context.Context, purpose model.OTPPurpose, email, code string) error {
	err := boundedErr(ctx, p.timeout, func(ctx context.Context) error {
		_, err := p.store.SetIfAbsent(ctx, model.OTPKey(purpose, email), code, p.ttl)
		return err
	})
	if err != nil {
		p.logger.Error("Passcodes: failed to restore code",
			"purpose", purpose,
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to restore otp: %w", err)
	}

	p.logger.Debug("Passcodes: code restored",
		"purpose", purpose,
		"email", email)
	return nil
}
