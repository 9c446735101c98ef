package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/authgate-server/internal/logger"
	"github.com/dtroode/authgate-server/internal/model"
)

// Client-facing messages of the auth flows.
const (
	MsgEmailTaken         = "user with this email already exists"
	MsgInvalidCredentials = "invalid email or password"
	MsgOTPMismatch        = "otp didn't match, please check your email"
	MsgOwnership          = "you do not have permission to perform this action"
	MsgLoggedOut          = "You have successfully logged out"
)

type Auth struct {
	users      model.UserStore
	profiles   model.ProfileStore
	sessions   model.SessionRegistry
	tokens     model.TokenCodec
	passcodes  *Passcodes
	notifier   model.Notifier
	validate   *validator.Validate
	timeout    time.Duration
	bcryptCost int
	now        func() time.Time

	// dummyHash stands in for the stored hash of an unknown email.
	dummyOnce sync.Once
	dummyHash []byte

	logger *logger.Logger
}

func NewAuth(
	users model.UserStore,
	profiles model.ProfileStore,
	sessions model.SessionRegistry,
	tokens model.TokenCodec,
	passcodes *Passcodes,
	notifier model.Notifier,
	timeout time.Duration,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		users:      users,
		profiles:   profiles,
		sessions:   sessions,
		tokens:     tokens,
		passcodes:  passcodes,
		notifier:   notifier,
		validate:   NewValidator(),
		timeout:    timeout,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
		logger:     logger,
	}
}

// Register creates an unverified user account with an empty profile.
func (a *Auth) Register(ctx context.Context, req model.Registration) (model.User, error) {
	req.Email = normalizeEmail(req.Email)
	a.logger.Debug("Auth service: starting user registration",
		"email", req.Email)

	if err := checkInput(a.validate, req); err != nil {
		return model.User{}, err
	}

	_, err := bounded(ctx, a.timeout, func(ctx context.Context) (model.User, error) {
		return a.users.GetByEmail(ctx, req.Email)
	})
	switch {
	case err == nil:
		a.logger.Info("Auth service: user already exists",
			"email", req.Email)
		return model.User{}, model.NewRejection(model.ErrEmailTaken, MsgEmailTaken)
	case !errors.Is(err, model.ErrNotFound):
		a.logger.Error("Auth service: failed to get user by email",
			"email", req.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now()
	user, err := bounded(ctx, a.timeout, func(ctx context.Context) (model.User, error) {
		return a.users.Create(ctx, model.User{
			ID:           uuid.New(),
			Email:        req.Email,
			PasswordHash: hash,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	})
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return model.User{}, model.NewRejection(model.ErrEmailTaken, MsgEmailTaken)
		}
		a.logger.Error("Auth service: failed to create user",
			"email", req.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	err = boundedErr(ctx, a.timeout, func(ctx context.Context) error {
		return a.profiles.Create(ctx, model.Profile{UserID: user.ID, UpdatedAt: now})
	})
	if err != nil {
		a.logger.Error("Auth service: failed to create profile",
			"user_id", user.ID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create profile: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID,
		"email", user.Email)

	return user, nil
}

// RegisterWithOTP registers the user and emails a verification passcode.
func (a *Auth) RegisterWithOTP(ctx context.Context, req model.Registration) (model.User, error) {
	user, err := a.Register(ctx, req)
	if err != nil {
		return model.User{}, err
	}

	code, err := a.passcodes.Issue(ctx, model.OTPPurposeVerify, user.Email)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to issue verification code: %w", err)
	}
	a.notifier.Notify(model.Notice{Kind: model.MailKindVerifyEmail, To: user.Email, Code: code})

	return user, nil
}

// VerifyAccount marks the account verified when the passcode matches.
func (a *Auth) VerifyAccount(ctx context.Context, attempt model.OTPAttempt) (model.User, error) {
	attempt.Email = normalizeEmail(attempt.Email)
	if err := checkInput(a.validate, attempt); err != nil {
		return model.User{}, err
	}

	if err := a.consume(ctx, model.OTPPurposeVerify, attempt); err != nil {
		return model.User{}, err
	}

	user, err := a.markVerified(ctx, attempt.Email)
	if err != nil {
		a.keepCode(ctx, model.OTPPurposeVerify, attempt, err)
		return model.User{}, err
	}

	a.logger.Info("Auth service: email verified",
		"user_id", user.ID)
	return user, nil
}

func (a *Auth) markVerified(ctx context.Context, email string) (model.User, error) {
	user, err := a.userByEmail(ctx, email)
	if err != nil {
		return model.User{}, err
	}

	err = boundedErr(ctx, a.timeout, func(ctx context.Context) error {
		return a.users.SetVerified(ctx, user.ID)
	})
	if err != nil {
		a.logger.Error("Auth service: failed to mark user verified",
			"user_id", user.ID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to mark user verified: %w", err)
	}
	user.IsVerified = true
	return user, nil
}

// RequestLoginOTP checks the credentials and emails the login passcode. A
// live passcode is reused, and the email is sent on every request.
func (a *Auth) RequestLoginOTP(ctx context.Context, req model.LoginRequest) error {
	req.Email = normalizeEmail(req.Email)
	a.logger.Debug("Auth service: login passcode requested",
		"email", req.Email)

	if err := checkInput(a.validate, req); err != nil {
		return err
	}

	user, err := bounded(ctx, a.timeout, func(ctx context.Context) (model.User, error) {
		return a.users.GetByEmail(ctx, req.Email)
	})
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", req.Email,
			"error", err.Error())
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	hash := user.PasswordHash
	if err != nil {
		hash = a.unknownUserHash()
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) != nil || err != nil {
		a.logger.Info("Auth service: invalid credentials",
			"email", req.Email)
		return model.NewRejection(model.ErrInvalidCredentials, MsgInvalidCredentials)
	}
	if !user.IsActive {
		return model.NewRejection(model.ErrUserDeactivated, ReasonUserDeactivated)
	}

	code, err := a.passcodes.IssueOrReuse(ctx, model.OTPPurposeLogin, user.Email)
	if err != nil {
		return fmt.Errorf("failed to issue login code: %w", err)
	}
	a.notifier.Notify(model.Notice{Kind: model.MailKindLoginOTP, To: user.Email, Code: code})

	a.logger.Info("Auth service: login passcode sent",
		"user_id", user.ID)
	return nil
}

// ValidateLoginOTP consumes the login passcode, issues a token and makes it
// the user's active session. When another session is active the passcode
// stays consumed and a session conflict is returned.
func (a *Auth) ValidateLoginOTP(ctx context.Context, attempt model.OTPAttempt, device model.Device) (model.Session, error) {
	attempt.Email = normalizeEmail(attempt.Email)
	if err := checkInput(a.validate, attempt); err != nil {
		return model.Session{}, err
	}

	if err := a.consume(ctx, model.OTPPurposeLogin, attempt); err != nil {
		return model.Session{}, err
	}

	session, err := a.openSession(ctx, attempt.Email, device)
	if err != nil {
		a.keepCode(ctx, model.OTPPurposeLogin, attempt, err)
		return model.Session{}, err
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", session.User.ID,
		"user_agent", device.UserAgent,
		"ip", device.IP)

	return session, nil
}

func (a *Auth) openSession(ctx context.Context, email string, device model.Device) (model.Session, error) {
	user, err := a.userByEmail(ctx, email)
	if err != nil {
		return model.Session{}, err
	}
	if !user.IsActive {
		return model.Session{}, model.NewRejection(model.ErrUserDeactivated, ReasonUserDeactivated)
	}

	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	err = boundedErr(ctx, a.timeout, func(ctx context.Context) error {
		return a.sessions.Create(ctx, model.SessionRecord{
			UserID:    user.ID,
			Token:     token,
			Device:    device,
			CreatedAt: a.now(),
		})
	})
	if err != nil {
		if errors.Is(err, model.ErrSessionExists) {
			a.logger.Info("Auth service: login refused, session active on another device",
				"user_id", user.ID)
			return model.Session{}, model.NewRejection(model.ErrSessionConflict, ReasonSessionConflict)
		}
		a.logger.Error("Auth service: failed to create session",
			"user_id", user.ID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return model.Session{User: user, Token: token}, nil
}

// Logout ends the caller's active session. target is the account the client
// asked to log out; uuid.Nil means the caller. Logging out without an
// active session succeeds.
func (a *Auth) Logout(ctx context.Context, caller model.Identity, target uuid.UUID) (string, error) {
	if target != uuid.Nil && target != caller.User.ID {
		a.logger.Info("Auth service: logout of another user refused",
			"user_id", caller.User.ID,
			"target", target)
		return "", model.NewRejection(model.ErrOwnershipViolation, MsgOwnership)
	}

	err := boundedErr(ctx, a.timeout, func(ctx context.Context) error {
		return a.sessions.Destroy(ctx, caller.User.ID)
	})
	if err != nil {
		a.logger.Error("Auth service: failed to destroy session",
			"user_id", caller.User.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to destroy session: %w", err)
	}

	a.logger.Info("Auth service: user logged out",
		"user_id", caller.User.ID)
	return MsgLoggedOut, nil
}

func (a *Auth) unknownUserHash() []byte {
	a.dummyOnce.Do(func() {
		a.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("authgate-dummy-password"), a.bcryptCost)
	})
	return a.dummyHash
}

func (a *Auth) consume(ctx context.Context, purpose model.OTPPurpose, attempt model.OTPAttempt) error {
	err := a.passcodes.Consume(ctx, purpose, attempt.Email, attempt.OTP)
	if errors.Is(err, model.ErrOTPMismatch) {
		return model.NewRejection(model.ErrOTPMismatch, MsgOTPMismatch)
	}
	return err
}

// keepCode puts a consumed code back when err is neither nil nor a
// rejection, so the same code can be retried.
func (a *Auth) keepCode(ctx context.Context, purpose model.OTPPurpose, attempt model.OTPAttempt, err error) {
	var rejection *model.Rejection
	if err == nil || errors.As(err, &rejection) {
		return
	}
	_ = a.passcodes.Restore(context.WithoutCancel(ctx), purpose, attempt.Email, attempt.OTP)
}

func (a *Auth) userByEmail(ctx context.Context, email string) (model.User, error) {
	user, err := bounded(ctx, a.timeout, func(ctx context.Context) (model.User, error) {
		return a.users.GetByEmail(ctx, email)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.NewRejection(model.ErrUserNotFound, "user with this email was not found")
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}
