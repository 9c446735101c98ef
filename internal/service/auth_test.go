package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/authgate-server/internal/mocks"
	"github.com/dtroode/authgate-server/internal/model"
	"github.com/dtroode/authgate-server/internal/repository/memory"
	"github.com/dtroode/authgate-server/internal/testutil"
)

type authDeps struct {
	users    *mocks.UserStore
	profiles *mocks.ProfileStore
	sessions *mocks.SessionRegistry
	tokens   *mocks.TokenCodec
	notifier *mocks.Notifier
}

func newTestAuth(t *testing.T) (*Auth, authDeps) {
	t.Helper()
	deps := authDeps{
		users:    mocks.NewUserStore(t),
		profiles: mocks.NewProfileStore(t),
		sessions: mocks.NewSessionRegistry(t),
		tokens:   mocks.NewTokenCodec(t),
		notifier: mocks.NewNotifier(t),
	}
	log := testutil.MakeNoopLogger()
	codes := NewPasscodes(memory.NewOTPStore(), time.Minute, 6, time.Second, log)
	a := NewAuth(deps.users, deps.profiles, deps.sessions, deps.tokens, codes, deps.notifier, time.Second, log)
	a.bcryptCost = bcrypt.MinCost
	return a, deps
}

func TestAuth_Register_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  model.Registration
		want string
	}{
		{name: "missing_email", req: model.Registration{Password: "password123"}, want: "email is required"},
		{name: "bad_email", req: model.Registration{Email: "nope", Password: "password123"}, want: "email must be a valid email address"},
		{name: "short_password", req: model.Registration{Email: "a@example.com", Password: "short"}, want: "password must be at least 8 characters"},
		{name: "missing_password", req: model.Registration{Email: "a@example.com"}, want: "password is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, _ := newTestAuth(t)

			_, err := a.Register(context.Background(), tt.req)
			require.ErrorIs(t, err, model.ErrValidation)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestAuth_Register_EmailTaken(t *testing.T) {
	t.Parallel()

	t.Run("found_by_lookup", func(t *testing.T) {
		t.Parallel()
		a, deps := newTestAuth(t)
		deps.users.On("GetByEmail", mock.Anything, "a@example.com").Return(model.User{ID: uuid.New()}, nil)

		_, err := a.Register(context.Background(), model.Registration{Email: "A@example.com ", Password: "password123"})
		require.ErrorIs(t, err, model.ErrEmailTaken)
		assert.EqualError(t, err, MsgEmailTaken)
	})

	t.Run("lost_insert_race", func(t *testing.T) {
		t.Parallel()
		a, deps := newTestAuth(t)
		deps.users.On("GetByEmail", mock.Anything, "a@example.com").Return(model.User{}, model.ErrNotFound)
		deps.users.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrEmailTaken)

		_, err := a.Register(context.Background(), model.Registration{Email: "a@example.com", Password: "password123"})
		require.ErrorIs(t, err, model.ErrEmailTaken)
	})
}

func TestAuth_Register_HashesPassword(t *testing.T) {
	t.Parallel()
	a, deps := newTestAuth(t)

	deps.users.On("GetByEmail", mock.Anything, "a@example.com").Return(model.User{}, model.ErrNotFound)
	deps.users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.IsActive && !u.IsVerified &&
			bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("password123")) == nil
	})).Return(func(_ context.Context, u model.User) (model.User, error) { return u, nil })
	deps.profiles.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := a.Register(context.Background(), model.Registration{Email: "a@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestAuth_RequestLoginOTP_InvalidCredentials(t *testing.T) {
	t.Parallel()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		user     model.User
		lookup   error
	}{
		{name: "unknown_email", password: "password123", lookup: model.ErrNotFound},
		{name: "wrong_password", password: "password999", user: model.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: hash, IsActive: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, deps := newTestAuth(t)
			deps.users.On("GetByEmail", mock.Anything, "a@example.com").Return(tt.user, tt.lookup)

			err := a.RequestLoginOTP(context.Background(), model.LoginRequest{Email: "a@example.com", Password: tt.password})
			require.ErrorIs(t, err, model.ErrInvalidCredentials)
			assert.EqualError(t, err, MsgInvalidCredentials)
			deps.notifier.AssertNotCalled(t, "Notify", mock.Anything)
		})
	}
}

func TestAuth_RequestLoginOTP_StoreError(t *testing.T) {
	t.Parallel()
	a, deps := newTestAuth(t)
	boom := errors.New("db down")
	deps.users.On("GetByEmail", mock.Anything, "a@example.com").Return(model.User{}, boom)

	err := a.RequestLoginOTP(context.Background(), model.LoginRequest{Email: "a@example.com", Password: "password123"})
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_ValidateLoginOTP_Mismatch(t *testing.T) {
	t.Parallel()
	a, _ := newTestAuth(t)

	_, err := a.ValidateLoginOTP(context.Background(), model.OTPAttempt{Email: "a@example.com", OTP: "123456"}, model.Device{})
	require.ErrorIs(t, err, model.ErrOTPMismatch)
	assert.EqualError(t, err, MsgOTPMismatch)
}

func TestAuth_ValidateLoginOTP_BadInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		otp  string
	}{
		{name: "letters", otp: "12ab56"},
		{name: "negative", otp: "-12"},
		{name: "decimal", otp: "1.5"},
		{name: "signed", otp: "+123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, _ := newTestAuth(t)

			_, err := a.ValidateLoginOTP(context.Background(), model.OTPAttempt{Email: "a@example.com", OTP: tt.otp}, model.Device{})
			require.ErrorIs(t, err, model.ErrValidation)
			assert.EqualError(t, err, "otp must contain digits only")
		})
	}
}

func TestAuth_ValidateLoginOTP_SessionStoreError(t *testing.T) {
	t.Parallel()
	a, deps := newTestAuth(t)
	ctx := context.Background()
	userID := uuid.New()
	boom := errors.New("db down")

	code, err := a.passcodes.Issue(ctx, model.OTPPurposeLogin, "a@example.com")
	require.NoError(t, err)

	deps.users.On("GetByEmail", mock.Anything, "a@example.com").Return(model.User{ID: userID, Email: "a@example.com", IsActive: true}, nil)
	deps.tokens.On("Issue", userID).Return("tok", nil)
	deps.sessions.On("Create", mock.Anything, mock.Anything).Return(boom)

	_, err = a.ValidateLoginOTP(ctx, model.OTPAttempt{Email: "a@example.com", OTP: code}, model.Device{})
	require.ErrorIs(t, err, boom)
}

func TestAuth_TransientFailureKeepsCode(t *testing.T) {
	t.Parallel()
	const email = "a@example.com"
	boom := errors.New("db down")

	tests := []struct {
		name    string
		purpose model.OTPPurpose
		setup   func(d authDeps, userID uuid.UUID)
		submit  func(a *Auth, attempt model.OTPAttempt) error
	}{
		{
			name:    "verify",
			purpose: model.OTPPurposeVerify,
			setup: func(d authDeps, userID uuid.UUID) {
				d.users.On("GetByEmail", mock.Anything, email).Return(model.User{ID: userID, Email: email, IsActive: true}, nil)
				d.users.On("SetVerified", mock.Anything, userID).Return(boom).Once()
				d.users.On("SetVerified", mock.Anything, userID).Return(nil).Once()
			},
			submit: func(a *Auth, attempt model.OTPAttempt) error {
				_, err := a.VerifyAccount(context.Background(), attempt)
				return err
			},
		},
		{
			name:    "login",
			purpose: model.OTPPurposeLogin,
			setup: func(d authDeps, userID uuid.UUID) {
				d.users.On("GetByEmail", mock.Anything, email).Return(model.User{ID: userID, Email: email, IsActive: true}, nil)
				d.tokens.On("Issue", userID).Return("tok", nil)
				d.sessions.On("Create", mock.Anything, mock.Anything).Return(boom).Once()
				d.sessions.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
			},
			submit: func(a *Auth, attempt model.OTPAttempt) error {
				_, err := a.ValidateLoginOTP(context.Background(), attempt, model.Device{})
				return err
			},
		},
		{
			name:    "login_user_lookup",
			purpose: model.OTPPurposeLogin,
			setup: func(d authDeps, userID uuid.UUID) {
				d.users.On("GetByEmail", mock.Anything, email).Return(model.User{}, boom).Once()
				d.users.On("GetByEmail", mock.Anything, email).Return(model.User{ID: userID, Email: email, IsActive: true}, nil).Once()
				d.tokens.On("Issue", userID).Return("tok", nil)
				d.sessions.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			submit: func(a *Auth, attempt model.OTPAttempt) error {
				_, err := a.ValidateLoginOTP(context.Background(), attempt, model.Device{})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, deps := newTestAuth(t)
			tt.setup(deps, uuid.New())

			code, err := a.passcodes.Issue(context.Background(), tt.purpose, email)
			require.NoError(t, err)
			attempt := model.OTPAttempt{Email: email, OTP: code}

			require.ErrorIs(t, tt.submit(a, attempt), boom)
			require.NoError(t, tt.submit(a, attempt))

			err = tt.submit(a, attempt)
			require.ErrorIs(t, err, model.ErrOTPMismatch)
		})
	}
}

func TestAuth_ValidateLoginOTP_RejectionConsumesCode(t *testing.T) {
	t.Parallel()
	a, deps := newTestAuth(t)
	ctx := context.Background()
	userID := uuid.New()

	code, err := a.passcodes.Issue(ctx, model.OTPPurposeLogin, "a@example.com")
	require.NoError(t, err)

	deps.users.On("GetByEmail", mock.Anything, "a@example.com").Return(model.User{ID: userID, Email: "a@example.com", IsActive: true}, nil)
	deps.tokens.On("Issue", userID).Return("tok", nil)
	deps.sessions.On("Create", mock.Anything, mock.Anything).Return(model.ErrSessionExists)

	attempt := model.OTPAttempt{Email: "a@example.com", OTP: code}
	_, err = a.ValidateLoginOTP(ctx, attempt, model.Device{})
	require.ErrorIs(t, err, model.ErrSessionConflict)

	_, err = a.ValidateLoginOTP(ctx, attempt, model.Device{})
	assert.ErrorIs(t, err, model.ErrOTPMismatch)
}

func TestAuth_Logout(t *testing.T) {
	t.Parallel()
	callerID := uuid.New()
	caller := model.Identity{User: model.User{ID: callerID}, Token: "tok"}

	tests := []struct {
		name    string
		target  uuid.UUID
		wantErr error
	}{
		{name: "self_implicit", target: uuid.Nil},
		{name: "self_explicit", target: callerID},
		{name: "someone_else", target: uuid.New(), wantErr: model.ErrOwnershipViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, deps := newTestAuth(t)
			if tt.wantErr == nil {
				deps.sessions.On("Destroy", mock.Anything, callerID).Return(nil).Once()
			}

			msg, err := a.Logout(context.Background(), caller, tt.target)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				deps.sessions.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, MsgLoggedOut, msg)
		})
	}
}
