package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/authgate-server/internal/mocks"
	"github.com/dtroode/authgate-server/internal/model"
	"github.com/dtroode/authgate-server/internal/testutil"
)

type gateDeps struct {
	users    *mocks.UserStore
	sessions *mocks.SessionRegistry
	tokens   *mocks.TokenCodec
}

func newTestGate(t *testing.T) (*Gate, gateDeps) {
	t.Helper()
	deps := gateDeps{
		users:    mocks.NewUserStore(t),
		sessions: mocks.NewSessionRegistry(t),
		tokens:   mocks.NewTokenCodec(t),
	}
	g := NewGate(deps.users, deps.sessions, deps.tokens, time.Second, testutil.MakeNoopLogger())
	return g, deps
}

func TestGate_Anonymous(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{name: "empty", header: ""},
		{name: "whitespace", header: "   "},
		{name: "scheme_only", header: "Bearer"},
		{name: "three_parts", header: "Bearer abc def"},
		{name: "other_scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "token_only", header: "abc.def.ghi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, _ := newTestGate(t)

			id, ok, err := g.Authenticate(context.Background(), tt.header, model.Device{})
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, model.Identity{}, id)
		})
	}
}

func TestGate_Rejections(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	tests := []struct {
		name       string
		setup      func(d gateDeps)
		wantKind   error
		wantReason string
	}{
		{
			name: "expired_token",
			setup: func(d gateDeps) {
				d.tokens.On("Verify", "tok").Return(uuid.Nil, model.ErrExpiredToken)
			},
			wantKind:   model.ErrExpiredToken,
			wantReason: ReasonTokenExpired,
		},
		{
			name: "malformed_token",
			setup: func(d gateDeps) {
				d.tokens.On("Verify", "tok").Return(uuid.Nil, fmt.Errorf("%w: signature is invalid", model.ErrMalformedToken))
			},
			wantKind:   model.ErrMalformedToken,
			wantReason: "malformed token: signature is invalid",
		},
		{
			name: "unknown_user",
			setup: func(d gateDeps) {
				d.tokens.On("Verify", "tok").Return(userID, nil)
				d.users.On("GetByID", mock.Anything, userID).Return(model.User{}, model.ErrNotFound)
			},
			wantKind:   model.ErrUserNotFound,
			wantReason: ReasonUserNotFound,
		},
		{
			name: "deactivated_user",
			setup: func(d gateDeps) {
				d.tokens.On("Verify", "tok").Return(userID, nil)
				d.users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID, IsActive: false}, nil)
			},
			wantKind:   model.ErrUserDeactivated,
			wantReason: ReasonUserDeactivated,
		},
		{
			name: "session_on_another_device",
			setup: func(d gateDeps) {
				d.tokens.On("Verify", "tok").Return(userID, nil)
				d.users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID, IsActive: true}, nil)
				d.sessions.On("GetActive", mock.Anything, userID).Return(model.SessionRecord{UserID: userID, Token: "other"}, nil)
			},
			wantKind:   model.ErrSessionConflict,
			wantReason: ReasonSessionConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, deps := newTestGate(t)
			tt.setup(deps)

			_, ok, err := g.Authenticate(context.Background(), "Bearer tok", model.Device{})
			assert.False(t, ok)
			require.ErrorIs(t, err, tt.wantKind)

			var rej *model.Rejection
			require.ErrorAs(t, err, &rej)
			assert.Equal(t, tt.wantReason, rej.Reason)
		})
	}
}

func TestGate_FirstAuthenticationCreatesSession(t *testing.T) {
	t.Parallel()
	g, deps := newTestGate(t)
	userID := uuid.New()
	user := model.User{ID: userID, Email: "a@example.com", IsActive: true}
	device := model.Device{UserAgent: "curl/8", IP: "10.0.0.1"}

	deps.tokens.On("Verify", "tok").Return(userID, nil)
	deps.users.On("GetByID", mock.Anything, userID).Return(user, nil)
	deps.sessions.On("GetActive", mock.Anything, userID).Return(model.SessionRecord{}, model.ErrNotFound)
	deps.sessions.On("Create", mock.Anything, mock.MatchedBy(func(r model.SessionRecord) bool {
		return r.UserID == userID && r.Token == "tok" && r.Device == device && !r.CreatedAt.IsZero()
	})).Return(nil).Once()

	id, ok, err := g.Authenticate(context.Background(), "bearer tok", device)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, model.Identity{User: user, Token: "tok"}, id)
}

func TestGate_SameTokenIsAccepted(t *testing.T) {
	t.Parallel()
	g, deps := newTestGate(t)
	userID := uuid.New()

	deps.tokens.On("Verify", "tok").Return(userID, nil)
	deps.users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID, IsActive: true}, nil)
	deps.sessions.On("GetActive", mock.Anything, userID).Return(model.SessionRecord{UserID: userID, Token: "tok"}, nil)

	_, ok, err := g.Authenticate(context.Background(), "BEARER   tok", model.Device{UserAgent: "other device"})
	require.NoError(t, err)
	assert.True(t, ok)
	deps.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGate_LostCreateRace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		winner  string
		wantOK  bool
		wantErr error
	}{
		{name: "winner_has_same_token", winner: "tok", wantOK: true},
		{name: "winner_has_other_token", winner: "other", wantErr: model.ErrSessionConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, deps := newTestGate(t)
			userID := uuid.New()

			deps.tokens.On("Verify", "tok").Return(userID, nil)
			deps.users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID, IsActive: true}, nil)
			deps.sessions.On("GetActive", mock.Anything, userID).Return(model.SessionRecord{}, model.ErrNotFound).Once()
			deps.sessions.On("Create", mock.Anything, mock.Anything).Return(model.ErrSessionExists).Once()
			deps.sessions.On("GetActive", mock.Anything, userID).Return(model.SessionRecord{UserID: userID, Token: tt.winner}, nil).Once()

			_, ok, err := g.Authenticate(context.Background(), "Bearer tok", model.Device{})
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGate_InfrastructureErrorsAreNotRejections(t *testing.T) {
	t.Parallel()
	g, deps := newTestGate(t)
	userID := uuid.New()
	boom := errors.New("connection refused")

	deps.tokens.On("Verify", "tok").Return(userID, nil)
	deps.users.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID, IsActive: true}, nil)
	deps.sessions.On("GetActive", mock.Anything, userID).Return(model.SessionRecord{}, boom)

	_, ok, err := g.Authenticate(context.Background(), "Bearer tok", model.Device{})
	assert.False(t, ok)
	require.ErrorIs(t, err, boom)

	var rej *model.Rejection
	assert.False(t, errors.As(err, &rej))
}

func TestGate_StoreTimeoutIsUnavailable(t *testing.T) {
	t.Parallel()
	deps := gateDeps{
		users:    mocks.NewUserStore(t),
		sessions: mocks.NewSessionRegistry(t),
		tokens:   mocks.NewTokenCodec(t),
	}
	g := NewGate(deps.users, deps.sessions, deps.tokens, 20*time.Millisecond, testutil.MakeNoopLogger())
	userID := uuid.New()

	deps.tokens.On("Verify", "tok").Return(userID, nil)
	deps.users.On("GetByID", mock.Anything, userID).Return(func(ctx context.Context, _ uuid.UUID) (model.User, error) {
		<-ctx.Done()
		return model.User{}, ctx.Err()
	})

	_, ok, err := g.Authenticate(context.Background(), "Bearer tok", model.Device{})
	assert.False(t, ok)
	require.ErrorIs(t, err, model.ErrUnavailable)
}

func TestGate_ExpiredTokenIgnoresSessions(t *testing.T) {
	t.Parallel()
	g, deps := newTestGate(t)

	deps.tokens.On("Verify", "tok").Return(uuid.Nil, model.ErrExpiredToken)

	_, ok, err := g.Authenticate(context.Background(), "Bearer tok", model.Device{})
	assert.False(t, ok)
	require.ErrorIs(t, err, model.ErrExpiredToken)
	deps.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	deps.sessions.AssertNotCalled(t, "GetActive", mock.Anything, mock.Anything)
}

func TestParseBearer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{header: "Bearer abc", token: "abc", ok: true},
		{header: "bearer abc", token: "abc", ok: true},
		{header: "  Bearer\tabc  ", token: "abc", ok: true},
		{header: "Bearerabc"},
		{header: "Token abc"},
		{header: "Bearer a b"},
	}
	for _, tt := range tests {
		token, ok := parseBearer(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.token, token, tt.header)
	}
}
