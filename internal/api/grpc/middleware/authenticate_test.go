package middleware

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/dtroode/authgate-server/internal/mocks"
	"github.com/dtroode/authgate-server/internal/model"
	"github.com/dtroode/authgate-server/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	identity := model.Identity{User: model.User{ID: uuid.New()}, Token: "token"}

	tests := []struct {
		name         string
		mdAuthHeader string
		gateIdentity model.Identity
		gateOK       bool
		gateErr      error
		wantGRPCCode codes.Code
		wantMsg      string
	}{
		{
			name:         "missing authorization header",
			wantGRPCCode: codes.Unauthenticated,
			wantMsg:      "authentication credentials were not provided.",
		},
		{
			name:         "expired token",
			mdAuthHeader: "Bearer stale",
			gateErr:      model.NewRejection(model.ErrExpiredToken, "token expired"),
			wantGRPCCode: codes.Unauthenticated,
			wantMsg:      "token expired",
		},
		{
			name:         "store timeout",
			mdAuthHeader: "Bearer token",
			gateErr:      model.ErrUnavailable,
			wantGRPCCode: codes.Unavailable,
		},
		{
			name:         "unexpected failure",
			mdAuthHeader: "Bearer token",
			gateErr:      errors.New("boom"),
			wantGRPCCode: codes.Internal,
			wantMsg:      "internal server error",
		},
		{
			name:         "valid token",
			mdAuthHeader: "Bearer token",
			gateIdentity: identity,
			gateOK:       true,
			wantGRPCCode: codes.OK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := mocks.NewContextManager(t)
			gate := mocks.NewAuthenticator(t)
			gate.On("Authenticate", mock.Anything, tt.mdAuthHeader, mock.AnythingOfType("model.Device")).
				Return(tt.gateIdentity, tt.gateOK, tt.gateErr)

			ctx := context.Background()
			if tt.mdAuthHeader != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.mdAuthHeader))
			}

			type ctxKey struct{}
			if tt.gateOK {
				cm.On("SetIdentityToContext", mock.Anything, identity).
					Return(context.WithValue(ctx, ctxKey{}, identity))
			}

			m := NewAuthenticate(gate, cm, testutil.MakeNoopLogger())
			newCtx, err := m.AuthFunc(ctx)

			if tt.wantGRPCCode != codes.OK {
				st, ok := status.FromError(err)
				assert.True(t, ok)
				assert.Equal(t, tt.wantGRPCCode, st.Code())
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, st.Message())
				}
				assert.Nil(t, newCtx)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, identity, newCtx.Value(ctxKey{}))
		})
	}
}

func TestDeviceFromContext(t *testing.T) {
	t.Parallel()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("user-agent", "grpc-go/1.75"))
	ctx = peer.NewContext(ctx, &peer.Peer{Addr: &net.TCPAddr{IP: net.ParseIP("10.0.0.7"), Port: 51234}})

	device := DeviceFromContext(ctx)
	assert.Equal(t, model.Device{UserAgent: "grpc-go/1.75", IP: "10.0.0.7"}, device)

	assert.Equal(t, model.Device{}, DeviceFromContext(context.Background()))
}
