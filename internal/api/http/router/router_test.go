package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/authgate-server/internal/api/authctx"
	"github.com/dtroode/authgate-server/internal/mocks"
	"github.com/dtroode/authgate-server/internal/model"
	"github.com/dtroode/authgate-server/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	engine := New(nil, nil, nil, authctx.NewManager(), testutil.MakeNoopLogger()).Register()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_PublicRoutesSkipGate(t *testing.T) {
	t.Parallel()

	auth := mocks.NewAuthService(t)
	gate := mocks.NewAuthenticator(t)
	auth.On("RequestLoginOTP", mock.Anything, mock.Anything).Return(nil)

	engine := New(auth, mocks.NewProfileService(t), gate, authctx.NewManager(), testutil.MakeNoopLogger()).Register()

	req := httptest.NewRequest(http.MethodPost, BasePath+"/login/", strings.NewReader(`{"email":"a@b.co","password":"password1"}`))
	req.Header.Set("Authorization", "Bearer stale")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	gate.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_ProtectedRoutes(t *testing.T) {
	t.Parallel()

	caller := model.Identity{User: model.User{ID: uuid.New(), Email: "a@b.co"}, Token: "tok"}

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		setup  func(auth *mocks.AuthService, profiles *mocks.ProfileService)
	}{
		{
			name:   "logout",
			method: http.MethodPost,
			path:   "/logout/",
			setup: func(auth *mocks.AuthService, _ *mocks.ProfileService) {
				auth.On("Logout", mock.Anything, caller, uuid.Nil).Return("You have successfully logged out", nil)
			},
		},
		{
			name:   "get profile",
			method: http.MethodGet,
			path:   "/profile/",
			setup: func(_ *mocks.AuthService, profiles *mocks.ProfileService) {
				profiles.On("GetProfile", mock.Anything, caller).Return(model.UserProfile{}, nil)
			},
		},
		{
			name:   "patch profile",
			method: http.MethodPatch,
			path:   "/profile/",
			body:   `{"recording_time":60}`,
			setup: func(_ *mocks.AuthService, profiles *mocks.ProfileService) {
				profiles.On("UpdateProfile", mock.Anything, caller, mock.Anything).Return(model.UserProfile{RecordingTime: 60}, nil)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			t.Run("with token", func(t *testing.T) {
				auth, profiles, gate := mocks.NewAuthService(t), mocks.NewProfileService(t), mocks.NewAuthenticator(t)
				gate.On("Authenticate", mock.Anything, "Bearer tok", mock.Anything).Return(caller, true, nil)
				tt.setup(auth, profiles)
				engine := New(auth, profiles, gate, authctx.NewManager(), testutil.MakeNoopLogger()).Register()

				req := httptest.NewRequest(tt.method, BasePath+tt.path, strings.NewReader(tt.body))
				req.Header.Set("Authorization", "Bearer tok")
				w := httptest.NewRecorder()
				engine.ServeHTTP(w, req)
				assert.Equal(t, http.StatusOK, w.Code)
			})

			t.Run("without token", func(t *testing.T) {
				gate := mocks.NewAuthenticator(t)
				gate.On("Authenticate", mock.Anything, "", mock.Anything).Return(model.Identity{}, false, nil)
				engine := New(mocks.NewAuthService(t), mocks.NewProfileService(t), gate, authctx.NewManager(), testutil.MakeNoopLogger()).Register()

				w := httptest.NewRecorder()
				engine.ServeHTTP(w, httptest.NewRequest(tt.method, BasePath+tt.path, strings.NewReader(tt.body)))
				assert.Equal(t, http.StatusUnauthorized, w.Code)
			})
		})
	}
}
