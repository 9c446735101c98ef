package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/authgate-server/internal/api/reply"
	"github.com/dtroode/authgate-server/internal/apierror"
	"github.com/dtroode/authgate-server/internal/logger"
	"github.com/dtroode/authgate-server/internal/model"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type otpRequest struct {
	Email string  `json:"email"`
	OTP   OTPCode `json:"otp"`
}

type logoutRequest struct {
	UserID string `json:"user_id"`
}

type userResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
}

type tokenResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// Auth handles HTTP endpoints for registration, verification, login and
// logout.
type Auth struct {
	authService    model.AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService model.AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register handles POST /subscription/.
func (h *Auth) Register(c *gin.Context) {
	var req credentialsRequest
	if !h.bind(c, &req) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), model.Registration{Email: req.Email, Password: req.Password})
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		Fail(c, err)
		return
	}

	Success(c, http.StatusCreated, reply.AccountCreated, gin.H{"user": toUser(user)})
}

// RegisterWithOTP handles POST /register/.
func (h *Auth) RegisterWithOTP(c *gin.Context) {
	var req credentialsRequest
	if !h.bind(c, &req) {
		return
	}

	user, err := h.authService.RegisterWithOTP(c.Request.Context(), model.Registration{Email: req.Email, Password: req.Password})
	if err != nil {
		h.logger.Error("Auth handler: registration with otp failed",
			"email", req.Email,
			"error", err.Error())
		Fail(c, err)
		return
	}

	Success(c, http.StatusCreated, reply.AccountCreatedVerify, gin.H{"user": toUser(user)})
}

// RequestLoginOTP handles POST /login/.
func (h *Auth) RequestLoginOTP(c *gin.Context) {
	var req credentialsRequest
	if !h.bind(c, &req) {
		return
	}

	err := h.authService.RequestLoginOTP(c.Request.Context(), model.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		h.logger.Error("Auth handler: login otp request failed",
			"email", req.Email,
			"error", err.Error())
		Fail(c, err)
		return
	}

	Success(c, http.StatusOK, reply.LoginOTPSent, nil)
}

// ValidateLoginOTP handles POST /login/otp/.
func (h *Auth) ValidateLoginOTP(c *gin.Context) {
	var req otpRequest
	if !h.bind(c, &req) {
		return
	}

	device := model.Device{UserAgent: c.Request.UserAgent(), IP: c.ClientIP()}
	session, err := h.authService.ValidateLoginOTP(c.Request.Context(),
		model.OTPAttempt{Email: req.Email, OTP: string(req.OTP)}, device)
	if err != nil {
		h.logger.Error("Auth handler: login otp validation failed",
			"email", req.Email,
			"error", err.Error())
		Fail(c, err)
		return
	}

	Success(c, http.StatusOK, reply.OTPMatched, gin.H{
		"user": tokenResponse{Email: session.User.Email, Token: session.Token},
	})
}

// VerifyAccount handles POST /verify/.
func (h *Auth) VerifyAccount(c *gin.Context) {
	var req otpRequest
	if !h.bind(c, &req) {
		return
	}

	user, err := h.authService.VerifyAccount(c.Request.Context(), model.OTPAttempt{Email: req.Email, OTP: string(req.OTP)})
	if err != nil {
		h.logger.Error("Auth handler: account verification failed",
			"email", req.Email,
			"error", err.Error())
		Fail(c, err)
		return
	}

	Success(c, http.StatusOK, reply.EmailVerified, gin.H{"user": toUser(user)})
}

// Logout handles POST /logout/. The body is optional; without user_id the
// caller's own session ends.
func (h *Auth) Logout(c *gin.Context) {
	caller, ok := h.contextManager.GetIdentityFromContext(c.Request.Context())
	if !ok {
		Fail(c, apierror.Unauthenticated())
		return
	}

	var req logoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		Fail(c, model.NewRejection(model.ErrValidation, msgInvalidBody))
		return
	}

	target := uuid.Nil
	if req.UserID != "" {
		id, err := uuid.Parse(req.UserID)
		if err != nil {
			Fail(c, model.NewRejection(model.ErrValidation, "user_id must be a valid UUID"))
			return
		}
		target = id
	}

	msg, err := h.authService.Logout(c.Request.Context(), caller, target)
	if err != nil {
		h.logger.Error("Auth handler: logout failed",
			"user_id", caller.User.ID.String(),
			"error", err.Error())
		Fail(c, err)
		return
	}

	Success(c, http.StatusOK, msg, nil)
}

func (h *Auth) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Debug("Auth handler: failed to decode request body",
			"path", c.FullPath(),
			"error", err.Error())
		Fail(c, model.NewRejection(model.ErrValidation, msgInvalidBody))
		return false
	}
	return true
}

func toUser(user model.User) userResponse {
	return userResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		IsVerified: user.IsVerified,
	}
}
