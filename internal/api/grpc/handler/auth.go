package handler

import (
	"context"

	"github.com/google/uuid"

	authv1 "github.com/dtroode/authgate-server/api/authgate/v1"
	"github.com/dtroode/authgate-server/internal/api/grpc/middleware"
	"github.com/dtroode/authgate-server/internal/api/reply"
	"github.com/dtroode/authgate-server/internal/apierror"
	"github.com/dtroode/authgate-server/internal/logger"
	"github.com/dtroode/authgate-server/internal/model"
)

var _ authv1.AuthServer = (*Auth)(nil)

// Auth handles gRPC endpoints for authentication and profiles.
type Auth struct {
	authv1.UnimplementedAuthServer

	authService    model.AuthService
	profileService model.ProfileService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(
	authService model.AuthService,
	profileService model.ProfileService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		authService:    authService,
		profileService: profileService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register creates an account without email verification.
func (h *Auth) Register(ctx context.Context, req *authv1.RegisterRequest) (*authv1.UserReply, error) {
	h.logger.Debug("Auth handler: processing registration request",
		"email", req.Email)

	user, err := h.authService.Register(ctx, model.Registration{Email: req.Email, Password: req.Password})
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		return nil, apierror.GRPC(err)
	}

	return userReply(user, reply.AccountCreated), nil
}

// RegisterWithOTP creates an account and mails a verification passcode.
func (h *Auth) RegisterWithOTP(ctx context.Context, req *authv1.RegisterRequest) (*authv1.UserReply, error) {
	h.logger.Debug("Auth handler: processing registration with otp request",
		"email", req.Email)

	user, err := h.authService.RegisterWithOTP(ctx, model.Registration{Email: req.Email, Password: req.Password})
	if err != nil {
		h.logger.Error("Auth handler: registration with otp failed",
			"email", req.Email,
			"error", err.Error())
		return nil, apierror.GRPC(err)
	}

	return userReply(user, reply.AccountCreatedVerify), nil
}

// VerifyAccount marks the account verified when the passcode matches.
func (h *Auth) VerifyAccount(ctx context.Context, req *authv1.OTPRequest) (*authv1.UserReply, error) {
	user, err := h.authService.VerifyAccount(ctx, model.OTPAttempt{Email: req.Email, OTP: req.Otp})
	if err != nil {
		h.logger.Error("Auth handler: account verification failed",
			"email", req.Email,
			"error", err.Error())
		return nil, apierror.GRPC(err)
	}

	return userReply(user, reply.EmailVerified), nil
}

// RequestLoginOTP checks credentials and mails a login passcode.
func (h *Auth) RequestLoginOTP(ctx context.Context, req *authv1.RequestLoginOTPRequest) (*authv1.MessageReply, error) {
	h.logger.Debug("Auth handler: processing login otp request",
		"email", req.Email)

	err := h.authService.RequestLoginOTP(ctx, model.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		h.logger.Error("Auth handler: login otp request failed",
			"email", req.Email,
			"error", err.Error())
		return nil, apierror.GRPC(err)
	}

	return &authv1.MessageReply{Message: reply.LoginOTPSent}, nil
}

// ValidateLoginOTP exchanges a login passcode for a session token.
func (h *Auth) ValidateLoginOTP(ctx context.Context, req *authv1.OTPRequest) (*authv1.LoginReply, error) {
	session, err := h.authService.ValidateLoginOTP(ctx,
		model.OTPAttempt{Email: req.Email, OTP: req.Otp},
		middleware.DeviceFromContext(ctx))
	if err != nil {
		h.logger.Error("Auth handler: login otp validation failed",
			"email", req.Email,
			"error", err.Error())
		return nil, apierror.GRPC(err)
	}

	h.logger.Info("Auth handler: login completed",
		"user_id", session.User.ID.String())

	return &authv1.LoginReply{
		Email:   session.User.Email,
		Token:   session.Token,
		Message: reply.OTPMatched,
	}, nil
}

// Logout ends the session of the caller, or of the named user when it is the
// caller.
func (h *Auth) Logout(ctx context.Context, req *authv1.LogoutRequest) (*authv1.MessageReply, error) {
	caller, ok := h.contextManager.GetIdentityFromContext(ctx)
	if !ok {
		return nil, apierror.GRPC(apierror.Unauthenticated())
	}

	target := uuid.Nil
	if req.UserId != "" {
		id, err := uuid.Parse(req.UserId)
		if err != nil {
			return nil, apierror.GRPC(model.NewRejection(model.ErrValidation, "user_id must be a valid UUID"))
		}
		target = id
	}

	msg, err := h.authService.Logout(ctx, caller, target)
	if err != nil {
		h.logger.Error("Auth handler: logout failed",
			"user_id", caller.User.ID.String(),
			"error", err.Error())
		return nil, apierror.GRPC(err)
	}

	return &authv1.MessageReply{Message: msg}, nil
}

func userReply(user model.User, msg string) *authv1.UserReply {
	return &authv1.UserReply{
		Id:         user.ID.String(),
		Email:      user.Email,
		IsVerified: user.IsVerified,
		Message:    msg,
	}
}
