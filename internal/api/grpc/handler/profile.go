package handler

import (
	"context"

	authv1 "github.com/dtroode/authgate-server/api/authgate/v1"
	"github.com/dtroode/authgate-server/internal/api/reply"
	"github.com/dtroode/authgate-server/internal/apierror"
	"github.com/dtroode/authgate-server/internal/model"
)

// GetProfile returns the caller's profile.
func (h *Auth) GetProfile(ctx context.Context, _ *authv1.GetProfileRequest) (*authv1.ProfileReply, error) {
	caller, ok := h.contextManager.GetIdentityFromContext(ctx)
	if !ok {
		return nil, apierror.GRPC(apierror.Unauthenticated())
	}

	profile, err := h.profileService.GetProfile(ctx, caller)
	if err != nil {
		h.logger.Error("Auth handler: failed to get profile",
			"user_id", caller.User.ID.String(),
			"error", err.Error())
		return nil, apierror.GRPC(err)
	}

	return &authv1.ProfileReply{Profile: toProto(profile), Message: reply.ProfileRetrieved}, nil
}

// UpdateProfile applies a partial update to the caller's profile.
func (h *Auth) UpdateProfile(ctx context.Context, req *authv1.UpdateProfileRequest) (*authv1.ProfileReply, error) {
	caller, ok := h.contextManager.GetIdentityFromContext(ctx)
	if !ok {
		return nil, apierror.GRPC(apierror.Unauthenticated())
	}

	patch := model.ProfilePatch{
		ParentalLock: req.ParentalLock,
		Package:      req.Package,
	}
	if req.RecordingTime != nil {
		minutes := int(req.GetRecordingTime())
		patch.RecordingTime = &minutes
	}
	profile, err := h.profileService.UpdateProfile(ctx, caller, patch)
	if err != nil {
		h.logger.Error("Auth handler: failed to update profile",
			"user_id", caller.User.ID.String(),
			"error", err.Error())
		return nil, apierror.GRPC(err)
	}

	return &authv1.ProfileReply{Profile: toProto(profile), Message: reply.ProfileUpdated}, nil
}

func toProto(p model.UserProfile) *authv1.Profile {
	return &authv1.Profile{
		UserId:        p.UserID,
		Email:         p.Email,
		IsVerified:    p.IsVerified,
		RecordingTime: int32(p.RecordingTime),
		ParentalLock:  p.ParentalLock,
		Package:       p.Package,
	}
}
