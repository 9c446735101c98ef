package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/authgate-server/internal/api/reply"
	"github.com/dtroode/authgate-server/internal/apierror"
	"github.com/dtroode/authgate-server/internal/logger"
	"github.com/dtroode/authgate-server/internal/model"
)

// Profile handles HTTP endpoints for the caller's profile.
type Profile struct {
	profileService model.ProfileService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewProfile(profileService model.ProfileService, contextManager model.ContextManager, logger *logger.Logger) *Profile {
	return &Profile{
		profileService: profileService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Get handles GET /profile/.
func (h *Profile) Get(c *gin.Context) {
	caller, ok := h.contextManager.GetIdentityFromContext(c.Request.Context())
	if !ok {
		Fail(c, apierror.Unauthenticated())
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), caller)
	if err != nil {
		h.logger.Error("Profile handler: failed to get profile",
			"user_id", caller.User.ID.String(),
			"error", err.Error())
		Fail(c, err)
		return
	}

	Success(c, http.StatusOK, reply.ProfileRetrieved, gin.H{"profile": profile})
}

// Update handles PATCH /profile/.
func (h *Profile) Update(c *gin.Context) {
	caller, ok := h.contextManager.GetIdentityFromContext(c.Request.Context())
	if !ok {
		Fail(c, apierror.Unauthenticated())
		return
	}

	var patch model.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		Fail(c, model.NewRejection(model.ErrValidation, msgInvalidBody))
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), caller, patch)
	if err != nil {
		h.logger.Error("Profile handler: failed to update profile",
			"user_id", caller.User.ID.String(),
			"error", err.Error())
		Fail(c, err)
		return
	}

	Success(c, http.StatusOK, reply.ProfileUpdated, gin.H{"profile": profile})
}
