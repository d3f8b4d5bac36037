package http

import (
	"errors"
	"net/http"

	"github.com/comodin-ia/invites/internal/invites/service"
	"github.com/comodin-ia/invites/pkg/httpx"
	"github.com/comodin-ia/invites/pkg/invitesdk"
	"github.com/comodin-ia/invites/pkg/slogx"
)

type UserInfoHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Get user information
//	@Description	Returns the authenticated user's profile and organization.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	invitesdk.UserInfoResponse	"User information"
//	@Failure		401	{object}	invitesdk.ErrorResponse		"Invalid or missing access token"
//	@Failure		500	{object}	invitesdk.ErrorResponse		"Internal server error"
//	@Router			/v1/userinfo [get].
func (h *UserInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, invitesdk.ErrorResponse{
			Error:            invitesdk.CodeUnauthorized,
			ErrorDescription: "Authentication required",
		})
		return
	}

	profile, err := h.UserService.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// Token subject no longer exists; treat as unauthenticated.
			httpx.WriteJSON(w, http.StatusUnauthorized, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeUnauthorized,
				ErrorDescription: "Unknown user",
			})
			return
		}
		log.Error("failed to load user profile", "user_id", userID, "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, invitesdk.ErrorResponse{
			Error:            invitesdk.CodeServerError,
			ErrorDescription: "Failed to load user profile",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invitesdk.UserInfoResponse{
		UserID:           profile.User.ID,
		Email:            profile.User.Email,
		Name:             profile.User.Name,
		FullName:         profile.User.FullName,
		Role:             string(profile.User.Role),
		OrganizationID:   profile.Organization.ID,
		OrganizationName: profile.Organization.Name,
		OrganizationSlug: profile.Organization.Slug,
	})
}
