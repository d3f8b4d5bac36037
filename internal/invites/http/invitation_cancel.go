package http

import (
	"errors"
	"net/http"

	"github.com/comodin-ia/invites/internal/invites/service"
	"github.com/comodin-ia/invites/pkg/httpx"
	"github.com/comodin-ia/invites/pkg/invitesdk"
	"github.com/comodin-ia/invites/pkg/slogx"
)

type InvitationCancelHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Cancel Invitation
//	@Description	Cancels a pending invitation. Only the user who issued the invitation may cancel it; invitations that were already accepted, cancelled or expired are rejected.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path	string	true	"Invitation id"
//	@Success		204	"Invitation cancelled"
//	@Failure		401	{object}	invitesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	invitesdk.ErrorResponse	"Caller is not the original inviter"
//	@Failure		404	{object}	invitesdk.ErrorResponse	"Unknown invitation"
//	@Failure		409	{object}	invitesdk.ErrorResponse	"Invitation already processed"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id} [delete].
func (h *InvitationCancelHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	err := h.InvitationService.CancelInvitation(ctx, r.PathValue("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeNotFound,
				ErrorDescription: "Invitation not found",
			})
		case errors.Is(err, service.ErrNotInviter):
			httpx.WriteJSON(w, http.StatusForbidden, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeForbidden,
				ErrorDescription: "Only the original inviter can cancel an invitation",
			})
		case errors.Is(err, service.ErrAlreadyProcessed):
			httpx.WriteJSON(w, http.StatusConflict, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeAlreadyProcessed,
				ErrorDescription: "The invitation has already been processed",
			})
		default:
			log.Error("failed to cancel invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeServerError,
				ErrorDescription: "Failed to cancel invitation",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
