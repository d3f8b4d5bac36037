package http

import (
	"errors"
	"net/http"

	"github.com/comodin-ia/invites/internal/invites/service"
	"github.com/comodin-ia/invites/pkg/httpx"
	"github.com/comodin-ia/invites/pkg/invitesdk"
	"github.com/comodin-ia/invites/pkg/slogx"
)

type InvitationListHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		List Invitations
//	@Description	Returns the caller's organization invitations, newest first. Supports filtering by status via the `status` query parameter (PENDING, ACCEPTED, CANCELLED, EXPIRED).
//	@Tags			Invitations
//	@Produce		json
//	@Param			status	query		string								false	"Status filter"
//	@Success		200		{object}	invitesdk.ListInvitationsResponse	"Invitations"
//	@Failure		400		{object}	invitesdk.ErrorResponse				"Unknown status filter"
//	@Failure		401		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [get].
func (h *InvitationListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	orgID := httpx.OrgIDFromCtx(ctx)
	if orgID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, invitesdk.ErrorResponse{
			Error:            invitesdk.CodeUnauthorized,
			ErrorDescription: "Authentication required",
		})
		return
	}

	invs, err := h.InvitationService.ListOrganizationInvitations(ctx, orgID, r.URL.Query().Get("status"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			httpx.WriteJSON(w, http.StatusBadRequest, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeInvalidRequest,
				ErrorDescription: "Unknown status filter",
			})
			return
		}
		log.Error("failed to list invitations", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, invitesdk.ErrorResponse{
			Error:            invitesdk.CodeServerError,
			ErrorDescription: "Failed to list invitations",
		})
		return
	}

	out := invitesdk.ListInvitationsResponse{
		Invitations: make([]invitesdk.Invitation, 0, len(invs)),
	}
	for _, inv := range invs {
		out.Invitations = append(out.Invitations, toSDKInvitation(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
