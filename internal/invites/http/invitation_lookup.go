package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/comodin-ia/invites/internal/invites/service"
	"github.com/comodin-ia/invites/pkg/httpx"
	"github.com/comodin-ia/invites/pkg/invitesdk"
	"github.com/comodin-ia/invites/pkg/slogx"
)

type InvitationLookupHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Lookup Invitation
//	@Description	Validates an invitation token and returns the details shown on the invitation landing page. Read-only and safe to call repeatedly (page reloads).
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string							true	"Invitation token (64 hex characters)"
//	@Success		200		{object}	invitesdk.InvitationDetails		"Invitation details"
//	@Failure		404		{object}	invitesdk.ErrorResponse			"Unknown token"
//	@Failure		409		{object}	invitesdk.ErrorResponse			"Already accepted or cancelled"
//	@Failure		410		{object}	invitesdk.ErrorResponse			"Invitation expired"
//	@Router			/v1/invitations/{token} [get].
func (h *InvitationLookupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	details, err := h.InvitationService.GetInvitationByToken(ctx, r.PathValue("token"))
	if err != nil {
		writeInvitationStateError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKInvitationDetails(details))
}

// writeInvitationStateError maps the shared lookup/redemption error states to
// their HTTP responses.
func writeInvitationStateError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvitationNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, invitesdk.ErrorResponse{
			Error:            invitesdk.CodeNotFound,
			ErrorDescription: "Invitation not found",
		})
	case errors.Is(err, service.ErrAlreadyProcessed):
		httpx.WriteJSON(w, http.StatusConflict, invitesdk.ErrorResponse{
			Error:            invitesdk.CodeAlreadyProcessed,
			ErrorDescription: "The invitation has already been accepted or cancelled",
		})
	case errors.Is(err, service.ErrInvitationExpired):
		httpx.WriteJSON(w, http.StatusGone, invitesdk.ErrorResponse{
			Error:            invitesdk.CodeInvitationExpired,
			ErrorDescription: "The invitation has expired",
		})
	default:
		log.Error("failed to resolve invitation", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, invitesdk.ErrorResponse{
			Error:            invitesdk.CodeServerError,
			ErrorDescription: "Failed to resolve invitation",
		})
	}
}
