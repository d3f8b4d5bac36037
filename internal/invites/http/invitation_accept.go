package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/comodin-ia/invites/internal/invites/service"
	"github.com/comodin-ia/invites/pkg/httpx"
	"github.com/comodin-ia/invites/pkg/invitesdk"
	"github.com/comodin-ia/invites/pkg/slogx"
)

type InvitationAcceptHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Accept Invitation
//	@Description	Redeems an invitation token, creating the user account and its credential atomically. Each invitation can be redeemed exactly once; concurrent attempts on the same token leave at most one account.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invitesdk.AcceptInvitationRequest	true	"Acceptance request"
//	@Success		201		{object}	invitesdk.AcceptInvitationResponse	"Created user and accepted invitation"
//	@Failure		400		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	invitesdk.ErrorResponse				"Unknown token"
//	@Failure		409		{object}	invitesdk.ErrorResponse				"Already processed or email already registered"
//	@Failure		410		{object}	invitesdk.ErrorResponse				"Invitation expired"
//	@Router			/v1/invitations/accept [post].
func (h *InvitationAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req invitesdk.AcceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, invitesdk.ErrorResponse{
			Error:            invitesdk.CodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	user, inv, err := h.InvitationService.AcceptInvitation(ctx, service.AcceptInvitationParams{
		Token:    req.Token,
		Name:     req.Name,
		FullName: req.FullName,
		Phone:    req.Phone,
		Country:  req.Country,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeInvalidRequest,
				ErrorDescription: "Invalid acceptance parameters: a display name and a password of at least 6 characters are required",
			})
		case errors.Is(err, service.ErrEmailAlreadyRegistered):
			httpx.WriteJSON(w, http.StatusConflict, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeEmailAlreadyRegistered,
				ErrorDescription: "An account with this email already exists",
			})
		default:
			writeInvitationStateError(w, log, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, invitesdk.AcceptInvitationResponse{
		User:       toSDKUser(user),
		Invitation: toSDKInvitation(inv),
	})
}
