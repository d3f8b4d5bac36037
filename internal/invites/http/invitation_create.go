package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/comodin-ia/invites/internal/invites/domain"
	"github.com/comodin-ia/invites/internal/invites/service"
	"github.com/comodin-ia/invites/pkg/httpx"
	"github.com/comodin-ia/invites/pkg/invitesdk"
	"github.com/comodin-ia/invites/pkg/slogx"
)

type InvitationCreateHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Create Invitation
//	@Description	Issues a single-use invitation for joining the caller's organization with a predetermined role. An email carrying the redemption link is sent to the recipient; if delivery fails, the invitation is rolled back.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invitesdk.CreateInvitationRequest	true	"Invitation request"
//	@Success		201		{object}	invitesdk.CreateInvitationResponse	"Created invitation"
//	@Failure		400		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Failure		409		{object}	invitesdk.ErrorResponse				"Recipient is already a member or already invited"
//	@Failure		502		{object}	invitesdk.ErrorResponse				"Email delivery failed"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req invitesdk.CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, invitesdk.ErrorResponse{
			Error:            invitesdk.CodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, invitesdk.ErrorResponse{
			Error:            invitesdk.CodeUnauthorized,
			ErrorDescription: "Authentication required",
		})
		return
	}

	inv, previewURL, err := h.InvitationService.CreateInvitation(ctx, service.CreateInvitationParams{
		Email:     req.Email,
		Role:      domain.Role(req.Role),
		InviterID: userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Message:   req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeInvalidRequest,
				ErrorDescription: "Invalid invitation parameters",
			})
		case errors.Is(err, service.ErrAlreadyMember):
			httpx.WriteJSON(w, http.StatusConflict, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeAlreadyMember,
				ErrorDescription: "A user with this email already belongs to the organization",
			})
		case errors.Is(err, service.ErrDuplicatePending):
			httpx.WriteJSON(w, http.StatusConflict, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeDuplicatePending,
				ErrorDescription: "A pending invitation for this email already exists",
			})
		case errors.Is(err, service.ErrDeliveryFailed):
			httpx.WriteJSON(w, http.StatusBadGateway, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeDeliveryFailed,
				ErrorDescription: "The invitation email could not be delivered",
			})
		default:
			log.Error("failed to create invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeServerError,
				ErrorDescription: "Failed to create invitation",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, invitesdk.CreateInvitationResponse{
		Invitation:      toSDKInvitation(inv),
		EmailPreviewURL: previewURL,
	})
}
