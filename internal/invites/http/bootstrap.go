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

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap the service
//	@Description	Provisions the first organization together with its owner (PROPIETARIO) account on an empty deployment. Available only when a bootstrap token is configured, and only once.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string							true	"Bootstrap token for authorization"
//	@Param			request				body		invitesdk.BootstrapRequest		true	"Bootstrap configuration"
//	@Success		201					{object}	invitesdk.BootstrapResponse		"Created organization and owner ids"
//	@Failure		400					{object}	invitesdk.ErrorResponse			"Invalid request body"
//	@Failure		401					{object}	invitesdk.ErrorResponse			"Missing or invalid bootstrap token"
//	@Failure		404					{object}	invitesdk.ErrorResponse			"Bootstrap not enabled"
//	@Failure		409					{object}	invitesdk.ErrorResponse			"System already bootstrapped"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Bootstrap is disabled entirely unless a token was configured.
	if h.BootstrapService.Token == "" {
		httpx.WriteJSON(w, http.StatusNotFound, invitesdk.ErrorResponse{
			Error:            invitesdk.CodeNotFound,
			ErrorDescription: "Bootstrap endpoint is not enabled",
		})
		return
	}

	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, invitesdk.ErrorResponse{
			Error:            invitesdk.CodeUnauthorized,
			ErrorDescription: "Bootstrap token is required in X-Bootstrap-Token header",
		})
		return
	}

	var req invitesdk.BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, invitesdk.ErrorResponse{
			Error:            invitesdk.CodeInvalidRequest,
			ErrorDescription: "Request body must be valid JSON",
		})
		return
	}

	orgID, ownerID, err := h.BootstrapService.Bootstrap(ctx, token, domain.BootstrapData{
		OrganizationName: req.OrganizationName,
		OrganizationSlug: req.OrganizationSlug,
		OwnerEmail:       req.OwnerEmail,
		OwnerName:        req.OwnerName,
		OwnerPassword:    req.OwnerPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapAlready):
			httpx.WriteJSON(w, http.StatusConflict, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeAlreadyBootstrapped,
				ErrorDescription: "The system has already been bootstrapped",
			})
		case errors.Is(err, service.ErrBootstrapUnauthorized):
			httpx.WriteJSON(w, http.StatusUnauthorized, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeUnauthorized,
				ErrorDescription: "Invalid bootstrap token",
			})
		case errors.Is(err, service.ErrBootstrapInvalid):
			httpx.WriteJSON(w, http.StatusBadRequest, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeInvalidRequest,
				ErrorDescription: "Organization name/slug, owner name, a valid owner email and a password of at least 6 characters are required",
			})
		default:
			log.Error("failed to bootstrap", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, invitesdk.ErrorResponse{
				Error:            invitesdk.CodeServerError,
				ErrorDescription: "Failed to bootstrap the system",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, invitesdk.BootstrapResponse{
		OrganizationID: orgID,
		OwnerUserID:    ownerID,
	})
}
