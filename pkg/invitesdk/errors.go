package invitesdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Stable error codes returned by the service.
const (
	CodeInvalidRequest         = "invalid_request"
	CodeUnauthorized           = "unauthorized"
	CodeForbidden              = "forbidden"
	CodeNotFound               = "not_found"
	CodeAlreadyMember          = "already_member"
	CodeDuplicatePending       = "duplicate_pending"
	CodeDeliveryFailed         = "delivery_failed"
	CodeAlreadyProcessed       = "already_processed"
	CodeInvitationExpired      = "invitation_expired"
	CodeEmailAlreadyRegistered = "email_already_registered"
	CodeAlreadyBootstrapped    = "already_bootstrapped"
	CodeRateLimited            = "rate_limit_exceeded"
	CodeServerError            = "server_error"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	// StatusCode is the HTTP status of the response
	StatusCode int

	// Code is the stable machine-readable error code
	Code string

	// Description is the human-readable message
	Description string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("invitesdk: %s: %s (HTTP %d)", e.Code, e.Description, e.StatusCode)
	}
	return fmt.Sprintf("invitesdk: %s (HTTP %d)", e.Code, e.StatusCode)
}

// IsCode reports whether err is an *APIError carrying the given code.
func IsCode(err error, code string) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == code
}

func parseErrorResponse(resp *http.Response, body []byte) error {
	var envelope ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == "" {
		// Bearer auth failures carry only a WWW-Authenticate header, so
		// derive a code from the status when there is no JSON envelope.
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        codeForStatus(resp.StatusCode),
			Description: http.StatusText(resp.StatusCode),
		}
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        envelope.Error,
		Description: envelope.ErrorDescription,
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusTooManyRequests:
		return CodeRateLimited
	default:
		return CodeServerError
	}
}
