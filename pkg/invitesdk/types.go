package invitesdk

import "time"

// ErrorResponse is the service's standard error envelope.
type ErrorResponse struct {
	// Error is a stable machine-readable code (e.g. "duplicate_pending")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// CreateInvitationRequest issues a new invitation. The inviter's identity and
// organization come from the bearer token, not the body.
type CreateInvitationRequest struct {
	// Email is the recipient address
	Email string `json:"email"`

	// Role the invitee will receive on acceptance: PROPIETARIO,
	// ADMINISTRADOR or AGENTE
	Role string `json:"role"`

	// Optional personalization shown to the invitee
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Invitation is the inviter-facing view of an invitation. The redemption
// token is deliberately absent: it travels only in the invitee's email.
type Invitation struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	OrganizationID string     `json:"organization_id"`
	InvitedBy      string     `json:"invited_by"`
	InvitedByName  string     `json:"invited_by_name"`
	FirstName      string     `json:"first_name,omitempty"`
	LastName       string     `json:"last_name,omitempty"`
	Message        string     `json:"message,omitempty"`
	Status         string     `json:"status"`
	ExpiresAt      time.Time  `json:"expires_at"`
	AcceptedAt     *time.Time `json:"accepted_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// CreateInvitationResponse is returned from POST /v1/invitations.
type CreateInvitationResponse struct {
	Invitation Invitation `json:"invitation"`

	// EmailPreviewURL is set only when the service runs a non-production
	// mailer; it points at the composed email instead of delivering it.
	EmailPreviewURL string `json:"email_preview_url,omitempty"`
}

// ListInvitationsResponse is returned from GET /v1/invitations.
type ListInvitationsResponse struct {
	Invitations []Invitation `json:"invitations"`
}

// InvitationDetails is the invitee-facing view returned from
// GET /v1/invitations/{token}: enough to render the landing page, nothing
// the invitee should not see.
type InvitationDetails struct {
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	OrganizationName string    `json:"organization_name"`
	OrganizationSlug string    `json:"organization_slug"`
	InvitedByName    string    `json:"invited_by_name"`
	FirstName        string    `json:"first_name,omitempty"`
	LastName         string    `json:"last_name,omitempty"`
	Message          string    `json:"message,omitempty"`
	ExpiresAt        time.Time `json:"expires_at"`
}

// AcceptInvitationRequest redeems an invitation. The account keeps the email
// the invitation was issued to; there is no email field.
type AcceptInvitationRequest struct {
	Token string `json:"token"`

	// Name is the display name; falls back to the invitation's first name
	Name string `json:"name,omitempty"`

	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Country  string `json:"country,omitempty"`

	// Password for the new account (minimum 6 characters)
	Password string `json:"password"`
}

// User is the account created by redemption.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	FullName       string    `json:"full_name,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Country        string    `json:"country,omitempty"`
	Role           string    `json:"role"`
	OrganizationID string    `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// AcceptInvitationResponse is returned from POST /v1/invitations/accept.
type AcceptInvitationResponse struct {
	User       User       `json:"user"`
	Invitation Invitation `json:"invitation"`
}

// BootstrapRequest provisions the first organization and owner on an empty
// deployment. Authorized by the X-Bootstrap-Token header.
type BootstrapRequest struct {
	OrganizationName string `json:"organization_name"`
	OrganizationSlug string `json:"organization_slug"`
	OwnerEmail       string `json:"owner_email"`
	OwnerName        string `json:"owner_name"`
	OwnerPassword    string `json:"owner_password"`
}

// BootstrapResponse contains the IDs of the created organization and owner.
type BootstrapResponse struct {
	OrganizationID string `json:"organization_id"`
	OwnerUserID    string `json:"owner_user_id"`
}

// UserInfoResponse is returned from GET /v1/userinfo.
type UserInfoResponse struct {
	UserID           string `json:"user_id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	FullName         string `json:"full_name,omitempty"`
	Role             string `json:"role"`
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	OrganizationSlug string `json:"organization_slug"`
}

// HealthChecks reports the state of the service's critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned from /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
