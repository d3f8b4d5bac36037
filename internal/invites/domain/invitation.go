package domain

import "time"

// InvitationStatus is one-way: PENDING is the only non-terminal state.
type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "PENDING"
	InvitationAccepted  InvitationStatus = "ACCEPTED"
	InvitationCancelled InvitationStatus = "CANCELLED"
	InvitationExpired   InvitationStatus = "EXPIRED"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s InvitationStatus) IsTerminal() bool {
	return s == InvitationAccepted || s == InvitationCancelled || s == InvitationExpired
}

// ValidInvitationStatus reports whether s names a known status, used to
// validate listing filters.
func ValidInvitationStatus(s string) bool {
	switch InvitationStatus(s) {
	case InvitationPending, InvitationAccepted, InvitationCancelled, InvitationExpired:
		return true
	}
	return false
}

// Invitation is a time-boxed, single-use capability granting the right to
// create one user account with a predetermined role inside a predetermined
// organization. The token is the only secret needed to redeem it.
type Invitation struct {
	ID             string
	Email          string
	Token          string // 64 lowercase hex chars, unique, never reused
	Role           Role
	OrganizationID string
	InvitedBy      string // user id of the issuer
	InvitedByName  string // denormalized for display without a join
	FirstName      string
	LastName       string
	Message        string
	Status         InvitationStatus
	ExpiresAt      time.Time
	AcceptedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Expired reports whether the invitation's window has passed as of now.
// The stored status may lag behind (the sweep persists EXPIRED later), so
// redemption and lookup must check this live.
func (i Invitation) Expired(now time.Time) bool {
	return i.ExpiresAt.Before(now)
}
