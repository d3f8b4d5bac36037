package domain

import "time"

// Role is the product role a user holds inside their organization.
type Role string

const (
	RoleOwner Role = "PROPIETARIO"
	RoleAdmin Role = "ADMINISTRADOR"
	RoleAgent Role = "AGENTE"
)

// ValidRole reports whether r names a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleAgent:
		return true
	}
	return false
}

// CanInvite reports whether a user with role r may issue or cancel
// invitations for their organization.
func (r Role) CanInvite() bool {
	return r == RoleOwner || r == RoleAdmin
}

// User belongs to exactly one organization. Email is globally unique.
type User struct {
	ID             string
	Email          string
	Name           string
	FullName       string
	Phone          string
	Country        string
	Role           Role
	OrganizationID string
	EmailVerified  *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Credential carries a user's password hash, linked 1:1 to the user and
// created atomically with it during invitation redemption.
type Credential struct {
	ID           string
	UserID       string
	PasswordHash string // bcrypt encoded
	CreatedAt    time.Time
}
