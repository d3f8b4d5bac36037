package domain

import "time"

// Organization is the tenant boundary. Invitations, users and roles are all
// scoped to one organization.
type Organization struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
