package http

import (
	"github.com/comodin-ia/invites/internal/invites/domain"
	"github.com/comodin-ia/invites/internal/invites/service"
	"github.com/comodin-ia/invites/pkg/invitesdk"
)

// The redemption token never appears in inviter-facing responses; it travels
// only inside the invitee's email.
func toSDKInvitation(inv domain.Invitation) invitesdk.Invitation {
	return invitesdk.Invitation{
		ID:             inv.ID,
		Email:          inv.Email,
		Role:           string(inv.Role),
		OrganizationID: inv.OrganizationID,
		InvitedBy:      inv.InvitedBy,
		InvitedByName:  inv.InvitedByName,
		FirstName:      inv.FirstName,
		LastName:       inv.LastName,
		Message:        inv.Message,
		Status:         string(inv.Status),
		ExpiresAt:      inv.ExpiresAt,
		AcceptedAt:     inv.AcceptedAt,
		CreatedAt:      inv.CreatedAt,
	}
}

func toSDKInvitationDetails(d service.InvitationDetails) invitesdk.InvitationDetails {
	return invitesdk.InvitationDetails{
		Email:            d.Invitation.Email,
		Role:             string(d.Invitation.Role),
		OrganizationName: d.OrganizationName,
		OrganizationSlug: d.OrganizationSlug,
		InvitedByName:    d.Invitation.InvitedByName,
		FirstName:        d.Invitation.FirstName,
		LastName:         d.Invitation.LastName,
		Message:          d.Invitation.Message,
		ExpiresAt:        d.Invitation.ExpiresAt,
	}
}

func toSDKUser(u domain.User) invitesdk.User {
	return invitesdk.User{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		FullName:       u.FullName,
		Phone:          u.Phone,
		Country:        u.Country,
		Role:           string(u.Role),
		OrganizationID: u.OrganizationID,
		CreatedAt:      u.CreatedAt,
	}
}
