// Package invitesdk is a typed Go client for the COMODIN IA invitation
// service. It mirrors the service's /v1 HTTP API: issuing, listing and
// cancelling invitations as an authenticated organization member, and
// looking up or accepting an invitation as the invitee.
//
// Basic usage:
//
//	client := invitesdk.NewClient("https://invites.comodinia.com")
//
//	// Public invitee flow.
//	details, err := client.GetInvitation(ctx, token)
//	...
//	result, err := client.AcceptInvitation(ctx, invitesdk.AcceptInvitationRequest{
//		Token:    token,
//		Name:     "Alicia",
//		Password: password,
//	})
//
//	// Inviter flow, authenticated with a CRM session token.
//	session := client.WithToken(accessToken)
//	created, err := session.CreateInvitation(ctx, invitesdk.CreateInvitationRequest{
//		Email: "alicia@example.com",
//		Role:  "AGENTE",
//	})
//
// All methods return *APIError for non-2xx responses, so callers can switch
// on the service's stable error codes.
package invitesdk
