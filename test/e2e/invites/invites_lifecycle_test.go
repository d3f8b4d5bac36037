package invites_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/comodin-ia/invites/pkg/invitesdk"
)

// TestBootstrapInviteAcceptLifecycle tests the complete flow:
// 1. Bootstrap the service with an organization and owner
// 2. Create an invitation as the owner
// 3. Extract the redemption token from the delivered email
// 4. Look the invitation up as the invitee
// 5. Accept the invitation and verify the created account
// 6. Verify the invitation cannot be accepted twice
func TestBootstrapInviteAcceptLifecycle(t *testing.T) {
	baseURL, container, cleanup := setupInvitesContainer(t)
	defer cleanup()

	client := invitesdk.NewClient(baseURL)

	// Step 1: Bootstrap
	boot := bootstrapService(t, client)

	t.Logf("Bootstrap successful")
	t.Logf("Organization ID: %s", boot.OrganizationID)
	t.Logf("Owner User ID: %s", boot.OwnerUserID)

	// Step 2: Create an invitation as the owner
	owner := client.WithToken(sessionToken(t, boot.OwnerUserID, boot.OrganizationID, "PROPIETARIO"))

	createResp, err := owner.CreateInvitation(t.Context(), invitesdk.CreateInvitationRequest{
		Email:     "maria@sonrisa.mx",
		Role:      "AGENTE",
		FirstName: "Maria",
		LastName:  "Lopez",
		Message:   "Bienvenida al equipo de recepcion",
	})
	require.NoError(t, err)
	require.NotNil(t, createResp)
	require.NotEmpty(t, createResp.Invitation.ID)
	require.Equal(t, "maria@sonrisa.mx", createResp.Invitation.Email)
	require.Equal(t, "AGENTE", createResp.Invitation.Role)
	require.Equal(t, "PENDING", createResp.Invitation.Status)
	require.Equal(t, boot.OwnerUserID, createResp.Invitation.InvitedBy)
	require.WithinDuration(t, time.Now().Add(7*24*time.Hour), createResp.Invitation.ExpiresAt, time.Minute,
		"invitation should expire roughly a week out")
	require.NotEmpty(t, createResp.EmailPreviewURL, "test container runs the dev mailer")

	t.Logf("Invitation created: %s", createResp.Invitation.ID)
	t.Logf("Email preview: %s", createResp.EmailPreviewURL)

	// Step 3: The token travels only in the email, so dig it out of the
	// preview the dev mailer wrote inside the container
	token := tokenFromPreview(t, container, createResp.EmailPreviewURL)

	t.Logf("Redemption token recovered from email")

	// Step 4: Look the invitation up as the (unauthenticated) invitee
	details, err := client.GetInvitation(t.Context(), token)
	require.NoError(t, err)
	require.Equal(t, "maria@sonrisa.mx", details.Email)
	require.Equal(t, "AGENTE", details.Role)
	require.Equal(t, orgName, details.OrganizationName)
	require.Equal(t, orgSlug, details.OrganizationSlug)
	require.Equal(t, ownerName, details.InvitedByName)
	require.Equal(t, "Maria", details.FirstName)
	require.Equal(t, "Bienvenida al equipo de recepcion", details.Message)

	t.Logf("Invitation lookup successful")

	// Step 5: Accept the invitation
	acceptResp, err := client.AcceptInvitation(t.Context(), invitesdk.AcceptInvitationRequest{
		Token:    token,
		Name:     "Maria",
		FullName: "Maria Lopez",
		Phone:    "+5215512345678",
		Country:  "MX",
		Password: "MariaPass123!",
	})
	require.NoError(t, err)
	require.NotEmpty(t, acceptResp.User.ID)
	require.Equal(t, "maria@sonrisa.mx", acceptResp.User.Email)
	require.Equal(t, "AGENTE", acceptResp.User.Role)
	require.Equal(t, boot.OrganizationID, acceptResp.User.OrganizationID)
	require.Equal(t, "ACCEPTED", acceptResp.Invitation.Status)
	require.NotNil(t, acceptResp.Invitation.AcceptedAt)

	t.Logf("Invitation accepted, user created: %s", acceptResp.User.ID)

	// The new agent can authenticate against the rest of the platform
	agent := client.WithToken(sessionToken(t, acceptResp.User.ID, boot.OrganizationID, "AGENTE"))

	info, err := agent.UserInfo(t.Context())
	require.NoError(t, err)
	require.Equal(t, acceptResp.User.ID, info.UserID)
	require.Equal(t, "maria@sonrisa.mx", info.Email)
	require.Equal(t, "AGENTE", info.Role)
	require.Equal(t, orgName, info.OrganizationName)

	t.Logf("New user info retrieved successfully")

	// Step 6: The token is single use
	_, err = client.AcceptInvitation(t.Context(), invitesdk.AcceptInvitationRequest{
		Token:    token,
		Name:     "Otra Persona",
		Password: "OtherPass123!",
	})
	assertAPIError(t, err, invitesdk.CodeAlreadyProcessed)

	t.Logf("Second redemption correctly rejected")

	// The owner's listing reflects the acceptance
	list, err := owner.ListInvitations(t.Context(), "ACCEPTED")
	require.NoError(t, err)
	require.Len(t, list.Invitations, 1)
	require.Equal(t, createResp.Invitation.ID, list.Invitations[0].ID)

	t.Logf("Accepted invitation shows up in the organization listing")
}

// TestInvitationCancellation tests that the original inviter, and only the
// original inviter, can cancel a pending invitation.
func TestInvitationCancellation(t *testing.T) {
	baseURL, container, cleanup := setupInvitesContainer(t)
	defer cleanup()

	client := invitesdk.NewClient(baseURL)
	boot := bootstrapService(t, client)
	owner := client.WithToken(sessionToken(t, boot.OwnerUserID, boot.OrganizationID, "PROPIETARIO"))

	// Bring a second administrator into the organization so someone other
	// than the inviter exists
	adminResp, err := owner.CreateInvitation(t.Context(), invitesdk.CreateInvitationRequest{
		Email: "ana@sonrisa.mx",
		Role:  "ADMINISTRADOR",
	})
	require.NoError(t, err)

	adminToken := tokenFromPreview(t, container, adminResp.EmailPreviewURL)

	adminAccept, err := client.AcceptInvitation(t.Context(), invitesdk.AcceptInvitationRequest{
		Token:    adminToken,
		Name:     "Ana",
		Password: "AnaPass123!",
	})
	require.NoError(t, err)

	admin := client.WithToken(sessionToken(t, adminAccept.User.ID, boot.OrganizationID, "ADMINISTRADOR"))

	t.Logf("Second administrator onboarded: %s", adminAccept.User.ID)

	// The owner invites an agent
	agentResp, err := owner.CreateInvitation(t.Context(), invitesdk.CreateInvitationRequest{
		Email: "pedro@sonrisa.mx",
		Role:  "AGENTE",
	})
	require.NoError(t, err)

	agentToken := tokenFromPreview(t, container, agentResp.EmailPreviewURL)

	// The other admin cannot cancel an invitation they did not issue
	err = admin.CancelInvitation(t.Context(), agentResp.Invitation.ID)
	assertAPIError(t, err, invitesdk.CodeForbidden)

	t.Logf("Non-inviter correctly denied cancellation")

	// The inviter can
	err = owner.CancelInvitation(t.Context(), agentResp.Invitation.ID)
	require.NoError(t, err)

	t.Logf("Invitation cancelled by the inviter")

	// Cancelling again conflicts
	err = owner.CancelInvitation(t.Context(), agentResp.Invitation.ID)
	assertAPIError(t, err, invitesdk.CodeAlreadyProcessed)

	// The token is dead for the invitee as well
	_, err = client.GetInvitation(t.Context(), agentToken)
	assertAPIError(t, err, invitesdk.CodeAlreadyProcessed)

	_, err = client.AcceptInvitation(t.Context(), invitesdk.AcceptInvitationRequest{
		Token:    agentToken,
		Name:     "Pedro",
		Password: "PedroPass123!",
	})
	assertAPIError(t, err, invitesdk.CodeAlreadyProcessed)

	t.Logf("Cancelled invitation correctly unusable")
}

// TestInvitationConflicts tests the issuance guards: one pending invitation
// per address, and no invitations for existing members.
func TestInvitationConflicts(t *testing.T) {
	baseURL, container, cleanup := setupInvitesContainer(t)
	defer cleanup()

	client := invitesdk.NewClient(baseURL)
	boot := bootstrapService(t, client)
	owner := client.WithToken(sessionToken(t, boot.OwnerUserID, boot.OrganizationID, "PROPIETARIO"))

	// Inviting the owner's own address fails: already a member
	_, err := owner.CreateInvitation(t.Context(), invitesdk.CreateInvitationRequest{
		Email: ownerEmail,
		Role:  "AGENTE",
	})
	assertAPIError(t, err, invitesdk.CodeAlreadyMember)

	t.Logf("Existing member correctly rejected")

	first, err := owner.CreateInvitation(t.Context(), invitesdk.CreateInvitationRequest{
		Email: "luis@sonrisa.mx",
		Role:  "AGENTE",
	})
	require.NoError(t, err)

	// A second pending invitation for the same address conflicts
	_, err = owner.CreateInvitation(t.Context(), invitesdk.CreateInvitationRequest{
		Email: "luis@sonrisa.mx",
		Role:  "ADMINISTRADOR",
	})
	assertAPIError(t, err, invitesdk.CodeDuplicatePending)

	t.Logf("Duplicate pending invitation correctly rejected")

	// Cancelling the pending one frees the address up again
	err = owner.CancelInvitation(t.Context(), first.Invitation.ID)
	require.NoError(t, err)

	second, err := owner.CreateInvitation(t.Context(), invitesdk.CreateInvitationRequest{
		Email: "luis@sonrisa.mx",
		Role:  "ADMINISTRADOR",
	})
	require.NoError(t, err)
	require.NotEqual(t, first.Invitation.ID, second.Invitation.ID)

	t.Logf("Address reusable after cancellation")

	// Accept it, then verify the address is globally taken
	token := tokenFromPreview(t, container, second.EmailPreviewURL)

	_, err = client.AcceptInvitation(t.Context(), invitesdk.AcceptInvitationRequest{
		Token:    token,
		Name:     "Luis",
		Password: "LuisPass123!",
	})
	require.NoError(t, err)

	_, err = owner.CreateInvitation(t.Context(), invitesdk.CreateInvitationRequest{
		Email: "luis@sonrisa.mx",
		Role:  "AGENTE",
	})
	assertAPIError(t, err, invitesdk.CodeAlreadyMember)

	t.Logf("Accepted member correctly rejected on re-invite")
}

// TestAcceptInvitationValidation tests redemption input validation.
func TestAcceptInvitationValidation(t *testing.T) {
	baseURL, container, cleanup := setupInvitesContainer(t)
	defer cleanup()

	client := invitesdk.NewClient(baseURL)
	boot := bootstrapService(t, client)
	owner := client.WithToken(sessionToken(t, boot.OwnerUserID, boot.OrganizationID, "PROPIETARIO"))

	createResp, err := owner.CreateInvitation(t.Context(), invitesdk.CreateInvitationRequest{
		Email: "sofia@sonrisa.mx",
		Role:  "AGENTE",
	})
	require.NoError(t, err)

	token := tokenFromPreview(t, container, createResp.EmailPreviewURL)

	t.Run("MalformedToken", func(t *testing.T) {
		_, err := client.AcceptInvitation(t.Context(), invitesdk.AcceptInvitationRequest{
			Token:    "not-a-real-token",
			Name:     "Sofia",
			Password: "SofiaPass123!",
		})
		assertAPIError(t, err, invitesdk.CodeNotFound)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		_, err := client.AcceptInvitation(t.Context(), invitesdk.AcceptInvitationRequest{
			Token:    token,
			Name:     "Sofia",
			Password: "short",
		})
		assertAPIError(t, err, invitesdk.CodeInvalidRequest)
	})

	t.Run("NameFallsBackToInvitation", func(t *testing.T) {
		// The invitation carried no first name, so an empty name is invalid
		_, err := client.AcceptInvitation(t.Context(), invitesdk.AcceptInvitationRequest{
			Token:    token,
			Password: "SofiaPass123!",
		})
		assertAPIError(t, err, invitesdk.CodeInvalidRequest)
	})

	t.Run("SuccessfulRedemption", func(t *testing.T) {
		resp, err := client.AcceptInvitation(t.Context(), invitesdk.AcceptInvitationRequest{
			Token:    token,
			Name:     "Sofia",
			Password: "SofiaPass123!",
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.User.ID)

		t.Logf("Successfully redeemed invitation for user: %s", resp.User.ID)
	})
}
