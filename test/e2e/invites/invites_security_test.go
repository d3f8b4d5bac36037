package invites_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comodin-ia/invites/pkg/invitesdk"
	"github.com/comodin-ia/invites/pkg/jwtx"
)

// TestInviterEndpointsRequireSession tests that the inviter-facing endpoints
// reject missing, forged and under-privileged tokens.
func TestInviterEndpointsRequireSession(t *testing.T) {
	baseURL, _, cleanup := setupInvitesContainer(t)
	defer cleanup()

	client := invitesdk.NewClient(baseURL)
	boot := bootstrapService(t, client)

	req := invitesdk.CreateInvitationRequest{
		Email: "someone@sonrisa.mx",
		Role:  "AGENTE",
	}

	t.Run("NoToken", func(t *testing.T) {
		_, err := client.CreateInvitation(t.Context(), req)
		assertAPIError(t, err, invitesdk.CodeUnauthorized)

		_, err = client.ListInvitations(t.Context(), "")
		assertAPIError(t, err, invitesdk.CodeUnauthorized)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		_, err := client.WithToken("not-a-jwt").CreateInvitation(t.Context(), req)
		assertAPIError(t, err, invitesdk.CodeUnauthorized)
	})

	t.Run("WrongSigningSecret", func(t *testing.T) {
		forger := &jwtx.Signer{Secret: []byte("some-other-secret"), Issuer: jwtIssuer}
		forged, err := forger.Sign(boot.OwnerUserID, boot.OrganizationID, "PROPIETARIO")
		require.NoError(t, err)

		_, err = client.WithToken(forged).CreateInvitation(t.Context(), req)
		assertAPIError(t, err, invitesdk.CodeUnauthorized)

		t.Logf("Forged token correctly rejected")
	})

	t.Run("AgentRoleForbidden", func(t *testing.T) {
		// Agents are valid users but may not manage invitations
		agent := client.WithToken(sessionToken(t, boot.OwnerUserID, boot.OrganizationID, "AGENTE"))

		_, err := agent.CreateInvitation(t.Context(), req)
		assertAPIError(t, err, invitesdk.CodeForbidden)

		_, err = agent.ListInvitations(t.Context(), "")
		assertAPIError(t, err, invitesdk.CodeForbidden)

		t.Logf("Agent role correctly denied invitation management")
	})
}

// TestBootstrapGuards tests that bootstrap is authorized by the deployment
// token and is strictly one-shot.
func TestBootstrapGuards(t *testing.T) {
	baseURL, _, cleanup := setupInvitesContainer(t)
	defer cleanup()

	client := invitesdk.NewClient(baseURL)

	req := invitesdk.BootstrapRequest{
		OrganizationName: orgName,
		OrganizationSlug: orgSlug,
		OwnerEmail:       ownerEmail,
		OwnerName:        ownerName,
		OwnerPassword:    ownerPassword,
	}

	// Wrong deployment token
	_, err := client.Bootstrap(t.Context(), "wrong-token", req)
	assertAPIError(t, err, invitesdk.CodeUnauthorized)

	// Missing token
	_, err = client.Bootstrap(t.Context(), "", req)
	assertAPIError(t, err, invitesdk.CodeUnauthorized)

	t.Logf("Unauthorized bootstrap attempts correctly rejected")

	// Correct token succeeds once
	resp, err := client.Bootstrap(t.Context(), bootstrapToken, req)
	require.NoError(t, err)
	require.NotEmpty(t, resp.OrganizationID)

	// A second bootstrap is rejected even with the right token
	_, err = client.Bootstrap(t.Context(), bootstrapToken, req)
	assertAPIError(t, err, invitesdk.CodeAlreadyBootstrapped)

	t.Logf("Second bootstrap correctly rejected")
}

// TestSessionFromAnotherIssuer tests that tokens minted by a different issuer
// are rejected even when signed with the right secret.
func TestSessionFromAnotherIssuer(t *testing.T) {
	baseURL, _, cleanup := setupInvitesContainer(t)
	defer cleanup()

	client := invitesdk.NewClient(baseURL)
	boot := bootstrapService(t, client)

	signer := &jwtx.Signer{Secret: []byte(jwtSecret), Issuer: "someone-else"}
	token, err := signer.Sign(boot.OwnerUserID, boot.OrganizationID, "PROPIETARIO")
	require.NoError(t, err)

	_, err = client.WithToken(token).ListInvitations(t.Context(), "")
	assertAPIError(t, err, invitesdk.CodeUnauthorized)

	t.Logf("Cross-issuer token correctly rejected")
}
