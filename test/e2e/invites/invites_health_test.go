package invites_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comodin-ia/invites/pkg/invitesdk"
)

// TestLivezEndpoint verifies the liveness check endpoint works before bootstrap.
func TestLivezEndpoint(t *testing.T) {
	baseURL, _, cleanup := setupInvitesContainer(t)
	defer cleanup()

	client := invitesdk.NewClient(baseURL)

	health, err := client.Livez(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Livez endpoint is healthy")
}

// TestReadyzEndpoint verifies the readiness check endpoint works before
// bootstrap and reports the database state.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, _, cleanup := setupInvitesContainer(t)
	defer cleanup()

	client := invitesdk.NewClient(baseURL)

	health, err := client.Readyz(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)

	t.Logf("Readyz endpoint is healthy, database reachable")
}
