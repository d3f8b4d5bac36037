package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comodin-ia/invites/internal/invites/domain"
	"github.com/comodin-ia/invites/pkg/cryptox"
)

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	svc := &BootstrapService{Store: st, Token: "bootstrap-secret"}

	bootstrapped, err := svc.IsBootstrapped(ctx)
	require.NoError(t, err)
	require.False(t, bootstrapped)

	req := domain.BootstrapData{
		OrganizationName: "Clinica Dental Sonrisa",
		OrganizationSlug: "Clinica-Sonrisa",
		OwnerEmail:       "Carlos@Sonrisa.MX",
		OwnerName:        "Carlos Mendez",
		OwnerPassword:    "correct horse battery",
	}

	t.Run("rejects wrong token", func(t *testing.T) {
		_, _, err := svc.Bootstrap(ctx, "wrong", req)
		require.ErrorIs(t, err, ErrBootstrapUnauthorized)
	})

	t.Run("rejects incomplete data", func(t *testing.T) {
		bad := req
		bad.OwnerPassword = "short"
		_, _, err := svc.Bootstrap(ctx, "bootstrap-secret", bad)
		require.ErrorIs(t, err, ErrBootstrapInvalid)
	})

	t.Run("provisions organization and owner", func(t *testing.T) {
		orgID, ownerID, err := svc.Bootstrap(ctx, "bootstrap-secret", req)
		require.NoError(t, err)

		org, err := st.Organizations().GetOrganizationByID(ctx, orgID)
		require.NoError(t, err)
		require.Equal(t, "Clinica Dental Sonrisa", org.Name)
		require.Equal(t, "clinica-sonrisa", org.Slug)

		owner, err := st.Users().GetUserByID(ctx, ownerID)
		require.NoError(t, err)
		require.Equal(t, "carlos@sonrisa.mx", owner.Email)
		require.Equal(t, domain.RoleOwner, owner.Role)
		require.Equal(t, orgID, owner.OrganizationID)
		require.NotNil(t, owner.EmailVerified)

		cred, err := st.Credentials().GetCredentialByUserID(ctx, ownerID)
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("correct horse battery", cred.PasswordHash))
	})

	t.Run("second bootstrap is rejected", func(t *testing.T) {
		_, _, err := svc.Bootstrap(ctx, "bootstrap-secret", req)
		require.ErrorIs(t, err, ErrBootstrapAlready)
	})
}

func TestBootstrapRejectedWhenNoTokenConfigured(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	svc := &BootstrapService{Store: st}
	_, _, err := svc.Bootstrap(ctx, "", domain.BootstrapData{
		OrganizationName: "Org",
		OrganizationSlug: "org",
		OwnerEmail:       "a@b.mx",
		OwnerName:        "A",
		OwnerPassword:    "correct horse battery",
	})
	require.ErrorIs(t, err, ErrBootstrapUnauthorized)
}

func TestUserServiceGetProfile(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	org := seedOrganization(t, st)
	user := seedUser(t, st, org.ID, "carlos@sonrisa.mx", domain.RoleOwner)

	svc := &UserService{Store: st}

	profile, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, profile.User.ID)
	require.Equal(t, org.Name, profile.Organization.Name)

	_, err = svc.GetProfile(ctx, "01K0000000000000000000000")
	require.ErrorIs(t, err, ErrUserNotFound)
}
