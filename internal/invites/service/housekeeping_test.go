package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/comodin-ia/invites/internal/invites/domain"
)

func TestHousekeepingSweepsOnStartup(t *testing.T) {
	ctx := context.Background()
	svc, _, _, inviter := newTestService(t)

	svc.InviteTTL = time.Nanosecond
	stale, _, err := svc.CreateInvitation(ctx, CreateInvitationParams{
		Email:     "stale@example.com",
		Role:      domain.RoleAgent,
		InviterID: inviter.ID,
	})
	require.NoError(t, err)

	hk := NewHousekeepingService(svc, slog.New(slog.DiscardHandler), time.Hour)
	hk.Start()
	hk.Stop()

	got, err := svc.Store.Invitations().GetInvitationByID(ctx, stale.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationExpired, got.Status)
}

func TestHousekeepingDefaultsInterval(t *testing.T) {
	hk := NewHousekeepingService(nil, slog.New(slog.DiscardHandler), 0)
	require.Equal(t, time.Hour, hk.Interval)
}
