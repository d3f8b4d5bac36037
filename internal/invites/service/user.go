package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/comodin-ia/invites/internal/invites/domain"
	"github.com/comodin-ia/invites/internal/invites/store"
	"github.com/comodin-ia/invites/pkg/slogx"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	Store store.Store
}

// UserProfile is a user joined with their organization, as returned by the
// userinfo endpoint.
type UserProfile struct {
	User         domain.User
	Organization domain.Organization
}

// GetProfile returns the profile for an authenticated user.
func (s *UserService) GetProfile(ctx context.Context, userID string) (UserProfile, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return UserProfile{}, ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return UserProfile{}, err
	}

	org, err := s.Store.Organizations().GetOrganizationByID(ctx, user.OrganizationID)
	if err != nil {
		log.Error("failed to fetch user organization",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return UserProfile{}, err
	}

	return UserProfile{User: user, Organization: org}, nil
}
