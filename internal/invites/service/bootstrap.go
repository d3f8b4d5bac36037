package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/comodin-ia/invites/internal/invites/domain"
	"github.com/comodin-ia/invites/internal/invites/store"
	"github.com/comodin-ia/invites/pkg/cryptox"
	"github.com/comodin-ia/invites/pkg/idx"
	"github.com/comodin-ia/invites/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
	ErrBootstrapInvalid      = errors.New("invalid bootstrap request")
)

// BootstrapService provisions the first organization and its owner account on
// an empty deployment. Every later account enters through an invitation.
type BootstrapService struct {
	Store store.Store
	Token string // Pre-configured bootstrap token
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	orgEmpty, err := s.Store.Organizations().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	userEmpty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !orgEmpty && !userEmpty, nil
}

// Bootstrap creates the initial organization, its PROPIETARIO user, and the
// owner's credential in one transaction. Returns the new organization and
// owner ids.
func (s *BootstrapService) Bootstrap(
	ctx context.Context,
	token string,
	req domain.BootstrapData,
) (string, string, error) {
	log := slogx.FromContext(ctx)

	// 1. Check if already bootstrapped.
	if bootstrapped, _ := s.IsBootstrapped(ctx); bootstrapped {
		log.Warn("attempted bootstrap on already-bootstrapped system")
		return "", "", ErrBootstrapAlready
	}

	// 2. Validate provided token.
	if s.Token == "" || token != s.Token {
		log.Warn("unauthorized bootstrap attempt")
		return "", "", ErrBootstrapUnauthorized
	}

	// 3. Validate request data.
	email := strings.ToLower(strings.TrimSpace(req.OwnerEmail))
	if req.OrganizationName == "" || req.OrganizationSlug == "" ||
		email == "" || !strings.Contains(email, "@") ||
		req.OwnerName == "" || len(req.OwnerPassword) < MinPasswordLength {
		log.Warn("bootstrap request missing required fields")
		return "", "", ErrBootstrapInvalid
	}

	// 4. Hash the owner password.
	passwordHash, err := cryptox.HashPassword(req.OwnerPassword)
	if err != nil {
		log.Error("failed to hash owner password", slog.Any("error", err))
		return "", "", err
	}

	// 5. Create organization, owner, and credential in a transaction.
	now := time.Now().UTC()
	orgID := idx.New().String()
	ownerID := idx.New().String()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Organizations().CreateOrganization(ctx, domain.Organization{
			ID:        orgID,
			Name:      req.OrganizationName,
			Slug:      strings.ToLower(strings.TrimSpace(req.OrganizationSlug)),
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			log.Error("failed to create organization",
				slog.String("organization_id", orgID),
				slog.Any("error", err),
			)
			return err
		}

		if err := tx.Users().CreateUser(ctx, domain.User{
			ID:             ownerID,
			Email:          email,
			Name:           req.OwnerName,
			FullName:       req.OwnerName,
			Role:           domain.RoleOwner,
			OrganizationID: orgID,
			EmailVerified:  &now,
			CreatedAt:      now,
			UpdatedAt:      now,
		}); err != nil {
			log.Error("failed to create owner user",
				slog.String("user_id", ownerID),
				slog.Any("error", err),
			)
			return err
		}

		if err := tx.Credentials().CreateCredential(ctx, domain.Credential{
			ID:           idx.New().String(),
			UserID:       ownerID,
			PasswordHash: passwordHash,
			CreatedAt:    now,
		}); err != nil {
			log.Error("failed to create owner credential",
				slog.String("user_id", ownerID),
				slog.Any("error", err),
			)
			return err
		}

		return nil
	})
	if err != nil {
		return "", "", err
	}

	log.Info("successfully bootstrapped system",
		slog.String("organization_id", orgID),
		slog.String("owner_user_id", ownerID),
	)
	return orgID, ownerID, nil
}
