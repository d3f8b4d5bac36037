package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/comodin-ia/invites/internal/invites/domain"
	"github.com/comodin-ia/invites/internal/invites/mail"
	"github.com/comodin-ia/invites/internal/invites/store"
	"github.com/comodin-ia/invites/pkg/cryptox"
	"github.com/comodin-ia/invites/pkg/idx"
	"github.com/comodin-ia/invites/pkg/slogx"
)

var (
	ErrInvalidRequest         = errors.New("invalid invitation request")
	ErrAlreadyMember          = errors.New("user is already a member of the organization")
	ErrDuplicatePending       = errors.New("a pending invitation already exists for this email")
	ErrDeliveryFailed         = errors.New("invitation email could not be delivered")
	ErrInvitationNotFound     = errors.New("invitation not found")
	ErrAlreadyProcessed       = errors.New("invitation has already been processed")
	ErrInvitationExpired      = errors.New("invitation has expired")
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
	ErrNotInviter             = errors.New("only the original inviter can cancel an invitation")
)

// DefaultInviteTTL is the invitation validity window when none is configured.
const DefaultInviteTTL = 7 * 24 * time.Hour

// MinPasswordLength mirrors the CRM signup form's own validation so a
// password the form accepts is never refused here.
const MinPasswordLength = 6

type InvitationService struct {
	Store  store.Store
	Mailer mail.Mailer

	// BaseURL is the public URL of the CRM frontend; redemption links are
	// built against it.
	BaseURL string

	// InviteTTL overrides DefaultInviteTTL when positive.
	InviteTTL time.Duration
}

// CreateInvitationParams carries the issuance inputs. The inviter's identity
// comes from the authenticated session, never from the request body.
type CreateInvitationParams struct {
	Email     string
	Role      domain.Role
	InviterID string
	FirstName string
	LastName  string
	Message   string
}

// InvitationDetails is an invitation joined with the organization data the
// invitee needs before committing to an account.
type InvitationDetails struct {
	Invitation       domain.Invitation
	OrganizationName string
	OrganizationSlug string
}

// AcceptInvitationParams carries the invitee-supplied profile data for
// redemption. Email is never an input: the account keeps the address the
// invitation was issued to.
type AcceptInvitationParams struct {
	Token    string
	Name     string
	FullName string
	Phone    string
	Country  string
	Password string
}

func (s *InvitationService) ttl() time.Duration {
	if s.InviteTTL > 0 {
		return s.InviteTTL
	}
	return DefaultInviteTTL
}

func (s *InvitationService) acceptURL(token string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/invitations/accept?token=" + token
}

// CreateInvitation issues a new invitation and emails the redemption link.
// The returned preview URL is non-empty only for non-production mailers.
func (s *InvitationService) CreateInvitation(
	ctx context.Context,
	params CreateInvitationParams,
) (domain.Invitation, string, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" || !strings.Contains(email, "@") || params.InviterID == "" {
		log.Warn("invitation request missing required fields")
		return domain.Invitation{}, "", ErrInvalidRequest
	}
	if !domain.ValidRole(params.Role) {
		log.Warn("invitation request with unknown role",
			slog.String("role", string(params.Role)),
		)
		return domain.Invitation{}, "", ErrInvalidRequest
	}

	// 2. Resolve the inviter; their organization scopes everything below and
	// their name is denormalized onto the invitation for display.
	inviter, err := s.Store.Users().GetUserByID(ctx, params.InviterID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invitation request from unknown user",
				slog.String("inviter_id", params.InviterID),
			)
			return domain.Invitation{}, "", ErrInvalidRequest
		}
		log.Error("failed to fetch inviter", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}

	// 3. Reject when the recipient already belongs to the organization.
	_, err = s.Store.Users().GetUserByEmailInOrganization(ctx, email, inviter.OrganizationID)
	if err == nil {
		log.Warn("invitation attempted for existing member",
			slog.String("organization_id", inviter.OrganizationID),
		)
		return domain.Invitation{}, "", ErrAlreadyMember
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check organization membership", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}

	// 4. Reject when a PENDING invitation for this pair already exists.
	_, err = s.Store.Invitations().GetPendingInvitation(ctx, email, inviter.OrganizationID)
	if err == nil {
		log.Warn("duplicate pending invitation attempted",
			slog.String("organization_id", inviter.OrganizationID),
		)
		return domain.Invitation{}, "", ErrDuplicatePending
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check pending invitations", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}

	// 5. Generate the redemption token. The token is the only secret needed
	// to redeem, so it is the security boundary of the whole flow.
	token, err := cryptox.GenerateInviteToken()
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}

	now := time.Now().UTC()
	inv := domain.Invitation{
		ID:             idx.New().String(),
		Email:          email,
		Token:          token,
		Role:           params.Role,
		OrganizationID: inviter.OrganizationID,
		InvitedBy:      inviter.ID,
		InvitedByName:  inviter.Name,
		FirstName:      strings.TrimSpace(params.FirstName),
		LastName:       strings.TrimSpace(params.LastName),
		Message:        strings.TrimSpace(params.Message),
		Status:         domain.InvitationPending,
		ExpiresAt:      now.Add(s.ttl()),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// 6. Persist. The partial unique index on (organization_id, email) for
	// PENDING rows closes the race between step 4 and here.
	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("duplicate pending invitation lost the insert race",
				slog.String("organization_id", inviter.OrganizationID),
			)
			return domain.Invitation{}, "", ErrDuplicatePending
		}
		log.Error("failed to create invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, "", err
	}

	// 7. Compose and send the email. Delivery is sequenced after the insert
	// so a failure can cleanly undo issuance.
	org, err := s.Store.Organizations().GetOrganizationByID(ctx, inviter.OrganizationID)
	if err != nil {
		log.Error("failed to fetch organization for invitation email", slog.Any("error", err))
		s.compensateDelete(ctx, inv.ID)
		return domain.Invitation{}, "", err
	}

	recipientName := inv.FirstName
	msg, err := mail.ComposeInvitation(mail.InvitationEmail{
		RecipientEmail:   inv.Email,
		RecipientName:    recipientName,
		OrganizationName: org.Name,
		InviterName:      inv.InvitedByName,
		Role:             string(inv.Role),
		PersonalMessage:  inv.Message,
		AcceptURL:        s.acceptURL(token),
		ExpiresAt:        inv.ExpiresAt,
	})
	if err != nil {
		log.Error("failed to compose invitation email", slog.Any("error", err))
		s.compensateDelete(ctx, inv.ID)
		return domain.Invitation{}, "", err
	}

	res, err := s.Mailer.Send(ctx, msg)
	if err != nil {
		// 8. Compensating action: a PENDING invitation the invitee never
		// heard about must not linger.
		log.Warn("invitation email delivery failed, rolling back issuance",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		s.compensateDelete(ctx, inv.ID)
		return domain.Invitation{}, "", ErrDeliveryFailed
	}

	log.Info("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("organization_id", inv.OrganizationID),
		slog.String("role", string(inv.Role)),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	return inv, res.PreviewURL, nil
}

// compensateDelete removes a just-created invitation after a failure later in
// the issuance flow. Best effort: the expiry sweep eventually retires the row
// if the delete itself fails.
func (s *InvitationService) compensateDelete(ctx context.Context, id string) {
	if err := s.Store.Invitations().DeleteInvitation(ctx, id); err != nil {
		slogx.FromContext(ctx).Error("failed to delete invitation after delivery failure",
			slog.String("invitation_id", id),
			slog.Any("error", err),
		)
	}
}

// GetInvitationByToken validates a token for the invitation landing page.
// Read-only and safe to call repeatedly.
func (s *InvitationService) GetInvitationByToken(
	ctx context.Context,
	token string,
) (InvitationDetails, error) {
	log := slogx.FromContext(ctx)

	// Malformed tokens cannot match any row; skip the lookup.
	if !cryptox.IsInviteToken(token) {
		return InvitationDetails{}, ErrInvitationNotFound
	}

	inv, err := s.Store.Invitations().GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return InvitationDetails{}, ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return InvitationDetails{}, err
	}

	if inv.Status != domain.InvitationPending {
		return InvitationDetails{}, ErrAlreadyProcessed
	}

	// Live expiry check. The stored status may lag until the sweep runs.
	if inv.Expired(time.Now().UTC()) {
		return InvitationDetails{}, ErrInvitationExpired
	}

	org, err := s.Store.Organizations().GetOrganizationByID(ctx, inv.OrganizationID)
	if err != nil {
		log.Error("failed to fetch invitation organization", slog.Any("error", err))
		return InvitationDetails{}, err
	}

	return InvitationDetails{
		Invitation:       inv,
		OrganizationName: org.Name,
		OrganizationSlug: org.Slug,
	}, nil
}

// AcceptInvitation redeems an invitation, creating the user account and its
// credential atomically. At most one user is ever created per invitation: the
// status flip is a conditional update checked by affected rows inside the same
// transaction as the inserts, and the global unique constraint on users.email
// is the backstop.
func (s *InvitationService) AcceptInvitation(
	ctx context.Context,
	params AcceptInvitationParams,
) (domain.User, domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input. The display name may still come from the
	// invitation's personalization fields, checked once it is loaded.
	if len(params.Password) < MinPasswordLength {
		log.Warn("invitation acceptance with too short a password")
		return domain.User{}, domain.Invitation{}, ErrInvalidRequest
	}

	// 2. Re-validate the invitation exactly like the lookup path.
	details, err := s.GetInvitationByToken(ctx, params.Token)
	if err != nil {
		return domain.User{}, domain.Invitation{}, err
	}
	inv := details.Invitation

	name := strings.TrimSpace(params.Name)
	if name == "" {
		name = inv.FirstName
	}
	if name == "" {
		log.Warn("invitation acceptance without a display name")
		return domain.User{}, domain.Invitation{}, ErrInvalidRequest
	}
	fullName := strings.TrimSpace(params.FullName)
	if fullName == "" {
		fullName = strings.TrimSpace(inv.FirstName + " " + inv.LastName)
	}

	// 3. Global uniqueness check: the account could have been created
	// through another path since the invitation was issued.
	_, err = s.Store.Users().GetUserByEmail(ctx, inv.Email)
	if err == nil {
		log.Warn("invitation acceptance for already-registered email",
			slog.String("invitation_id", inv.ID),
		)
		return domain.User{}, domain.Invitation{}, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check email registration", slog.Any("error", err))
		return domain.User{}, domain.Invitation{}, err
	}

	// 4. Hash the password before opening the transaction. bcrypt at cost 12
	// takes long enough that holding a write transaction across it would
	// serialize every redemption behind it.
	passwordHash, err := cryptox.HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, domain.Invitation{}, err
	}

	// 5. Flip the invitation and create user + credential in one transaction.
	now := time.Now().UTC()
	user := domain.User{
		ID:             idx.New().String(),
		Email:          inv.Email,
		Name:           name,
		FullName:       fullName,
		Phone:          strings.TrimSpace(params.Phone),
		Country:        strings.TrimSpace(params.Country),
		Role:           inv.Role,
		OrganizationID: inv.OrganizationID,
		EmailVerified:  &now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// The conditional flip decides the winner of a concurrent redemption
		// race: zero affected rows means the invitation is no longer PENDING.
		if err := tx.Invitations().MarkInvitationAccepted(ctx, inv.ID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Warn("invitation acceptance lost the redemption race",
					slog.String("invitation_id", inv.ID),
				)
				return ErrAlreadyProcessed
			}
			log.Error("failed to mark invitation accepted",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
			return err
		}

		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailAlreadyRegistered
			}
			log.Error("failed to create user",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
			return err
		}

		if err := tx.Credentials().CreateCredential(ctx, domain.Credential{
			ID:           idx.New().String(),
			UserID:       user.ID,
			PasswordHash: passwordHash,
			CreatedAt:    now,
		}); err != nil {
			log.Error("failed to create credential",
				slog.String("user_id", user.ID),
				slog.Any("error", err),
			)
			return err
		}

		return nil
	})
	if err != nil {
		return domain.User{}, domain.Invitation{}, err
	}

	inv.Status = domain.InvitationAccepted
	inv.AcceptedAt = &now
	inv.UpdatedAt = now

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("user_id", user.ID),
		slog.String("organization_id", user.OrganizationID),
		slog.String("role", string(user.Role)),
	)

	return user, inv, nil
}

// CancelInvitation marks a PENDING invitation CANCELLED. Only the original
// inviter may cancel; cancelling an already-processed invitation is rejected
// rather than silently succeeding.
func (s *InvitationService) CancelInvitation(ctx context.Context, id, actingUserID string) error {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return err
	}

	if inv.InvitedBy != actingUserID {
		log.Warn("invitation cancellation by non-inviter",
			slog.String("invitation_id", id),
			slog.String("acting_user_id", actingUserID),
		)
		return ErrNotInviter
	}

	if inv.Status != domain.InvitationPending {
		return ErrAlreadyProcessed
	}

	if err := s.Store.Invitations().MarkInvitationCancelled(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost a race against acceptance or the expiry sweep.
			return ErrAlreadyProcessed
		}
		log.Error("failed to cancel invitation",
			slog.String("invitation_id", id),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("invitation cancelled",
		slog.String("invitation_id", id),
		slog.String("acting_user_id", actingUserID),
	)
	return nil
}

// ListOrganizationInvitations returns an organization's invitations, newest
// first, optionally filtered by status.
func (s *InvitationService) ListOrganizationInvitations(
	ctx context.Context,
	organizationID string,
	status string,
) ([]domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	if status != "" && !domain.ValidInvitationStatus(status) {
		log.Warn("invitation listing with unknown status filter",
			slog.String("status", status),
		)
		return nil, ErrInvalidRequest
	}

	invs, err := s.Store.Invitations().ListOrganizationInvitations(
		ctx, organizationID, domain.InvitationStatus(status),
	)
	if err != nil {
		log.Error("failed to list invitations", slog.Any("error", err))
		return nil, err
	}
	return invs, nil
}

// ExpireStaleInvitations flips every overdue PENDING invitation to EXPIRED
// and reports how many rows changed. Idempotent.
func (s *InvitationService) ExpireStaleInvitations(ctx context.Context) (int64, error) {
	log := slogx.FromContext(ctx)

	n, err := s.Store.Invitations().ExpireStaleInvitations(ctx, time.Now().UTC())
	if err != nil {
		log.Error("failed to expire stale invitations", slog.Any("error", err))
		return 0, err
	}
	if n > 0 {
		log.Info("expired stale invitations", slog.Int64("count", n))
	}
	return n, nil
}
