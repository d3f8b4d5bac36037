package store

import (
	"context"
	"errors"
	"time"

	"github.com/comodin-ia/invites/internal/invites/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Organizations() Organizations
	Users() Users
	Credentials() Credentials
	Invitations() Invitations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Organizations interface {
	// GetOrganizationByID returns an organization by id.
	GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error)

	// CreateOrganization inserts a new organization (id is provided by app via ULID).
	CreateOrganization(ctx context.Context, o domain.Organization) error

	// IsEmpty returns true if there are no organizations.
	IsEmpty(ctx context.Context) (bool, error)
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up by email anywhere in the system.
	// Email is globally unique.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByEmailInOrganization looks a user up by email inside one
	// organization (issuance-time membership check).
	GetUserByEmailInOrganization(ctx context.Context, email, organizationID string) (domain.User, error)

	// CreateUser inserts a new user. The unique constraint on email maps to
	// ErrAlreadyExists, the final backstop against concurrent redemption.
	CreateUser(ctx context.Context, u domain.User) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Credentials interface {
	// CreateCredential inserts the password hash record for a user.
	CreateCredential(ctx context.Context, c domain.Credential) error

	// GetCredentialByUserID returns a user's credential.
	GetCredentialByUserID(ctx context.Context, userID string) (domain.Credential, error)
}

type Invitations interface {
	// CreateInvitation writes a new invitation row (status PENDING).
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByID returns an invitation by id.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// GetInvitationByToken returns an invitation by its unique token,
	// regardless of status. Status and expiry checks are the service's job.
	GetInvitationByToken(ctx context.Context, token string) (domain.Invitation, error)

	// GetPendingInvitation returns the PENDING invitation for an
	// email+organization pair, if one exists.
	GetPendingInvitation(ctx context.Context, email, organizationID string) (domain.Invitation, error)

	// ListOrganizationInvitations returns invitations for an organization,
	// newest first. An empty status means no filter.
	ListOrganizationInvitations(ctx context.Context, organizationID string, status domain.InvitationStatus) ([]domain.Invitation, error)

	// MarkInvitationAccepted conditionally flips a PENDING invitation to
	// ACCEPTED, setting accepted_at. Returns ErrNotFound when the row is no
	// longer PENDING, which keeps redemption exactly-once under concurrency.
	MarkInvitationAccepted(ctx context.Context, id string, acceptedAt time.Time) error

	// MarkInvitationCancelled conditionally flips a PENDING invitation to
	// CANCELLED. Returns ErrNotFound when the row is no longer PENDING.
	MarkInvitationCancelled(ctx context.Context, id string) error

	// DeleteInvitation removes a row. Used only as the compensating action
	// when the notification email cannot be delivered.
	DeleteInvitation(ctx context.Context, id string) error

	// ExpireStaleInvitations bulk-updates PENDING rows whose expiry has
	// passed to EXPIRED and returns how many rows changed. Idempotent.
	ExpireStaleInvitations(ctx context.Context, now time.Time) (int64, error)
}
