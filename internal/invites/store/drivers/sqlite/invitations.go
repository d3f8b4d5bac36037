package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/comodin-ia/invites/internal/invites/domain"
	"github.com/comodin-ia/invites/internal/invites/store"
)

const invitationColumns = `id, email, token, role, organization_id, invited_by,
	invited_by_name, first_name, last_name, message, status, expires_at,
	accepted_at, created_at, updated_at`

type invitationsRepo struct {
	q querier
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO invitations (id, email, token, role, organization_id,
			invited_by, invited_by_name, first_name, last_name, message,
			status, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Email, inv.Token, string(inv.Role), inv.OrganizationID,
		inv.InvitedBy, inv.InvitedByName, inv.FirstName, inv.LastName, inv.Message,
		string(inv.Status), inv.ExpiresAt, now, now)
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+invitationColumns+`
		FROM invitations
		WHERE id = ?`, id)
	return scanInvitation(row)
}

func (r *invitationsRepo) GetInvitationByToken(ctx context.Context, token string) (domain.Invitation, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+invitationColumns+`
		FROM invitations
		WHERE token = ?`, token)
	return scanInvitation(row)
}

func (r *invitationsRepo) GetPendingInvitation(ctx context.Context, email, organizationID string) (domain.Invitation, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+invitationColumns+`
		FROM invitations
		WHERE email = ? AND organization_id = ? AND status = 'PENDING'`,
		email, organizationID)
	return scanInvitation(row)
}

func (r *invitationsRepo) ListOrganizationInvitations(
	ctx context.Context,
	organizationID string,
	status domain.InvitationStatus,
) ([]domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE organization_id = ?`
	args := []any{organizationID}

	if status != "" {
		query += ` AND status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitationRows(rows)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

func (r *invitationsRepo) MarkInvitationAccepted(ctx context.Context, id string, acceptedAt time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE invitations
		SET status = 'ACCEPTED', accepted_at = ?, updated_at = ?
		WHERE id = ? AND status = 'PENDING'`,
		acceptedAt, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (r *invitationsRepo) MarkInvitationCancelled(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE invitations
		SET status = 'CANCELLED', updated_at = ?
		WHERE id = ? AND status = 'PENDING'`,
		time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (r *invitationsRepo) DeleteInvitation(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM invitations WHERE id = ?`, id)
	return err
}

func (r *invitationsRepo) ExpireStaleInvitations(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE invitations
		SET status = 'EXPIRED', updated_at = ?
		WHERE status = 'PENDING' AND expires_at < ?`,
		time.Now().UTC(), now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// requireOneRow maps a zero-rows-affected conditional update to ErrNotFound.
// Conditional status flips rely on this to lose races loudly.
func requireOneRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvitation(row *sql.Row) (domain.Invitation, error) {
	return scanInvitationFrom(row)
}

func scanInvitationRows(rows *sql.Rows) (domain.Invitation, error) {
	return scanInvitationFrom(rows)
}

func scanInvitationFrom(s rowScanner) (domain.Invitation, error) {
	var (
		inv      domain.Invitation
		role     string
		status   string
		accepted sql.NullTime
	)
	err := s.Scan(&inv.ID, &inv.Email, &inv.Token, &role, &inv.OrganizationID,
		&inv.InvitedBy, &inv.InvitedByName, &inv.FirstName, &inv.LastName,
		&inv.Message, &status, &inv.ExpiresAt, &accepted, &inv.CreatedAt,
		&inv.UpdatedAt)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	inv.Role = domain.Role(role)
	inv.Status = domain.InvitationStatus(status)
	inv.AcceptedAt = mapNullTimePtr(accepted)
	return inv, nil
}
