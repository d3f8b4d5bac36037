package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/comodin-ia/invites/internal/invites/domain"
)

const userColumns = `id, email, name, full_name, phone, country, role,
	organization_id, email_verified, created_at, updated_at`

type usersRepo struct {
	q querier
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmailInOrganization(ctx context.Context, email, organizationID string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = ? AND organization_id = ?`, email, organizationID)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, email, name, full_name, phone, country, role,
			organization_id, email_verified, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.FullName, u.Phone, u.Country, string(u.Role),
		u.OrganizationID, mapOptionalTime(u.EmailVerified), now, now)
	return mapConstraint(err)
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u        domain.User
		role     string
		verified sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.FullName, &u.Phone, &u.Country,
		&role, &u.OrganizationID, &verified, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Role = domain.Role(role)
	u.EmailVerified = mapNullTimePtr(verified)
	return u, nil
}
