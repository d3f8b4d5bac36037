package sqlite

import (
	"context"
	"time"

	"github.com/comodin-ia/invites/internal/invites/domain"
)

type organizationsRepo struct {
	q querier
}

func (r *organizationsRepo) GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, name, slug, created_at, updated_at
		FROM organizations
		WHERE id = ?`, id)

	var o domain.Organization
	err := row.Scan(&o.ID, &o.Name, &o.Slug, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return domain.Organization{}, mapNotFound(err)
	}
	return o, nil
}

func (r *organizationsRepo) CreateOrganization(ctx context.Context, o domain.Organization) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO organizations (id, name, slug, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		o.ID, o.Name, o.Slug, now, now)
	return mapConstraint(err)
}

func (r *organizationsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM organizations`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
