package sqlite

import (
	"context"
	"time"

	"github.com/comodin-ia/invites/internal/invites/domain"
)

type credentialsRepo struct {
	q querier
}

func (r *credentialsRepo) CreateCredential(ctx context.Context, c domain.Credential) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO credentials (id, user_id, password_hash, created_at)
		VALUES (?, ?, ?, ?)`,
		c.ID, c.UserID, c.PasswordHash, time.Now().UTC())
	return mapConstraint(err)
}

func (r *credentialsRepo) GetCredentialByUserID(ctx context.Context, userID string) (domain.Credential, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, password_hash, created_at
		FROM credentials
		WHERE user_id = ?`, userID)

	var c domain.Credential
	err := row.Scan(&c.ID, &c.UserID, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		return domain.Credential{}, mapNotFound(err)
	}
	return c, nil
}
