package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/google/uuid"
)

type IdentityRepo struct {
	db *sql.DB
}

func NewIdentityRepo(db *sql.DB) *IdentityRepo {
	return &IdentityRepo{db: db}
}

func (r *IdentityRepo) CreateIdentity(ctx context.Context, identity *domain.Identity) error {
	if identity.ID == uuid.Nil {
		return domain.ErrInvalidUserID
	}
	exec := GetExecutor(ctx, r.db)
	_, err := exec.ExecContext(ctx, `
		INSERT INTO identities (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`,
		identity.ID,
		identity.Email,
		identity.PasswordHash,
		identity.CreatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrIdentityExists
	}
	return err
}

func (r *IdentityRepo) GetIdentityByID(ctx context.Context, id uuid.UUID) (*domain.Identity, error) {
	if id == uuid.Nil {
		return nil, domain.ErrInvalidUserID
	}
	exec := GetExecutor(ctx, r.db)
	row := exec.QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at
		FROM identities
		WHERE id = $1
	`, id)
	return scanIdentity(row)
}

func (r *IdentityRepo) GetIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.ErrInvalidCredentials
	}
	exec := GetExecutor(ctx, r.db)
	row := exec.QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at
		FROM identities
		WHERE email = $1
	`, email)
	return scanIdentity(row)
}

func scanIdentity(row *sql.Row) (*domain.Identity, error) {
	var identity domain.Identity
	err := row.Scan(
		&identity.ID,
		&identity.Email,
		&identity.PasswordHash,
		&identity.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &identity, nil
}
