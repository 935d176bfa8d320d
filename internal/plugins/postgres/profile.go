package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ProfileRepo struct {
	db  *sql.DB
	dbx *sqlx.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{
		db:  db,
		dbx: sqlx.NewDb(db, "pgx"),
	}
}

const userProjection = `
	SELECT id, full_name AS name, COALESCE(avatar, '') AS avatar
	FROM profiles`

func (r *ProfileRepo) CreateProfile(ctx context.Context, p *domain.Profile) error {
	if p.ID == uuid.Nil {
		return domain.ErrInvalidUserID
	}
	exec := GetExecutor(ctx, r.db)
	_, err := exec.ExecContext(ctx, `
		INSERT INTO profiles (id, full_name, user_name, email, gender, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
	`,
		p.ID,
		p.FullName,
		p.UserName,
		p.Email,
		p.Gender,
		p.Avatar,
		p.CreatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrProfileExists
	}
	return err
}

func (r *ProfileRepo) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if id == uuid.Nil {
		return nil, domain.ErrInvalidUserID
	}
	var u domain.User
	err := r.dbx.GetContext(ctx, &u, userProjection+` WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns every profile except exclude, ordered by name.
func (r *ProfileRepo) ListUsers(ctx context.Context, exclude uuid.UUID) ([]domain.User, error) {
	users := []domain.User{}
	err := r.dbx.SelectContext(ctx, &users,
		userProjection+` WHERE id <> $1 ORDER BY full_name ASC, id ASC`, exclude)
	if err != nil {
		return nil, err
	}
	return users, nil
}
