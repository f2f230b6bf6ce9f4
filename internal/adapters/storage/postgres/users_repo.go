package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-journal/internal/domain/users"
	"pet-care-journal/internal/platform/apperr"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `id, username, password_hash, email, role, created_at, updated_at`

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		u.ID,
		u.Username,
		u.PasswordHash,
		u.Email,
		string(u.Role),
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		return mapUnique(err, apperr.Duplicate(u.Username+" is duplicated"))
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id, ok := lookupID(id)
	if !ok {
		return users.User{}, ErrNotFound
	}
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return users.User{}, ErrNotFound
	}
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UsersRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
		strings.TrimSpace(username),
	).Scan(&exists)
	return exists, err
}

func (r *UsersRepo) getOne(ctx context.Context, query string, arg string) (users.User, error) {
	var u users.User
	var role string
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Email,
		&role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, ErrNotFound
		}
		return users.User{}, err
	}
	u.Role = users.Role(role)
	return u, nil
}
