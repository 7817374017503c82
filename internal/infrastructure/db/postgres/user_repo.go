package postgres

import (
	"context"
	"fmt"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

const userColumns = `id, username, password_hash, full_name, current_location, profile_image`

// UserRepo implements ports.UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

func scanUser(row scanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.CurrentLocation, &u.ProfileImage); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(r.db.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
	if err != nil {
		return nil, notFound(err, "find user", domain.ErrUserNotFound)
	}
	return u, nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := scanUser(r.db.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username=$1`, username))
	if err != nil {
		return nil, notFound(err, "find user by username", domain.ErrUserNotFound)
	}
	return u, nil
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (username, password_hash, full_name, current_location, profile_image)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + userColumns
	u, err := scanUser(r.db.Pool.QueryRow(ctx, q,
		user.Username, user.PasswordHash, user.FullName, user.CurrentLocation, user.ProfileImage))
	if isUniqueViolation(err) {
		return nil, domain.ErrUserExists
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
