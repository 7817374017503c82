package postgres

import (
	"context"
	"fmt"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

const spaceColumns = `id, user_id, name, location, price, rating, amenities, internet_speed`

// CoworkingRepo implements ports.CoworkingRepository using PostgreSQL.
type CoworkingRepo struct{ db *DB }

func NewCoworkingRepo(db *DB) *CoworkingRepo { return &CoworkingRepo{db: db} }

func scanSpace(row scanner) (*domain.CoworkingSpace, error) {
	var s domain.CoworkingSpace
	if err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Location, &s.Price, &s.Rating, &s.Amenities, &s.InternetSpeed); err != nil {
		return nil, err
	}
	if s.Amenities == nil {
		s.Amenities = []string{}
	}
	return &s, nil
}

func (r *CoworkingRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.CoworkingSpace, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+spaceColumns+` FROM coworking_spaces WHERE user_id=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list coworking spaces: %w", err)
	}
	defer rows.Close()

	spaces := make([]*domain.CoworkingSpace, 0)
	for rows.Next() {
		s, err := scanSpace(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coworking space: %w", err)
		}
		spaces = append(spaces, s)
	}
	return spaces, rows.Err()
}

func (r *CoworkingRepo) FindByID(ctx context.Context, id int64) (*domain.CoworkingSpace, error) {
	s, err := scanSpace(r.db.Pool.QueryRow(ctx, `SELECT `+spaceColumns+` FROM coworking_spaces WHERE id=$1`, id))
	if err != nil {
		return nil, notFound(err, "find coworking space", domain.ErrSpaceNotFound)
	}
	return s, nil
}

func (r *CoworkingRepo) Create(ctx context.Context, space *domain.CoworkingSpace) (*domain.CoworkingSpace, error) {
	const q = `
INSERT INTO coworking_spaces (user_id, name, location, price, rating, amenities, internet_speed)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + spaceColumns
	amenities := space.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	s, err := scanSpace(r.db.Pool.QueryRow(ctx, q,
		space.UserID, space.Name, space.Location, space.Price, space.Rating, amenities, space.InternetSpeed))
	if err != nil {
		return nil, fmt.Errorf("create coworking space: %w", err)
	}
	return s, nil
}
