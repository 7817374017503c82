package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

const prefsColumns = `id, user_id, time_zone, budget_limit, preferred_work_hours, next_destination, next_destination_dates`

// PreferencesRepo implements ports.PreferencesRepository using PostgreSQL.
// Work hours and destination dates are stored as jsonb.
type PreferencesRepo struct{ db *DB }

func NewPreferencesRepo(db *DB) *PreferencesRepo { return &PreferencesRepo{db: db} }

func scanPreferences(row scanner) (*domain.UserPreferences, error) {
	var (
		p            domain.UserPreferences
		hours, dates []byte
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.TimeZone, &p.BudgetLimit, &hours, &p.NextDestination, &dates); err != nil {
		return nil, err
	}
	if len(hours) > 0 {
		if err := json.Unmarshal(hours, &p.PreferredWorkHours); err != nil {
			return nil, fmt.Errorf("decode preferred_work_hours: %w", err)
		}
	}
	if len(dates) > 0 {
		if err := json.Unmarshal(dates, &p.NextDestinationDates); err != nil {
			return nil, fmt.Errorf("decode next_destination_dates: %w", err)
		}
	}
	return &p, nil
}

func (r *PreferencesRepo) FindByUser(ctx context.Context, userID int64) (*domain.UserPreferences, error) {
	p, err := scanPreferences(r.db.Pool.QueryRow(ctx, `SELECT `+prefsColumns+` FROM user_preferences WHERE user_id=$1`, userID))
	if err != nil {
		return nil, notFound(err, "find preferences", domain.ErrPreferencesNotFound)
	}
	return p, nil
}

// Upsert relies on the unique user_id constraint: absent patch fields are
// NULL parameters and keep the stored column.
func (r *PreferencesRepo) Upsert(ctx context.Context, userID int64, patch domain.PreferencesPatch) (*domain.UserPreferences, error) {
	const q = `
INSERT INTO user_preferences (user_id, time_zone, budget_limit, preferred_work_hours, next_destination, next_destination_dates)
VALUES ($1, COALESCE($2, ''), $3, $4::jsonb, COALESCE($5, ''), $6::jsonb)
ON CONFLICT (user_id) DO UPDATE SET
    time_zone              = COALESCE($2, user_preferences.time_zone),
    budget_limit           = COALESCE($3, user_preferences.budget_limit),
    preferred_work_hours   = COALESCE($4::jsonb, user_preferences.preferred_work_hours),
    next_destination       = COALESCE($5, user_preferences.next_destination),
    next_destination_dates = COALESCE($6::jsonb, user_preferences.next_destination_dates)
RETURNING ` + prefsColumns

	var hours, dates []byte
	var err error
	if patch.PreferredWorkHours != nil {
		if hours, err = json.Marshal(patch.PreferredWorkHours); err != nil {
			return nil, fmt.Errorf("encode preferred_work_hours: %w", err)
		}
	}
	if patch.NextDestinationDates != nil {
		if dates, err = json.Marshal(patch.NextDestinationDates); err != nil {
			return nil, fmt.Errorf("encode next_destination_dates: %w", err)
		}
	}

	p, err := scanPreferences(r.db.Pool.QueryRow(ctx, q, userID,
		patch.TimeZone, patch.BudgetLimit, hours, patch.NextDestination, dates))
	if err != nil {
		return nil, fmt.Errorf("upsert preferences: %w", err)
	}
	return p, nil
}
