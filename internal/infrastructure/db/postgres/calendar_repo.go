package postgres

import (
	"context"
	"fmt"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

const eventColumns = `id, user_id, title, description, start_time, end_time, location, event_type, is_conflict`

// CalendarRepo implements ports.CalendarRepository using PostgreSQL.
type CalendarRepo struct{ db *DB }

func NewCalendarRepo(db *DB) *CalendarRepo { return &CalendarRepo{db: db} }

func scanEvent(row scanner) (*domain.CalendarEvent, error) {
	var (
		e         domain.CalendarEvent
		eventType string
	)
	if err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.StartTime, &e.EndTime, &e.Location, &eventType, &e.IsConflict); err != nil {
		return nil, err
	}
	e.EventType = domain.EventType(eventType)
	return &e, nil
}

func (r *CalendarRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.CalendarEvent, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+eventColumns+` FROM calendar_events WHERE user_id=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.CalendarEvent, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan calendar event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *CalendarRepo) FindByID(ctx context.Context, id int64) (*domain.CalendarEvent, error) {
	e, err := scanEvent(r.db.Pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM calendar_events WHERE id=$1`, id))
	if err != nil {
		return nil, notFound(err, "find calendar event", domain.ErrEventNotFound)
	}
	return e, nil
}

func (r *CalendarRepo) Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	const q = `
INSERT INTO calendar_events (user_id, title, description, start_time, end_time, location, event_type, is_conflict)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + eventColumns
	e, err := scanEvent(r.db.Pool.QueryRow(ctx, q,
		event.UserID, event.Title, event.Description, event.StartTime, event.EndTime,
		event.Location, string(event.EventType), event.IsConflict))
	if err != nil {
		return nil, fmt.Errorf("create calendar event: %w", err)
	}
	return e, nil
}

// Update sets only the columns present in patch.
func (r *CalendarRepo) Update(ctx context.Context, id int64, patch domain.CalendarEventPatch) (*domain.CalendarEvent, error) {
	const q = `
UPDATE calendar_events SET
    user_id     = COALESCE($2, user_id),
    title       = COALESCE($3, title),
    description = COALESCE($4, description),
    start_time  = COALESCE($5, start_time),
    end_time    = COALESCE($6, end_time),
    location    = COALESCE($7, location),
    event_type  = COALESCE($8, event_type),
    is_conflict = COALESCE($9, is_conflict)
WHERE id = $1
RETURNING ` + eventColumns
	var eventType *string
	if patch.EventType != nil {
		s := string(*patch.EventType)
		eventType = &s
	}
	e, err := scanEvent(r.db.Pool.QueryRow(ctx, q, id,
		patch.UserID, patch.Title, patch.Description, patch.StartTime, patch.EndTime,
		patch.Location, eventType, patch.IsConflict))
	if err != nil {
		return nil, notFound(err, "update calendar event", domain.ErrEventNotFound)
	}
	return e, nil
}

func (r *CalendarRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM calendar_events WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("delete calendar event: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
