package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

var eventCols = []string{"id", "user_id", "title", "description", "start_time", "end_time", "location", "event_type", "is_conflict"}

func TestUserRepo_Create_OK_and_UniqueViolation(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	u := &domain.User{Username: "alexmorgan", PasswordHash: "h", FullName: "Alex Morgan", CurrentLocation: "Bangalore, India"}

	mock.ExpectQuery(`INSERT INTO users \(username, password_hash, full_name, current_location, profile_image\) VALUES \(\$1, \$2, \$3, \$4, \$5\) RETURNING`).
		WithArgs(u.Username, u.PasswordHash, u.FullName, u.CurrentLocation, u.ProfileImage).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "full_name", "current_location", "profile_image"}).
			AddRow(int64(1), u.Username, u.PasswordHash, u.FullName, u.CurrentLocation, ""))
	created, err := r.Create(ctx, u)
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(u.Username, u.PasswordHash, u.FullName, u.CurrentLocation, u.ProfileImage).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	_, err = r.Create(ctx, u)
	require.ErrorIs(t, err, domain.ErrUserExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_FindByUsername_NotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)

	mock.ExpectQuery(`SELECT .* FROM users WHERE username=\$1`).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)
	_, err := r.FindByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCalendarRepo_ListByUser(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCalendarRepo(db)
	start := time.Date(2025, 3, 15, 3, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM calendar_events WHERE user_id=\$1 ORDER BY id`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(eventCols).
			AddRow(int64(1), int64(1), "Team Weekly Sync", "Regular team meeting", start, start.Add(time.Hour), "Zoom", "work", false).
			AddRow(int64(2), int64(1), "Train to Mumbai", "", start.Add(4*time.Hour), start.Add(8*time.Hour), "", "travel", false))

	events, err := r.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, domain.EventTypeTravel, events[1].EventType)
	require.Equal(t, "Zoom", events[0].Location)
}

func TestCalendarRepo_ListByUser_Empty(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCalendarRepo(db)

	mock.ExpectQuery(`SELECT .* FROM calendar_events WHERE user_id=\$1`).
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows(eventCols))

	events, err := r.ListByUser(context.Background(), 9)
	require.NoError(t, err)
	require.NotNil(t, events)
	require.Empty(t, events)
}

func TestCalendarRepo_Update(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCalendarRepo(db)
	start := time.Date(2025, 4, 15, 11, 30, 0, 0, time.UTC)
	conflict := true

	mock.ExpectQuery(`UPDATE calendar_events SET .* WHERE id = \$1 RETURNING`).
		WithArgs(int64(4), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(eventCols).
			AddRow(int64(4), int64(1), "Flight to Goa", "", start, start.Add(2*time.Hour), "BLR", "travel", true))
	e, err := r.Update(context.Background(), 4, domain.CalendarEventPatch{IsConflict: &conflict})
	require.NoError(t, err)
	require.True(t, e.IsConflict)
	require.Equal(t, "Flight to Goa", e.Title)

	mock.ExpectQuery(`UPDATE calendar_events SET`).
		WithArgs(int64(99), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.Update(context.Background(), 99, domain.CalendarEventPatch{IsConflict: &conflict})
	require.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestCalendarRepo_Delete(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCalendarRepo(db)

	mock.ExpectExec(`DELETE FROM calendar_events WHERE id=\$1`).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	ok, err := r.Delete(context.Background(), 3)
	require.NoError(t, err)
	require.True(t, ok)

	mock.ExpectExec(`DELETE FROM calendar_events WHERE id=\$1`).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	ok, err = r.Delete(context.Background(), 3)
	require.NoError(t, err)
	require.False(t, ok)

	mock.ExpectExec(`DELETE FROM calendar_events`).
		WithArgs(int64(3)).
		WillReturnError(errors.New("conn reset"))
	_, err = r.Delete(context.Background(), 3)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCoworkingRepo_Create(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCoworkingRepo(db)
	in := &domain.CoworkingSpace{UserID: 1, Name: "91springboard", Location: "Koramangala, Bangalore", Price: "₹650/day", Rating: "4.5", InternetSpeed: "200 Mbps"}

	mock.ExpectQuery(`INSERT INTO coworking_spaces`).
		WithArgs(in.UserID, in.Name, in.Location, in.Price, in.Rating, []string{}, in.InternetSpeed).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "location", "price", "rating", "amenities", "internet_speed"}).
			AddRow(int64(2), int64(1), in.Name, in.Location, in.Price, in.Rating, []string{}, in.InternetSpeed))

	s, err := r.Create(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, int64(2), s.ID)
	require.NotNil(t, s.Amenities)
}

func TestBudgetRepo_FindByID_NotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewBudgetRepo(db)

	mock.ExpectQuery(`SELECT .* FROM budget_entries WHERE id=\$1`).
		WithArgs(int64(8)).
		WillReturnError(pgx.ErrNoRows)
	_, err := r.FindByID(context.Background(), 8)
	require.ErrorIs(t, err, domain.ErrBudgetEntryNotFound)
}

func TestBudgetRepo_Create(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewBudgetRepo(db)
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO budget_entries`).
		WithArgs(int64(1), int64(50), "food", "", date, false).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "amount", "category", "description", "date", "is_work_related"}).
			AddRow(int64(1), int64(1), int64(50), "food", "", date, false))

	b, err := r.Create(context.Background(), &domain.BudgetEntry{UserID: 1, Amount: 50, Category: "food", Date: date})
	require.NoError(t, err)
	require.Equal(t, int64(1), b.ID)
	require.Equal(t, int64(50), b.Amount)
}

func TestPreferencesRepo_Upsert(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewPreferencesRepo(db)

	tz := "Asia/Kolkata"
	limit := int64(2500)
	hours := domain.WorkHours{"friday": {Start: "09:00", End: "13:00"}}
	hoursJSON, _ := json.Marshal(hours)

	mock.ExpectQuery(`INSERT INTO user_preferences .* ON CONFLICT \(user_id\) DO UPDATE SET`).
		WithArgs(int64(1), &tz, &limit, hoursJSON, (*string)(nil), []byte(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "time_zone", "budget_limit", "preferred_work_hours", "next_destination", "next_destination_dates"}).
			AddRow(int64(1), int64(1), tz, &limit, hoursJSON, "Goa, India", []byte(`{"start":"2025-04-15","end":"2025-06-20"}`)))

	p, err := r.Upsert(context.Background(), 1, domain.PreferencesPatch{TimeZone: &tz, BudgetLimit: &limit, PreferredWorkHours: hours})
	require.NoError(t, err)
	require.Equal(t, "Asia/Kolkata", p.TimeZone)
	require.Equal(t, int64(2500), *p.BudgetLimit)
	require.Equal(t, "13:00", p.PreferredWorkHours["friday"].End)
	require.Equal(t, "Goa, India", p.NextDestination)
	require.Equal(t, "2025-06-20", p.NextDestinationDates.End)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferencesRepo_FindByUser(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewPreferencesRepo(db)

	mock.ExpectQuery(`SELECT .* FROM user_preferences WHERE user_id=\$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "time_zone", "budget_limit", "preferred_work_hours", "next_destination", "next_destination_dates"}).
			AddRow(int64(1), int64(1), "UTC", nil, nil, "", nil))
	p, err := r.FindByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Nil(t, p.BudgetLimit)
	require.Nil(t, p.PreferredWorkHours)
	require.Nil(t, p.NextDestinationDates)

	mock.ExpectQuery(`SELECT .* FROM user_preferences WHERE user_id=\$1`).
		WithArgs(int64(2)).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.FindByUser(context.Background(), 2)
	require.ErrorIs(t, err, domain.ErrPreferencesNotFound)
}

func TestConversationRepo_AppendMessages(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewConversationRepo(db)
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	msgs := []domain.ConversationMessage{{Role: domain.RoleAssistant, Content: "{}", CreatedAt: now}}
	stored, _ := json.Marshal(append([]domain.ConversationMessage{{Role: domain.RoleUser, Content: "hi", CreatedAt: now}}, msgs...))

	mock.ExpectQuery(`UPDATE ai_conversations SET messages = messages \|\| \$2::jsonb WHERE id=\$1`).
		WithArgs(int64(5), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "module", "messages", "created_at"}).
			AddRow(int64(5), int64(1), "assistant", stored, now))

	c, err := r.AppendMessages(context.Background(), 5, msgs)
	require.NoError(t, err)
	require.Len(t, c.Messages, 2)
	require.Equal(t, domain.RoleUser, c.Messages[0].Role)

	mock.ExpectQuery(`UPDATE ai_conversations`).
		WithArgs(int64(6), pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.AppendMessages(context.Background(), 6, msgs)
	require.ErrorIs(t, err, domain.ErrConversationNotFound)
}

func TestConversationRepo_ListByUserModule(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewConversationRepo(db)
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM ai_conversations WHERE user_id=\$1 AND \(\$2 = '' OR module = \$2\) ORDER BY id`).
		WithArgs(int64(1), "budget").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "module", "messages", "created_at"}).
			AddRow(int64(1), int64(1), "budget", []byte(`[]`), now))

	convs, err := r.ListByUserModule(context.Background(), 1, "budget")
	require.NoError(t, err)
	require.Len(t, convs, 1)
	require.Empty(t, convs[0].Messages)
}
