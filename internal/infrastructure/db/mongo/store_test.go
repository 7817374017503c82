package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

func counterResponse(seq int64) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
		{Key: "_id", Value: "x"},
		{Key: "seq", Value: seq},
	}})
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns sequence id", func(mt *mtest.T) {
		repo := NewUserRepository(NewStore(mt.DB))
		mt.AddMockResponses(counterResponse(7), mtest.CreateSuccessResponse())

		u, err := repo.Create(context.Background(), &domain.User{Username: "alex", PasswordHash: "h"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if u.ID != 7 || u.Username != "alex" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	mt.Run("duplicate username", func(mt *mtest.T) {
		repo := NewUserRepository(NewStore(mt.DB))
		mt.AddMockResponses(counterResponse(2), mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key error",
		}))

		if _, err := repo.Create(context.Background(), &domain.User{Username: "alex"}); !errors.Is(err, domain.ErrUserExists) {
			t.Fatalf("expected ErrUserExists, got %v", err)
		}
	})

	mt.Run("find by username", func(mt *mtest.T) {
		repo := NewUserRepository(NewStore(mt.DB))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: int64(1)},
			{Key: "username", Value: "alexmorgan"},
			{Key: "full_name", Value: "Alex Morgan"},
		}))

		u, err := repo.FindByUsername(context.Background(), "alexmorgan")
		if err != nil {
			t.Fatalf("FindByUsername: %v", err)
		}
		if u.ID != 1 || u.FullName != "Alex Morgan" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	mt.Run("missing user", func(mt *mtest.T) {
		repo := NewUserRepository(NewStore(mt.DB))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch))

		if _, err := repo.FindByID(context.Background(), 42); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestCalendarRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	start := time.Date(2025, 3, 15, 3, 30, 0, 0, time.UTC)

	mt.Run("list by user", func(mt *mtest.T) {
		repo := NewCalendarRepository(NewStore(mt.DB))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.calendar_events", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: int64(1)}, {Key: "user_id", Value: int64(1)}, {Key: "title", Value: "Standup"}, {Key: "start_time", Value: start}, {Key: "event_type", Value: "work"}},
			bson.D{{Key: "_id", Value: int64(2)}, {Key: "user_id", Value: int64(1)}, {Key: "title", Value: "Flight"}, {Key: "event_type", Value: "travel"}},
		))

		events, err := repo.ListByUser(context.Background(), 1)
		if err != nil {
			t.Fatalf("ListByUser: %v", err)
		}
		if len(events) != 2 || events[0].Title != "Standup" || events[1].EventType != domain.EventTypeTravel {
			t.Fatalf("unexpected events: %+v", events)
		}
		if !events[0].StartTime.Equal(start) {
			t.Fatalf("start time: %v", events[0].StartTime)
		}
	})

	mt.Run("empty list is not nil", func(mt *mtest.T) {
		repo := NewCalendarRepository(NewStore(mt.DB))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.calendar_events", mtest.FirstBatch))

		events, err := repo.ListByUser(context.Background(), 9)
		if err != nil || events == nil || len(events) != 0 {
			t.Fatalf("expected empty slice, got %v, %v", events, err)
		}
	})

	mt.Run("update returns merged document", func(mt *mtest.T) {
		repo := NewCalendarRepository(NewStore(mt.DB))
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: int64(3)},
			{Key: "user_id", Value: int64(1)},
			{Key: "title", Value: "Renamed"},
			{Key: "is_conflict", Value: true},
		}}))

		title, conflict := "Renamed", true
		e, err := repo.Update(context.Background(), 3, domain.CalendarEventPatch{Title: &title, IsConflict: &conflict})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if e.Title != "Renamed" || !e.IsConflict {
			t.Fatalf("unexpected event: %+v", e)
		}
	})

	mt.Run("update missing", func(mt *mtest.T) {
		repo := NewCalendarRepository(NewStore(mt.DB))
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		title := "x"
		if _, err := repo.Update(context.Background(), 99, domain.CalendarEventPatch{Title: &title}); !errors.Is(err, domain.ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})

	mt.Run("delete reports existence", func(mt *mtest.T) {
		repo := NewCalendarRepository(NewStore(mt.DB))
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		ok, err := repo.Delete(context.Background(), 1)
		if err != nil || !ok {
			t.Fatalf("first delete: %v, %v", ok, err)
		}
		ok, err = repo.Delete(context.Background(), 1)
		if err != nil || ok {
			t.Fatalf("second delete: %v, %v", ok, err)
		}
	})
}

func TestCoworkingRepository_DefaultsAmenities(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find without amenities", func(mt *mtest.T) {
		repo := NewCoworkingRepository(NewStore(mt.DB))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.coworking_spaces", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: int64(1)},
			{Key: "user_id", Value: int64(1)},
			{Key: "name", Value: "Hub"},
		}))

		s, err := repo.FindByID(context.Background(), 1)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if s.Amenities == nil {
			t.Fatalf("expected non-nil amenities")
		}
	})
}

func TestPreferencesRepository_Upsert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inserts when absent", func(mt *mtest.T) {
		repo := NewPreferencesRepository(NewStore(mt.DB))
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "test.user_preferences", mtest.FirstBatch),
			counterResponse(1),
			mtest.CreateSuccessResponse(),
		)

		tz := "Asia/Kolkata"
		p, err := repo.Upsert(context.Background(), 5, domain.PreferencesPatch{TimeZone: &tz})
		if err != nil {
			t.Fatalf("Upsert: %v", err)
		}
		if p.ID != 1 || p.UserID != 5 || p.TimeZone != tz {
			t.Fatalf("unexpected preferences: %+v", p)
		}
	})

	mt.Run("merges when present", func(mt *mtest.T) {
		repo := NewPreferencesRepository(NewStore(mt.DB))
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "test.user_preferences", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: int64(4)},
				{Key: "user_id", Value: int64(5)},
				{Key: "time_zone", Value: "UTC"},
			}),
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
				{Key: "_id", Value: int64(4)},
				{Key: "user_id", Value: int64(5)},
				{Key: "time_zone", Value: "UTC"},
				{Key: "budget_limit", Value: int64(3000)},
			}}),
		)

		limit := int64(3000)
		p, err := repo.Upsert(context.Background(), 5, domain.PreferencesPatch{BudgetLimit: &limit})
		if err != nil {
			t.Fatalf("Upsert: %v", err)
		}
		if p.ID != 4 || p.TimeZone != "UTC" || p.BudgetLimit == nil || *p.BudgetLimit != 3000 {
			t.Fatalf("unexpected preferences: %+v", p)
		}
	})
}

func TestConversationRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create defaults messages", func(mt *mtest.T) {
		repo := NewConversationRepository(NewStore(mt.DB))
		mt.AddMockResponses(counterResponse(3), mtest.CreateSuccessResponse())

		c, err := repo.Create(context.Background(), &domain.AiConversation{UserID: 1, Module: domain.ModuleBudget})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if c.ID != 3 || c.Messages == nil {
			t.Fatalf("unexpected conversation: %+v", c)
		}
	})

	mt.Run("append missing conversation", func(mt *mtest.T) {
		repo := NewConversationRepository(NewStore(mt.DB))
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.AppendMessages(context.Background(), 8, []domain.ConversationMessage{{Role: domain.RoleUser, Content: "hi"}})
		if !errors.Is(err, domain.ErrConversationNotFound) {
			t.Fatalf("expected ErrConversationNotFound, got %v", err)
		}
	})
}
