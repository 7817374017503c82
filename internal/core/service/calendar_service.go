package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nomadplanner/planner-api/internal/api/metrics"
	"github.com/nomadplanner/planner-api/internal/core/domain"
	"github.com/nomadplanner/planner-api/internal/core/ports"
)

type CalendarService struct {
	repo   ports.CalendarRepository
	logger zerolog.Logger
}

func NewCalendarService(repo ports.CalendarRepository, logger zerolog.Logger) *CalendarService {
	return &CalendarService{repo: repo, logger: logger}
}

func (s *CalendarService) List(ctx context.Context, userID int64) ([]*domain.CalendarEvent, error) {
	events, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	return events, nil
}

// Get returns ErrEventNotFound for events of other users.
func (s *CalendarService) Get(ctx context.Context, userID, id int64) (*domain.CalendarEvent, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get calendar event %d: %w", id, err)
	}
	if event.UserID != userID {
		return nil, fmt.Errorf("get calendar event %d: %w", id, domain.ErrEventNotFound)
	}
	return event, nil
}

func (s *CalendarService) Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	created, err := s.repo.Create(ctx, event)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", event.UserID).Msg("failed to create calendar event")
		return nil, fmt.Errorf("create calendar event: %w", err)
	}
	metrics.RecordsWrittenTotal.WithLabelValues("calendar_event", "create").Inc()
	s.logger.Info().Int64("event_id", created.ID).Int64("user_id", created.UserID).Msg("calendar event created")
	return created, nil
}

func (s *CalendarService) Update(ctx context.Context, userID, id int64, patch domain.CalendarEventPatch) (*domain.CalendarEvent, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update calendar event %d: %w", id, err)
	}
	metrics.RecordsWrittenTotal.WithLabelValues("calendar_event", "update").Inc()
	return updated, nil
}

func (s *CalendarService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete calendar event %d: %w", id, err)
	}
	if !deleted {
		return fmt.Errorf("delete calendar event %d: %w", id, domain.ErrEventNotFound)
	}
	metrics.RecordsWrittenTotal.WithLabelValues("calendar_event", "delete").Inc()
	s.logger.Info().Int64("event_id", id).Int64("user_id", userID).Msg("calendar event deleted")
	return nil
}
