package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nomadplanner/planner-api/internal/api/metrics"
	"github.com/nomadplanner/planner-api/internal/core/domain"
	"github.com/nomadplanner/planner-api/internal/core/ports"
)

type BudgetService struct {
	repo   ports.BudgetRepository
	logger zerolog.Logger
}

func NewBudgetService(repo ports.BudgetRepository, logger zerolog.Logger) *BudgetService {
	return &BudgetService{repo: repo, logger: logger}
}

func (s *BudgetService) List(ctx context.Context, userID int64) ([]*domain.BudgetEntry, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list budget entries: %w", err)
	}
	return entries, nil
}

func (s *BudgetService) Get(ctx context.Context, userID, id int64) (*domain.BudgetEntry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get budget entry %d: %w", id, err)
	}
	if entry.UserID != userID {
		return nil, fmt.Errorf("get budget entry %d: %w", id, domain.ErrBudgetEntryNotFound)
	}
	return entry, nil
}

func (s *BudgetService) Create(ctx context.Context, entry *domain.BudgetEntry) (*domain.BudgetEntry, error) {
	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", entry.UserID).Msg("failed to create budget entry")
		return nil, fmt.Errorf("create budget entry: %w", err)
	}
	metrics.RecordsWrittenTotal.WithLabelValues("budget_entry", "create").Inc()
	s.logger.Info().Int64("entry_id", created.ID).Str("category", created.Category).Int64("amount", created.Amount).Msg("budget entry created")
	return created, nil
}

func (s *BudgetService) Update(ctx context.Context, userID, id int64, patch domain.BudgetEntryPatch) (*domain.BudgetEntry, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update budget entry %d: %w", id, err)
	}
	metrics.RecordsWrittenTotal.WithLabelValues("budget_entry", "update").Inc()
	return updated, nil
}
