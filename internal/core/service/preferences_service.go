package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nomadplanner/planner-api/internal/api/metrics"
	"github.com/nomadplanner/planner-api/internal/core/domain"
	"github.com/nomadplanner/planner-api/internal/core/ports"
)

type PreferencesService struct {
	repo   ports.PreferencesRepository
	logger zerolog.Logger
}

func NewPreferencesService(repo ports.PreferencesRepository, logger zerolog.Logger) *PreferencesService {
	return &PreferencesService{repo: repo, logger: logger}
}

func (s *PreferencesService) Get(ctx context.Context, userID int64) (*domain.UserPreferences, error) {
	prefs, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return prefs, nil
}

// Save inserts the user's preferences or merges patch into the existing record.
func (s *PreferencesService) Save(ctx context.Context, userID int64, patch domain.PreferencesPatch) (*domain.UserPreferences, error) {
	prefs, err := s.repo.Upsert(ctx, userID, patch)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to save preferences")
		return nil, fmt.Errorf("save preferences: %w", err)
	}
	metrics.RecordsWrittenTotal.WithLabelValues("preferences", "upsert").Inc()
	return prefs, nil
}
