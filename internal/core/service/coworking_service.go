package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nomadplanner/planner-api/internal/api/metrics"
	"github.com/nomadplanner/planner-api/internal/core/domain"
	"github.com/nomadplanner/planner-api/internal/core/ports"
)

type CoworkingService struct {
	repo   ports.CoworkingRepository
	logger zerolog.Logger
}

func NewCoworkingService(repo ports.CoworkingRepository, logger zerolog.Logger) *CoworkingService {
	return &CoworkingService{repo: repo, logger: logger}
}

func (s *CoworkingService) List(ctx context.Context, userID int64) ([]*domain.CoworkingSpace, error) {
	spaces, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list coworking spaces: %w", err)
	}
	return spaces, nil
}

func (s *CoworkingService) Get(ctx context.Context, userID, id int64) (*domain.CoworkingSpace, error) {
	space, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get coworking space %d: %w", id, err)
	}
	if space.UserID != userID {
		return nil, fmt.Errorf("get coworking space %d: %w", id, domain.ErrSpaceNotFound)
	}
	return space, nil
}

func (s *CoworkingService) Create(ctx context.Context, space *domain.CoworkingSpace) (*domain.CoworkingSpace, error) {
	if space.Amenities == nil {
		space.Amenities = []string{}
	}
	created, err := s.repo.Create(ctx, space)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", space.UserID).Msg("failed to create coworking space")
		return nil, fmt.Errorf("create coworking space: %w", err)
	}
	metrics.RecordsWrittenTotal.WithLabelValues("coworking_space", "create").Inc()
	s.logger.Info().Int64("space_id", created.ID).Str("name", created.Name).Msg("coworking space saved")
	return created, nil
}
