package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nomadplanner/planner-api/internal/core/domain"
	"github.com/nomadplanner/planner-api/internal/core/ports"
)

// ConversationService reads and records the AI history of a user.
type ConversationService struct {
	repo   ports.ConversationRepository
	logger zerolog.Logger
}

func NewConversationService(repo ports.ConversationRepository, logger zerolog.Logger) *ConversationService {
	return &ConversationService{repo: repo, logger: logger}
}

func (s *ConversationService) List(ctx context.Context, userID int64, module string) ([]*domain.AiConversation, error) {
	convs, err := s.repo.ListByUserModule(ctx, userID, module)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return convs, nil
}

// Record appends ex to the most recent conversation of (user, module), or
// starts a new conversation when there is none.
func (s *ConversationService) Record(ctx context.Context, ex ports.Exchange) error {
	if len(ex.Messages) == 0 {
		return nil
	}
	convs, err := s.repo.ListByUserModule(ctx, ex.UserID, ex.Module)
	if err != nil {
		return fmt.Errorf("record exchange: %w", err)
	}

	if n := len(convs); n > 0 {
		if _, err := s.repo.AppendMessages(ctx, convs[n-1].ID, ex.Messages); err != nil {
			return fmt.Errorf("record exchange: append to %d: %w", convs[n-1].ID, err)
		}
		return nil
	}

	createdAt := ex.Messages[0].CreatedAt
	conv, err := s.repo.Create(ctx, &domain.AiConversation{
		UserID:    ex.UserID,
		Module:    ex.Module,
		Messages:  ex.Messages,
		CreatedAt: createdAt,
	})
	if err != nil {
		return fmt.Errorf("record exchange: create: %w", err)
	}
	s.logger.Debug().Int64("conversation_id", conv.ID).Str("module", ex.Module).Msg("conversation started")
	return nil
}
