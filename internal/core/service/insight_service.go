package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nomadplanner/planner-api/internal/api/metrics"
	"github.com/nomadplanner/planner-api/internal/core/domain"
	"github.com/nomadplanner/planner-api/internal/core/ports"
)

// InsightService builds a prompt per module, forwards it to the AI
// collaborator and returns the answer untouched. Cache and recorder are
// optional.
type InsightService struct {
	ai       ports.Classifier
	repos    ports.Repositories
	cache    ports.ResponseCache
	cacheTTL time.Duration
	recorder ports.ConversationRecorder
	logger   zerolog.Logger
	now      func() time.Time
}

// InsightOption customizes an InsightService.
type InsightOption func(*InsightService)

// WithResponseCache serves repeated prompts from cache for ttl.
func WithResponseCache(cache ports.ResponseCache, ttl time.Duration) InsightOption {
	return func(s *InsightService) {
		if cache != nil && ttl > 0 {
			s.cache = cache
			s.cacheTTL = ttl
		}
	}
}

// WithRecorder keeps a history of every answered exchange.
func WithRecorder(r ports.ConversationRecorder) InsightOption {
	return func(s *InsightService) { s.recorder = r }
}

func NewInsightService(ai ports.Classifier, repos ports.Repositories, logger zerolog.Logger, opts ...InsightOption) *InsightService {
	s := &InsightService{
		ai:     ai,
		repos:  repos,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type eventSummary struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	StartTime   time.Time        `json:"startTime"`
	EndTime     time.Time        `json:"endTime"`
	Location    string           `json:"location,omitempty"`
	EventType   domain.EventType `json:"eventType"`
}

func (s *InsightService) AnalyzeCalendar(ctx context.Context, userID int64) (json.RawMessage, error) {
	events, err := s.repos.Calendar.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("analyze calendar: %w", err)
	}
	summary := make([]eventSummary, 0, len(events))
	for _, e := range events {
		summary = append(summary, eventSummary{
			ID: e.ID, Title: e.Title, Description: e.Description,
			StartTime: e.StartTime, EndTime: e.EndTime, Location: e.Location, EventType: e.EventType,
		})
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("analyze calendar: %w", err)
	}
	return s.ask(ctx, userID, domain.ModuleCalendar, fmt.Sprintf(calendarPrompt, data), string(data))
}

func (s *InsightService) RecommendCoworking(ctx context.Context, userID int64, criteria json.RawMessage) (json.RawMessage, error) {
	return s.ask(ctx, userID, domain.ModuleCoworking, fmt.Sprintf(coworkingPrompt, criteria), string(criteria))
}

func (s *InsightService) RecommendTimeZone(ctx context.Context, userID int64, teamInfo json.RawMessage) (json.RawMessage, error) {
	return s.ask(ctx, userID, domain.ModuleTimeZone, fmt.Sprintf(timeZonePrompt, teamInfo), string(teamInfo))
}

type expenseSummary struct {
	Amount        int64     `json:"amount"`
	Category      string    `json:"category"`
	Description   string    `json:"description,omitempty"`
	Date          time.Time `json:"date"`
	IsWorkRelated bool      `json:"isWorkRelated"`
}

// AnalyzeBudget compares the user's stored expenses against their current
// location and next destination.
func (s *InsightService) AnalyzeBudget(ctx context.Context, userID int64) (json.RawMessage, error) {
	entries, err := s.repos.Budget.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("analyze budget: %w", err)
	}

	var location, destination string
	var limit *int64
	if user, err := s.repos.Users.FindByID(ctx, userID); err == nil {
		location = user.CurrentLocation
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("analyze budget: %w", err)
	}
	if prefs, err := s.repos.Preferences.FindByUser(ctx, userID); err == nil {
		destination = prefs.NextDestination
		limit = prefs.BudgetLimit
	} else if !errors.Is(err, domain.ErrPreferencesNotFound) {
		return nil, fmt.Errorf("analyze budget: %w", err)
	}

	summary := make([]expenseSummary, 0, len(entries))
	for _, e := range entries {
		summary = append(summary, expenseSummary{
			Amount: e.Amount, Category: e.Category, Description: e.Description,
			Date: e.Date, IsWorkRelated: e.IsWorkRelated,
		})
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("analyze budget: %w", err)
	}
	prompt := fmt.Sprintf(budgetPrompt, orUnknown(location), orUnknown(destination), budgetLimitText(limit), data)
	return s.ask(ctx, userID, domain.ModuleBudget, prompt, string(data))
}

func (s *InsightService) RecommendCommunity(ctx context.Context, userID int64, profile json.RawMessage) (json.RawMessage, error) {
	return s.ask(ctx, userID, domain.ModuleCommunity, fmt.Sprintf(communityPrompt, profile), string(profile))
}

func (s *InsightService) LegalResources(ctx context.Context, userID int64, query json.RawMessage) (json.RawMessage, error) {
	return s.ask(ctx, userID, domain.ModuleLegal, fmt.Sprintf(legalPrompt, query), string(query))
}

func (s *InsightService) Ask(ctx context.Context, userID int64, query string) (json.RawMessage, error) {
	return s.ask(ctx, userID, domain.ModuleAssistant, fmt.Sprintf(assistantPrompt, query), query)
}

func (s *InsightService) ask(ctx context.Context, userID int64, module, prompt, userContent string) (json.RawMessage, error) {
	asked := s.now()

	if s.cache != nil {
		answer, ok, err := s.cache.Get(ctx, module, prompt)
		switch {
		case err != nil:
			metrics.AICacheTotal.WithLabelValues("error").Inc()
			s.logger.Warn().Err(err).Str("module", module).Msg("ai cache lookup failed")
		case ok:
			metrics.AICacheTotal.WithLabelValues("hit").Inc()
			s.record(userID, module, userContent, answer, asked)
			return answer, nil
		default:
			metrics.AICacheTotal.WithLabelValues("miss").Inc()
		}
	}

	start := time.Now()
	answer, err := s.ai.Classify(ctx, prompt)
	metrics.AIRequestDuration.WithLabelValues(module).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AIRequestsTotal.WithLabelValues(module, outcome(err)).Inc()
		s.logger.Error().Err(err).Str("module", module).Int64("user_id", userID).Msg("ai request failed")
		return nil, fmt.Errorf("%s insight: %w", module, err)
	}
	metrics.AIRequestsTotal.WithLabelValues(module, "ok").Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, module, prompt, answer, s.cacheTTL); err != nil {
			s.logger.Warn().Err(err).Str("module", module).Msg("ai cache store failed")
		}
	}
	s.record(userID, module, userContent, answer, asked)
	return answer, nil
}

func (s *InsightService) record(userID int64, module, userContent string, answer json.RawMessage, asked time.Time) {
	if s.recorder == nil {
		return
	}
	s.recorder.Enqueue(ports.Exchange{
		UserID: userID,
		Module: module,
		Messages: []domain.ConversationMessage{
			{Role: domain.RoleUser, Content: userContent, CreatedAt: asked},
			{Role: domain.RoleAssistant, Content: string(answer), CreatedAt: s.now()},
		},
	})
}

func outcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrAIUnavailable):
		return "unavailable"
	case errors.Is(err, domain.ErrMalformedAIResponse):
		return "malformed"
	default:
		return "error"
	}
}
