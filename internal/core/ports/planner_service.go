package ports

import (
	"context"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

// Record services scope every lookup to the requesting user: a record owned
// by someone else is reported as not found.

type CalendarService interface {
	List(ctx context.Context, userID int64) ([]*domain.CalendarEvent, error)
	Get(ctx context.Context, userID, id int64) (*domain.CalendarEvent, error)
	Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error)
	Update(ctx context.Context, userID, id int64, patch domain.CalendarEventPatch) (*domain.CalendarEvent, error)
	Delete(ctx context.Context, userID, id int64) error
}

type CoworkingService interface {
	List(ctx context.Context, userID int64) ([]*domain.CoworkingSpace, error)
	Get(ctx context.Context, userID, id int64) (*domain.CoworkingSpace, error)
	Create(ctx context.Context, space *domain.CoworkingSpace) (*domain.CoworkingSpace, error)
}

type BudgetService interface {
	List(ctx context.Context, userID int64) ([]*domain.BudgetEntry, error)
	Get(ctx context.Context, userID, id int64) (*domain.BudgetEntry, error)
	Create(ctx context.Context, entry *domain.BudgetEntry) (*domain.BudgetEntry, error)
	Update(ctx context.Context, userID, id int64, patch domain.BudgetEntryPatch) (*domain.BudgetEntry, error)
}

type PreferencesService interface {
	Get(ctx context.Context, userID int64) (*domain.UserPreferences, error)
	Save(ctx context.Context, userID int64, patch domain.PreferencesPatch) (*domain.UserPreferences, error)
}

type ConversationService interface {
	// List returns the user's conversations, of one module when module is non-empty.
	List(ctx context.Context, userID int64, module string) ([]*domain.AiConversation, error)
	// Record appends an exchange to the user's latest conversation of that module.
	Record(ctx context.Context, ex Exchange) error
}
