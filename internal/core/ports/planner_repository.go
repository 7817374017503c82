package ports

import (
	"context"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

// Lookups by id return the entity's not-found sentinel from domain. List
// operations return an empty slice, ordered by id, when nothing matches.

type CalendarRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.CalendarEvent, error)
	FindByID(ctx context.Context, id int64) (*domain.CalendarEvent, error)
	Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error)
	Update(ctx context.Context, id int64, patch domain.CalendarEventPatch) (*domain.CalendarEvent, error)
	// Delete reports whether a record with that id existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

type CoworkingRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.CoworkingSpace, error)
	FindByID(ctx context.Context, id int64) (*domain.CoworkingSpace, error)
	Create(ctx context.Context, space *domain.CoworkingSpace) (*domain.CoworkingSpace, error)
}

type BudgetRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.BudgetEntry, error)
	FindByID(ctx context.Context, id int64) (*domain.BudgetEntry, error)
	Create(ctx context.Context, entry *domain.BudgetEntry) (*domain.BudgetEntry, error)
	Update(ctx context.Context, id int64, patch domain.BudgetEntryPatch) (*domain.BudgetEntry, error)
}

type PreferencesRepository interface {
	FindByUser(ctx context.Context, userID int64) (*domain.UserPreferences, error)
	// Upsert merges patch into the record of userID, inserting one if absent.
	Upsert(ctx context.Context, userID int64, patch domain.PreferencesPatch) (*domain.UserPreferences, error)
}

type ConversationRepository interface {
	// ListByUserModule lists every module of the user when module is empty.
	ListByUserModule(ctx context.Context, userID int64, module string) ([]*domain.AiConversation, error)
	Create(ctx context.Context, conv *domain.AiConversation) (*domain.AiConversation, error)
	AppendMessages(ctx context.Context, id int64, msgs []domain.ConversationMessage) (*domain.AiConversation, error)
}

// Repositories groups one record store backend.
type Repositories struct {
	Users         UserRepository
	Calendar      CalendarRepository
	Coworking     CoworkingRepository
	Budget        BudgetRepository
	Preferences   PreferencesRepository
	Conversations ConversationRepository
}
