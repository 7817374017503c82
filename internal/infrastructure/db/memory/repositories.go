package memory

import (
	"context"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

// --- users ---

type UserRepository struct {
	t *table[domain.User]
}

func (r *UserRepository) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	u, ok := r.t.firstLocked(func(u *domain.User) bool { return u.Username == username })
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return r.t.clone(u), nil
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	if _, taken := r.t.firstLocked(func(u *domain.User) bool { return u.Username == user.Username }); taken {
		return nil, domain.ErrUserExists
	}
	return r.t.insertLocked(user, func(u *domain.User, id int64) { u.ID = id }), nil
}

// --- calendar events ---

type CalendarRepository struct {
	t *table[domain.CalendarEvent]
}

func (r *CalendarRepository) ListByUser(_ context.Context, userID int64) ([]*domain.CalendarEvent, error) {
	return r.t.list(func(e *domain.CalendarEvent) bool { return e.UserID == userID }), nil
}

func (r *CalendarRepository) FindByID(_ context.Context, id int64) (*domain.CalendarEvent, error) {
	e, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return e, nil
}

func (r *CalendarRepository) Create(_ context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	return r.t.insert(event, func(e *domain.CalendarEvent, id int64) { e.ID = id }), nil
}

func (r *CalendarRepository) Update(_ context.Context, id int64, patch domain.CalendarEventPatch) (*domain.CalendarEvent, error) {
	e, ok := r.t.update(id, patch.Apply)
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return e, nil
}

func (r *CalendarRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.t.remove(id), nil
}

// --- coworking spaces ---

type CoworkingRepository struct {
	t *table[domain.CoworkingSpace]
}

func (r *CoworkingRepository) ListByUser(_ context.Context, userID int64) ([]*domain.CoworkingSpace, error) {
	return r.t.list(func(s *domain.CoworkingSpace) bool { return s.UserID == userID }), nil
}

func (r *CoworkingRepository) FindByID(_ context.Context, id int64) (*domain.CoworkingSpace, error) {
	s, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrSpaceNotFound
	}
	return s, nil
}

func (r *CoworkingRepository) Create(_ context.Context, space *domain.CoworkingSpace) (*domain.CoworkingSpace, error) {
	return r.t.insert(space, func(s *domain.CoworkingSpace, id int64) { s.ID = id }), nil
}

// --- budget entries ---

type BudgetRepository struct {
	t *table[domain.BudgetEntry]
}

func (r *BudgetRepository) ListByUser(_ context.Context, userID int64) ([]*domain.BudgetEntry, error) {
	return r.t.list(func(b *domain.BudgetEntry) bool { return b.UserID == userID }), nil
}

func (r *BudgetRepository) FindByID(_ context.Context, id int64) (*domain.BudgetEntry, error) {
	b, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrBudgetEntryNotFound
	}
	return b, nil
}

func (r *BudgetRepository) Create(_ context.Context, entry *domain.BudgetEntry) (*domain.BudgetEntry, error) {
	return r.t.insert(entry, func(b *domain.BudgetEntry, id int64) { b.ID = id }), nil
}

func (r *BudgetRepository) Update(_ context.Context, id int64, patch domain.BudgetEntryPatch) (*domain.BudgetEntry, error) {
	b, ok := r.t.update(id, patch.Apply)
	if !ok {
		return nil, domain.ErrBudgetEntryNotFound
	}
	return b, nil
}

// --- user preferences ---

type PreferencesRepository struct {
	t *table[domain.UserPreferences]
}

func (r *PreferencesRepository) FindByUser(_ context.Context, userID int64) (*domain.UserPreferences, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	p, ok := r.t.firstLocked(func(p *domain.UserPreferences) bool { return p.UserID == userID })
	if !ok {
		return nil, domain.ErrPreferencesNotFound
	}
	return r.t.clone(p), nil
}

// Upsert runs under a single write lock so concurrent calls for one user
// cannot both insert.
func (r *PreferencesRepository) Upsert(_ context.Context, userID int64, patch domain.PreferencesPatch) (*domain.UserPreferences, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	if p, ok := r.t.firstLocked(func(p *domain.UserPreferences) bool { return p.UserID == userID }); ok {
		patch.Apply(p)
		return r.t.clone(p), nil
	}
	fresh := &domain.UserPreferences{UserID: userID}
	patch.Apply(fresh)
	return r.t.insertLocked(fresh, func(p *domain.UserPreferences, id int64) { p.ID = id }), nil
}

// --- ai conversations ---

type ConversationRepository struct {
	t *table[domain.AiConversation]
}

func (r *ConversationRepository) ListByUserModule(_ context.Context, userID int64, module string) ([]*domain.AiConversation, error) {
	return r.t.list(func(c *domain.AiConversation) bool {
		return c.UserID == userID && (module == "" || c.Module == module)
	}), nil
}

func (r *ConversationRepository) Create(_ context.Context, conv *domain.AiConversation) (*domain.AiConversation, error) {
	return r.t.insert(conv, func(c *domain.AiConversation, id int64) { c.ID = id }), nil
}

func (r *ConversationRepository) AppendMessages(_ context.Context, id int64, msgs []domain.ConversationMessage) (*domain.AiConversation, error) {
	c, ok := r.t.update(id, func(c *domain.AiConversation) {
		c.Messages = append(c.Messages, msgs...)
	})
	if !ok {
		return nil, domain.ErrConversationNotFound
	}
	return c, nil
}
