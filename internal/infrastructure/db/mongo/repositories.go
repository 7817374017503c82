package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

// findOne decodes the document matching filter, mapping a miss to notFound.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any, notFound error) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var v T
	if err := coll.FindOne(ctx, filter).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		return nil, err
	}
	return &v, nil
}

// setFields applies $set to the document with id and returns the result.
// An empty set only reads the document.
func setFields[T any](ctx context.Context, coll *mongo.Collection, id int64, set bson.D, notFound error) (*T, error) {
	if len(set) == 0 {
		return findOne[T](ctx, coll, bson.M{"_id": id}, notFound)
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var v T
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, returnAfter).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		return nil, err
	}
	return &v, nil
}

func insert(ctx context.Context, s *Store, coll string, assign func(int64), doc any) error {
	id, err := s.nextID(ctx, coll)
	if err != nil {
		return err
	}
	assign(id)

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	_, err = s.db.Collection(coll).InsertOne(ctx, doc)
	return err
}

// --- users ---

type UserRepository struct {
	s   *Store
	col *mongo.Collection
}

func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s, col: s.db.Collection(collectionUsers)}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return findOne[domain.User](ctx, r.col, bson.M{"_id": id}, domain.ErrUserNotFound)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return findOne[domain.User](ctx, r.col, bson.M{"username": username}, domain.ErrUserNotFound)
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	u := *user
	if err := insert(ctx, r.s, collectionUsers, func(id int64) { u.ID = id }, &u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

// --- calendar events ---

type CalendarRepository struct {
	s   *Store
	col *mongo.Collection
}

func NewCalendarRepository(s *Store) *CalendarRepository {
	return &CalendarRepository{s: s, col: s.db.Collection(collectionEvents)}
}

func (r *CalendarRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.CalendarEvent, error) {
	events, err := findAll[domain.CalendarEvent](ctx, r.col, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	return events, nil
}

func (r *CalendarRepository) FindByID(ctx context.Context, id int64) (*domain.CalendarEvent, error) {
	return findOne[domain.CalendarEvent](ctx, r.col, bson.M{"_id": id}, domain.ErrEventNotFound)
}

func (r *CalendarRepository) Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	e := *event
	if err := insert(ctx, r.s, collectionEvents, func(id int64) { e.ID = id }, &e); err != nil {
		return nil, fmt.Errorf("insert calendar event: %w", err)
	}
	return &e, nil
}

func (r *CalendarRepository) Update(ctx context.Context, id int64, p domain.CalendarEventPatch) (*domain.CalendarEvent, error) {
	var set bson.D
	if p.UserID != nil {
		set = append(set, bson.E{Key: "user_id", Value: *p.UserID})
	}
	if p.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *p.Title})
	}
	if p.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *p.Description})
	}
	if p.StartTime != nil {
		set = append(set, bson.E{Key: "start_time", Value: *p.StartTime})
	}
	if p.EndTime != nil {
		set = append(set, bson.E{Key: "end_time", Value: *p.EndTime})
	}
	if p.Location != nil {
		set = append(set, bson.E{Key: "location", Value: *p.Location})
	}
	if p.EventType != nil {
		set = append(set, bson.E{Key: "event_type", Value: string(*p.EventType)})
	}
	if p.IsConflict != nil {
		set = append(set, bson.E{Key: "is_conflict", Value: *p.IsConflict})
	}
	return setFields[domain.CalendarEvent](ctx, r.col, id, set, domain.ErrEventNotFound)
}

func (r *CalendarRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete calendar event: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// --- coworking spaces ---

type CoworkingRepository struct {
	s   *Store
	col *mongo.Collection
}

func NewCoworkingRepository(s *Store) *CoworkingRepository {
	return &CoworkingRepository{s: s, col: s.db.Collection(collectionSpaces)}
}

func (r *CoworkingRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.CoworkingSpace, error) {
	spaces, err := findAll[domain.CoworkingSpace](ctx, r.col, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list coworking spaces: %w", err)
	}
	for _, s := range spaces {
		if s.Amenities == nil {
			s.Amenities = []string{}
		}
	}
	return spaces, nil
}

func (r *CoworkingRepository) FindByID(ctx context.Context, id int64) (*domain.CoworkingSpace, error) {
	s, err := findOne[domain.CoworkingSpace](ctx, r.col, bson.M{"_id": id}, domain.ErrSpaceNotFound)
	if err != nil {
		return nil, err
	}
	if s.Amenities == nil {
		s.Amenities = []string{}
	}
	return s, nil
}

func (r *CoworkingRepository) Create(ctx context.Context, space *domain.CoworkingSpace) (*domain.CoworkingSpace, error) {
	s := *space
	if s.Amenities == nil {
		s.Amenities = []string{}
	}
	if err := insert(ctx, r.s, collectionSpaces, func(id int64) { s.ID = id }, &s); err != nil {
		return nil, fmt.Errorf("insert coworking space: %w", err)
	}
	return &s, nil
}

// --- budget entries ---

type BudgetRepository struct {
	s   *Store
	col *mongo.Collection
}

func NewBudgetRepository(s *Store) *BudgetRepository {
	return &BudgetRepository{s: s, col: s.db.Collection(collectionBudget)}
}

func (r *BudgetRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.BudgetEntry, error) {
	entries, err := findAll[domain.BudgetEntry](ctx, r.col, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list budget entries: %w", err)
	}
	return entries, nil
}

func (r *BudgetRepository) FindByID(ctx context.Context, id int64) (*domain.BudgetEntry, error) {
	return findOne[domain.BudgetEntry](ctx, r.col, bson.M{"_id": id}, domain.ErrBudgetEntryNotFound)
}

func (r *BudgetRepository) Create(ctx context.Context, entry *domain.BudgetEntry) (*domain.BudgetEntry, error) {
	b := *entry
	if err := insert(ctx, r.s, collectionBudget, func(id int64) { b.ID = id }, &b); err != nil {
		return nil, fmt.Errorf("insert budget entry: %w", err)
	}
	return &b, nil
}

func (r *BudgetRepository) Update(ctx context.Context, id int64, p domain.BudgetEntryPatch) (*domain.BudgetEntry, error) {
	var set bson.D
	if p.UserID != nil {
		set = append(set, bson.E{Key: "user_id", Value: *p.UserID})
	}
	if p.Amount != nil {
		set = append(set, bson.E{Key: "amount", Value: *p.Amount})
	}
	if p.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *p.Category})
	}
	if p.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *p.Description})
	}
	if p.Date != nil {
		set = append(set, bson.E{Key: "date", Value: *p.Date})
	}
	if p.IsWorkRelated != nil {
		set = append(set, bson.E{Key: "is_work_related", Value: *p.IsWorkRelated})
	}
	return setFields[domain.BudgetEntry](ctx, r.col, id, set, domain.ErrBudgetEntryNotFound)
}

// --- user preferences ---

type PreferencesRepository struct {
	s   *Store
	col *mongo.Collection
}

func NewPreferencesRepository(s *Store) *PreferencesRepository {
	return &PreferencesRepository{s: s, col: s.db.Collection(collectionPreferences)}
}

func (r *PreferencesRepository) FindByUser(ctx context.Context, userID int64) (*domain.UserPreferences, error) {
	return findOne[domain.UserPreferences](ctx, r.col, bson.M{"user_id": userID}, domain.ErrPreferencesNotFound)
}

// Upsert merges into the existing document or inserts a new one. A lost
// insert race surfaces as a duplicate key on user_id and is retried as a merge.
func (r *PreferencesRepository) Upsert(ctx context.Context, userID int64, p domain.PreferencesPatch) (*domain.UserPreferences, error) {
	existing, err := r.FindByUser(ctx, userID)
	switch {
	case err == nil:
		return r.merge(ctx, existing.ID, p)
	case !errors.Is(err, domain.ErrPreferencesNotFound):
		return nil, fmt.Errorf("upsert preferences: %w", err)
	}

	fresh := domain.UserPreferences{UserID: userID}
	p.Apply(&fresh)
	err = insert(ctx, r.s, collectionPreferences, func(id int64) { fresh.ID = id }, &fresh)
	if mongo.IsDuplicateKeyError(err) {
		existing, err := r.FindByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("upsert preferences: %w", err)
		}
		return r.merge(ctx, existing.ID, p)
	}
	if err != nil {
		return nil, fmt.Errorf("upsert preferences: %w", err)
	}
	return &fresh, nil
}

func (r *PreferencesRepository) merge(ctx context.Context, id int64, p domain.PreferencesPatch) (*domain.UserPreferences, error) {
	var set bson.D
	if p.TimeZone != nil {
		set = append(set, bson.E{Key: "time_zone", Value: *p.TimeZone})
	}
	if p.BudgetLimit != nil {
		set = append(set, bson.E{Key: "budget_limit", Value: *p.BudgetLimit})
	}
	if p.PreferredWorkHours != nil {
		set = append(set, bson.E{Key: "preferred_work_hours", Value: p.PreferredWorkHours})
	}
	if p.NextDestination != nil {
		set = append(set, bson.E{Key: "next_destination", Value: *p.NextDestination})
	}
	if p.NextDestinationDates != nil {
		set = append(set, bson.E{Key: "next_destination_dates", Value: *p.NextDestinationDates})
	}
	return setFields[domain.UserPreferences](ctx, r.col, id, set, domain.ErrPreferencesNotFound)
}

// --- ai conversations ---

type ConversationRepository struct {
	s   *Store
	col *mongo.Collection
}

func NewConversationRepository(s *Store) *ConversationRepository {
	return &ConversationRepository{s: s, col: s.db.Collection(collectionConversations)}
}

// ListByUserModule lists every module when module is empty.
func (r *ConversationRepository) ListByUserModule(ctx context.Context, userID int64, module string) ([]*domain.AiConversation, error) {
	filter := bson.M{"user_id": userID}
	if module != "" {
		filter["module"] = module
	}
	convs, err := findAll[domain.AiConversation](ctx, r.col, filter)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return convs, nil
}

func (r *ConversationRepository) Create(ctx context.Context, conv *domain.AiConversation) (*domain.AiConversation, error) {
	c := *conv
	if c.Messages == nil {
		c.Messages = []domain.ConversationMessage{}
	}
	if err := insert(ctx, r.s, collectionConversations, func(id int64) { c.ID = id }, &c); err != nil {
		return nil, fmt.Errorf("insert conversation: %w", err)
	}
	return &c, nil
}

func (r *ConversationRepository) AppendMessages(ctx context.Context, id int64, msgs []domain.ConversationMessage) (*domain.AiConversation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.AiConversation
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"messages": bson.M{"$each": msgs}}},
		returnAfter,
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, fmt.Errorf("append messages: %w", err)
	}
	return &c, nil
}
