package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nomadplanner/planner-api/internal/core/ports"
)

const (
	collectionCounters      = "counters"
	collectionUsers         = "users"
	collectionEvents        = "calendar_events"
	collectionSpaces        = "coworking_spaces"
	collectionBudget        = "budget_entries"
	collectionPreferences   = "user_preferences"
	collectionConversations = "ai_conversations"
)

// Store is the MongoDB record store. Documents use integer ids drawn from
// per-collection sequences kept in the counters collection.
type Store struct {
	db       *mongo.Database
	counters *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db, counters: db.Collection(collectionCounters)}
}

// nextID atomically increments and returns the sequence of collection.
func (s *Store) nextID(ctx context.Context, collection string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": collection},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next id for %s: %w", collection, err)
	}
	return counter.Seq, nil
}

// Repositories exposes every repository backed by the store.
func (s *Store) Repositories() ports.Repositories {
	return ports.Repositories{
		Users:         NewUserRepository(s),
		Calendar:      NewCalendarRepository(s),
		Coworking:     NewCoworkingRepository(s),
		Budget:        NewBudgetRepository(s),
		Preferences:   NewPreferencesRepository(s),
		Conversations: NewConversationRepository(s),
	}
}

// Ping reports whether the deployment is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

// EnsureIndexes creates the unique and lookup indexes of every collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	byUser := mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "_id", Value: 1}}}
	indexes := map[string][]mongo.IndexModel{
		collectionUsers: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionPreferences: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionEvents: {byUser},
		collectionSpaces: {byUser},
		collectionBudget: {byUser},
		collectionConversations: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "module", Value: 1}, {Key: "_id", Value: 1}}},
		},
	}
	for coll, models := range indexes {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", coll, err)
		}
	}
	return nil
}

var sortByID = options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

var returnAfter = options.FindOneAndUpdate().SetReturnDocument(options.After)

// findAll decodes every document matching filter, ordered by id.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := coll.Find(ctx, filter, sortByID)
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
