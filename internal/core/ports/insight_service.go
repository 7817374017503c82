package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

// Classifier is the AI collaborator: it answers a prompt with a JSON document.
type Classifier interface {
	Classify(ctx context.Context, prompt string) (json.RawMessage, error)
}

// ResponseCache stores collaborator answers keyed by module and prompt.
// Get reports a miss with ok=false and a nil error.
type ResponseCache interface {
	Get(ctx context.Context, module, prompt string) (json.RawMessage, bool, error)
	Set(ctx context.Context, module, prompt string, answer json.RawMessage, ttl time.Duration) error
}

// Exchange is one AI round trip to be appended to the user's history.
type Exchange struct {
	UserID   int64
	Module   string
	Messages []domain.ConversationMessage
}

// ConversationRecorder persists exchanges off the request path. Enqueue never
// blocks and reports whether the exchange was accepted.
type ConversationRecorder interface {
	Enqueue(ex Exchange) bool
}

// InsightService answers the AI features of each module. Payloads are
// forwarded to the collaborator unchanged and answers are returned unchanged.
type InsightService interface {
	AnalyzeCalendar(ctx context.Context, userID int64) (json.RawMessage, error)
	RecommendCoworking(ctx context.Context, userID int64, criteria json.RawMessage) (json.RawMessage, error)
	RecommendTimeZone(ctx context.Context, userID int64, teamInfo json.RawMessage) (json.RawMessage, error)
	AnalyzeBudget(ctx context.Context, userID int64) (json.RawMessage, error)
	RecommendCommunity(ctx context.Context, userID int64, profile json.RawMessage) (json.RawMessage, error)
	LegalResources(ctx context.Context, userID int64, query json.RawMessage) (json.RawMessage, error)
	Ask(ctx context.Context, userID int64, query string) (json.RawMessage, error)
}
