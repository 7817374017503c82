package domain

import (
	"errors"
	"time"
)

// Modules of the planner that talk to the AI collaborator. Conversations are
// grouped by module.
const (
	ModuleCalendar  = "calendar"
	ModuleCoworking = "coworking"
	ModuleTimeZone  = "timezone"
	ModuleBudget    = "budget"
	ModuleCommunity = "community"
	ModuleLegal     = "legal"
	ModuleAssistant = "assistant"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var ErrConversationNotFound = errors.New("conversation not found")

var (
	// ErrAIUnavailable is returned when no AI collaborator is configured.
	ErrAIUnavailable       = errors.New("ai collaborator unavailable")
	ErrMalformedAIResponse = errors.New("malformed ai response")
)

// ConversationMessage is one turn of an AI exchange. Assistant content is the
// collaborator's JSON document as text.
type ConversationMessage struct {
	Role      string    `json:"role" bson:"role"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// AiConversation is the history of AI exchanges of a user within one module.
// Messages are only ever appended.
type AiConversation struct {
	ID        int64                 `json:"id" bson:"_id"`
	UserID    int64                 `json:"userId" bson:"user_id"`
	Module    string                `json:"module" bson:"module"`
	Messages  []ConversationMessage `json:"messages" bson:"messages"`
	CreatedAt time.Time             `json:"createdAt" bson:"created_at"`
}

// IsKnownModule reports whether m is one of the planner modules.
func IsKnownModule(m string) bool {
	switch m {
	case ModuleCalendar, ModuleCoworking, ModuleTimeZone, ModuleBudget,
		ModuleCommunity, ModuleLegal, ModuleAssistant:
		return true
	}
	return false
}
