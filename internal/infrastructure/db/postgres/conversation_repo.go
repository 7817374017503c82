package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

const convColumns = `id, user_id, module, messages, created_at`

// ConversationRepo implements ports.ConversationRepository using PostgreSQL.
// Messages are a jsonb array that is only ever appended to.
type ConversationRepo struct{ db *DB }

func NewConversationRepo(db *DB) *ConversationRepo { return &ConversationRepo{db: db} }

func scanConversation(row scanner) (*domain.AiConversation, error) {
	var (
		c   domain.AiConversation
		raw []byte
	)
	if err := row.Scan(&c.ID, &c.UserID, &c.Module, &raw, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Messages = []domain.ConversationMessage{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &c.Messages); err != nil {
			return nil, fmt.Errorf("decode messages: %w", err)
		}
	}
	return &c, nil
}

func encodeMessages(msgs []domain.ConversationMessage) ([]byte, error) {
	if msgs == nil {
		msgs = []domain.ConversationMessage{}
	}
	b, err := json.Marshal(msgs)
	if err != nil {
		return nil, fmt.Errorf("encode messages: %w", err)
	}
	return b, nil
}

// ListByUserModule lists every module when module is empty.
func (r *ConversationRepo) ListByUserModule(ctx context.Context, userID int64, module string) ([]*domain.AiConversation, error) {
	const q = `SELECT ` + convColumns + ` FROM ai_conversations WHERE user_id=$1 AND ($2 = '' OR module = $2) ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q, userID, module)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	convs := make([]*domain.AiConversation, 0)
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		convs = append(convs, c)
	}
	return convs, rows.Err()
}

func (r *ConversationRepo) Create(ctx context.Context, conv *domain.AiConversation) (*domain.AiConversation, error) {
	msgs, err := encodeMessages(conv.Messages)
	if err != nil {
		return nil, err
	}
	const q = `
INSERT INTO ai_conversations (user_id, module, messages, created_at)
VALUES ($1, $2, $3::jsonb, $4)
RETURNING ` + convColumns
	c, err := scanConversation(r.db.Pool.QueryRow(ctx, q, conv.UserID, conv.Module, msgs, conv.CreatedAt))
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return c, nil
}

func (r *ConversationRepo) AppendMessages(ctx context.Context, id int64, msgs []domain.ConversationMessage) (*domain.AiConversation, error) {
	b, err := encodeMessages(msgs)
	if err != nil {
		return nil, err
	}
	const q = `UPDATE ai_conversations SET messages = messages || $2::jsonb WHERE id=$1 RETURNING ` + convColumns
	c, err := scanConversation(r.db.Pool.QueryRow(ctx, q, id, b))
	if err != nil {
		return nil, notFound(err, "append messages", domain.ErrConversationNotFound)
	}
	return c, nil
}
