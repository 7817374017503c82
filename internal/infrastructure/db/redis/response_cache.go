package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResponseCache stores AI collaborator answers in Redis.
// Key format: ai:<module>:<sha256(prompt)>
type ResponseCache struct {
	client *redis.Client
}

// NewResponseCache creates a ResponseCache wrapping the given Redis client.
func NewResponseCache(client *redis.Client) *ResponseCache {
	return &ResponseCache{client: client}
}

// Get returns the cached answer for this prompt, if any.
func (c *ResponseCache) Get(ctx context.Context, module, prompt string) (json.RawMessage, bool, error) {
	b, err := c.client.Get(ctx, c.key(module, prompt)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ai cache get: %w", err)
	}
	return json.RawMessage(b), true, nil
}

// Set stores answer for this prompt (expires after ttl).
func (c *ResponseCache) Set(ctx context.Context, module, prompt string, answer json.RawMessage, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(module, prompt), []byte(answer), ttl).Err(); err != nil {
		return fmt.Errorf("ai cache set: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (c *ResponseCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *ResponseCache) key(module, prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("ai:%s:%s", module, hex.EncodeToString(sum[:]))
}
