package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSender implements the Sender interface by storing emails in Redis
// instead of delivering them. Used by the end-to-end test harness when
// MOCK_SERVICES is enabled so tests can fetch and inspect outbound mail.
type RedisSender struct {
	client *redis.Client
}

// NewRedisSender creates a new RedisSender.
func NewRedisSender(client *redis.Client) Sender {
	return &RedisSender{client: client}
}

// Send stores a JSON representation of the email in Redis keyed by recipient.
func (s *RedisSender) Send(ctx context.Context, msg Message) error {
	emailData := map[string]interface{}{
		"to":       msg.To,
		"from":     msg.From,
		"reply_to": msg.ReplyTo,
		"subject":  msg.Subject,
		"body":     msg.HTML,
		"sent_at":  time.Now().UTC().Format(time.RFC3339Nano),
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return fmt.Errorf("failed to marshal email data: %w", err)
	}

	key := fmt.Sprintf("mockemail:%s", msg.To)
	ttl := 5 * time.Minute

	if err := s.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store email in Redis key '%s': %w", key, err)
	}

	log.Printf("Mock email stored in Redis key '%s' (TTL: %v, Subject: %s)", key, ttl, msg.Subject)
	return nil
}
