package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const sessionKeyPrefix = "bridge:session:"

// Session pairs the user and session identifiers the agent runtime expects
// for one conversation.
type Session struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

// SessionStore caches the conversation-to-session mapping.
type SessionStore interface {
	// Get returns the cached session for a conversation key, or nil when
	// none exists.
	Get(ctx context.Context, conversationKey string) (*Session, error)
	Put(ctx context.Context, conversationKey string, sess Session) error
}

// MintSession creates a fresh user/session identifier pair.
func MintSession() Session {
	return Session{
		UserID:    uuid.New().String(),
		SessionID: uuid.New().String(),
	}
}

// RedisSessionStore keeps session mappings in Redis. Entries carry no TTL;
// they live until the deployment's session DB is cleared.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Get(ctx context.Context, conversationKey string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+conversationKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch session for %s: %w", conversationKey, err)
	}
	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("decode session for %s: %w", conversationKey, err)
	}
	return &sess, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, conversationKey string, sess Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session for %s: %w", conversationKey, err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+conversationKey, b, 0).Err(); err != nil {
		return fmt.Errorf("store session for %s: %w", conversationKey, err)
	}
	return nil
}
