package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	domain "trading-dashboard/internal/domain/session"
)

// RedisStore resolves opaque session tokens written to Redis by the
// identity provider's callback. Each token maps to a JSON-encoded session.
type RedisStore struct {
	client *redis.Client
	prefix string
	log    *zap.Logger
}

// NewRedisStore creates a new Redis-backed session store.
func NewRedisStore(client *redis.Client, prefix string, log *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		log:    log,
	}
}

// sessionKey generates a Redis key for a token.
func (s *RedisStore) sessionKey(token string) string {
	return s.prefix + token
}

// Verify looks the token up and rejects missing, undecodable or expired sessions.
func (s *RedisStore) Verify(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrNoSession
	}

	data, err := s.client.Get(ctx, s.sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		s.log.Debug("session not found")
		return nil, domain.ErrInvalidSession
	}
	if err != nil {
		s.log.Error("failed to read session", zap.Error(err))
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.Warn("failed to unmarshal session", zap.Error(err))
		return nil, domain.ErrInvalidSession
	}
	if sess.Email == "" || sess.Expired(time.Now()) {
		s.log.Debug("session rejected", zap.String("user_id", sess.UserID))
		return nil, domain.ErrInvalidSession
	}

	return &sess, nil
}

// Save stores a session under token. A zero ttl stores it without expiry.
func (s *RedisStore) Save(ctx context.Context, token string, sess *domain.Session, ttl time.Duration) error {
	if sess == nil {
		return fmt.Errorf("cannot store nil session")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.sessionKey(token), data, ttl).Err(); err != nil {
		s.log.Error("failed to store session", zap.String("user_id", sess.UserID), zap.Error(err))
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Delete removes the session stored under token.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
