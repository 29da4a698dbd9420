package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps issued tokens in Redis.
// Keys expire together with the token, so there is nothing to sweep.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) key(tokenID string) string {
	return sessionKeyPrefix + tokenID
}

func (s *RedisSessionStore) CreateSession(ctx context.Context, session *models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(session.TokenID), payload, ttl).Err()
}

func (s *RedisSessionStore) FindSession(ctx context.Context, tokenID string) (*models.Session, error) {
	payload, err := s.client.Get(ctx, s.key(tokenID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperror.NotFound("session not found")
		}
		return nil, err
	}
	var session models.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// RevokeSession flags the session and keeps its remaining TTL
func (s *RedisSessionStore) RevokeSession(ctx context.Context, tokenID string) error {
	session, err := s.FindSession(ctx, tokenID)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil
		}
		return err
	}
	session.Revoked = true
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(tokenID), payload, redis.KeepTTL).Err()
}

func (s *RedisSessionStore) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}
