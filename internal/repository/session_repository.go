package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionRepository keeps issued tokens in Redis so sign-out can revoke a
// JWT before it expires.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (r *SessionRepository) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(token), userID, ttl).Err()
}

// Exists reports whether the token still has a live session.
func (r *SessionRepository) Exists(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, sessionKey(token)).Err()
}
