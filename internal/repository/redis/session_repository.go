package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionData is the value stored per login. The reverse lookup key lets the
// auth middleware validate a token without knowing the user first.
type SessionData struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{
		client: client,
	}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("session:user:%s", userID)
}

func lookupKey(token string) string {
	return fmt.Sprintf("session:lookup:%s", token)
}

// StoreSession keeps one active session per user. Logging in again replaces
// the previous session, which implicitly revokes the old token.
func (r *SessionRepository) StoreSession(ctx context.Context, userID, token, role string, ttl time.Duration) error {
	now := time.Now()
	data := SessionData{
		UserID:    userID,
		Role:      role,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	if prev, err := r.GetSessionData(ctx, userID); err == nil {
		r.client.Del(ctx, lookupKey(prev.Token))
	}

	if err := r.client.Set(ctx, sessionKey(userID), jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in Redis: %w", err)
	}

	if err := r.client.Set(ctx, lookupKey(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session lookup: %w", err)
	}

	return nil
}

// GetSessionData retrieves session data by user ID
func (r *SessionRepository) GetSessionData(ctx context.Context, userID string) (*SessionData, error) {
	val, err := r.client.Get(ctx, sessionKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.New("session not found")
		}
		return nil, fmt.Errorf("failed to get session from Redis: %w", err)
	}

	var data SessionData
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &data, nil
}

// ValidateToken checks that the token belongs to a live session and returns
// the owning user ID.
func (r *SessionRepository) ValidateToken(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, lookupKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errors.New("session not found or expired")
		}
		return "", fmt.Errorf("failed to validate token: %w", err)
	}

	return userID, nil
}

// RevokeSession removes the user's session and its token lookup.
func (r *SessionRepository) RevokeSession(ctx context.Context, userID string) error {
	data, err := r.GetSessionData(ctx, userID)
	if err == nil {
		r.client.Del(ctx, lookupKey(data.Token))
	}

	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

// RefreshSessionTTL extends the session expiration time.
func (r *SessionRepository) RefreshSessionTTL(ctx context.Context, userID string, newTTL time.Duration) error {
	data, err := r.GetSessionData(ctx, userID)
	if err != nil {
		return err
	}

	if err := r.client.Expire(ctx, sessionKey(userID), newTTL).Err(); err != nil {
		return fmt.Errorf("failed to refresh session TTL: %w", err)
	}

	if err := r.client.Expire(ctx, lookupKey(data.Token), newTTL).Err(); err != nil {
		return fmt.Errorf("failed to refresh lookup TTL: %w", err)
	}

	return nil
}
