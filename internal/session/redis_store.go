// Package session provides Redis-backed storage for gate sessions.
//
// A gate session remembers that a visitor already passed one of the portal's
// password gates, so the password is entered once per session instead of on
// every protected request. Tokens expire on their own through Redis TTLs.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a token is unknown or expired.
var ErrNotFound = errors.New("session not found or expired")

// gateSession is the value stored per token.
type gateSession struct {
	Area      string    `json:"area"`
	CreatedAt time.Time `json:"created_at"`
}

// Store keeps gate sessions in Redis.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore connects to Redis using a URL and verifies the connection.
func NewStore(redisURL string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Store{client: client, prefix: "gate:"}, nil
}

// NewStoreWithClient wraps an existing Redis client.
func NewStoreWithClient(client *redis.Client) *Store {
	return &Store{client: client, prefix: "gate:"}
}

func (s *Store) key(token string) string {
	return s.prefix + token
}

// Save stores a gate session under the token with the given lifetime.
func (s *Store) Save(ctx context.Context, token, area string, ttl time.Duration) error {
	data, err := json.Marshal(gateSession{Area: area, CreatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	if err := s.client.Set(ctx, s.key(token), data, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Lookup resolves a token to the gate area it unlocked.
func (s *Store) Lookup(ctx context.Context, token string) (string, error) {
	data, err := s.client.Get(ctx, s.key(token)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup session: %w", err)
	}

	var sess gateSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return "", fmt.Errorf("unmarshal session: %w", err)
	}
	return sess.Area, nil
}

// Revoke deletes a session token.
func (s *Store) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}
