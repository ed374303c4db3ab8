// Package session implements opaque-ID sessions: the cookie carries only a
// random session ID, and the session record lives in Redis with a TTL.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Session is the server-side session record.
type Session struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	Expiry    time.Time `json:"expiry"`
}

// redisStore is the subset of *redis.Client used by the Manager; tests
// inject a fake.
type redisStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Manager creates, resolves, and destroys sessions.
type Manager struct {
	store redisStore
	ttl   time.Duration
	now   func() time.Time
}

// NewManager builds a Manager over the given Redis client.
func NewManager(client *redis.Client, ttl time.Duration) *Manager {
	return newManager(client, ttl)
}

func newManager(store redisStore, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl, now: time.Now}
}

// Create stores a fresh session for the user and returns it.
func (m *Manager) Create(ctx context.Context, userID uuid.UUID) (*Session, error) {
	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		Expiry:    now.Add(m.ttl),
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshalling session: %w", err)
	}
	if err := m.store.Set(ctx, keyPrefix+s.ID, b, m.ttl).Err(); err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}
	return s, nil
}

// Get resolves a session by ID. Returns (nil, nil) when the session does not
// exist or has expired — an absent session is not an error.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	val, err := m.store.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	if s.Expiry.Before(m.now()) {
		return nil, nil
	}
	return &s, nil
}

// Destroy removes a session. Destroying an absent session is a no-op.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	if err := m.store.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
