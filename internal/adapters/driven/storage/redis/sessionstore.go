package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
	"github.com/custodia-labs/benefits-portal/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// KeyPrefix namespaces session keys.
const KeyPrefix = "portal:session:"

// Options configures the Redis connection.
type Options struct {
	Address  string
	Password string
	DB       int
}

// SessionStore is a Redis implementation of driven.SessionStore.
type SessionStore struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewClient creates a Redis client with the portal's timeouts.
func NewClient(opts Options) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:         opts.Address,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})
}

// NewSessionStore creates a session store over an existing client.
// A zero TTL stores sessions without expiry.
func NewSessionStore(client *goredis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Ping checks the connection.
func (s *SessionStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (s *SessionStore) Close() error {
	return s.client.Close()
}

// Save stores or replaces a session and refreshes its expiry.
func (s *SessionStore) Save(ctx context.Context, session domain.Session) error {
	if session.ID == "" {
		return domain.ErrInvalidInput
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshalling session: %w", err)
	}
	if err := s.client.Set(ctx, KeyPrefix+session.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

// Get retrieves a session by ID.
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, KeyPrefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	if session.Errors == nil {
		session.Errors = domain.FieldErrors{}
	}
	return &session, nil
}

// Delete removes a session.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, KeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
