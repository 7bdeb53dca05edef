// Package redis implements ports.SnapshotStore on a Redis backend.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fourline/fourline/pkg/domain"
	"github.com/fourline/fourline/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

const defaultPrefix = "fourline:"

// Store implements ports.SnapshotStore using Redis string values holding
// JSON-encoded snapshots.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures the Store.
type Option func(*Store)

// WithTTL sets an expiration on stored snapshots. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix overrides the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// NewFromClient creates a store over an existing Redis client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	s := &Store{
		client: client,
		prefix: defaultPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) key(gameID string) string {
	return s.prefix + "game:" + gameID
}

// Save persists the JSON-encoded snapshot, applying the configured TTL.
func (s *Store) Save(ctx context.Context, gameID string, snapshot ports.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key(gameID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis error saving snapshot: %w", err)
	}
	return nil
}

// Load retrieves and decodes the snapshot for a game ID.
func (s *Store) Load(ctx context.Context, gameID string) (ports.Snapshot, error) {
	payload, err := s.client.Get(ctx, s.key(gameID)).Bytes()
	if errors.Is(err, backend.Nil) {
		return ports.Snapshot{}, domain.ErrGameNotFound
	}
	if err != nil {
		return ports.Snapshot{}, fmt.Errorf("redis error loading snapshot: %w", err)
	}
	var snapshot ports.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return ports.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snapshot, nil
}

// Delete removes the snapshot for a game ID.
func (s *Store) Delete(ctx context.Context, gameID string) error {
	if err := s.client.Del(ctx, s.key(gameID)).Err(); err != nil {
		return fmt.Errorf("redis error deleting snapshot: %w", err)
	}
	return nil
}

// List scans for all stored game IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	pattern := s.prefix + "game:*"
	ids := []string{}
	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), s.prefix+"game:"))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis error listing snapshots: %w", err)
	}
	return ids, nil
}
