package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pta-storefront/internal/pkg/errs"
	"pta-storefront/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps per-visitor session slots as plain keys that expire with
// the session.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) Get(ctx context.Context, sessionID, slot string) ([]byte, error) {
	data, err := s.client.Get(ctx, slotKey(sessionID, slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, shared.ErrSessionSlotEmpty
	}
	if err != nil {
		return nil, errs.Wrap(err, "redis get failed")
	}
	return data, nil
}

// Set refreshes the expiry on every write.
func (s *RedisStore) Set(ctx context.Context, sessionID, slot string, value []byte) error {
	if err := s.client.Set(ctx, slotKey(sessionID, slot), value, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set failed")
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID, slot string) error {
	if err := s.client.Del(ctx, slotKey(sessionID, slot)).Err(); err != nil {
		return errs.Wrap(err, "redis delete failed")
	}
	return nil
}

func slotKey(sessionID, slot string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, slot)
}
