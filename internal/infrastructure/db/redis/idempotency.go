package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore maps note-creation idempotency keys to the note id they
// produced. Key format: idem:<owner_id>:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup reports whether the key has been seen and, if so, which note id it
// created.
func (s *IdempotencyStore) Lookup(ctx context.Context, ownerID int64, key string) (int64, bool, error) {
	val, err := s.client.Get(ctx, s.key(ownerID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: %w", err)
	}

	noteID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: bad value %q: %w", val, err)
	}
	return noteID, true, nil
}

// Remember records the key → note id mapping (expires after idempotencyTTL).
func (s *IdempotencyStore) Remember(ctx context.Context, ownerID int64, key string, noteID int64) error {
	return s.client.Set(ctx, s.key(ownerID, key), strconv.FormatInt(noteID, 10), idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(ownerID int64, key string) string {
	return fmt.Sprintf("idem:%d:%s", ownerID, key)
}
