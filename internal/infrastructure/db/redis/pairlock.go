package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pairLockTTL = 10 * time.Second

// PairLock serializes friend-request creation per unordered user pair.
// Key format: frlock:<lowID>:<highID> — the ids are ordered so both
// directions of a pair map to the same key.
type PairLock struct {
	client *redis.Client
}

// NewPairLock creates a PairLock wrapping the given Redis client.
func NewPairLock(client *redis.Client) *PairLock {
	return &PairLock{client: client}
}

// TryLock attempts to take the pair's lock. Returns false when another
// request for the same pair currently holds it. The TTL bounds how long a
// crashed holder can block the pair.
func (l *PairLock) TryLock(ctx context.Context, a, b string) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(a, b), "1", pairLockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("pair lock: %w", err)
	}
	return ok, nil
}

// Unlock releases the pair's lock.
func (l *PairLock) Unlock(ctx context.Context, a, b string) error {
	return l.client.Del(ctx, l.key(a, b)).Err()
}

func (l *PairLock) key(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("frlock:%s:%s", a, b)
}
