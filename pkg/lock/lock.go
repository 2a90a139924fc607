package lock

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RunLock is a best-effort mutual exclusion for scheduled runs across
// notifier replicas, backed by Redis SET NX with a TTL. With a nil client
// the lock is disabled and every acquire succeeds (single-instance
// deployments don't need Redis).
type RunLock struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

func New(rdb *redis.Client, key string, ttl time.Duration) *RunLock {
	return &RunLock{rdb: rdb, key: key, ttl: ttl}
}

// TryAcquire attempts to take the lock for this run. Returns false when
// another replica holds it. A Redis error is returned so the caller can
// decide whether to run anyway.
func (l *RunLock) TryAcquire(ctx context.Context, owner string) (bool, error) {
	if l.rdb == nil {
		return true, nil
	}
	return l.rdb.SetNX(ctx, l.key, owner, l.ttl).Result()
}

// Release frees the lock early. The TTL covers crashed holders, so a
// failed release is not fatal.
func (l *RunLock) Release(ctx context.Context) error {
	if l.rdb == nil {
		return nil
	}
	return l.rdb.Del(ctx, l.key).Err()
}
