package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireCarLock attempts to acquire the placement lock for the given car.
// The lock serializes read-check-write booking commits on one car across
// sessions; the versioned collection write remains the hard guard.
// Returns true if the lock was acquired, false if already held.
func (s *LockStore) AcquireCarLock(ctx context.Context, carID string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:car:%s", carID)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseCarLock releases the placement lock for the given car.
func (s *LockStore) ReleaseCarLock(ctx context.Context, carID string) error {
	key := fmt.Sprintf("lock:car:%s", carID)

	return s.client.Del(ctx, key).Err()
}
