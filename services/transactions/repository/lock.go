package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/salesboard/internal/pkg/database"
	"github.com/piresc/salesboard/services/transactions"
)

const seedLockKey = "transactions:seed:lock"

// releaseScript deletes the lock only if it still holds our token
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// RedisSeedLocker is a SETNX lock shared by every instance using the same Redis
type RedisSeedLocker struct {
	redis *database.RedisClient
	ttl   time.Duration
}

// NewRedisSeedLocker creates a Redis backed seed lock
func NewRedisSeedLocker(redisClient *database.RedisClient, ttl time.Duration) *RedisSeedLocker {
	return &RedisSeedLocker{redis: redisClient, ttl: ttl}
}

// Acquire takes the lock for ttl
func (l *RedisSeedLocker) Acquire(ctx context.Context) (func(context.Context) error, error) {
	token := uuid.NewString()

	ok, err := l.redis.SetNX(ctx, seedLockKey, token, l.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to set seed lock: %w", err)
	}
	if !ok {
		return nil, transactions.ErrSeedInProgress
	}

	release := func(ctx context.Context) error {
		if _, err := l.redis.Eval(ctx, releaseScript, []string{seedLockKey}, token); err != nil {
			return fmt.Errorf("failed to release seed lock: %w", err)
		}
		return nil
	}
	return release, nil
}

// LocalSeedLocker serialises reseeds within one process
type LocalSeedLocker struct {
	mu sync.Mutex
}

// NewLocalSeedLocker creates an in-process seed lock
func NewLocalSeedLocker() *LocalSeedLocker {
	return &LocalSeedLocker{}
}

// Acquire takes the lock without waiting
func (l *LocalSeedLocker) Acquire(ctx context.Context) (func(context.Context) error, error) {
	if !l.mu.TryLock() {
		return nil, transactions.ErrSeedInProgress
	}

	var once sync.Once
	release := func(context.Context) error {
		once.Do(l.mu.Unlock)
		return nil
	}
	return release, nil
}
