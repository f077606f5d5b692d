// Package lock serialises get-or-create attempts on the same key across instances.
// The lock is advisory: callers must keep a unique constraint as the final guard.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "journal:lock:"

var ErrNotObtained = errors.New("lock not obtained")

type Release func()

type Locker struct {
	client *redislock.Client
	ttl    time.Duration
	retry  redislock.RetryStrategy
}

func New(rdb *redis.Client, ttl time.Duration) *Locker {
	return &Locker{
		client: redislock.New(rdb),
		ttl:    ttl,
		retry:  redislock.LimitRetry(redislock.LinearBackoff(50*time.Millisecond), 20),
	}
}

// Obtain takes the lock for key. The returned Release is always safe to call.
func (l *Locker) Obtain(ctx context.Context, key string) (Release, error) {
	lk, err := l.client.Obtain(ctx, keyPrefix+key, l.ttl, &redislock.Options{RetryStrategy: l.retry})
	if errors.Is(err, redislock.ErrNotObtained) {
		return func() {}, ErrNotObtained
	}

	if err != nil {
		return func() {}, fmt.Errorf("obtain lock %q: %w", key, err)
	}

	return func() {
		_ = lk.Release(context.WithoutCancel(ctx))
	}, nil
}

// Nop is used when Redis is not configured.
type Nop struct{}

func (Nop) Obtain(context.Context, string) (Release, error) {
	return func() {}, nil
}

func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}
