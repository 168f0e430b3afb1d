package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// RedisLocker holds locks in Redis so several service replicas serialize on
// the same entities. Each key is held for at most ttl.
type RedisLocker struct {
	client  *redislock.Client
	ttl     time.Duration
	backoff time.Duration
}

func NewRedis(client *redis.Client, ttl, backoff time.Duration) *RedisLocker {
	return &RedisLocker{
		client:  redislock.New(client),
		ttl:     ttl,
		backoff: backoff,
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, keys ...string) (func(), error) {
	keys = normalize(keys)
	held := make([]*redislock.Lock, 0, len(keys))

	for _, k := range keys {
		lk, err := l.client.Obtain(ctx, "lock:"+k, l.ttl, &redislock.Options{
			RetryStrategy: redislock.LinearBackoff(l.backoff),
		})
		if err != nil {
			releaseAll(held)
			if errors.Is(err, redislock.ErrNotObtained) {
				return nil, fmt.Errorf("%w: %s", ErrNotAcquired, k)
			}
			return nil, fmt.Errorf("obtain lock %s: %w", k, err)
		}
		held = append(held, lk)
	}

	var once sync.Once
	return func() {
		once.Do(func() { releaseAll(held) })
	}, nil
}

func releaseAll(held []*redislock.Lock) {
	// The caller's context may already be done; release on a fresh one.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for i := len(held) - 1; i >= 0; i-- {
		_ = held[i].Release(ctx)
	}
}
