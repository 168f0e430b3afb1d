package lock

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// newRedisLocker connects to REDIS_ADDR. Tests using it are skipped when the
// variable is unset.
func newRedisLocker(t *testing.T) *RedisLocker {
	t.Helper()
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		t.Skip("set REDIS_ADDR to run redis lock tests")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("ping redis at %s: %v", addr, err)
	}
	return NewRedis(client, 5*time.Second, 10*time.Millisecond)
}

func notAcquired(err error) bool {
	return errors.Is(err, ErrNotAcquired) || errors.Is(err, context.DeadlineExceeded)
}

func TestRedisLockerExclusion(t *testing.T) {
	l := newRedisLocker(t)
	key := Key("product", uuid.NewString())
	ctx := context.Background()

	release, err := l.Acquire(ctx, key)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	short, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	if _, err := l.Acquire(short, key); !notAcquired(err) {
		t.Fatalf("second Acquire = %v, want ErrNotAcquired", err)
	}

	release()
	release()

	again, err := l.Acquire(ctx, key)
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	again()
}

func TestRedisLockerAllOrNothing(t *testing.T) {
	l := newRedisLocker(t)
	id := uuid.NewString()
	a, b := Key("product", id, "a"), Key("product", id, "b")
	ctx := context.Background()

	holdB, err := l.Acquire(ctx, b)
	if err != nil {
		t.Fatalf("Acquire b: %v", err)
	}
	defer holdB()

	short, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	if _, err := l.Acquire(short, a, b); !notAcquired(err) {
		t.Fatalf("Acquire a+b = %v, want ErrNotAcquired", err)
	}

	// a was taken and given back when b failed.
	quick, cancel2 := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel2()
	releaseA, err := l.Acquire(quick, a)
	if err != nil {
		t.Fatalf("a still held after failed Acquire: %v", err)
	}
	releaseA()
}
