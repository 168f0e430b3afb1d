package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestLocalLockerMutualExclusion(t *testing.T) {
	l := NewLocal()
	const workers = 50

	var (
		wg      sync.WaitGroup
		counter int
		inside  int
		maxSeen int
		mu      sync.Mutex
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(context.Background(), Key("product", "p1"))
			if err != nil {
				t.Errorf("Acquire: %v", err)
				return
			}
			defer release()

			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			counter++ // guarded by the lock under test

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Fatalf("counter = %d, want %d", counter, workers)
	}
	if maxSeen != 1 {
		t.Fatalf("max concurrent holders = %d, want 1", maxSeen)
	}
	if n := l.size(); n != 0 {
		t.Fatalf("entries left after release = %d, want 0", n)
	}
}

func TestLocalLockerTimeout(t *testing.T) {
	l := NewLocal()
	release, err := l.Acquire(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = l.Acquire(ctx, "c", "b")
	if !errors.Is(err, ErrNotAcquired) {
		t.Fatalf("err = %v, want ErrNotAcquired", err)
	}

	// "c" must have been released when "b" could not be taken.
	release2, err := l.Acquire(context.Background(), "c")
	if err != nil {
		t.Fatalf("Acquire c after failed set: %v", err)
	}
	release2()
}

func TestLocalLockerOverlappingSetsDoNotDeadlock(t *testing.T) {
	l := NewLocal()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(context.Background(), "x", "y")
			if err != nil {
				t.Errorf("Acquire: %v", err)
				return
			}
			release()
		}()
		go func() {
			defer wg.Done()
			release, err := l.Acquire(context.Background(), "y", "x")
			if err != nil {
				t.Errorf("Acquire: %v", err)
				return
			}
			release()
		}()
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("overlapping lock sets deadlocked")
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	l := NewLocal()
	release, err := l.Acquire(context.Background(), "k")
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	release()
	release()

	release, err = l.Acquire(context.Background(), "k")
	if err != nil {
		t.Fatalf("re-Acquire: %v", err)
	}
	release()
}

func TestNormalize(t *testing.T) {
	got := normalize([]string{"b", "", "a", "b"})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("normalize = %v", got)
	}
	if k := Key("customer", "c1"); k != "customer:c1" {
		t.Fatalf("Key = %q", k)
	}
}
