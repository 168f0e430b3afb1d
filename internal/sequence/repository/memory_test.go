package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/fekuna/omnipos-sales-service/internal/sequence"
	"github.com/fekuna/omnipos-sales-service/internal/storage/memdb"
)

func TestMemoryNextIsUniqueUnderConcurrency(t *testing.T) {
	repo := NewMemoryRepository(memdb.New())
	ctx := context.Background()

	const n = 200
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int64]bool, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := repo.Next(ctx, "c1", "b1", sequence.KindSale)
			if err != nil {
				t.Errorf("Next: %v", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if seen[v] {
				t.Errorf("duplicate number %d", v)
			}
			seen[v] = true
		}()
	}
	wg.Wait()

	cur, err := repo.Current(ctx, "c1", "b1", sequence.KindSale)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if cur != n {
		t.Fatalf("Current = %d, want %d", cur, n)
	}
}

func TestMemoryCountersAreScoped(t *testing.T) {
	repo := NewMemoryRepository(memdb.New())
	ctx := context.Background()

	for _, scope := range []struct{ company, branch, kind string }{
		{"c1", "b1", sequence.KindSale},
		{"c1", "b2", sequence.KindSale},
		{"c1", "b1", sequence.KindQuote},
	} {
		v, err := repo.Next(ctx, scope.company, scope.branch, scope.kind)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if v != 1 {
			t.Fatalf("Next(%v) = %d, want 1", scope, v)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := sequence.FormatSaleNumber(42); got != "DTE-01-00000001-00000000-00000042" {
		t.Fatalf("FormatSaleNumber = %q", got)
	}
	if got := sequence.FormatQuoteNumber(7); got != "COT-00000007" {
		t.Fatalf("FormatQuoteNumber = %q", got)
	}
}
