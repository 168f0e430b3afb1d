package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	customerrepo "github.com/fekuna/omnipos-sales-service/internal/customer/repository"
	"github.com/fekuna/omnipos-sales-service/internal/ledger"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/storage/pgtest"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func seedCustomer(t *testing.T, repo *customerrepo.PGRepository) string {
	t.Helper()
	now := time.Now()
	c := &model.Customer{
		BaseModel:   model.BaseModel{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		CompanyID:   "co-" + uuid.NewString(),
		BranchID:    "b1",
		Code:        "CLI-0001",
		Name:        "Ferretería Test",
		CreditLimit: decimal.NewFromInt(1000),
	}
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return c.ID
}

func pgEntry(customerID string, seq int64, amount, balance int64) *model.CreditTransaction {
	now := time.Now()
	return &model.CreditTransaction{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Sequence:   seq,
		Type:       model.CreditTypeSale,
		Amount:     decimal.NewFromInt(amount),
		Balance:    decimal.NewFromInt(balance),
		Date:       now,
		CompanyID:  "c1",
		BranchID:   "b1",
		CreatedAt:  now,
	}
}

func TestPGAppendRejectsSequenceConflicts(t *testing.T) {
	db := pgtest.Open(t)
	repo := NewPGRepository(db)
	customerID := seedCustomer(t, customerrepo.NewPGRepository(db))
	ctx := context.Background()

	if err := repo.Append(ctx, pgEntry(customerID, 1, 40, 40)); err != nil {
		t.Fatalf("Append(1): %v", err)
	}

	tests := []struct {
		name string
		seq  int64
	}{
		{name: "sequence already used", seq: 1},
		{name: "sequence skips ahead", seq: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Append(ctx, pgEntry(customerID, tt.seq, 10, 50))
			if !errors.Is(err, ledger.ErrSequenceConflict) {
				t.Fatalf("Append(%d) = %v, want ErrSequenceConflict", tt.seq, err)
			}
		})
	}

	tail, err := repo.Tail(ctx, customerID)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if tail.LastSequence != 1 || !tail.CurrentDebt.Equal(decimal.NewFromInt(40)) || tail.CreditCount != 1 {
		t.Fatalf("tail = %+v, want sequence 1 and debt 40", tail)
	}
	entries, err := repo.ListEntries(ctx, customerID)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want rejected appends rolled back", len(entries))
	}
}

func TestPGConcurrentAppendsOneWins(t *testing.T) {
	db := pgtest.Open(t)
	repo := NewPGRepository(db)
	customerID := seedCustomer(t, customerrepo.NewPGRepository(db))

	const writers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Append(context.Background(), pgEntry(customerID, 1, 10, 10))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, ledger.ErrSequenceConflict):
				conflicts++
			default:
				t.Errorf("Append: %v", err)
			}
		}()
	}
	wg.Wait()

	if ok != 1 || conflicts != writers-1 {
		t.Fatalf("ok = %d, conflicts = %d, want 1 and %d", ok, conflicts, writers-1)
	}
}
