package repository

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/ledger"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/storage/memdb"
)

type MemoryRepository struct {
	db *memdb.DB
}

func NewMemoryRepository(db *memdb.DB) *MemoryRepository {
	return &MemoryRepository{db: db}
}

func (r *MemoryRepository) Tail(_ context.Context, customerID string) (model.CreditSummary, error) {
	var s model.CreditSummary
	err := r.db.Read(func(t *memdb.Tables) error {
		s = t.Balances[customerID]
		s.CustomerID = customerID
		return nil
	})
	return s, err
}

func (r *MemoryRepository) Append(_ context.Context, e *model.CreditTransaction) error {
	return r.db.Write(func(t *memdb.Tables) error {
		tail := t.Balances[e.CustomerID]
		if e.Sequence != tail.LastSequence+1 {
			return ledger.ErrSequenceConflict
		}
		t.Credit[e.CustomerID] = append(t.Credit[e.CustomerID], *e)

		tail.CustomerID = e.CustomerID
		tail.CurrentDebt = e.Balance
		tail.LastSequence = e.Sequence
		if e.Type == model.CreditTypeSale {
			tail.CreditCount++
		}
		t.Balances[e.CustomerID] = tail
		return nil
	})
}

func (r *MemoryRepository) ListEntries(_ context.Context, customerID string) ([]model.CreditTransaction, error) {
	var out []model.CreditTransaction
	err := r.db.Read(func(t *memdb.Tables) error {
		entries := t.Credit[customerID]
		out = make([]model.CreditTransaction, 0, len(entries))
		for i := len(entries) - 1; i >= 0; i-- {
			out = append(out, entries[i])
		}
		return nil
	})
	return out, err
}

func (r *MemoryRepository) Summaries(_ context.Context, customerIDs []string) (map[string]model.CreditSummary, error) {
	out := make(map[string]model.CreditSummary, len(customerIDs))
	err := r.db.Read(func(t *memdb.Tables) error {
		for _, id := range customerIDs {
			if s, ok := t.Balances[id]; ok {
				out[id] = s
			}
		}
		return nil
	})
	return out, err
}
