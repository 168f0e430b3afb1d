package repository

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/quote/dto"
	"github.com/fekuna/omnipos-sales-service/internal/storage/memdb"
)

type MemoryRepository struct {
	db *memdb.DB
}

func NewMemoryRepository(db *memdb.DB) *MemoryRepository {
	return &MemoryRepository{db: db}
}

func (r *MemoryRepository) Create(_ context.Context, q *model.Quote) error {
	return r.db.Write(func(t *memdb.Tables) error {
		t.Quotes[q.ID] = q.Clone()
		return nil
	})
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.Quote, error) {
	var out *model.Quote
	err := r.db.Read(func(t *memdb.Tables) error {
		out = t.Quotes[id].Clone()
		return nil
	})
	return out, err
}

func (r *MemoryRepository) FindAll(_ context.Context, f *dto.QuoteFilters) ([]model.Quote, error) {
	quotes := []model.Quote{}
	err := r.db.Read(func(t *memdb.Tables) error {
		for _, q := range t.Quotes {
			if q.CompanyID != f.CompanyID {
				continue
			}
			if f.BranchID != "" && q.BranchID != f.BranchID {
				continue
			}
			quotes = append(quotes, *q.Clone())
		}
		return nil
	})

	slices.SortFunc(quotes, func(a, b model.Quote) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), strings.Compare(b.QuoteNumber, a.QuoteNumber))
	})
	return quotes, err
}

func (r *MemoryRepository) UpdateStatus(_ context.Context, id, status string) error {
	return r.db.Write(func(t *memdb.Tables) error {
		if q, ok := t.Quotes[id]; ok {
			q.Status = status
		}
		return nil
	})
}
