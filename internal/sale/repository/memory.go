package repository

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/sale/dto"
	"github.com/fekuna/omnipos-sales-service/internal/storage/memdb"
)

type MemoryRepository struct {
	db *memdb.DB
}

func NewMemoryRepository(db *memdb.DB) *MemoryRepository {
	return &MemoryRepository{db: db}
}

func (r *MemoryRepository) Create(_ context.Context, s *model.Sale) error {
	return r.db.Write(func(t *memdb.Tables) error {
		t.Sales[s.ID] = s.Clone()
		return nil
	})
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.Sale, error) {
	var out *model.Sale
	err := r.db.Read(func(t *memdb.Tables) error {
		out = t.Sales[id].Clone()
		return nil
	})
	return out, err
}

func (r *MemoryRepository) FindByNumber(_ context.Context, companyID, branchID, number string) (*model.Sale, error) {
	var out *model.Sale
	err := r.db.Read(func(t *memdb.Tables) error {
		for _, s := range t.Sales {
			if s.CompanyID == companyID && s.BranchID == branchID && s.SaleNumber == number {
				out = s.Clone()
				break
			}
		}
		return nil
	})
	return out, err
}

func (r *MemoryRepository) FindAll(_ context.Context, f *dto.SaleFilters) ([]model.Sale, error) {
	sales := []model.Sale{}
	err := r.db.Read(func(t *memdb.Tables) error {
		for _, s := range t.Sales {
			if s.CompanyID != f.CompanyID {
				continue
			}
			if f.BranchID != "" && s.BranchID != f.BranchID {
				continue
			}
			sales = append(sales, *s.Clone())
		}
		return nil
	})

	// Newest first; numbers break ties between sales created in the same instant.
	slices.SortFunc(sales, func(a, b model.Sale) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), strings.Compare(b.SaleNumber, a.SaleNumber))
	})
	return sales, err
}
