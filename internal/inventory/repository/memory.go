package repository

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/storage/memdb"
	"github.com/shopspring/decimal"
)

type MemoryRepository struct {
	db *memdb.DB
}

func NewMemoryRepository(db *memdb.DB) *MemoryRepository {
	return &MemoryRepository{db: db}
}

func (r *MemoryRepository) GetProduct(_ context.Context, productID string) (*model.Product, error) {
	var out *model.Product
	err := r.db.Read(func(t *memdb.Tables) error {
		if p, ok := t.Products[productID]; ok {
			cp := *p
			out = &cp
		}
		return nil
	})
	return out, err
}

func (r *MemoryRepository) AdjustStockWithMovement(_ context.Context, productID string, stock decimal.Decimal, m *model.StockMovement) error {
	return r.db.Write(func(t *memdb.Tables) error {
		p, ok := t.Products[productID]
		if !ok {
			return &apperror.ProductNotFoundError{ProductID: productID}
		}
		p.Stock = stock
		p.UpdatedAt = m.CreatedAt
		t.Movements = append(t.Movements, *m)
		return nil
	})
}

func (r *MemoryRepository) ListMovements(_ context.Context, f *dto.MovementFilters) ([]model.StockMovement, int, error) {
	items := []model.StockMovement{}
	err := r.db.Read(func(t *memdb.Tables) error {
		// Newest first.
		for i := len(t.Movements) - 1; i >= 0; i-- {
			m := t.Movements[i]
			if f.CompanyID != "" && m.CompanyID != f.CompanyID {
				continue
			}
			if f.ProductID != "" && m.ProductID != f.ProductID {
				continue
			}
			if f.MovementType != "" && m.MovementType != f.MovementType {
				continue
			}
			items = append(items, m)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	total := len(items)
	if f.PageSize > 0 {
		start := min((max(f.Page, 1)-1)*f.PageSize, total)
		end := min(start+f.PageSize, total)
		items = items[start:end]
	}
	return items, total, nil
}

func (r *MemoryRepository) FindLowStock(_ context.Context, companyID string) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.Read(func(t *memdb.Tables) error {
		for _, p := range t.Products {
			if companyID != "" && p.CompanyID != companyID {
				continue
			}
			if p.IsLowStock() {
				products = append(products, *p)
			}
		}
		return nil
	})
	slices.SortFunc(products, func(a, b model.Product) int {
		return cmp.Or(strings.Compare(a.CompanyID, b.CompanyID), strings.Compare(a.Code, b.Code))
	})
	return products, err
}
