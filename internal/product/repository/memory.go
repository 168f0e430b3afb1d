package repository

import (
	"context"
	"slices"
	"strings"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/product/dto"
	"github.com/fekuna/omnipos-sales-service/internal/storage/memdb"
)

type MemoryRepository struct {
	db *memdb.DB
}

func NewMemoryRepository(db *memdb.DB) *MemoryRepository {
	return &MemoryRepository{db: db}
}

func codeTaken(t *memdb.Tables, companyID, code, excludeID string) bool {
	for _, p := range t.Products {
		if p.CompanyID == companyID && p.Code == code && p.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *MemoryRepository) Create(_ context.Context, p *model.Product) error {
	return r.db.Write(func(t *memdb.Tables) error {
		if codeTaken(t, p.CompanyID, p.Code, "") {
			return &apperror.DuplicateCodeError{Entity: "product", Code: p.Code}
		}
		cp := *p
		t.Products[p.ID] = &cp
		return nil
	})
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.Product, error) {
	var out *model.Product
	err := r.db.Read(func(t *memdb.Tables) error {
		if p, ok := t.Products[id]; ok {
			cp := *p
			out = &cp
		}
		return nil
	})
	return out, err
}

func (r *MemoryRepository) FindByIDs(_ context.Context, ids []string) ([]model.Product, error) {
	out := make([]model.Product, 0, len(ids))
	err := r.db.Read(func(t *memdb.Tables) error {
		for _, id := range ids {
			if p, ok := t.Products[id]; ok {
				out = append(out, *p)
			}
		}
		return nil
	})
	return out, err
}

func (r *MemoryRepository) FindAll(_ context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	var items []model.Product
	search := strings.ToLower(f.SearchQuery)

	err := r.db.Read(func(t *memdb.Tables) error {
		for _, p := range t.Products {
			if f.CompanyID != "" && p.CompanyID != f.CompanyID {
				continue
			}
			if f.BranchID != "" && p.BranchID != f.BranchID {
				continue
			}
			if f.Category != "" && p.Category != f.Category {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(p.Name), search) &&
				!strings.Contains(strings.ToLower(p.Code), search) &&
				!strings.Contains(strings.ToLower(p.Description), search) {
				continue
			}
			items = append(items, *p)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	cmp := func(a, b model.Product) int { return a.CreatedAt.Compare(b.CreatedAt) }
	switch f.SortBy {
	case "name":
		cmp = func(a, b model.Product) int { return strings.Compare(a.Name, b.Name) }
	case "price":
		cmp = func(a, b model.Product) int { return a.Price.Cmp(b.Price) }
	case "code":
		cmp = func(a, b model.Product) int { return strings.Compare(a.Code, b.Code) }
	}
	if f.SortBy == "" || strings.ToLower(f.SortOrder) != "asc" {
		asc := cmp
		cmp = func(a, b model.Product) int { return asc(b, a) }
	}
	slices.SortStableFunc(items, cmp)

	total := len(items)
	if f.PageSize > 0 {
		start := (max(f.Page, 1) - 1) * f.PageSize
		if start > total {
			start = total
		}
		end := min(start+f.PageSize, total)
		items = items[start:end]
	}
	if items == nil {
		items = []model.Product{}
	}
	return items, total, nil
}

func (r *MemoryRepository) Update(_ context.Context, p *model.Product) error {
	return r.db.Write(func(t *memdb.Tables) error {
		cur, ok := t.Products[p.ID]
		if !ok || cur.CompanyID != p.CompanyID {
			return nil
		}
		if codeTaken(t, p.CompanyID, p.Code, p.ID) {
			return &apperror.DuplicateCodeError{Entity: "product", Code: p.Code}
		}
		// Stock is owned by inventory.
		cp := *p
		cp.Stock = cur.Stock
		t.Products[p.ID] = &cp
		return nil
	})
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	return r.db.Write(func(t *memdb.Tables) error {
		delete(t.Products, id)
		return nil
	})
}

func (r *MemoryRepository) IsCodeUnique(_ context.Context, companyID, code, excludeID string) (bool, error) {
	var taken bool
	err := r.db.Read(func(t *memdb.Tables) error {
		taken = codeTaken(t, companyID, code, excludeID)
		return nil
	})
	return !taken, err
}

func (r *MemoryRepository) ListCodes(_ context.Context, companyID, prefix string) ([]string, error) {
	var codes []string
	err := r.db.Read(func(t *memdb.Tables) error {
		for _, p := range t.Products {
			if p.CompanyID == companyID && strings.HasPrefix(p.Code, prefix+"-") {
				codes = append(codes, p.Code)
			}
		}
		return nil
	})
	return codes, err
}
