package repository

import (
	"context"
	"slices"
	"strings"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/customer/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/storage/memdb"
)

type MemoryRepository struct {
	db *memdb.DB
}

func NewMemoryRepository(db *memdb.DB) *MemoryRepository {
	return &MemoryRepository{db: db}
}

func codeTaken(t *memdb.Tables, c *model.Customer) bool {
	for _, other := range t.Customers {
		if other.ID != c.ID && other.CompanyID == c.CompanyID && other.BranchID == c.BranchID && other.Code == c.Code {
			return true
		}
	}
	return false
}

func (r *MemoryRepository) Create(_ context.Context, c *model.Customer) error {
	return r.db.Write(func(t *memdb.Tables) error {
		if codeTaken(t, c) {
			return &apperror.DuplicateCodeError{Entity: "customer", Code: c.Code}
		}
		cp := *c
		t.Customers[c.ID] = &cp
		return nil
	})
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.Customer, error) {
	var out *model.Customer
	err := r.db.Read(func(t *memdb.Tables) error {
		if c, ok := t.Customers[id]; ok {
			cp := *c
			out = &cp
		}
		return nil
	})
	return out, err
}

func (r *MemoryRepository) FindAll(_ context.Context, f *dto.CustomerFilters) ([]model.Customer, error) {
	customers := []model.Customer{}
	search := strings.ToLower(f.SearchQuery)

	err := r.db.Read(func(t *memdb.Tables) error {
		for _, c := range t.Customers {
			if c.CompanyID != f.CompanyID {
				continue
			}
			if f.BranchID != "" && c.BranchID != f.BranchID {
				continue
			}
			if search != "" && !matches(c, search) {
				continue
			}
			customers = append(customers, *c)
		}
		return nil
	})

	slices.SortFunc(customers, func(a, b model.Customer) int { return strings.Compare(a.Name, b.Name) })
	return customers, err
}

func matches(c *model.Customer, search string) bool {
	for _, field := range []string{c.Name, c.Code, c.Email, c.Phone} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func (r *MemoryRepository) Update(_ context.Context, c *model.Customer) error {
	return r.db.Write(func(t *memdb.Tables) error {
		cur, ok := t.Customers[c.ID]
		if !ok || cur.CompanyID != c.CompanyID {
			return nil
		}
		if codeTaken(t, c) {
			return &apperror.DuplicateCodeError{Entity: "customer", Code: c.Code}
		}
		cp := *c
		t.Customers[c.ID] = &cp
		return nil
	})
}

func (r *MemoryRepository) ListCodes(_ context.Context, companyID, branchID, prefix string) ([]string, error) {
	var codes []string
	err := r.db.Read(func(t *memdb.Tables) error {
		for _, c := range t.Customers {
			if c.CompanyID == companyID && c.BranchID == branchID && strings.HasPrefix(c.Code, prefix+"-") {
				codes = append(codes, c.Code)
			}
		}
		return nil
	})
	return codes, err
}
