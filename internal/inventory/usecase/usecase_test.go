package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/inventory"
	"github.com/fekuna/omnipos-sales-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-sales-service/internal/inventory/repository"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/storage"
	"github.com/fekuna/omnipos-sales-service/internal/storage/memdb"
	"github.com/fekuna/omnipos-sales-service/pkg/lock"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"github.com/shopspring/decimal"
)

func seed(t *testing.T, db *memdb.DB, products ...model.Product) {
	t.Helper()
	_ = db.Write(func(tb *memdb.Tables) error {
		for i := range products {
			p := products[i]
			tb.Products[p.ID] = &p
		}
		return nil
	})
}

func newUseCase(t *testing.T, products ...model.Product) (inventory.UseCase, *memdb.DB) {
	t.Helper()
	db := memdb.New()
	seed(t, db, products...)
	uc := NewInventoryUseCase(repository.NewMemoryRepository(db), lock.NewLocal(), storage.NoTxTransactor{}, nil, logger.NewNop())
	return uc, db
}

func product(id string, stock, minStock int64) model.Product {
	return model.Product{
		BaseModel: model.BaseModel{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		CompanyID: "c1",
		BranchID:  "b1",
		Code:      "MAT-" + id,
		Name:      "Producto " + id,
		Stock:     decimal.NewFromInt(stock),
		MinStock:  decimal.NewFromInt(minStock),
	}
}

func TestAdjustStock(t *testing.T) {
	tests := []struct {
		name      string
		change    int64
		wantStock int64
		wantErr   func(error) bool
	}{
		{name: "increase", change: 7, wantStock: 12},
		{name: "decrease to zero", change: -5, wantStock: 0},
		{name: "below zero", change: -6, wantStock: 5, wantErr: func(err error) bool {
			var se *apperror.InsufficientStockError
			return errors.As(err, &se) && se.Available.Equal(decimal.NewFromInt(5)) && se.Requested.Equal(decimal.NewFromInt(6))
		}},
		{name: "zero change", change: 0, wantStock: 5, wantErr: apperror.IsValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newUseCase(t, product("p1", 5, 1))
			ctx := context.Background()

			got, err := uc.AdjustStock(ctx, &dto.AdjustStockInput{
				CompanyID:      "c1",
				ProductID:      "p1",
				QuantityChange: decimal.NewFromInt(tt.change),
				Reason:         "conteo",
			})
			if tt.wantErr != nil {
				if !tt.wantErr(err) {
					t.Fatalf("err = %v", err)
				}
			} else if err != nil {
				t.Fatalf("AdjustStock: %v", err)
			} else if !got.Equal(decimal.NewFromInt(tt.wantStock)) {
				t.Fatalf("returned stock = %s, want %d", got, tt.wantStock)
			}

			stock, err := uc.GetStock(ctx, "c1", "p1")
			if err != nil {
				t.Fatalf("GetStock: %v", err)
			}
			if !stock.Equal(decimal.NewFromInt(tt.wantStock)) {
				t.Fatalf("stock = %s, want %d", stock, tt.wantStock)
			}
		})
	}
}

func TestAdjustStockLogsMovement(t *testing.T) {
	uc, _ := newUseCase(t, product("p1", 5, 1))
	ctx := context.Background()

	_, err := uc.AdjustStock(ctx, &dto.AdjustStockInput{
		CompanyID:      "c1",
		ProductID:      "p1",
		MovementType:   model.MovementRestock,
		QuantityChange: decimal.NewFromInt(3),
		ReferenceType:  "purchase",
		ReferenceID:    "po-1",
		UserID:         "u1",
	})
	if err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}

	movements, total, err := uc.ListMovements(ctx, &dto.MovementFilters{CompanyID: "c1", ProductID: "p1"})
	if err != nil {
		t.Fatalf("ListMovements: %v", err)
	}
	if total != 1 {
		t.Fatalf("total = %d, want 1", total)
	}
	m := movements[0]
	if m.MovementType != model.MovementRestock ||
		!m.QuantityBefore.Equal(decimal.NewFromInt(5)) ||
		!m.QuantityAfter.Equal(decimal.NewFromInt(8)) ||
		m.ReferenceID == nil || *m.ReferenceID != "po-1" {
		t.Fatalf("unexpected movement %+v", m)
	}
}

func TestProductNotFound(t *testing.T) {
	uc, _ := newUseCase(t, product("p1", 5, 1))
	ctx := context.Background()
	var nf *apperror.ProductNotFoundError

	if _, err := uc.GetStock(ctx, "c1", "missing"); !errors.As(err, &nf) {
		t.Fatalf("GetStock missing: err = %v", err)
	}
	if _, err := uc.GetStock(ctx, "c2", "p1"); !errors.As(err, &nf) {
		t.Fatalf("GetStock other company: err = %v", err)
	}
	_, err := uc.ApplyMovement(ctx, &dto.MovementInput{
		CompanyID:      "c1",
		ProductID:      "missing",
		MovementType:   model.MovementSale,
		QuantityChange: decimal.NewFromInt(-1),
	})
	if !errors.As(err, &nf) || nf.ProductID != "missing" {
		t.Fatalf("ApplyMovement missing: err = %v", err)
	}
}

func TestConcurrentAdjustmentsNeverGoNegative(t *testing.T) {
	const stock = 20
	uc, _ := newUseCase(t, product("p1", stock, 0))
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, fail int
	)
	for i := 0; i < stock+5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AdjustStock(ctx, &dto.AdjustStockInput{
				CompanyID:      "c1",
				ProductID:      "p1",
				QuantityChange: decimal.NewFromInt(-1),
			})
			mu.Lock()
			defer mu.Unlock()
			var se *apperror.InsufficientStockError
			switch {
			case err == nil:
				ok++
			case errors.As(err, &se):
				fail++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if ok != stock || fail != 5 {
		t.Fatalf("ok=%d fail=%d, want %d and 5", ok, fail, stock)
	}
	got, _ := uc.GetStock(ctx, "c1", "p1")
	if !got.IsZero() {
		t.Fatalf("stock = %s, want 0", got)
	}
}

func TestListLowStock(t *testing.T) {
	other := product("p4", 0, 1)
	other.CompanyID = "c2"
	uc, _ := newUseCase(t, product("p1", 5, 1), product("p2", 1, 1), product("p3", 0, 2), other)
	ctx := context.Background()

	low, err := uc.ListLowStock(ctx, "c1")
	if err != nil {
		t.Fatalf("ListLowStock: %v", err)
	}
	if len(low) != 2 || low[0].ID != "p2" || low[1].ID != "p3" {
		t.Fatalf("ListLowStock(c1) = %+v", low)
	}

	all, _ := uc.ListLowStock(ctx, "")
	if len(all) != 3 {
		t.Fatalf("ListLowStock(all) = %d products, want 3", len(all))
	}
}
