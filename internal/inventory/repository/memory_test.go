package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/storage/memdb"
	"github.com/shopspring/decimal"
)

func TestMemoryAdjustMissingProduct(t *testing.T) {
	db := memdb.New()
	repo := NewMemoryRepository(db)

	m := &model.StockMovement{ID: "m1", ProductID: "gone", CreatedAt: time.Now()}
	err := repo.AdjustStockWithMovement(context.Background(), "gone", decimal.NewFromInt(3), m)

	var nf *apperror.ProductNotFoundError
	if !errors.As(err, &nf) || nf.ProductID != "gone" {
		t.Fatalf("err = %v, want ProductNotFoundError", err)
	}
	_ = db.Read(func(tb *memdb.Tables) error {
		if len(tb.Movements) != 0 {
			t.Errorf("movement logged for missing product: %+v", tb.Movements)
		}
		return nil
	})
}
