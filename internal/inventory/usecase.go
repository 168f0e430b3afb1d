package inventory

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/shopspring/decimal"
)

type UseCase interface {
	GetStock(ctx context.Context, companyID, productID string) (decimal.Decimal, error)

	// AdjustStock locks the product and applies one manual movement.
	AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (decimal.Decimal, error)

	// ApplyMovement changes stock without locking. The caller must hold the
	// product lock and, on postgres, the surrounding transaction.
	ApplyMovement(ctx context.Context, input *dto.MovementInput) (*model.StockMovement, error)

	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error)
	ListLowStock(ctx context.Context, companyID string) ([]model.Product, error)
}
