package inventory

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/shopspring/decimal"
)

type Repository interface {
	// GetProduct loads a product row, locking it when ctx carries a transaction.
	GetProduct(ctx context.Context, productID string) (*model.Product, error)

	// AdjustStockWithMovement writes the new stock and its audit row together.
	AdjustStockWithMovement(ctx context.Context, productID string, stock decimal.Decimal, movement *model.StockMovement) error

	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error)

	// FindLowStock returns products at or below their minimum. An empty
	// companyID covers every company.
	FindLowStock(ctx context.Context, companyID string) ([]model.Product, error)
}
