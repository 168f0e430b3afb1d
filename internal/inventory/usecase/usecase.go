package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/inventory"
	"github.com/fekuna/omnipos-sales-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/storage"
	"github.com/fekuna/omnipos-sales-service/internal/validation"
	"github.com/fekuna/omnipos-sales-service/pkg/lock"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CatalogRefresher is notified after stock changes so cached listings and
// the search index stay current.
type CatalogRefresher interface {
	RefreshCatalog(ctx context.Context, companyID string, productIDs ...string)
}

type inventoryUseCase struct {
	repo    inventory.Repository
	locker  lock.Locker
	tx      storage.Transactor
	catalog CatalogRefresher
	logger  logger.ZapLogger
}

// NewInventoryUseCase builds the stock usecase. catalog may be nil.
func NewInventoryUseCase(repo inventory.Repository, locker lock.Locker, tx storage.Transactor, catalog CatalogRefresher, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:    repo,
		locker:  locker,
		tx:      tx,
		catalog: catalog,
		logger:  log.Named("inventory"),
	}
}

func (uc *inventoryUseCase) GetStock(ctx context.Context, companyID, productID string) (decimal.Decimal, error) {
	p, err := uc.repo.GetProduct(ctx, productID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get product: %w", err)
	}
	if p == nil || p.CompanyID != companyID {
		return decimal.Zero, &apperror.ProductNotFoundError{ProductID: productID}
	}
	return p.Stock, nil
}

func (uc *inventoryUseCase) AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (decimal.Decimal, error) {
	if err := validation.Struct(input); err != nil {
		return decimal.Zero, err
	}
	if input.QuantityChange.IsZero() {
		return decimal.Zero, apperror.NewValidationError("quantityChange", "ne_zero")
	}

	release, err := uc.locker.Acquire(ctx, lock.Key("product", input.ProductID))
	if err != nil {
		return decimal.Zero, apperror.Busy(err)
	}
	defer release()

	movementType := input.MovementType
	if movementType == "" {
		movementType = model.MovementAdjustment
	}

	var movement *model.StockMovement
	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		movement, err = uc.ApplyMovement(ctx, &dto.MovementInput{
			CompanyID:      input.CompanyID,
			ProductID:      input.ProductID,
			MovementType:   movementType,
			QuantityChange: input.QuantityChange,
			Notes:          input.Reason,
			ReferenceType:  input.ReferenceType,
			ReferenceID:    input.ReferenceID,
			UserID:         input.UserID,
		})
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}

	uc.logger.Info("stock adjusted",
		zap.String("product_id", input.ProductID),
		zap.String("movement_type", movementType),
		zap.String("quantity_change", input.QuantityChange.String()),
		zap.String("quantity_after", movement.QuantityAfter.String()),
	)

	if uc.catalog != nil {
		go uc.catalog.RefreshCatalog(context.Background(), input.CompanyID, input.ProductID)
	}

	return movement.QuantityAfter, nil
}

func (uc *inventoryUseCase) ApplyMovement(ctx context.Context, input *dto.MovementInput) (*model.StockMovement, error) {
	p, err := uc.repo.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if p == nil || p.CompanyID != input.CompanyID {
		return nil, &apperror.ProductNotFoundError{ProductID: input.ProductID}
	}

	after := p.Stock.Add(input.QuantityChange)
	if after.IsNegative() {
		return nil, &apperror.InsufficientStockError{
			ProductID:   p.ID,
			ProductName: p.Name,
			Available:   p.Stock,
			Requested:   input.QuantityChange.Neg(),
		}
	}

	movement := &model.StockMovement{
		ID:             uuid.New().String(),
		CompanyID:      input.CompanyID,
		ProductID:      p.ID,
		MovementType:   input.MovementType,
		QuantityChange: input.QuantityChange,
		QuantityBefore: p.Stock,
		QuantityAfter:  after,
		ReferenceType:  optional(input.ReferenceType),
		ReferenceID:    optional(input.ReferenceID),
		Notes:          input.Notes,
		CreatedBy:      optional(input.UserID),
		CreatedAt:      time.Now(),
	}

	if err := uc.repo.AdjustStockWithMovement(ctx, p.ID, after, movement); err != nil {
		return nil, fmt.Errorf("adjust stock: %w", err)
	}
	return movement, nil
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error) {
	return uc.repo.ListMovements(ctx, filters)
}

func (uc *inventoryUseCase) ListLowStock(ctx context.Context, companyID string) ([]model.Product, error) {
	return uc.repo.FindLowStock(ctx, companyID)
}

func optional(s string) *string {
	if s == "" || s == "unknown" {
		return nil
	}
	return &s
}
