package sale

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/sale/dto"
)

type UseCase interface {
	// CommitSale validates, numbers and stores a sale, decrements stock and,
	// for credit sales, charges the customer. Either every effect is applied
	// or none is visible.
	CommitSale(ctx context.Context, input *dto.CommitSaleInput) (*model.Sale, error)

	GetSale(ctx context.Context, companyID, id string) (*model.Sale, error)
	GetSaleByNumber(ctx context.Context, companyID, branchID, number string) (*model.Sale, error)
	ListSales(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, error)

	// PeekNextSaleNumber previews the next number without allocating it.
	PeekNextSaleNumber(ctx context.Context, companyID, branchID string) (string, error)
}
