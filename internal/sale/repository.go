package sale

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/sale/dto"
)

type Repository interface {
	Create(ctx context.Context, s *model.Sale) error
	// FindByID and FindByNumber return nil, nil when there is no match.
	FindByID(ctx context.Context, id string) (*model.Sale, error)
	FindByNumber(ctx context.Context, companyID, branchID, number string) (*model.Sale, error)
	FindAll(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, error)
}
