package customer

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/customer/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, c *model.Customer) error
	// FindByID returns nil, nil when the customer does not exist.
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	FindAll(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	ListCodes(ctx context.Context, companyID, branchID, prefix string) ([]string, error)
}
