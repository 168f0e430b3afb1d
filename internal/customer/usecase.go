package customer

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/customer/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
)

type UseCase interface {
	CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error)
	GetCustomer(ctx context.Context, companyID, id string) (*model.Customer, error)
	// ListCustomers returns customers with their current debt and available credit.
	ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.CustomerWithCredit, error)
	UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error)
	NextCustomerCode(ctx context.Context, companyID, branchID string) (string, error)
}
