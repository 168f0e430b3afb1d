package product

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, companyID, id string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, companyID, id string) error
	NextProductCode(ctx context.Context, companyID string) (string, error)

	// RefreshCatalog drops cached listings and reindexes the given products
	// after their stock changed elsewhere.
	RefreshCatalog(ctx context.Context, companyID string, productIDs ...string)
}
