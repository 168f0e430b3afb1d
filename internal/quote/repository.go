package quote

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/quote/dto"
)

type Repository interface {
	Create(ctx context.Context, q *model.Quote) error
	FindByID(ctx context.Context, id string) (*model.Quote, error)
	FindAll(ctx context.Context, filters *dto.QuoteFilters) ([]model.Quote, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
