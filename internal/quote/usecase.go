package quote

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/quote/dto"
)

// UseCase manages quotes. Quotes never touch stock or the credit ledger.
type UseCase interface {
	CreateQuote(ctx context.Context, input *dto.CreateQuoteInput) (*model.Quote, error)
	GetQuote(ctx context.Context, companyID, id string) (*model.Quote, error)
	ListQuotes(ctx context.Context, filters *dto.QuoteFilters) ([]model.Quote, error)
	UpdateQuoteStatus(ctx context.Context, input *dto.UpdateStatusInput) (*model.Quote, error)
	PeekNextQuoteNumber(ctx context.Context, companyID, branchID string) (string, error)
}
