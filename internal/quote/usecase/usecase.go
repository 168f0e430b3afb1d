package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/pricing"
	"github.com/fekuna/omnipos-sales-service/internal/quote"
	"github.com/fekuna/omnipos-sales-service/internal/quote/dto"
	"github.com/fekuna/omnipos-sales-service/internal/sequence"
	"github.com/fekuna/omnipos-sales-service/internal/storage"
	"github.com/fekuna/omnipos-sales-service/internal/validation"
	"github.com/fekuna/omnipos-sales-service/pkg/lock"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductReader interface {
	GetProduct(ctx context.Context, productID string) (*model.Product, error)
}

type quoteUseCase struct {
	repo      quote.Repository
	products  ProductReader
	sequences sequence.Repository
	locker    lock.Locker
	tx        storage.Transactor
	logger    logger.ZapLogger
}

func NewQuoteUseCase(
	repo quote.Repository,
	products ProductReader,
	sequences sequence.Repository,
	locker lock.Locker,
	tx storage.Transactor,
	log logger.ZapLogger,
) quote.UseCase {
	return &quoteUseCase{
		repo:      repo,
		products:  products,
		sequences: sequences,
		locker:    locker,
		tx:        tx,
		logger:    log.Named("quote"),
	}
}

func (uc *quoteUseCase) CreateQuote(ctx context.Context, input *dto.CreateQuoteInput) (*model.Quote, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	items, err := uc.snapshotItems(ctx, input)
	if err != nil {
		return nil, err
	}

	totals, err := pricing.Compute(items, input.Discount)
	if err != nil {
		return nil, err
	}

	release, err := uc.locker.Acquire(ctx, lock.Key("sequence", input.CompanyID, input.BranchID, sequence.KindQuote))
	if err != nil {
		return nil, apperror.Busy(err)
	}
	defer release()

	now := time.Now()
	q := &model.Quote{
		ID:               uuid.New().String(),
		Date:             now,
		ValidUntil:       input.ValidUntil,
		CustomerName:     input.CustomerName,
		CustomerDocument: input.CustomerDocument,
		CustomerPhone:    input.CustomerPhone,
		CustomerEmail:    input.CustomerEmail,
		Items:            items,
		Subtotal:         totals.Subtotal,
		Discount:         totals.Discount,
		Tax:              totals.Tax,
		Total:            totals.Total,
		Status:           model.QuotePending,
		Notes:            input.Notes,
		CompanyID:        input.CompanyID,
		BranchID:         input.BranchID,
		CreatedBy:        input.UserID,
		CreatedAt:        now,
	}
	if input.CustomerID != "" {
		customerID := input.CustomerID
		q.CustomerID = &customerID
	}

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		n, err := uc.sequences.Next(ctx, input.CompanyID, input.BranchID, sequence.KindQuote)
		if err != nil {
			return fmt.Errorf("allocate quote number: %w", err)
		}
		q.QuoteNumber = sequence.FormatQuoteNumber(n)
		if err := uc.repo.Create(ctx, q); err != nil {
			return fmt.Errorf("create quote: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("quote created",
		zap.String("quote_id", q.ID),
		zap.String("quote_number", q.QuoteNumber),
		zap.String("total", q.Total.String()),
	)
	return q.Clone(), nil
}

// snapshotItems requires every product to exist in the company. Stock is not
// checked: a quote reserves nothing.
func (uc *quoteUseCase) snapshotItems(ctx context.Context, input *dto.CreateQuoteInput) (model.SaleItems, error) {
	items := make(model.SaleItems, len(input.Items))
	for i, in := range input.Items {
		p, err := uc.products.GetProduct(ctx, in.ProductID)
		if err != nil {
			return nil, fmt.Errorf("get product: %w", err)
		}
		if p == nil || p.CompanyID != input.CompanyID {
			return nil, &apperror.ProductNotFoundError{ProductID: in.ProductID}
		}
		items[i] = in.Snapshot(p)
	}
	return items, nil
}

func (uc *quoteUseCase) GetQuote(ctx context.Context, companyID, id string) (*model.Quote, error) {
	q, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find quote: %w", err)
	}
	if q == nil || q.CompanyID != companyID {
		return nil, apperror.ErrQuoteNotFound
	}
	return q, nil
}

func (uc *quoteUseCase) ListQuotes(ctx context.Context, filters *dto.QuoteFilters) ([]model.Quote, error) {
	quotes, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return quotes, nil
}

// UpdateQuoteStatus moves a pending quote to its outcome. Approved, rejected
// and expired are final.
func (uc *quoteUseCase) UpdateQuoteStatus(ctx context.Context, input *dto.UpdateStatusInput) (*model.Quote, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	release, err := uc.locker.Acquire(ctx, lock.Key("quote", input.ID))
	if err != nil {
		return nil, apperror.Busy(err)
	}
	defer release()

	q, err := uc.GetQuote(ctx, input.CompanyID, input.ID)
	if err != nil {
		return nil, err
	}
	if q.Status == input.Status {
		return q, nil
	}
	if q.Status != model.QuotePending || input.Status == model.QuotePending {
		return nil, fmt.Errorf("%w: %s to %s", apperror.ErrInvalidStatusTransition, q.Status, input.Status)
	}

	if err := uc.repo.UpdateStatus(ctx, q.ID, input.Status); err != nil {
		return nil, fmt.Errorf("update quote status: %w", err)
	}
	q.Status = input.Status

	uc.logger.Info("quote status updated", zap.String("quote_id", q.ID), zap.String("status", q.Status))
	return q, nil
}

func (uc *quoteUseCase) PeekNextQuoteNumber(ctx context.Context, companyID, branchID string) (string, error) {
	n, err := uc.sequences.Current(ctx, companyID, branchID, sequence.KindQuote)
	if err != nil {
		return "", fmt.Errorf("read quote counter: %w", err)
	}
	return sequence.FormatQuoteNumber(n + 1), nil
}
