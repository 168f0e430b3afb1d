package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/customer"
	"github.com/fekuna/omnipos-sales-service/internal/inventory"
	inventorydto "github.com/fekuna/omnipos-sales-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-sales-service/internal/ledger"
	ledgerdto "github.com/fekuna/omnipos-sales-service/internal/ledger/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/pricing"
	"github.com/fekuna/omnipos-sales-service/internal/sale"
	"github.com/fekuna/omnipos-sales-service/internal/sale/dto"
	"github.com/fekuna/omnipos-sales-service/internal/sequence"
	"github.com/fekuna/omnipos-sales-service/internal/storage"
	"github.com/fekuna/omnipos-sales-service/internal/validation"
	"github.com/fekuna/omnipos-sales-service/pkg/broker"
	"github.com/fekuna/omnipos-sales-service/pkg/lock"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const (
	EventSaleCommitted = "SaleCommitted"

	defaultCommitTimeout = 10 * time.Second
)

var tracer = otel.Tracer("omnipos-sales/sale")

// ProductReader loads a product, locking its row inside a transaction.
// inventory.Repository satisfies it.
type ProductReader interface {
	GetProduct(ctx context.Context, productID string) (*model.Product, error)
}

type CatalogRefresher interface {
	RefreshCatalog(ctx context.Context, companyID string, productIDs ...string)
}

type SaleCommittedEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Payload   *model.Sale `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// Dependencies are the collaborators of the sale engine. Catalog and
// Publisher are optional.
type Dependencies struct {
	Repo          sale.Repository
	Products      ProductReader
	Stock         inventory.UseCase
	Customers     customer.Repository
	Ledger        ledger.UseCase
	Sequences     sequence.Repository
	Locker        lock.Locker
	Tx            storage.Transactor
	Catalog       CatalogRefresher
	Publisher     broker.Publisher
	Topic         string
	CommitTimeout time.Duration
}

type saleUseCase struct {
	Dependencies
	logger logger.ZapLogger
}

func NewSaleUseCase(deps Dependencies, log logger.ZapLogger) sale.UseCase {
	if deps.CommitTimeout <= 0 {
		deps.CommitTimeout = defaultCommitTimeout
	}
	if deps.Publisher == nil {
		deps.Publisher = broker.NopPublisher{}
	}
	return &saleUseCase{Dependencies: deps, logger: log.Named("sale")}
}

func (uc *saleUseCase) CommitSale(ctx context.Context, input *dto.CommitSaleInput) (result *model.Sale, err error) {
	ctx, span := tracer.Start(ctx, "sale.CommitSale")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("company.id", input.CompanyID),
		attribute.String("payment.type", input.PaymentType),
		attribute.Int("items", len(input.Items)),
	)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.PaymentType == model.PaymentCredit && input.CustomerID == "" {
		return nil, apperror.ErrCustomerRequiredForCredit
	}

	ctx, cancel := context.WithTimeout(ctx, uc.CommitTimeout)
	defer cancel()

	release, err := uc.Locker.Acquire(ctx, lockKeys(input)...)
	if err != nil {
		return nil, apperror.Busy(err)
	}
	defer release()

	var undo compensations
	var s *model.Sale
	err = uc.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		s, err = uc.commit(ctx, input, &undo)
		return err
	})
	if err != nil {
		if !uc.Tx.Atomic() {
			uc.logger.Info("rolling back sale", zap.Int("steps", len(undo.steps)), zap.Error(err))
			undo.run(context.WithoutCancel(ctx), uc.logger)
		}
		return nil, err
	}

	uc.logger.Info("sale committed",
		zap.String("sale_id", s.ID),
		zap.String("sale_number", s.SaleNumber),
		zap.String("payment_type", s.PaymentType),
		zap.String("total", s.Total.String()),
	)

	go uc.afterCommit(s.Clone())

	return s.Clone(), nil
}

// lockKeys covers every product in the sale, the customer of a credit sale
// and the branch sale counter.
func lockKeys(input *dto.CommitSaleInput) []string {
	keys := make([]string, 0, len(input.Items)+2)
	for _, item := range input.Items {
		keys = append(keys, lock.Key("product", item.ProductID))
	}
	if input.PaymentType == model.PaymentCredit {
		keys = append(keys, lock.Key("customer", input.CustomerID))
	}
	return append(keys, lock.Key("sequence", input.CompanyID, input.BranchID, sequence.KindSale))
}

func (uc *saleUseCase) commit(ctx context.Context, input *dto.CommitSaleInput, undo *compensations) (*model.Sale, error) {
	items, err := uc.prepareItems(ctx, input)
	if err != nil {
		return nil, err
	}

	totals, err := pricing.Compute(items, input.Discount)
	if err != nil {
		return nil, err
	}

	var buyer *model.Customer
	if input.PaymentType == model.PaymentCredit {
		buyer, err = uc.Customers.FindByID(ctx, input.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("find customer: %w", err)
		}
		if buyer == nil || buyer.CompanyID != input.CompanyID {
			return nil, apperror.ErrCustomerNotFound
		}
		if err := uc.Ledger.ProjectCharge(ctx, buyer, totals.Total); err != nil {
			return nil, err
		}
	}

	n, err := uc.Sequences.Next(ctx, input.CompanyID, input.BranchID, sequence.KindSale)
	if err != nil {
		return nil, fmt.Errorf("allocate sale number: %w", err)
	}

	now := time.Now()
	s := &model.Sale{
		ID:               uuid.New().String(),
		SaleNumber:       sequence.FormatSaleNumber(n),
		Date:             now,
		CustomerName:     input.CustomerName,
		CustomerDocument: input.CustomerDocument,
		CustomerPhone:    input.CustomerPhone,
		CustomerEmail:    input.CustomerEmail,
		Items:            items,
		Subtotal:         totals.Subtotal,
		Discount:         totals.Discount,
		Tax:              totals.Tax,
		Total:            totals.Total,
		PaymentMethod:    input.PaymentMethod,
		PaymentType:      input.PaymentType,
		Status:           model.SaleCompleted,
		Notes:            input.Notes,
		CompanyID:        input.CompanyID,
		BranchID:         input.BranchID,
		CreatedBy:        input.UserID,
		CreatedAt:        now,
	}
	if input.CustomerID != "" {
		customerID := input.CustomerID
		s.CustomerID = &customerID
	}
	if buyer != nil && s.CustomerName == "" {
		s.CustomerName = buyer.Name
	}

	// The sale row is written last so no reader sees a sale whose stock or
	// ledger writes are still pending.
	description := "Venta " + s.SaleNumber
	for _, item := range items {
		_, err := uc.Stock.ApplyMovement(ctx, &inventorydto.MovementInput{
			CompanyID:      input.CompanyID,
			ProductID:      item.ProductID,
			MovementType:   model.MovementSale,
			QuantityChange: item.Quantity.Neg(),
			Notes:          description,
			ReferenceType:  "sale",
			ReferenceID:    s.ID,
			UserID:         input.UserID,
		})
		if err != nil {
			return nil, err
		}
		undo.add("restore stock "+item.ProductID, func(ctx context.Context) error {
			_, err := uc.Stock.ApplyMovement(ctx, &inventorydto.MovementInput{
				CompanyID:      input.CompanyID,
				ProductID:      item.ProductID,
				MovementType:   model.MovementSaleReversal,
				QuantityChange: item.Quantity,
				Notes:          "Anulación " + s.SaleNumber,
				ReferenceType:  "sale",
				ReferenceID:    s.ID,
				UserID:         input.UserID,
			})
			return err
		})
	}

	// A zero-total credit sale owes nothing and leaves the ledger untouched.
	if buyer != nil && totals.Total.IsPositive() {
		charge, err := uc.Ledger.Charge(ctx, &ledgerdto.ChargeInput{
			Customer:    buyer,
			BranchID:    input.BranchID,
			Amount:      totals.Total,
			SaleID:      s.ID,
			Description: description,
			UserID:      input.UserID,
		})
		if err != nil {
			return nil, err
		}
		undo.add("reverse charge "+buyer.ID, func(ctx context.Context) error {
			_, err := uc.Ledger.ReverseCharge(ctx, charge)
			return err
		})
	}

	if err := uc.Repo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}

	return s, nil
}

// prepareItems checks every line against the catalog and fills empty
// snapshot fields. Repeated products are checked against their summed quantity.
func (uc *saleUseCase) prepareItems(ctx context.Context, input *dto.CommitSaleInput) (model.SaleItems, error) {
	requested := make(map[string]decimal.Decimal, len(input.Items))
	for _, item := range input.Items {
		requested[item.ProductID] = requested[item.ProductID].Add(item.Quantity)
	}

	products := make(map[string]*model.Product, len(requested))
	items := make(model.SaleItems, len(input.Items))
	for i, in := range input.Items {
		p, ok := products[in.ProductID]
		if !ok {
			var err error
			p, err = uc.Products.GetProduct(ctx, in.ProductID)
			if err != nil {
				return nil, fmt.Errorf("get product: %w", err)
			}
			if p == nil || p.CompanyID != input.CompanyID {
				return nil, &apperror.ProductNotFoundError{ProductID: in.ProductID}
			}
			if want := requested[p.ID]; p.Stock.LessThan(want) {
				return nil, &apperror.InsufficientStockError{
					ProductID:   p.ID,
					ProductName: p.Name,
					Available:   p.Stock,
					Requested:   want,
				}
			}
			products[in.ProductID] = p
		}

		items[i] = in.Snapshot(p)
	}
	return items, nil
}

func (uc *saleUseCase) afterCommit(s *model.Sale) {
	ctx := context.Background()

	if uc.Catalog != nil {
		ids := make([]string, 0, len(s.Items))
		for _, item := range s.Items {
			ids = append(ids, item.ProductID)
		}
		uc.Catalog.RefreshCatalog(ctx, s.CompanyID, ids...)
	}

	event := SaleCommittedEvent{
		EventID:   uuid.New().String(),
		EventType: EventSaleCommitted,
		Payload:   s,
		Timestamp: time.Now(),
	}
	if err := uc.Publisher.Publish(ctx, uc.Topic, s.ID, event); err != nil {
		uc.logger.Warn("failed to publish sale event", zap.String("sale_id", s.ID), zap.Error(err))
	}
}

func (uc *saleUseCase) GetSale(ctx context.Context, companyID, id string) (*model.Sale, error) {
	s, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find sale: %w", err)
	}
	if s == nil || s.CompanyID != companyID {
		return nil, apperror.ErrSaleNotFound
	}
	return s, nil
}

func (uc *saleUseCase) GetSaleByNumber(ctx context.Context, companyID, branchID, number string) (*model.Sale, error) {
	s, err := uc.Repo.FindByNumber(ctx, companyID, branchID, number)
	if err != nil {
		return nil, fmt.Errorf("find sale by number: %w", err)
	}
	if s == nil {
		return nil, apperror.ErrSaleNotFound
	}
	return s, nil
}

func (uc *saleUseCase) ListSales(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, error) {
	sales, err := uc.Repo.FindAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}

func (uc *saleUseCase) PeekNextSaleNumber(ctx context.Context, companyID, branchID string) (string, error) {
	n, err := uc.Sequences.Current(ctx, companyID, branchID, sequence.KindSale)
	if err != nil {
		return "", fmt.Errorf("read sale counter: %w", err)
	}
	return sequence.FormatSaleNumber(n + 1), nil
}
