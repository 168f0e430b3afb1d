package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/customer"
	"github.com/fekuna/omnipos-sales-service/internal/ledger"
	"github.com/fekuna/omnipos-sales-service/internal/ledger/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
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

const EventPaymentRecorded = "CreditPaymentRecorded"

var tracer = otel.Tracer("omnipos-sales/ledger")

type PaymentRecordedEvent struct {
	EventID   string                   `json:"event_id"`
	EventType string                   `json:"event_type"`
	Payload   *model.CreditTransaction `json:"payload"`
	Timestamp time.Time                `json:"timestamp"`
}

type ledgerUseCase struct {
	repo      ledger.Repository
	customers customer.Repository
	locker    lock.Locker
	tx        storage.Transactor
	publisher broker.Publisher
	topic     string
	logger    logger.ZapLogger
}

func NewLedgerUseCase(
	repo ledger.Repository,
	customers customer.Repository,
	locker lock.Locker,
	tx storage.Transactor,
	publisher broker.Publisher,
	topic string,
	log logger.ZapLogger,
) ledger.UseCase {
	return &ledgerUseCase{
		repo:      repo,
		customers: customers,
		locker:    locker,
		tx:        tx,
		publisher: publisher,
		topic:     topic,
		logger:    log.Named("ledger"),
	}
}

func (uc *ledgerUseCase) RecordPayment(ctx context.Context, input *dto.PaymentInput) (entry *model.CreditTransaction, err error) {
	ctx, span := tracer.Start(ctx, "ledger.RecordPayment")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("customer.id", input.CustomerID))

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	release, err := uc.locker.Acquire(ctx, lock.Key("customer", input.CustomerID))
	if err != nil {
		return nil, apperror.Busy(err)
	}
	defer release()

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := uc.findCustomer(ctx, input.CompanyID, input.CustomerID)
		if err != nil {
			return err
		}

		tail, err := uc.repo.Tail(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("read ledger tail: %w", err)
		}
		if input.Amount.GreaterThan(tail.CurrentDebt) {
			return &apperror.PaymentExceedsDebtError{
				CustomerID:  c.ID,
				Amount:      input.Amount,
				CurrentDebt: tail.CurrentDebt,
			}
		}

		description := input.Description
		if description == "" {
			description = "Pago"
		}
		entry = uc.newEntry(c, tail, model.CreditTypePayment, input.Amount, tail.CurrentDebt.Sub(input.Amount))
		entry.BranchID = input.BranchID
		entry.Description = description
		entry.CreatedBy = input.UserID

		if err := uc.repo.Append(ctx, entry); err != nil {
			return fmt.Errorf("append payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("payment recorded",
		zap.String("customer_id", entry.CustomerID),
		zap.String("amount", entry.Amount.String()),
		zap.String("balance", entry.Balance.String()),
	)

	go uc.publishPayment(context.Background(), entry)

	return entry, nil
}

func (uc *ledgerUseCase) GetCustomerStanding(ctx context.Context, companyID, customerID string) (*model.CustomerStanding, error) {
	c, err := uc.findCustomer(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.repo.ListEntries(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}

	debt := decimal.Zero
	if len(entries) > 0 {
		debt = entries[0].Balance
	}

	var stats model.StandingStats
	for i := range entries {
		if entries[i].Type != model.CreditTypeSale {
			continue
		}
		if entries[i].Balance.IsPositive() {
			stats.Active++
		} else if entries[i].Balance.IsZero() {
			stats.Paid++
		}
	}

	return &model.CustomerStanding{
		Customer:     *c,
		CurrentDebt:  debt,
		Available:    c.CreditLimit.Sub(debt),
		Transactions: entries,
		Stats:        stats,
	}, nil
}

func (uc *ledgerUseCase) ProjectCharge(ctx context.Context, c *model.Customer, amount decimal.Decimal) error {
	tail, err := uc.repo.Tail(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("read ledger tail: %w", err)
	}
	return checkLimit(c, tail.CurrentDebt, amount)
}

func (uc *ledgerUseCase) Charge(ctx context.Context, input *dto.ChargeInput) (*model.CreditTransaction, error) {
	c := input.Customer
	tail, err := uc.repo.Tail(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("read ledger tail: %w", err)
	}
	if err := checkLimit(c, tail.CurrentDebt, input.Amount); err != nil {
		return nil, err
	}

	entry := uc.newEntry(c, tail, model.CreditTypeSale, input.Amount, tail.CurrentDebt.Add(input.Amount))
	entry.BranchID = input.BranchID
	entry.Description = input.Description
	entry.CreatedBy = input.UserID
	if input.SaleID != "" {
		saleID := input.SaleID
		entry.SaleID = &saleID
	}

	if err := uc.repo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("append charge: %w", err)
	}
	return entry, nil
}

func (uc *ledgerUseCase) ReverseCharge(ctx context.Context, charge *model.CreditTransaction) (*model.CreditTransaction, error) {
	c, err := uc.customers.FindByID(ctx, charge.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if c == nil {
		return nil, apperror.ErrCustomerNotFound
	}
	tail, err := uc.repo.Tail(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("read ledger tail: %w", err)
	}

	entry := uc.newEntry(c, tail, model.CreditTypePayment, charge.Amount, tail.CurrentDebt.Sub(charge.Amount))
	entry.BranchID = charge.BranchID
	entry.Description = "Anulación " + charge.Description
	entry.SaleID = charge.SaleID
	entry.CreatedBy = charge.CreatedBy

	if err := uc.repo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("append reversal: %w", err)
	}
	return entry, nil
}

func (uc *ledgerUseCase) Summaries(ctx context.Context, customerIDs []string) (map[string]model.CreditSummary, error) {
	return uc.repo.Summaries(ctx, customerIDs)
}

func (uc *ledgerUseCase) findCustomer(ctx context.Context, companyID, customerID string) (*model.Customer, error) {
	c, err := uc.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if c == nil || c.CompanyID != companyID {
		return nil, apperror.ErrCustomerNotFound
	}
	return c, nil
}

func (uc *ledgerUseCase) newEntry(c *model.Customer, tail model.CreditSummary, kind string, amount, balance decimal.Decimal) *model.CreditTransaction {
	now := time.Now()
	return &model.CreditTransaction{
		ID:         uuid.New().String(),
		CustomerID: c.ID,
		Sequence:   tail.LastSequence + 1,
		Type:       kind,
		Amount:     amount,
		Balance:    balance,
		Date:       now,
		CompanyID:  c.CompanyID,
		BranchID:   c.BranchID,
		CreatedAt:  now,
	}
}

func (uc *ledgerUseCase) publishPayment(ctx context.Context, entry *model.CreditTransaction) {
	event := PaymentRecordedEvent{
		EventID:   uuid.New().String(),
		EventType: EventPaymentRecorded,
		Payload:   entry,
		Timestamp: time.Now(),
	}
	if err := uc.publisher.Publish(ctx, uc.topic, entry.CustomerID, event); err != nil {
		uc.logger.Warn("failed to publish payment event", zap.String("customer_id", entry.CustomerID), zap.Error(err))
	}
}

// checkLimit enforces debt + amount <= limit.
func checkLimit(c *model.Customer, debt, amount decimal.Decimal) error {
	next := debt.Add(amount)
	if next.GreaterThan(c.CreditLimit) {
		return &apperror.CreditLimitExceededError{
			CustomerID:     c.ID,
			Limit:          c.CreditLimit,
			CurrentBalance: debt,
			NewBalance:     next,
		}
	}
	return nil
}
