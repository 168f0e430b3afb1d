package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/customer"
	"github.com/fekuna/omnipos-sales-service/internal/customer/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/sequence"
	"github.com/fekuna/omnipos-sales-service/internal/validation"
	"github.com/fekuna/omnipos-sales-service/pkg/lock"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const codePrefix = "CLI"

// CreditSummaries reads the ledger aggregates shown next to each customer.
type CreditSummaries interface {
	Summaries(ctx context.Context, customerIDs []string) (map[string]model.CreditSummary, error)
}

type customerUseCase struct {
	repo    customer.Repository
	credits CreditSummaries
	locker  lock.Locker
	logger  logger.ZapLogger
}

func NewCustomerUseCase(repo customer.Repository, credits CreditSummaries, locker lock.Locker, log logger.ZapLogger) customer.UseCase {
	return &customerUseCase{
		repo:    repo,
		credits: credits,
		locker:  locker,
		logger:  log.Named("customer"),
	}
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	now := time.Now()
	c := &model.Customer{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		CompanyID:   input.CompanyID,
		BranchID:    input.BranchID,
		Code:        input.Code,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		CreditLimit: input.CreditLimit,
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Info("customer created", zap.String("customer_id", c.ID), zap.String("code", c.Code))
	return c, nil
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, companyID, id string) (*model.Customer, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if c == nil || c.CompanyID != companyID {
		return nil, apperror.ErrCustomerNotFound
	}
	return c, nil
}

func (uc *customerUseCase) ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.CustomerWithCredit, error) {
	customers, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	ids := make([]string, len(customers))
	for i := range customers {
		ids[i] = customers[i].ID
	}
	summaries, err := uc.credits.Summaries(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load credit summaries: %w", err)
	}

	out := make([]model.CustomerWithCredit, len(customers))
	for i, c := range customers {
		s := summaries[c.ID]
		out[i] = model.CustomerWithCredit{
			Customer:    c,
			CurrentDebt: s.CurrentDebt,
			Available:   c.CreditLimit.Sub(s.CurrentDebt),
			CreditCount: s.CreditCount,
		}
	}
	return out, nil
}

func (uc *customerUseCase) UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	release, err := uc.locker.Acquire(ctx, lock.Key("customer", input.ID))
	if err != nil {
		return nil, apperror.Busy(err)
	}
	defer release()

	c, err := uc.GetCustomer(ctx, input.CompanyID, input.ID)
	if err != nil {
		return nil, err
	}

	c.Code = input.Code
	c.Name = input.Name
	c.Email = input.Email
	c.Phone = input.Phone
	c.Address = input.Address
	c.CreditLimit = input.CreditLimit
	c.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *customerUseCase) NextCustomerCode(ctx context.Context, companyID, branchID string) (string, error) {
	codes, err := uc.repo.ListCodes(ctx, companyID, branchID, codePrefix)
	if err != nil {
		return "", fmt.Errorf("list customer codes: %w", err)
	}
	return sequence.NextCode(codes, codePrefix, 4), nil
}
