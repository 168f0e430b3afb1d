package handler

import (
	"context"

	salesv1 "github.com/fekuna/omnipos-sales-service/api/salesv1"
	"github.com/fekuna/omnipos-sales-service/internal/auth"
	"github.com/fekuna/omnipos-sales-service/internal/customer"
	"github.com/fekuna/omnipos-sales-service/internal/customer/dto"
	"github.com/fekuna/omnipos-sales-service/internal/ledger"
	ledgerdto "github.com/fekuna/omnipos-sales-service/internal/ledger/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/server/rpcerror"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

// CustomerHandler serves customer records and their credit ledger.
type CustomerHandler struct {
	salesv1.UnimplementedCustomerServiceServer
	uc     customer.UseCase
	ledger ledger.UseCase
	logger logger.ZapLogger
}

func NewCustomerHandler(uc customer.UseCase, ledger ledger.UseCase, log logger.ZapLogger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		ledger: ledger,
		logger: log.Named("customer.handler"),
	}
}

func (h *CustomerHandler) CreateCustomer(ctx context.Context, req *salesv1.CreateCustomerRequest) (*salesv1.CustomerResponse, error) {
	input := &dto.CreateCustomerInput{
		CompanyID:   auth.GetCompanyID(ctx),
		BranchID:    auth.GetBranchID(ctx),
		Code:        req.Code,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		CreditLimit: req.CreditLimit,
	}

	c, err := h.uc.CreateCustomer(ctx, input)
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "create customer", err)
	}
	return &salesv1.CustomerResponse{Customer: MapCustomerToProto(c)}, nil
}

func (h *CustomerHandler) GetCustomer(ctx context.Context, req *salesv1.GetCustomerRequest) (*salesv1.CustomerResponse, error) {
	c, err := h.uc.GetCustomer(ctx, auth.GetCompanyID(ctx), req.Id)
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "get customer", err)
	}
	return &salesv1.CustomerResponse{Customer: MapCustomerToProto(c)}, nil
}

func (h *CustomerHandler) ListCustomers(ctx context.Context, req *salesv1.ListCustomersRequest) (*salesv1.ListCustomersResponse, error) {
	branchID := req.BranchId
	if branchID == "" {
		branchID = auth.GetBranchID(ctx)
	}

	customers, err := h.uc.ListCustomers(ctx, &dto.CustomerFilters{
		CompanyID:   auth.GetCompanyID(ctx),
		BranchID:    branchID,
		SearchQuery: req.Query,
	})
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "list customers", err)
	}

	out := make([]*salesv1.Customer, len(customers))
	for i := range customers {
		pc := MapCustomerToProto(&customers[i].Customer)
		pc.CurrentDebt = customers[i].CurrentDebt
		pc.Available = customers[i].Available
		pc.CreditCount = int32(customers[i].CreditCount)
		out[i] = pc
	}
	return &salesv1.ListCustomersResponse{Customers: out}, nil
}

func (h *CustomerHandler) UpdateCustomer(ctx context.Context, req *salesv1.UpdateCustomerRequest) (*salesv1.CustomerResponse, error) {
	input := &dto.UpdateCustomerInput{
		ID:          req.Id,
		CompanyID:   auth.GetCompanyID(ctx),
		Code:        req.Code,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		CreditLimit: req.CreditLimit,
	}

	c, err := h.uc.UpdateCustomer(ctx, input)
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "update customer", err)
	}
	return &salesv1.CustomerResponse{Customer: MapCustomerToProto(c)}, nil
}

func (h *CustomerHandler) GetNextCustomerCode(ctx context.Context, req *salesv1.GetNextCodeRequest) (*salesv1.NextCodeResponse, error) {
	branchID := req.BranchId
	if branchID == "" {
		branchID = auth.GetBranchID(ctx)
	}
	code, err := h.uc.NextCustomerCode(ctx, auth.GetCompanyID(ctx), branchID)
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "next customer code", err)
	}
	return &salesv1.NextCodeResponse{Code: code}, nil
}

func (h *CustomerHandler) RecordPayment(ctx context.Context, req *salesv1.RecordPaymentRequest) (*salesv1.CreditTransactionResponse, error) {
	input := &ledgerdto.PaymentInput{
		CompanyID:   auth.GetCompanyID(ctx),
		BranchID:    auth.GetBranchID(ctx),
		CustomerID:  req.CustomerId,
		Amount:      req.Amount,
		Description: req.Description,
		UserID:      auth.GetUserID(ctx),
	}

	entry, err := h.ledger.RecordPayment(ctx, input)
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "record payment", err)
	}
	return &salesv1.CreditTransactionResponse{Transaction: MapCreditTransactionToProto(entry)}, nil
}

func (h *CustomerHandler) GetCustomerStanding(ctx context.Context, req *salesv1.GetCustomerStandingRequest) (*salesv1.CustomerStandingResponse, error) {
	standing, err := h.ledger.GetCustomerStanding(ctx, auth.GetCompanyID(ctx), req.CustomerId)
	if err != nil {
		return nil, rpcerror.Status(ctx, h.logger, "get customer standing", err)
	}
	return MapStandingToProto(standing), nil
}

func MapCustomerToProto(c *model.Customer) *salesv1.Customer {
	return &salesv1.Customer{
		Id:          c.ID,
		CompanyId:   c.CompanyID,
		BranchId:    c.BranchID,
		Code:        c.Code,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		CreditLimit: c.CreditLimit,
		Available:   c.CreditLimit,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func MapCreditTransactionToProto(t *model.CreditTransaction) *salesv1.CreditTransaction {
	out := &salesv1.CreditTransaction{
		Id:          t.ID,
		CustomerId:  t.CustomerID,
		Sequence:    t.Sequence,
		Type:        t.Type,
		Amount:      t.Amount,
		Balance:     t.Balance,
		Description: t.Description,
		Date:        t.Date,
		CreatedBy:   t.CreatedBy,
	}
	if t.SaleID != nil {
		out.SaleId = *t.SaleID
	}
	return out
}

func MapStandingToProto(s *model.CustomerStanding) *salesv1.CustomerStandingResponse {
	c := MapCustomerToProto(&s.Customer)
	c.CurrentDebt = s.CurrentDebt
	c.Available = s.Available

	txs := make([]*salesv1.CreditTransaction, len(s.Transactions))
	for i := range s.Transactions {
		txs[i] = MapCreditTransactionToProto(&s.Transactions[i])
	}

	return &salesv1.CustomerStandingResponse{
		Customer:     c,
		CurrentDebt:  s.CurrentDebt,
		Available:    s.Available,
		Transactions: txs,
		Stats: &salesv1.CreditStats{
			Active:  s.Stats.Active,
			Paid:    s.Stats.Paid,
			Overdue: s.Stats.Overdue,
		},
	}
}
