package dto

import (
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/shopspring/decimal"
)

type PaymentInput struct {
	CompanyID   string          `json:"companyId" validate:"required"`
	BranchID    string          `json:"branchId" validate:"required"`
	CustomerID  string          `json:"customerId" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"decimal_gt=0"`
	Description string          `json:"description" validate:"max=500"`
	UserID      string          `json:"userId"`
}

type ChargeInput struct {
	Customer    *model.Customer
	BranchID    string
	Amount      decimal.Decimal
	SaleID      string
	Description string
	UserID      string
}
