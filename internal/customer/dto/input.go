package dto

import "github.com/shopspring/decimal"

type CreateCustomerInput struct {
	CompanyID   string          `json:"companyId" validate:"required"`
	BranchID    string          `json:"branchId" validate:"required"`
	Code        string          `json:"code" validate:"required,max=50"`
	Name        string          `json:"name" validate:"required,max=200"`
	Email       string          `json:"email" validate:"omitempty,email"`
	Phone       string          `json:"phone" validate:"max=50"`
	Address     string          `json:"address" validate:"max=500"`
	CreditLimit decimal.Decimal `json:"creditLimit" validate:"decimal_gte=0"`
}

// UpdateCustomerInput may set a limit below the current debt; available
// credit then goes negative until payments catch up.
type UpdateCustomerInput struct {
	ID          string          `json:"id" validate:"required"`
	CompanyID   string          `json:"companyId" validate:"required"`
	Code        string          `json:"code" validate:"required,max=50"`
	Name        string          `json:"name" validate:"required,max=200"`
	Email       string          `json:"email" validate:"omitempty,email"`
	Phone       string          `json:"phone" validate:"max=50"`
	Address     string          `json:"address" validate:"max=500"`
	CreditLimit decimal.Decimal `json:"creditLimit" validate:"decimal_gte=0"`
}
