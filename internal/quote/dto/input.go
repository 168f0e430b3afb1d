package dto

import (
	"time"

	saledto "github.com/fekuna/omnipos-sales-service/internal/sale/dto"
	"github.com/shopspring/decimal"
)

type CreateQuoteInput struct {
	CompanyID        string                  `json:"companyId" validate:"required"`
	BranchID         string                  `json:"branchId" validate:"required"`
	UserID           string                  `json:"userId"`
	ValidUntil       time.Time               `json:"validUntil" validate:"required"`
	CustomerID       string                  `json:"customerId"`
	CustomerName     string                  `json:"customerName" validate:"max=200"`
	CustomerDocument string                  `json:"customerDocument" validate:"max=50"`
	CustomerPhone    string                  `json:"customerPhone" validate:"max=50"`
	CustomerEmail    string                  `json:"customerEmail" validate:"omitempty,email"`
	Items            []saledto.SaleItemInput `json:"items" validate:"required,min=1,dive"`
	Discount         decimal.Decimal         `json:"discount" validate:"decimal_gte=0"`
	Notes            string                  `json:"notes" validate:"max=1000"`
}

type UpdateStatusInput struct {
	CompanyID string `json:"companyId" validate:"required"`
	ID        string `json:"id" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=pending approved rejected expired"`
}
