package dto

import "github.com/shopspring/decimal"

// AdjustStockInput is a manual or purchasing-driven stock change.
type AdjustStockInput struct {
	CompanyID      string          `json:"companyId" validate:"required"`
	ProductID      string          `json:"productId" validate:"required"`
	MovementType   string          `json:"movementType" validate:"omitempty,oneof=adjustment restock"`
	QuantityChange decimal.Decimal `json:"quantityChange"`
	Reason         string          `json:"reason" validate:"max=500"`
	ReferenceType  string          `json:"referenceType"`
	ReferenceID    string          `json:"referenceId"`
	UserID         string          `json:"userId"`
}

type MovementInput struct {
	CompanyID      string
	ProductID      string
	MovementType   string
	QuantityChange decimal.Decimal
	Notes          string
	ReferenceType  string
	ReferenceID    string
	UserID         string
}
