package dto

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	CompanyID           string          `json:"companyId" validate:"required"`
	BranchID            string          `json:"branchId" validate:"required"`
	Code                string          `json:"code" validate:"required,max=50"`
	Name                string          `json:"name" validate:"required,max=200"`
	Description         string          `json:"description"`
	DetailedDescription string          `json:"detailedDescription"`
	Category            string          `json:"category"`
	Unit                string          `json:"unit" validate:"required"`
	Stock               decimal.Decimal `json:"stock" validate:"decimal_gte=0"`
	MinStock            decimal.Decimal `json:"minStock" validate:"decimal_gte=0"`
	Cost                decimal.Decimal `json:"cost" validate:"decimal_gte=0"`
	Price               decimal.Decimal `json:"price" validate:"decimal_gte=0"`
}

// UpdateProductInput edits catalog data. Stock only changes through inventory.
type UpdateProductInput struct {
	ID                  string          `json:"id" validate:"required"`
	CompanyID           string          `json:"companyId" validate:"required"`
	Code                string          `json:"code" validate:"required,max=50"`
	Name                string          `json:"name" validate:"required,max=200"`
	Description         string          `json:"description"`
	DetailedDescription string          `json:"detailedDescription"`
	Category            string          `json:"category"`
	Unit                string          `json:"unit" validate:"required"`
	MinStock            decimal.Decimal `json:"minStock" validate:"decimal_gte=0"`
	Cost                decimal.Decimal `json:"cost" validate:"decimal_gte=0"`
	Price               decimal.Decimal `json:"price" validate:"decimal_gte=0"`
}
