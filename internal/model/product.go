package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	CompanyID           string          `db:"company_id" json:"companyId"`
	BranchID            string          `db:"branch_id" json:"branchId"`
	Code                string          `db:"code" json:"code"`
	Name                string          `db:"name" json:"name"`
	Description         string          `db:"description" json:"description"`
	DetailedDescription string          `db:"detailed_description" json:"detailedDescription"`
	Category            string          `db:"category" json:"category"`
	Unit                string          `db:"unit" json:"unit"`
	Stock               decimal.Decimal `db:"stock" json:"stock"`
	MinStock            decimal.Decimal `db:"min_stock" json:"minStock"`
	Cost                decimal.Decimal `db:"cost" json:"cost"`
	Price               decimal.Decimal `db:"price" json:"price"`
}

// IsLowStock is true once stock has reached the configured minimum.
func (p *Product) IsLowStock() bool {
	return p.Stock.LessThanOrEqual(p.MinStock)
}
