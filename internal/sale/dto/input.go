package dto

import (
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/shopspring/decimal"
)

type CommitSaleInput struct {
	CompanyID        string          `json:"companyId" validate:"required"`
	BranchID         string          `json:"branchId" validate:"required"`
	UserID           string          `json:"userId"`
	CustomerID       string          `json:"customerId"`
	CustomerName     string          `json:"customerName" validate:"max=200"`
	CustomerDocument string          `json:"customerDocument" validate:"max=50"`
	CustomerPhone    string          `json:"customerPhone" validate:"max=50"`
	CustomerEmail    string          `json:"customerEmail" validate:"omitempty,email"`
	Items            []SaleItemInput `json:"items" validate:"required,min=1,dive"`
	Discount         decimal.Decimal `json:"discount" validate:"decimal_gte=0"`
	PaymentType      string          `json:"paymentType" validate:"required,oneof=cash credit"`
	PaymentMethod    string          `json:"paymentMethod" validate:"max=50"`
	Notes            string          `json:"notes" validate:"max=1000"`
}

// SaleItemInput is one requested line. Empty code, name and unit and an
// omitted unit price are filled from the catalog. An explicit zero price is
// kept. Discount is a percentage.
type SaleItemInput struct {
	ProductID   string           `json:"productId" validate:"required"`
	ProductCode string           `json:"productCode"`
	ProductName string           `json:"productName"`
	Unit        string           `json:"unit"`
	Quantity    decimal.Decimal  `json:"quantity" validate:"decimal_gt=0"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty" validate:"omitempty,decimal_gte=0"`
	Discount    decimal.Decimal  `json:"discount" validate:"decimal_gte=0,decimal_lte=100"`
}

// Snapshot builds the stored line for p, taking catalog values for the
// fields the caller left out.
func (in SaleItemInput) Snapshot(p *model.Product) model.SaleItem {
	item := model.SaleItem{
		ProductID:   p.ID,
		ProductCode: in.ProductCode,
		ProductName: in.ProductName,
		Unit:        in.Unit,
		Quantity:    in.Quantity,
		UnitPrice:   p.Price,
		Discount:    in.Discount,
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	if item.ProductCode == "" {
		item.ProductCode = p.Code
	}
	if item.ProductName == "" {
		item.ProductName = p.Name
	}
	if item.Unit == "" {
		item.Unit = p.Unit
	}
	return item
}
