package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MovementSale         = "sale"
	MovementSaleReversal = "sale_reversal"
	MovementAdjustment   = "adjustment"
	MovementRestock      = "restock"
)

type StockMovement struct {
	ID             string          `db:"id" json:"id"`
	CompanyID      string          `db:"company_id" json:"companyId"`
	ProductID      string          `db:"product_id" json:"productId"`
	MovementType   string          `db:"movement_type" json:"movementType"`
	QuantityChange decimal.Decimal `db:"quantity_change" json:"quantityChange"`
	QuantityBefore decimal.Decimal `db:"quantity_before" json:"quantityBefore"`
	QuantityAfter  decimal.Decimal `db:"quantity_after" json:"quantityAfter"`
	ReferenceType  *string         `db:"reference_type" json:"referenceType,omitempty"`
	ReferenceID    *string         `db:"reference_id" json:"referenceId,omitempty"`
	Notes          string          `db:"notes" json:"notes"`
	CreatedBy      *string         `db:"created_by" json:"createdBy,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
}
