package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentCash   = "cash"
	PaymentCredit = "credit"

	SaleCompleted = "completed"
	SaleCancelled = "cancelled"
)

type SaleItem struct {
	ProductID   string          `json:"productId"`
	ProductCode string          `json:"productCode"`
	ProductName string          `json:"productName"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Discount    decimal.Decimal `json:"discount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleItems is stored as a JSONB column.
type SaleItems []SaleItem

func (s SaleItems) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

func (s *SaleItems) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*s = nil
		return nil
	default:
		return errors.New("sale items: unsupported scan type")
	}
	return json.Unmarshal(data, s)
}

type Sale struct {
	ID               string          `db:"id" json:"id"`
	SaleNumber       string          `db:"sale_number" json:"saleNumber"`
	Date             time.Time       `db:"date" json:"date"`
	CustomerID       *string         `db:"customer_id" json:"customerId,omitempty"`
	CustomerName     string          `db:"customer_name" json:"customerName"`
	CustomerDocument string          `db:"customer_document" json:"customerDocument"`
	CustomerPhone    string          `db:"customer_phone" json:"customerPhone"`
	CustomerEmail    string          `db:"customer_email" json:"customerEmail"`
	Items            SaleItems       `db:"items" json:"items"`
	Subtotal         decimal.Decimal `db:"subtotal" json:"subtotal"`
	Discount         decimal.Decimal `db:"discount" json:"discount"`
	Tax              decimal.Decimal `db:"tax" json:"tax"`
	Total            decimal.Decimal `db:"total" json:"total"`
	PaymentMethod    string          `db:"payment_method" json:"paymentMethod"`
	PaymentType      string          `db:"payment_type" json:"paymentType"`
	Status           string          `db:"status" json:"status"`
	Notes            string          `db:"notes" json:"notes"`
	CompanyID        string          `db:"company_id" json:"companyId"`
	BranchID         string          `db:"branch_id" json:"branchId"`
	CreatedBy        string          `db:"created_by" json:"createdBy"`
	CreatedAt        time.Time       `db:"created_at" json:"createdAt"`
}

// Clone returns a copy that shares no mutable state with s.
func (s *Sale) Clone() *Sale {
	if s == nil {
		return nil
	}
	c := *s
	if s.CustomerID != nil {
		id := *s.CustomerID
		c.CustomerID = &id
	}
	if s.Items != nil {
		c.Items = make(SaleItems, len(s.Items))
		copy(c.Items, s.Items)
	}
	return &c
}
