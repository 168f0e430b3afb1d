package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	QuotePending  = "pending"
	QuoteApproved = "approved"
	QuoteRejected = "rejected"
	QuoteExpired  = "expired"
)

type Quote struct {
	ID               string          `db:"id" json:"id"`
	QuoteNumber      string          `db:"quote_number" json:"quoteNumber"`
	Date             time.Time       `db:"date" json:"date"`
	ValidUntil       time.Time       `db:"valid_until" json:"validUntil"`
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
	Status           string          `db:"status" json:"status"`
	Notes            string          `db:"notes" json:"notes"`
	CompanyID        string          `db:"company_id" json:"companyId"`
	BranchID         string          `db:"branch_id" json:"branchId"`
	CreatedBy        string          `db:"created_by" json:"createdBy"`
	CreatedAt        time.Time       `db:"created_at" json:"createdAt"`
}

func (q *Quote) Clone() *Quote {
	if q == nil {
		return nil
	}
	c := *q
	if q.CustomerID != nil {
		id := *q.CustomerID
		c.CustomerID = &id
	}
	if q.Items != nil {
		c.Items = make(SaleItems, len(q.Items))
		copy(c.Items, q.Items)
	}
	return &c
}

// ValidQuoteStatus reports whether s is a known quote status.
func ValidQuoteStatus(s string) bool {
	switch s {
	case QuotePending, QuoteApproved, QuoteRejected, QuoteExpired:
		return true
	}
	return false
}
