package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CreditTypeSale    = "sale"
	CreditTypePayment = "payment"
)

// CreditTransaction is one immutable ledger entry. Balance is the running
// total after the entry; Sequence orders entries per customer starting at 1.
type CreditTransaction struct {
	ID          string          `db:"id" json:"id"`
	CustomerID  string          `db:"customer_id" json:"customerId"`
	Sequence    int64           `db:"sequence" json:"sequence"`
	Type        string          `db:"type" json:"type"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Balance     decimal.Decimal `db:"balance" json:"balance"`
	SaleID      *string         `db:"sale_id" json:"saleId,omitempty"`
	Description string          `db:"description" json:"description"`
	Date        time.Time       `db:"date" json:"date"`
	CompanyID   string          `db:"company_id" json:"companyId"`
	BranchID    string          `db:"branch_id" json:"branchId"`
	CreatedBy   string          `db:"created_by" json:"createdBy"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}

// Signed returns the amount as applied to the balance.
func (t *CreditTransaction) Signed() decimal.Decimal {
	if t.Type == CreditTypePayment {
		return t.Amount.Neg()
	}
	return t.Amount
}

type StandingStats struct {
	Active int32 `json:"active"`
	Paid   int32 `json:"paid"`
	// Overdue is nil: no due-date policy exists yet.
	Overdue *int32 `json:"overdue"`
}

type CustomerStanding struct {
	Customer     Customer            `json:"customer"`
	CurrentDebt  decimal.Decimal     `json:"currentDebt"`
	Available    decimal.Decimal     `json:"available"`
	Transactions []CreditTransaction `json:"transactions"`
	Stats        StandingStats       `json:"stats"`
}
