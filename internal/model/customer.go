package model

import "github.com/shopspring/decimal"

type Customer struct {
	BaseModel
	CompanyID   string          `db:"company_id" json:"companyId"`
	BranchID    string          `db:"branch_id" json:"branchId"`
	Code        string          `db:"code" json:"code"`
	Name        string          `db:"name" json:"name"`
	Email       string          `db:"email" json:"email"`
	Phone       string          `db:"phone" json:"phone"`
	Address     string          `db:"address" json:"address"`
	CreditLimit decimal.Decimal `db:"credit_limit" json:"creditLimit"`
}

// CustomerWithCredit is a customer as shown in listings.
type CustomerWithCredit struct {
	Customer
	CurrentDebt decimal.Decimal `json:"currentDebt"`
	Available   decimal.Decimal `json:"available"`
	CreditCount int             `json:"creditCount"`
}

// CreditSummary is the per-customer aggregate read from the ledger.
type CreditSummary struct {
	CustomerID   string          `db:"customer_id" json:"customerId"`
	CurrentDebt  decimal.Decimal `db:"balance" json:"currentDebt"`
	LastSequence int64           `db:"last_sequence" json:"lastSequence"`
	CreditCount  int             `db:"credit_count" json:"creditCount"`
}
