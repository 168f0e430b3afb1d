package dto

type QuoteFilters struct {
	CompanyID string
	BranchID  string
}
