package dto

type SaleFilters struct {
	CompanyID string
	BranchID  string
}
