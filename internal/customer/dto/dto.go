package dto

type CustomerFilters struct {
	CompanyID   string
	BranchID    string
	SearchQuery string
}
