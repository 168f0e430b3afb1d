package dto

type ProductFilters struct {
	CompanyID   string `json:"companyId"`
	BranchID    string `json:"branchId"`
	Category    string `json:"category"`
	SearchQuery string `json:"searchQuery"` // name, code, description
	SortBy      string `json:"sortBy"`      // name, price, code, created_at
	SortOrder   string `json:"sortOrder"`   // asc, desc
	Page        int    `json:"page"`
	PageSize    int    `json:"pageSize"`
}
