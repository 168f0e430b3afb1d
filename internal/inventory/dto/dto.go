package dto

type MovementFilters struct {
	CompanyID    string
	ProductID    string
	MovementType string
	Page         int
	PageSize     int
}
