package salesv1

import (
	"time"

	"github.com/shopspring/decimal"
)

// Catalog

type Product struct {
	Id                  string          `json:"id"`
	CompanyId           string          `json:"companyId"`
	BranchId            string          `json:"branchId"`
	Code                string          `json:"code"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	DetailedDescription string          `json:"detailedDescription"`
	Category            string          `json:"category"`
	Unit                string          `json:"unit"`
	Stock               decimal.Decimal `json:"stock"`
	MinStock            decimal.Decimal `json:"minStock"`
	Cost                decimal.Decimal `json:"cost"`
	Price               decimal.Decimal `json:"price"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

type CreateProductRequest struct {
	Code                string          `json:"code"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	DetailedDescription string          `json:"detailedDescription"`
	Category            string          `json:"category"`
	Unit                string          `json:"unit"`
	Stock               decimal.Decimal `json:"stock"`
	MinStock            decimal.Decimal `json:"minStock"`
	Cost                decimal.Decimal `json:"cost"`
	Price               decimal.Decimal `json:"price"`
}

type UpdateProductRequest struct {
	Id                  string          `json:"id"`
	Code                string          `json:"code"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	DetailedDescription string          `json:"detailedDescription"`
	Category            string          `json:"category"`
	Unit                string          `json:"unit"`
	MinStock            decimal.Decimal `json:"minStock"`
	Cost                decimal.Decimal `json:"cost"`
	Price               decimal.Decimal `json:"price"`
}

type GetProductRequest struct {
	Id string `json:"id"`
}

type DeleteProductRequest struct {
	Id string `json:"id"`
}

type ListProductsRequest struct {
	BranchId  string `json:"branchId"`
	Query     string `json:"query"`
	Category  string `json:"category"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
	Page      int32  `json:"page"`
	PageSize  int32  `json:"pageSize"`
}

type ProductResponse struct {
	Product *Product `json:"product"`
}

type ListProductsResponse struct {
	Products []*Product `json:"products"`
	Total    int32      `json:"total"`
	Page     int32      `json:"page"`
	PageSize int32      `json:"pageSize"`
}

type GetNextCodeRequest struct {
	BranchId string `json:"branchId"`
}

type NextCodeResponse struct {
	Code string `json:"code"`
}

// Inventory

type StockMovement struct {
	Id             string          `json:"id"`
	ProductId      string          `json:"productId"`
	MovementType   string          `json:"movementType"`
	QuantityChange decimal.Decimal `json:"quantityChange"`
	QuantityBefore decimal.Decimal `json:"quantityBefore"`
	QuantityAfter  decimal.Decimal `json:"quantityAfter"`
	ReferenceType  string          `json:"referenceType"`
	ReferenceId    string          `json:"referenceId"`
	Notes          string          `json:"notes"`
	CreatedBy      string          `json:"createdBy"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type GetStockRequest struct {
	ProductId string `json:"productId"`
}

type StockResponse struct {
	ProductId string          `json:"productId"`
	Stock     decimal.Decimal `json:"stock"`
}

type AdjustStockRequest struct {
	ProductId      string          `json:"productId"`
	QuantityChange decimal.Decimal `json:"quantityChange"`
	Reason         string          `json:"reason"`
	ReferenceType  string          `json:"referenceType"`
	ReferenceId    string          `json:"referenceId"`
}

type ListMovementsRequest struct {
	ProductId    string `json:"productId"`
	MovementType string `json:"movementType"`
	Page         int32  `json:"page"`
	PageSize     int32  `json:"pageSize"`
}

type ListMovementsResponse struct {
	Movements []*StockMovement `json:"movements"`
	Total     int32            `json:"total"`
}

type ListLowStockRequest struct{}

// Customers and credit

type Customer struct {
	Id          string          `json:"id"`
	CompanyId   string          `json:"companyId"`
	BranchId    string          `json:"branchId"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
	CurrentDebt decimal.Decimal `json:"currentDebt"`
	Available   decimal.Decimal `json:"available"`
	CreditCount int32           `json:"creditCount"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type CreateCustomerRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
}

type UpdateCustomerRequest struct {
	Id          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
}

type GetCustomerRequest struct {
	Id string `json:"id"`
}

type ListCustomersRequest struct {
	BranchId string `json:"branchId"`
	Query    string `json:"query"`
}

type CustomerResponse struct {
	Customer *Customer `json:"customer"`
}

type ListCustomersResponse struct {
	Customers []*Customer `json:"customers"`
}

type CreditTransaction struct {
	Id          string          `json:"id"`
	CustomerId  string          `json:"customerId"`
	Sequence    int64           `json:"sequence"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	SaleId      string          `json:"saleId,omitempty"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedBy   string          `json:"createdBy"`
}

type RecordPaymentRequest struct {
	CustomerId  string          `json:"customerId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type CreditTransactionResponse struct {
	Transaction *CreditTransaction `json:"transaction"`
}

type GetCustomerStandingRequest struct {
	CustomerId string `json:"customerId"`
}

type CreditStats struct {
	Active  int32  `json:"active"`
	Paid    int32  `json:"paid"`
	Overdue *int32 `json:"overdue"`
}

type CustomerStandingResponse struct {
	Customer     *Customer            `json:"customer"`
	CurrentDebt  decimal.Decimal      `json:"currentDebt"`
	Available    decimal.Decimal      `json:"available"`
	Transactions []*CreditTransaction `json:"transactions"`
	Stats        *CreditStats         `json:"stats"`
}

// Sales and quotes

type SaleItem struct {
	ProductId   string          `json:"productId"`
	ProductCode string          `json:"productCode"`
	ProductName string          `json:"productName"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Discount    decimal.Decimal `json:"discount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleItemRequest is a requested line. A missing unitPrice takes the
// catalog price.
type SaleItemRequest struct {
	ProductId   string           `json:"productId"`
	ProductCode string           `json:"productCode"`
	ProductName string           `json:"productName"`
	Unit        string           `json:"unit"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	Discount    decimal.Decimal  `json:"discount"`
}

type Sale struct {
	Id               string          `json:"id"`
	SaleNumber       string          `json:"saleNumber"`
	Date             time.Time       `json:"date"`
	CustomerId       string          `json:"customerId,omitempty"`
	CustomerName     string          `json:"customerName"`
	CustomerDocument string          `json:"customerDocument"`
	CustomerPhone    string          `json:"customerPhone"`
	CustomerEmail    string          `json:"customerEmail"`
	Items            []*SaleItem     `json:"items"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Discount         decimal.Decimal `json:"discount"`
	Tax              decimal.Decimal `json:"tax"`
	Total            decimal.Decimal `json:"total"`
	PaymentMethod    string          `json:"paymentMethod"`
	PaymentType      string          `json:"paymentType"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes"`
	CompanyId        string          `json:"companyId"`
	BranchId         string          `json:"branchId"`
	CreatedBy        string          `json:"createdBy"`
	CreatedAt        time.Time       `json:"createdAt"`
}

type CommitSaleRequest struct {
	CustomerId       string             `json:"customerId"`
	CustomerName     string             `json:"customerName"`
	CustomerDocument string             `json:"customerDocument"`
	CustomerPhone    string             `json:"customerPhone"`
	CustomerEmail    string             `json:"customerEmail"`
	Items            []*SaleItemRequest `json:"items"`
	Discount         decimal.Decimal    `json:"discount"`
	PaymentMethod    string             `json:"paymentMethod"`
	PaymentType      string             `json:"paymentType"`
	Notes            string             `json:"notes"`
}

type GetSaleRequest struct {
	Id         string `json:"id"`
	SaleNumber string `json:"saleNumber"`
}

type ListSalesRequest struct {
	BranchId string `json:"branchId"`
}

type SaleResponse struct {
	Sale *Sale `json:"sale"`
}

type ListSalesResponse struct {
	Sales []*Sale `json:"sales"`
}

type GetNextNumberRequest struct{}

type NextNumberResponse struct {
	Number string `json:"number"`
}

type Quote struct {
	Id               string          `json:"id"`
	QuoteNumber      string          `json:"quoteNumber"`
	Date             time.Time       `json:"date"`
	ValidUntil       time.Time       `json:"validUntil"`
	CustomerId       string          `json:"customerId,omitempty"`
	CustomerName     string          `json:"customerName"`
	CustomerDocument string          `json:"customerDocument"`
	CustomerPhone    string          `json:"customerPhone"`
	CustomerEmail    string          `json:"customerEmail"`
	Items            []*SaleItem     `json:"items"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Discount         decimal.Decimal `json:"discount"`
	Tax              decimal.Decimal `json:"tax"`
	Total            decimal.Decimal `json:"total"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes"`
	CompanyId        string          `json:"companyId"`
	BranchId         string          `json:"branchId"`
	CreatedBy        string          `json:"createdBy"`
	CreatedAt        time.Time       `json:"createdAt"`
}

type CreateQuoteRequest struct {
	ValidUntil       time.Time          `json:"validUntil"`
	CustomerId       string             `json:"customerId"`
	CustomerName     string             `json:"customerName"`
	CustomerDocument string             `json:"customerDocument"`
	CustomerPhone    string             `json:"customerPhone"`
	CustomerEmail    string             `json:"customerEmail"`
	Items            []*SaleItemRequest `json:"items"`
	Discount         decimal.Decimal    `json:"discount"`
	Notes            string             `json:"notes"`
}

type GetQuoteRequest struct {
	Id string `json:"id"`
}

type ListQuotesRequest struct {
	BranchId string `json:"branchId"`
}

type UpdateQuoteStatusRequest struct {
	Id     string `json:"id"`
	Status string `json:"status"`
}

type QuoteResponse struct {
	Quote *Quote `json:"quote"`
}

type ListQuotesResponse struct {
	Quotes []*Quote `json:"quotes"`
}
