// Package apperror holds the error taxonomy shared by every module.
//
// Validation and business-rule errors are returned as-is so transports can
// map them. Anything else is an infrastructure failure and is wrapped with
// context by the layer that observed it.
package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrCustomerNotFound          = errors.New("customer not found")
	ErrCustomerRequiredForCredit = errors.New("customer is required for credit sales")
	ErrSaleNotFound              = errors.New("sale not found")
	ErrQuoteNotFound             = errors.New("quote not found")
	ErrInvalidStatusTransition   = errors.New("invalid status transition")

	// ErrBusy means a lock could not be obtained before the deadline.
	ErrBusy = errors.New("system busy, please try again later")
)

type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.ProductID)
}

type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   decimal.Decimal
	Requested   decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %s, requested %s",
		e.ProductID, e.Available.String(), e.Requested.String())
}

type CreditLimitExceededError struct {
	CustomerID     string
	Limit          decimal.Decimal
	CurrentBalance decimal.Decimal
	NewBalance     decimal.Decimal
}

func (e *CreditLimitExceededError) Error() string {
	return fmt.Sprintf("credit limit exceeded for customer %s: limit %s, current %s, new %s",
		e.CustomerID, e.Limit.String(), e.CurrentBalance.String(), e.NewBalance.String())
}

type PaymentExceedsDebtError struct {
	CustomerID  string
	Amount      decimal.Decimal
	CurrentDebt decimal.Decimal
}

func (e *PaymentExceedsDebtError) Error() string {
	return fmt.Sprintf("payment %s exceeds current debt %s for customer %s",
		e.Amount.String(), e.CurrentDebt.String(), e.CustomerID)
}

type DuplicateCodeError struct {
	Entity string
	Code   string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("%s code %q already exists", e.Entity, e.Code)
}

// ValidationError maps field names to the rule each one broke.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: rule}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Busy wraps a lock failure so callers can match ErrBusy and still see the cause.
func Busy(err error) error {
	return fmt.Errorf("%w: %w", ErrBusy, err)
}

// IsValidation reports validation failures, including a credit sale without a customer.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrCustomerRequiredForCredit)
}

// IsBusiness reports business-rule violations. These are expected outcomes and
// are never logged at error level.
func IsBusiness(err error) bool {
	var (
		notFound  *ProductNotFoundError
		stock     *InsufficientStockError
		credit    *CreditLimitExceededError
		payment   *PaymentExceedsDebtError
		duplicate *DuplicateCodeError
	)
	switch {
	case errors.As(err, &notFound),
		errors.As(err, &stock),
		errors.As(err, &credit),
		errors.As(err, &payment),
		errors.As(err, &duplicate):
		return true
	}
	return errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrSaleNotFound) ||
		errors.Is(err, ErrQuoteNotFound) ||
		errors.Is(err, ErrInvalidStatusTransition)
}

// IsExpected is true for errors that describe the request rather than the system.
func IsExpected(err error) bool {
	return IsValidation(err) || IsBusiness(err)
}
