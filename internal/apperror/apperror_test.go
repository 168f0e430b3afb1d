package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		validation bool
		business   bool
	}{
		{"validation", NewValidationError("items", "required"), true, false},
		{"customer required", ErrCustomerRequiredForCredit, true, false},
		{"stock", &InsufficientStockError{ProductID: "p", Available: decimal.Zero, Requested: decimal.NewFromInt(1)}, false, true},
		{"wrapped credit", fmt.Errorf("charge: %w", &CreditLimitExceededError{}), false, true},
		{"customer not found", ErrCustomerNotFound, false, true},
		{"duplicate", &DuplicateCodeError{Entity: "product", Code: "MAT-001"}, false, true},
		{"busy", Busy(errors.New("timeout")), false, false},
		{"infra", errors.New("connection reset"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidation(tt.err); got != tt.validation {
				t.Fatalf("IsValidation = %v, want %v", got, tt.validation)
			}
			if got := IsBusiness(tt.err); got != tt.business {
				t.Fatalf("IsBusiness = %v, want %v", got, tt.business)
			}
		})
	}
}

func TestBusyKeepsCause(t *testing.T) {
	cause := errors.New("lock timeout")
	err := Busy(cause)
	if !errors.Is(err, ErrBusy) || !errors.Is(err, cause) {
		t.Fatalf("Busy(%v) lost a wrapped error: %v", cause, err)
	}
}

func TestValidationErrorMessageIsSorted(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "required", "a": "gt"}}
	if got, want := err.Error(), "validation failed: a: gt, b: required"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
