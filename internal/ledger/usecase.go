package ledger

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/ledger/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/shopspring/decimal"
)

type UseCase interface {
	// RecordPayment locks the customer and appends a payment entry.
	RecordPayment(ctx context.Context, input *dto.PaymentInput) (*model.CreditTransaction, error)

	GetCustomerStanding(ctx context.Context, companyID, customerID string) (*model.CustomerStanding, error)

	// ProjectCharge fails with CreditLimitExceeded when amount would push the
	// customer past their limit. Nothing is written.
	ProjectCharge(ctx context.Context, customer *model.Customer, amount decimal.Decimal) error

	// Charge re-checks the limit and appends a sale entry. The caller must
	// hold the customer lock.
	Charge(ctx context.Context, input *dto.ChargeInput) (*model.CreditTransaction, error)

	// ReverseCharge appends a payment entry cancelling charge. Entries are
	// never rewritten. The caller must hold the customer lock.
	ReverseCharge(ctx context.Context, charge *model.CreditTransaction) (*model.CreditTransaction, error)

	Summaries(ctx context.Context, customerIDs []string) (map[string]model.CreditSummary, error)
}
