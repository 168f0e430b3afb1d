package ledger

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-sales-service/internal/model"
)

type Repository interface {
	// Tail returns the customer's running balance and last sequence, locking
	// the balance row when ctx carries a transaction. A customer with no
	// entries has a zero summary.
	Tail(ctx context.Context, customerID string) (model.CreditSummary, error)

	// Append stores entry and advances the customer's tail. entry.Sequence
	// must be the tail's LastSequence plus one.
	Append(ctx context.Context, entry *model.CreditTransaction) error

	// ListEntries returns the customer's ledger newest first.
	ListEntries(ctx context.Context, customerID string) ([]model.CreditTransaction, error)

	Summaries(ctx context.Context, customerIDs []string) (map[string]model.CreditSummary, error)
}

// ErrSequenceConflict means an append raced another writer for the same
// customer. Callers holding the customer lock never see it.
var ErrSequenceConflict = errors.New("ledger sequence conflict")
