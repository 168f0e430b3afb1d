package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-sales-service/internal/ledger"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/storage"
	"github.com/fekuna/omnipos-sales-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

const sequenceConstraint = "credit_transactions_customer_sequence_key"

type PGRepository struct {
	DB *sqlx.DB
	tx *storage.PGTransactor
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db, tx: storage.NewPGTransactor(db)}
}

func (r *PGRepository) Tail(ctx context.Context, customerID string) (model.CreditSummary, error) {
	var s model.CreditSummary
	query := `
        SELECT customer_id, balance, last_sequence, credit_count
        FROM customer_balances
        WHERE customer_id = $1` + storage.ForUpdate(ctx)
	err := sqlx.GetContext(ctx, storage.Executor(ctx, r.DB), &s, query, customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CreditSummary{CustomerID: customerID}, nil
	}
	return s, err
}

func (r *PGRepository) Append(ctx context.Context, e *model.CreditTransaction) error {
	return r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		exec := storage.Executor(ctx, r.DB)

		insertQuery := `
            INSERT INTO credit_transactions (
                id, customer_id, sequence, type, amount, balance, sale_id,
                description, date, company_id, branch_id, created_by, created_at
            )
            VALUES (
                :id, :customer_id, :sequence, :type, :amount, :balance, :sale_id,
                :description, :date, :company_id, :branch_id, :created_by, :created_at
            )
        `
		if _, err := sqlx.NamedExecContext(ctx, exec, insertQuery, e); err != nil {
			if postgres.IsUniqueViolation(err, sequenceConstraint) {
				return ledger.ErrSequenceConflict
			}
			return fmt.Errorf("insert credit transaction: %w", err)
		}

		credits := 0
		if e.Type == model.CreditTypeSale {
			credits = 1
		}

		// The WHERE guard rejects an append that does not extend the current tail.
		res, err := exec.ExecContext(ctx, `
            INSERT INTO customer_balances (customer_id, balance, last_sequence, credit_count, updated_at)
            VALUES ($1, $2, $3, $4, $5)
            ON CONFLICT (customer_id) DO UPDATE SET
                balance = EXCLUDED.balance,
                last_sequence = EXCLUDED.last_sequence,
                credit_count = customer_balances.credit_count + EXCLUDED.credit_count,
                updated_at = EXCLUDED.updated_at
            WHERE customer_balances.last_sequence = EXCLUDED.last_sequence - 1
        `, e.CustomerID, e.Balance, e.Sequence, credits, time.Now())
		if err != nil {
			return fmt.Errorf("update customer balance: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ledger.ErrSequenceConflict
		}
		return nil
	})
}

func (r *PGRepository) ListEntries(ctx context.Context, customerID string) ([]model.CreditTransaction, error) {
	entries := []model.CreditTransaction{}
	query := `SELECT * FROM credit_transactions WHERE customer_id = $1 ORDER BY sequence DESC`
	err := sqlx.SelectContext(ctx, storage.Executor(ctx, r.DB), &entries, query, customerID)
	return entries, err
}

func (r *PGRepository) Summaries(ctx context.Context, customerIDs []string) (map[string]model.CreditSummary, error) {
	out := make(map[string]model.CreditSummary, len(customerIDs))
	if len(customerIDs) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
        SELECT customer_id, balance, last_sequence, credit_count
        FROM customer_balances
        WHERE customer_id IN (?)
    `, customerIDs)
	if err != nil {
		return nil, err
	}

	var rows []model.CreditSummary
	if err := sqlx.SelectContext(ctx, storage.Executor(ctx, r.DB), &rows, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, s := range rows {
		out[s.CustomerID] = s
	}
	return out, nil
}
