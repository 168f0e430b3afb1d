package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/quote/dto"
	"github.com/fekuna/omnipos-sales-service/internal/storage"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, q *model.Quote) error {
	query := `
        INSERT INTO quotes (
            id, quote_number, date, valid_until, customer_id, customer_name,
            customer_document, customer_phone, customer_email, items, subtotal,
            discount, tax, total, status, notes, company_id, branch_id,
            created_by, created_at
        )
        VALUES (
            :id, :quote_number, :date, :valid_until, :customer_id, :customer_name,
            :customer_document, :customer_phone, :customer_email, :items, :subtotal,
            :discount, :tax, :total, :status, :notes, :company_id, :branch_id,
            :created_by, :created_at
        )
    `
	_, err := sqlx.NamedExecContext(ctx, storage.Executor(ctx, r.DB), query, q)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Quote, error) {
	var q model.Quote
	err := sqlx.GetContext(ctx, storage.Executor(ctx, r.DB), &q,
		`SELECT * FROM quotes WHERE id = $1 LIMIT 1`+storage.ForUpdate(ctx), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.QuoteFilters) ([]model.Quote, error) {
	query := `SELECT * FROM quotes WHERE company_id = $1`
	args := []any{f.CompanyID}
	if f.BranchID != "" {
		query += ` AND branch_id = $2`
		args = append(args, f.BranchID)
	}
	query += ` ORDER BY created_at DESC`

	quotes := []model.Quote{}
	err := sqlx.SelectContext(ctx, storage.Executor(ctx, r.DB), &quotes, query, args...)
	return quotes, err
}

func (r *PGRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := storage.Executor(ctx, r.DB).ExecContext(ctx,
		`UPDATE quotes SET status = $1 WHERE id = $2`, status, id)
	return err
}
