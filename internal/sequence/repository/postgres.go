package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/omnipos-sales-service/internal/storage"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Next(ctx context.Context, companyID, branchID, kind string) (int64, error) {
	query := `
        INSERT INTO document_sequences (company_id, branch_id, kind, last_value)
        VALUES ($1, $2, $3, 1)
        ON CONFLICT (company_id, branch_id, kind)
        DO UPDATE SET last_value = document_sequences.last_value + 1
        RETURNING last_value
    `
	var n int64
	err := sqlx.GetContext(ctx, storage.Executor(ctx, r.DB), &n, query, companyID, branchID, kind)
	return n, err
}

func (r *PGRepository) Current(ctx context.Context, companyID, branchID, kind string) (int64, error) {
	query := `SELECT last_value FROM document_sequences WHERE company_id = $1 AND branch_id = $2 AND kind = $3`
	var n int64
	err := sqlx.GetContext(ctx, storage.Executor(ctx, r.DB), &n, query, companyID, branchID, kind)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}
