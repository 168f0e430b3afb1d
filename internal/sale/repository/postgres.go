package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/sale/dto"
	"github.com/fekuna/omnipos-sales-service/internal/storage"
	"github.com/fekuna/omnipos-sales-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

const numberConstraint = "sales_company_branch_number_key"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.Sale) error {
	query := `
        INSERT INTO sales (
            id, sale_number, date, customer_id, customer_name, customer_document,
            customer_phone, customer_email, items, subtotal, discount, tax, total,
            payment_method, payment_type, status, notes, company_id, branch_id,
            created_by, created_at
        )
        VALUES (
            :id, :sale_number, :date, :customer_id, :customer_name, :customer_document,
            :customer_phone, :customer_email, :items, :subtotal, :discount, :tax, :total,
            :payment_method, :payment_type, :status, :notes, :company_id, :branch_id,
            :created_by, :created_at
        )
    `
	_, err := sqlx.NamedExecContext(ctx, storage.Executor(ctx, r.DB), query, s)
	if postgres.IsUniqueViolation(err, numberConstraint) {
		return fmt.Errorf("sale number %s already used: %w", s.SaleNumber, err)
	}
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Sale, error) {
	return r.findOne(ctx, `SELECT * FROM sales WHERE id = $1 LIMIT 1`, id)
}

func (r *PGRepository) FindByNumber(ctx context.Context, companyID, branchID, number string) (*model.Sale, error) {
	return r.findOne(ctx,
		`SELECT * FROM sales WHERE company_id = $1 AND branch_id = $2 AND sale_number = $3 LIMIT 1`,
		companyID, branchID, number)
}

func (r *PGRepository) findOne(ctx context.Context, query string, args ...any) (*model.Sale, error) {
	var s model.Sale
	err := sqlx.GetContext(ctx, storage.Executor(ctx, r.DB), &s, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.SaleFilters) ([]model.Sale, error) {
	query := `SELECT * FROM sales WHERE company_id = $1`
	args := []any{f.CompanyID}
	if f.BranchID != "" {
		query += ` AND branch_id = $2`
		args = append(args, f.BranchID)
	}
	query += ` ORDER BY created_at DESC`

	sales := []model.Sale{}
	err := sqlx.SelectContext(ctx, storage.Executor(ctx, r.DB), &sales, query, args...)
	return sales, err
}
