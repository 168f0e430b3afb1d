package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/customer/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/storage"
	"github.com/fekuna/omnipos-sales-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

const codeConstraint = "customers_company_branch_code_key"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `
        INSERT INTO customers (
            id, company_id, branch_id, code, name, email, phone, address,
            credit_limit, created_at, updated_at
        )
        VALUES (
            :id, :company_id, :branch_id, :code, :name, :email, :phone, :address,
            :credit_limit, :created_at, :updated_at
        )
    `
	_, err := sqlx.NamedExecContext(ctx, storage.Executor(ctx, r.DB), query, c)
	if postgres.IsUniqueViolation(err, codeConstraint) {
		return &apperror.DuplicateCodeError{Entity: "customer", Code: c.Code}
	}
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	var c model.Customer
	err := sqlx.GetContext(ctx, storage.Executor(ctx, r.DB), &c, `SELECT * FROM customers WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.CustomerFilters) ([]model.Customer, error) {
	conditions := []string{"company_id = :company_id"}
	args := map[string]any{"company_id": f.CompanyID}

	if f.BranchID != "" {
		conditions = append(conditions, "branch_id = :branch_id")
		args["branch_id"] = f.BranchID
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(name ILIKE :search OR code ILIKE :search OR email ILIKE :search OR phone ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	query, queryArgs, err := sqlx.Named(
		"SELECT * FROM customers WHERE "+strings.Join(conditions, " AND ")+" ORDER BY name ASC", args)
	if err != nil {
		return nil, err
	}

	customers := []model.Customer{}
	err = sqlx.SelectContext(ctx, storage.Executor(ctx, r.DB), &customers, r.DB.Rebind(query), queryArgs...)
	return customers, err
}

func (r *PGRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `
        UPDATE customers
        SET code = :code,
            name = :name,
            email = :email,
            phone = :phone,
            address = :address,
            credit_limit = :credit_limit,
            updated_at = :updated_at
        WHERE id = :id AND company_id = :company_id
    `
	_, err := sqlx.NamedExecContext(ctx, storage.Executor(ctx, r.DB), query, c)
	if postgres.IsUniqueViolation(err, codeConstraint) {
		return &apperror.DuplicateCodeError{Entity: "customer", Code: c.Code}
	}
	return err
}

func (r *PGRepository) ListCodes(ctx context.Context, companyID, branchID, prefix string) ([]string, error) {
	var codes []string
	query := `SELECT code FROM customers WHERE company_id = $1 AND branch_id = $2 AND code LIKE $3`
	err := sqlx.SelectContext(ctx, storage.Executor(ctx, r.DB), &codes, query, companyID, branchID, prefix+"-%")
	return codes, err
}
