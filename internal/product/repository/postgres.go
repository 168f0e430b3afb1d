package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/product/dto"
	"github.com/fekuna/omnipos-sales-service/internal/storage"
	"github.com/fekuna/omnipos-sales-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

const codeConstraint = "products_company_code_key"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, company_id, branch_id, code, name, description, detailed_description,
            category, unit, stock, min_stock, cost, price, created_at, updated_at
        )
        VALUES (
            :id, :company_id, :branch_id, :code, :name, :description, :detailed_description,
            :category, :unit, :stock, :min_stock, :cost, :price, :created_at, :updated_at
        )
    `
	_, err := sqlx.NamedExecContext(ctx, storage.Executor(ctx, r.DB), query, p)
	if postgres.IsUniqueViolation(err, codeConstraint) {
		return &apperror.DuplicateCodeError{Entity: "product", Code: p.Code}
	}
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	err := sqlx.GetContext(ctx, storage.Executor(ctx, r.DB), &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *PGRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}
	query, args, err := sqlx.In(`SELECT * FROM products WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	var products []model.Product
	err = sqlx.SelectContext(ctx, storage.Executor(ctx, r.DB), &products, r.DB.Rebind(query), args...)
	return products, err
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	conditions := []string{}
	args := map[string]any{}

	if f.CompanyID != "" {
		conditions = append(conditions, "company_id = :company_id")
		args["company_id"] = f.CompanyID
	}
	if f.BranchID != "" {
		conditions = append(conditions, "branch_id = :branch_id")
		args["branch_id"] = f.BranchID
	}
	if f.Category != "" {
		conditions = append(conditions, "category = :category")
		args["category"] = f.Category
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(name ILIKE :search OR code ILIKE :search OR description ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	exec := storage.Executor(ctx, r.DB)

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM products"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	var count int
	if err := sqlx.GetContext(ctx, exec, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	orderBy := "created_at DESC"
	if f.SortBy != "" {
		// Whitelisted to keep user input out of the SQL.
		switch f.SortBy {
		case "name":
			orderBy = "name"
		case "price":
			orderBy = "price"
		case "code":
			orderBy = "code"
		default:
			orderBy = "created_at"
		}
		if strings.ToLower(f.SortOrder) == "asc" {
			orderBy += " ASC"
		} else {
			orderBy += " DESC"
		}
	}

	query := fmt.Sprintf("SELECT * FROM products%s ORDER BY %s", whereClause, orderBy)
	if f.PageSize > 0 {
		page := max(f.Page, 1)
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	listQuery, listArgs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, 0, err
	}
	products := []model.Product{}
	if err := sqlx.SelectContext(ctx, exec, &products, r.DB.Rebind(listQuery), listArgs...); err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET code = :code,
            name = :name,
            description = :description,
            detailed_description = :detailed_description,
            category = :category,
            unit = :unit,
            min_stock = :min_stock,
            cost = :cost,
            price = :price,
            updated_at = :updated_at
        WHERE id = :id AND company_id = :company_id
    `
	_, err := sqlx.NamedExecContext(ctx, storage.Executor(ctx, r.DB), query, p)
	if postgres.IsUniqueViolation(err, codeConstraint) {
		return &apperror.DuplicateCodeError{Entity: "product", Code: p.Code}
	}
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := storage.Executor(ctx, r.DB).ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	return err
}

func (r *PGRepository) IsCodeUnique(ctx context.Context, companyID, code, excludeID string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM products WHERE company_id = $1 AND code = $2`
	args := []any{companyID, code}
	if excludeID != "" {
		query += ` AND id != $3`
		args = append(args, excludeID)
	}

	err := sqlx.GetContext(ctx, storage.Executor(ctx, r.DB), &count, query, args...)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *PGRepository) ListCodes(ctx context.Context, companyID, prefix string) ([]string, error) {
	var codes []string
	query := `SELECT code FROM products WHERE company_id = $1 AND code LIKE $2`
	err := sqlx.SelectContext(ctx, storage.Executor(ctx, r.DB), &codes, query, companyID, prefix+"-%")
	return codes, err
}
