package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/storage"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type PGRepository struct {
	DB *sqlx.DB
	tx *storage.PGTransactor
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db, tx: storage.NewPGTransactor(db)}
}

func (r *PGRepository) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	var p model.Product
	query := `SELECT * FROM products WHERE id = $1` + storage.ForUpdate(ctx)
	err := sqlx.GetContext(ctx, storage.Executor(ctx, r.DB), &p, query, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) AdjustStockWithMovement(ctx context.Context, productID string, stock decimal.Decimal, m *model.StockMovement) error {
	return r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		exec := storage.Executor(ctx, r.DB)

		res, err := exec.ExecContext(ctx,
			`UPDATE products SET stock = $1, updated_at = $2 WHERE id = $3`,
			stock, time.Now(), productID)
		if err != nil {
			return fmt.Errorf("failed to update stock: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return &apperror.ProductNotFoundError{ProductID: productID}
		}

		insertLogQuery := `
            INSERT INTO stock_movements (
                id, company_id, product_id, movement_type, quantity_change,
                quantity_before, quantity_after, reference_type, reference_id,
                notes, created_by, created_at
            )
            VALUES (
                :id, :company_id, :product_id, :movement_type, :quantity_change,
                :quantity_before, :quantity_after, :reference_type, :reference_id,
                :notes, :created_by, :created_at
            )
        `
		if _, err := sqlx.NamedExecContext(ctx, exec, insertLogQuery, m); err != nil {
			return fmt.Errorf("failed to log movement: %w", err)
		}
		return nil
	})
}

func (r *PGRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.StockMovement, int, error) {
	conditions := []string{}
	args := map[string]any{}

	if f.CompanyID != "" {
		conditions = append(conditions, "company_id = :company_id")
		args["company_id"] = f.CompanyID
	}
	if f.ProductID != "" {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.MovementType != "" {
		conditions = append(conditions, "movement_type = :movement_type")
		args["movement_type"] = f.MovementType
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	exec := storage.Executor(ctx, r.DB)

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM stock_movements"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	var count int
	if err := sqlx.GetContext(ctx, exec, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM stock_movements" + whereClause + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		offset := (max(f.Page, 1) - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}
	query, queryArgs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, 0, err
	}

	items := []model.StockMovement{}
	err = sqlx.SelectContext(ctx, exec, &items, r.DB.Rebind(query), queryArgs...)
	return items, count, err
}

func (r *PGRepository) FindLowStock(ctx context.Context, companyID string) ([]model.Product, error) {
	query := `SELECT * FROM products WHERE stock <= min_stock`
	args := []any{}
	if companyID != "" {
		query += ` AND company_id = $1`
		args = append(args, companyID)
	}
	query += ` ORDER BY company_id, code`

	products := []model.Product{}
	err := sqlx.SelectContext(ctx, storage.Executor(ctx, r.DB), &products, query, args...)
	return products, err
}
