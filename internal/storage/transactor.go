// Package storage provides the transaction boundary shared by the
// repositories of every module.
package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Transactor runs fn as one unit of work. When Atomic is false the backend
// cannot roll back and callers must compensate their own writes.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	Atomic() bool
}

type txKey struct{}

type PGTransactor struct {
	DB *sqlx.DB
}

func NewPGTransactor(db *sqlx.DB) *PGTransactor {
	return &PGTransactor{DB: db}
}

// WithinTransaction begins a transaction and stores it in ctx. Nested calls
// join the outer transaction.
func (t *PGTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := t.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (t *PGTransactor) Atomic() bool { return true }

// NoTxTransactor runs fn directly. Used by the memory backend.
type NoTxTransactor struct{}

func (NoTxTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (NoTxTransactor) Atomic() bool { return false }

// Executor returns the transaction bound to ctx, or db when there is none.
func Executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

func InTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	return ok
}

// ForUpdate returns a row-locking suffix when running inside a transaction.
func ForUpdate(ctx context.Context) string {
	if InTx(ctx) {
		return " FOR UPDATE"
	}
	return ""
}
