// Package memdb is the in-memory backend shared by every module's memory
// repository. One RWMutex guards all tables, so a single Write callback is
// atomic with respect to every other reader and writer.
package memdb

import (
	"sync"

	"github.com/fekuna/omnipos-sales-service/internal/model"
)

type Tables struct {
	Products  map[string]*model.Product
	Movements []model.StockMovement
	Customers map[string]*model.Customer
	// Credit holds each customer's ledger in sequence order; the last element is the tail.
	Credit    map[string][]model.CreditTransaction
	// Balances is the per-customer tail kept in step with Credit.
	Balances  map[string]model.CreditSummary
	Sales     map[string]*model.Sale
	Quotes    map[string]*model.Quote
	Sequences map[string]int64
}

type DB struct {
	mu sync.RWMutex
	t  *Tables
}

func New() *DB {
	return &DB{t: &Tables{
		Products:  make(map[string]*model.Product),
		Customers: make(map[string]*model.Customer),
		Credit:    make(map[string][]model.CreditTransaction),
		Balances:  make(map[string]model.CreditSummary),
		Sales:     make(map[string]*model.Sale),
		Quotes:    make(map[string]*model.Quote),
		Sequences: make(map[string]int64),
	}}
}

// Read runs fn under the shared lock. fn must not retain pointers into t.
func (db *DB) Read(fn func(t *Tables) error) error {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return fn(db.t)
}

// Write runs fn under the exclusive lock.
func (db *DB) Write(fn func(t *Tables) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return fn(db.t)
}
