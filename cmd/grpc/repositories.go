package main

import (
	"github.com/fekuna/omnipos-sales-service/internal/customer"
	customerRepoPkg "github.com/fekuna/omnipos-sales-service/internal/customer/repository"
	"github.com/fekuna/omnipos-sales-service/internal/inventory"
	invRepoPkg "github.com/fekuna/omnipos-sales-service/internal/inventory/repository"
	"github.com/fekuna/omnipos-sales-service/internal/ledger"
	ledgerRepoPkg "github.com/fekuna/omnipos-sales-service/internal/ledger/repository"
	"github.com/fekuna/omnipos-sales-service/internal/product"
	prodRepoPkg "github.com/fekuna/omnipos-sales-service/internal/product/repository"
	"github.com/fekuna/omnipos-sales-service/internal/quote"
	quoteRepoPkg "github.com/fekuna/omnipos-sales-service/internal/quote/repository"
	"github.com/fekuna/omnipos-sales-service/internal/sale"
	saleRepoPkg "github.com/fekuna/omnipos-sales-service/internal/sale/repository"
	"github.com/fekuna/omnipos-sales-service/internal/sequence"
	seqRepoPkg "github.com/fekuna/omnipos-sales-service/internal/sequence/repository"
	"github.com/fekuna/omnipos-sales-service/internal/storage/memdb"
	"github.com/jmoiron/sqlx"
)

// repositories is one backend's set of stores.
type repositories struct {
	product   product.Repository
	inventory inventory.Repository
	customer  customer.Repository
	ledger    ledger.Repository
	sale      sale.Repository
	quote     quote.Repository
	sequence  sequence.Repository
}

func newPostgresRepositories(db *sqlx.DB) *repositories {
	return &repositories{
		product:   prodRepoPkg.NewPGRepository(db),
		inventory: invRepoPkg.NewPGRepository(db),
		customer:  customerRepoPkg.NewPGRepository(db),
		ledger:    ledgerRepoPkg.NewPGRepository(db),
		sale:      saleRepoPkg.NewPGRepository(db),
		quote:     quoteRepoPkg.NewPGRepository(db),
		sequence:  seqRepoPkg.NewPGRepository(db),
	}
}

func newMemoryRepositories(db *memdb.DB) *repositories {
	return &repositories{
		product:   prodRepoPkg.NewMemoryRepository(db),
		inventory: invRepoPkg.NewMemoryRepository(db),
		customer:  customerRepoPkg.NewMemoryRepository(db),
		ledger:    ledgerRepoPkg.NewMemoryRepository(db),
		sale:      saleRepoPkg.NewMemoryRepository(db),
		quote:     quoteRepoPkg.NewMemoryRepository(db),
		sequence:  seqRepoPkg.NewMemoryRepository(db),
	}
}
