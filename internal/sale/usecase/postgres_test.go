package usecase

import (
	"context"
	"testing"
	"time"

	customerrepo "github.com/fekuna/omnipos-sales-service/internal/customer/repository"
	inventoryrepo "github.com/fekuna/omnipos-sales-service/internal/inventory/repository"
	inventoryuc "github.com/fekuna/omnipos-sales-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-sales-service/internal/ledger"
	ledgerrepo "github.com/fekuna/omnipos-sales-service/internal/ledger/repository"
	ledgeruc "github.com/fekuna/omnipos-sales-service/internal/ledger/usecase"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	productrepo "github.com/fekuna/omnipos-sales-service/internal/product/repository"
	"github.com/fekuna/omnipos-sales-service/internal/sale/dto"
	"github.com/fekuna/omnipos-sales-service/internal/sale/repository"
	sequencerepo "github.com/fekuna/omnipos-sales-service/internal/sequence/repository"
	"github.com/fekuna/omnipos-sales-service/internal/storage"
	"github.com/fekuna/omnipos-sales-service/internal/storage/pgtest"
	"github.com/fekuna/omnipos-sales-service/pkg/broker"
	"github.com/fekuna/omnipos-sales-service/pkg/lock"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type pgFixture struct {
	db      *sqlx.DB
	deps    Dependencies
	credit  ledger.UseCase
	company string
}

func newPGFixture(t *testing.T) *pgFixture {
	t.Helper()
	db := pgtest.Open(t)
	locker := lock.NewLocal()
	tx := storage.NewPGTransactor(db)
	log := logger.NewNop()

	products := inventoryrepo.NewPGRepository(db)
	customers := customerrepo.NewPGRepository(db)
	credit := ledgeruc.NewLedgerUseCase(ledgerrepo.NewPGRepository(db), customers, locker, tx, broker.NopPublisher{}, "credit", log)

	return &pgFixture{
		db:      db,
		credit:  credit,
		company: "co-" + uuid.NewString(),
		deps: Dependencies{
			Repo:          repository.NewPGRepository(db),
			Products:      products,
			Stock:         inventoryuc.NewInventoryUseCase(products, locker, tx, nil, log),
			Customers:     customers,
			Ledger:        credit,
			Sequences:     sequencerepo.NewPGRepository(db),
			Locker:        locker,
			Tx:            tx,
			CommitTimeout: 5 * time.Second,
		},
	}
}

func (f *pgFixture) seed(t *testing.T) (productID, customerID string) {
	t.Helper()
	ctx := context.Background()
	now := time.Now()

	p := &model.Product{
		BaseModel: model.BaseModel{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		CompanyID: f.company,
		BranchID:  "b1",
		Code:      "MAT-0001",
		Name:      "Cemento",
		Unit:      "bolsa",
		Stock:     decimal.NewFromInt(10),
		Price:     decimal.NewFromInt(50),
	}
	if err := productrepo.NewPGRepository(f.db).Create(ctx, p); err != nil {
		t.Fatalf("create product: %v", err)
	}

	c := &model.Customer{
		BaseModel:   model.BaseModel{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		CompanyID:   f.company,
		BranchID:    "b1",
		Code:        "CLI-0001",
		Name:        "Obras Norte",
		CreditLimit: decimal.NewFromInt(10000),
	}
	if err := customerrepo.NewPGRepository(f.db).Create(ctx, c); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return p.ID, c.ID
}

func (f *pgFixture) count(t *testing.T, query string, arg string) int {
	t.Helper()
	var n int
	if err := f.db.GetContext(context.Background(), &n, query, arg); err != nil {
		t.Fatalf("%s: %v", query, err)
	}
	return n
}

func (f *pgFixture) input(productID, customerID string) *dto.CommitSaleInput {
	in := creditSale(customerID, "0", line(productID, "3"))
	in.CompanyID = f.company
	return in
}

func TestPGFailedCreditSaleRollsBack(t *testing.T) {
	tests := []struct {
		name string
		wrap func(*Dependencies)
	}{
		{
			name: "ledger charge fails",
			wrap: func(d *Dependencies) { d.Ledger = failingCharge{d.Ledger} },
		},
		{
			name: "sale insert fails",
			wrap: func(d *Dependencies) { d.Repo = failingCreate{d.Repo} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPGFixture(t)
			productID, customerID := f.seed(t)
			deps := f.deps
			tt.wrap(&deps)
			uc := NewSaleUseCase(deps, logger.NewNop())
			ctx := context.Background()

			if _, err := uc.CommitSale(ctx, f.input(productID, customerID)); err == nil {
				t.Fatal("expected commit to fail")
			}

			stock, err := f.deps.Stock.GetStock(ctx, f.company, productID)
			if err != nil {
				t.Fatalf("GetStock: %v", err)
			}
			if !stock.Equal(decimal.NewFromInt(10)) {
				t.Fatalf("stock = %s, want 10", stock)
			}
			if n := f.count(t, `SELECT count(*) FROM stock_movements WHERE product_id = $1`, productID); n != 0 {
				t.Fatalf("movements = %d, want 0", n)
			}
			if n := f.count(t, `SELECT count(*) FROM credit_transactions WHERE customer_id = $1`, customerID); n != 0 {
				t.Fatalf("ledger entries = %d, want 0", n)
			}
			if n := f.count(t, `SELECT count(*) FROM sales WHERE company_id = $1`, f.company); n != 0 {
				t.Fatalf("sales = %d, want 0", n)
			}
			if n := f.count(t, `SELECT count(*) FROM document_sequences WHERE company_id = $1`, f.company); n != 0 {
				t.Fatalf("sale counter advanced by a rolled back commit")
			}
		})
	}
}

func TestPGCreditSaleCommits(t *testing.T) {
	f := newPGFixture(t)
	productID, customerID := f.seed(t)
	uc := NewSaleUseCase(f.deps, logger.NewNop())
	ctx := context.Background()

	s, err := uc.CommitSale(ctx, f.input(productID, customerID))
	if err != nil {
		t.Fatalf("CommitSale: %v", err)
	}
	// 3 x 50 + 18% tax
	if !s.Total.Equal(decimal.NewFromInt(177)) {
		t.Fatalf("total = %s, want 177", s.Total)
	}

	stock, _ := f.deps.Stock.GetStock(ctx, f.company, productID)
	if !stock.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("stock = %s, want 7", stock)
	}
	standing, err := f.credit.GetCustomerStanding(ctx, f.company, customerID)
	if err != nil {
		t.Fatalf("GetCustomerStanding: %v", err)
	}
	if !standing.CurrentDebt.Equal(s.Total) || len(standing.Transactions) != 1 || *standing.Transactions[0].SaleID != s.ID {
		t.Fatalf("standing = %+v", standing)
	}
	got, err := uc.GetSaleByNumber(ctx, f.company, "b1", s.SaleNumber)
	if err != nil || got.ID != s.ID {
		t.Fatalf("GetSaleByNumber = %v, %v", got, err)
	}
}
