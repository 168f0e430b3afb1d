package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	customerrepo "github.com/fekuna/omnipos-sales-service/internal/customer/repository"
	"github.com/fekuna/omnipos-sales-service/internal/inventory"
	inventorydto "github.com/fekuna/omnipos-sales-service/internal/inventory/dto"
	inventoryrepo "github.com/fekuna/omnipos-sales-service/internal/inventory/repository"
	inventoryuc "github.com/fekuna/omnipos-sales-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-sales-service/internal/ledger"
	ledgerdto "github.com/fekuna/omnipos-sales-service/internal/ledger/dto"
	ledgerrepo "github.com/fekuna/omnipos-sales-service/internal/ledger/repository"
	ledgeruc "github.com/fekuna/omnipos-sales-service/internal/ledger/usecase"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/sale"
	"github.com/fekuna/omnipos-sales-service/internal/sale/dto"
	"github.com/fekuna/omnipos-sales-service/internal/sale/repository"
	sequencerepo "github.com/fekuna/omnipos-sales-service/internal/sequence/repository"
	"github.com/fekuna/omnipos-sales-service/internal/storage"
	"github.com/fekuna/omnipos-sales-service/internal/storage/memdb"
	"github.com/fekuna/omnipos-sales-service/pkg/broker"
	"github.com/fekuna/omnipos-sales-service/pkg/lock"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"github.com/shopspring/decimal"
)

var d = decimal.RequireFromString

type fixture struct {
	db     *memdb.DB
	uc     sale.UseCase
	stock  inventory.UseCase
	ledger ledger.UseCase
	locker *lock.LocalLocker
	deps   Dependencies
}

type failingCharge struct {
	ledger.UseCase
}

func (failingCharge) Charge(context.Context, *ledgerdto.ChargeInput) (*model.CreditTransaction, error) {
	return nil, errors.New("ledger unavailable")
}

// countingCharge records how many sales were stored when the charge ran.
type countingCharge struct {
	ledger.UseCase
	sales func() int
	seen  *int
}

func (c countingCharge) Charge(ctx context.Context, in *ledgerdto.ChargeInput) (*model.CreditTransaction, error) {
	*c.seen = c.sales()
	return c.UseCase.Charge(ctx, in)
}

type failingCreate struct {
	sale.Repository
}

func (failingCreate) Create(context.Context, *model.Sale) error {
	return errors.New("disk full")
}

func newFixture(t *testing.T, wrap func(ledger.UseCase) ledger.UseCase) *fixture {
	t.Helper()
	db := memdb.New()
	locker := lock.NewLocal()
	tx := storage.NoTxTransactor{}
	log := logger.NewNop()

	products := inventoryrepo.NewMemoryRepository(db)
	customers := customerrepo.NewMemoryRepository(db)
	stock := inventoryuc.NewInventoryUseCase(products, locker, tx, nil, log)
	credit := ledgeruc.NewLedgerUseCase(ledgerrepo.NewMemoryRepository(db), customers, locker, tx, broker.NopPublisher{}, "credit", log)

	engineLedger := credit
	if wrap != nil {
		engineLedger = wrap(credit)
	}

	deps := Dependencies{
		Repo:          repository.NewMemoryRepository(db),
		Products:      products,
		Stock:         stock,
		Customers:     customers,
		Ledger:        engineLedger,
		Sequences:     sequencerepo.NewMemoryRepository(db),
		Locker:        locker,
		Tx:            tx,
		Topic:         "sale.committed",
		CommitTimeout: 2 * time.Second,
	}

	return &fixture{db: db, uc: NewSaleUseCase(deps, log), stock: stock, ledger: credit, locker: locker, deps: deps}
}

func (f *fixture) addProduct(id, price string, stock int64) {
	_ = f.db.Write(func(t *memdb.Tables) error {
		t.Products[id] = &model.Product{
			BaseModel: model.BaseModel{ID: id, CreatedAt: time.Now()},
			CompanyID: "c1",
			BranchID:  "b1",
			Code:      "MAT-" + id,
			Name:      "Producto " + id,
			Unit:      "und",
			Stock:     decimal.NewFromInt(stock),
			Price:     d(price),
		}
		return nil
	})
}

func (f *fixture) addCustomer(id, limit string) {
	_ = f.db.Write(func(t *memdb.Tables) error {
		t.Customers[id] = &model.Customer{
			BaseModel:   model.BaseModel{ID: id},
			CompanyID:   "c1",
			BranchID:    "b1",
			Code:        "CLI-" + id,
			Name:        "Cliente " + id,
			CreditLimit: d(limit),
		}
		return nil
	})
}

func (f *fixture) stockOf(t *testing.T, id string) decimal.Decimal {
	t.Helper()
	s, err := f.stock.GetStock(context.Background(), "c1", id)
	if err != nil {
		t.Fatalf("GetStock(%s): %v", id, err)
	}
	return s
}

func (f *fixture) saleCount() int {
	var n int
	_ = f.db.Read(func(t *memdb.Tables) error {
		n = len(t.Sales)
		return nil
	})
	return n
}

func cashSale(items ...dto.SaleItemInput) *dto.CommitSaleInput {
	return &dto.CommitSaleInput{
		CompanyID:     "c1",
		BranchID:      "b1",
		UserID:        "u1",
		Items:         items,
		PaymentType:   model.PaymentCash,
		PaymentMethod: "efectivo",
	}
}

func creditSale(customerID, discount string, items ...dto.SaleItemInput) *dto.CommitSaleInput {
	in := cashSale(items...)
	in.PaymentType = model.PaymentCredit
	in.CustomerID = customerID
	in.Discount = d(discount)
	return in
}

func line(productID, qty string) dto.SaleItemInput {
	return dto.SaleItemInput{ProductID: productID, Quantity: d(qty)}
}

func TestCommitCashSale(t *testing.T) {
	f := newFixture(t, nil)
	f.addProduct("p1", "100", 10)
	ctx := context.Background()

	item := line("p1", "2")
	item.Discount = d("10")
	s, err := f.uc.CommitSale(ctx, cashSale(item))
	if err != nil {
		t.Fatalf("CommitSale: %v", err)
	}

	if s.SaleNumber != "DTE-01-00000001-00000000-00000001" || s.Status != model.SaleCompleted {
		t.Fatalf("sale header = %q %q", s.SaleNumber, s.Status)
	}
	if !s.Subtotal.Equal(d("180")) || !s.Tax.Equal(d("32.4")) || !s.Total.Equal(d("212.4")) {
		t.Fatalf("totals = %s %s %s", s.Subtotal, s.Tax, s.Total)
	}
	got := s.Items[0]
	if got.ProductName != "Producto p1" || got.ProductCode != "MAT-p1" || got.Unit != "und" || !got.UnitPrice.Equal(d("100")) {
		t.Fatalf("item snapshot = %+v", got)
	}
	if s := f.stockOf(t, "p1"); !s.Equal(d("8")) {
		t.Fatalf("stock = %s, want 8", s)
	}

	byNumber, err := f.uc.GetSaleByNumber(ctx, "c1", "b1", s.SaleNumber)
	if err != nil || byNumber.ID != s.ID {
		t.Fatalf("GetSaleByNumber = %v, %v", byNumber, err)
	}

	movements, _, _ := f.stock.ListMovements(ctx, &inventorydto.MovementFilters{ProductID: "p1"})
	if len(movements) != 1 || movements[0].MovementType != model.MovementSale || *movements[0].ReferenceID != s.ID {
		t.Fatalf("movements = %+v", movements)
	}

	// Returned records are copies.
	s.Items[0].ProductName = "mutated"
	again, _ := f.uc.GetSale(ctx, "c1", s.ID)
	if again.Items[0].ProductName != "Producto p1" {
		t.Fatal("caller mutation leaked into storage")
	}

	if next, _ := f.uc.PeekNextSaleNumber(ctx, "c1", "b1"); next != "DTE-01-00000001-00000000-00000002" {
		t.Fatalf("PeekNextSaleNumber = %q", next)
	}
}

func TestStockScenario(t *testing.T) {
	f := newFixture(t, nil)
	f.addProduct("p1", "10", 5)
	ctx := context.Background()

	if _, err := f.uc.CommitSale(ctx, cashSale(line("p1", "5"))); err != nil {
		t.Fatalf("commit 5: %v", err)
	}
	if s := f.stockOf(t, "p1"); !s.IsZero() {
		t.Fatalf("stock = %s, want 0", s)
	}

	_, err := f.uc.CommitSale(ctx, cashSale(line("p1", "1")))
	var se *apperror.InsufficientStockError
	if !errors.As(err, &se) {
		t.Fatalf("commit 1: err = %v, want InsufficientStock", err)
	}
	if se.ProductID != "p1" || !se.Available.IsZero() || !se.Requested.Equal(d("1")) {
		t.Fatalf("error fields = %+v", se)
	}
	if n := f.saleCount(); n != 1 {
		t.Fatalf("sales stored = %d, want 1", n)
	}
}

func TestRepeatedProductLinesAreSummed(t *testing.T) {
	f := newFixture(t, nil)
	f.addProduct("p1", "10", 5)

	_, err := f.uc.CommitSale(context.Background(), cashSale(line("p1", "3"), line("p1", "3")))
	var se *apperror.InsufficientStockError
	if !errors.As(err, &se) || !se.Requested.Equal(d("6")) || !se.Available.Equal(d("5")) {
		t.Fatalf("err = %v", err)
	}
	if s := f.stockOf(t, "p1"); !s.Equal(d("5")) {
		t.Fatalf("stock = %s, want 5", s)
	}
}

func TestCreditScenario(t *testing.T) {
	f := newFixture(t, nil)
	f.addProduct("big", "1000", 10)
	f.addProduct("small", "1", 10)
	f.addCustomer("cust", "1000")
	ctx := context.Background()

	// 1000 + 18% tax - 180 discount = 1000
	s, err := f.uc.CommitSale(ctx, creditSale("cust", "180", line("big", "1")))
	if err != nil {
		t.Fatalf("credit sale of 1000: %v", err)
	}
	if !s.Total.Equal(d("1000")) || s.CustomerName != "Cliente cust" {
		t.Fatalf("sale = total %s customer %q", s.Total, s.CustomerName)
	}

	standing, _ := f.ledger.GetCustomerStanding(ctx, "c1", "cust")
	if !standing.CurrentDebt.Equal(d("1000")) || !standing.Available.IsZero() {
		t.Fatalf("after first sale: debt %s available %s", standing.CurrentDebt, standing.Available)
	}
	entry := standing.Transactions[0]
	if entry.Description != "Venta "+s.SaleNumber || entry.SaleID == nil || *entry.SaleID != s.ID {
		t.Fatalf("ledger entry = %+v", entry)
	}

	// 1 + 0.18 tax - 0.18 discount = 1
	_, err = f.uc.CommitSale(ctx, creditSale("cust", "0.18", line("small", "1")))
	var ce *apperror.CreditLimitExceededError
	if !errors.As(err, &ce) {
		t.Fatalf("credit sale of 1: err = %v, want CreditLimitExceeded", err)
	}
	if !ce.Limit.Equal(d("1000")) || !ce.CurrentBalance.Equal(d("1000")) || !ce.NewBalance.Equal(d("1001")) {
		t.Fatalf("error fields = %+v", ce)
	}
	if s := f.stockOf(t, "small"); !s.Equal(d("10")) {
		t.Fatalf("rejected sale changed stock: %s", s)
	}
	if n := f.saleCount(); n != 1 {
		t.Fatalf("sales stored = %d, want 1", n)
	}

	if _, err := f.ledger.RecordPayment(ctx, &ledgerdto.PaymentInput{
		CompanyID: "c1", BranchID: "b1", CustomerID: "cust", Amount: d("1000"),
	}); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	standing, _ = f.ledger.GetCustomerStanding(ctx, "c1", "cust")
	if !standing.CurrentDebt.IsZero() {
		t.Fatalf("debt after payment = %s", standing.CurrentDebt)
	}
}

func TestFailedChargeIsCompensated(t *testing.T) {
	f := newFixture(t, func(l ledger.UseCase) ledger.UseCase { return failingCharge{l} })
	f.addProduct("p1", "50", 4)
	f.addProduct("p2", "20", 3)
	f.addCustomer("cust", "10000")
	ctx := context.Background()

	_, err := f.uc.CommitSale(ctx, creditSale("cust", "0", line("p1", "2"), line("p2", "3")))
	if err == nil {
		t.Fatal("expected commit to fail")
	}

	if _, err := f.uc.GetSaleByNumber(ctx, "c1", "b1", "DTE-01-00000001-00000000-00000001"); !errors.Is(err, apperror.ErrSaleNotFound) {
		t.Fatalf("compensated sale still visible: err = %v", err)
	}
	if n := f.saleCount(); n != 0 {
		t.Fatalf("sales stored = %d, want 0", n)
	}
	if s := f.stockOf(t, "p1"); !s.Equal(d("4")) {
		t.Fatalf("p1 stock = %s, want 4", s)
	}
	if s := f.stockOf(t, "p2"); !s.Equal(d("3")) {
		t.Fatalf("p2 stock = %s, want 3", s)
	}

	movements, _, _ := f.stock.ListMovements(ctx, &inventorydto.MovementFilters{ProductID: "p2"})
	if len(movements) != 2 || movements[0].MovementType != model.MovementSaleReversal || movements[1].MovementType != model.MovementSale {
		t.Fatalf("p2 movements = %+v", movements)
	}

	standing, _ := f.ledger.GetCustomerStanding(ctx, "c1", "cust")
	if len(standing.Transactions) != 0 {
		t.Fatalf("ledger entries = %d, want 0", len(standing.Transactions))
	}
}

func TestExplicitZeroPriceIsKept(t *testing.T) {
	f := newFixture(t, nil)
	f.addProduct("p1", "100", 5)
	f.addCustomer("cust", "10000")
	ctx := context.Background()

	item := line("p1", "1")
	zero := decimal.Zero
	item.UnitPrice = &zero
	s, err := f.uc.CommitSale(ctx, creditSale("cust", "0", item))
	if err != nil {
		t.Fatalf("CommitSale: %v", err)
	}
	if !s.Items[0].UnitPrice.IsZero() || !s.Total.IsZero() {
		t.Fatalf("unit price = %s, total = %s, want 0", s.Items[0].UnitPrice, s.Total)
	}
	if s := f.stockOf(t, "p1"); !s.Equal(d("4")) {
		t.Fatalf("stock = %s, want 4", s)
	}

	standing, err := f.ledger.GetCustomerStanding(ctx, "c1", "cust")
	if err != nil {
		t.Fatalf("GetCustomerStanding: %v", err)
	}
	if !standing.CurrentDebt.IsZero() || len(standing.Transactions) != 0 {
		t.Fatalf("debt = %s with %d entries, want untouched ledger", standing.CurrentDebt, len(standing.Transactions))
	}
}

func TestSaleStoredAfterStockAndLedger(t *testing.T) {
	seen := -1
	var f *fixture
	f = newFixture(t, func(l ledger.UseCase) ledger.UseCase {
		return countingCharge{UseCase: l, sales: func() int { return f.saleCount() }, seen: &seen}
	})
	f.addProduct("p1", "50", 4)
	f.addCustomer("cust", "10000")

	if _, err := f.uc.CommitSale(context.Background(), creditSale("cust", "0", line("p1", "2"))); err != nil {
		t.Fatalf("CommitSale: %v", err)
	}
	if seen != 0 {
		t.Fatalf("sales stored while charging = %d, want 0", seen)
	}
	if n := f.saleCount(); n != 1 {
		t.Fatalf("sales stored = %d, want 1", n)
	}
}

func TestFailedSaleInsertReversesCharge(t *testing.T) {
	f := newFixture(t, nil)
	f.addProduct("p1", "50", 4)
	f.addCustomer("cust", "10000")
	ctx := context.Background()

	deps := f.deps
	deps.Repo = failingCreate{deps.Repo}
	uc := NewSaleUseCase(deps, logger.NewNop())

	if _, err := uc.CommitSale(ctx, creditSale("cust", "0", line("p1", "2"))); err == nil {
		t.Fatal("expected commit to fail")
	}
	if n := f.saleCount(); n != 0 {
		t.Fatalf("sales stored = %d, want 0", n)
	}
	if s := f.stockOf(t, "p1"); !s.Equal(d("4")) {
		t.Fatalf("p1 stock = %s, want 4", s)
	}

	standing, err := f.ledger.GetCustomerStanding(ctx, "c1", "cust")
	if err != nil {
		t.Fatalf("GetCustomerStanding: %v", err)
	}
	if !standing.CurrentDebt.IsZero() {
		t.Fatalf("debt = %s, want 0", standing.CurrentDebt)
	}
	if len(standing.Transactions) != 2 {
		t.Fatalf("ledger entries = %d, want charge and reversal", len(standing.Transactions))
	}
	reversal := standing.Transactions[0]
	if reversal.Type != model.CreditTypePayment || !reversal.Amount.Equal(d("118")) || reversal.SaleID == nil {
		t.Fatalf("reversal = %+v", reversal)
	}
}

func TestCommitSaleRejections(t *testing.T) {
	f := newFixture(t, nil)
	f.addProduct("p1", "10", 5)
	f.addCustomer("cust", "100")

	other := cashSale(line("p1", "1"))
	other.CompanyID = "c2"

	badDiscount := line("p1", "1")
	badDiscount.Discount = d("101")

	overDiscount := cashSale(line("p1", "1"))
	overDiscount.Discount = d("11.81")

	badPayment := cashSale(line("p1", "1"))
	badPayment.PaymentType = "card"

	tests := []struct {
		name    string
		input   *dto.CommitSaleInput
		wantErr func(error) bool
	}{
		{"no items", cashSale(), apperror.IsValidation},
		{"zero quantity", cashSale(line("p1", "0")), apperror.IsValidation},
		{"item discount over 100", cashSale(badDiscount), apperror.IsValidation},
		{"discount over total", overDiscount, apperror.IsValidation},
		{"unknown payment type", badPayment, apperror.IsValidation},
		{"credit without customer", creditSale("", "0", line("p1", "1")), func(err error) bool {
			return errors.Is(err, apperror.ErrCustomerRequiredForCredit)
		}},
		{"unknown customer", creditSale("nobody", "0", line("p1", "1")), func(err error) bool {
			return errors.Is(err, apperror.ErrCustomerNotFound)
		}},
		{"unknown product", cashSale(line("p1", "1"), line("missing", "1")), func(err error) bool {
			var nf *apperror.ProductNotFoundError
			return errors.As(err, &nf) && nf.ProductID == "missing"
		}},
		{"product of another company", other, func(err error) bool {
			var nf *apperror.ProductNotFoundError
			return errors.As(err, &nf)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.uc.CommitSale(context.Background(), tt.input); !tt.wantErr(err) {
				t.Fatalf("err = %v", err)
			}
		})
	}

	if s := f.stockOf(t, "p1"); !s.Equal(d("5")) {
		t.Fatalf("stock = %s, want 5", s)
	}
	if n := f.saleCount(); n != 0 {
		t.Fatalf("sales stored = %d, want 0", n)
	}
	if next, _ := f.uc.PeekNextSaleNumber(context.Background(), "c1", "b1"); next != "DTE-01-00000001-00000000-00000001" {
		t.Fatalf("rejected commits consumed numbers: next = %q", next)
	}
}

func TestConcurrentCommitsNeverOversell(t *testing.T) {
	const stock = 20
	f := newFixture(t, nil)
	f.addProduct("p1", "5", stock)
	f.addProduct("p2", "5", 1000)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers = map[string]bool{}
		short   int
	)
	for i := 0; i < stock+5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := f.uc.CommitSale(context.Background(), cashSale(line("p2", "1"), line("p1", "1")))
			mu.Lock()
			defer mu.Unlock()
			var se *apperror.InsufficientStockError
			switch {
			case err == nil:
				if numbers[s.SaleNumber] {
					t.Errorf("duplicate sale number %s", s.SaleNumber)
				}
				numbers[s.SaleNumber] = true
			case errors.As(err, &se):
				short++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(numbers) != stock || short != 5 {
		t.Fatalf("committed %d, rejected %d", len(numbers), short)
	}
	if s := f.stockOf(t, "p1"); !s.IsZero() {
		t.Fatalf("p1 stock = %s, want 0", s)
	}
	if s := f.stockOf(t, "p2"); !s.Equal(decimal.NewFromInt(1000 - stock)) {
		t.Fatalf("p2 stock = %s", s)
	}
}

func TestCommitSaleBusy(t *testing.T) {
	f := newFixture(t, nil)
	f.addProduct("p1", "5", 5)

	release, err := f.locker.Acquire(context.Background(), lock.Key("product", "p1"))
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if _, err := f.uc.CommitSale(ctx, cashSale(line("p1", "1"))); !errors.Is(err, apperror.ErrBusy) {
		t.Fatalf("err = %v, want ErrBusy", err)
	}
}

func TestListSalesAndLookup(t *testing.T) {
	f := newFixture(t, nil)
	f.addProduct("p1", "5", 100)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		s, err := f.uc.CommitSale(ctx, cashSale(line("p1", "1")))
		if err != nil {
			t.Fatalf("CommitSale: %v", err)
		}
		ids = append(ids, s.ID)
	}

	sales, err := f.uc.ListSales(ctx, &dto.SaleFilters{CompanyID: "c1", BranchID: "b1"})
	if err != nil {
		t.Fatalf("ListSales: %v", err)
	}
	if len(sales) != 3 || sales[0].ID != ids[2] || sales[2].ID != ids[0] {
		t.Fatalf("ListSales not newest first")
	}

	if _, err := f.uc.GetSale(ctx, "c2", ids[0]); !errors.Is(err, apperror.ErrSaleNotFound) {
		t.Fatalf("GetSale other company: err = %v", err)
	}
	if others, _ := f.uc.ListSales(ctx, &dto.SaleFilters{CompanyID: "c2"}); len(others) != 0 {
		t.Fatalf("other company sees %d sales", len(others))
	}
}
