package server

import (
	"context"
	"net"
	"testing"
	"time"

	salesv1 "github.com/fekuna/omnipos-sales-service/api/salesv1"
	"github.com/fekuna/omnipos-sales-service/internal/auth"
	inventoryrepo "github.com/fekuna/omnipos-sales-service/internal/inventory/repository"
	inventoryuc "github.com/fekuna/omnipos-sales-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	quotehandler "github.com/fekuna/omnipos-sales-service/internal/quote/handler"
	quoterepo "github.com/fekuna/omnipos-sales-service/internal/quote/repository"
	quoteuc "github.com/fekuna/omnipos-sales-service/internal/quote/usecase"
	salehandler "github.com/fekuna/omnipos-sales-service/internal/sale/handler"
	salerepo "github.com/fekuna/omnipos-sales-service/internal/sale/repository"
	saleuc "github.com/fekuna/omnipos-sales-service/internal/sale/usecase"
	sequencerepo "github.com/fekuna/omnipos-sales-service/internal/sequence/repository"
	"github.com/fekuna/omnipos-sales-service/internal/server/rpcerror"
	"github.com/fekuna/omnipos-sales-service/internal/storage"
	"github.com/fekuna/omnipos-sales-service/internal/storage/memdb"
	"github.com/fekuna/omnipos-sales-service/pkg/lock"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const secret = "grpc-secret"

func dial(t *testing.T) *grpc.ClientConn {
	t.Helper()
	db := memdb.New()
	_ = db.Write(func(tb *memdb.Tables) error {
		tb.Products["p1"] = &model.Product{
			BaseModel: model.BaseModel{ID: "p1"},
			CompanyID: "c1",
			BranchID:  "b1",
			Code:      "MAT-001",
			Name:      "Cemento",
			Unit:      "bolsa",
			Stock:     decimal.NewFromInt(3),
			Price:     decimal.NewFromInt(10),
		}
		return nil
	})

	log := logger.NewNop()
	locker := lock.NewLocal()
	tx := storage.NoTxTransactor{}
	products := inventoryrepo.NewMemoryRepository(db)
	sequences := sequencerepo.NewMemoryRepository(db)

	sales := saleuc.NewSaleUseCase(saleuc.Dependencies{
		Repo:      salerepo.NewMemoryRepository(db),
		Products:  products,
		Stock:     inventoryuc.NewInventoryUseCase(products, locker, tx, nil, log),
		Sequences: sequences,
		Locker:    locker,
		Tx:        tx,
	}, log)
	quotes := quoteuc.NewQuoteUseCase(quoterepo.NewMemoryRepository(db), products, sequences, locker, tx, log)

	srv := NewGRPCServer(&auth.Authenticator{Secret: secret}, 5*time.Second, Services{
		Sale:  salehandler.NewSaleHandler(sales, log),
		Quote: quotehandler.NewQuoteHandler(quotes, log),
	})

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func authed(t *testing.T) context.Context {
	t.Helper()
	tok, err := auth.IssueToken(secret, auth.UserContext{CompanyID: "c1", BranchID: "b1", UserID: "u1"}, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+tok, "accept-language", "en")
}

func TestSaleServiceOverGRPC(t *testing.T) {
	client := salesv1.NewSaleServiceClient(dial(t))
	ctx := authed(t)

	req := &salesv1.CommitSaleRequest{
		PaymentType: model.PaymentCash,
		Items:       []*salesv1.SaleItemRequest{{ProductId: "p1", Quantity: decimal.NewFromInt(3)}},
	}
	resp, err := client.CommitSale(ctx, req)
	if err != nil {
		t.Fatalf("CommitSale: %v", err)
	}
	if resp.Sale.SaleNumber != "DTE-01-00000001-00000000-00000001" {
		t.Errorf("SaleNumber = %q", resp.Sale.SaleNumber)
	}
	if !resp.Sale.Total.Equal(decimal.RequireFromString("35.4")) {
		t.Errorf("Total = %s, want 35.4", resp.Sale.Total)
	}

	_, err = client.CommitSale(ctx, req)
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("second commit: code = %v, want FailedPrecondition", status.Code(err))
	}
	info := rpcerror.ErrorInfo(err)
	if info == nil || info.Reason != rpcerror.ReasonInsufficientStock {
		t.Fatalf("ErrorInfo = %+v", info)
	}
	if info.Metadata["available"] != "0" || info.Metadata["requested"] != "3" {
		t.Errorf("metadata = %v", info.Metadata)
	}

	got, err := client.GetSale(ctx, &salesv1.GetSaleRequest{SaleNumber: resp.Sale.SaleNumber})
	if err != nil {
		t.Fatalf("GetSale by number: %v", err)
	}
	if got.Sale.Id != resp.Sale.Id {
		t.Errorf("GetSale id = %q, want %q", got.Sale.Id, resp.Sale.Id)
	}

	next, err := client.GetNextSaleNumber(ctx, &salesv1.GetNextNumberRequest{})
	if err != nil || next.Number != "DTE-01-00000001-00000000-00000002" {
		t.Errorf("GetNextSaleNumber = %v, %v", next, err)
	}
}

func TestQuoteServiceOverGRPC(t *testing.T) {
	client := salesv1.NewQuoteServiceClient(dial(t))
	ctx := authed(t)

	created, err := client.CreateQuote(ctx, &salesv1.CreateQuoteRequest{
		ValidUntil: time.Now().AddDate(0, 0, 7),
		Items:      []*salesv1.SaleItemRequest{{ProductId: "p1", Quantity: decimal.NewFromInt(10)}},
	})
	if err != nil {
		t.Fatalf("CreateQuote: %v", err)
	}
	if created.Quote.QuoteNumber != "COT-00000001" || created.Quote.Status != model.QuotePending {
		t.Errorf("quote = %s %s", created.Quote.QuoteNumber, created.Quote.Status)
	}

	updated, err := client.UpdateQuoteStatus(ctx, &salesv1.UpdateQuoteStatusRequest{Id: created.Quote.Id, Status: model.QuoteApproved})
	if err != nil {
		t.Fatalf("UpdateQuoteStatus: %v", err)
	}
	if updated.Quote.Status != model.QuoteApproved {
		t.Errorf("Status = %q", updated.Quote.Status)
	}

	_, err = client.UpdateQuoteStatus(ctx, &salesv1.UpdateQuoteStatusRequest{Id: created.Quote.Id, Status: model.QuoteRejected})
	if status.Code(err) != codes.FailedPrecondition {
		t.Errorf("final status change: code = %v", status.Code(err))
	}

	list, err := client.ListQuotes(ctx, &salesv1.ListQuotesRequest{})
	if err != nil || len(list.Quotes) != 1 {
		t.Errorf("ListQuotes = %v, %v", list, err)
	}
}

func TestUnauthenticatedCallsAreRejected(t *testing.T) {
	client := salesv1.NewSaleServiceClient(dial(t))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.ListSales(ctx, &salesv1.ListSalesRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("code = %v, want Unauthenticated", status.Code(err))
	}
}
