package listener

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/fekuna/omnipos-sales-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-sales-service/internal/inventory/repository"
	"github.com/fekuna/omnipos-sales-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/storage"
	"github.com/fekuna/omnipos-sales-service/internal/storage/memdb"
	"github.com/fekuna/omnipos-sales-service/pkg/lock"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type fakeReader struct {
	msgs chan kafka.Message
}

func (f *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case m := <-f.msgs:
		return m, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func newListener(t *testing.T) (*InventoryListener, *fakeReader, *memdb.DB) {
	t.Helper()
	db := memdb.New()
	_ = db.Write(func(tb *memdb.Tables) error {
		tb.Products["p1"] = &model.Product{BaseModel: model.BaseModel{ID: "p1"}, CompanyID: "c1", Name: "Cemento", Stock: decimal.NewFromInt(2)}
		return nil
	})
	uc := usecase.NewInventoryUseCase(repository.NewMemoryRepository(db), lock.NewLocal(), storage.NoTxTransactor{}, nil, logger.NewNop())
	reader := &fakeReader{msgs: make(chan kafka.Message, 4)}
	return NewInventoryListener(reader, uc, logger.NewNop()), reader, db
}

func restock(t *testing.T, eventType string, qty ...int64) []byte {
	t.Helper()
	event := RestockEvent{
		EventID:   "e1",
		EventType: eventType,
		Payload:   RestockPayload{CompanyID: "c1", PurchaseID: "po-9"},
		Timestamp: time.Now(),
	}
	for _, q := range qty {
		event.Payload.Items = append(event.Payload.Items, RestockItemPayload{ProductID: "p1", Quantity: decimal.NewFromInt(q)})
	}
	b, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func stockOf(db *memdb.DB) decimal.Decimal {
	var s decimal.Decimal
	_ = db.Read(func(tb *memdb.Tables) error {
		s = tb.Products["p1"].Stock
		return nil
	})
	return s
}

func TestProcessMessage(t *testing.T) {
	tests := []struct {
		name  string
		value func(t *testing.T) []byte
		want  int64
	}{
		{name: "restock", value: func(t *testing.T) []byte { return restock(t, EventInventoryRestocked, 3, 5) }, want: 10},
		{name: "non-positive skipped", value: func(t *testing.T) []byte { return restock(t, EventInventoryRestocked, 0, -4, 1) }, want: 3},
		{name: "other event ignored", value: func(t *testing.T) []byte { return restock(t, "OrderCreated", 3) }, want: 2},
		{name: "malformed", value: func(*testing.T) []byte { return []byte("{") }, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _, db := newListener(t)
			l.processMessage(context.Background(), tt.value(t))
			if got := stockOf(db); !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Fatalf("stock = %s, want %d", got, tt.want)
			}
		})
	}
}

func TestStartConsumesUntilCancelled(t *testing.T) {
	l, reader, db := newListener(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		l.Start(ctx)
		close(done)
	}()

	reader.msgs <- kafka.Message{Value: restock(t, EventInventoryRestocked, 4)}

	deadline := time.After(2 * time.Second)
	for !stockOf(db).Equal(decimal.NewFromInt(6)) {
		select {
		case <-deadline:
			t.Fatalf("stock = %s, want 6", stockOf(db))
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop")
	}

	movements, _, _ := usecase.NewInventoryUseCase(repository.NewMemoryRepository(db), lock.NewLocal(), storage.NoTxTransactor{}, nil, logger.NewNop()).
		ListMovements(context.Background(), &dto.MovementFilters{ProductID: "p1"})
	if len(movements) != 1 || movements[0].MovementType != model.MovementRestock {
		t.Fatalf("movements = %+v", movements)
	}
}
