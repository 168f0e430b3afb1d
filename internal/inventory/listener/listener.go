package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/inventory"
	"github.com/fekuna/omnipos-sales-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const EventInventoryRestocked = "InventoryRestocked"

// MessageReader is satisfied by *broker.KafkaConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type InventoryListener struct {
	consumer MessageReader
	uc       inventory.UseCase
	logger   logger.ZapLogger
}

func NewInventoryListener(consumer MessageReader, uc inventory.UseCase, log logger.ZapLogger) *InventoryListener {
	return &InventoryListener{
		consumer: consumer,
		uc:       uc,
		logger:   log.Named("inventory.listener"),
	}
}

func (l *InventoryListener) Start(ctx context.Context) {
	l.logger.Info("Starting inventory restock listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping inventory restock listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type RestockEvent struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	Payload   RestockPayload `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

type RestockPayload struct {
	CompanyID  string               `json:"company_id"`
	PurchaseID string               `json:"purchase_id"`
	Items      []RestockItemPayload `json:"items"`
}

type RestockItemPayload struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

func (l *InventoryListener) processMessage(ctx context.Context, value []byte) {
	var event RestockEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != EventInventoryRestocked {
		return
	}

	l.logger.Info("Processing restock event",
		zap.String("event_id", event.EventID),
		zap.String("purchase_id", event.Payload.PurchaseID),
	)

	for _, item := range event.Payload.Items {
		if !item.Quantity.IsPositive() {
			l.logger.Warn("Skipping non-positive restock quantity",
				zap.String("product_id", item.ProductID),
				zap.String("quantity", item.Quantity.String()),
			)
			continue
		}

		input := &dto.AdjustStockInput{
			CompanyID:      event.Payload.CompanyID,
			ProductID:      item.ProductID,
			MovementType:   model.MovementRestock,
			QuantityChange: item.Quantity,
			Reason:         "Purchase restock",
			ReferenceType:  "purchase",
			ReferenceID:    event.Payload.PurchaseID,
			UserID:         "system",
		}

		if _, err := l.uc.AdjustStock(ctx, input); err != nil {
			log := l.logger.Error
			if apperror.IsExpected(err) {
				log = l.logger.Warn
			}
			log("Failed to restock product",
				zap.String("purchase_id", event.Payload.PurchaseID),
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
		}
	}
}
