// Package scheduler runs the periodic low-stock sweep.
package scheduler

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-sales-service/internal/inventory"
	"github.com/fekuna/omnipos-sales-service/pkg/broker"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const EventLowStockDetected = "LowStockDetected"

type LowStockEvent struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Payload   LowStockPayload `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

type LowStockPayload struct {
	CompanyID string          `json:"company_id"`
	BranchID  string          `json:"branch_id"`
	ProductID string          `json:"product_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Stock     decimal.Decimal `json:"stock"`
	MinStock  decimal.Decimal `json:"min_stock"`
}

type Scheduler struct {
	cron      *cron.Cron
	spec      string
	uc        inventory.UseCase
	publisher broker.Publisher
	topic     string
	logger    logger.ZapLogger
}

// NewScheduler creates a scheduler that publishes one event per low-stock
// product on every tick of spec (standard 5-field cron).
func NewScheduler(spec string, uc inventory.UseCase, publisher broker.Publisher, topic string, log logger.ZapLogger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		spec:      spec,
		uc:        uc,
		publisher: publisher,
		topic:     topic,
		logger:    log.Named("scheduler"),
	}
}

func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("low_stock_cron", s.spec))
	if _, err := s.cron.AddFunc(s.spec, s.sweepLowStock); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) sweepLowStock() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.SweepLowStock(ctx); err != nil {
		s.logger.Error("low stock sweep failed", zap.Error(err))
	}
}

// SweepLowStock publishes an event for every product at or below its
// minimum and returns how many were published.
func (s *Scheduler) SweepLowStock(ctx context.Context) (int, error) {
	products, err := s.uc.ListLowStock(ctx, "")
	if err != nil {
		return 0, err
	}

	published := 0
	for _, p := range products {
		event := LowStockEvent{
			EventID:   uuid.New().String(),
			EventType: EventLowStockDetected,
			Payload: LowStockPayload{
				CompanyID: p.CompanyID,
				BranchID:  p.BranchID,
				ProductID: p.ID,
				Code:      p.Code,
				Name:      p.Name,
				Stock:     p.Stock,
				MinStock:  p.MinStock,
			},
			Timestamp: time.Now(),
		}
		if err := s.publisher.Publish(ctx, s.topic, p.ID, event); err != nil {
			s.logger.Warn("failed to publish low stock event", zap.String("product_id", p.ID), zap.Error(err))
			continue
		}
		published++
	}

	s.logger.Info("low stock sweep done", zap.Int("products", len(products)), zap.Int("published", published))
	return published, nil
}
