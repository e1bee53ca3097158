// Package event consumes inbound Kafka events and applies them to the
// catalog.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/inventory-hub/internal/model"
	"github.com/tuanvumaihuynh/inventory-hub/internal/storage/mq"
)

// StockAdjuster applies relative stock changes.
type StockAdjuster interface {
	AdjustStock(ctx context.Context, id string, delta float64, source string) (model.Product, error)
}

// Service is the event service.
type Service struct {
	stockTopic string
	logger     *slog.Logger
	mqConsumer mq.Consumer
	stock      StockAdjuster
}

// New creates a new event service.
func New(
	stockTopic string,
	logger *slog.Logger,
	mqConsumer mq.Consumer,
	stock StockAdjuster,
) *Service {
	return &Service{
		stockTopic: stockTopic,
		logger:     logger.With(slog.String("service", "event")),
		mqConsumer: mqConsumer,
		stock:      stock,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := s.mqConsumer.RegisterHandler(
		s.stockTopic,
		func(ctx context.Context, topic string, payload []byte) error {
			var ev StockAdjustEvent
			if err := json.Unmarshal(payload, &ev); err != nil {
				return fmt.Errorf("unmarshal stock adjust event: %w", err)
			}

			if err := s.handleStockAdjustEvent(ctx, ev); err != nil {
				return fmt.Errorf("handle stock adjust event: %w", err)
			}

			return nil
		},
	); err != nil {
		return nil, fmt.Errorf("register stock adjust event handler: %w", err)
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	cleanup := func() {
		mqCleanup()
	}

	return cleanup, nil
}
