package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// StockAdjustEvent asks for a relative stock change on one product.
type StockAdjustEvent struct {
	ProductID string  `json:"product_id"`
	Delta     float64 `json:"delta"`
	Reason    string  `json:"reason"`
}

func (ev StockAdjustEvent) validate() error {
	if strings.TrimSpace(ev.ProductID) == "" {
		return errors.New("missing product_id")
	}
	if math.IsNaN(ev.Delta) || math.IsInf(ev.Delta, 0) {
		return fmt.Errorf("invalid delta %v", ev.Delta)
	}
	return nil
}

func (ev StockAdjustEvent) source() string {
	if ev.Reason == "" {
		return "kafka"
	}
	return "kafka:" + ev.Reason
}

func (s *Service) handleStockAdjustEvent(ctx context.Context, ev StockAdjustEvent) error {
	if err := ev.validate(); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "handling stock adjust event",
		slog.String("product_id", ev.ProductID),
		slog.Float64("delta", ev.Delta),
		slog.String("reason", ev.Reason),
	)

	if _, err := s.stock.AdjustStock(ctx, ev.ProductID, ev.Delta, ev.source()); err != nil {
		return fmt.Errorf("adjust stock of %s: %w", ev.ProductID, err)
	}

	return nil
}
