// Package mutator generates synthetic stock movements so observers have a
// steady stream of changes to display.
package mutator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime/debug"
	"sync"
	"time"

	"github.com/tuanvumaihuynh/inventory-hub/internal/config"
	"github.com/tuanvumaihuynh/inventory-hub/internal/service"
)

// Source tags adjustments made by the mutator.
const Source = "mutator"

type Service struct {
	cfg        config.Mutator
	logger     *slog.Logger
	productSvc service.ProductService
	rand       *rand.Rand

	stopChan chan struct{}
	stopOnce sync.Once
}

func NewService(
	cfg config.Mutator,
	logger *slog.Logger,
	productSvc service.ProductService,
) *Service {
	return &Service{
		cfg:        cfg,
		logger:     logger.With(slog.String("service", "mutator")),
		productSvc: productSvc,
		rand:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		stopChan:   make(chan struct{}),
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) CleanupFunc {
	ctx, cancel := context.WithCancel(ctx)

	stoppedChan := make(chan struct{})
	go func() {
		defer close(stoppedChan)
		s.run(ctx)
	}()

	return func() {
		s.stopOnce.Do(func() { close(s.stopChan) })
		select {
		case <-stoppedChan:
		case <-time.After(5 * time.Second):
			cancel()
			<-stoppedChan
		}
		cancel()
	}
}

func (s *Service) run(ctx context.Context) {
	wait := s.cfg.Interval
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-time.After(wait):
			wait = s.cfg.Interval
			if err := s.tick(ctx); err != nil {
				s.logger.ErrorContext(ctx, "error mutating stock", slog.Any("error", err))
				wait = s.cfg.ErrorDelay
			}
		}
	}
}

// tick applies one random stock delta to one random product. An empty
// catalog is a no-op.
func (s *Service) tick(ctx context.Context) (err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			s.logger.ErrorContext(ctx, "panic in mutator",
				slog.Any("recover", rvr),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", rvr)
		}
	}()

	products, err := s.productSvc.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	if len(products) == 0 {
		return nil
	}

	product := products[s.rand.IntN(len(products))]
	delta := s.delta()

	updated, err := s.productSvc.AdjustStock(ctx, product.ID, delta, Source)
	if err != nil {
		return fmt.Errorf("adjust stock of %s: %w", product.ID, err)
	}

	s.logger.DebugContext(ctx, "stock mutated",
		slog.String("product_id", updated.ID),
		slog.Float64("delta", delta),
		slog.Float64("current_stock", updated.CurrentStock),
	)

	return nil
}

// delta is uniform over the integers in [-MaxDelta, MaxDelta].
func (s *Service) delta() float64 {
	if s.cfg.MaxDelta <= 0 {
		return 0
	}
	return float64(s.rand.IntN(2*s.cfg.MaxDelta+1) - s.cfg.MaxDelta)
}
