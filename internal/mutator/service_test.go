package mutator_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-hub/internal/config"
	"github.com/tuanvumaihuynh/inventory-hub/internal/model"
	"github.com/tuanvumaihuynh/inventory-hub/internal/mutator"
	"github.com/tuanvumaihuynh/inventory-hub/internal/service"
)

type adjustment struct {
	id     string
	delta  float64
	source string
}

type fakeProductService struct {
	service.ProductService

	mu          sync.Mutex
	products    []model.Product
	adjustments []adjustment
	listCalls   int
	adjustErr   error
	panicOnList bool
}

func (f *fakeProductService) ListProducts(_ context.Context) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.panicOnList && f.listCalls == 1 {
		panic("boom")
	}
	return append([]model.Product(nil), f.products...), nil
}

func (f *fakeProductService) AdjustStock(_ context.Context, id string, delta float64, source string) (model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adjustments = append(f.adjustments, adjustment{id: id, delta: delta, source: source})
	if f.adjustErr != nil {
		return model.Product{}, f.adjustErr
	}
	return model.Product{ID: id}, nil
}

func (f *fakeProductService) Adjustments() []adjustment {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]adjustment(nil), f.adjustments...)
}

func (f *fakeProductService) ListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func testConfig() config.Mutator {
	return config.Mutator{
		Enabled:    true,
		Interval:   time.Millisecond,
		ErrorDelay: time.Millisecond,
		MaxDelta:   5,
	}
}

func TestService_Run(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("Should adjust stock of known products within bounds", func(t *testing.T) {
		svc := &fakeProductService{products: []model.Product{{ID: "a"}, {ID: "b"}}}

		cleanup := mutator.NewService(testConfig(), logger, svc).Run(context.Background())
		require.Eventually(t, func() bool {
			return len(svc.Adjustments()) >= 20
		}, time.Second, time.Millisecond)
		cleanup()

		for _, adj := range svc.Adjustments() {
			assert.Contains(t, []string{"a", "b"}, adj.id)
			assert.GreaterOrEqual(t, adj.delta, -5.0)
			assert.LessOrEqual(t, adj.delta, 5.0)
			assert.Equal(t, mutator.Source, adj.source)
		}
	})

	t.Run("Should do nothing on an empty catalog", func(t *testing.T) {
		svc := &fakeProductService{}

		cleanup := mutator.NewService(testConfig(), logger, svc).Run(context.Background())
		require.Eventually(t, func() bool {
			return svc.ListCalls() >= 3
		}, time.Second, time.Millisecond)
		cleanup()

		assert.Empty(t, svc.Adjustments())
	})

	t.Run("Should keep running after errors", func(t *testing.T) {
		svc := &fakeProductService{
			products:  []model.Product{{ID: "a"}},
			adjustErr: errors.New("persistence failed"),
		}

		cleanup := mutator.NewService(testConfig(), logger, svc).Run(context.Background())
		require.Eventually(t, func() bool {
			return len(svc.Adjustments()) >= 3
		}, time.Second, time.Millisecond)
		cleanup()
	})

	t.Run("Should recover from a panicking cycle", func(t *testing.T) {
		svc := &fakeProductService{
			products:    []model.Product{{ID: "a"}},
			panicOnList: true,
		}

		cleanup := mutator.NewService(testConfig(), logger, svc).Run(context.Background())
		require.Eventually(t, func() bool {
			return len(svc.Adjustments()) >= 1
		}, time.Second, time.Millisecond)
		cleanup()
	})

	t.Run("Should stop when the context is cancelled", func(t *testing.T) {
		svc := &fakeProductService{products: []model.Product{{ID: "a"}}}
		ctx, cancel := context.WithCancel(context.Background())

		cleanup := mutator.NewService(testConfig(), logger, svc).Run(ctx)
		require.Eventually(t, func() bool {
			return len(svc.Adjustments()) >= 1
		}, time.Second, time.Millisecond)

		cancel()
		cleanup()

		settled := len(svc.Adjustments())
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, settled, len(svc.Adjustments()))
	})

	t.Run("Should tolerate a repeated cleanup", func(t *testing.T) {
		svc := &fakeProductService{products: []model.Product{{ID: "a"}}}

		cleanup := mutator.NewService(testConfig(), logger, svc).Run(context.Background())
		require.Eventually(t, func() bool {
			return len(svc.Adjustments()) >= 1
		}, time.Second, time.Millisecond)

		cleanup()
		assert.NotPanics(t, func() { cleanup() })
	})
}
