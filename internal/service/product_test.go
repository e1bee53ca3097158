package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-hub/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-hub/internal/config"
	"github.com/tuanvumaihuynh/inventory-hub/internal/journal"
	"github.com/tuanvumaihuynh/inventory-hub/internal/model"
	"github.com/tuanvumaihuynh/inventory-hub/internal/service"
	"github.com/tuanvumaihuynh/inventory-hub/internal/storage/file"
	"github.com/tuanvumaihuynh/inventory-hub/pkg/number"
	"github.com/tuanvumaihuynh/inventory-hub/pkg/ptr"
	"github.com/tuanvumaihuynh/inventory-hub/pkg/validator"
	"github.com/tuanvumaihuynh/inventory-hub/pkg/zerror"
)

type memStore struct {
	mu       sync.Mutex
	loaded   []model.Product
	flushed  []model.Product
	flushes  int
	failures int
}

func (s *memStore) Load(_ context.Context) ([]model.Product, error) {
	return s.loaded, nil
}

func (s *memStore) Flush(_ context.Context, products []model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushes++
	if s.failures > 0 {
		s.failures--
		return errors.New("disk full")
	}
	s.flushed = append([]model.Product(nil), products...)
	return nil
}

type broadcast struct {
	action    model.Action
	productID string
	payload   any
}

type recordingNotifier struct {
	mu         sync.Mutex
	broadcasts []broadcast
	activities []model.Activity
}

func (n *recordingNotifier) Broadcast(action model.Action, productID string, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.broadcasts = append(n.broadcasts, broadcast{action: action, productID: productID, payload: payload})
}

func (n *recordingNotifier) PublishActivity(activity model.Activity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.activities = append(n.activities, activity)
}

type fixture struct {
	svc      service.ProductService
	store    service.SnapshotStore
	journal  *journal.Journal
	notifier *recordingNotifier
}

func newFixture(t *testing.T, store service.SnapshotStore) fixture {
	t.Helper()

	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	j := journal.New(journal.DefaultCapacity)
	n := &recordingNotifier{}
	cfg := config.Storage{FlushRetries: 2, FlushBackoff: 1}

	svc, err := service.NewProductService(context.Background(), cfg, slog.New(slog.DiscardHandler), store, j, n, v)
	require.NoError(t, err)

	return fixture{svc: svc, store: store, journal: j, notifier: n}
}

func num(v float64) *number.Float {
	return ptr.New(number.Float(v))
}

func milkParams() service.CreateProductParams {
	return service.CreateProductParams{
		Name:          ptr.New("Milk"),
		Category:      ptr.New("Dairy"),
		Sku:           ptr.New("MLK-001"),
		Unit:          ptr.New("liters"),
		CurrentStock:  num(5.0),
		MinStockLevel: num(10.0),
		CostPrice:     num(1.0),
		SellingPrice:  num(1.5),
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	t.Run("Should derive low stock status and announce the product", func(t *testing.T) {
		f := newFixture(t, &memStore{})

		product, err := f.svc.CreateProduct(context.Background(), milkParams())
		require.NoError(t, err)

		assert.NotEmpty(t, product.ID)
		assert.Equal(t, model.StatusLowStock, product.Status)
		assert.True(t, product.UpdatedAt.IsZero())
		assert.False(t, product.CreatedAt.IsZero())

		require.Len(t, f.notifier.broadcasts, 1)
		assert.Equal(t, model.ActionCreate, f.notifier.broadcasts[0].action)
		assert.Equal(t, product.ID, f.notifier.broadcasts[0].productID)

		recent := f.journal.Recent(1)
		require.Len(t, recent, 1)
		assert.Equal(t, "Added new product: Milk", recent[0].Description)
		assert.Equal(t, recent[0], f.notifier.activities[0])
	})

	t.Run("Should derive active status above minimum", func(t *testing.T) {
		f := newFixture(t, &memStore{})

		params := milkParams()
		params.CurrentStock = num(10.5)

		product, err := f.svc.CreateProduct(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, model.StatusActive, product.Status)
	})

	t.Run("Should name the missing field", func(t *testing.T) {
		f := newFixture(t, &memStore{})

		params := milkParams()
		params.Sku = nil

		_, err := f.svc.CreateProduct(context.Background(), params)

		var zErr zerror.ZError
		require.ErrorAs(t, err, &zErr)
		assert.ErrorIs(t, err, apperr.ValidationErr)
		assert.Equal(t, "missing required field: sku", zErr.Msg())
		assert.Empty(t, f.notifier.broadcasts)
	})

	t.Run("Should accept zero stock", func(t *testing.T) {
		f := newFixture(t, &memStore{})

		params := milkParams()
		params.CurrentStock = num(0.0)
		params.MinStockLevel = num(0.0)

		product, err := f.svc.CreateProduct(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, model.StatusLowStock, product.Status)
	})

	t.Run("Should coerce numeric strings", func(t *testing.T) {
		f := newFixture(t, &memStore{})

		var params service.CreateProductParams
		require.NoError(t, json.Unmarshal([]byte(`{
			"name": "Milk", "category": "Dairy", "sku": "MLK-001", "unit": "liters",
			"current_stock": "5", "min_stock_level": "10",
			"cost_price": "1.0", "selling_price": 1.5
		}`), &params))

		product, err := f.svc.CreateProduct(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, 5.0, product.CurrentStock)
		assert.Equal(t, 10.0, product.MinStockLevel)
		assert.Equal(t, 1.0, product.CostPrice)
		assert.Equal(t, 1.5, product.SellingPrice)
		assert.Equal(t, model.StatusLowStock, product.Status)
	})

	t.Run("Should reject negative numbers", func(t *testing.T) {
		f := newFixture(t, &memStore{})

		params := milkParams()
		params.CostPrice = num(-1.0)

		_, err := f.svc.CreateProduct(context.Background(), params)
		assert.ErrorIs(t, err, apperr.ValidationErr)
	})
}

func TestProductService_GetProduct(t *testing.T) {
	f := newFixture(t, &memStore{})
	ctx := context.Background()

	milk, err := f.svc.CreateProduct(ctx, milkParams())
	require.NoError(t, err)
	milk, err = f.svc.UpdateProduct(ctx, milk.ID, service.UpdateProductParams{CurrentStock: num(8)})
	require.NoError(t, err)

	t.Run("Should not share timestamps with callers", func(t *testing.T) {
		got, err := f.svc.GetProduct(ctx, milk.ID)
		require.NoError(t, err)
		got.UpdatedAt = time.Unix(0, 0)
		got.CreatedAt = time.Unix(0, 0)

		listed, err := f.svc.ListProducts(ctx)
		require.NoError(t, err)
		listed[0].UpdatedAt = time.Unix(0, 0)

		low, err := f.svc.LowStockProducts(ctx)
		require.NoError(t, err)
		require.Len(t, low, 1)
		low[0].UpdatedAt = time.Unix(0, 0)

		again, err := f.svc.GetProduct(ctx, milk.ID)
		require.NoError(t, err)
		assert.Equal(t, milk, again)
	})

	t.Run("Should not share the broadcast payload", func(t *testing.T) {
		payload, ok := f.notifier.broadcasts[1].payload.(model.Product)
		require.True(t, ok)
		payload.UpdatedAt = time.Unix(0, 0)

		again, err := f.svc.GetProduct(ctx, milk.ID)
		require.NoError(t, err)
		assert.Equal(t, milk.UpdatedAt, again.UpdatedAt)
	})
}

func TestProductService_UpdateProduct(t *testing.T) {
	t.Run("Should restock milk to active", func(t *testing.T) {
		f := newFixture(t, &memStore{})
		ctx := context.Background()

		milk, err := f.svc.CreateProduct(ctx, milkParams())
		require.NoError(t, err)
		require.Equal(t, model.StatusLowStock, milk.Status)

		updated, err := f.svc.UpdateProduct(ctx, milk.ID, service.UpdateProductParams{
			CurrentStock: num(20.0),
		})
		require.NoError(t, err)

		assert.Equal(t, 20.0, updated.CurrentStock)
		assert.Equal(t, model.StatusActive, updated.Status)
		assert.False(t, updated.UpdatedAt.IsZero())
		assert.Equal(t, milk.CreatedAt, updated.CreatedAt)

		got, err := f.svc.GetProduct(ctx, milk.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, got)

		assert.Equal(t, "Updated product: Milk", f.journal.Recent(1)[0].Description)
		assert.Equal(t, 2, f.journal.Len())
	})

	t.Run("Should recompute status after all fields are applied", func(t *testing.T) {
		f := newFixture(t, &memStore{})
		ctx := context.Background()

		milk, err := f.svc.CreateProduct(ctx, milkParams())
		require.NoError(t, err)

		updated, err := f.svc.UpdateProduct(ctx, milk.ID, service.UpdateProductParams{
			MinStockLevel: num(2.0),
		})
		require.NoError(t, err)

		assert.Equal(t, model.StatusActive, updated.Status)
	})

	t.Run("Should journal the new name", func(t *testing.T) {
		f := newFixture(t, &memStore{})
		ctx := context.Background()

		milk, err := f.svc.CreateProduct(ctx, milkParams())
		require.NoError(t, err)

		updated, err := f.svc.UpdateProduct(ctx, milk.ID, service.UpdateProductParams{
			Name: ptr.New("Whole Milk"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Whole Milk", updated.Name)
		assert.Equal(t, "Dairy", updated.Category)
		assert.Equal(t, "Updated product: Whole Milk", f.journal.Recent(1)[0].Description)
	})

	t.Run("Should recompute a stale loaded status", func(t *testing.T) {
		store := &memStore{loaded: []model.Product{{
			ID: "p1", Name: "Salt", Unit: "kg",
			CurrentStock: 50, MinStockLevel: 10,
			Status: model.StatusOutOfStock,
		}}}
		f := newFixture(t, store)

		got, err := f.svc.GetProduct(context.Background(), "p1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusOutOfStock, got.Status)

		updated, err := f.svc.UpdateProduct(context.Background(), "p1", service.UpdateProductParams{})
		require.NoError(t, err)
		assert.Equal(t, model.StatusActive, updated.Status)
	})

	t.Run("Should return not found for unknown id", func(t *testing.T) {
		f := newFixture(t, &memStore{})

		_, err := f.svc.UpdateProduct(context.Background(), "missing", service.UpdateProductParams{})
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})

	t.Run("Should ignore unrecognised keys", func(t *testing.T) {
		f := newFixture(t, &memStore{})
		ctx := context.Background()

		milk, err := f.svc.CreateProduct(ctx, milkParams())
		require.NoError(t, err)

		var params service.UpdateProductParams
		require.NoError(t, json.Unmarshal([]byte(`{"colour":"white","current_stock":12}`), &params))

		updated, err := f.svc.UpdateProduct(ctx, milk.ID, params)
		require.NoError(t, err)
		assert.Equal(t, 12.0, updated.CurrentStock)
	})

	t.Run("Should coerce a numeric string", func(t *testing.T) {
		f := newFixture(t, &memStore{})
		ctx := context.Background()

		milk, err := f.svc.CreateProduct(ctx, milkParams())
		require.NoError(t, err)

		var params service.UpdateProductParams
		require.NoError(t, json.Unmarshal([]byte(`{"current_stock":"20"}`), &params))

		updated, err := f.svc.UpdateProduct(ctx, milk.ID, params)
		require.NoError(t, err)
		assert.Equal(t, 20.0, updated.CurrentStock)
		assert.Equal(t, model.StatusActive, updated.Status)
	})

	t.Run("Should not lose concurrent updates", func(t *testing.T) {
		f := newFixture(t, &memStore{})
		ctx := context.Background()

		const n = 20
		ids := make([]string, n)
		for i := range n {
			params := milkParams()
			params.Name = ptr.New(fmt.Sprintf("product-%d", i))
			p, err := f.svc.CreateProduct(ctx, params)
			require.NoError(t, err)
			ids[i] = p.ID
		}

		var wg sync.WaitGroup
		for i, id := range ids {
			wg.Go(func() {
				_, err := f.svc.UpdateProduct(ctx, id, service.UpdateProductParams{
					CurrentStock: num(float64(100 + i)),
				})
				assert.NoError(t, err)
			})
		}
		wg.Wait()

		for i, id := range ids {
			got, err := f.svc.GetProduct(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, float64(100+i), got.CurrentStock)
		}
	})
}

func TestProductService_AdjustStock(t *testing.T) {
	f := newFixture(t, &memStore{})
	ctx := context.Background()

	milk, err := f.svc.CreateProduct(ctx, milkParams())
	require.NoError(t, err)

	t.Run("Should add delta", func(t *testing.T) {
		got, err := f.svc.AdjustStock(ctx, milk.ID, 7, "test")
		require.NoError(t, err)
		assert.Equal(t, 12.0, got.CurrentStock)
		assert.Equal(t, model.StatusActive, got.Status)

		all := f.journal.All()
		require.Len(t, all, 3)
		assert.Equal(t, "Updated product: Milk", all[1].Description)
		assert.Equal(t, "Stock updated from 5 to 12 liters", all[2].Description)
		assert.Len(t, f.notifier.activities, 3)
	})

	t.Run("Should clamp at zero", func(t *testing.T) {
		got, err := f.svc.AdjustStock(ctx, milk.ID, -100, "test")
		require.NoError(t, err)
		assert.Equal(t, 0.0, got.CurrentStock)
		assert.Equal(t, model.StatusLowStock, got.Status)
	})

	t.Run("Should skip the stock entry when nothing moved", func(t *testing.T) {
		before := f.journal.Len()

		_, err := f.svc.AdjustStock(ctx, milk.ID, -1, "test")
		require.NoError(t, err)

		assert.Equal(t, before+1, f.journal.Len())
		assert.Equal(t, "Updated product: Milk", f.journal.All()[before].Description)
	})

	t.Run("Should return not found for unknown id", func(t *testing.T) {
		_, err := f.svc.AdjustStock(ctx, "missing", 1, "test")
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	f := newFixture(t, &memStore{})
	ctx := context.Background()

	milk, err := f.svc.CreateProduct(ctx, milkParams())
	require.NoError(t, err)

	deleted, err := f.svc.DeleteProduct(ctx, milk.ID)
	require.NoError(t, err)
	assert.Equal(t, milk.ID, deleted.ID)

	_, err = f.svc.DeleteProduct(ctx, milk.ID)
	assert.ErrorIs(t, err, apperr.ProductNotFoundErr)

	_, err = f.svc.GetProduct(ctx, milk.ID)
	assert.ErrorIs(t, err, apperr.ProductNotFoundErr)

	products, err := f.svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)

	assert.Equal(t, "Deleted product: Milk", f.journal.Recent(1)[0].Description)
	require.Len(t, f.notifier.broadcasts, 2)
	assert.Equal(t, model.ActionDelete, f.notifier.broadcasts[1].action)
}

func TestProductService_FlushFailure(t *testing.T) {
	t.Run("Should retry transient failures", func(t *testing.T) {
		store := &memStore{}
		f := newFixture(t, store)

		store.failures = 2
		_, err := f.svc.CreateProduct(context.Background(), milkParams())
		require.NoError(t, err)

		assert.Equal(t, 3, store.flushes)
		assert.Len(t, store.flushed, 1)
	})

	t.Run("Should leave memory and disk unchanged when retries run out", func(t *testing.T) {
		store := &memStore{}
		f := newFixture(t, store)
		ctx := context.Background()

		milk, err := f.svc.CreateProduct(ctx, milkParams())
		require.NoError(t, err)

		store.failures = 10
		_, err = f.svc.UpdateProduct(ctx, milk.ID, service.UpdateProductParams{CurrentStock: num(99.0)})
		assert.ErrorIs(t, err, apperr.PersistenceErr)

		got, err := f.svc.GetProduct(ctx, milk.ID)
		require.NoError(t, err)
		assert.Equal(t, milk, got)
		assert.Equal(t, []model.Product{milk}, store.flushed)

		assert.Equal(t, 1, f.journal.Len())
		assert.Len(t, f.notifier.broadcasts, 1)
	})
}

func TestProductService_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")

	first := newFixture(t, file.NewStore(path))
	ctx := context.Background()
	milk, err := first.svc.CreateProduct(ctx, milkParams())
	require.NoError(t, err)

	second := newFixture(t, file.NewStore(path))

	products, err := second.svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Product{milk}, products)

	activities := second.journal.Recent(0)
	require.Len(t, activities, 1)
	assert.Equal(t, model.ActionCreate, activities[0].Action)
	assert.Equal(t, milk.ID, activities[0].ProductID)
	assert.Empty(t, second.notifier.broadcasts)
}

func TestProductService_Reports(t *testing.T) {
	store := &memStore{loaded: []model.Product{
		{ID: "a", Name: "Milk", Category: "Dairy", Unit: "l", CurrentStock: 5, MinStockLevel: 10, CostPrice: 1, SellingPrice: 1.3333, Status: model.StatusLowStock},
		{ID: "b", Name: "Rice", Category: "Grains", Unit: "kg", CurrentStock: 100, MinStockLevel: 10, CostPrice: 2, SellingPrice: 3, Status: model.StatusActive},
		{ID: "c", Name: "Salt", Category: "Grains", Unit: "kg", CurrentStock: 1, MinStockLevel: 5, CostPrice: 1, SellingPrice: 1, Status: model.StatusOutOfStock},
	}}
	f := newFixture(t, store)
	ctx := context.Background()

	t.Run("Should compute stats from stored status", func(t *testing.T) {
		stats, err := f.svc.Stats(ctx)
		require.NoError(t, err)

		assert.Equal(t, model.Stats{
			TotalProducts:   3,
			TotalCategories: 2,
			TotalStockValue: 206,
			LowStockCount:   1,
		}, stats)
	})

	t.Run("Should compute dashboard summary from levels", func(t *testing.T) {
		summary, err := f.svc.DashboardSummary(ctx)
		require.NoError(t, err)

		assert.Equal(t, model.DashboardSummary{
			TotalProducts:   3,
			TotalCategories: 2,
			TotalStockValue: 307.67,
			LowStockItems:   2,
		}, summary)
	})

	t.Run("Should list low stock products by status", func(t *testing.T) {
		products, err := f.svc.LowStockProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "a", products[0].ID)
	})

	t.Run("Should list alerts by level", func(t *testing.T) {
		alerts, err := f.svc.LowStockAlerts(ctx)
		require.NoError(t, err)
		require.Len(t, alerts, 2)
		assert.Equal(t, "a", alerts[0].ProductID)
		assert.Equal(t, "c", alerts[1].ProductID)
		assert.False(t, alerts[0].LastUpdated.IsZero())
	})

	t.Run("Should return recent activity newest first", func(t *testing.T) {
		activities, err := f.svc.RecentActivity(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, activities, 2)
	})
}
