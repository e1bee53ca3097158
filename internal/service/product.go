package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tuanvumaihuynh/inventory-hub/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-hub/internal/config"
	"github.com/tuanvumaihuynh/inventory-hub/internal/journal"
	"github.com/tuanvumaihuynh/inventory-hub/internal/model"
	"github.com/tuanvumaihuynh/inventory-hub/pkg/number"
	"github.com/tuanvumaihuynh/inventory-hub/pkg/ptr"
	"github.com/tuanvumaihuynh/inventory-hub/pkg/validator"
)

var tracer = otel.Tracer("internal/service")

// SnapshotStore persists the whole catalog.
type SnapshotStore interface {
	Load(ctx context.Context) ([]model.Product, error)
	Flush(ctx context.Context, products []model.Product) error
}

// Notifier announces committed mutations. Implementations must not block.
type Notifier interface {
	Broadcast(action model.Action, productID string, payload any)
	PublishActivity(activity model.Activity)
}

// CreateProductParams numeric fields accept JSON numbers and numeric strings.
type CreateProductParams struct {
	Name          *string       `json:"name" validate:"required"`
	Category      *string       `json:"category" validate:"required"`
	Sku           *string       `json:"sku" validate:"required"`
	Unit          *string       `json:"unit" validate:"required"`
	CurrentStock  *number.Float `json:"current_stock" validate:"required,gte=0"`
	MinStockLevel *number.Float `json:"min_stock_level" validate:"required,gte=0"`
	CostPrice     *number.Float `json:"cost_price" validate:"required,gte=0"`
	SellingPrice  *number.Float `json:"selling_price" validate:"required,gte=0"`
	Description   *string       `json:"description"`
}

// UpdateProductParams holds the attributes a caller may change. Nil fields
// are left untouched.
type UpdateProductParams struct {
	Name          *string       `json:"name"`
	Category      *string       `json:"category"`
	Sku           *string       `json:"sku"`
	Unit          *string       `json:"unit"`
	Description   *string       `json:"description"`
	CurrentStock  *number.Float `json:"current_stock" validate:"omitempty,gte=0"`
	MinStockLevel *number.Float `json:"min_stock_level" validate:"omitempty,gte=0"`
	CostPrice     *number.Float `json:"cost_price" validate:"omitempty,gte=0"`
	SellingPrice  *number.Float `json:"selling_price" validate:"omitempty,gte=0"`
}

type ProductService interface {
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	GetProduct(ctx context.Context, id string) (model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id string, params UpdateProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id string) (model.Product, error)
	// AdjustStock adds delta to the current stock, clamping at zero.
	AdjustStock(ctx context.Context, id string, delta float64, source string) (model.Product, error)

	Stats(ctx context.Context) (model.Stats, error)
	LowStockProducts(ctx context.Context) ([]model.Product, error)
	LowStockAlerts(ctx context.Context) ([]model.LowStockAlert, error)
	DashboardSummary(ctx context.Context) (model.DashboardSummary, error)
	RecentActivity(ctx context.Context, n int) ([]model.Activity, error)
}

// productService owns the catalog. Every mutation holds mu for the whole
// validate, flush, commit, record and announce sequence, so observers see
// changes in the order they were persisted.
type productService struct {
	cfg       config.Storage
	logger    *slog.Logger
	store     SnapshotStore
	journal   *journal.Journal
	notifier  Notifier
	validator validator.Validator
	now       func() time.Time

	mu       sync.RWMutex
	products []model.Product
}

// NewProductService loads the persisted catalog and journals every loaded
// product as a create activity.
func NewProductService(
	ctx context.Context,
	cfg config.Storage,
	logger *slog.Logger,
	store SnapshotStore,
	activityJournal *journal.Journal,
	notifier Notifier,
	v validator.Validator,
) (ProductService, error) {
	products, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}

	s := &productService{
		cfg:       cfg,
		logger:    logger.With(slog.String("service", "catalog")),
		store:     store,
		journal:   activityJournal,
		notifier:  notifier,
		validator: v,
		now:       func() time.Time { return time.Now().UTC() },
		products:  products,
	}

	for _, p := range products {
		s.journal.Record(model.ActionCreate, p.ID, p.Name, createdDescription(p))
	}

	s.logger.InfoContext(ctx, "catalog loaded", slog.Int("products", len(products)))

	return s, nil
}

func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	ctx, span := tracer.Start(ctx, "ProductService.CreateProduct")
	defer span.End()

	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, recordErr(span, validationErr(err))
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.Product{}, recordErr(span, fmt.Errorf("generate uuid v7: %w", err))
	}

	product := model.Product{
		ID:            id.String(),
		Name:          *params.Name,
		Category:      *params.Category,
		Sku:           *params.Sku,
		Unit:          *params.Unit,
		CurrentStock:  params.CurrentStock.Float64(),
		MinStockLevel: params.MinStockLevel.Float64(),
		CostPrice:     params.CostPrice.Float64(),
		SellingPrice:  params.SellingPrice.Float64(),
		Description:   ptr.Deref(params.Description, ""),
		CreatedAt:     s.now(),
	}
	product.RefreshStatus()
	span.SetAttributes(attribute.String("product_id", product.ID))

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(slices.Clone(s.products), product)
	if err := s.commitLocked(ctx, next); err != nil {
		return model.Product{}, recordErr(span, err)
	}

	s.announceLocked(model.ActionCreate, product, createdDescription(product))

	return product, nil
}

func (s *productService) GetProduct(_ context.Context, id string) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return model.Product{}, notFoundErr(id)
	}
	return s.products[i], nil
}

func (s *productService) ListProducts(_ context.Context) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.products), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, params UpdateProductParams) (model.Product, error) {
	ctx, span := tracer.Start(ctx, "ProductService.UpdateProduct",
		trace.WithAttributes(attribute.String("product_id", id)))
	defer span.End()

	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, recordErr(span, validationErr(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, product, err := s.updateLocked(ctx, id, func(p *model.Product) {
		applyUpdate(p, params)
	})
	if err != nil {
		return model.Product{}, recordErr(span, err)
	}

	return product, nil
}

func (s *productService) AdjustStock(ctx context.Context, id string, delta float64, source string) (model.Product, error) {
	ctx, span := tracer.Start(ctx, "ProductService.AdjustStock",
		trace.WithAttributes(
			attribute.String("product_id", id),
			attribute.Float64("delta", delta),
			attribute.String("source", source),
		))
	defer span.End()

	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return model.Product{}, recordErr(span, apperr.ValidationErr.WithMsg("delta must be a finite number"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before, product, err := s.updateLocked(ctx, id, func(p *model.Product) {
		p.CurrentStock = max(0, p.CurrentStock+delta)
	})
	if err != nil {
		return model.Product{}, recordErr(span, err)
	}

	if before.CurrentStock != product.CurrentStock {
		s.recordLocked(model.ActionUpdate, product, stockDescription(before, product))
	}

	s.logger.DebugContext(ctx, "stock adjusted",
		slog.String("product_id", id),
		slog.Float64("delta", delta),
		slog.String("source", source),
		slog.Float64("current_stock", product.CurrentStock),
	)

	return product, nil
}

// updateLocked applies fn to a copy of the product, recomputes its status
// and runs the mutation pipeline. It returns the product before and after
// the change. Callers hold mu.
func (s *productService) updateLocked(ctx context.Context, id string, fn func(p *model.Product)) (model.Product, model.Product, error) {
	i := s.indexLocked(id)
	if i < 0 {
		return model.Product{}, model.Product{}, notFoundErr(id)
	}

	before := s.products[i]
	after := before
	fn(&after)
	after.RefreshStatus()
	after.UpdatedAt = s.now()

	next := slices.Clone(s.products)
	next[i] = after
	if err := s.commitLocked(ctx, next); err != nil {
		return model.Product{}, model.Product{}, err
	}

	s.announceLocked(model.ActionUpdate, after, "Updated product: "+after.Name)

	return before, after, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) (model.Product, error) {
	ctx, span := tracer.Start(ctx, "ProductService.DeleteProduct",
		trace.WithAttributes(attribute.String("product_id", id)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return model.Product{}, recordErr(span, notFoundErr(id))
	}
	product := s.products[i]

	next := slices.Delete(slices.Clone(s.products), i, i+1)
	if err := s.commitLocked(ctx, next); err != nil {
		return model.Product{}, recordErr(span, err)
	}

	s.announceLocked(model.ActionDelete, product, "Deleted product: "+product.Name)

	return product, nil
}

func (s *productService) Stats(_ context.Context) (model.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make(map[string]struct{})
	stats := model.Stats{TotalProducts: len(s.products)}
	for _, p := range s.products {
		categories[p.Category] = struct{}{}
		stats.TotalStockValue += p.CurrentStock * p.CostPrice
		if p.Status == model.StatusLowStock {
			stats.LowStockCount++
		}
	}
	stats.TotalCategories = len(categories)

	return stats, nil
}

// LowStockProducts returns the products whose stored status is low_stock.
func (s *productService) LowStockProducts(_ context.Context) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Product, 0)
	for _, p := range s.products {
		if p.Status == model.StatusLowStock {
			out = append(out, p)
		}
	}
	return out, nil
}

// LowStockAlerts lists every product at or under its minimum level.
func (s *productService) LowStockAlerts(_ context.Context) ([]model.LowStockAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	out := make([]model.LowStockAlert, 0)
	for _, p := range s.products {
		if !p.IsBelowMinimum() {
			continue
		}
		lastUpdated := p.UpdatedAt
		if lastUpdated.IsZero() {
			lastUpdated = now
		}
		out = append(out, model.LowStockAlert{
			ProductID:     p.ID,
			ProductName:   p.Name,
			CurrentStock:  p.CurrentStock,
			MinStockLevel: p.MinStockLevel,
			Unit:          p.Unit,
			LastUpdated:   lastUpdated,
		})
	}
	return out, nil
}

func (s *productService) DashboardSummary(_ context.Context) (model.DashboardSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make(map[string]struct{})
	summary := model.DashboardSummary{TotalProducts: len(s.products)}
	var value float64
	for _, p := range s.products {
		categories[p.Category] = struct{}{}
		value += p.CurrentStock * p.SellingPrice
		if p.IsBelowMinimum() {
			summary.LowStockItems++
		}
	}
	summary.TotalCategories = len(categories)
	summary.TotalStockValue = math.Round(value*100) / 100

	return summary, nil
}

func (s *productService) RecentActivity(_ context.Context, n int) ([]model.Activity, error) {
	return s.journal.Recent(n), nil
}

// commitLocked persists next and only then makes it the live catalog, so a
// failed flush leaves memory and disk unchanged.
func (s *productService) commitLocked(ctx context.Context, next []model.Product) error {
	if err := s.flush(ctx, next); err != nil {
		s.logger.ErrorContext(ctx, "error persisting catalog", slog.Any("error", err))
		return apperr.PersistenceErr.WrapParent(err)
	}
	s.products = next
	return nil
}

func (s *productService) flush(ctx context.Context, products []model.Product) error {
	base := s.cfg.FlushBackoff
	if base <= 0 {
		base = 50 * time.Millisecond
	}
	backoff := retry.WithMaxRetries(s.cfg.FlushRetries, retry.NewExponential(base))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := s.store.Flush(ctx, products); err != nil {
			s.logger.WarnContext(ctx, "error flushing catalog",
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)
			return retry.RetryableError(err)
		}
		return nil
	})
}

func (s *productService) announceLocked(action model.Action, product model.Product, description string) {
	activity := s.journal.Record(action, product.ID, product.Name, description)
	s.notifier.Broadcast(action, product.ID, product)
	s.notifier.PublishActivity(activity)
}

// recordLocked journals an extra activity for an already announced change.
func (s *productService) recordLocked(action model.Action, product model.Product, description string) {
	activity := s.journal.Record(action, product.ID, product.Name, description)
	s.notifier.PublishActivity(activity)
}

func (s *productService) indexLocked(id string) int {
	return slices.IndexFunc(s.products, func(p model.Product) bool {
		return p.ID == id
	})
}

func applyUpdate(p *model.Product, params UpdateProductParams) {
	p.Name = ptr.Deref(params.Name, p.Name)
	p.Category = ptr.Deref(params.Category, p.Category)
	p.Sku = ptr.Deref(params.Sku, p.Sku)
	p.Unit = ptr.Deref(params.Unit, p.Unit)
	p.Description = ptr.Deref(params.Description, p.Description)
	p.CurrentStock = number.Deref(params.CurrentStock, p.CurrentStock)
	p.MinStockLevel = number.Deref(params.MinStockLevel, p.MinStockLevel)
	p.CostPrice = number.Deref(params.CostPrice, p.CostPrice)
	p.SellingPrice = number.Deref(params.SellingPrice, p.SellingPrice)
}

func createdDescription(p model.Product) string {
	return "Added new product: " + p.Name
}

func stockDescription(before, after model.Product) string {
	return fmt.Sprintf("Stock updated from %s to %s %s",
		formatQuantity(before.CurrentStock), formatQuantity(after.CurrentStock), after.Unit)
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func notFoundErr(id string) error {
	return apperr.ProductNotFoundErr.WithMsg(fmt.Sprintf("product %s not found", id))
}

func validationErr(err error) error {
	fe, ok := validator.FirstFieldError(err)
	if !ok {
		return apperr.ValidationErr.WrapParent(err)
	}

	msg := fmt.Sprintf("%s %s", fe.Field(), validator.ValidationErrorMessage(fe))
	if fe.Tag() == "required" {
		msg = "missing required field: " + fe.Field()
	}
	return apperr.ValidationErr.WithMsg(msg).WrapParent(err)
}

func recordErr(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
