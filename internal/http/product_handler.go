package http

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/inventory-hub/internal/http/gen"
	"github.com/tuanvumaihuynh/inventory-hub/internal/model"
	"github.com/tuanvumaihuynh/inventory-hub/internal/service"
	"github.com/tuanvumaihuynh/inventory-hub/pkg/ptr"
)

const productDeletedMsg = "Product deleted successfully"

type productHandler struct {
	productSvc service.ProductService
}

func newProductHandler(productSvc service.ProductService) *productHandler {
	return &productHandler{
		productSvc: productSvc,
	}
}

func (h *productHandler) ListProducts(ctx context.Context, request gen.ListProductsRequestObject) (gen.ListProductsResponseObject, error) {
	products, err := h.productSvc.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product service list products: %w", err)
	}

	return gen.ListProducts200JSONResponse{Success: true, Data: toProducts(products)}, nil
}

func (h *productHandler) CreateProduct(ctx context.Context, request gen.CreateProductRequestObject) (gen.CreateProductResponseObject, error) {
	params := service.CreateProductParams{
		Name:          request.Body.Name,
		Category:      request.Body.Category,
		Sku:           request.Body.Sku,
		Unit:          request.Body.Unit,
		CurrentStock:  request.Body.CurrentStock,
		MinStockLevel: request.Body.MinStockLevel,
		CostPrice:     request.Body.CostPrice,
		SellingPrice:  request.Body.SellingPrice,
		Description:   request.Body.Description,
	}
	product, err := h.productSvc.CreateProduct(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("product service create product: %w", err)
	}

	return gen.CreateProduct201JSONResponse{Success: true, Data: toProduct(product)}, nil
}

func (h *productHandler) GetProduct(ctx context.Context, request gen.GetProductRequestObject) (gen.GetProductResponseObject, error) {
	product, err := h.productSvc.GetProduct(ctx, request.Id)
	if err != nil {
		return nil, fmt.Errorf("product service get product: %w", err)
	}

	return gen.GetProduct200JSONResponse{Success: true, Data: toProduct(product)}, nil
}

func (h *productHandler) UpdateProduct(ctx context.Context, request gen.UpdateProductRequestObject) (gen.UpdateProductResponseObject, error) {
	params := service.UpdateProductParams{
		Name:          request.Body.Name,
		Category:      request.Body.Category,
		Sku:           request.Body.Sku,
		Unit:          request.Body.Unit,
		Description:   request.Body.Description,
		CurrentStock:  request.Body.CurrentStock,
		MinStockLevel: request.Body.MinStockLevel,
		CostPrice:     request.Body.CostPrice,
		SellingPrice:  request.Body.SellingPrice,
	}
	product, err := h.productSvc.UpdateProduct(ctx, request.Id, params)
	if err != nil {
		return nil, fmt.Errorf("product service update product: %w", err)
	}

	return gen.UpdateProduct200JSONResponse{Success: true, Data: toProduct(product)}, nil
}

func (h *productHandler) DeleteProduct(ctx context.Context, request gen.DeleteProductRequestObject) (gen.DeleteProductResponseObject, error) {
	product, err := h.productSvc.DeleteProduct(ctx, request.Id)
	if err != nil {
		return nil, fmt.Errorf("product service delete product: %w", err)
	}

	return gen.DeleteProduct200JSONResponse{
		Success: true,
		Message: ptr.New(productDeletedMsg),
		Data:    toProduct(product),
	}, nil
}

func (h *productHandler) ListLowStockProducts(ctx context.Context, request gen.ListLowStockProductsRequestObject) (gen.ListLowStockProductsResponseObject, error) {
	products, err := h.productSvc.LowStockProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product service low stock products: %w", err)
	}

	return gen.ListLowStockProducts200JSONResponse{Success: true, Data: toProducts(products)}, nil
}

func (h *productHandler) GetProductStats(ctx context.Context, request gen.GetProductStatsRequestObject) (gen.GetProductStatsResponseObject, error) {
	stats, err := h.productSvc.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("product service stats: %w", err)
	}

	return gen.GetProductStats200JSONResponse{
		Success: true,
		Data: gen.Stats{
			TotalProducts:   stats.TotalProducts,
			TotalCategories: stats.TotalCategories,
			TotalStockValue: stats.TotalStockValue,
			LowStockCount:   stats.LowStockCount,
		},
	}, nil
}

func toProduct(p model.Product) gen.Product {
	res := gen.Product{
		Id:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Sku:           p.Sku,
		Unit:          p.Unit,
		CurrentStock:  p.CurrentStock,
		MinStockLevel: p.MinStockLevel,
		CostPrice:     p.CostPrice,
		SellingPrice:  p.SellingPrice,
		Description:   p.Description,
		Status:        gen.Status(p.Status),
		CreatedAt:     p.CreatedAt,
	}
	if !p.UpdatedAt.IsZero() {
		res.UpdatedAt = ptr.New(p.UpdatedAt)
	}
	return res
}

func toProducts(products []model.Product) []gen.Product {
	items := make([]gen.Product, 0, len(products))
	for _, p := range products {
		items = append(items, toProduct(p))
	}
	return items
}
