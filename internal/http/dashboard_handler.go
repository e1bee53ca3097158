package http

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/inventory-hub/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-hub/internal/http/gen"
	"github.com/tuanvumaihuynh/inventory-hub/internal/service"
	"github.com/tuanvumaihuynh/inventory-hub/pkg/ptr"
)

const defaultActivityLimit = 10

type dashboardHandler struct {
	productSvc service.ProductService
}

func newDashboardHandler(productSvc service.ProductService) *dashboardHandler {
	return &dashboardHandler{
		productSvc: productSvc,
	}
}

func (h *dashboardHandler) GetDashboardSummary(ctx context.Context, request gen.GetDashboardSummaryRequestObject) (gen.GetDashboardSummaryResponseObject, error) {
	summary, err := h.productSvc.DashboardSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("product service dashboard summary: %w", err)
	}

	return gen.GetDashboardSummary200JSONResponse{
		Success: true,
		Data: gen.DashboardSummary{
			TotalProducts:   summary.TotalProducts,
			TotalCategories: summary.TotalCategories,
			TotalStockValue: summary.TotalStockValue,
			LowStockItems:   summary.LowStockItems,
		},
	}, nil
}

func (h *dashboardHandler) ListRecentActivity(ctx context.Context, request gen.ListRecentActivityRequestObject) (gen.ListRecentActivityResponseObject, error) {
	limit := ptr.Deref(request.Params.Limit, defaultActivityLimit)
	if limit < 1 {
		return nil, apperr.ValidationErr.WithMsg("limit must be a positive integer")
	}

	activities, err := h.productSvc.RecentActivity(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("product service recent activity: %w", err)
	}

	items := make([]gen.Activity, 0, len(activities))
	for _, a := range activities {
		items = append(items, gen.Activity{
			Id:          a.ID,
			ProductId:   a.ProductID,
			ProductName: a.ProductName,
			Action:      gen.ActivityAction(a.Action),
			Description: a.Description,
			Timestamp:   a.Timestamp,
		})
	}

	return gen.ListRecentActivity200JSONResponse{Success: true, Data: items}, nil
}

func (h *dashboardHandler) ListLowStockAlerts(ctx context.Context, request gen.ListLowStockAlertsRequestObject) (gen.ListLowStockAlertsResponseObject, error) {
	alerts, err := h.productSvc.LowStockAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product service low stock alerts: %w", err)
	}

	items := make([]gen.LowStockAlert, 0, len(alerts))
	for _, a := range alerts {
		items = append(items, gen.LowStockAlert{
			ProductId:     a.ProductID,
			ProductName:   a.ProductName,
			CurrentStock:  a.CurrentStock,
			MinStockLevel: a.MinStockLevel,
			Unit:          a.Unit,
			LastUpdated:   a.LastUpdated,
		})
	}

	return gen.ListLowStockAlerts200JSONResponse{Success: true, Data: items}, nil
}
