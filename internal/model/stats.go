package model

import "time"

type Stats struct {
	TotalProducts   int     `json:"total_products"`
	TotalCategories int     `json:"total_categories"`
	TotalStockValue float64 `json:"total_stock_value"`
	LowStockCount   int     `json:"low_stock_count"`
}

// DashboardSummary values stock at selling price and counts low stock by
// level rather than by stored status.
type DashboardSummary struct {
	TotalProducts   int     `json:"totalProducts"`
	TotalCategories int     `json:"totalCategories"`
	TotalStockValue float64 `json:"totalStockValue"`
	LowStockItems   int     `json:"lowStockItems"`
}

type LowStockAlert struct {
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	CurrentStock  float64   `json:"current_stock"`
	MinStockLevel float64   `json:"min_stock_level"`
	Unit          string    `json:"unit"`
	LastUpdated   time.Time `json:"last_updated"`
}
