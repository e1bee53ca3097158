package model

import (
	"fmt"
	"time"
)

// Status is the stock status of a product.
type Status string

const (
	StatusActive     Status = "active"
	StatusLowStock   Status = "low_stock"
	StatusOutOfStock Status = "out_of_stock"
)

// Validate implements the "enum" validation tag.
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusLowStock, StatusOutOfStock:
		return nil
	default:
		return fmt.Errorf("unknown status: %q", s)
	}
}

// DeriveStatus returns the status implied by the stock levels.
// A product at or below its minimum level is low on stock.
func DeriveStatus(currentStock, minStockLevel float64) Status {
	if currentStock <= minStockLevel {
		return StatusLowStock
	}
	return StatusActive
}

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Sku           string    `json:"sku"`
	Unit          string    `json:"unit"`
	CurrentStock  float64   `json:"current_stock"`
	MinStockLevel float64   `json:"min_stock_level"`
	CostPrice     float64   `json:"cost_price"`
	SellingPrice  float64   `json:"selling_price"`
	Description   string    `json:"description"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	// UpdatedAt is zero until the first update.
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// RefreshStatus recomputes Status from the current stock levels.
func (p *Product) RefreshStatus() {
	p.Status = DeriveStatus(p.CurrentStock, p.MinStockLevel)
}

// IsBelowMinimum reports whether stock is at or under the minimum level,
// regardless of the stored status.
func (p Product) IsBelowMinimum() bool {
	return p.CurrentStock <= p.MinStockLevel
}
